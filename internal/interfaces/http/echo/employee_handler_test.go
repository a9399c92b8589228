package echo_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	appemployee "github.com/rafaelmp/employee-import/internal/application/employee"
	domain "github.com/rafaelmp/employee-import/internal/domain/employee"
)

func authedRequest(method, target string, body []byte) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+testToken)
	return req
}

func TestListEmployeesHandler(t *testing.T) {
	t.Parallel()

	deps := newTestServerDeps()
	deps.list.output = appemployee.ListEmployeesOutput{
		Count: 1,
		Registers: []appemployee.EmployeeOutput{{
			ID: 1, Name: "Maria Silva", Email: "maria@example.com",
			CPF: "111.444.777-35", City: "Recife", State: "PE",
		}},
	}
	e := newTestServer(t, deps)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, authedRequest(http.MethodGet, "/api/v1/employees", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var got map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("unexpected json: %v", err)
	}
	data, ok := got["data"].(map[string]any)
	if !ok {
		t.Fatalf("unexpected data payload: %#v", got["data"])
	}
	if data["count"] != float64(1) {
		t.Fatalf("unexpected count: %#v", data["count"])
	}
}

func TestListEmployeesHandlerRequiresAuth(t *testing.T) {
	t.Parallel()

	e := newTestServer(t, newTestServerDeps())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/employees", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestGetEmployeeHandlerNotFound(t *testing.T) {
	t.Parallel()

	deps := newTestServerDeps()
	deps.get.err = appemployee.ErrEmployeeNotFound
	e := newTestServer(t, deps)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, authedRequest(http.MethodGet, "/api/v1/employees/42", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestGetEmployeeHandlerBadID(t *testing.T) {
	t.Parallel()

	e := newTestServer(t, newTestServerDeps())

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, authedRequest(http.MethodGet, "/api/v1/employees/abc", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCreateEmployeeHandler(t *testing.T) {
	t.Parallel()

	deps := newTestServerDeps()
	deps.create.output = appemployee.EmployeeOutput{ID: 1, Name: "Maria Silva"}
	e := newTestServer(t, deps)

	body := []byte(`{"name":"Maria Silva","email":"maria@example.com","cpf":"11144477735","city":"Recife","state":"PE"}`)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, authedRequest(http.MethodPost, "/api/v1/employees", body))

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if deps.create.input.ManagerID != testManager.ID {
		t.Fatalf("expected create for manager %d, got %d", testManager.ID, deps.create.input.ManagerID)
	}
}

func TestCreateEmployeeHandlerValidationError(t *testing.T) {
	t.Parallel()

	deps := newTestServerDeps()
	deps.create.err = &appemployee.ValidationError{FieldErrors: domain.FieldErrors{
		"cpf": {"the cpf is invalid"},
	}}
	e := newTestServer(t, deps)

	body := []byte(`{"name":"Maria Silva","email":"maria@example.com","cpf":"123","city":"Recife","state":"PE"}`)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, authedRequest(http.MethodPost, "/api/v1/employees", body))

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}

	var got map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("unexpected json: %v", err)
	}
	data, ok := got["data"].(map[string]any)
	if !ok {
		t.Fatalf("unexpected data payload: %#v", got["data"])
	}
	if _, ok := data["errors"]; !ok {
		t.Fatalf("expected field errors in body, got %#v", data)
	}
}

func TestUpdateEmployeeHandlerNotFound(t *testing.T) {
	t.Parallel()

	deps := newTestServerDeps()
	deps.update.err = appemployee.ErrEmployeeNotFound
	e := newTestServer(t, deps)

	body := []byte(`{"name":"Maria Silva","email":"maria@example.com","cpf":"11144477735","city":"Recife","state":"PE"}`)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, authedRequest(http.MethodPut, "/api/v1/employees/42", body))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestDeleteEmployeeHandler(t *testing.T) {
	t.Parallel()

	deps := newTestServerDeps()
	deps.delete.output = appemployee.DeleteEmployeeOutput{Name: "Maria Silva"}
	e := newTestServer(t, deps)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, authedRequest(http.MethodDelete, "/api/v1/employees/1", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var got map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("unexpected json: %v", err)
	}
	if msg, _ := got["message"].(string); msg != "Employee Maria Silva deleted with success" {
		t.Fatalf("unexpected message: %q", msg)
	}
}
