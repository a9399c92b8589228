package echo

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	app "github.com/rafaelmp/employee-import/internal/application/employee"
)

type EmployeeHandler struct {
	list   app.ListEmployees
	get    app.GetEmployee
	create app.CreateEmployee
	update app.UpdateEmployee
	delete app.DeleteEmployee
}

func NewEmployeeHandler(
	list app.ListEmployees,
	get app.GetEmployee,
	create app.CreateEmployee,
	update app.UpdateEmployee,
	delete app.DeleteEmployee,
) *EmployeeHandler {
	return &EmployeeHandler{
		list:   list,
		get:    get,
		create: create,
		update: update,
		delete: delete,
	}
}

type employeeRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	CPF   string `json:"cpf"`
	City  string `json:"city"`
	State string `json:"state"`
}

func (h *EmployeeHandler) List(c echo.Context) error {
	m, ok := currentManager(c)
	if !ok {
		return unauthorized(c)
	}

	out, err := h.list.Execute(c.Request().Context(), app.ListEmployeesInput{ManagerID: m.ID})
	if err != nil {
		return internalError(c, "failed to list employees")
	}
	return c.JSON(http.StatusOK, apiResponse{Data: out})
}

func (h *EmployeeHandler) Get(c echo.Context) error {
	m, ok := currentManager(c)
	if !ok {
		return unauthorized(c)
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return badRequest(c, "invalid_employee_id", "id must be an integer")
	}

	out, err := h.get.Execute(c.Request().Context(), app.GetEmployeeInput{
		ManagerID:  m.ID,
		EmployeeID: id,
	})
	if err != nil {
		return employeeError(c, err, "failed to get employee")
	}
	return c.JSON(http.StatusOK, apiResponse{Data: out})
}

func (h *EmployeeHandler) Create(c echo.Context) error {
	m, ok := currentManager(c)
	if !ok {
		return unauthorized(c)
	}

	var req employeeRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "bad_request", "invalid request body")
	}

	out, err := h.create.Execute(c.Request().Context(), app.CreateEmployeeInput{
		ManagerID: m.ID,
		Name:      req.Name,
		Email:     req.Email,
		CPF:       req.CPF,
		City:      req.City,
		State:     req.State,
	})
	if err != nil {
		return employeeError(c, err, "failed to create employee")
	}
	return c.JSON(http.StatusCreated, apiResponse{
		Data:    out,
		Message: "Employee created with success",
	})
}

func (h *EmployeeHandler) Update(c echo.Context) error {
	m, ok := currentManager(c)
	if !ok {
		return unauthorized(c)
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return badRequest(c, "invalid_employee_id", "id must be an integer")
	}

	var req employeeRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "bad_request", "invalid request body")
	}

	out, err := h.update.Execute(c.Request().Context(), app.UpdateEmployeeInput{
		ManagerID:  m.ID,
		EmployeeID: id,
		Name:       req.Name,
		Email:      req.Email,
		CPF:        req.CPF,
		City:       req.City,
		State:      req.State,
	})
	if err != nil {
		return employeeError(c, err, "failed to update employee")
	}
	return c.JSON(http.StatusOK, apiResponse{
		Data:    out,
		Message: "Employee updated with success",
	})
}

func (h *EmployeeHandler) Delete(c echo.Context) error {
	m, ok := currentManager(c)
	if !ok {
		return unauthorized(c)
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return badRequest(c, "invalid_employee_id", "id must be an integer")
	}

	out, err := h.delete.Execute(c.Request().Context(), app.DeleteEmployeeInput{
		ManagerID:  m.ID,
		EmployeeID: id,
	})
	if err != nil {
		return employeeError(c, err, "failed to delete employee")
	}
	return c.JSON(http.StatusOK, apiResponse{
		Message: "Employee " + out.Name + " deleted with success",
	})
}

func employeeError(c echo.Context, err error, fallback string) error {
	var validationErr *app.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return c.JSON(http.StatusUnprocessableEntity, apiResponse{
			Data:  map[string]any{"errors": validationErr.FieldErrors},
			Error: &errorBody{Code: "validation_error", Message: "Validation error"},
		})
	case errors.Is(err, app.ErrInvalidEmployeeID):
		return badRequest(c, "invalid_employee_id", "id must be a positive integer")
	case errors.Is(err, app.ErrEmployeeNotFound):
		return c.JSON(http.StatusNotFound, apiResponse{Error: &errorBody{
			Code:    "not_found",
			Message: "employee not found",
		}})
	}
	return internalError(c, fallback)
}

func unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, apiResponse{Error: &errorBody{
		Code:    "unauthorized",
		Message: "authentication required",
	}})
}

func badRequest(c echo.Context, code, message string) error {
	return c.JSON(http.StatusBadRequest, apiResponse{Error: &errorBody{
		Code:    code,
		Message: message,
	}})
}

func internalError(c echo.Context, message string) error {
	return c.JSON(http.StatusInternalServerError, apiResponse{Error: &errorBody{
		Code:    "internal_error",
		Message: message,
	}})
}
