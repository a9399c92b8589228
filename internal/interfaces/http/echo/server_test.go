package echo_test

import (
	"context"
	"io"
	"testing"

	"github.com/labstack/echo/v4"
	appemployee "github.com/rafaelmp/employee-import/internal/application/employee"
	appmanager "github.com/rafaelmp/employee-import/internal/application/manager"
	manager "github.com/rafaelmp/employee-import/internal/domain/manager"
	httpecho "github.com/rafaelmp/employee-import/internal/interfaces/http/echo"
)

// testToken authenticates as testManager in every handler test.
const testToken = "test-token"

var testManager = manager.Manager{ID: 7, Name: "Rafael Souza", Email: "rafael@example.com"}

type fakeResolver struct{}

func (fakeResolver) FindByToken(ctx context.Context, tokenHash string) (manager.Manager, error) {
	if tokenHash == appmanager.HashToken(testToken) {
		return testManager, nil
	}
	return manager.Manager{}, manager.ErrManagerNotFound
}

type fakeUploadStore struct {
	storedName string
	err        error
}

func (f *fakeUploadStore) Store(ctx context.Context, name string, src io.Reader) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.storedName = name
	return "imports/" + name, nil
}

type fakeStartImport struct {
	output appemployee.StartImportOutput
	err    error
	input  appemployee.StartImportInput
}

func (f *fakeStartImport) Execute(ctx context.Context, in appemployee.StartImportInput) (appemployee.StartImportOutput, error) {
	f.input = in
	if f.err != nil {
		return appemployee.StartImportOutput{}, f.err
	}
	return f.output, nil
}

type fakeListEmployees struct {
	output appemployee.ListEmployeesOutput
	err    error
}

func (f *fakeListEmployees) Execute(ctx context.Context, in appemployee.ListEmployeesInput) (appemployee.ListEmployeesOutput, error) {
	if f.err != nil {
		return appemployee.ListEmployeesOutput{}, f.err
	}
	return f.output, nil
}

type fakeGetEmployee struct {
	output appemployee.EmployeeOutput
	err    error
}

func (f *fakeGetEmployee) Execute(ctx context.Context, in appemployee.GetEmployeeInput) (appemployee.EmployeeOutput, error) {
	if f.err != nil {
		return appemployee.EmployeeOutput{}, f.err
	}
	return f.output, nil
}

type fakeCreateEmployee struct {
	output appemployee.EmployeeOutput
	err    error
	input  appemployee.CreateEmployeeInput
}

func (f *fakeCreateEmployee) Execute(ctx context.Context, in appemployee.CreateEmployeeInput) (appemployee.EmployeeOutput, error) {
	f.input = in
	if f.err != nil {
		return appemployee.EmployeeOutput{}, f.err
	}
	return f.output, nil
}

type fakeUpdateEmployee struct {
	output appemployee.EmployeeOutput
	err    error
}

func (f *fakeUpdateEmployee) Execute(ctx context.Context, in appemployee.UpdateEmployeeInput) (appemployee.EmployeeOutput, error) {
	if f.err != nil {
		return appemployee.EmployeeOutput{}, f.err
	}
	return f.output, nil
}

type fakeDeleteEmployee struct {
	output appemployee.DeleteEmployeeOutput
	err    error
}

func (f *fakeDeleteEmployee) Execute(ctx context.Context, in appemployee.DeleteEmployeeInput) (appemployee.DeleteEmployeeOutput, error) {
	if f.err != nil {
		return appemployee.DeleteEmployeeOutput{}, f.err
	}
	return f.output, nil
}

type fakeRegisterManager struct {
	output appmanager.RegisterManagerOutput
	err    error
}

func (f *fakeRegisterManager) Execute(ctx context.Context, in appmanager.RegisterManagerInput) (appmanager.RegisterManagerOutput, error) {
	if f.err != nil {
		return appmanager.RegisterManagerOutput{}, f.err
	}
	return f.output, nil
}

type fakeLoginManager struct {
	output appmanager.LoginManagerOutput
	err    error
}

func (f *fakeLoginManager) Execute(ctx context.Context, in appmanager.LoginManagerInput) (appmanager.LoginManagerOutput, error) {
	if f.err != nil {
		return appmanager.LoginManagerOutput{}, f.err
	}
	return f.output, nil
}

type fakeLogoutManager struct {
	err    error
	called bool
}

func (f *fakeLogoutManager) Execute(ctx context.Context, in appmanager.LogoutManagerInput) error {
	f.called = true
	return f.err
}

// testServerDeps holds every fake a handler test may want to override.
type testServerDeps struct {
	register *fakeRegisterManager
	login    *fakeLoginManager
	logout   *fakeLogoutManager
	list     *fakeListEmployees
	get      *fakeGetEmployee
	create   *fakeCreateEmployee
	update   *fakeUpdateEmployee
	delete   *fakeDeleteEmployee
	start    *fakeStartImport
	uploads  *fakeUploadStore
}

func newTestServerDeps() *testServerDeps {
	return &testServerDeps{
		register: &fakeRegisterManager{},
		login:    &fakeLoginManager{},
		logout:   &fakeLogoutManager{},
		list:     &fakeListEmployees{},
		get:      &fakeGetEmployee{},
		create:   &fakeCreateEmployee{},
		update:   &fakeUpdateEmployee{},
		delete:   &fakeDeleteEmployee{},
		start:    &fakeStartImport{},
		uploads:  &fakeUploadStore{},
	}
}

func newTestServer(t *testing.T, deps *testServerDeps) *echo.Echo {
	t.Helper()

	e := echo.New()
	httpecho.RegisterRoutes(
		e,
		httpecho.NewAuthHandler(deps.register, deps.login, deps.logout),
		httpecho.NewEmployeeHandler(deps.list, deps.get, deps.create, deps.update, deps.delete),
		httpecho.NewImportHandler(deps.start, deps.uploads),
		httpecho.RequireAuth(fakeResolver{}),
	)
	return e
}
