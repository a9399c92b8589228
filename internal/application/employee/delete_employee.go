package employee

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/rafaelmp/employee-import/internal/domain/employee"
)

type DeleteEmployeeInput struct {
	ManagerID  int64
	EmployeeID int64
}

type DeleteEmployeeOutput struct {
	Name string `json:"name"`
}

type DeleteEmployee interface {
	Execute(ctx context.Context, in DeleteEmployeeInput) (DeleteEmployeeOutput, error)
}

type employeeDeleter interface {
	Delete(ctx context.Context, managerID, id int64) (domain.Employee, error)
}

type deleteEmployee struct {
	repo employeeDeleter
}

func NewDeleteEmployee(repo employeeDeleter) DeleteEmployee {
	return &deleteEmployee{repo: repo}
}

func (uc *deleteEmployee) Execute(ctx context.Context, in DeleteEmployeeInput) (DeleteEmployeeOutput, error) {
	if in.EmployeeID <= 0 {
		return DeleteEmployeeOutput{}, ErrInvalidEmployeeID
	}

	e, err := uc.repo.Delete(ctx, in.ManagerID, in.EmployeeID)
	if err != nil {
		if errors.Is(err, domain.ErrEmployeeNotFound) {
			return DeleteEmployeeOutput{}, ErrEmployeeNotFound
		}
		return DeleteEmployeeOutput{}, fmt.Errorf("delete employee: %w", err)
	}

	return DeleteEmployeeOutput{Name: e.Name}, nil
}
