package employee

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/rafaelmp/employee-import/internal/domain/employee"
)

type GetEmployeeInput struct {
	ManagerID  int64
	EmployeeID int64
}

type GetEmployee interface {
	Execute(ctx context.Context, in GetEmployeeInput) (EmployeeOutput, error)
}

type employeeGetter interface {
	GetByID(ctx context.Context, managerID, id int64) (domain.Employee, error)
}

type getEmployee struct {
	repo employeeGetter
}

func NewGetEmployee(repo employeeGetter) GetEmployee {
	return &getEmployee{repo: repo}
}

func (uc *getEmployee) Execute(ctx context.Context, in GetEmployeeInput) (EmployeeOutput, error) {
	if in.EmployeeID <= 0 {
		return EmployeeOutput{}, ErrInvalidEmployeeID
	}

	e, err := uc.repo.GetByID(ctx, in.ManagerID, in.EmployeeID)
	if err != nil {
		if errors.Is(err, domain.ErrEmployeeNotFound) {
			return EmployeeOutput{}, ErrEmployeeNotFound
		}
		return EmployeeOutput{}, fmt.Errorf("get employee: %w", err)
	}

	return toEmployeeOutput(e), nil
}
