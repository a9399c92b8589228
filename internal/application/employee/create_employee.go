package employee

import (
	"context"
	"fmt"

	domain "github.com/rafaelmp/employee-import/internal/domain/employee"
)

type CreateEmployeeInput struct {
	ManagerID int64
	Name      string
	Email     string
	CPF       string
	City      string
	State     string
}

type CreateEmployee interface {
	Execute(ctx context.Context, in CreateEmployeeInput) (EmployeeOutput, error)
}

type createEmployee struct {
	repo domain.ImportRepository
}

func NewCreateEmployee(repo domain.ImportRepository) CreateEmployee {
	return &createEmployee{repo: repo}
}

func (uc *createEmployee) Execute(ctx context.Context, in CreateEmployeeInput) (EmployeeOutput, error) {
	rec := domain.FromRow(map[string]string{
		"name":  in.Name,
		"email": in.Email,
		"cpf":   in.CPF,
		"city":  in.City,
		"state": in.State,
	})

	outcome, err := domain.Validate(ctx, rec, uc.repo)
	if err != nil {
		return EmployeeOutput{}, fmt.Errorf("validate employee: %w", err)
	}
	if !outcome.Valid() {
		return EmployeeOutput{}, &ValidationError{FieldErrors: outcome.FieldErrors}
	}

	e, err := uc.repo.Create(ctx, in.ManagerID, rec)
	if err != nil {
		if field, message, ok := domain.DuplicateFieldError(err); ok {
			return EmployeeOutput{}, &ValidationError{
				FieldErrors: domain.FieldErrors{field: {message}},
			}
		}
		return EmployeeOutput{}, fmt.Errorf("create employee: %w", err)
	}

	return toEmployeeOutput(e), nil
}
