package employee

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/rafaelmp/employee-import/internal/domain/employee"
)

type UpdateEmployeeInput struct {
	ManagerID  int64
	EmployeeID int64
	Name       string
	Email      string
	CPF        string
	City       string
	State      string
}

type UpdateEmployee interface {
	Execute(ctx context.Context, in UpdateEmployeeInput) (EmployeeOutput, error)
}

type employeeUpdater interface {
	Update(ctx context.Context, managerID, id int64, rec domain.Record) (domain.Employee, error)
}

type updateEmployee struct {
	repo employeeUpdater
}

func NewUpdateEmployee(repo employeeUpdater) UpdateEmployee {
	return &updateEmployee{repo: repo}
}

func (uc *updateEmployee) Execute(ctx context.Context, in UpdateEmployeeInput) (EmployeeOutput, error) {
	if in.EmployeeID <= 0 {
		return EmployeeOutput{}, ErrInvalidEmployeeID
	}

	rec := domain.FromRow(map[string]string{
		"name":  in.Name,
		"email": in.Email,
		"cpf":   in.CPF,
		"city":  in.City,
		"state": in.State,
	})

	// Uniqueness is left to the database constraints here: advisory
	// pre-checks cannot exclude the record being updated.
	outcome, err := domain.Validate(ctx, rec, selfExcludingChecker{})
	if err != nil {
		return EmployeeOutput{}, fmt.Errorf("validate employee: %w", err)
	}
	if !outcome.Valid() {
		return EmployeeOutput{}, &ValidationError{FieldErrors: outcome.FieldErrors}
	}

	e, err := uc.repo.Update(ctx, in.ManagerID, in.EmployeeID, rec)
	if err != nil {
		if errors.Is(err, domain.ErrEmployeeNotFound) {
			return EmployeeOutput{}, ErrEmployeeNotFound
		}
		if field, message, ok := domain.DuplicateFieldError(err); ok {
			return EmployeeOutput{}, &ValidationError{
				FieldErrors: domain.FieldErrors{field: {message}},
			}
		}
		return EmployeeOutput{}, fmt.Errorf("update employee: %w", err)
	}

	return toEmployeeOutput(e), nil
}

// selfExcludingChecker answers "not taken" for every lookup; the database
// constraint still rejects a real duplicate at write time.
type selfExcludingChecker struct{}

func (selfExcludingChecker) EmailExists(ctx context.Context, email string) (bool, error) {
	return false, nil
}

func (selfExcludingChecker) CPFExists(ctx context.Context, digits string) (bool, error) {
	return false, nil
}
