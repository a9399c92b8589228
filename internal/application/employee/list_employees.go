package employee

import (
	"context"
	"fmt"

	domain "github.com/rafaelmp/employee-import/internal/domain/employee"
)

// EmployeeOutput is the API-facing projection of an employee.
type EmployeeOutput struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	CPF   string `json:"cpf"`
	City  string `json:"city"`
	State string `json:"state"`
}

func toEmployeeOutput(e domain.Employee) EmployeeOutput {
	return EmployeeOutput{
		ID:    e.ID,
		Name:  e.Name,
		Email: e.Email,
		CPF:   e.FormattedCPF(),
		City:  e.City,
		State: e.State,
	}
}

type ListEmployeesInput struct {
	ManagerID int64
}

type ListEmployeesOutput struct {
	Count     int              `json:"count"`
	Registers []EmployeeOutput `json:"registers"`
}

type ListEmployees interface {
	Execute(ctx context.Context, in ListEmployeesInput) (ListEmployeesOutput, error)
}

type employeeLister interface {
	ListByManager(ctx context.Context, managerID int64) ([]domain.Employee, error)
}

type listEmployees struct {
	repo employeeLister
}

func NewListEmployees(repo employeeLister) ListEmployees {
	return &listEmployees{repo: repo}
}

func (uc *listEmployees) Execute(ctx context.Context, in ListEmployeesInput) (ListEmployeesOutput, error) {
	employees, err := uc.repo.ListByManager(ctx, in.ManagerID)
	if err != nil {
		return ListEmployeesOutput{}, fmt.Errorf("list employees: %w", err)
	}

	registers := make([]EmployeeOutput, 0, len(employees))
	for _, e := range employees {
		registers = append(registers, toEmployeeOutput(e))
	}

	return ListEmployeesOutput{
		Count:     len(registers),
		Registers: registers,
	}, nil
}
