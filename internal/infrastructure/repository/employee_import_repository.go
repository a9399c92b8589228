package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	domain "github.com/rafaelmp/employee-import/internal/domain/employee"
)

// uniqueViolation is the Postgres error code raised when a unique
// constraint rejects a row.
const uniqueViolation = "23505"

// EmployeeImportRepository is the import-path persistence collaborator.
// It runs on pgx directly: the import loop issues one insert per row and
// needs the constraint violation, not an upsert.
type EmployeeImportRepository struct {
	pool *pgxpool.Pool
}

func NewEmployeeImportRepository(pool *pgxpool.Pool) *EmployeeImportRepository {
	return &EmployeeImportRepository{pool: pool}
}

func (r *EmployeeImportRepository) Create(ctx context.Context, managerID int64, rec domain.Record) (domain.Employee, error) {
	var id int64
	err := r.pool.QueryRow(ctx, `
INSERT INTO employees (name, email, cpf, city, state, manager_id, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
RETURNING id
`, rec.Name, rec.Email, rec.CPF, rec.City, rec.State, managerID).Scan(&id)
	if err != nil {
		if dupErr := translateUniqueViolation(err); dupErr != nil {
			return domain.Employee{}, dupErr
		}
		return domain.Employee{}, fmt.Errorf("insert employee: %w", err)
	}

	return domain.Employee{
		ID:        id,
		Name:      rec.Name,
		Email:     rec.Email,
		CPF:       rec.CPF,
		City:      rec.City,
		State:     rec.State,
		ManagerID: managerID,
	}, nil
}

func (r *EmployeeImportRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM employees WHERE email = $1)", email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check email exists: %w", err)
	}
	return exists, nil
}

func (r *EmployeeImportRepository) CPFExists(ctx context.Context, digits string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM employees WHERE cpf = $1)", digits).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check cpf exists: %w", err)
	}
	return exists, nil
}

// translateUniqueViolation maps a 23505 rejection to the typed duplicate
// error for the violated column, or nil when err is something else.
func translateUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolation {
		return nil
	}

	constraint := strings.ToLower(pgErr.ConstraintName)
	switch {
	case strings.Contains(constraint, "cpf"):
		return domain.ErrDuplicateCPF
	case strings.Contains(constraint, "email"):
		return domain.ErrDuplicateEmail
	}
	// Unique violation on an unknown constraint; email is the first
	// uniqueness rule checked downstream.
	return domain.ErrDuplicateEmail
}
