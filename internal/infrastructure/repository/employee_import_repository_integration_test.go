package repository_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	domain "github.com/rafaelmp/employee-import/internal/domain/employee"
	"github.com/rafaelmp/employee-import/internal/infrastructure/repository"
)

const employeesSchema = `
CREATE TABLE IF NOT EXISTS employees (
  id BIGSERIAL PRIMARY KEY,
  name TEXT NOT NULL,
  email TEXT NOT NULL,
  cpf VARCHAR(11) NOT NULL,
  city TEXT NOT NULL,
  state VARCHAR(2) NOT NULL,
  manager_id BIGINT NOT NULL,
  created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
  updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_employees_email ON employees (email);
CREATE UNIQUE INDEX IF NOT EXISTS idx_employees_cpf ON employees (cpf);
`

func openEmployeesPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL is not set")
	}

	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		t.Fatalf("failed to create pool: %v", err)
	}
	t.Cleanup(pool.Close)

	if _, err := pool.Exec(context.Background(), employeesSchema); err != nil {
		t.Fatalf("failed to create table: %v", err)
	}
	if _, err := pool.Exec(context.Background(), "DELETE FROM employees"); err != nil {
		t.Fatalf("failed to cleanup employees: %v", err)
	}

	return pool
}

func TestEmployeeImportRepositoryCreateIntegration(t *testing.T) {
	pool := openEmployeesPool(t)
	repo := repository.NewEmployeeImportRepository(pool)

	rec := domain.Record{
		Name:  "Maria Silva",
		Email: "maria@example.com",
		CPF:   "11144477735",
		City:  "Recife",
		State: "PE",
	}

	created, err := repo.Create(context.Background(), 7, rec)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected generated id")
	}
	if created.ManagerID != 7 {
		t.Fatalf("unexpected manager id: %d", created.ManagerID)
	}

	exists, err := repo.EmailExists(context.Background(), rec.Email)
	if err != nil || !exists {
		t.Fatalf("expected email to exist, got %v %v", exists, err)
	}
	exists, err = repo.CPFExists(context.Background(), rec.CPF)
	if err != nil || !exists {
		t.Fatalf("expected cpf to exist, got %v %v", exists, err)
	}

	exists, err = repo.EmailExists(context.Background(), "nobody@example.com")
	if err != nil || exists {
		t.Fatalf("expected email to be free, got %v %v", exists, err)
	}
}

func TestEmployeeImportRepositoryUniqueViolationIntegration(t *testing.T) {
	pool := openEmployeesPool(t)
	repo := repository.NewEmployeeImportRepository(pool)

	rec := domain.Record{
		Name:  "Maria Silva",
		Email: "maria@example.com",
		CPF:   "11144477735",
		City:  "Recife",
		State: "PE",
	}
	if _, err := repo.Create(context.Background(), 7, rec); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	dupEmail := rec
	dupEmail.CPF = "12345678909"
	_, err := repo.Create(context.Background(), 7, dupEmail)
	if !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}

	dupCPF := rec
	dupCPF.Email = "outra@example.com"
	_, err = repo.Create(context.Background(), 7, dupCPF)
	if !errors.Is(err, domain.ErrDuplicateCPF) {
		t.Fatalf("expected ErrDuplicateCPF, got %v", err)
	}
}
