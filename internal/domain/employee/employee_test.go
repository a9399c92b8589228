package employee_test

import (
	"testing"

	domain "github.com/rafaelmp/employee-import/internal/domain/employee"
)

func TestFromRowNormalizes(t *testing.T) {
	t.Parallel()

	rec := domain.FromRow(map[string]string{
		"name":  "  João Silva  ",
		"email": " joao@test.com ",
		"cpf":   "111.444.777-35",
		"city":  " São Paulo ",
		"state": "Pernambuco",
	})

	if rec.Name != "João Silva" {
		t.Fatalf("unexpected name: %q", rec.Name)
	}
	if rec.Email != "joao@test.com" {
		t.Fatalf("unexpected email: %q", rec.Email)
	}
	if rec.CPF != "11144477735" {
		t.Fatalf("unexpected cpf: %q", rec.CPF)
	}
	if rec.City != "São Paulo" {
		t.Fatalf("unexpected city: %q", rec.City)
	}
	if rec.State != "PE" {
		t.Fatalf("unexpected state: %q", rec.State)
	}
}

func TestFromRowStateFallback(t *testing.T) {
	t.Parallel()

	// Unresolvable state text falls back to its first two characters,
	// upper-cased, and is left for the validator to reject or accept.
	rec := domain.FromRow(map[string]string{"state": "xyzland"})
	if rec.State != "XY" {
		t.Fatalf("unexpected state: %q", rec.State)
	}

	rec = domain.FromRow(map[string]string{"state": "rio de janeiro"})
	if rec.State != "RJ" {
		t.Fatalf("unexpected state: %q", rec.State)
	}
}

func TestFromRowMissingColumns(t *testing.T) {
	t.Parallel()

	rec := domain.FromRow(map[string]string{})
	if rec.Name != "" || rec.Email != "" || rec.CPF != "" || rec.City != "" || rec.State != "" {
		t.Fatalf("expected empty record, got %+v", rec)
	}
}

func TestFormattedCPF(t *testing.T) {
	t.Parallel()

	e := domain.Employee{CPF: "11144477735"}
	if e.FormattedCPF() != "111.444.777-35" {
		t.Fatalf("unexpected formatted cpf: %q", e.FormattedCPF())
	}
}

func TestNewImportReportCapsDetails(t *testing.T) {
	t.Parallel()

	details := make([]domain.ErrorDetail, 0, 150)
	for i := 0; i < 150; i++ {
		details = append(details, domain.ErrorDetail{Line: i + 2})
	}

	report := domain.NewImportReport(150, 0, 150, details)
	if len(report.ErrorDetails) != domain.MaxStoredErrorDetails {
		t.Fatalf("expected %d details, got %d", domain.MaxStoredErrorDetails, len(report.ErrorDetails))
	}
	if report.Errors != 150 {
		t.Fatalf("expected true error count, got %d", report.Errors)
	}
	// First-100 prefix, insertion order.
	if report.ErrorDetails[0].Line != 2 || report.ErrorDetails[99].Line != 101 {
		t.Fatalf("unexpected detail ordering: first=%d last=%d",
			report.ErrorDetails[0].Line, report.ErrorDetails[99].Line)
	}
}
