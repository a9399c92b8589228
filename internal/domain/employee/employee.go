package employee

import (
	"strings"

	"github.com/rafaelmp/employee-import/internal/brstates"
	"github.com/rafaelmp/employee-import/internal/cpf"
)

// Employee is a persisted record owned by a single manager.
type Employee struct {
	ID        int64
	Name      string
	Email     string
	CPF       string
	City      string
	State     string
	ManagerID int64
}

// FormattedCPF renders the stored digits in the punctuated form.
func (e Employee) FormattedCPF() string {
	return cpf.Format(e.CPF)
}

// Record is one normalized import row: fields trimmed, CPF reduced to
// digits, state resolved to a two-letter code.
type Record struct {
	Name  string
	Email string
	CPF   string
	City  string
	State string
}

// FromRow normalizes one raw CSV row into a Record. State resolution that
// fails falls back to the upper-cased first two characters of the raw text;
// the validator catches the nonsense values this can produce.
func FromRow(raw map[string]string) Record {
	rec := Record{
		Name:  strings.TrimSpace(raw["name"]),
		Email: strings.TrimSpace(raw["email"]),
		CPF:   strings.TrimSpace(raw["cpf"]),
		City:  strings.TrimSpace(raw["city"]),
		State: strings.TrimSpace(raw["state"]),
	}

	rec.CPF = cpf.Normalize(rec.CPF)

	if abbr := brstates.ToAbbreviation(rec.State); abbr != "" {
		rec.State = abbr
	} else {
		rec.State = strings.ToUpper(firstRunes(rec.State, 2))
	}

	return rec
}

func firstRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
