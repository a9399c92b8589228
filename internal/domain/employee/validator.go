package employee

import (
	"context"
	"fmt"
	"net/mail"
	"regexp"
	"unicode/utf8"

	"github.com/rafaelmp/employee-import/internal/brstates"
	"github.com/rafaelmp/employee-import/internal/cpf"
)

// namePattern allows letters (including the accented Latin-1 range) and
// whitespace only.
var namePattern = regexp.MustCompile(`^[a-zA-ZÀ-ÿ\s]+$`)

// UniquenessChecker answers whether a value is already taken, either in
// persisted data or earlier in the same batch.
type UniquenessChecker interface {
	EmailExists(ctx context.Context, email string) (bool, error)
	CPFExists(ctx context.Context, digits string) (bool, error)
}

// FieldErrors maps a field name to the ordered list of messages produced
// by its failing rules.
type FieldErrors map[string][]string

func (fe FieldErrors) add(field, message string) {
	fe[field] = append(fe[field], message)
}

// Outcome carries a validated record together with every field failure.
// A record is acceptable only when FieldErrors is empty.
type Outcome struct {
	Record      Record
	FieldErrors FieldErrors
}

// Valid reports whether the record passed every rule.
func (o Outcome) Valid() bool {
	return len(o.FieldErrors) == 0
}

// Validate applies the full field-rule set to a normalized record. All
// fields are checked; the outcome aggregates every failing field rather
// than stopping at the first. The returned error is a lookup fault from
// the uniqueness checker, not a validation verdict.
func Validate(ctx context.Context, rec Record, checker UniquenessChecker) (Outcome, error) {
	fieldErrors := FieldErrors{}

	validateName(rec.Name, fieldErrors)

	if err := validateEmail(ctx, rec.Email, checker, fieldErrors); err != nil {
		return Outcome{}, err
	}
	if err := validateCPF(ctx, rec.CPF, checker, fieldErrors); err != nil {
		return Outcome{}, err
	}

	validateCity(rec.City, fieldErrors)
	validateState(rec.State, fieldErrors)

	return Outcome{Record: rec, FieldErrors: fieldErrors}, nil
}

func validateName(name string, fieldErrors FieldErrors) {
	if name == "" {
		fieldErrors.add("name", "the name field is required")
		return
	}
	if utf8.RuneCountInString(name) < 3 {
		fieldErrors.add("name", "the name must be at least 3 characters")
	}
	if utf8.RuneCountInString(name) > 255 {
		fieldErrors.add("name", "the name must not be greater than 255 characters")
	}
	if !namePattern.MatchString(name) {
		fieldErrors.add("name", "the name may only contain letters and spaces")
	}
}

func validateEmail(ctx context.Context, email string, checker UniquenessChecker, fieldErrors FieldErrors) error {
	if email == "" {
		fieldErrors.add("email", "the email field is required")
		return nil
	}
	if _, err := mail.ParseAddress(email); err != nil {
		fieldErrors.add("email", "the email must be a valid email address")
	}
	if utf8.RuneCountInString(email) > 255 {
		fieldErrors.add("email", "the email must not be greater than 255 characters")
	}

	exists, err := checker.EmailExists(ctx, email)
	if err != nil {
		return fmt.Errorf("check email uniqueness: %w", err)
	}
	if exists {
		fieldErrors.add("email", "the email has already been taken")
	}
	return nil
}

func validateCPF(ctx context.Context, value string, checker UniquenessChecker, fieldErrors FieldErrors) error {
	if value == "" {
		fieldErrors.add("cpf", "the cpf field is required")
		return nil
	}
	if !cpf.MatchesFormat(value) {
		fieldErrors.add("cpf", "the cpf format is invalid")
	}

	digits := cpf.Normalize(value)

	exists, err := checker.CPFExists(ctx, digits)
	if err != nil {
		return fmt.Errorf("check cpf uniqueness: %w", err)
	}
	if exists {
		fieldErrors.add("cpf", "the cpf has already been taken")
	}

	if !cpf.IsValid(digits) {
		fieldErrors.add("cpf", "the cpf is not a valid CPF number")
	}
	return nil
}

func validateCity(city string, fieldErrors FieldErrors) {
	if city == "" {
		fieldErrors.add("city", "the city field is required")
		return
	}
	if utf8.RuneCountInString(city) < 2 {
		fieldErrors.add("city", "the city must be at least 2 characters")
	}
	if utf8.RuneCountInString(city) > 100 {
		fieldErrors.add("city", "the city must not be greater than 100 characters")
	}
}

func validateState(state string, fieldErrors FieldErrors) {
	if state == "" {
		fieldErrors.add("state", "the state field is required")
		return
	}
	if len(state) != 2 || !brstates.IsValidAbbreviation(state) {
		fieldErrors.add("state", "the state must be a valid state abbreviation")
	}
}
