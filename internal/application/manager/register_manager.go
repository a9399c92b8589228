package manager

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	domain "github.com/rafaelmp/employee-import/internal/domain/manager"
	"golang.org/x/crypto/bcrypt"
)

type RegisterManagerInput struct {
	Name     string
	Email    string
	Password string
}

type RegisterManagerOutput struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type RegisterManager interface {
	Execute(ctx context.Context, in RegisterManagerInput) (RegisterManagerOutput, error)
}

type managerCreator interface {
	Create(ctx context.Context, name, email, passwordHash string) (domain.Manager, error)
}

type registerManager struct {
	repo managerCreator
}

func NewRegisterManager(repo managerCreator) RegisterManager {
	return &registerManager{repo: repo}
}

func (uc *registerManager) Execute(ctx context.Context, in RegisterManagerInput) (RegisterManagerOutput, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)

	if utf8.RuneCountInString(name) < 3 || utf8.RuneCountInString(in.Password) < 8 {
		return RegisterManagerOutput{}, ErrInvalidRegistration
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return RegisterManagerOutput{}, ErrInvalidRegistration
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return RegisterManagerOutput{}, fmt.Errorf("hash password: %w", err)
	}

	created, err := uc.repo.Create(ctx, name, email, string(hash))
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return RegisterManagerOutput{}, ErrEmailTaken
		}
		return RegisterManagerOutput{}, fmt.Errorf("create manager: %w", err)
	}

	return RegisterManagerOutput{
		ID:    created.ID,
		Name:  created.Name,
		Email: created.Email,
	}, nil
}
