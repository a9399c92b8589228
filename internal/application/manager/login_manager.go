package manager

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/google/uuid"
	domain "github.com/rafaelmp/employee-import/internal/domain/manager"
	"golang.org/x/crypto/bcrypt"
)

type LoginManagerInput struct {
	Email    string
	Password string
}

type LoginManagerOutput struct {
	Token string `json:"token"`
}

type LoginManager interface {
	Execute(ctx context.Context, in LoginManagerInput) (LoginManagerOutput, error)
}

type credentialStore interface {
	FindByEmail(ctx context.Context, email string) (domain.Manager, error)
	StoreToken(ctx context.Context, managerID int64, tokenHash string) error
}

type loginManager struct {
	repo credentialStore
}

func NewLoginManager(repo credentialStore) LoginManager {
	return &loginManager{repo: repo}
}

func (uc *loginManager) Execute(ctx context.Context, in LoginManagerInput) (LoginManagerOutput, error) {
	m, err := uc.repo.FindByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, domain.ErrManagerNotFound) {
			return LoginManagerOutput{}, ErrInvalidCredentials
		}
		return LoginManagerOutput{}, fmt.Errorf("find manager: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(m.PasswordHash), []byte(in.Password)) != nil {
		return LoginManagerOutput{}, ErrInvalidCredentials
	}

	token := uuid.NewString()
	if err := uc.repo.StoreToken(ctx, m.ID, HashToken(token)); err != nil {
		return LoginManagerOutput{}, fmt.Errorf("store token: %w", err)
	}

	return LoginManagerOutput{Token: token}, nil
}

// HashToken is the stored form of a bearer token; only the hash ever
// touches the database.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
