package manager

import (
	"context"
	"fmt"
)

type LogoutManagerInput struct {
	Token string
}

type LogoutManager interface {
	Execute(ctx context.Context, in LogoutManagerInput) error
}

type tokenRevoker interface {
	RevokeToken(ctx context.Context, tokenHash string) error
}

type logoutManager struct {
	repo tokenRevoker
}

func NewLogoutManager(repo tokenRevoker) LogoutManager {
	return &logoutManager{repo: repo}
}

func (uc *logoutManager) Execute(ctx context.Context, in LogoutManagerInput) error {
	if err := uc.repo.RevokeToken(ctx, HashToken(in.Token)); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}
