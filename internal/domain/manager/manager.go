// Package manager holds the account that owns imported employees.
package manager

import "errors"

var (
	ErrManagerNotFound = errors.New("manager not found")
	ErrEmailTaken      = errors.New("manager email already exists")
)

type Manager struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
}
