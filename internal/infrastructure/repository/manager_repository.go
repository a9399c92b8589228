package repository

import (
	"context"
	"errors"
	"fmt"

	manager "github.com/rafaelmp/employee-import/internal/domain/manager"
	"github.com/rafaelmp/employee-import/internal/infrastructure/db/models"
	"gorm.io/gorm"
)

type ManagerRepository struct {
	db *gorm.DB
}

func NewManagerRepository(db *gorm.DB) *ManagerRepository {
	return &ManagerRepository{db: db}
}

func (r *ManagerRepository) Create(ctx context.Context, name, email, passwordHash string) (manager.Manager, error) {
	row := models.Manager{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if dupErr := translateUniqueViolation(err); dupErr != nil {
			return manager.Manager{}, manager.ErrEmailTaken
		}
		return manager.Manager{}, fmt.Errorf("create manager: %w", err)
	}
	return toDomainManager(row), nil
}

func (r *ManagerRepository) FindByEmail(ctx context.Context, email string) (manager.Manager, error) {
	var row models.Manager
	err := r.db.WithContext(ctx).First(&row, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return manager.Manager{}, manager.ErrManagerNotFound
		}
		return manager.Manager{}, fmt.Errorf("find manager by email: %w", err)
	}
	return toDomainManager(row), nil
}

func (r *ManagerRepository) FindByID(ctx context.Context, id int64) (manager.Manager, error) {
	var row models.Manager
	err := r.db.WithContext(ctx).First(&row, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return manager.Manager{}, manager.ErrManagerNotFound
		}
		return manager.Manager{}, fmt.Errorf("find manager by id: %w", err)
	}
	return toDomainManager(row), nil
}

func (r *ManagerRepository) StoreToken(ctx context.Context, managerID int64, tokenHash string) error {
	row := models.APIToken{ManagerID: managerID, TokenHash: tokenHash}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("store api token: %w", err)
	}
	return nil
}

func (r *ManagerRepository) FindByToken(ctx context.Context, tokenHash string) (manager.Manager, error) {
	var token models.APIToken
	err := r.db.WithContext(ctx).First(&token, "token_hash = ?", tokenHash).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return manager.Manager{}, manager.ErrManagerNotFound
		}
		return manager.Manager{}, fmt.Errorf("find api token: %w", err)
	}
	return r.FindByID(ctx, token.ManagerID)
}

func (r *ManagerRepository) RevokeToken(ctx context.Context, tokenHash string) error {
	err := r.db.WithContext(ctx).
		Where("token_hash = ?", tokenHash).
		Delete(&models.APIToken{}).Error
	if err != nil {
		return fmt.Errorf("revoke api token: %w", err)
	}
	return nil
}

func toDomainManager(row models.Manager) manager.Manager {
	return manager.Manager{
		ID:           row.ID,
		Name:         row.Name,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
	}
}
