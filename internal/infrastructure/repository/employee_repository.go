package repository

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/rafaelmp/employee-import/internal/domain/employee"
	"github.com/rafaelmp/employee-import/internal/infrastructure/db/models"
	"gorm.io/gorm"
)

// EmployeeRepository backs the manager-facing CRUD endpoints. All reads and
// writes are scoped to the owning manager.
type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) ListByManager(ctx context.Context, managerID int64) ([]domain.Employee, error) {
	var rows []models.Employee
	err := r.db.WithContext(ctx).
		Where("manager_id = ?", managerID).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}

	employees := make([]domain.Employee, 0, len(rows))
	for _, row := range rows {
		employees = append(employees, toDomainEmployee(row))
	}
	return employees, nil
}

func (r *EmployeeRepository) GetByID(ctx context.Context, managerID, id int64) (domain.Employee, error) {
	var row models.Employee
	err := r.db.WithContext(ctx).
		Where("manager_id = ?", managerID).
		First(&row, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Employee{}, domain.ErrEmployeeNotFound
		}
		return domain.Employee{}, fmt.Errorf("get employee: %w", err)
	}
	return toDomainEmployee(row), nil
}

func (r *EmployeeRepository) Update(ctx context.Context, managerID, id int64, rec domain.Record) (domain.Employee, error) {
	var row models.Employee
	err := r.db.WithContext(ctx).
		Where("manager_id = ?", managerID).
		First(&row, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Employee{}, domain.ErrEmployeeNotFound
		}
		return domain.Employee{}, fmt.Errorf("find employee for update: %w", err)
	}

	row.Name = rec.Name
	row.Email = rec.Email
	row.CPF = rec.CPF
	row.City = rec.City
	row.State = rec.State

	if err := r.db.WithContext(ctx).Save(&row).Error; err != nil {
		if dupErr := translateUniqueViolation(err); dupErr != nil {
			return domain.Employee{}, dupErr
		}
		return domain.Employee{}, fmt.Errorf("update employee: %w", err)
	}
	return toDomainEmployee(row), nil
}

func (r *EmployeeRepository) Delete(ctx context.Context, managerID, id int64) (domain.Employee, error) {
	var row models.Employee
	err := r.db.WithContext(ctx).
		Where("manager_id = ?", managerID).
		First(&row, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Employee{}, domain.ErrEmployeeNotFound
		}
		return domain.Employee{}, fmt.Errorf("find employee for delete: %w", err)
	}

	if err := r.db.WithContext(ctx).Delete(&row).Error; err != nil {
		return domain.Employee{}, fmt.Errorf("delete employee: %w", err)
	}
	return toDomainEmployee(row), nil
}

func toDomainEmployee(row models.Employee) domain.Employee {
	return domain.Employee{
		ID:        row.ID,
		Name:      row.Name,
		Email:     row.Email,
		CPF:       row.CPF,
		City:      row.City,
		State:     row.State,
		ManagerID: row.ManagerID,
	}
}
