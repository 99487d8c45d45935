package employee

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, employee *Employee) error
	FindByID(ctx context.Context, id uuid.UUID) (*Employee, error)
	EmailInUse(ctx context.Context, email string) (bool, error)
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) error
	List(ctx context.Context, search string, offset, limit int) ([]Employee, int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, employee *Employee) error {
	return r.db.WithContext(ctx).Create(employee).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Employee, error) {
	var employee Employee
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&employee).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

// EmailInUse reports whether the address is held by an employee or a user
// account. The two tables share one staff email space.
func (r *repository) EmailInUse(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("email = ?", email).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	if count > 0 {
		return true, nil
	}

	err = r.db.WithContext(ctx).
		Table("users").
		Where("email = ? AND is_deleted = false", email).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *repository) List(ctx context.Context, search string, offset, limit int) ([]Employee, int64, error) {
	q := r.db.WithContext(ctx).Model(&Employee{})
	if search != "" {
		like := "%" + search + "%"
		q = q.Where(
			"first_name ILIKE ? OR last_name ILIKE ? OR email ILIKE ? OR role ILIKE ?",
			like, like, like, like,
		)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var employees []Employee
	err := q.Order("created_at DESC").Offset(offset).Limit(limit).Find(&employees).Error
	return employees, total, err
}
