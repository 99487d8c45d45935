package assignment

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=assignment_repo.go -destination=mock/assignment_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, record *EmployeeDevice) error
	FindByID(ctx context.Context, id uuid.UUID) (*EmployeeDevice, error)
	MarkRetrieved(ctx context.Context, id uuid.UUID, retrievedOn time.Time, retrievedByID uuid.UUID, remark string) (bool, error)
	List(ctx context.Context, offset, limit int) ([]EmployeeDevice, int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, record *EmployeeDevice) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*EmployeeDevice, error) {
	var record EmployeeDevice
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Preload("Device").
		Preload("AssignedBy").
		Preload("RetrievedBy").
		Where("id = ?", id).
		First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// MarkRetrieved closes the loan. The is_retrieved guard in the WHERE
// clause makes a second call a no-op, reported through the bool.
func (r *repository) MarkRetrieved(ctx context.Context, id uuid.UUID, retrievedOn time.Time, retrievedByID uuid.UUID, remark string) (bool, error) {
	fields := map[string]any{
		"is_retrieved":    true,
		"retrieved_on":    retrievedOn,
		"retrieved_by_id": retrievedByID,
	}
	if remark != "" {
		fields["remark"] = remark
	}

	res := r.db.WithContext(ctx).
		Model(&EmployeeDevice{}).
		Where("id = ? AND is_retrieved = false", id).
		Updates(fields)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *repository) List(ctx context.Context, offset, limit int) ([]EmployeeDevice, int64, error) {
	q := r.db.WithContext(ctx).Model(&EmployeeDevice{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var records []EmployeeDevice
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Preload("Device").
		Preload("AssignedBy").
		Preload("RetrievedBy").
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&records).Error
	return records, total, err
}
