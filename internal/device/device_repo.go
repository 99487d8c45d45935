package device

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=device_repo.go -destination=mock/device_repo_mock.go -package=mock
type Repository interface {
	// WithTx returns a repository bound to tx so ledger adjustments can
	// share a transaction with assignment writes. A nil tx returns the
	// receiver unchanged.
	WithTx(tx *gorm.DB) Repository

	Create(ctx context.Context, device *Device) error
	FindBySpec(ctx context.Context, model, manufacturer, screenSize, processor, ram, storage string) (*Device, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Device, error)
	FindActiveByID(ctx context.Context, id uuid.UUID) (*Device, error)
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) error
	AppendImages(ctx context.Context, id uuid.UUID, images []string) (bool, error)
	AddUnits(ctx context.Context, id uuid.UUID, delta int) (bool, error)
	TakeUnit(ctx context.Context, id uuid.UUID) (bool, error)
	ReturnUnit(ctx context.Context, id uuid.UUID) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, search string, offset, limit int) ([]Device, int64, error)
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

func (r *repository) Create(ctx context.Context, device *Device) error {
	return r.db.WithContext(ctx).Create(device).Error
}

func (r *repository) FindBySpec(ctx context.Context, model, manufacturer, screenSize, processor, ram, storage string) (*Device, error) {
	var d Device
	err := r.db.WithContext(ctx).
		Where("model = ? AND manufacturer = ? AND screen_size = ? AND processor = ? AND ram = ? AND storage = ?",
			model, manufacturer, screenSize, processor, ram, storage).
		Where("is_deleted = false").
		First(&d).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Device, error) {
	var d Device
	err := r.db.WithContext(ctx).First(&d, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *repository) FindActiveByID(ctx context.Context, id uuid.UUID) (*Device, error) {
	var d Device
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_deleted = false", id).
		First(&d).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *repository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&Device{}).
		Where("id = ?", id).
		Updates(fields).Error
}

// AppendImages concatenates new entries onto the images array in SQL so
// concurrent appends cannot overwrite each other. A false return means no
// active device matched.
func (r *repository) AppendImages(ctx context.Context, id uuid.UUID, images []string) (bool, error) {
	payload, err := json.Marshal(images)
	if err != nil {
		return false, err
	}
	res := r.db.WithContext(ctx).
		Model(&Device{}).
		Where("id = ? AND is_deleted = false", id).
		Update("images", gorm.Expr("COALESCE(images, '[]'::jsonb) || ?::jsonb", string(payload)))
	return res.RowsAffected > 0, res.Error
}

// AddUnits applies a relative increment in SQL so concurrent callers
// cannot lose updates. The precondition keeps the counter non-negative;
// a false return means the device is missing, deleted, or the delta
// would underflow.
func (r *repository) AddUnits(ctx context.Context, id uuid.UUID, delta int) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&Device{}).
		Where("id = ? AND is_deleted = false AND total_units + ? >= 0", id, delta).
		Update("total_units", gorm.Expr("total_units + ?", delta))
	return res.RowsAffected > 0, res.Error
}

// TakeUnit claims one available unit. The availability check lives in the
// WHERE clause, so two concurrent claims on a one-unit device cannot both
// succeed.
func (r *repository) TakeUnit(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&Device{}).
		Where("id = ? AND is_deleted = false AND total_units >= 1", id).
		Update("total_units", gorm.Expr("total_units - 1"))
	return res.RowsAffected > 0, res.Error
}

// ReturnUnit puts one unit back. Deliberately ignores the soft-delete flag:
// a device retired while units were on loan still takes its units back.
func (r *repository) ReturnUnit(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&Device{}).
		Where("id = ?", id).
		Update("total_units", gorm.Expr("total_units + 1")).Error
}

func (r *repository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&Device{}).
		Where("id = ?", id).
		Update("is_deleted", true).Error
}

func (r *repository) List(ctx context.Context, search string, offset, limit int) ([]Device, int64, error) {
	q := r.db.WithContext(ctx).Model(&Device{}).Where("is_deleted = false")
	if search != "" {
		like := "%" + search + "%"
		q = q.Where(
			"model ILIKE ? OR manufacturer ILIKE ? OR screen_size ILIKE ? OR processor ILIKE ? OR ram ILIKE ? OR storage ILIKE ?",
			like, like, like, like, like, like,
		)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var devices []Device
	err := q.Order("created_at DESC").Offset(offset).Limit(limit).Find(&devices).Error
	return devices, total, err
}
