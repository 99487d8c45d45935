package device

import (
	"time"

	"github.com/google/uuid"
)

// Device is one catalog entry in the pool. TotalUnits counts the units
// currently available for assignment, not the fleet-wide total: it goes
// down on assignment and back up on retrieval, and never below zero.
type Device struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Model        string    `gorm:"column:model;type:varchar(255);not null"`
	Manufacturer string    `gorm:"column:manufacturer;type:varchar(255);not null"`
	ScreenSize   string    `gorm:"column:screen_size;type:varchar(50);not null"`
	Processor    string    `gorm:"column:processor;type:varchar(255);not null"`
	RAM          string    `gorm:"column:ram;type:varchar(50);not null"`
	Storage      string    `gorm:"column:storage;type:varchar(50);not null"`
	TotalUnits   int       `gorm:"column:total_units;not null;default:0;check:total_units >= 0"`
	Images       []string  `gorm:"column:images;type:jsonb;serializer:json"`
	Location     string    `gorm:"column:location;type:varchar(255)"`
	IsDeleted    bool      `gorm:"column:is_deleted;default:false"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
