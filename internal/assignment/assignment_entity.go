package assignment

import (
	"time"

	"github.com/google/uuid"

	"assetdesk/internal/device"
	"assetdesk/internal/employee"
	"assetdesk/internal/user"
)

// EmployeeDevice is one loan record. It is terminal once IsRetrieved is
// set; a new loan of the same device gets a fresh row.
type EmployeeDevice struct {
	ID            uuid.UUID          `gorm:"column:id;type:uuid;primaryKey"`
	EmployeeID    uuid.UUID          `gorm:"column:employee_id;type:uuid;not null;index"`
	Employee      *employee.Employee `gorm:"foreignKey:EmployeeID"`
	DeviceID      uuid.UUID          `gorm:"column:device_id;type:uuid;not null;index"`
	Device        *device.Device     `gorm:"foreignKey:DeviceID"`
	AssignedOn    time.Time          `gorm:"column:assigned_on;not null"`
	AssignedByID  uuid.UUID          `gorm:"column:assigned_by_id;type:uuid;not null"`
	AssignedBy    *user.User         `gorm:"foreignKey:AssignedByID"`
	RetrievedOn   *time.Time         `gorm:"column:retrieved_on"`
	RetrievedByID *uuid.UUID         `gorm:"column:retrieved_by_id;type:uuid"`
	RetrievedBy   *user.User         `gorm:"foreignKey:RetrievedByID"`
	IsRetrieved   bool               `gorm:"column:is_retrieved;not null;default:false;index"`
	Remark        string             `gorm:"column:remark;type:text"`
	CreatedAt     time.Time          `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time          `gorm:"column:updated_at;autoUpdateTime"`
}

func (EmployeeDevice) TableName() string {
	return "employee_devices"
}
