package employee

import (
	"time"

	"github.com/google/uuid"

	"assetdesk/internal/user"
)

const (
	RoleDeveloper      = "DEVELOPER"
	RoleDesigner       = "DESIGNER"
	RoleSales          = "SALES"
	RoleMarketing      = "MARKETING"
	RoleHumanResources = "HUMAN_RESOURCES"
	RoleFinance        = "FINANCE"
)

func IsValidRole(role string) bool {
	switch role {
	case RoleDeveloper, RoleDesigner, RoleSales, RoleMarketing, RoleHumanResources, RoleFinance:
		return true
	}
	return false
}

// Employee is a device-assignment subject. It shares the staff email space
// with User accounts, so onboarding checks uniqueness across both tables.
type Employee struct {
	ID             uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	FirstName      string     `gorm:"column:first_name;type:varchar(100);not null"`
	LastName       string     `gorm:"column:last_name;type:varchar(100);not null"`
	Email          string     `gorm:"column:email;type:varchar(255);uniqueIndex;not null"`
	StaffID        string     `gorm:"column:staff_id;type:varchar(50)"`
	PhoneNumber    string     `gorm:"column:phone_number;type:varchar(50)"`
	OfficeLocation string     `gorm:"column:office_location;type:varchar(255)"`
	Role           string     `gorm:"column:role;type:varchar(50);not null"`
	Avatar         string     `gorm:"column:avatar;type:text"`
	OnboardedByID  uuid.UUID  `gorm:"column:onboarded_by_id;type:uuid;not null"`
	OnboardedBy    *user.User `gorm:"foreignKey:OnboardedByID"`
	OnboardingDate time.Time  `gorm:"column:onboarding_date;not null"`
	CreatedAt      time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}
