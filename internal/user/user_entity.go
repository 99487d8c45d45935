package user

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleAdmin     = "ADMIN"
	RoleITManager = "IT_MANAGER"
)

const (
	StatusActive    = "ACTIVE"
	StatusInactive  = "INACTIVE"
	StatusSuspended = "SUSPENDED"
)

type User struct {
	ID                        uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	FirstName                 string     `gorm:"column:first_name;type:varchar(100);not null"`
	LastName                  string     `gorm:"column:last_name;type:varchar(100);not null"`
	Email                     string     `gorm:"column:email;type:varchar(255);uniqueIndex;not null"`
	Password                  string     `gorm:"column:password;type:text;not null"`
	StaffID                   string     `gorm:"column:staff_id;type:varchar(50)"`
	PhoneNumber               string     `gorm:"column:phone_number;type:varchar(50)"`
	OfficeLocation            string     `gorm:"column:office_location;type:varchar(255)"`
	Avatar                    string     `gorm:"column:avatar;type:text"`
	Role                      string     `gorm:"column:role;type:varchar(50);not null;default:IT_MANAGER"`
	AccountStatus             string     `gorm:"column:account_status;type:varchar(20);not null;default:INACTIVE"`
	IsActive                  bool       `gorm:"column:is_active;default:false"`
	VerificationCode          string     `gorm:"column:verification_code;type:varchar(64)"`
	VerificationCodeExpiresAt *time.Time `gorm:"column:verification_code_expires_at"`
	LastLogin                 *time.Time `gorm:"column:last_login"`
	IsDeleted                 bool       `gorm:"column:is_deleted;default:false"`
	CreatedAt                 time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt                 time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

// TokenBlacklist marks a revoked bearer token. ExpiresAt mirrors the token's
// own expiry so the sweeper can drop rows once they are redundant.
type TokenBlacklist struct {
	TokenHash string    `gorm:"column:token_hash;type:varchar(64);primaryKey"`
	ExpiresAt time.Time `gorm:"column:expires_at;not null;index"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (TokenBlacklist) TableName() string {
	return "token_blacklist"
}
