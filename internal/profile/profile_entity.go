package profile

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	EmploymentPermanent = "permanent"
	EmploymentTemporary = "temporary"
)

const (
	AccountStatusPending  = "pending"
	AccountStatusApproved = "approved"
	AccountStatusRejected = "rejected"
)

// Profile shares its primary key with the auth user it belongs to.
type Profile struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	FullName       string          `gorm:"size:255;not null" json:"full_name"`
	Email          string          `gorm:"size:255;not null" json:"email"`
	Phone          *string         `gorm:"size:50" json:"phone,omitempty"`
	Position       *string         `gorm:"size:100" json:"position,omitempty"`
	Department     *string         `gorm:"size:100" json:"department,omitempty"`
	EmploymentType string          `gorm:"size:20;not null;default:permanent" json:"employment_type"`
	SupervisorID   *uuid.UUID      `gorm:"type:uuid;index" json:"supervisor_id,omitempty"`
	AvatarURL      *string         `gorm:"size:500" json:"avatar_url,omitempty"`
	Location       *string         `gorm:"size:100" json:"location,omitempty"`
	HourlyRate     decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0" json:"hourly_rate"`
	AccountStatus  string          `gorm:"size:20;not null;default:pending;index" json:"account_status"`
	IsActive       bool            `gorm:"not null;default:true" json:"is_active"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	DeletedAt      gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (Profile) TableName() string {
	return "profiles"
}
