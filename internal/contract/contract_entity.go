package contract

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Contract is a negotiated engagement for one worker. An active
// approved contract's hourly rate overrides the profile rate during
// payslip generation.
type Contract struct {
	ID         uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	WorkerID   uuid.UUID        `gorm:"type:uuid;not null;index" json:"worker_id"`
	Title      string           `gorm:"size:255;not null" json:"title"`
	HourlyRate decimal.Decimal  `gorm:"type:numeric(10,2);not null" json:"hourly_rate"`
	DailyRate  *decimal.Decimal `gorm:"type:numeric(10,2)" json:"daily_rate,omitempty"`
	StartDate  time.Time        `gorm:"type:date;not null" json:"start_date"`
	EndDate    *time.Time       `gorm:"type:date" json:"end_date,omitempty"`
	IsActive   bool             `gorm:"not null;default:false;index" json:"is_active"`
	CreatedBy  uuid.UUID        `gorm:"type:uuid;not null" json:"created_by"`
	ApprovedBy *uuid.UUID       `gorm:"type:uuid" json:"approved_by,omitempty"`
	ApprovedAt *time.Time       `json:"approved_at,omitempty"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

func (Contract) TableName() string {
	return "contracts"
}
