package payslip

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	StatusDraft     = "draft"
	StatusGenerated = "generated"
	StatusPaid      = "paid"
)

// Payslip is one worker's fortnight of pay. Amounts are numeric columns
// and travel as decimals end to end; float arithmetic never touches
// money.
type Payslip struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	WorkerID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_payslip_worker_period" json:"worker_id"`
	PeriodStart time.Time       `gorm:"type:date;not null;uniqueIndex:uq_payslip_worker_period" json:"period_start"`
	PeriodEnd   time.Time       `gorm:"type:date;not null" json:"period_end"`
	TotalHours  decimal.Decimal `gorm:"type:numeric(7,2);not null" json:"total_hours"`
	HourlyRate  decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"hourly_rate"`
	GrossPay    decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"gross_pay"`
	Deductions  decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"deductions"`
	NetPay      decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"net_pay"`
	Status      string          `gorm:"size:20;not null;default:draft;index" json:"status"`
	GeneratedBy *uuid.UUID      `gorm:"type:uuid" json:"generated_by,omitempty"`
	PaidBy      *uuid.UUID      `gorm:"type:uuid" json:"paid_by,omitempty"`
	PaidAt      *time.Time      `json:"paid_at,omitempty"`
	Notes       *string         `gorm:"size:500" json:"notes,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func (Payslip) TableName() string {
	return "payslips"
}
