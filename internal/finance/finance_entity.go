package finance

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	TypePayroll       = "payroll"
	TypeExpense       = "expense"
	TypeReimbursement = "reimbursement"
	TypeBonus         = "bonus"
	TypeDeduction     = "deduction"
)

type FinancialTransaction struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	TransactionType  string          `gorm:"size:20;not null;index" json:"transaction_type"`
	Amount           decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"amount"`
	Description      *string         `gorm:"size:500" json:"description,omitempty"`
	ReferenceNumber  string          `gorm:"size:20;not null;uniqueIndex:uq_transaction_reference" json:"reference_number"`
	RecordedBy       uuid.UUID       `gorm:"type:uuid;not null" json:"recorded_by"`
	RelatedWorkerID  *uuid.UUID      `gorm:"type:uuid;index" json:"related_worker_id,omitempty"`
	RelatedPayslipID *uuid.UUID      `gorm:"type:uuid;index" json:"related_payslip_id,omitempty"`
	TransactionDate  time.Time       `gorm:"type:date;not null;index" json:"transaction_date"`
	CreatedAt        time.Time       `json:"created_at"`
}

func (FinancialTransaction) TableName() string {
	return "financial_transactions"
}

func validType(v string) bool {
	switch v {
	case TypePayroll, TypeExpense, TypeReimbursement, TypeBonus, TypeDeduction:
		return true
	}
	return false
}
