package finance

import (
	"time"

	"github.com/shopspring/decimal"
)

type RecordTransactionRequest struct {
	TransactionType string          `json:"transaction_type" binding:"required,oneof=payroll expense reimbursement bonus deduction"`
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	Description     *string         `json:"description,omitempty" binding:"omitempty,max=500"`
	RelatedWorkerID *string         `json:"related_worker_id,omitempty" binding:"omitempty,uuid"`
	TransactionDate string          `json:"transaction_date" binding:"required"`
}

type ListTransactionsQuery struct {
	TransactionType string `form:"transaction_type" binding:"omitempty,oneof=payroll expense reimbursement bonus deduction"`
	WorkerID        string `form:"worker_id" binding:"omitempty,uuid"`
	From            string `form:"from"`
	To              string `form:"to"`
	Page            int    `form:"page,default=1" binding:"omitempty,min=1"`
	PageSize        int    `form:"page_size,default=20" binding:"omitempty,min=1,max=100"`
}

type SummaryQuery struct {
	From string `form:"from"`
	To   string `form:"to"`
}

type TransactionResponse struct {
	ID               string          `json:"id"`
	TransactionType  string          `json:"transaction_type"`
	Amount           decimal.Decimal `json:"amount"`
	Description      *string         `json:"description,omitempty"`
	ReferenceNumber  string          `json:"reference_number"`
	RecordedBy       string          `json:"recorded_by"`
	RelatedWorkerID  *string         `json:"related_worker_id,omitempty"`
	RelatedPayslipID *string         `json:"related_payslip_id,omitempty"`
	TransactionDate  string          `json:"transaction_date"`
	CreatedAt        time.Time       `json:"created_at"`
}

// TypeTotal is one aggregate bucket of the financial summary.
type TypeTotal struct {
	TransactionType string          `json:"transaction_type"`
	Total           decimal.Decimal `json:"total"`
	Count           int64           `json:"count"`
}

type SummaryResponse struct {
	From     string      `json:"from,omitempty"`
	To       string      `json:"to,omitempty"`
	ByType   []TypeTotal `json:"by_type"`
	NetTotal decimal.Decimal `json:"net_total"`
}

func toResponse(t *FinancialTransaction) TransactionResponse {
	resp := TransactionResponse{
		ID:              t.ID.String(),
		TransactionType: t.TransactionType,
		Amount:          t.Amount,
		Description:     t.Description,
		ReferenceNumber: t.ReferenceNumber,
		RecordedBy:      t.RecordedBy.String(),
		TransactionDate: t.TransactionDate.Format("2006-01-02"),
		CreatedAt:       t.CreatedAt,
	}
	if t.RelatedWorkerID != nil {
		v := t.RelatedWorkerID.String()
		resp.RelatedWorkerID = &v
	}
	if t.RelatedPayslipID != nil {
		v := t.RelatedPayslipID.String()
		resp.RelatedPayslipID = &v
	}
	return resp
}
