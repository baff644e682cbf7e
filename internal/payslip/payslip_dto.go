package payslip

import (
	"time"

	"github.com/shopspring/decimal"
)

type GeneratePayslipRequest struct {
	WorkerID string `json:"worker_id" binding:"required,uuid"`
	// PeriodDate is any calendar day inside the target fortnight.
	PeriodDate string           `json:"period_date" binding:"required"`
	Deductions *decimal.Decimal `json:"deductions,omitempty"`
	Notes      *string          `json:"notes,omitempty" binding:"omitempty,max=500"`
}

type ListPayslipsQuery struct {
	WorkerID string `form:"worker_id" binding:"omitempty,uuid"`
	Status   string `form:"status" binding:"omitempty,oneof=draft generated paid"`
	From     string `form:"from"`
	To       string `form:"to"`
	Page     int    `form:"page,default=1" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size,default=20" binding:"omitempty,min=1,max=100"`
}

type PayslipResponse struct {
	ID          string          `json:"id"`
	WorkerID    string          `json:"worker_id"`
	PeriodStart string          `json:"period_start"`
	PeriodEnd   string          `json:"period_end"`
	TotalHours  decimal.Decimal `json:"total_hours"`
	HourlyRate  decimal.Decimal `json:"hourly_rate"`
	GrossPay    decimal.Decimal `json:"gross_pay"`
	Deductions  decimal.Decimal `json:"deductions"`
	NetPay      decimal.Decimal `json:"net_pay"`
	Status      string          `json:"status"`
	GeneratedBy *string         `json:"generated_by,omitempty"`
	PaidBy      *string         `json:"paid_by,omitempty"`
	PaidAt      *time.Time      `json:"paid_at,omitempty"`
	Notes       *string         `json:"notes,omitempty"`
}

func toResponse(p *Payslip) PayslipResponse {
	resp := PayslipResponse{
		ID:          p.ID.String(),
		WorkerID:    p.WorkerID.String(),
		PeriodStart: p.PeriodStart.Format("2006-01-02"),
		PeriodEnd:   p.PeriodEnd.Format("2006-01-02"),
		TotalHours:  p.TotalHours,
		HourlyRate:  p.HourlyRate,
		GrossPay:    p.GrossPay,
		Deductions:  p.Deductions,
		NetPay:      p.NetPay,
		Status:      p.Status,
		PaidAt:      p.PaidAt,
		Notes:       p.Notes,
	}
	if p.GeneratedBy != nil {
		v := p.GeneratedBy.String()
		resp.GeneratedBy = &v
	}
	if p.PaidBy != nil {
		v := p.PaidBy.String()
		resp.PaidBy = &v
	}
	return resp
}
