package contract

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateContractRequest struct {
	WorkerID   string           `json:"worker_id" binding:"required,uuid"`
	Title      string           `json:"title" binding:"required,max=255"`
	HourlyRate decimal.Decimal  `json:"hourly_rate" binding:"required"`
	DailyRate  *decimal.Decimal `json:"daily_rate,omitempty"`
	StartDate  string           `json:"start_date" binding:"required"`
	EndDate    *string          `json:"end_date,omitempty"`
}

type ContractResponse struct {
	ID         string           `json:"id"`
	WorkerID   string           `json:"worker_id"`
	Title      string           `json:"title"`
	HourlyRate decimal.Decimal  `json:"hourly_rate"`
	DailyRate  *decimal.Decimal `json:"daily_rate,omitempty"`
	StartDate  string           `json:"start_date"`
	EndDate    *string          `json:"end_date,omitempty"`
	IsActive   bool             `json:"is_active"`
	CreatedBy  string           `json:"created_by"`
	ApprovedBy *string          `json:"approved_by,omitempty"`
	ApprovedAt *time.Time       `json:"approved_at,omitempty"`
}

func toResponse(c *Contract) ContractResponse {
	resp := ContractResponse{
		ID:         c.ID.String(),
		WorkerID:   c.WorkerID.String(),
		Title:      c.Title,
		HourlyRate: c.HourlyRate,
		DailyRate:  c.DailyRate,
		StartDate:  c.StartDate.Format("2006-01-02"),
		IsActive:   c.IsActive,
		CreatedBy:  c.CreatedBy.String(),
		ApprovedAt: c.ApprovedAt,
	}
	if c.EndDate != nil {
		v := c.EndDate.Format("2006-01-02")
		resp.EndDate = &v
	}
	if c.ApprovedBy != nil {
		v := c.ApprovedBy.String()
		resp.ApprovedBy = &v
	}
	return resp
}
