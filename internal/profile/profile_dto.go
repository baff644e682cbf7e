package profile

import (
	"time"

	"github.com/shopspring/decimal"
)

type UpdateProfileRequest struct {
	FullName  *string `json:"full_name,omitempty" binding:"omitempty,min=2,max=255"`
	Phone     *string `json:"phone,omitempty" binding:"omitempty,max=50"`
	AvatarURL *string `json:"avatar_url,omitempty" binding:"omitempty,url"`
	Location  *string `json:"location,omitempty" binding:"omitempty,max=100"`
}

// UpdateEmploymentRequest covers the fields only management may touch.
type UpdateEmploymentRequest struct {
	Position       *string          `json:"position,omitempty" binding:"omitempty,max=100"`
	Department     *string          `json:"department,omitempty" binding:"omitempty,max=100"`
	EmploymentType *string          `json:"employment_type,omitempty" binding:"omitempty,oneof=permanent temporary"`
	SupervisorID   *string          `json:"supervisor_id,omitempty" binding:"omitempty,uuid"`
	HourlyRate     *decimal.Decimal `json:"hourly_rate,omitempty"`
}

type AccountDecisionRequest struct {
	Approve bool    `json:"approve"`
	Reason  *string `json:"reason,omitempty" binding:"omitempty,max=500"`
}

type ListProfilesQuery struct {
	AccountStatus  string `form:"account_status" binding:"omitempty,oneof=pending approved rejected"`
	EmploymentType string `form:"employment_type" binding:"omitempty,oneof=permanent temporary"`
	SupervisorID   string `form:"supervisor_id" binding:"omitempty,uuid"`
	Search         string `form:"search" binding:"omitempty,max=100"`
	Page           int    `form:"page,default=1" binding:"omitempty,min=1"`
	PageSize       int    `form:"page_size,default=20" binding:"omitempty,min=1,max=100"`
}

type ProfileResponse struct {
	ID             string          `json:"id"`
	FullName       string          `json:"full_name"`
	Email          string          `json:"email"`
	Phone          *string         `json:"phone,omitempty"`
	Position       *string         `json:"position,omitempty"`
	Department     *string         `json:"department,omitempty"`
	EmploymentType string          `json:"employment_type"`
	SupervisorID   *string         `json:"supervisor_id,omitempty"`
	AvatarURL      *string         `json:"avatar_url,omitempty"`
	Location       *string         `json:"location,omitempty"`
	HourlyRate     decimal.Decimal `json:"hourly_rate"`
	AccountStatus  string          `json:"account_status"`
	IsActive       bool            `json:"is_active"`
	CreatedAt      time.Time       `json:"created_at"`
}

func toResponse(p *Profile) ProfileResponse {
	resp := ProfileResponse{
		ID:             p.ID.String(),
		FullName:       p.FullName,
		Email:          p.Email,
		Phone:          p.Phone,
		Position:       p.Position,
		Department:     p.Department,
		EmploymentType: p.EmploymentType,
		AvatarURL:      p.AvatarURL,
		Location:       p.Location,
		HourlyRate:     p.HourlyRate,
		AccountStatus:  p.AccountStatus,
		IsActive:       p.IsActive,
		CreatedAt:      p.CreatedAt,
	}
	if p.SupervisorID != nil {
		s := p.SupervisorID.String()
		resp.SupervisorID = &s
	}
	return resp
}
