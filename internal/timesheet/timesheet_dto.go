package timesheet

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateTimesheetRequest struct {
	WorkerID        string  `json:"worker_id" binding:"required,uuid"`
	Date            string  `json:"date" binding:"required"`
	ClockIn         string  `json:"clock_in" binding:"required"`
	ClockOut        string  `json:"clock_out" binding:"required"`
	TaskDescription *string `json:"task_description,omitempty" binding:"omitempty,max=500"`
}

type ReviewTimesheetRequest struct {
	Decision string  `json:"decision" binding:"required,oneof=approved rejected flagged"`
	Note     *string `json:"note,omitempty" binding:"omitempty,max=500"`
}

type ListTimesheetsQuery struct {
	WorkerID     string `form:"worker_id" binding:"omitempty,uuid"`
	SupervisorID string `form:"supervisor_id" binding:"omitempty,uuid"`
	Status       string `form:"status" binding:"omitempty,oneof=pending approved rejected flagged"`
	From     string `form:"from"`
	To       string `form:"to"`
	Page     int    `form:"page,default=1" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size,default=20" binding:"omitempty,min=1,max=100"`
}

type TimesheetResponse struct {
	ID              string          `json:"id"`
	WorkerID        string          `json:"worker_id"`
	SupervisorID    string          `json:"supervisor_id"`
	Date            string          `json:"date"`
	ClockIn         string          `json:"clock_in"`
	ClockOut        string          `json:"clock_out"`
	TotalHours      decimal.Decimal `json:"total_hours"`
	TaskDescription *string         `json:"task_description,omitempty"`
	Status          string          `json:"status"`
	ReviewNote      *string         `json:"review_note,omitempty"`
	ApprovedBy      *string         `json:"approved_by,omitempty"`
	ApprovedAt      *time.Time      `json:"approved_at,omitempty"`
}

func toResponse(ts *Timesheet) TimesheetResponse {
	resp := TimesheetResponse{
		ID:              ts.ID.String(),
		WorkerID:        ts.WorkerID.String(),
		SupervisorID:    ts.SupervisorID.String(),
		Date:            ts.Date.Format("2006-01-02"),
		ClockIn:         ts.ClockIn,
		ClockOut:        ts.ClockOut,
		TotalHours:      ts.TotalHours,
		TaskDescription: ts.TaskDescription,
		Status:          ts.Status,
		ReviewNote:      ts.ReviewNote,
		ApprovedAt:      ts.ApprovedAt,
	}
	if ts.ApprovedBy != nil {
		v := ts.ApprovedBy.String()
		resp.ApprovedBy = &v
	}
	return resp
}
