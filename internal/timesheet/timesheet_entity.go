package timesheet

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
	StatusFlagged  = "flagged"
)

// Timesheet is one worker-day of clocked time, recorded by the
// supervisor on site. Clock values are wall-clock strings because the
// crews report paper times, not device timestamps.
type Timesheet struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	WorkerID        uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_timesheet_worker_date" json:"worker_id"`
	SupervisorID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"supervisor_id"`
	Date            time.Time       `gorm:"type:date;not null;uniqueIndex:uq_timesheet_worker_date" json:"date"`
	ClockIn         string          `gorm:"size:5;not null" json:"clock_in"`
	ClockOut        string          `gorm:"size:5;not null" json:"clock_out"`
	TotalHours      decimal.Decimal `gorm:"type:numeric(6,2);not null" json:"total_hours"`
	TaskDescription *string         `gorm:"size:500" json:"task_description,omitempty"`
	Status          string          `gorm:"size:20;not null;default:pending;index" json:"status"`
	ReviewNote      *string         `gorm:"size:500" json:"review_note,omitempty"`
	ApprovedBy      *uuid.UUID      `gorm:"type:uuid" json:"approved_by,omitempty"`
	ApprovedAt      *time.Time      `json:"approved_at,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

func (Timesheet) TableName() string {
	return "timesheets"
}
