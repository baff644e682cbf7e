package worksummary

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusSubmitted = "submitted"
	StatusReviewed  = "reviewed"
)

// WorkSummary is a worker's own account of a fortnight, one row per
// worker per pay period.
type WorkSummary struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	WorkerID        uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_summary_worker_period" json:"worker_id"`
	PeriodStart     time.Time  `gorm:"type:date;not null;uniqueIndex:uq_summary_worker_period" json:"period_start"`
	PeriodEnd       time.Time  `gorm:"type:date;not null" json:"period_end"`
	Summary         string     `gorm:"type:text;not null" json:"summary"`
	TasksCompleted  *string    `gorm:"type:text" json:"tasks_completed,omitempty"`
	Challenges      *string    `gorm:"type:text" json:"challenges,omitempty"`
	NextPeriodGoals *string    `gorm:"type:text" json:"next_period_goals,omitempty"`
	Status          string     `gorm:"size:20;not null;default:submitted;index" json:"status"`
	ReviewedBy      *uuid.UUID `gorm:"type:uuid" json:"reviewed_by,omitempty"`
	ReviewedAt      *time.Time `json:"reviewed_at,omitempty"`
	ReviewNote      *string    `gorm:"size:500" json:"review_note,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func (WorkSummary) TableName() string {
	return "work_summaries"
}
