package worksummary

import "time"

type SubmitSummaryRequest struct {
	// PeriodDate is any calendar day inside the fortnight being
	// summarized; it defaults to today when omitted.
	PeriodDate      string  `json:"period_date,omitempty"`
	Summary         string  `json:"summary" binding:"required,min=10"`
	TasksCompleted  *string `json:"tasks_completed,omitempty"`
	Challenges      *string `json:"challenges,omitempty"`
	NextPeriodGoals *string `json:"next_period_goals,omitempty"`
}

type ReviewSummaryRequest struct {
	Note *string `json:"note,omitempty" binding:"omitempty,max=500"`
}

type ListSummariesQuery struct {
	WorkerID string `form:"worker_id" binding:"omitempty,uuid"`
	Status   string `form:"status" binding:"omitempty,oneof=submitted reviewed"`
	Page     int    `form:"page,default=1" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size,default=20" binding:"omitempty,min=1,max=100"`
}

type SummaryResponse struct {
	ID              string     `json:"id"`
	WorkerID        string     `json:"worker_id"`
	PeriodStart     string     `json:"period_start"`
	PeriodEnd       string     `json:"period_end"`
	Summary         string     `json:"summary"`
	TasksCompleted  *string    `json:"tasks_completed,omitempty"`
	Challenges      *string    `json:"challenges,omitempty"`
	NextPeriodGoals *string    `json:"next_period_goals,omitempty"`
	Status          string     `json:"status"`
	ReviewedBy      *string    `json:"reviewed_by,omitempty"`
	ReviewedAt      *time.Time `json:"reviewed_at,omitempty"`
	ReviewNote      *string    `json:"review_note,omitempty"`
}

func toResponse(ws *WorkSummary) SummaryResponse {
	resp := SummaryResponse{
		ID:              ws.ID.String(),
		WorkerID:        ws.WorkerID.String(),
		PeriodStart:     ws.PeriodStart.Format("2006-01-02"),
		PeriodEnd:       ws.PeriodEnd.Format("2006-01-02"),
		Summary:         ws.Summary,
		TasksCompleted:  ws.TasksCompleted,
		Challenges:      ws.Challenges,
		NextPeriodGoals: ws.NextPeriodGoals,
		Status:          ws.Status,
		ReviewedAt:      ws.ReviewedAt,
		ReviewNote:      ws.ReviewNote,
	}
	if ws.ReviewedBy != nil {
		v := ws.ReviewedBy.String()
		resp.ReviewedBy = &v
	}
	return resp
}
