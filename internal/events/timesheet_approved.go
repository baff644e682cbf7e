package events

import "time"

const TimesheetApprovedTopic = "workforce.timesheet.approved.v1"

type TimesheetApprovedEvent struct {
	EventType   string    `json:"event_type"`
	RequestID   string    `json:"request_id,omitempty"`
	TimesheetID string    `json:"timesheet_id"`
	WorkerID    string    `json:"worker_id"`
	Date        string    `json:"date"`
	ApprovedBy  string    `json:"approved_by"`
	OccurredAt  time.Time `json:"occurred_at"`
}
