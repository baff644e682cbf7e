package events

import "time"

const PayslipGeneratedTopic = "workforce.payslip.generated.v1"

type PayslipGeneratedEvent struct {
	EventType   string    `json:"event_type"`
	RequestID   string    `json:"request_id,omitempty"`
	PayslipID   string    `json:"payslip_id"`
	WorkerID    string    `json:"worker_id"`
	PeriodStart string    `json:"period_start"`
	PeriodEnd   string    `json:"period_end"`
	GeneratedBy string    `json:"generated_by"`
	OccurredAt  time.Time `json:"occurred_at"`
}
