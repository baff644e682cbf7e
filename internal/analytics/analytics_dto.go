package analytics

// HeadcountBreakdown counts profiles by account status.
type HeadcountBreakdown struct {
	Approved int64 `json:"approved"`
	Pending  int64 `json:"pending"`
	Rejected int64 `json:"rejected"`
}

type DashboardResponse struct {
	Headcount         HeadcountBreakdown `json:"headcount"`
	PendingTimesheets int64              `json:"pending_timesheets"`
	FlaggedTimesheets int64              `json:"flagged_timesheets"`
	PeriodStart       string             `json:"period_start"`
	PeriodEnd         string             `json:"period_end"`
	ApprovedHours     string             `json:"approved_hours"`
	PayslipsGenerated int64              `json:"payslips_generated"`
	PayslipsPaid      int64              `json:"payslips_paid"`
}

// ExecutiveResponse extends the dashboard with the financial view.
type ExecutiveResponse struct {
	DashboardResponse
	PayrollCost     string `json:"payroll_cost"`
	ActiveContracts int64  `json:"active_contracts"`
}
