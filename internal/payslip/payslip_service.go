package payslip

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/simeongugl4-design/workforce-hub-png/internal/events"
	"github.com/simeongugl4-design/workforce-hub-png/internal/finance"
	"github.com/simeongugl4-design/workforce-hub-png/internal/messaging/kafka"
	"github.com/simeongugl4-design/workforce-hub-png/internal/payperiod"
	paysliperrors "github.com/simeongugl4-design/workforce-hub-png/internal/payslip/errors"
	"github.com/simeongugl4-design/workforce-hub-png/internal/profile"
	"github.com/simeongugl4-design/workforce-hub-png/internal/role"
	"github.com/simeongugl4-design/workforce-hub-png/internal/shared/contextutil"
	"github.com/simeongugl4-design/workforce-hub-png/internal/shared/counter"
	"github.com/simeongugl4-design/workforce-hub-png/internal/timesheet"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// RateProvider reports the hourly rate of an active contract, if any.
// A contract rate overrides the profile rate for the covered worker.
type RateProvider interface {
	ActiveHourlyRate(ctx context.Context, workerID uuid.UUID) (decimal.Decimal, bool, error)
}

//go:generate mockgen -source=payslip_service.go -destination=mock/payslip_service_mock.go -package=mock
type Service interface {
	Generate(ctx context.Context, actingUserID string, req GeneratePayslipRequest) (PayslipResponse, error)
	GenerateDraft(ctx context.Context, workerID uuid.UUID, anyPeriodDay time.Time) (PayslipResponse, error)
	Get(ctx context.Context, actingUserID string, primary role.Role, id string) (PayslipResponse, error)
	List(ctx context.Context, actingUserID string, primary role.Role, q ListPayslipsQuery) ([]PayslipResponse, int64, error)
	MarkPaid(ctx context.Context, actingUserID string, primary role.Role, id string) (PayslipResponse, error)
	RenderPDF(ctx context.Context, actingUserID string, primary role.Role, id string) ([]byte, error)
}

type service struct {
	db            *sql.DB
	repo          Repository
	profileRepo   profile.Repository
	timesheetRepo timesheet.Repository
	rates         RateProvider
	financeRepo   finance.Repository
	counters      counter.Repository
	outbox        kafka.OutboxRepository
	logger        *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	profileRepo profile.Repository,
	timesheetRepo timesheet.Repository,
	rates RateProvider,
	financeRepo finance.Repository,
	counters counter.Repository,
	outbox kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("payslip.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payslip.service")
	}
	return &service{
		db:            db,
		repo:          repo,
		profileRepo:   profileRepo,
		timesheetRepo: timesheetRepo,
		rates:         rates,
		financeRepo:   financeRepo,
		counters:      counters,
		outbox:        outbox,
		logger:        l,
	}
}

// Generate produces the final payslip for one worker's fortnight. Only
// approved timesheet hours count; pending and flagged entries are
// excluded by the aggregation itself. The slip and its downstream event
// commit in one transaction.
func (s *service) Generate(ctx context.Context, actingUserID string, req GeneratePayslipRequest) (PayslipResponse, error) {
	workerID, err := uuid.Parse(req.WorkerID)
	if err != nil {
		return PayslipResponse{}, paysliperrors.ErrPayslipNotFound
	}

	periodDay, err := time.Parse(dateLayout, req.PeriodDate)
	if err != nil {
		return PayslipResponse{}, paysliperrors.ErrInvalidPeriodDate
	}

	generatedBy, err := uuid.Parse(actingUserID)
	if err != nil {
		return PayslipResponse{}, paysliperrors.ErrForbiddenPayslipAccess
	}

	deductions := decimal.Zero
	if req.Deductions != nil {
		deductions = *req.Deductions
	}

	draft, err := s.buildPayslip(ctx, workerID, periodDay, deductions)
	if err != nil {
		return PayslipResponse{}, err
	}
	if draft.TotalHours.IsZero() {
		return PayslipResponse{}, paysliperrors.ErrNoApprovedHours
	}

	draft.Status = StatusGenerated
	draft.GeneratedBy = &generatedBy
	draft.Notes = req.Notes

	existing, err := s.repo.GetByWorkerAndPeriod(ctx, workerID, draft.PeriodStart)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return PayslipResponse{}, err
	}
	if existing != nil {
		switch existing.Status {
		case StatusPaid:
			return PayslipResponse{}, paysliperrors.ErrPayslipAlreadyPaid
		case StatusGenerated:
			return PayslipResponse{}, paysliperrors.ErrPayslipAlreadyFinal
		}
		draft.ID = existing.ID
		draft.CreatedAt = existing.CreatedAt
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayslipResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if existing != nil {
		err = qtx.Update(ctx, draft)
	} else {
		err = qtx.Create(ctx, draft)
	}
	if err != nil {
		return PayslipResponse{}, err
	}

	if err := s.queueGeneratedEvent(ctx, tx, draft, actingUserID); err != nil {
		return PayslipResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return PayslipResponse{}, err
	}

	s.logger.Info("payslip generated",
		zap.String("payslip_id", draft.ID.String()),
		zap.String("worker_id", req.WorkerID),
		zap.String("period_start", draft.PeriodStart.Format(dateLayout)),
		zap.String("net_pay", draft.NetPay.String()),
	)

	return toResponse(draft), nil
}

// GenerateDraft refreshes the running draft for a worker's fortnight.
// It is driven by approval events and the period-close job, never by a
// user, so finalized slips are left untouched instead of erroring.
func (s *service) GenerateDraft(ctx context.Context, workerID uuid.UUID, anyPeriodDay time.Time) (PayslipResponse, error) {
	draft, err := s.buildPayslip(ctx, workerID, anyPeriodDay, decimal.Zero)
	if err != nil {
		return PayslipResponse{}, err
	}

	existing, err := s.repo.GetByWorkerAndPeriod(ctx, workerID, draft.PeriodStart)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return PayslipResponse{}, err
	}

	if existing != nil {
		if existing.Status != StatusDraft {
			return toResponse(existing), nil
		}
		existing.TotalHours = draft.TotalHours
		existing.HourlyRate = draft.HourlyRate
		existing.GrossPay = draft.GrossPay
		existing.Deductions = draft.Deductions
		existing.NetPay = draft.NetPay
		if err := s.repo.Update(ctx, existing); err != nil {
			return PayslipResponse{}, err
		}
		return toResponse(existing), nil
	}

	if draft.TotalHours.IsZero() {
		return PayslipResponse{}, paysliperrors.ErrNoApprovedHours
	}

	if err := s.repo.Create(ctx, draft); err != nil {
		return PayslipResponse{}, err
	}

	s.logger.Info("draft payslip created",
		zap.String("payslip_id", draft.ID.String()),
		zap.String("worker_id", workerID.String()),
		zap.String("period_start", draft.PeriodStart.Format(dateLayout)),
	)

	return toResponse(draft), nil
}

func (s *service) Get(ctx context.Context, actingUserID string, primary role.Role, id string) (PayslipResponse, error) {
	p, err := s.getScoped(ctx, actingUserID, primary, id)
	if err != nil {
		return PayslipResponse{}, err
	}
	return toResponse(p), nil
}

func (s *service) List(ctx context.Context, actingUserID string, primary role.Role, q ListPayslipsQuery) ([]PayslipResponse, int64, error) {
	switch primary {
	case role.CEO, role.Manager, role.Accountant:
		// full visibility
	case role.Worker:
		q.WorkerID = actingUserID
	case role.Supervisor:
		// Supervisors manage hours, not money. Their payslip view is
		// their own slips, same as a worker's.
		q.WorkerID = actingUserID
	}

	rows, total, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, 0, err
	}

	out := make([]PayslipResponse, len(rows))
	for i := range rows {
		out[i] = toResponse(&rows[i])
	}
	return out, total, nil
}

// MarkPaid settles a generated payslip and books the payroll
// transaction in the ledger, atomically.
func (s *service) MarkPaid(ctx context.Context, actingUserID string, primary role.Role, id string) (PayslipResponse, error) {
	if !role.FinancialScopeFor(primary).CanWrite {
		return PayslipResponse{}, paysliperrors.ErrForbiddenPayslipAccess
	}

	payslipID, err := uuid.Parse(id)
	if err != nil {
		return PayslipResponse{}, paysliperrors.ErrPayslipNotFound
	}

	paidBy, err := uuid.Parse(actingUserID)
	if err != nil {
		return PayslipResponse{}, paysliperrors.ErrForbiddenPayslipAccess
	}

	p, err := s.repo.GetByID(ctx, payslipID)
	if err != nil {
		return PayslipResponse{}, mapRepoError(err)
	}

	switch p.Status {
	case StatusPaid:
		return PayslipResponse{}, paysliperrors.ErrPayslipAlreadyPaid
	case StatusDraft:
		return PayslipResponse{}, paysliperrors.ErrPayslipNotGenerated
	}

	ref, err := s.counters.GetNextValue(ctx, finance.CounterTransaction)
	if err != nil {
		return PayslipResponse{}, err
	}

	now := time.Now()
	p.Status = StatusPaid
	p.PaidBy = &paidBy
	p.PaidAt = &now

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayslipResponse{}, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Update(ctx, p); err != nil {
		return PayslipResponse{}, err
	}

	workerID := p.WorkerID
	payout := &finance.FinancialTransaction{
		ID:               uuid.New(),
		TransactionType:  finance.TypePayroll,
		Amount:           p.NetPay,
		ReferenceNumber:  finance.FormatReference(ref),
		RecordedBy:       paidBy,
		RelatedWorkerID:  &workerID,
		RelatedPayslipID: &p.ID,
		TransactionDate:  now,
	}
	if err := s.financeRepo.WithTx(tx).Create(ctx, payout); err != nil {
		return PayslipResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return PayslipResponse{}, err
	}

	s.logger.Info("payslip paid",
		zap.String("payslip_id", p.ID.String()),
		zap.String("paid_by", actingUserID),
		zap.String("reference_number", payout.ReferenceNumber),
	)

	return toResponse(p), nil
}

func (s *service) RenderPDF(ctx context.Context, actingUserID string, primary role.Role, id string) ([]byte, error) {
	p, err := s.getScoped(ctx, actingUserID, primary, id)
	if err != nil {
		return nil, err
	}

	workerName := p.WorkerID.String()
	if wp, err := s.profileRepo.GetByID(ctx, p.WorkerID); err == nil {
		workerName = wp.FullName
	}

	return renderPayslipPDF(toResponse(p), workerName), nil
}

// buildPayslip assembles an unsaved payslip from the worker's approved
// hours and effective rate for the fortnight containing anyPeriodDay.
func (s *service) buildPayslip(ctx context.Context, workerID uuid.UUID, anyPeriodDay time.Time, deductions decimal.Decimal) (*Payslip, error) {
	period := payperiod.For(anyPeriodDay)

	workerProfile, err := s.profileRepo.GetByID(ctx, workerID)
	if err != nil {
		return nil, mapRepoError(err)
	}

	rate := workerProfile.HourlyRate
	if s.rates != nil {
		if contractRate, ok, err := s.rates.ActiveHourlyRate(ctx, workerID); err != nil {
			return nil, err
		} else if ok {
			rate = contractRate
		}
	}

	sheets, err := s.timesheetRepo.ListForWorkerInRange(ctx, workerID, period.Start, period.End)
	if err != nil {
		return nil, err
	}

	entries := make([]payperiod.HourEntry, len(sheets))
	for i, ts := range sheets {
		entries[i] = payperiod.HourEntry{Status: ts.Status, Hours: ts.TotalHours}
	}
	totalHours := payperiod.SumApprovedHours(entries)

	comp, err := payperiod.ComputePayslip(totalHours, rate, deductions)
	if err != nil {
		return nil, err
	}

	return &Payslip{
		ID:          uuid.New(),
		WorkerID:    workerID,
		PeriodStart: period.Start,
		PeriodEnd:   period.End,
		TotalHours:  totalHours,
		HourlyRate:  rate,
		GrossPay:    comp.Gross,
		Deductions:  deductions,
		NetPay:      comp.Net,
		Status:      StatusDraft,
	}, nil
}

func (s *service) getScoped(ctx context.Context, actingUserID string, primary role.Role, id string) (*Payslip, error) {
	payslipID, err := uuid.Parse(id)
	if err != nil {
		return nil, paysliperrors.ErrPayslipNotFound
	}

	p, err := s.repo.GetByID(ctx, payslipID)
	if err != nil {
		return nil, mapRepoError(err)
	}

	supervisorID := ""
	if wp, err := s.profileRepo.GetByID(ctx, p.WorkerID); err == nil && wp.SupervisorID != nil {
		supervisorID = wp.SupervisorID.String()
	}

	scope := role.ScopeFor(primary, actingUserID, p.WorkerID.String(), supervisorID)
	if !scope.CanRead {
		return nil, paysliperrors.ErrForbiddenPayslipAccess
	}

	return p, nil
}

func (s *service) queueGeneratedEvent(ctx context.Context, tx *sql.Tx, p *Payslip, actingUserID string) error {
	event := events.PayslipGeneratedEvent{
		EventType:   "payslip.generated",
		RequestID:   contextutil.GetRequestID(ctx),
		PayslipID:   p.ID.String(),
		WorkerID:    p.WorkerID.String(),
		PeriodStart: p.PeriodStart.Format(dateLayout),
		PeriodEnd:   p.PeriodEnd.Format(dateLayout),
		GeneratedBy: actingUserID,
		OccurredAt:  time.Now(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     event.RequestID,
		AggregateType: "payslip",
		AggregateID:   p.ID.String(),
		EventType:     event.EventType,
		Topic:         events.PayslipGeneratedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func mapRepoError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return paysliperrors.ErrPayslipNotFound
	}
	return err
}
