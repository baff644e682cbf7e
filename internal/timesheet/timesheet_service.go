package timesheet

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/simeongugl4-design/workforce-hub-png/internal/events"
	"github.com/simeongugl4-design/workforce-hub-png/internal/messaging/kafka"
	"github.com/simeongugl4-design/workforce-hub-png/internal/payperiod"
	"github.com/simeongugl4-design/workforce-hub-png/internal/profile"
	"github.com/simeongugl4-design/workforce-hub-png/internal/role"
	"github.com/simeongugl4-design/workforce-hub-png/internal/shared/contextutil"
	timesheeterrors "github.com/simeongugl4-design/workforce-hub-png/internal/timesheet/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=timesheet_service.go -destination=mock/timesheet_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, actingUserID string, primary role.Role, req CreateTimesheetRequest) (TimesheetResponse, error)
	Get(ctx context.Context, actingUserID string, primary role.Role, id string) (TimesheetResponse, error)
	List(ctx context.Context, actingUserID string, primary role.Role, q ListTimesheetsQuery) ([]TimesheetResponse, int64, error)
	Review(ctx context.Context, actingUserID string, primary role.Role, id string, req ReviewTimesheetRequest) (TimesheetResponse, error)
}

type service struct {
	db          *sql.DB
	repo        Repository
	profileRepo profile.Repository
	outbox      kafka.OutboxRepository
	logger      *zap.Logger
}

func NewService(db *sql.DB, repo Repository, profileRepo profile.Repository, outbox kafka.OutboxRepository, logger ...*zap.Logger) Service {
	l := zap.L().Named("timesheet.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("timesheet.service")
	}
	return &service{db: db, repo: repo, profileRepo: profileRepo, outbox: outbox, logger: l}
}

// Create records a worker-day on behalf of the supervising user.
// Workers never self-report; the site supervisor enters the crew's times.
func (s *service) Create(ctx context.Context, actingUserID string, primary role.Role, req CreateTimesheetRequest) (TimesheetResponse, error) {
	workerID, err := uuid.Parse(req.WorkerID)
	if err != nil {
		return TimesheetResponse{}, timesheeterrors.ErrTimesheetNotFound
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return TimesheetResponse{}, timesheeterrors.ErrInvalidDate
	}

	hours, err := payperiod.HoursWorked(req.ClockIn, req.ClockOut)
	if err != nil {
		return TimesheetResponse{}, err
	}

	workerProfile, err := s.profileRepo.GetByID(ctx, workerID)
	if err != nil {
		return TimesheetResponse{}, mapRepoError(err)
	}

	supervisorID, err := s.resolveSupervisor(actingUserID, primary, workerProfile)
	if err != nil {
		return TimesheetResponse{}, err
	}

	ts := &Timesheet{
		ID:              uuid.New(),
		WorkerID:        workerID,
		SupervisorID:    supervisorID,
		Date:            date,
		ClockIn:         req.ClockIn,
		ClockOut:        req.ClockOut,
		TotalHours:      hours,
		TaskDescription: req.TaskDescription,
		Status:          StatusPending,
	}

	if err := s.repo.Create(ctx, ts); err != nil {
		return TimesheetResponse{}, mapRepoError(err)
	}

	s.logger.Info("timesheet recorded",
		zap.String("timesheet_id", ts.ID.String()),
		zap.String("worker_id", req.WorkerID),
		zap.String("date", req.Date),
	)

	return toResponse(ts), nil
}

func (s *service) Get(ctx context.Context, actingUserID string, primary role.Role, id string) (TimesheetResponse, error) {
	tsID, err := uuid.Parse(id)
	if err != nil {
		return TimesheetResponse{}, timesheeterrors.ErrTimesheetNotFound
	}

	ts, err := s.repo.GetByID(ctx, tsID)
	if err != nil {
		return TimesheetResponse{}, mapRepoError(err)
	}

	scope := role.ScopeFor(primary, actingUserID, ts.WorkerID.String(), ts.SupervisorID.String())
	if !scope.CanRead {
		return TimesheetResponse{}, timesheeterrors.ErrForbiddenTimesheetAccess
	}

	return toResponse(ts), nil
}

func (s *service) List(ctx context.Context, actingUserID string, primary role.Role, q ListTimesheetsQuery) ([]TimesheetResponse, int64, error) {
	switch primary {
	case role.CEO, role.Manager, role.Accountant:
		// full visibility
	case role.Supervisor:
		q.SupervisorID = actingUserID
	case role.Worker:
		q.WorkerID = actingUserID
	}

	rows, total, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, 0, err
	}

	out := make([]TimesheetResponse, len(rows))
	for i := range rows {
		out[i] = toResponse(&rows[i])
	}
	return out, total, nil
}

// Review moves a pending or flagged timesheet to its final state. An
// approval also queues the downstream payroll event in the same
// transaction, so a crashed publish can never lose the approval.
func (s *service) Review(ctx context.Context, actingUserID string, primary role.Role, id string, req ReviewTimesheetRequest) (TimesheetResponse, error) {
	tsID, err := uuid.Parse(id)
	if err != nil {
		return TimesheetResponse{}, timesheeterrors.ErrTimesheetNotFound
	}

	ts, err := s.repo.GetByID(ctx, tsID)
	if err != nil {
		return TimesheetResponse{}, mapRepoError(err)
	}

	if primary == role.Supervisor && ts.SupervisorID.String() != actingUserID {
		return TimesheetResponse{}, timesheeterrors.ErrNotYourWorker
	}

	if ts.Status == StatusApproved || ts.Status == StatusRejected {
		return TimesheetResponse{}, timesheeterrors.ErrAlreadyDecided
	}

	approverID, err := uuid.Parse(actingUserID)
	if err != nil {
		return TimesheetResponse{}, timesheeterrors.ErrForbiddenTimesheetAccess
	}

	now := time.Now()
	ts.Status = req.Decision
	ts.ReviewNote = req.Note
	if req.Decision == StatusApproved {
		ts.ApprovedBy = &approverID
		ts.ApprovedAt = &now
	}

	if req.Decision != StatusApproved {
		if err := s.repo.Update(ctx, ts); err != nil {
			return TimesheetResponse{}, err
		}
		return toResponse(ts), nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return TimesheetResponse{}, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Update(ctx, ts); err != nil {
		return TimesheetResponse{}, err
	}

	event := events.TimesheetApprovedEvent{
		EventType:   "timesheet.approved",
		RequestID:   contextutil.GetRequestID(ctx),
		TimesheetID: ts.ID.String(),
		WorkerID:    ts.WorkerID.String(),
		Date:        ts.Date.Format(dateLayout),
		ApprovedBy:  actingUserID,
		OccurredAt:  now,
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return TimesheetResponse{}, err
	}

	outboxEvent := kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     event.RequestID,
		AggregateType: "timesheet",
		AggregateID:   ts.ID.String(),
		EventType:     event.EventType,
		Topic:         events.TimesheetApprovedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}
	if err := s.outbox.WithTx(tx).Create(ctx, outboxEvent); err != nil {
		return TimesheetResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return TimesheetResponse{}, err
	}

	s.logger.Info("timesheet approved",
		zap.String("timesheet_id", ts.ID.String()),
		zap.String("approved_by", actingUserID),
	)

	return toResponse(ts), nil
}

func (s *service) resolveSupervisor(actingUserID string, primary role.Role, workerProfile *profile.Profile) (uuid.UUID, error) {
	switch primary {
	case role.Supervisor:
		if workerProfile.SupervisorID == nil || workerProfile.SupervisorID.String() != actingUserID {
			return uuid.Nil, timesheeterrors.ErrNotYourWorker
		}
		return *workerProfile.SupervisorID, nil
	case role.Manager, role.CEO:
		// Management may record on behalf of any crew. Attribute the
		// entry to the worker's own supervisor when one is assigned.
		if workerProfile.SupervisorID != nil {
			return *workerProfile.SupervisorID, nil
		}
		return uuid.Parse(actingUserID)
	default:
		return uuid.Nil, timesheeterrors.ErrForbiddenTimesheetAccess
	}
}

func mapRepoError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return timesheeterrors.ErrTimesheetNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return timesheeterrors.ErrDuplicateTimesheet
	}

	return err
}
