package worksummary

import (
	"context"
	"errors"
	"time"

	"github.com/simeongugl4-design/workforce-hub-png/internal/payperiod"
	"github.com/simeongugl4-design/workforce-hub-png/internal/profile"
	"github.com/simeongugl4-design/workforce-hub-png/internal/role"
	worksummaryerrors "github.com/simeongugl4-design/workforce-hub-png/internal/worksummary/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=worksummary_service.go -destination=mock/worksummary_service_mock.go -package=mock
type Service interface {
	Submit(ctx context.Context, actingUserID string, req SubmitSummaryRequest) (SummaryResponse, error)
	Get(ctx context.Context, actingUserID string, primary role.Role, id string) (SummaryResponse, error)
	List(ctx context.Context, actingUserID string, primary role.Role, q ListSummariesQuery) ([]SummaryResponse, int64, error)
	Review(ctx context.Context, actingUserID string, primary role.Role, id string, req ReviewSummaryRequest) (SummaryResponse, error)
}

type service struct {
	repo        Repository
	profileRepo profile.Repository
	now         func() time.Time
	logger      *zap.Logger
}

func NewService(repo Repository, profileRepo profile.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("worksummary.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("worksummary.service")
	}
	return &service{repo: repo, profileRepo: profileRepo, now: time.Now, logger: l}
}

// Submit records or amends the worker's summary for a fortnight. The
// row stays editable until a supervisor reviews it.
func (s *service) Submit(ctx context.Context, actingUserID string, req SubmitSummaryRequest) (SummaryResponse, error) {
	workerID, err := uuid.Parse(actingUserID)
	if err != nil {
		return SummaryResponse{}, worksummaryerrors.ErrForbiddenSummaryAccess
	}

	periodDay := s.now()
	if req.PeriodDate != "" {
		parsed, err := time.Parse(dateLayout, req.PeriodDate)
		if err != nil {
			return SummaryResponse{}, worksummaryerrors.ErrInvalidPeriodDate
		}
		periodDay = parsed
	}
	period := payperiod.For(periodDay)

	existing, err := s.repo.GetByWorkerAndPeriod(ctx, workerID, period.Start)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return SummaryResponse{}, err
	}

	if existing != nil {
		if existing.Status == StatusReviewed {
			return SummaryResponse{}, worksummaryerrors.ErrSummaryAlreadyReviewed
		}
		existing.Summary = req.Summary
		existing.TasksCompleted = req.TasksCompleted
		existing.Challenges = req.Challenges
		existing.NextPeriodGoals = req.NextPeriodGoals
		if err := s.repo.Update(ctx, existing); err != nil {
			return SummaryResponse{}, err
		}
		return toResponse(existing), nil
	}

	ws := &WorkSummary{
		ID:              uuid.New(),
		WorkerID:        workerID,
		PeriodStart:     period.Start,
		PeriodEnd:       period.End,
		Summary:         req.Summary,
		TasksCompleted:  req.TasksCompleted,
		Challenges:      req.Challenges,
		NextPeriodGoals: req.NextPeriodGoals,
		Status:          StatusSubmitted,
	}

	if err := s.repo.Create(ctx, ws); err != nil {
		return SummaryResponse{}, err
	}

	s.logger.Info("work summary submitted",
		zap.String("summary_id", ws.ID.String()),
		zap.String("worker_id", actingUserID),
		zap.String("period_start", period.Start.Format(dateLayout)),
	)

	return toResponse(ws), nil
}

func (s *service) Get(ctx context.Context, actingUserID string, primary role.Role, id string) (SummaryResponse, error) {
	ws, err := s.getScoped(ctx, actingUserID, primary, id)
	if err != nil {
		return SummaryResponse{}, err
	}
	return toResponse(ws), nil
}

func (s *service) List(ctx context.Context, actingUserID string, primary role.Role, q ListSummariesQuery) ([]SummaryResponse, int64, error) {
	supervisorFilter := ""
	switch primary {
	case role.CEO, role.Manager, role.Accountant:
		// full visibility
	case role.Supervisor:
		supervisorFilter = actingUserID
	case role.Worker:
		q.WorkerID = actingUserID
	}

	rows, total, err := s.repo.List(ctx, q, supervisorFilter)
	if err != nil {
		return nil, 0, err
	}

	out := make([]SummaryResponse, len(rows))
	for i := range rows {
		out[i] = toResponse(&rows[i])
	}
	return out, total, nil
}

func (s *service) Review(ctx context.Context, actingUserID string, primary role.Role, id string, req ReviewSummaryRequest) (SummaryResponse, error) {
	summaryID, err := uuid.Parse(id)
	if err != nil {
		return SummaryResponse{}, worksummaryerrors.ErrSummaryNotFound
	}

	ws, err := s.repo.GetByID(ctx, summaryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SummaryResponse{}, worksummaryerrors.ErrSummaryNotFound
		}
		return SummaryResponse{}, err
	}

	switch primary {
	case role.CEO, role.Manager:
	case role.Supervisor:
		wp, err := s.profileRepo.GetByID(ctx, ws.WorkerID)
		if err != nil || wp.SupervisorID == nil || wp.SupervisorID.String() != actingUserID {
			return SummaryResponse{}, worksummaryerrors.ErrNotYourWorkerSummary
		}
	default:
		return SummaryResponse{}, worksummaryerrors.ErrForbiddenSummaryAccess
	}

	if ws.Status == StatusReviewed {
		return SummaryResponse{}, worksummaryerrors.ErrSummaryAlreadyReviewed
	}

	reviewerID, err := uuid.Parse(actingUserID)
	if err != nil {
		return SummaryResponse{}, worksummaryerrors.ErrForbiddenSummaryAccess
	}

	now := s.now()
	ws.Status = StatusReviewed
	ws.ReviewedBy = &reviewerID
	ws.ReviewedAt = &now
	ws.ReviewNote = req.Note

	if err := s.repo.Update(ctx, ws); err != nil {
		return SummaryResponse{}, err
	}

	s.logger.Info("work summary reviewed",
		zap.String("summary_id", ws.ID.String()),
		zap.String("reviewed_by", actingUserID),
	)

	return toResponse(ws), nil
}

func (s *service) getScoped(ctx context.Context, actingUserID string, primary role.Role, id string) (*WorkSummary, error) {
	summaryID, err := uuid.Parse(id)
	if err != nil {
		return nil, worksummaryerrors.ErrSummaryNotFound
	}

	ws, err := s.repo.GetByID(ctx, summaryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, worksummaryerrors.ErrSummaryNotFound
		}
		return nil, err
	}

	supervisorID := ""
	if wp, err := s.profileRepo.GetByID(ctx, ws.WorkerID); err == nil && wp.SupervisorID != nil {
		supervisorID = wp.SupervisorID.String()
	}

	scope := role.ScopeFor(primary, actingUserID, ws.WorkerID.String(), supervisorID)
	if !scope.CanRead {
		return nil, worksummaryerrors.ErrForbiddenSummaryAccess
	}

	return ws, nil
}
