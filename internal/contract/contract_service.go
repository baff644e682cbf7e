package contract

import (
	"context"
	"errors"
	"time"

	contracterrors "github.com/simeongugl4-design/workforce-hub-png/internal/contract/errors"
	"github.com/simeongugl4-design/workforce-hub-png/internal/role"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=contract_service.go -destination=mock/contract_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, actingUserID string, req CreateContractRequest) (ContractResponse, error)
	Approve(ctx context.Context, actingUserID, id string) (ContractResponse, error)
	Deactivate(ctx context.Context, id string) (ContractResponse, error)
	Get(ctx context.Context, actingUserID string, primary role.Role, id string) (ContractResponse, error)
	ListForWorker(ctx context.Context, actingUserID string, primary role.Role, workerID string) ([]ContractResponse, error)

	// ActiveHourlyRate satisfies the payroll rate lookup.
	ActiveHourlyRate(ctx context.Context, workerID uuid.UUID) (decimal.Decimal, bool, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("contract.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("contract.service")
	}
	return &service{repo: repo, logger: l}
}

// Create records a contract in an unapproved, inactive state. It only
// starts driving pay once a second pair of eyes approves it.
func (s *service) Create(ctx context.Context, actingUserID string, req CreateContractRequest) (ContractResponse, error) {
	workerID, err := uuid.Parse(req.WorkerID)
	if err != nil {
		return ContractResponse{}, contracterrors.ErrContractNotFound
	}

	createdBy, err := uuid.Parse(actingUserID)
	if err != nil {
		return ContractResponse{}, contracterrors.ErrForbiddenContractAccess
	}

	if req.HourlyRate.IsNegative() || (req.DailyRate != nil && req.DailyRate.IsNegative()) {
		return ContractResponse{}, contracterrors.ErrInvalidContractRate
	}

	startDate, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return ContractResponse{}, contracterrors.ErrInvalidContractDates
	}

	var endDate *time.Time
	if req.EndDate != nil {
		parsed, err := time.Parse(dateLayout, *req.EndDate)
		if err != nil || !parsed.After(startDate) {
			return ContractResponse{}, contracterrors.ErrInvalidContractDates
		}
		endDate = &parsed
	}

	c := &Contract{
		ID:         uuid.New(),
		WorkerID:   workerID,
		Title:      req.Title,
		HourlyRate: req.HourlyRate,
		DailyRate:  req.DailyRate,
		StartDate:  startDate,
		EndDate:    endDate,
		IsActive:   false,
		CreatedBy:  createdBy,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return ContractResponse{}, err
	}

	s.logger.Info("contract drafted",
		zap.String("contract_id", c.ID.String()),
		zap.String("worker_id", req.WorkerID),
	)

	return toResponse(c), nil
}

func (s *service) Approve(ctx context.Context, actingUserID, id string) (ContractResponse, error) {
	contractID, err := uuid.Parse(id)
	if err != nil {
		return ContractResponse{}, contracterrors.ErrContractNotFound
	}

	approverID, err := uuid.Parse(actingUserID)
	if err != nil {
		return ContractResponse{}, contracterrors.ErrForbiddenContractAccess
	}

	c, err := s.repo.GetByID(ctx, contractID)
	if err != nil {
		return ContractResponse{}, mapRepoError(err)
	}

	if c.ApprovedBy != nil {
		return ContractResponse{}, contracterrors.ErrContractAlreadyApproved
	}

	now := time.Now()
	c.ApprovedBy = &approverID
	c.ApprovedAt = &now
	c.IsActive = true

	if err := s.repo.Update(ctx, c); err != nil {
		return ContractResponse{}, err
	}

	s.logger.Info("contract approved",
		zap.String("contract_id", c.ID.String()),
		zap.String("approved_by", actingUserID),
	)

	return toResponse(c), nil
}

func (s *service) Deactivate(ctx context.Context, id string) (ContractResponse, error) {
	contractID, err := uuid.Parse(id)
	if err != nil {
		return ContractResponse{}, contracterrors.ErrContractNotFound
	}

	c, err := s.repo.GetByID(ctx, contractID)
	if err != nil {
		return ContractResponse{}, mapRepoError(err)
	}

	c.IsActive = false
	if err := s.repo.Update(ctx, c); err != nil {
		return ContractResponse{}, err
	}

	return toResponse(c), nil
}

func (s *service) Get(ctx context.Context, actingUserID string, primary role.Role, id string) (ContractResponse, error) {
	contractID, err := uuid.Parse(id)
	if err != nil {
		return ContractResponse{}, contracterrors.ErrContractNotFound
	}

	c, err := s.repo.GetByID(ctx, contractID)
	if err != nil {
		return ContractResponse{}, mapRepoError(err)
	}

	scope := role.ScopeFor(primary, actingUserID, c.WorkerID.String(), "")
	if !scope.CanRead {
		return ContractResponse{}, contracterrors.ErrForbiddenContractAccess
	}

	return toResponse(c), nil
}

func (s *service) ListForWorker(ctx context.Context, actingUserID string, primary role.Role, workerID string) ([]ContractResponse, error) {
	id, err := uuid.Parse(workerID)
	if err != nil {
		return nil, contracterrors.ErrContractNotFound
	}

	scope := role.ScopeFor(primary, actingUserID, workerID, "")
	if !scope.CanRead {
		return nil, contracterrors.ErrForbiddenContractAccess
	}

	rows, err := s.repo.ListByWorker(ctx, id)
	if err != nil {
		return nil, err
	}

	out := make([]ContractResponse, len(rows))
	for i := range rows {
		out[i] = toResponse(&rows[i])
	}
	return out, nil
}

func (s *service) ActiveHourlyRate(ctx context.Context, workerID uuid.UUID) (decimal.Decimal, bool, error) {
	c, err := s.repo.GetActiveByWorker(ctx, workerID, time.Now())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return decimal.Zero, false, nil
		}
		return decimal.Zero, false, err
	}
	return c.HourlyRate, true, nil
}

func mapRepoError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return contracterrors.ErrContractNotFound
	}
	return err
}
