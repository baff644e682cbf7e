package profile

import (
	"context"
	"errors"

	"github.com/simeongugl4-design/workforce-hub-png/internal/role"
	profileerrors "github.com/simeongugl4-design/workforce-hub-png/internal/profile/errors"
	"github.com/simeongugl4-design/workforce-hub-png/internal/shared/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RoleChecker resolves the role set held by a user.
type RoleChecker interface {
	RolesForUser(ctx context.Context, userID string) ([]role.Role, error)
}

//go:generate mockgen -source=profile_service.go -destination=mock/profile_service_mock.go -package=mock
type Service interface {
	Get(ctx context.Context, actingUserID string, primary role.Role, targetID string) (ProfileResponse, error)
	List(ctx context.Context, actingUserID string, primary role.Role, q ListProfilesQuery) ([]ProfileResponse, int64, error)
	UpdateOwn(ctx context.Context, actingUserID string, req UpdateProfileRequest) (ProfileResponse, error)
	UpdateEmployment(ctx context.Context, targetID string, req UpdateEmploymentRequest) (ProfileResponse, error)
	DecideAccount(ctx context.Context, deciderID, targetID string, req AccountDecisionRequest) (ProfileResponse, error)
}

type service struct {
	repo   Repository
	roles  RoleChecker
	logger *zap.Logger
}

func NewService(repo Repository, roles RoleChecker, logger ...*zap.Logger) Service {
	l := zap.L().Named("profile.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("profile.service")
	}
	return &service{repo: repo, roles: roles, logger: l}
}

func (s *service) Get(ctx context.Context, actingUserID string, primary role.Role, targetID string) (ProfileResponse, error) {
	id, err := uuid.Parse(targetID)
	if err != nil {
		return ProfileResponse{}, apperror.InvalidField("id")
	}

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return ProfileResponse{}, mapRepoError(err)
	}

	scope := role.ScopeFor(primary, actingUserID, p.ID.String(), supervisorOf(p))
	if !scope.CanRead {
		return ProfileResponse{}, profileerrors.ErrForbiddenProfileAccess
	}

	return toResponse(p), nil
}

func (s *service) List(ctx context.Context, actingUserID string, primary role.Role, q ListProfilesQuery) ([]ProfileResponse, int64, error) {
	switch primary {
	case role.CEO, role.Manager, role.Accountant:
		// full visibility
	case role.Supervisor:
		q.SupervisorID = actingUserID
	case role.Worker:
		p, err := s.Get(ctx, actingUserID, primary, actingUserID)
		if err != nil {
			return nil, 0, err
		}
		return []ProfileResponse{p}, 1, nil
	}

	rows, total, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, 0, err
	}

	out := make([]ProfileResponse, len(rows))
	for i := range rows {
		out[i] = toResponse(&rows[i])
	}
	return out, total, nil
}

func (s *service) UpdateOwn(ctx context.Context, actingUserID string, req UpdateProfileRequest) (ProfileResponse, error) {
	id, err := uuid.Parse(actingUserID)
	if err != nil {
		return ProfileResponse{}, apperror.InvalidField("user_id")
	}

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return ProfileResponse{}, mapRepoError(err)
	}

	if req.FullName != nil {
		p.FullName = *req.FullName
	}
	if req.Phone != nil {
		p.Phone = req.Phone
	}
	if req.AvatarURL != nil {
		p.AvatarURL = req.AvatarURL
	}
	if req.Location != nil {
		p.Location = req.Location
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return ProfileResponse{}, err
	}

	return toResponse(p), nil
}

func (s *service) UpdateEmployment(ctx context.Context, targetID string, req UpdateEmploymentRequest) (ProfileResponse, error) {
	id, err := uuid.Parse(targetID)
	if err != nil {
		return ProfileResponse{}, apperror.InvalidField("id")
	}

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return ProfileResponse{}, mapRepoError(err)
	}

	if req.Position != nil {
		p.Position = req.Position
	}
	if req.Department != nil {
		p.Department = req.Department
	}
	if req.EmploymentType != nil {
		p.EmploymentType = *req.EmploymentType
	}
	if req.HourlyRate != nil {
		if req.HourlyRate.IsNegative() {
			return ProfileResponse{}, profileerrors.ErrInvalidHourlyRate
		}
		p.HourlyRate = *req.HourlyRate
	}
	if req.SupervisorID != nil {
		supID, err := s.validateSupervisor(ctx, *req.SupervisorID)
		if err != nil {
			return ProfileResponse{}, err
		}
		p.SupervisorID = &supID
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return ProfileResponse{}, err
	}

	s.logger.Info("employment details updated",
		zap.String("profile_id", targetID),
	)

	return toResponse(p), nil
}

// DecideAccount records a one-shot pending -> approved|rejected transition.
func (s *service) DecideAccount(ctx context.Context, deciderID, targetID string, req AccountDecisionRequest) (ProfileResponse, error) {
	id, err := uuid.Parse(targetID)
	if err != nil {
		return ProfileResponse{}, apperror.InvalidField("id")
	}

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return ProfileResponse{}, mapRepoError(err)
	}

	if p.AccountStatus != AccountStatusPending {
		return ProfileResponse{}, profileerrors.ErrAccountNotPending
	}

	if req.Approve {
		p.AccountStatus = AccountStatusApproved
	} else {
		p.AccountStatus = AccountStatusRejected
		p.IsActive = false
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return ProfileResponse{}, err
	}

	s.logger.Info("account decision recorded",
		zap.String("profile_id", targetID),
		zap.String("decided_by", deciderID),
		zap.String("account_status", p.AccountStatus),
	)

	return toResponse(p), nil
}

func (s *service) validateSupervisor(ctx context.Context, rawID string) (uuid.UUID, error) {
	supID, err := uuid.Parse(rawID)
	if err != nil {
		return uuid.Nil, profileerrors.ErrInvalidSupervisor
	}

	sup, err := s.repo.GetByID(ctx, supID)
	if err != nil {
		return uuid.Nil, profileerrors.ErrInvalidSupervisor
	}
	if sup.AccountStatus != AccountStatusApproved || !sup.IsActive {
		return uuid.Nil, profileerrors.ErrInvalidSupervisor
	}

	roles, err := s.roles.RolesForUser(ctx, rawID)
	if err != nil {
		return uuid.Nil, err
	}
	for _, r := range roles {
		if r == role.Supervisor {
			return supID, nil
		}
	}
	return uuid.Nil, profileerrors.ErrInvalidSupervisor
}

func supervisorOf(p *Profile) string {
	if p.SupervisorID == nil {
		return ""
	}
	return p.SupervisorID.String()
}

func mapRepoError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return profileerrors.ErrProfileNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return profileerrors.ErrProfileAlreadyExists
	}

	return err
}
