package userrole

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/simeongugl4-design/workforce-hub-png/internal/role"
	"github.com/simeongugl4-design/workforce-hub-png/internal/shared/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

var (
	ErrRoleAlreadyAssigned = apperror.New(
		apperror.CodeConflict,
		"role is already assigned to this user",
		http.StatusConflict,
	)
	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid user id",
		http.StatusBadRequest,
	)
)

//go:generate mockgen -source=userrole_service.go -destination=mock/userrole_service_mock.go -package=mock
type Service interface {
	Assign(ctx context.Context, req AssignRoleRequest) (UserRolesResponse, error)
	Revoke(ctx context.Context, req RevokeRoleRequest) (UserRolesResponse, error)
	RolesForUser(ctx context.Context, userID string) ([]role.Role, error)
	Resolve(ctx context.Context, userID string) (UserRolesResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("userrole.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("userrole.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Assign(ctx context.Context, req AssignRoleRequest) (UserRolesResponse, error) {
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return UserRolesResponse{}, ErrInvalidUserID
	}

	r, err := role.Parse(req.Role)
	if err != nil {
		return UserRolesResponse{}, err
	}

	row := &UserRole{
		ID:     uuid.New(),
		UserID: userID,
		Role:   string(r),
	}

	if err := s.repo.Create(ctx, row); err != nil {
		return UserRolesResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("role assigned",
		zap.String("user_id", req.UserID),
		zap.String("role", string(r)),
	)

	return s.Resolve(ctx, req.UserID)
}

func (s *service) Revoke(ctx context.Context, req RevokeRoleRequest) (UserRolesResponse, error) {
	if _, err := uuid.Parse(req.UserID); err != nil {
		return UserRolesResponse{}, ErrInvalidUserID
	}

	r, err := role.Parse(req.Role)
	if err != nil {
		return UserRolesResponse{}, err
	}

	if err := s.repo.Delete(ctx, req.UserID, string(r)); err != nil {
		return UserRolesResponse{}, err
	}

	s.logger.Info("role revoked",
		zap.String("user_id", req.UserID),
		zap.String("role", string(r)),
	)

	return s.Resolve(ctx, req.UserID)
}

// RolesForUser returns the user's role set. No explicit role rows means
// a plain worker account, never an empty set.
func (s *service) RolesForUser(ctx context.Context, userID string) ([]role.Role, error) {
	rows, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return []role.Role{role.Worker}, nil
	}

	roles := make([]role.Role, 0, len(rows))
	for _, row := range rows {
		r, err := role.Parse(row.Role)
		if err != nil {
			return nil, err
		}
		roles = append(roles, r)
	}
	return roles, nil
}

func (s *service) Resolve(ctx context.Context, userID string) (UserRolesResponse, error) {
	roles, err := s.RolesForUser(ctx, userID)
	if err != nil {
		return UserRolesResponse{}, err
	}

	return UserRolesResponse{
		UserID:      userID,
		Roles:       role.Strings(roles),
		PrimaryRole: string(role.ResolvePrimary(roles)),
	}, nil
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrRoleAlreadyAssigned
	}

	if strings.Contains(strings.ToLower(err.Error()), "duplicate key value") {
		return ErrRoleAlreadyAssigned
	}

	return err
}
