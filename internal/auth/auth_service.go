package auth

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"time"

	autherrors "github.com/simeongugl4-design/workforce-hub-png/internal/auth/errors"
	"github.com/simeongugl4-design/workforce-hub-png/internal/profile"
	"github.com/simeongugl4-design/workforce-hub-png/internal/role"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	accessTokenTTL  = time.Minute * 15
	refreshTokenTTL = time.Hour * 24 * 7
)

// RoleChecker resolves the role set held by a user.
type RoleChecker interface {
	RolesForUser(ctx context.Context, userID string) ([]role.Role, error)
}

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Signup(ctx context.Context, req SignupRequest) (AuthResponse, error)

	Login(ctx context.Context, email, password string) (accessToken, refreshToken string, resp AuthResponse, err error)

	RefreshToken(ctx context.Context, refreshToken string) (newAccessToken, newRefreshToken string, resp AuthResponse, err error)

	GetMe(ctx context.Context, userID string) (*AuthResponse, error)
}

type service struct {
	db          *sql.DB
	repo        Repository
	profileRepo profile.Repository
	roles       RoleChecker
	logger      *zap.Logger
}

func NewService(db *sql.DB, repo Repository, profileRepo profile.Repository, roles RoleChecker, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{db: db, repo: repo, profileRepo: profileRepo, roles: roles, logger: l}
}

// Signup creates the credential row and a pending profile atomically.
// The account stays unusable until a manager approves it.
func (s *service) Signup(ctx context.Context, req SignupRequest) (AuthResponse, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return AuthResponse{}, err
	}

	userID := uuid.New()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AuthResponse{}, err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO users (id, email, password, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, TRUE, NOW(), NOW())`
	if _, err := tx.ExecContext(ctx, query, userID, req.Email, string(hashed)); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return AuthResponse{}, autherrors.ErrEmailAlreadyRegistered
		}
		return AuthResponse{}, err
	}

	phone := req.Phone
	p := &profile.Profile{
		ID:             userID,
		FullName:       req.FullName,
		Email:          req.Email,
		Phone:          &phone,
		EmploymentType: profile.EmploymentPermanent,
		HourlyRate:     decimal.Zero,
		AccountStatus:  profile.AccountStatusPending,
		IsActive:       true,
	}
	if err := s.profileRepo.WithTx(tx).Create(ctx, p); err != nil {
		return AuthResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return AuthResponse{}, err
	}

	s.logger.Info("account registered",
		zap.String("user_id", userID.String()),
	)

	return AuthResponse{
		ID:            userID.String(),
		Email:         req.Email,
		FullName:      req.FullName,
		Roles:         []string{string(role.Worker)},
		PrimaryRole:   string(role.Worker),
		AccountStatus: profile.AccountStatusPending,
	}, nil
}

func (s *service) Login(ctx context.Context, email, password string) (string, string, AuthResponse, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	p, err := s.profileRepo.GetByID(ctx, user.ID)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	switch p.AccountStatus {
	case profile.AccountStatusApproved:
	case profile.AccountStatusRejected:
		return "", "", AuthResponse{}, autherrors.ErrAccountRejected
	default:
		return "", "", AuthResponse{}, autherrors.ErrAccountNotApproved
	}

	if !user.IsActive || !p.IsActive {
		return "", "", AuthResponse{}, autherrors.ErrAccountInactive
	}

	roles, err := s.roles.RolesForUser(ctx, user.ID.String())
	if err != nil {
		return "", "", AuthResponse{}, err
	}

	accessToken, err := s.generateToken(user.ID.String(), roles, accessTokenTTL)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}
	refreshToken, err := s.generateToken(user.ID.String(), roles, refreshTokenTTL)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	return accessToken, refreshToken, AuthResponse{
		ID:            user.ID.String(),
		Email:         user.Email,
		FullName:      p.FullName,
		Roles:         role.Strings(roles),
		PrimaryRole:   string(role.ResolvePrimary(roles)),
		AccountStatus: p.AccountStatus,
	}, nil
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (string, string, AuthResponse, error) {
	token, err := jwt.Parse(refreshToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, autherrors.ErrInvalidToken
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})

	if err != nil || !token.Valid {
		return "", "", AuthResponse{}, autherrors.ErrInvalidRefreshToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", AuthResponse{}, autherrors.ErrInvalidToken
	}

	userIDStr, ok := claims["user_id"].(string)
	if !ok {
		return "", "", AuthResponse{}, autherrors.ErrInvalidToken
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrInvalidUserID
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrUserNotFound
	}

	p, err := s.profileRepo.GetByID(ctx, user.ID)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrUserNotFound
	}

	// Role grants may have changed since login; re-resolve instead of
	// trusting the old claim set.
	roles, err := s.roles.RolesForUser(ctx, user.ID.String())
	if err != nil {
		return "", "", AuthResponse{}, err
	}

	newAccessToken, err := s.generateToken(user.ID.String(), roles, accessTokenTTL)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}
	newRefreshToken, err := s.generateToken(user.ID.String(), roles, refreshTokenTTL)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	return newAccessToken, newRefreshToken, AuthResponse{
		ID:            user.ID.String(),
		Email:         user.Email,
		FullName:      p.FullName,
		Roles:         role.Strings(roles),
		PrimaryRole:   string(role.ResolvePrimary(roles)),
		AccountStatus: p.AccountStatus,
	}, nil
}

func (s *service) GetMe(ctx context.Context, userID string) (*AuthResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, autherrors.ErrInvalidUserID
	}

	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, autherrors.ErrUserNotFound
	}

	p, err := s.profileRepo.GetByID(ctx, id)
	if err != nil {
		return nil, autherrors.ErrUserNotFound
	}

	roles, err := s.roles.RolesForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{
		ID:            u.ID.String(),
		Email:         u.Email,
		FullName:      p.FullName,
		Roles:         role.Strings(roles),
		PrimaryRole:   string(role.ResolvePrimary(roles)),
		AccountStatus: p.AccountStatus,
	}, nil
}

// reusable token generator
func (s *service) generateToken(userID string, roles []role.Role, expiry time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"roles":   role.Strings(roles),
		"exp":     time.Now().Add(expiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
