package auth_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/simeongugl4-design/workforce-hub-png/internal/auth"
	autherrors "github.com/simeongugl4-design/workforce-hub-png/internal/auth/errors"
	"github.com/simeongugl4-design/workforce-hub-png/internal/profile"
	"github.com/simeongugl4-design/workforce-hub-png/internal/role"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeUserRepo struct {
	byEmail map[string]*auth.User
	byID    map[uuid.UUID]*auth.User
}

func newFakeUserRepo(users ...*auth.User) *fakeUserRepo {
	r := &fakeUserRepo{byEmail: map[string]*auth.User{}, byID: map[uuid.UUID]*auth.User{}}
	for _, u := range users {
		r.byEmail[u.Email] = u
		r.byID[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) WithTx(tx *sql.Tx) auth.Repository { return r }

func (r *fakeUserRepo) Create(_ context.Context, u *auth.User) error {
	r.byEmail[u.Email] = u
	r.byID[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*auth.User, error) {
	if u, ok := r.byEmail[email]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*auth.User, error) {
	if u, ok := r.byID[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeProfileRepo struct {
	byID    map[uuid.UUID]*profile.Profile
	created []*profile.Profile
}

func newFakeProfileRepo(profiles ...*profile.Profile) *fakeProfileRepo {
	r := &fakeProfileRepo{byID: map[uuid.UUID]*profile.Profile{}}
	for _, p := range profiles {
		r.byID[p.ID] = p
	}
	return r
}

func (r *fakeProfileRepo) WithTx(tx *sql.Tx) profile.Repository { return r }

func (r *fakeProfileRepo) Create(_ context.Context, p *profile.Profile) error {
	r.byID[p.ID] = p
	r.created = append(r.created, p)
	return nil
}

func (r *fakeProfileRepo) GetByID(_ context.Context, id uuid.UUID) (*profile.Profile, error) {
	if p, ok := r.byID[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeProfileRepo) Update(_ context.Context, p *profile.Profile) error {
	r.byID[p.ID] = p
	return nil
}

func (r *fakeProfileRepo) List(_ context.Context, _ profile.ListProfilesQuery) ([]profile.Profile, int64, error) {
	return nil, 0, nil
}

func (r *fakeProfileRepo) ListBySupervisor(_ context.Context, _ uuid.UUID) ([]profile.Profile, error) {
	return nil, nil
}

type staticRoles struct {
	roles []role.Role
}

func (s staticRoles) RolesForUser(_ context.Context, _ string) ([]role.Role, error) {
	if s.roles == nil {
		return []role.Role{role.Worker}, nil
	}
	return s.roles, nil
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func approvedUser(t *testing.T, password string) (*auth.User, *profile.Profile) {
	t.Helper()
	id := uuid.New()
	u := &auth.User{ID: id, Email: "lani@example.com", Password: mustHash(t, password), IsActive: true}
	p := &profile.Profile{
		ID:            id,
		FullName:      "Lani Kapi",
		Email:         u.Email,
		AccountStatus: profile.AccountStatusApproved,
		IsActive:      true,
	}
	return u, p
}

func TestSignup_CreatesUserAndPendingProfile(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO users").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	profiles := newFakeProfileRepo()
	svc := auth.NewService(db, newFakeUserRepo(), profiles, staticRoles{}, zap.NewNop())

	resp, err := svc.Signup(context.Background(), auth.SignupRequest{
		FullName: "Lani Kapi",
		Email:    "lani@example.com",
		Phone:    "+675 7000 0000",
		Password: "hunter22",
	})

	require.NoError(t, err)
	assert.Equal(t, profile.AccountStatusPending, resp.AccountStatus)
	assert.Equal(t, "worker", resp.PrimaryRole)
	require.Len(t, profiles.created, 1)
	assert.Equal(t, profile.AccountStatusPending, profiles.created[0].AccountStatus)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSignup_RollsBackWhenUserInsertFails(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO users").
		WillReturnError(sql.ErrConnDone)
	mock.ExpectRollback()

	profiles := newFakeProfileRepo()
	svc := auth.NewService(db, newFakeUserRepo(), profiles, staticRoles{}, zap.NewNop())

	_, err = svc.Signup(context.Background(), auth.SignupRequest{
		FullName: "Lani Kapi",
		Email:    "lani@example.com",
		Phone:    "+675 7000 0000",
		Password: "hunter22",
	})

	assert.ErrorIs(t, err, sql.ErrConnDone)
	assert.NotErrorIs(t, err, autherrors.ErrEmailAlreadyRegistered)
	assert.Empty(t, profiles.created)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSignup_DuplicateEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO users").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})
	mock.ExpectRollback()

	profiles := newFakeProfileRepo()
	svc := auth.NewService(db, newFakeUserRepo(), profiles, staticRoles{}, zap.NewNop())

	_, err = svc.Signup(context.Background(), auth.SignupRequest{
		FullName: "Lani Kapi",
		Email:    "lani@example.com",
		Phone:    "+675 7000 0000",
		Password: "hunter22",
	})

	assert.ErrorIs(t, err, autherrors.ErrEmailAlreadyRegistered)
	assert.Empty(t, profiles.created)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLogin_Success(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	u, p := approvedUser(t, "hunter22")
	svc := auth.NewService(nil, newFakeUserRepo(u), newFakeProfileRepo(p),
		staticRoles{roles: []role.Role{role.Worker, role.Supervisor}}, zap.NewNop())

	access, refresh, resp, err := svc.Login(context.Background(), u.Email, "hunter22")

	require.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)
	assert.Equal(t, "supervisor", resp.PrimaryRole)
	assert.ElementsMatch(t, []string{"worker", "supervisor"}, resp.Roles)
}

func TestLogin_WrongPassword(t *testing.T) {
	u, p := approvedUser(t, "hunter22")
	svc := auth.NewService(nil, newFakeUserRepo(u), newFakeProfileRepo(p), staticRoles{}, zap.NewNop())

	_, _, _, err := svc.Login(context.Background(), u.Email, "wrong")

	assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
}

func TestLogin_PendingAccountBlocked(t *testing.T) {
	u, p := approvedUser(t, "hunter22")
	p.AccountStatus = profile.AccountStatusPending
	svc := auth.NewService(nil, newFakeUserRepo(u), newFakeProfileRepo(p), staticRoles{}, zap.NewNop())

	_, _, _, err := svc.Login(context.Background(), u.Email, "hunter22")

	assert.ErrorIs(t, err, autherrors.ErrAccountNotApproved)
}

func TestLogin_RejectedAccountBlocked(t *testing.T) {
	u, p := approvedUser(t, "hunter22")
	p.AccountStatus = profile.AccountStatusRejected
	svc := auth.NewService(nil, newFakeUserRepo(u), newFakeProfileRepo(p), staticRoles{}, zap.NewNop())

	_, _, _, err := svc.Login(context.Background(), u.Email, "hunter22")

	assert.ErrorIs(t, err, autherrors.ErrAccountRejected)
}

func TestLogin_InactiveAccountBlocked(t *testing.T) {
	u, p := approvedUser(t, "hunter22")
	u.IsActive = false
	svc := auth.NewService(nil, newFakeUserRepo(u), newFakeProfileRepo(p), staticRoles{}, zap.NewNop())

	_, _, _, err := svc.Login(context.Background(), u.Email, "hunter22")

	assert.ErrorIs(t, err, autherrors.ErrAccountInactive)
}

func TestRefreshToken_RoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	u, p := approvedUser(t, "hunter22")
	svc := auth.NewService(nil, newFakeUserRepo(u), newFakeProfileRepo(p),
		staticRoles{roles: []role.Role{role.Worker}}, zap.NewNop())

	_, refresh, _, err := svc.Login(context.Background(), u.Email, "hunter22")
	require.NoError(t, err)

	newAccess, newRefresh, resp, err := svc.RefreshToken(context.Background(), refresh)

	require.NoError(t, err)
	assert.NotEmpty(t, newAccess)
	assert.NotEmpty(t, newRefresh)
	assert.Equal(t, u.ID.String(), resp.ID)
}

func TestRefreshToken_Garbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	svc := auth.NewService(nil, newFakeUserRepo(), newFakeProfileRepo(), staticRoles{}, zap.NewNop())

	_, _, _, err := svc.RefreshToken(context.Background(), "not-a-jwt")

	assert.ErrorIs(t, err, autherrors.ErrInvalidRefreshToken)
}

func TestGetMe(t *testing.T) {
	u, p := approvedUser(t, "hunter22")
	svc := auth.NewService(nil, newFakeUserRepo(u), newFakeProfileRepo(p),
		staticRoles{roles: []role.Role{role.Worker, role.Accountant}}, zap.NewNop())

	resp, err := svc.GetMe(context.Background(), u.ID.String())

	require.NoError(t, err)
	assert.Equal(t, "accountant", resp.PrimaryRole)
	assert.Equal(t, p.FullName, resp.FullName)
}
