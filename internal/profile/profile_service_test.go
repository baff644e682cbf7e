package profile_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/simeongugl4-design/workforce-hub-png/internal/profile"
	profileerrors "github.com/simeongugl4-design/workforce-hub-png/internal/profile/errors"
	"github.com/simeongugl4-design/workforce-hub-png/internal/role"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fakeRepo struct {
	profiles map[uuid.UUID]*profile.Profile
}

func newFakeRepo(seed ...*profile.Profile) *fakeRepo {
	r := &fakeRepo{profiles: map[uuid.UUID]*profile.Profile{}}
	for _, p := range seed {
		cp := *p
		r.profiles[p.ID] = &cp
	}
	return r
}

func (r *fakeRepo) WithTx(tx *sql.Tx) profile.Repository { return r }

func (r *fakeRepo) Create(_ context.Context, p *profile.Profile) error {
	cp := *p
	r.profiles[p.ID] = &cp
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (*profile.Profile, error) {
	p, ok := r.profiles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakeRepo) Update(_ context.Context, p *profile.Profile) error {
	cp := *p
	r.profiles[p.ID] = &cp
	return nil
}

func (r *fakeRepo) List(_ context.Context, q profile.ListProfilesQuery) ([]profile.Profile, int64, error) {
	var rows []profile.Profile
	for _, p := range r.profiles {
		if q.SupervisorID != "" {
			if p.SupervisorID == nil || p.SupervisorID.String() != q.SupervisorID {
				continue
			}
		}
		rows = append(rows, *p)
	}
	return rows, int64(len(rows)), nil
}

func (r *fakeRepo) ListBySupervisor(_ context.Context, supervisorID uuid.UUID) ([]profile.Profile, error) {
	rows, _, err := r.List(context.Background(), profile.ListProfilesQuery{SupervisorID: supervisorID.String()})
	return rows, err
}

type fakeRoleChecker struct {
	roles map[string][]role.Role
}

func (f *fakeRoleChecker) RolesForUser(_ context.Context, userID string) ([]role.Role, error) {
	if rs, ok := f.roles[userID]; ok {
		return rs, nil
	}
	return []role.Role{role.Worker}, nil
}

func seedProfile(supervisorID *uuid.UUID) *profile.Profile {
	return &profile.Profile{
		ID:             uuid.New(),
		FullName:       "Kila Aruma",
		Email:          "kila@example.com",
		EmploymentType: profile.EmploymentPermanent,
		SupervisorID:   supervisorID,
		HourlyRate:     decimal.RequireFromString("12.50"),
		AccountStatus:  profile.AccountStatusApproved,
		IsActive:       true,
	}
}

func TestGet_WorkerSeesOwnProfileOnly(t *testing.T) {
	own := seedProfile(nil)
	other := seedProfile(nil)
	svc := profile.NewService(newFakeRepo(own, other), &fakeRoleChecker{}, zap.NewNop())

	resp, err := svc.Get(context.Background(), own.ID.String(), role.Worker, own.ID.String())
	require.NoError(t, err)
	assert.Equal(t, own.ID.String(), resp.ID)

	_, err = svc.Get(context.Background(), own.ID.String(), role.Worker, other.ID.String())
	assert.ErrorIs(t, err, profileerrors.ErrForbiddenProfileAccess)
}

func TestGet_SupervisorSeesDirectReports(t *testing.T) {
	supID := uuid.New()
	report := seedProfile(&supID)
	stranger := seedProfile(nil)
	svc := profile.NewService(newFakeRepo(report, stranger), &fakeRoleChecker{}, zap.NewNop())

	_, err := svc.Get(context.Background(), supID.String(), role.Supervisor, report.ID.String())
	assert.NoError(t, err)

	_, err = svc.Get(context.Background(), supID.String(), role.Supervisor, stranger.ID.String())
	assert.ErrorIs(t, err, profileerrors.ErrForbiddenProfileAccess)
}

func TestGet_NotFound(t *testing.T) {
	svc := profile.NewService(newFakeRepo(), &fakeRoleChecker{}, zap.NewNop())

	_, err := svc.Get(context.Background(), uuid.NewString(), role.Manager, uuid.NewString())
	assert.ErrorIs(t, err, profileerrors.ErrProfileNotFound)
}

func TestUpdateOwn_OnlySelfServiceFieldsChange(t *testing.T) {
	own := seedProfile(nil)
	repo := newFakeRepo(own)
	svc := profile.NewService(repo, &fakeRoleChecker{}, zap.NewNop())

	name := "Kila A. Aruma"
	loc := "Port Moresby"
	resp, err := svc.UpdateOwn(context.Background(), own.ID.String(), profile.UpdateProfileRequest{
		FullName: &name,
		Location: &loc,
	})

	require.NoError(t, err)
	assert.Equal(t, name, resp.FullName)
	require.NotNil(t, resp.Location)
	assert.Equal(t, loc, *resp.Location)
	assert.True(t, resp.HourlyRate.Equal(decimal.RequireFromString("12.50")))
}

func TestUpdateEmployment_NegativeRateRejected(t *testing.T) {
	own := seedProfile(nil)
	svc := profile.NewService(newFakeRepo(own), &fakeRoleChecker{}, zap.NewNop())

	bad := decimal.RequireFromString("-1")
	_, err := svc.UpdateEmployment(context.Background(), own.ID.String(), profile.UpdateEmploymentRequest{
		HourlyRate: &bad,
	})

	assert.ErrorIs(t, err, profileerrors.ErrInvalidHourlyRate)
}

func TestUpdateEmployment_SupervisorMustHoldRole(t *testing.T) {
	worker := seedProfile(nil)
	candidate := seedProfile(nil)
	checker := &fakeRoleChecker{roles: map[string][]role.Role{
		candidate.ID.String(): {role.Worker},
	}}
	svc := profile.NewService(newFakeRepo(worker, candidate), checker, zap.NewNop())

	supRaw := candidate.ID.String()
	_, err := svc.UpdateEmployment(context.Background(), worker.ID.String(), profile.UpdateEmploymentRequest{
		SupervisorID: &supRaw,
	})

	assert.ErrorIs(t, err, profileerrors.ErrInvalidSupervisor)
}

func TestUpdateEmployment_AssignsValidSupervisor(t *testing.T) {
	worker := seedProfile(nil)
	sup := seedProfile(nil)
	checker := &fakeRoleChecker{roles: map[string][]role.Role{
		sup.ID.String(): {role.Worker, role.Supervisor},
	}}
	svc := profile.NewService(newFakeRepo(worker, sup), checker, zap.NewNop())

	supRaw := sup.ID.String()
	resp, err := svc.UpdateEmployment(context.Background(), worker.ID.String(), profile.UpdateEmploymentRequest{
		SupervisorID: &supRaw,
	})

	require.NoError(t, err)
	require.NotNil(t, resp.SupervisorID)
	assert.Equal(t, supRaw, *resp.SupervisorID)
}

func TestDecideAccount_ApproveAndRejectArePendingOnly(t *testing.T) {
	pending := seedProfile(nil)
	pending.AccountStatus = profile.AccountStatusPending
	repo := newFakeRepo(pending)
	svc := profile.NewService(repo, &fakeRoleChecker{}, zap.NewNop())

	deciderID := uuid.NewString()

	resp, err := svc.DecideAccount(context.Background(), deciderID, pending.ID.String(), profile.AccountDecisionRequest{Approve: true})
	require.NoError(t, err)
	assert.Equal(t, profile.AccountStatusApproved, resp.AccountStatus)

	_, err = svc.DecideAccount(context.Background(), deciderID, pending.ID.String(), profile.AccountDecisionRequest{Approve: false})
	assert.ErrorIs(t, err, profileerrors.ErrAccountNotPending)
}

func TestDecideAccount_RejectDeactivates(t *testing.T) {
	pending := seedProfile(nil)
	pending.AccountStatus = profile.AccountStatusPending
	svc := profile.NewService(newFakeRepo(pending), &fakeRoleChecker{}, zap.NewNop())

	resp, err := svc.DecideAccount(context.Background(), uuid.NewString(), pending.ID.String(), profile.AccountDecisionRequest{Approve: false})

	require.NoError(t, err)
	assert.Equal(t, profile.AccountStatusRejected, resp.AccountStatus)
	assert.False(t, resp.IsActive)
}

func TestList_SupervisorScopedToReports(t *testing.T) {
	supID := uuid.New()
	report := seedProfile(&supID)
	other := seedProfile(nil)
	svc := profile.NewService(newFakeRepo(report, other), &fakeRoleChecker{}, zap.NewNop())

	rows, total, err := svc.List(context.Background(), supID.String(), role.Supervisor, profile.ListProfilesQuery{Page: 1, PageSize: 20})

	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, rows, 1)
	assert.Equal(t, report.ID.String(), rows[0].ID)
}
