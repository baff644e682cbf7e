package analytics_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/simeongugl4-design/workforce-hub-png/internal/analytics"
	analyticserrors "github.com/simeongugl4-design/workforce-hub-png/internal/analytics/errors"
	"github.com/simeongugl4-design/workforce-hub-png/internal/role"

	"github.com/go-redis/redismock/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeAnalyticsRepo struct {
	headcount map[string]int64
	byStatus  map[string]int64
	hours     decimal.Decimal
	payslips  map[string]int64
	cost      decimal.Decimal
	contracts int64
	calls     int
}

func (r *fakeAnalyticsRepo) HeadcountByStatus(_ context.Context) (map[string]int64, error) {
	r.calls++
	return r.headcount, nil
}

func (r *fakeAnalyticsRepo) CountTimesheetsByStatus(_ context.Context, status string) (int64, error) {
	return r.byStatus[status], nil
}

func (r *fakeAnalyticsRepo) ApprovedHoursBetween(_ context.Context, _, _ time.Time) (decimal.Decimal, error) {
	return r.hours, nil
}

func (r *fakeAnalyticsRepo) CountPayslipsBetween(_ context.Context, _, _ time.Time, status string) (int64, error) {
	return r.payslips[status], nil
}

func (r *fakeAnalyticsRepo) PayrollCostBetween(_ context.Context, _, _ time.Time) (decimal.Decimal, error) {
	return r.cost, nil
}

func (r *fakeAnalyticsRepo) CountActiveContracts(_ context.Context, _ time.Time) (int64, error) {
	return r.contracts, nil
}

func seededRepo() *fakeAnalyticsRepo {
	return &fakeAnalyticsRepo{
		headcount: map[string]int64{"approved": 12, "pending": 3, "rejected": 1},
		byStatus:  map[string]int64{"pending": 7, "flagged": 2},
		hours:     decimal.RequireFromString("640.50"),
		payslips:  map[string]int64{"generated": 5, "paid": 4},
		cost:      decimal.RequireFromString("18250.00"),
		contracts: 6,
	}
}

func TestDashboard_BuildsAggregates(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	mock.Regexp().ExpectGet("analytics:dashboard").RedisNil()
	mock.Regexp().ExpectSet("analytics:dashboard", `.*`, 5*time.Minute).SetVal("OK")

	svc := analytics.NewService(seededRepo(), rdb, zap.NewNop())

	resp, err := svc.Dashboard(context.Background(), role.Manager)

	require.NoError(t, err)
	assert.Equal(t, int64(12), resp.Headcount.Approved)
	assert.Equal(t, int64(3), resp.Headcount.Pending)
	assert.Equal(t, int64(7), resp.PendingTimesheets)
	assert.Equal(t, int64(2), resp.FlaggedTimesheets)
	assert.Equal(t, "640.50", resp.ApprovedHours)
	assert.Equal(t, int64(5), resp.PayslipsGenerated)
	assert.Equal(t, int64(4), resp.PayslipsPaid)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDashboard_ServedFromCache(t *testing.T) {
	cached := analytics.DashboardResponse{
		Headcount:         analytics.HeadcountBreakdown{Approved: 99},
		ApprovedHours:     "1.00",
		PeriodStart:       "2025-04-01",
		PeriodEnd:         "2025-04-15",
		PayslipsGenerated: 1,
	}
	data, err := json.Marshal(cached)
	require.NoError(t, err)

	rdb, mock := redismock.NewClientMock()
	mock.ExpectGet("analytics:dashboard").SetVal(string(data))

	repo := seededRepo()
	svc := analytics.NewService(repo, rdb, zap.NewNop())

	resp, err := svc.Dashboard(context.Background(), role.Accountant)

	require.NoError(t, err)
	assert.Equal(t, int64(99), resp.Headcount.Approved)
	assert.Zero(t, repo.calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDashboard_DeniedForSupervisor(t *testing.T) {
	rdb, _ := redismock.NewClientMock()
	svc := analytics.NewService(seededRepo(), rdb, zap.NewNop())

	_, err := svc.Dashboard(context.Background(), role.Supervisor)

	assert.ErrorIs(t, err, analyticserrors.ErrForbiddenAnalyticsAccess)
}

func TestExecutive_CEOOnly(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	mock.Regexp().ExpectGet("analytics:executive").RedisNil()
	mock.Regexp().ExpectSet("analytics:executive", `.*`, 5*time.Minute).SetVal("OK")

	svc := analytics.NewService(seededRepo(), rdb, zap.NewNop())

	resp, err := svc.Executive(context.Background(), role.CEO)
	require.NoError(t, err)
	assert.Equal(t, "18250.00", resp.PayrollCost)
	assert.Equal(t, int64(6), resp.ActiveContracts)

	_, err = svc.Executive(context.Background(), role.Manager)
	assert.ErrorIs(t, err, analyticserrors.ErrExecutiveOnly)
}
