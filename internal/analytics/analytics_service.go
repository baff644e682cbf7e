package analytics

import (
	"context"
	"encoding/json"
	"time"

	analyticserrors "github.com/simeongugl4-design/workforce-hub-png/internal/analytics/errors"
	"github.com/simeongugl4-design/workforce-hub-png/internal/payperiod"
	"github.com/simeongugl4-design/workforce-hub-png/internal/payslip"
	"github.com/simeongugl4-design/workforce-hub-png/internal/role"
	"github.com/simeongugl4-design/workforce-hub-png/internal/timesheet"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	dashboardCacheKey = "analytics:dashboard"
	executiveCacheKey = "analytics:executive"
	cacheTTL          = 5 * time.Minute
)

//go:generate mockgen -source=analytics_service.go -destination=mock/analytics_service_mock.go -package=mock
type Service interface {
	Dashboard(ctx context.Context, primary role.Role) (DashboardResponse, error)
	Executive(ctx context.Context, primary role.Role) (ExecutiveResponse, error)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	now    func() time.Time
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("analytics.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("analytics.service")
	}
	return &service{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		now:    time.Now,
		logger: l,
	}
}

func (s *service) Dashboard(ctx context.Context, primary role.Role) (DashboardResponse, error) {
	switch primary {
	case role.CEO, role.Manager, role.Accountant:
	default:
		return DashboardResponse{}, analyticserrors.ErrForbiddenAnalyticsAccess
	}

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, dashboardCacheKey).Result(); err == nil {
			var resp DashboardResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(dashboardCacheKey, func() (interface{}, error) {
		resp, err := s.buildDashboard(ctx)
		if err != nil {
			return nil, err
		}

		if s.rdb != nil {
			if data, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, dashboardCacheKey, data, cacheTTL)
			}
		}

		return resp, nil
	})
	if err != nil {
		return DashboardResponse{}, err
	}

	return v.(DashboardResponse), nil
}

func (s *service) Executive(ctx context.Context, primary role.Role) (ExecutiveResponse, error) {
	if primary != role.CEO {
		return ExecutiveResponse{}, analyticserrors.ErrExecutiveOnly
	}

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, executiveCacheKey).Result(); err == nil {
			var resp ExecutiveResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(executiveCacheKey, func() (interface{}, error) {
		dashboard, err := s.buildDashboard(ctx)
		if err != nil {
			return nil, err
		}

		period := payperiod.For(s.now())

		cost, err := s.repo.PayrollCostBetween(ctx, period.Start, period.End)
		if err != nil {
			return nil, err
		}

		contracts, err := s.repo.CountActiveContracts(ctx, s.now())
		if err != nil {
			return nil, err
		}

		resp := ExecutiveResponse{
			DashboardResponse: dashboard,
			PayrollCost:       cost.StringFixed(2),
			ActiveContracts:   contracts,
		}

		if s.rdb != nil {
			if data, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, executiveCacheKey, data, cacheTTL)
			}
		}

		return resp, nil
	})
	if err != nil {
		return ExecutiveResponse{}, err
	}

	return v.(ExecutiveResponse), nil
}

func (s *service) buildDashboard(ctx context.Context) (DashboardResponse, error) {
	headcount, err := s.repo.HeadcountByStatus(ctx)
	if err != nil {
		return DashboardResponse{}, err
	}

	pending, err := s.repo.CountTimesheetsByStatus(ctx, timesheet.StatusPending)
	if err != nil {
		return DashboardResponse{}, err
	}

	flagged, err := s.repo.CountTimesheetsByStatus(ctx, timesheet.StatusFlagged)
	if err != nil {
		return DashboardResponse{}, err
	}

	period := payperiod.For(s.now())

	hours, err := s.repo.ApprovedHoursBetween(ctx, period.Start, period.End)
	if err != nil {
		return DashboardResponse{}, err
	}

	generated, err := s.repo.CountPayslipsBetween(ctx, period.Start, period.End, payslip.StatusGenerated)
	if err != nil {
		return DashboardResponse{}, err
	}

	paid, err := s.repo.CountPayslipsBetween(ctx, period.Start, period.End, payslip.StatusPaid)
	if err != nil {
		return DashboardResponse{}, err
	}

	return DashboardResponse{
		Headcount: HeadcountBreakdown{
			Approved: headcount["approved"],
			Pending:  headcount["pending"],
			Rejected: headcount["rejected"],
		},
		PendingTimesheets: pending,
		FlaggedTimesheets: flagged,
		PeriodStart:       period.Start.Format("2006-01-02"),
		PeriodEnd:         period.End.Format("2006-01-02"),
		ApprovedHours:     hours.StringFixed(2),
		PayslipsGenerated: generated,
		PayslipsPaid:      paid,
	}, nil
}
