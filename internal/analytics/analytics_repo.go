package analytics

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

//go:generate mockgen -source=analytics_repo.go -destination=mock/analytics_repo_mock.go -package=mock
type Repository interface {
	HeadcountByStatus(ctx context.Context) (map[string]int64, error)
	CountTimesheetsByStatus(ctx context.Context, status string) (int64, error)
	ApprovedHoursBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
	CountPayslipsBetween(ctx context.Context, from, to time.Time, status string) (int64, error)
	PayrollCostBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
	CountActiveContracts(ctx context.Context, onDate time.Time) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) HeadcountByStatus(ctx context.Context) (map[string]int64, error) {
	type row struct {
		AccountStatus string
		Total         int64
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Table("profiles").
		Select("account_status, COUNT(*) AS total").
		Where("deleted_at IS NULL").
		Group("account_status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make(map[string]int64, len(rows))
	for _, rr := range rows {
		out[rr.AccountStatus] = rr.Total
	}
	return out, nil
}

func (r *repository) CountTimesheetsByStatus(ctx context.Context, status string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Table("timesheets").
		Where("status = ?", status).
		Count(&total).Error
	return total, err
}

func (r *repository) ApprovedHoursBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).
		Table("timesheets").
		Select("COALESCE(SUM(total_hours), 0)").
		Where("status = ?", "approved").
		Where("date BETWEEN ? AND ?", from, to).
		Scan(&total).Error
	return total, err
}

func (r *repository) CountPayslipsBetween(ctx context.Context, from, to time.Time, status string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Table("payslips").
		Where("status = ?", status).
		Where("period_start BETWEEN ? AND ?", from, to).
		Count(&total).Error
	return total, err
}

func (r *repository) PayrollCostBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).
		Table("payslips").
		Select("COALESCE(SUM(net_pay), 0)").
		Where("status = ?", "paid").
		Where("period_start BETWEEN ? AND ?", from, to).
		Scan(&total).Error
	return total, err
}

func (r *repository) CountActiveContracts(ctx context.Context, onDate time.Time) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Table("contracts").
		Where("is_active").
		Where("start_date <= ?", onDate).
		Where("end_date IS NULL OR end_date >= ?", onDate).
		Count(&total).Error
	return total, err
}
