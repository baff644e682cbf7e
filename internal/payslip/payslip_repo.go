package payslip

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=payslip_repo.go -destination=mock/payslip_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, p *Payslip) error
	GetByID(ctx context.Context, id uuid.UUID) (*Payslip, error)
	GetByWorkerAndPeriod(ctx context.Context, workerID uuid.UUID, periodStart time.Time) (*Payslip, error)
	Update(ctx context.Context, p *Payslip) error
	List(ctx context.Context, q ListPayslipsQuery) ([]Payslip, int64, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, p *Payslip) error {
	if r.tx != nil {
		query := `
			INSERT INTO payslips (
				id, worker_id, period_start, period_end, total_hours, hourly_rate,
				gross_pay, deductions, net_pay, status, generated_by, notes, created_at, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())`
		_, err := r.tx.ExecContext(ctx, query,
			p.ID, p.WorkerID, p.PeriodStart, p.PeriodEnd, p.TotalHours, p.HourlyRate,
			p.GrossPay, p.Deductions, p.NetPay, p.Status, p.GeneratedBy, p.Notes)
		return err
	}
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Payslip, error) {
	var p Payslip
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) GetByWorkerAndPeriod(ctx context.Context, workerID uuid.UUID, periodStart time.Time) (*Payslip, error) {
	var p Payslip
	err := r.db.WithContext(ctx).
		Where("worker_id = ?", workerID).
		Where("period_start = ?", periodStart).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) Update(ctx context.Context, p *Payslip) error {
	if r.tx != nil {
		query := `
			UPDATE payslips
			SET total_hours = $1, hourly_rate = $2, gross_pay = $3, deductions = $4,
			    net_pay = $5, status = $6, generated_by = $7, paid_by = $8, paid_at = $9,
			    notes = $10, updated_at = NOW()
			WHERE id = $11`
		_, err := r.tx.ExecContext(ctx, query,
			p.TotalHours, p.HourlyRate, p.GrossPay, p.Deductions,
			p.NetPay, p.Status, p.GeneratedBy, p.PaidBy, p.PaidAt,
			p.Notes, p.ID)
		return err
	}
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *repository) List(ctx context.Context, q ListPayslipsQuery) ([]Payslip, int64, error) {
	db := r.db.WithContext(ctx).Model(&Payslip{})

	if q.WorkerID != "" {
		db = db.Where("worker_id = ?", q.WorkerID)
	}
	if q.Status != "" {
		db = db.Where("status = ?", q.Status)
	}
	if q.From != "" {
		db = db.Where("period_start >= ?", q.From)
	}
	if q.To != "" {
		db = db.Where("period_end <= ?", q.To)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []Payslip
	offset := (q.Page - 1) * q.PageSize
	err := db.Order("period_start DESC").Limit(q.PageSize).Offset(offset).Find(&rows).Error
	return rows, total, err
}
