package timesheet

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=timesheet_repo.go -destination=mock/timesheet_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, ts *Timesheet) error
	GetByID(ctx context.Context, id uuid.UUID) (*Timesheet, error)
	Update(ctx context.Context, ts *Timesheet) error
	List(ctx context.Context, q ListTimesheetsQuery) ([]Timesheet, int64, error)
	ListForWorkerInRange(ctx context.Context, workerID uuid.UUID, from, to time.Time) ([]Timesheet, error)
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

func (r *repository) Create(ctx context.Context, ts *Timesheet) error {
	return r.db.WithContext(ctx).Create(ts).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Timesheet, error) {
	var ts Timesheet
	err := r.db.WithContext(ctx).First(&ts, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &ts, nil
}

func (r *repository) Update(ctx context.Context, ts *Timesheet) error {
	if r.tx != nil {
		query := `
			UPDATE timesheets
			SET status = $1, review_note = $2, approved_by = $3, approved_at = $4, updated_at = NOW()
			WHERE id = $5`
		_, err := r.tx.ExecContext(ctx, query,
			ts.Status, ts.ReviewNote, ts.ApprovedBy, ts.ApprovedAt, ts.ID)
		return err
	}
	return r.db.WithContext(ctx).Save(ts).Error
}

func (r *repository) List(ctx context.Context, q ListTimesheetsQuery) ([]Timesheet, int64, error) {
	db := r.db.WithContext(ctx).Model(&Timesheet{})

	if q.WorkerID != "" {
		db = db.Where("worker_id = ?", q.WorkerID)
	}
	if q.SupervisorID != "" {
		db = db.Where("supervisor_id = ?", q.SupervisorID)
	}
	if q.Status != "" {
		db = db.Where("status = ?", q.Status)
	}
	if q.From != "" {
		db = db.Where("date >= ?", q.From)
	}
	if q.To != "" {
		db = db.Where("date <= ?", q.To)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []Timesheet
	offset := (q.Page - 1) * q.PageSize
	err := db.Order("date DESC, created_at DESC").Limit(q.PageSize).Offset(offset).Find(&rows).Error
	return rows, total, err
}

func (r *repository) ListForWorkerInRange(ctx context.Context, workerID uuid.UUID, from, to time.Time) ([]Timesheet, error) {
	var rows []Timesheet
	err := r.db.WithContext(ctx).
		Where("worker_id = ?", workerID).
		Where("date BETWEEN ? AND ?", from, to).
		Order("date ASC").
		Find(&rows).Error
	return rows, err
}
