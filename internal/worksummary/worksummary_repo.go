package worksummary

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=worksummary_repo.go -destination=mock/worksummary_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, ws *WorkSummary) error
	GetByID(ctx context.Context, id uuid.UUID) (*WorkSummary, error)
	GetByWorkerAndPeriod(ctx context.Context, workerID uuid.UUID, periodStart time.Time) (*WorkSummary, error)
	Update(ctx context.Context, ws *WorkSummary) error
	List(ctx context.Context, q ListSummariesQuery, supervisorID string) ([]WorkSummary, int64, error)
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

func (r *repository) Create(ctx context.Context, ws *WorkSummary) error {
	return r.db.WithContext(ctx).Create(ws).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*WorkSummary, error) {
	var ws WorkSummary
	err := r.db.WithContext(ctx).First(&ws, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &ws, nil
}

func (r *repository) GetByWorkerAndPeriod(ctx context.Context, workerID uuid.UUID, periodStart time.Time) (*WorkSummary, error) {
	var ws WorkSummary
	err := r.db.WithContext(ctx).
		Where("worker_id = ?", workerID).
		Where("period_start = ?", periodStart).
		First(&ws).Error
	if err != nil {
		return nil, err
	}
	return &ws, nil
}

func (r *repository) Update(ctx context.Context, ws *WorkSummary) error {
	return r.db.WithContext(ctx).Save(ws).Error
}

// List joins through profiles when a supervisor filter applies, since
// the summary row itself does not carry the supervisor.
func (r *repository) List(ctx context.Context, q ListSummariesQuery, supervisorID string) ([]WorkSummary, int64, error) {
	db := r.db.WithContext(ctx).Model(&WorkSummary{})

	if supervisorID != "" {
		db = db.Joins("JOIN profiles ON profiles.id = work_summaries.worker_id").
			Where("profiles.supervisor_id = ?", supervisorID)
	}
	if q.WorkerID != "" {
		db = db.Where("work_summaries.worker_id = ?", q.WorkerID)
	}
	if q.Status != "" {
		db = db.Where("work_summaries.status = ?", q.Status)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []WorkSummary
	offset := (q.Page - 1) * q.PageSize
	err := db.Order("work_summaries.period_start DESC").Limit(q.PageSize).Offset(offset).Find(&rows).Error
	return rows, total, err
}
