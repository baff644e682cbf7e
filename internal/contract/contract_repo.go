package contract

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=contract_repo.go -destination=mock/contract_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, c *Contract) error
	GetByID(ctx context.Context, id uuid.UUID) (*Contract, error)
	Update(ctx context.Context, c *Contract) error
	ListByWorker(ctx context.Context, workerID uuid.UUID) ([]Contract, error)
	GetActiveByWorker(ctx context.Context, workerID uuid.UUID, onDate time.Time) (*Contract, error)
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

func (r *repository) Create(ctx context.Context, c *Contract) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Contract, error) {
	var c Contract
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) Update(ctx context.Context, c *Contract) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *repository) ListByWorker(ctx context.Context, workerID uuid.UUID) ([]Contract, error) {
	var rows []Contract
	err := r.db.WithContext(ctx).
		Where("worker_id = ?", workerID).
		Order("start_date DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) GetActiveByWorker(ctx context.Context, workerID uuid.UUID, onDate time.Time) (*Contract, error) {
	var c Contract
	err := r.db.WithContext(ctx).
		Where("worker_id = ?", workerID).
		Where("is_active = TRUE").
		Where("start_date <= ?", onDate).
		Where("end_date IS NULL OR end_date >= ?", onDate).
		Order("start_date DESC").
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}
