package finance

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=finance_repo.go -destination=mock/finance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, t *FinancialTransaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*FinancialTransaction, error)
	List(ctx context.Context, q ListTransactionsQuery) ([]FinancialTransaction, int64, error)
	SummarizeByType(ctx context.Context, from, to string) ([]TypeTotal, error)
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

func (r *repository) Create(ctx context.Context, t *FinancialTransaction) error {
	if r.tx != nil {
		query := `
			INSERT INTO financial_transactions (
				id, transaction_type, amount, description, reference_number,
				recorded_by, related_worker_id, related_payslip_id, transaction_date, created_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())`
		_, err := r.tx.ExecContext(ctx, query,
			t.ID, t.TransactionType, t.Amount, t.Description, t.ReferenceNumber,
			t.RecordedBy, t.RelatedWorkerID, t.RelatedPayslipID, t.TransactionDate)
		return err
	}
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*FinancialTransaction, error) {
	var t FinancialTransaction
	err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repository) List(ctx context.Context, q ListTransactionsQuery) ([]FinancialTransaction, int64, error) {
	db := r.db.WithContext(ctx).Model(&FinancialTransaction{})

	if q.TransactionType != "" {
		db = db.Where("transaction_type = ?", q.TransactionType)
	}
	if q.WorkerID != "" {
		db = db.Where("related_worker_id = ?", q.WorkerID)
	}
	if q.From != "" {
		db = db.Where("transaction_date >= ?", q.From)
	}
	if q.To != "" {
		db = db.Where("transaction_date <= ?", q.To)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []FinancialTransaction
	offset := (q.Page - 1) * q.PageSize
	err := db.Order("transaction_date DESC, created_at DESC").Limit(q.PageSize).Offset(offset).Find(&rows).Error
	return rows, total, err
}

func (r *repository) SummarizeByType(ctx context.Context, from, to string) ([]TypeTotal, error) {
	db := r.db.WithContext(ctx).Model(&FinancialTransaction{}).
		Select("transaction_type, COALESCE(SUM(amount), 0) AS total, COUNT(*) AS count").
		Group("transaction_type")

	if from != "" {
		db = db.Where("transaction_date >= ?", from)
	}
	if to != "" {
		db = db.Where("transaction_date <= ?", to)
	}

	var rows []TypeTotal
	err := db.Order("transaction_type ASC").Scan(&rows).Error
	return rows, err
}
