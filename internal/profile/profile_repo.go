package profile

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=profile_repo.go -destination=mock/profile_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, p *Profile) error
	GetByID(ctx context.Context, id uuid.UUID) (*Profile, error)
	Update(ctx context.Context, p *Profile) error
	List(ctx context.Context, q ListProfilesQuery) ([]Profile, int64, error)
	ListBySupervisor(ctx context.Context, supervisorID uuid.UUID) ([]Profile, error)
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

func (r *repository) Create(ctx context.Context, p *Profile) error {
	if r.tx != nil {
		query := `
			INSERT INTO profiles (id, full_name, email, employment_type, hourly_rate, account_status, is_active, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())`
		_, err := r.tx.ExecContext(ctx, query,
			p.ID, p.FullName, p.Email, p.EmploymentType, p.HourlyRate, p.AccountStatus, p.IsActive)
		return err
	}
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Profile, error) {
	var p Profile
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) Update(ctx context.Context, p *Profile) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *repository) List(ctx context.Context, q ListProfilesQuery) ([]Profile, int64, error) {
	db := r.db.WithContext(ctx).Model(&Profile{})

	if q.AccountStatus != "" {
		db = db.Where("account_status = ?", q.AccountStatus)
	}
	if q.EmploymentType != "" {
		db = db.Where("employment_type = ?", q.EmploymentType)
	}
	if q.SupervisorID != "" {
		db = db.Where("supervisor_id = ?", q.SupervisorID)
	}
	if q.Search != "" {
		like := "%" + q.Search + "%"
		db = db.Where("full_name ILIKE ? OR email ILIKE ?", like, like)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []Profile
	offset := (q.Page - 1) * q.PageSize
	err := db.Order("full_name ASC").Limit(q.PageSize).Offset(offset).Find(&rows).Error
	return rows, total, err
}

func (r *repository) ListBySupervisor(ctx context.Context, supervisorID uuid.UUID) ([]Profile, error) {
	var rows []Profile
	err := r.db.WithContext(ctx).
		Where("supervisor_id = ?", supervisorID).
		Order("full_name ASC").
		Find(&rows).Error
	return rows, err
}
