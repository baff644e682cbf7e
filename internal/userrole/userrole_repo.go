package userrole

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=userrole_repo.go -destination=mock/userrole_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, ur *UserRole) error
	Delete(ctx context.Context, userID, roleLabel string) error
	FindByUser(ctx context.Context, userID string) ([]UserRole, error)
	FindUsersByRole(ctx context.Context, roleLabel string) ([]string, error)
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

func (r *repository) Create(ctx context.Context, ur *UserRole) error {
	return r.db.WithContext(ctx).Create(ur).Error
}

func (r *repository) Delete(ctx context.Context, userID, roleLabel string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("role = ?", roleLabel).
		Delete(&UserRole{}).Error
}

func (r *repository) FindByUser(ctx context.Context, userID string) ([]UserRole, error) {
	var rows []UserRole
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindUsersByRole(ctx context.Context, roleLabel string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&UserRole{}).
		Where("role = ?", roleLabel).
		Pluck("user_id", &ids).Error
	return ids, err
}
