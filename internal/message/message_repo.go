package message

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=message_repo.go -destination=mock/message_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, m *Message) error
	GetByID(ctx context.Context, id uuid.UUID) (*Message, error)
	Update(ctx context.Context, m *Message) error
	ListInbox(ctx context.Context, userID uuid.UUID, roleNames []string, q ListMessagesQuery) ([]Message, int64, error)
	ListSent(ctx context.Context, senderID uuid.UUID, q ListMessagesQuery) ([]Message, int64, error)
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

func (r *repository) Create(ctx context.Context, m *Message) error {
	if r.tx != nil {
		_, err := r.tx.ExecContext(ctx, `
			INSERT INTO messages (id, sender_id, recipient_id, is_broadcast, broadcast_to_role, subject, body, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())`,
			m.ID, m.SenderID, m.RecipientID, m.IsBroadcast, m.BroadcastToRole, m.Subject, m.Body,
		)
		return err
	}
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Message, error) {
	var m Message
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *repository) Update(ctx context.Context, m *Message) error {
	return r.db.WithContext(ctx).Save(m).Error
}

// ListInbox returns direct messages addressed to the user plus any
// broadcast addressed to a role the user holds.
func (r *repository) ListInbox(ctx context.Context, userID uuid.UUID, roleNames []string, q ListMessagesQuery) ([]Message, int64, error) {
	db := r.db.WithContext(ctx).Model(&Message{}).
		Where("recipient_id = ? OR (is_broadcast AND broadcast_to_role IN ?)", userID, roleNames)

	if q.Unread {
		db = db.Where("read_at IS NULL")
	}

	return paginate(db, q)
}

func (r *repository) ListSent(ctx context.Context, senderID uuid.UUID, q ListMessagesQuery) ([]Message, int64, error) {
	db := r.db.WithContext(ctx).Model(&Message{}).Where("sender_id = ?", senderID)
	return paginate(db, q)
}

func paginate(db *gorm.DB, q ListMessagesQuery) ([]Message, int64, error) {
	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []Message
	offset := (q.Page - 1) * q.PageSize
	err := db.Order("created_at DESC").Limit(q.PageSize).Offset(offset).Find(&rows).Error
	return rows, total, err
}
