package message

import (
	"context"
	"errors"
	"time"

	messageerrors "github.com/simeongugl4-design/workforce-hub-png/internal/message/errors"
	"github.com/simeongugl4-design/workforce-hub-png/internal/profile"
	"github.com/simeongugl4-design/workforce-hub-png/internal/role"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=message_service.go -destination=mock/message_service_mock.go -package=mock
type Service interface {
	Send(ctx context.Context, senderID string, req SendMessageRequest) (MessageResponse, error)
	Broadcast(ctx context.Context, senderID string, req BroadcastMessageRequest) (MessageResponse, error)
	Get(ctx context.Context, actingUserID string, roles []role.Role, id string) (MessageResponse, error)
	List(ctx context.Context, actingUserID string, roles []role.Role, q ListMessagesQuery) ([]MessageResponse, int64, error)
	MarkRead(ctx context.Context, actingUserID string, id string) (MessageResponse, error)
}

type service struct {
	repo        Repository
	profileRepo profile.Repository
	now         func() time.Time
	logger      *zap.Logger
}

func NewService(repo Repository, profileRepo profile.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("message.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("message.service")
	}
	return &service{repo: repo, profileRepo: profileRepo, now: time.Now, logger: l}
}

func (s *service) Send(ctx context.Context, senderID string, req SendMessageRequest) (MessageResponse, error) {
	sender, err := uuid.Parse(senderID)
	if err != nil {
		return MessageResponse{}, messageerrors.ErrForbiddenMessageAccess
	}

	recipient, err := uuid.Parse(req.RecipientID)
	if err != nil {
		return MessageResponse{}, messageerrors.ErrRecipientNotFound
	}
	if recipient == sender {
		return MessageResponse{}, messageerrors.ErrSelfMessage
	}

	if _, err := s.profileRepo.GetByID(ctx, recipient); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return MessageResponse{}, messageerrors.ErrRecipientNotFound
		}
		return MessageResponse{}, err
	}

	m := &Message{
		ID:          uuid.New(),
		SenderID:    sender,
		RecipientID: &recipient,
		Subject:     req.Subject,
		Body:        req.Body,
	}

	if err := s.repo.Create(ctx, m); err != nil {
		return MessageResponse{}, err
	}

	return toResponse(m), nil
}

func (s *service) Broadcast(ctx context.Context, senderID string, req BroadcastMessageRequest) (MessageResponse, error) {
	sender, err := uuid.Parse(senderID)
	if err != nil {
		return MessageResponse{}, messageerrors.ErrForbiddenMessageAccess
	}

	target, err := role.Parse(req.Role)
	if err != nil {
		return MessageResponse{}, err
	}

	label := string(target)
	m := &Message{
		ID:              uuid.New(),
		SenderID:        sender,
		IsBroadcast:     true,
		BroadcastToRole: &label,
		Subject:         req.Subject,
		Body:            req.Body,
	}

	if err := s.repo.Create(ctx, m); err != nil {
		return MessageResponse{}, err
	}

	s.logger.Info("broadcast sent",
		zap.String("message_id", m.ID.String()),
		zap.String("sender_id", senderID),
		zap.String("role", label),
	)

	return toResponse(m), nil
}

func (s *service) Get(ctx context.Context, actingUserID string, roles []role.Role, id string) (MessageResponse, error) {
	m, err := s.getVisible(ctx, actingUserID, roles, id)
	if err != nil {
		return MessageResponse{}, err
	}
	return toResponse(m), nil
}

func (s *service) List(ctx context.Context, actingUserID string, roles []role.Role, q ListMessagesQuery) ([]MessageResponse, int64, error) {
	userID, err := uuid.Parse(actingUserID)
	if err != nil {
		return nil, 0, messageerrors.ErrForbiddenMessageAccess
	}

	var (
		rows  []Message
		total int64
	)
	if q.Box == "sent" {
		rows, total, err = s.repo.ListSent(ctx, userID, q)
	} else {
		rows, total, err = s.repo.ListInbox(ctx, userID, role.Strings(roles), q)
	}
	if err != nil {
		return nil, 0, err
	}

	out := make([]MessageResponse, len(rows))
	for i := range rows {
		out[i] = toResponse(&rows[i])
	}
	return out, total, nil
}

// MarkRead stamps a direct message. Broadcasts have no per-reader
// state on the row, so they cannot be marked.
func (s *service) MarkRead(ctx context.Context, actingUserID string, id string) (MessageResponse, error) {
	messageID, err := uuid.Parse(id)
	if err != nil {
		return MessageResponse{}, messageerrors.ErrMessageNotFound
	}

	m, err := s.repo.GetByID(ctx, messageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return MessageResponse{}, messageerrors.ErrMessageNotFound
		}
		return MessageResponse{}, err
	}

	if m.IsBroadcast {
		return MessageResponse{}, messageerrors.ErrBroadcastNotReadable
	}
	if m.RecipientID == nil || m.RecipientID.String() != actingUserID {
		return MessageResponse{}, messageerrors.ErrForbiddenMessageAccess
	}

	if m.ReadAt == nil {
		now := s.now()
		m.ReadAt = &now
		if err := s.repo.Update(ctx, m); err != nil {
			return MessageResponse{}, err
		}
	}

	return toResponse(m), nil
}

func (s *service) getVisible(ctx context.Context, actingUserID string, roles []role.Role, id string) (*Message, error) {
	messageID, err := uuid.Parse(id)
	if err != nil {
		return nil, messageerrors.ErrMessageNotFound
	}

	m, err := s.repo.GetByID(ctx, messageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, messageerrors.ErrMessageNotFound
		}
		return nil, err
	}

	if m.SenderID.String() == actingUserID {
		return m, nil
	}
	if m.RecipientID != nil && m.RecipientID.String() == actingUserID {
		return m, nil
	}
	if m.IsBroadcast && m.BroadcastToRole != nil {
		for _, r := range roles {
			if string(r) == *m.BroadcastToRole {
				return m, nil
			}
		}
	}

	return nil, messageerrors.ErrForbiddenMessageAccess
}
