package message_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/simeongugl4-design/workforce-hub-png/internal/message"
	messageerrors "github.com/simeongugl4-design/workforce-hub-png/internal/message/errors"
	"github.com/simeongugl4-design/workforce-hub-png/internal/profile"
	"github.com/simeongugl4-design/workforce-hub-png/internal/role"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fakeMessageRepo struct {
	rows map[uuid.UUID]*message.Message
}

func newFakeMessageRepo(seed ...*message.Message) *fakeMessageRepo {
	r := &fakeMessageRepo{rows: map[uuid.UUID]*message.Message{}}
	for _, m := range seed {
		cp := *m
		r.rows[m.ID] = &cp
	}
	return r
}

func (r *fakeMessageRepo) WithTx(tx *sql.Tx) message.Repository { return r }

func (r *fakeMessageRepo) Create(_ context.Context, m *message.Message) error {
	cp := *m
	r.rows[m.ID] = &cp
	return nil
}

func (r *fakeMessageRepo) GetByID(_ context.Context, id uuid.UUID) (*message.Message, error) {
	if m, ok := r.rows[id]; ok {
		cp := *m
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeMessageRepo) Update(_ context.Context, m *message.Message) error {
	cp := *m
	r.rows[m.ID] = &cp
	return nil
}

func (r *fakeMessageRepo) ListInbox(_ context.Context, userID uuid.UUID, roleNames []string, _ message.ListMessagesQuery) ([]message.Message, int64, error) {
	var out []message.Message
	for _, m := range r.rows {
		if m.RecipientID != nil && *m.RecipientID == userID {
			out = append(out, *m)
			continue
		}
		if m.IsBroadcast && m.BroadcastToRole != nil {
			for _, name := range roleNames {
				if name == *m.BroadcastToRole {
					out = append(out, *m)
					break
				}
			}
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeMessageRepo) ListSent(_ context.Context, senderID uuid.UUID, _ message.ListMessagesQuery) ([]message.Message, int64, error) {
	var out []message.Message
	for _, m := range r.rows {
		if m.SenderID == senderID {
			out = append(out, *m)
		}
	}
	return out, int64(len(out)), nil
}

type fakeProfileRepo struct {
	byID map[uuid.UUID]*profile.Profile
}

func newFakeProfileRepo(profiles ...*profile.Profile) *fakeProfileRepo {
	r := &fakeProfileRepo{byID: map[uuid.UUID]*profile.Profile{}}
	for _, p := range profiles {
		r.byID[p.ID] = p
	}
	return r
}

func (r *fakeProfileRepo) WithTx(tx *sql.Tx) profile.Repository { return r }

func (r *fakeProfileRepo) Create(_ context.Context, p *profile.Profile) error {
	r.byID[p.ID] = p
	return nil
}

func (r *fakeProfileRepo) GetByID(_ context.Context, id uuid.UUID) (*profile.Profile, error) {
	if p, ok := r.byID[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeProfileRepo) Update(_ context.Context, p *profile.Profile) error { return nil }

func (r *fakeProfileRepo) List(_ context.Context, _ profile.ListProfilesQuery) ([]profile.Profile, int64, error) {
	return nil, 0, nil
}

func (r *fakeProfileRepo) ListBySupervisor(_ context.Context, _ uuid.UUID) ([]profile.Profile, error) {
	return nil, nil
}

func approvedProfile() *profile.Profile {
	return &profile.Profile{
		ID:            uuid.New(),
		FullName:      "Boio Kerenga",
		Email:         "boio@example.com",
		AccountStatus: profile.AccountStatusApproved,
		IsActive:      true,
	}
}

func TestSend_DirectMessage(t *testing.T) {
	recipient := approvedProfile()
	svc := message.NewService(newFakeMessageRepo(), newFakeProfileRepo(recipient), zap.NewNop())

	resp, err := svc.Send(context.Background(), uuid.NewString(), message.SendMessageRequest{
		RecipientID: recipient.ID.String(),
		Subject:     "Roster change",
		Body:        "You are on the early shift next fortnight.",
	})

	require.NoError(t, err)
	require.NotNil(t, resp.RecipientID)
	assert.Equal(t, recipient.ID.String(), *resp.RecipientID)
	assert.False(t, resp.IsBroadcast)
	assert.Nil(t, resp.ReadAt)
}

func TestSend_UnknownRecipient(t *testing.T) {
	svc := message.NewService(newFakeMessageRepo(), newFakeProfileRepo(), zap.NewNop())

	_, err := svc.Send(context.Background(), uuid.NewString(), message.SendMessageRequest{
		RecipientID: uuid.NewString(),
		Subject:     "Hello",
		Body:        "Anyone there?",
	})

	assert.ErrorIs(t, err, messageerrors.ErrRecipientNotFound)
}

func TestSend_ToSelfRejected(t *testing.T) {
	sender := approvedProfile()
	svc := message.NewService(newFakeMessageRepo(), newFakeProfileRepo(sender), zap.NewNop())

	_, err := svc.Send(context.Background(), sender.ID.String(), message.SendMessageRequest{
		RecipientID: sender.ID.String(),
		Subject:     "Note to self",
		Body:        "Buy fuel for the generator.",
	})

	assert.ErrorIs(t, err, messageerrors.ErrSelfMessage)
}

func TestBroadcast_ToRole(t *testing.T) {
	svc := message.NewService(newFakeMessageRepo(), newFakeProfileRepo(), zap.NewNop())

	resp, err := svc.Broadcast(context.Background(), uuid.NewString(), message.BroadcastMessageRequest{
		Role:    "supervisor",
		Subject: "Timesheets due",
		Body:    "Review all pending timesheets before Friday payroll.",
	})

	require.NoError(t, err)
	assert.True(t, resp.IsBroadcast)
	require.NotNil(t, resp.BroadcastToRole)
	assert.Equal(t, "supervisor", *resp.BroadcastToRole)
	assert.Nil(t, resp.RecipientID)
}

func TestBroadcast_UnknownRole(t *testing.T) {
	svc := message.NewService(newFakeMessageRepo(), newFakeProfileRepo(), zap.NewNop())

	_, err := svc.Broadcast(context.Background(), uuid.NewString(), message.BroadcastMessageRequest{
		Role:    "foreman",
		Subject: "Oops",
		Body:    "This role does not exist.",
	})

	assert.ErrorIs(t, err, role.ErrUnknownRole)
}

func TestList_InboxIncludesRoleBroadcasts(t *testing.T) {
	userID := uuid.New()
	supervisorLabel := "supervisor"
	direct := &message.Message{ID: uuid.New(), SenderID: uuid.New(), RecipientID: &userID, Subject: "Direct", Body: "For you."}
	broadcast := &message.Message{ID: uuid.New(), SenderID: uuid.New(), IsBroadcast: true, BroadcastToRole: &supervisorLabel, Subject: "All supervisors", Body: "Heads up."}
	other := &message.Message{ID: uuid.New(), SenderID: uuid.New(), RecipientID: ptrUUID(uuid.New()), Subject: "Not yours", Body: "Private."}

	svc := message.NewService(newFakeMessageRepo(direct, broadcast, other), newFakeProfileRepo(), zap.NewNop())

	rows, total, err := svc.List(context.Background(), userID.String(), []role.Role{role.Supervisor, role.Worker}, message.ListMessagesQuery{Box: "inbox", Page: 1, PageSize: 20})

	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, rows, 2)
}

func TestMarkRead_StampsOnce(t *testing.T) {
	userID := uuid.New()
	m := &message.Message{ID: uuid.New(), SenderID: uuid.New(), RecipientID: &userID, Subject: "Direct", Body: "For you."}
	svc := message.NewService(newFakeMessageRepo(m), newFakeProfileRepo(), zap.NewNop())

	resp, err := svc.MarkRead(context.Background(), userID.String(), m.ID.String())
	require.NoError(t, err)
	require.NotNil(t, resp.ReadAt)
	firstRead := *resp.ReadAt

	resp, err = svc.MarkRead(context.Background(), userID.String(), m.ID.String())
	require.NoError(t, err)
	require.NotNil(t, resp.ReadAt)
	assert.Equal(t, firstRead, *resp.ReadAt)
}

func TestMarkRead_OnlyRecipient(t *testing.T) {
	recipient := uuid.New()
	m := &message.Message{ID: uuid.New(), SenderID: uuid.New(), RecipientID: &recipient, Subject: "Direct", Body: "For you."}
	svc := message.NewService(newFakeMessageRepo(m), newFakeProfileRepo(), zap.NewNop())

	_, err := svc.MarkRead(context.Background(), uuid.NewString(), m.ID.String())

	assert.ErrorIs(t, err, messageerrors.ErrForbiddenMessageAccess)
}

func TestMarkRead_BroadcastRefused(t *testing.T) {
	label := "worker"
	m := &message.Message{ID: uuid.New(), SenderID: uuid.New(), IsBroadcast: true, BroadcastToRole: &label, Subject: "All hands", Body: "Meeting at noon."}
	svc := message.NewService(newFakeMessageRepo(m), newFakeProfileRepo(), zap.NewNop())

	_, err := svc.MarkRead(context.Background(), uuid.NewString(), m.ID.String())

	assert.ErrorIs(t, err, messageerrors.ErrBroadcastNotReadable)
}

func TestGet_BroadcastVisibleToRoleHolders(t *testing.T) {
	label := "accountant"
	m := &message.Message{ID: uuid.New(), SenderID: uuid.New(), IsBroadcast: true, BroadcastToRole: &label, Subject: "Ledger close", Body: "Close the books Friday."}
	svc := message.NewService(newFakeMessageRepo(m), newFakeProfileRepo(), zap.NewNop())

	_, err := svc.Get(context.Background(), uuid.NewString(), []role.Role{role.Accountant}, m.ID.String())
	require.NoError(t, err)

	_, err = svc.Get(context.Background(), uuid.NewString(), []role.Role{role.Worker}, m.ID.String())
	assert.ErrorIs(t, err, messageerrors.ErrForbiddenMessageAccess)
}

func ptrUUID(id uuid.UUID) *uuid.UUID { return &id }
