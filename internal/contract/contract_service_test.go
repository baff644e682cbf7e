package contract_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/simeongugl4-design/workforce-hub-png/internal/contract"
	contracterrors "github.com/simeongugl4-design/workforce-hub-png/internal/contract/errors"
	"github.com/simeongugl4-design/workforce-hub-png/internal/role"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fakeContractRepo struct {
	rows map[uuid.UUID]*contract.Contract
}

func newFakeContractRepo(seed ...*contract.Contract) *fakeContractRepo {
	r := &fakeContractRepo{rows: map[uuid.UUID]*contract.Contract{}}
	for _, c := range seed {
		cp := *c
		r.rows[c.ID] = &cp
	}
	return r
}

func (r *fakeContractRepo) WithTx(tx *sql.Tx) contract.Repository { return r }

func (r *fakeContractRepo) Create(_ context.Context, c *contract.Contract) error {
	cp := *c
	r.rows[c.ID] = &cp
	return nil
}

func (r *fakeContractRepo) GetByID(_ context.Context, id uuid.UUID) (*contract.Contract, error) {
	if c, ok := r.rows[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeContractRepo) Update(_ context.Context, c *contract.Contract) error {
	cp := *c
	r.rows[c.ID] = &cp
	return nil
}

func (r *fakeContractRepo) ListByWorker(_ context.Context, workerID uuid.UUID) ([]contract.Contract, error) {
	var out []contract.Contract
	for _, c := range r.rows {
		if c.WorkerID == workerID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeContractRepo) GetActiveByWorker(_ context.Context, workerID uuid.UUID, onDate time.Time) (*contract.Contract, error) {
	for _, c := range r.rows {
		if c.WorkerID != workerID || !c.IsActive {
			continue
		}
		if c.StartDate.After(onDate) {
			continue
		}
		if c.EndDate != nil && c.EndDate.Before(onDate) {
			continue
		}
		cp := *c
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func TestCreate_StartsInactive(t *testing.T) {
	svc := contract.NewService(newFakeContractRepo(), zap.NewNop())

	resp, err := svc.Create(context.Background(), uuid.NewString(), contract.CreateContractRequest{
		WorkerID:   uuid.NewString(),
		Title:      "Seasonal harvest crew",
		HourlyRate: decimal.RequireFromString("18.00"),
		StartDate:  "2025-04-01",
	})

	require.NoError(t, err)
	assert.False(t, resp.IsActive)
	assert.Nil(t, resp.ApprovedBy)
}

func TestCreate_RejectsNegativeRate(t *testing.T) {
	svc := contract.NewService(newFakeContractRepo(), zap.NewNop())

	_, err := svc.Create(context.Background(), uuid.NewString(), contract.CreateContractRequest{
		WorkerID:   uuid.NewString(),
		Title:      "Bad rate",
		HourlyRate: decimal.RequireFromString("-1"),
		StartDate:  "2025-04-01",
	})

	assert.ErrorIs(t, err, contracterrors.ErrInvalidContractRate)
}

func TestCreate_RejectsEndBeforeStart(t *testing.T) {
	svc := contract.NewService(newFakeContractRepo(), zap.NewNop())

	end := "2025-03-01"
	_, err := svc.Create(context.Background(), uuid.NewString(), contract.CreateContractRequest{
		WorkerID:   uuid.NewString(),
		Title:      "Backwards dates",
		HourlyRate: decimal.RequireFromString("18.00"),
		StartDate:  "2025-04-01",
		EndDate:    &end,
	})

	assert.ErrorIs(t, err, contracterrors.ErrInvalidContractDates)
}

func TestApprove_ActivatesOnce(t *testing.T) {
	repo := newFakeContractRepo()
	svc := contract.NewService(repo, zap.NewNop())

	created, err := svc.Create(context.Background(), uuid.NewString(), contract.CreateContractRequest{
		WorkerID:   uuid.NewString(),
		Title:      "Harvest crew",
		HourlyRate: decimal.RequireFromString("18.00"),
		StartDate:  "2025-04-01",
	})
	require.NoError(t, err)

	approver := uuid.NewString()
	approved, err := svc.Approve(context.Background(), approver, created.ID)
	require.NoError(t, err)
	assert.True(t, approved.IsActive)
	require.NotNil(t, approved.ApprovedBy)
	assert.Equal(t, approver, *approved.ApprovedBy)

	_, err = svc.Approve(context.Background(), uuid.NewString(), created.ID)
	assert.ErrorIs(t, err, contracterrors.ErrContractAlreadyApproved)
}

func TestActiveHourlyRate(t *testing.T) {
	workerID := uuid.New()
	active := &contract.Contract{
		ID:         uuid.New(),
		WorkerID:   workerID,
		Title:      "Harvest crew",
		HourlyRate: decimal.RequireFromString("22.50"),
		StartDate:  time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		IsActive:   true,
	}
	svc := contract.NewService(newFakeContractRepo(active), zap.NewNop())

	rate, ok, err := svc.ActiveHourlyRate(context.Background(), workerID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, rate.Equal(decimal.RequireFromString("22.50")))

	_, ok, err = svc.ActiveHourlyRate(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.False(t, ok, "no contract means fall back to the profile rate")
}

func TestGet_WorkerScopedToOwnContracts(t *testing.T) {
	workerID := uuid.New()
	c := &contract.Contract{
		ID:         uuid.New(),
		WorkerID:   workerID,
		Title:      "Harvest crew",
		HourlyRate: decimal.RequireFromString("18.00"),
		StartDate:  time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		CreatedBy:  uuid.New(),
	}
	svc := contract.NewService(newFakeContractRepo(c), zap.NewNop())

	_, err := svc.Get(context.Background(), workerID.String(), role.Worker, c.ID.String())
	assert.NoError(t, err)

	_, err = svc.Get(context.Background(), uuid.NewString(), role.Worker, c.ID.String())
	assert.ErrorIs(t, err, contracterrors.ErrForbiddenContractAccess)
}
