package worksummary_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/simeongugl4-design/workforce-hub-png/internal/profile"
	"github.com/simeongugl4-design/workforce-hub-png/internal/role"
	"github.com/simeongugl4-design/workforce-hub-png/internal/worksummary"
	worksummaryerrors "github.com/simeongugl4-design/workforce-hub-png/internal/worksummary/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fakeSummaryRepo struct {
	rows             map[uuid.UUID]*worksummary.WorkSummary
	lastSupervisorID string
}

func newFakeSummaryRepo(seed ...*worksummary.WorkSummary) *fakeSummaryRepo {
	r := &fakeSummaryRepo{rows: map[uuid.UUID]*worksummary.WorkSummary{}}
	for _, ws := range seed {
		cp := *ws
		r.rows[ws.ID] = &cp
	}
	return r
}

func (r *fakeSummaryRepo) WithTx(tx *sql.Tx) worksummary.Repository { return r }

func (r *fakeSummaryRepo) Create(_ context.Context, ws *worksummary.WorkSummary) error {
	cp := *ws
	r.rows[ws.ID] = &cp
	return nil
}

func (r *fakeSummaryRepo) GetByID(_ context.Context, id uuid.UUID) (*worksummary.WorkSummary, error) {
	if ws, ok := r.rows[id]; ok {
		cp := *ws
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeSummaryRepo) GetByWorkerAndPeriod(_ context.Context, workerID uuid.UUID, periodStart time.Time) (*worksummary.WorkSummary, error) {
	for _, ws := range r.rows {
		if ws.WorkerID == workerID && ws.PeriodStart.Equal(periodStart) {
			cp := *ws
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeSummaryRepo) Update(_ context.Context, ws *worksummary.WorkSummary) error {
	cp := *ws
	r.rows[ws.ID] = &cp
	return nil
}

func (r *fakeSummaryRepo) List(_ context.Context, q worksummary.ListSummariesQuery, supervisorID string) ([]worksummary.WorkSummary, int64, error) {
	r.lastSupervisorID = supervisorID
	var out []worksummary.WorkSummary
	for _, ws := range r.rows {
		if q.WorkerID != "" && ws.WorkerID.String() != q.WorkerID {
			continue
		}
		out = append(out, *ws)
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

func seededWorker(supID uuid.UUID) *profile.Profile {
	return &profile.Profile{
		ID:            uuid.New(),
		FullName:      "Kila Vagi",
		Email:         "kila@example.com",
		SupervisorID:  &supID,
		AccountStatus: profile.AccountStatusApproved,
		IsActive:      true,
	}
}

func TestSubmit_DerivesFortnightFromPeriodDate(t *testing.T) {
	workerID := uuid.New()
	svc := worksummary.NewService(newFakeSummaryRepo(), newFakeProfileRepo(), zap.NewNop())

	tasks := "Fencing on the northern block."
	resp, err := svc.Submit(context.Background(), workerID.String(), worksummary.SubmitSummaryRequest{
		PeriodDate:     "2025-04-10",
		Summary:        "Cleared the northern block and repaired two fence lines.",
		TasksCompleted: &tasks,
	})

	require.NoError(t, err)
	assert.Equal(t, "2025-04-01", resp.PeriodStart)
	assert.Equal(t, "2025-04-15", resp.PeriodEnd)
	assert.Equal(t, worksummary.StatusSubmitted, resp.Status)
	require.NotNil(t, resp.TasksCompleted)
	assert.Equal(t, tasks, *resp.TasksCompleted)
}

func TestSubmit_SecondHalfOfMonth(t *testing.T) {
	svc := worksummary.NewService(newFakeSummaryRepo(), newFakeProfileRepo(), zap.NewNop())

	resp, err := svc.Submit(context.Background(), uuid.NewString(), worksummary.SubmitSummaryRequest{
		PeriodDate: "2024-02-20",
		Summary:    "Sorted and bagged produce for the Lae shipment.",
	})

	require.NoError(t, err)
	assert.Equal(t, "2024-02-16", resp.PeriodStart)
	assert.Equal(t, "2024-02-29", resp.PeriodEnd)
}

func TestSubmit_AmendsUntilReviewed(t *testing.T) {
	workerID := uuid.New()
	svc := worksummary.NewService(newFakeSummaryRepo(), newFakeProfileRepo(), zap.NewNop())

	first, err := svc.Submit(context.Background(), workerID.String(), worksummary.SubmitSummaryRequest{
		PeriodDate: "2025-04-10",
		Summary:    "Draft summary, will add the fencing work later.",
	})
	require.NoError(t, err)

	second, err := svc.Submit(context.Background(), workerID.String(), worksummary.SubmitSummaryRequest{
		PeriodDate: "2025-04-03",
		Summary:    "Cleared the northern block and repaired two fence lines.",
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Cleared the northern block and repaired two fence lines.", second.Summary)
}

func TestSubmit_RejectedAfterReview(t *testing.T) {
	workerID := uuid.New()
	reviewed := &worksummary.WorkSummary{
		ID:          uuid.New(),
		WorkerID:    workerID,
		PeriodStart: time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:   time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC),
		Summary:     "Original summary.",
		Status:      worksummary.StatusReviewed,
	}
	svc := worksummary.NewService(newFakeSummaryRepo(reviewed), newFakeProfileRepo(), zap.NewNop())

	_, err := svc.Submit(context.Background(), workerID.String(), worksummary.SubmitSummaryRequest{
		PeriodDate: "2025-04-10",
		Summary:    "Trying to rewrite history after review.",
	})

	assert.ErrorIs(t, err, worksummaryerrors.ErrSummaryAlreadyReviewed)
}

func TestSubmit_RejectsMalformedPeriodDate(t *testing.T) {
	svc := worksummary.NewService(newFakeSummaryRepo(), newFakeProfileRepo(), zap.NewNop())

	_, err := svc.Submit(context.Background(), uuid.NewString(), worksummary.SubmitSummaryRequest{
		PeriodDate: "10/04/2025",
		Summary:    "Date format from the old paper forms.",
	})

	assert.ErrorIs(t, err, worksummaryerrors.ErrInvalidPeriodDate)
}

func TestReview_SupervisorOfWorkerSucceeds(t *testing.T) {
	supID := uuid.New()
	worker := seededWorker(supID)
	ws := &worksummary.WorkSummary{
		ID:          uuid.New(),
		WorkerID:    worker.ID,
		PeriodStart: time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:   time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC),
		Summary:     "Cleared the northern block.",
		Status:      worksummary.StatusSubmitted,
	}
	svc := worksummary.NewService(newFakeSummaryRepo(ws), newFakeProfileRepo(worker), zap.NewNop())

	note := "Confirmed against the roster."
	resp, err := svc.Review(context.Background(), supID.String(), role.Supervisor, ws.ID.String(), worksummary.ReviewSummaryRequest{Note: &note})

	require.NoError(t, err)
	assert.Equal(t, worksummary.StatusReviewed, resp.Status)
	require.NotNil(t, resp.ReviewedBy)
	assert.Equal(t, supID.String(), *resp.ReviewedBy)
	assert.NotNil(t, resp.ReviewedAt)
}

func TestReview_ForeignSupervisorBlocked(t *testing.T) {
	supID := uuid.New()
	worker := seededWorker(supID)
	ws := &worksummary.WorkSummary{
		ID:          uuid.New(),
		WorkerID:    worker.ID,
		PeriodStart: time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:   time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC),
		Summary:     "Cleared the northern block.",
		Status:      worksummary.StatusSubmitted,
	}
	svc := worksummary.NewService(newFakeSummaryRepo(ws), newFakeProfileRepo(worker), zap.NewNop())

	_, err := svc.Review(context.Background(), uuid.NewString(), role.Supervisor, ws.ID.String(), worksummary.ReviewSummaryRequest{})

	assert.ErrorIs(t, err, worksummaryerrors.ErrNotYourWorkerSummary)
}

func TestReview_OnlyOnce(t *testing.T) {
	supID := uuid.New()
	worker := seededWorker(supID)
	ws := &worksummary.WorkSummary{
		ID:          uuid.New(),
		WorkerID:    worker.ID,
		PeriodStart: time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:   time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC),
		Summary:     "Cleared the northern block.",
		Status:      worksummary.StatusSubmitted,
	}
	svc := worksummary.NewService(newFakeSummaryRepo(ws), newFakeProfileRepo(worker), zap.NewNop())

	_, err := svc.Review(context.Background(), supID.String(), role.Supervisor, ws.ID.String(), worksummary.ReviewSummaryRequest{})
	require.NoError(t, err)

	_, err = svc.Review(context.Background(), supID.String(), role.Supervisor, ws.ID.String(), worksummary.ReviewSummaryRequest{})
	assert.ErrorIs(t, err, worksummaryerrors.ErrSummaryAlreadyReviewed)
}

func TestReview_WorkerCannotReview(t *testing.T) {
	supID := uuid.New()
	worker := seededWorker(supID)
	ws := &worksummary.WorkSummary{
		ID:       uuid.New(),
		WorkerID: worker.ID,
		Summary:  "Cleared the northern block.",
		Status:   worksummary.StatusSubmitted,
	}
	svc := worksummary.NewService(newFakeSummaryRepo(ws), newFakeProfileRepo(worker), zap.NewNop())

	_, err := svc.Review(context.Background(), worker.ID.String(), role.Worker, ws.ID.String(), worksummary.ReviewSummaryRequest{})

	assert.ErrorIs(t, err, worksummaryerrors.ErrForbiddenSummaryAccess)
}

func TestGet_WorkerOwnOnly(t *testing.T) {
	supID := uuid.New()
	owner := seededWorker(supID)
	other := seededWorker(supID)
	ws := &worksummary.WorkSummary{
		ID:          uuid.New(),
		WorkerID:    owner.ID,
		PeriodStart: time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:   time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC),
		Summary:     "Cleared the northern block.",
		Status:      worksummary.StatusSubmitted,
	}
	svc := worksummary.NewService(newFakeSummaryRepo(ws), newFakeProfileRepo(owner, other), zap.NewNop())

	_, err := svc.Get(context.Background(), owner.ID.String(), role.Worker, ws.ID.String())
	require.NoError(t, err)

	_, err = svc.Get(context.Background(), other.ID.String(), role.Worker, ws.ID.String())
	assert.ErrorIs(t, err, worksummaryerrors.ErrForbiddenSummaryAccess)
}

func TestList_ScopesByRole(t *testing.T) {
	supID := uuid.New()
	worker := seededWorker(supID)
	mine := &worksummary.WorkSummary{ID: uuid.New(), WorkerID: worker.ID, Status: worksummary.StatusSubmitted}
	theirs := &worksummary.WorkSummary{ID: uuid.New(), WorkerID: uuid.New(), Status: worksummary.StatusSubmitted}
	repo := newFakeSummaryRepo(mine, theirs)
	svc := worksummary.NewService(repo, newFakeProfileRepo(worker), zap.NewNop())

	rows, total, err := svc.List(context.Background(), worker.ID.String(), role.Worker, worksummary.ListSummariesQuery{Page: 1, PageSize: 20})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, rows, 1)
	assert.Equal(t, worker.ID.String(), rows[0].WorkerID)

	_, _, err = svc.List(context.Background(), supID.String(), role.Supervisor, worksummary.ListSummariesQuery{Page: 1, PageSize: 20})
	require.NoError(t, err)
	assert.Equal(t, supID.String(), repo.lastSupervisorID)

	_, total, err = svc.List(context.Background(), uuid.NewString(), role.Manager, worksummary.ListSummariesQuery{Page: 1, PageSize: 20})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Empty(t, repo.lastSupervisorID)
}
