package selection

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ArtistCalendar/internal/domain"
	selectionStore "github.com/m04kA/SMC-ArtistCalendar/internal/infra/storage/selection"
	"github.com/m04kA/SMC-ArtistCalendar/internal/service/selection/models"
	"github.com/m04kA/SMC-ArtistCalendar/pkg/logger"
)

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time { return c.now }

type recordedTransition struct {
	from, to string
}

type fakeRecorder struct {
	transitions []recordedTransition
}

func (r *fakeRecorder) RecordSelectionTransition(from, to string) {
	r.transitions = append(r.transitions, recordedTransition{from, to})
}

// fakeOwners пользователь 1 управляет артистами 7 и 8
type fakeOwners struct {
	err error
}

func (f *fakeOwners) IsArtistOwner(_ context.Context, userID, artistID int64) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return userID == 1 && (artistID == 7 || artistID == 8), nil
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newTestService(opts Options) (*Service, *fixedClock, *fakeRecorder) {
	clock := &fixedClock{now: time.Date(2024, 6, 5, 9, 30, 0, 0, time.UTC)}
	recorder := &fakeRecorder{}
	store := selectionStore.NewStore(time.Hour)
	return NewService(store, &fakeOwners{}, recorder, clock, opts, logger.NewNop()), clock, recorder
}

func TestService_Create_LowerBound(t *testing.T) {
	ctx := context.Background()
	past := date(2024, 5, 1)
	future := date(2024, 7, 1)

	tests := []struct {
		name      string
		opts      Options
		requested *time.Time
		want      *time.Time
	}{
		{"no bound when past allowed", Options{}, nil, nil},
		{"explicit bound when past allowed", Options{}, &past, &past},
		{"today by default", Options{DisallowPast: true}, nil, timePtr(date(2024, 6, 5))},
		{"past bound raised to today", Options{DisallowPast: true}, &past, timePtr(date(2024, 6, 5))},
		{"future bound kept", Options{DisallowPast: true}, &future, &future},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newTestService(tt.opts)

			resp, err := svc.Create(ctx, &models.CreateSelectionRequest{OwnerID: 1, ArtistID: 7, LowerBound: tt.requested})
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.LowerBound)
			assert.Equal(t, domain.SelectionEmpty, resp.State)
			assert.NotEmpty(t, resp.ID)
		})
	}
}

func TestService_Create_TodayInLocation(t *testing.T) {
	svc, clock, _ := newTestService(Options{DisallowPast: true, Location: time.FixedZone("UTC+3", 3*60*60)})
	clock.now = time.Date(2024, 6, 5, 22, 0, 0, 0, time.UTC) // уже 6 июня в UTC+3

	resp, err := svc.Create(context.Background(), &models.CreateSelectionRequest{OwnerID: 1, ArtistID: 7})
	require.NoError(t, err)
	assert.Equal(t, timePtr(date(2024, 6, 6)), resp.LowerBound)
}

func TestService_Create_InvalidInput(t *testing.T) {
	svc, _, _ := newTestService(Options{})

	_, err := svc.Create(context.Background(), &models.CreateSelectionRequest{OwnerID: 0, ArtistID: 7})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(context.Background(), &models.CreateSelectionRequest{OwnerID: 1, ArtistID: -1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Create_ForeignArtist(t *testing.T) {
	svc, _, _ := newTestService(Options{})

	_, err := svc.Create(context.Background(), &models.CreateSelectionRequest{OwnerID: 1, ArtistID: 999})
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.Create(context.Background(), &models.CreateSelectionRequest{OwnerID: 2, ArtistID: 7})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestService_Create_OwnershipCheckError(t *testing.T) {
	clock := &fixedClock{now: time.Date(2024, 6, 5, 9, 30, 0, 0, time.UTC)}
	store := selectionStore.NewStore(time.Hour)
	lookupErr := errors.New("db down")
	svc := NewService(store, &fakeOwners{err: lookupErr}, &fakeRecorder{}, clock, Options{}, logger.NewNop())

	_, err := svc.Create(context.Background(), &models.CreateSelectionRequest{OwnerID: 1, ArtistID: 7})
	assert.ErrorIs(t, err, lookupErr)
	assert.Zero(t, store.Len())
}

func TestService_Activate_Flow(t *testing.T) {
	ctx := context.Background()
	svc, _, recorder := newTestService(Options{DisallowPast: true})

	created, err := svc.Create(ctx, &models.CreateSelectionRequest{OwnerID: 1, ArtistID: 7})
	require.NoError(t, err)

	// время внутри дня отбрасывается
	resp, err := svc.Activate(ctx, created.ID, 1, time.Date(2024, 6, 10, 18, 45, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, domain.SelectionStarted, resp.State)
	assert.Equal(t, timePtr(date(2024, 6, 10)), resp.Start)

	// день до сегодняшнего игнорируется
	resp, err = svc.Activate(ctx, created.ID, 1, date(2024, 6, 1))
	require.NoError(t, err)
	assert.Equal(t, domain.SelectionStarted, resp.State)
	assert.Equal(t, timePtr(date(2024, 6, 10)), resp.Start)

	resp, err = svc.Activate(ctx, created.ID, 1, date(2024, 6, 15))
	require.NoError(t, err)
	assert.Equal(t, domain.SelectionCompleted, resp.State)
	assert.Equal(t, timePtr(date(2024, 6, 15)), resp.End)

	assert.Equal(t, []recordedTransition{
		{"empty", "started"},
		{"started", "started"},
		{"started", "completed"},
	}, recorder.transitions)
}

func TestService_AccessDenied(t *testing.T) {
	ctx := context.Background()
	svc, _, recorder := newTestService(Options{})

	created, err := svc.Create(ctx, &models.CreateSelectionRequest{OwnerID: 1, ArtistID: 7})
	require.NoError(t, err)

	_, err = svc.Get(ctx, created.ID, 2)
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.Activate(ctx, created.ID, 2, date(2024, 6, 10))
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Empty(t, recorder.transitions)

	_, err = svc.Set(ctx, created.ID, &models.SetSelectionRequest{UserID: 2})
	assert.ErrorIs(t, err, ErrAccessDenied)

	assert.ErrorIs(t, svc.Delete(ctx, created.ID, 2), ErrAccessDenied)

	resp, err := svc.Get(ctx, created.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.SelectionEmpty, resp.State)
}

func TestService_NotFound(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(Options{})

	_, err := svc.Get(ctx, "missing", 1)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = svc.Activate(ctx, "missing", 1, date(2024, 6, 10))
	assert.ErrorIs(t, err, ErrSessionNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, "missing", 1), ErrSessionNotFound)
}

func TestService_SetAndClear(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(Options{})

	created, err := svc.Create(ctx, &models.CreateSelectionRequest{OwnerID: 1, ArtistID: 7})
	require.NoError(t, err)

	start := date(2024, 6, 10)
	end := date(2024, 6, 12)
	resp, err := svc.Set(ctx, created.ID, &models.SetSelectionRequest{UserID: 1, Start: &start, End: &end})
	require.NoError(t, err)
	assert.Equal(t, domain.SelectionCompleted, resp.State)

	resp, err = svc.Clear(ctx, created.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.SelectionEmpty, resp.State)
	assert.Nil(t, resp.Start)
	assert.Nil(t, resp.End)
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(Options{})

	created, err := svc.Create(ctx, &models.CreateSelectionRequest{OwnerID: 1, ArtistID: 7})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID, 1))
	_, err = svc.Get(ctx, created.ID, 1)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestService_Delete_ForeignUserKeepsSession(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(Options{})

	created, err := svc.Create(ctx, &models.CreateSelectionRequest{OwnerID: 1, ArtistID: 7})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(ctx, created.ID, 2), ErrAccessDenied)
	assert.Equal(t, 1, svc.store.(*selectionStore.Store).Len())

	require.NoError(t, svc.Delete(ctx, created.ID, 1))
	assert.Zero(t, svc.store.(*selectionStore.Store).Len())
}

func TestService_ClearIfUnchanged(t *testing.T) {
	ctx := context.Background()
	applied := domain.RangeSelection{Start: timePtr(date(2024, 6, 10)), End: timePtr(date(2024, 6, 12))}

	tests := []struct {
		name        string
		start, end  time.Time
		wantCleared bool
		wantState   domain.SelectionState
	}{
		{"same range is cleared", date(2024, 6, 10), date(2024, 6, 12), true, domain.SelectionEmpty},
		{"time of day ignored", date(2024, 6, 10).Add(15 * time.Hour), date(2024, 6, 12), true, domain.SelectionEmpty},
		{"changed start kept", date(2024, 6, 20), date(2024, 6, 22), false, domain.SelectionCompleted},
		{"changed end kept", date(2024, 6, 10), date(2024, 6, 14), false, domain.SelectionCompleted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newTestService(Options{})
			created, err := svc.Create(ctx, &models.CreateSelectionRequest{OwnerID: 1, ArtistID: 7})
			require.NoError(t, err)

			_, err = svc.Set(ctx, created.ID, &models.SetSelectionRequest{UserID: 1, Start: &tt.start, End: &tt.end})
			require.NoError(t, err)

			resp, cleared, err := svc.ClearIfUnchanged(ctx, created.ID, 1, applied)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCleared, cleared)
			assert.Equal(t, tt.wantState, resp.State)
			if !tt.wantCleared {
				assert.Equal(t, timePtr(domain.DateOnly(tt.start)), resp.Start)
			}
		})
	}
}

func TestService_ClearIfUnchanged_Errors(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(Options{})

	created, err := svc.Create(ctx, &models.CreateSelectionRequest{OwnerID: 1, ArtistID: 7})
	require.NoError(t, err)

	_, _, err = svc.ClearIfUnchanged(ctx, created.ID, 2, domain.RangeSelection{})
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, _, err = svc.ClearIfUnchanged(ctx, "missing", 1, domain.RangeSelection{})
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestService_ExpiredSession(t *testing.T) {
	ctx := context.Background()
	svc, clock, _ := newTestService(Options{})

	created, err := svc.Create(ctx, &models.CreateSelectionRequest{OwnerID: 1, ArtistID: 7})
	require.NoError(t, err)

	clock.now = clock.now.Add(2 * time.Hour)
	_, err = svc.Activate(ctx, created.ID, 1, date(2024, 6, 10))
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func timePtr(t time.Time) *time.Time {
	return &t
}
