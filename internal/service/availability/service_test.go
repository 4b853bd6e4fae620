package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ArtistCalendar/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-ArtistCalendar/internal/infra/storage/availability"
	"github.com/m04kA/SMC-ArtistCalendar/internal/service/availability/models"
	"github.com/m04kA/SMC-ArtistCalendar/pkg/logger"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type fakeRepo struct {
	slots      []*domain.AvailabilitySlot
	lastFilter domain.AvailabilityFilter
	nextID     int64
	err        error
}

func (r *fakeRepo) ListByArtist(_ context.Context, filter domain.AvailabilityFilter) ([]*domain.AvailabilitySlot, error) {
	r.lastFilter = filter
	if r.err != nil {
		return nil, r.err
	}
	return r.slots, nil
}

func (r *fakeRepo) Create(_ context.Context, slot *domain.AvailabilitySlot) (*domain.AvailabilitySlot, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, s := range r.slots {
		if s.ArtistID == slot.ArtistID && s.Date.Equal(slot.Date) {
			return nil, availabilityRepo.ErrSlotAlreadyExists
		}
	}
	r.nextID++
	slot.ID = r.nextID
	r.slots = append(r.slots, slot)
	return slot, nil
}

func (r *fakeRepo) Delete(_ context.Context, artistID, id int64) error {
	if r.err != nil {
		return r.err
	}
	for i, s := range r.slots {
		if s.ID == id && s.ArtistID == artistID {
			r.slots = append(r.slots[:i], r.slots[i+1:]...)
			return nil
		}
	}
	return availabilityRepo.ErrSlotNotFound
}

// fakeOwners: пользователь 1 управляет артистами 7 и 8
type fakeOwners struct {
	err error
}

func (o fakeOwners) IsArtistOwner(_ context.Context, userID, artistID int64) (bool, error) {
	if o.err != nil {
		return false, o.err
	}
	return userID == 1 && (artistID == 7 || artistID == 8), nil
}

func newService(repo *fakeRepo) *Service {
	clock := fixedClock{now: time.Date(2024, 6, 5, 10, 0, 0, 0, time.UTC)}
	return NewService(repo, fakeOwners{}, clock, time.UTC, true, logger.NewNop())
}

func TestService_Add(t *testing.T) {
	repo := &fakeRepo{}
	svc := newService(repo)
	ctx := context.Background()

	slot, err := svc.Add(ctx, 1, 7, time.Date(2024, 6, 10, 15, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, int64(1), slot.ID)
	assert.Equal(t, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), slot.Date)

	_, err = svc.Add(ctx, 1, 7, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, ErrSlotAlreadyExists)

	// сегодня разрешено, вчера нет
	_, err = svc.Add(ctx, 1, 7, time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC))
	assert.NoError(t, err)
	_, err = svc.Add(ctx, 1, 7, time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, ErrDateInPast)

	_, err = svc.Add(ctx, 1, 0, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Add_PastAllowed(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, fakeOwners{}, fixedClock{now: time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC)}, nil, false, logger.NewNop())

	_, err := svc.Add(context.Background(), 1, 7, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC))
	assert.NoError(t, err)
}

func TestService_List(t *testing.T) {
	repo := &fakeRepo{slots: []*domain.AvailabilitySlot{
		{ID: 1, ArtistID: 7, Date: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)},
	}}
	svc := newService(repo)

	from := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	slots, err := svc.List(context.Background(), &models.ListRequest{ArtistID: 7, From: &from})
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, int64(1), slots[0].ID)

	require.NotNil(t, repo.lastFilter.From)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), *repo.lastFilter.From)
	assert.Nil(t, repo.lastFilter.To)
}

func TestService_List_InvalidPeriod(t *testing.T) {
	svc := newService(&fakeRepo{})
	from := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	_, err := svc.List(context.Background(), &models.ListRequest{ArtistID: 7, From: &from, To: &to})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_List_RepositoryError(t *testing.T) {
	svc := newService(&fakeRepo{err: errors.New("db down")})

	_, err := svc.List(context.Background(), &models.ListRequest{ArtistID: 7})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestService_Remove(t *testing.T) {
	repo := &fakeRepo{slots: []*domain.AvailabilitySlot{
		{ID: 3, ArtistID: 7, Date: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)},
	}}
	svc := newService(repo)
	ctx := context.Background()

	assert.ErrorIs(t, svc.Remove(ctx, 1, 8, 3), ErrSlotNotFound)
	require.NoError(t, svc.Remove(ctx, 1, 7, 3))
	assert.Empty(t, repo.slots)
	assert.ErrorIs(t, svc.Remove(ctx, 1, 7, 3), ErrSlotNotFound)
	assert.ErrorIs(t, svc.Remove(ctx, 1, 7, 0), ErrInvalidInput)
}

func TestService_ForeignArtist(t *testing.T) {
	repo := &fakeRepo{slots: []*domain.AvailabilitySlot{
		{ID: 3, ArtistID: 999, Date: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)},
	}}
	svc := newService(repo)
	ctx := context.Background()

	_, err := svc.Add(ctx, 1, 999, time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.Add(ctx, 2, 7, time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, ErrAccessDenied)

	assert.ErrorIs(t, svc.Remove(ctx, 1, 999, 3), ErrAccessDenied)
	assert.Len(t, repo.slots, 1)
}

func TestService_OwnershipCheckError(t *testing.T) {
	svc := NewService(&fakeRepo{}, fakeOwners{err: errors.New("db down")},
		fixedClock{now: time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC)}, time.UTC, true, logger.NewNop())

	_, err := svc.Add(context.Background(), 1, 7, time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, ErrInternal)
}
