package selection

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ArtistCalendar/internal/domain"
	selectionStore "github.com/m04kA/SMC-ArtistCalendar/internal/infra/storage/selection"
	"github.com/m04kA/SMC-ArtistCalendar/internal/service/selection/models"
)

// Options настройки сервиса выбора
type Options struct {
	Location     *time.Location // часовой пояс для "сегодня"
	DisallowPast bool           // нижняя граница не раньше начала сегодняшнего дня
}

// Service сервис сессий выбора диапазона дат
type Service struct {
	store    SessionStore
	owners   ArtistOwnership
	recorder TransitionRecorder
	clock    TimeProvider
	opts     Options
	logger   Logger
}

// NewService создает новый экземпляр сервиса выбора.
// recorder может быть nil, если метрики выключены.
func NewService(
	store SessionStore,
	owners ArtistOwnership,
	recorder TransitionRecorder,
	clock TimeProvider,
	opts Options,
	logger Logger,
) *Service {
	if recorder == nil {
		recorder = noopRecorder{}
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	return &Service{
		store:    store,
		owners:   owners,
		recorder: recorder,
		clock:    clock,
		opts:     opts,
		logger:   logger,
	}
}

// Create создает пустую сессию выбора для календаря артиста.
// Пользователь должен управлять календарём этого артиста.
func (s *Service) Create(ctx context.Context, req *models.CreateSelectionRequest) (*models.SelectionResponse, error) {
	if req.OwnerID <= 0 {
		return nil, fmt.Errorf("%w: ownerID must be positive", ErrInvalidInput)
	}
	if req.ArtistID <= 0 {
		return nil, fmt.Errorf("%w: artistID must be positive", ErrInvalidInput)
	}

	isOwner, err := s.owners.IsArtistOwner(ctx, req.OwnerID, req.ArtistID)
	if err != nil {
		s.logger.Error("Create: failed to check owner user=%d artist=%d: %v", req.OwnerID, req.ArtistID, err)
		return nil, fmt.Errorf("Create - ownership check: %w", err)
	}
	if !isOwner {
		s.logger.Warn("Create: access denied for user=%d to artist=%d", req.OwnerID, req.ArtistID)
		return nil, ErrAccessDenied
	}

	now := s.clock.Now()
	lowerBound := s.resolveLowerBound(req.LowerBound, now)

	snapshot := s.store.Create(req.OwnerID, req.ArtistID, lowerBound, now)

	s.logger.Info("Create: selection id=%s created for artist=%d by user=%d, lower_bound=%s",
		snapshot.ID, req.ArtistID, req.OwnerID, formatOptional(lowerBound))
	return models.FromSnapshot(snapshot), nil
}

// resolveLowerBound выбирает нижнюю границу: явную, сегодняшнюю или никакой.
// При DisallowPast явная граница не может быть раньше сегодняшнего дня.
func (s *Service) resolveLowerBound(requested *time.Time, now time.Time) *time.Time {
	var bound *time.Time
	if requested != nil {
		d := domain.DateOnly(*requested)
		bound = &d
	}

	if !s.opts.DisallowPast {
		return bound
	}

	today := domain.StartOfDay(now, s.opts.Location)
	if bound == nil || bound.Before(today) {
		return &today
	}
	return bound
}

// Get получает состояние сессии
func (s *Service) Get(ctx context.Context, id string, userID int64) (*models.SelectionResponse, error) {
	snapshot, err := s.store.Get(id, s.clock.Now())
	if err != nil {
		return nil, s.mapStoreError("Get", id, err)
	}

	if snapshot.OwnerID != userID {
		s.logger.Warn("Get: access denied for user=%d to selection id=%s", userID, id)
		return nil, ErrAccessDenied
	}

	return models.FromSnapshot(snapshot), nil
}

// Activate передаёт выбранный день в автомат выбора диапазона
// Дни раньше нижней границы игнорируются без ошибки
func (s *Service) Activate(ctx context.Context, id string, userID int64, date time.Time) (*models.SelectionResponse, error) {
	day := domain.DateOnly(date)
	var from, to domain.SelectionState

	snapshot, err := s.store.Update(id, s.clock.Now(), func(session *selectionStore.Session) error {
		if session.OwnerID != userID {
			return ErrAccessDenied
		}
		from = session.Selector.State()
		session.Selector.Activate(day)
		to = session.Selector.State()
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrAccessDenied) {
			s.logger.Warn("Activate: access denied for user=%d to selection id=%s", userID, id)
			return nil, err
		}
		return nil, s.mapStoreError("Activate", id, err)
	}

	s.recorder.RecordSelectionTransition(string(from), string(to))
	s.logger.Info("Activate: selection id=%s day=%s, %s -> %s",
		id, day.Format(domain.DateFormat), from, to)
	return models.FromSnapshot(snapshot), nil
}

// Set напрямую устанавливает обе границы без валидации
func (s *Service) Set(ctx context.Context, id string, req *models.SetSelectionRequest) (*models.SelectionResponse, error) {
	start := dateOnlyPtr(req.Start)
	end := dateOnlyPtr(req.End)

	snapshot, err := s.store.Update(id, s.clock.Now(), func(session *selectionStore.Session) error {
		if session.OwnerID != req.UserID {
			return ErrAccessDenied
		}
		session.Selector.SetStart(start)
		session.Selector.SetEnd(end)
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrAccessDenied) {
			s.logger.Warn("Set: access denied for user=%d to selection id=%s", req.UserID, id)
			return nil, err
		}
		return nil, s.mapStoreError("Set", id, err)
	}

	s.logger.Info("Set: selection id=%s start=%s end=%s", id, formatOptional(start), formatOptional(end))
	return models.FromSnapshot(snapshot), nil
}

// Clear сбрасывает выбор в пустое состояние
func (s *Service) Clear(ctx context.Context, id string, userID int64) (*models.SelectionResponse, error) {
	return s.Set(ctx, id, &models.SetSelectionRequest{UserID: userID})
}

// ClearIfUnchanged сбрасывает выбор, только если его границы всё ещё равны applied.
// Если выбор успели изменить, он остаётся как есть, cleared = false.
func (s *Service) ClearIfUnchanged(
	ctx context.Context,
	id string,
	userID int64,
	applied domain.RangeSelection,
) (resp *models.SelectionResponse, cleared bool, err error) {
	snapshot, err := s.store.Update(id, s.clock.Now(), func(session *selectionStore.Session) error {
		if session.OwnerID != userID {
			return ErrAccessDenied
		}
		current := session.Selector.Snapshot()
		if !sameDay(current.Start, applied.Start) || !sameDay(current.End, applied.End) {
			return errSelectionChanged
		}
		session.Selector.Clear()
		return nil
	})
	switch {
	case err == nil:
	case errors.Is(err, errSelectionChanged):
		s.logger.Info("ClearIfUnchanged: selection id=%s changed since apply, kept as %s", id, snapshot.Selection.State())
		return models.FromSnapshot(snapshot), false, nil
	case errors.Is(err, ErrAccessDenied):
		s.logger.Warn("ClearIfUnchanged: access denied for user=%d to selection id=%s", userID, id)
		return nil, false, err
	default:
		return nil, false, s.mapStoreError("ClearIfUnchanged", id, err)
	}

	s.logger.Info("ClearIfUnchanged: selection id=%s cleared", id)
	return models.FromSnapshot(snapshot), true, nil
}

// Delete удаляет сессию выбора; проверка владельца и удаление атомарны
func (s *Service) Delete(ctx context.Context, id string, userID int64) error {
	err := s.store.Delete(id, s.clock.Now(), func(session *selectionStore.Session) error {
		if session.OwnerID != userID {
			return ErrAccessDenied
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrAccessDenied) {
			s.logger.Warn("Delete: access denied for user=%d to selection id=%s", userID, id)
			return err
		}
		return s.mapStoreError("Delete", id, err)
	}

	s.logger.Info("Delete: selection id=%s deleted by user=%d", id, userID)
	return nil
}

func (s *Service) mapStoreError(op, id string, err error) error {
	if errors.Is(err, selectionStore.ErrSessionNotFound) {
		s.logger.Warn("%s: selection id=%s not found", op, id)
		return ErrSessionNotFound
	}
	s.logger.Error("%s: store error for selection id=%s: %v", op, id, err)
	return fmt.Errorf("%s - store error: %w", op, err)
}

func dateOnlyPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := domain.DateOnly(*t)
	return &d
}

func sameDay(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return domain.DateOnly(*a).Equal(domain.DateOnly(*b))
}

func formatOptional(t *time.Time) string {
	if s := domain.FormatDate(t); s != nil {
		return *s
	}
	return "none"
}
