package apply_range

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ArtistCalendar/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-ArtistCalendar/internal/infra/storage/availability"
	selectionService "github.com/m04kA/SMC-ArtistCalendar/internal/service/selection"
)

// UseCase use case для применения выбранного диапазона к доступности артиста
type UseCase struct {
	availabilityRepo AvailabilityRepository
	owners           ArtistOwnership
	selectionSvc     SelectionService
	txManager        TransactionManager
	maxRangeDays     int
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	availabilityRepo AvailabilityRepository,
	owners ArtistOwnership,
	selectionSvc SelectionService,
	txManager TransactionManager,
	maxRangeDays int,
	logger Logger,
) *UseCase {
	return &UseCase{
		availabilityRepo: availabilityRepo,
		owners:           owners,
		selectionSvc:     selectionSvc,
		txManager:        txManager,
		maxRangeDays:     maxRangeDays,
		logger:           logger,
	}
}

// Execute применяет завершённый выбор: отмечает все дни диапазона доступными
// или снимает доступность, после чего сбрасывает выбор, если его не успели изменить
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ApplyRange: selection=%s, user=%d, mode=%s", req.SelectionID, req.UserID, req.Mode)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ApplyRange: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем сессию выбора
	selection, err := uc.selectionSvc.Get(ctx, req.SelectionID, req.UserID)
	if err != nil {
		switch {
		case errors.Is(err, selectionService.ErrSessionNotFound):
			uc.logger.Warn("ApplyRange: selection=%s not found", req.SelectionID)
			return nil, ErrSessionNotFound
		case errors.Is(err, selectionService.ErrAccessDenied):
			uc.logger.Warn("ApplyRange: access denied for user=%d to selection=%s", req.UserID, req.SelectionID)
			return nil, ErrAccessDenied
		default:
			uc.logger.Error("ApplyRange: failed to get selection=%s: %v", req.SelectionID, err)
			return nil, fmt.Errorf("%w: failed to get selection: %v", ErrInternal, err)
		}
	}

	// 3. Пользователь должен управлять календарём артиста
	isOwner, err := uc.owners.IsArtistOwner(ctx, req.UserID, selection.ArtistID)
	if err != nil {
		uc.logger.Error("ApplyRange: failed to check owner user=%d artist=%d: %v", req.UserID, selection.ArtistID, err)
		return nil, fmt.Errorf("%w: failed to check artist owner: %v", ErrInternal, err)
	}
	if !isOwner {
		uc.logger.Warn("ApplyRange: access denied for user=%d to artist=%d", req.UserID, selection.ArtistID)
		return nil, ErrAccessDenied
	}

	// 4. Проверяем диапазон
	rng := selection.Range()
	if err := validateRange(rng, uc.maxRangeDays); err != nil {
		uc.logger.Warn("ApplyRange: selection=%s range rejected: %v", req.SelectionID, err)
		return nil, err
	}

	start, end := domain.DateOnly(*rng.Start), domain.DateOnly(*rng.End)
	result := &Response{ArtistID: selection.ArtistID, Mode: req.Mode}

	// 5. Меняем доступность в одной транзакции
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		existing, err := uc.availabilityRepo.ListByArtist(txCtx, domain.AvailabilityFilter{
			ArtistID: selection.ArtistID,
			From:     &start,
			To:       &end,
		})
		if err != nil {
			return fmt.Errorf("%w: failed to list availability: %v", ErrInternal, err)
		}

		switch req.Mode {
		case domain.RangeModeAvailable:
			added, err := uc.addMissingDays(txCtx, selection.ArtistID, start, end, existing)
			if err != nil {
				return err
			}
			result.Added = added

		case domain.RangeModeBlocked:
			dates := make([]time.Time, len(existing))
			for i, slot := range existing {
				dates[i] = slot.Date
			}
			removed, err := uc.availabilityRepo.DeleteByDates(txCtx, selection.ArtistID, dates)
			if err != nil {
				return fmt.Errorf("%w: failed to delete availability: %v", ErrInternal, err)
			}
			result.Removed = int(removed)
		}

		return nil
	})
	if err != nil {
		uc.logger.Error("ApplyRange: transaction failed for selection=%s: %v", req.SelectionID, err)
		if errors.Is(err, ErrInternal) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 6. Сбрасываем выбор, только если он всё ещё равен применённому диапазону.
	// Доступность уже сохранена, поэтому ошибку только логируем
	current, cleared, err := uc.selectionSvc.ClearIfUnchanged(ctx, req.SelectionID, req.UserID, rng)
	switch {
	case err != nil:
		uc.logger.Warn("ApplyRange: failed to clear selection=%s: %v", req.SelectionID, err)
		current = selection
	case !cleared:
		uc.logger.Info("ApplyRange: selection=%s changed during apply, left as is", req.SelectionID)
	}
	result.Selection = current

	uc.logger.Info("ApplyRange: selection=%s applied to artist=%d, period=%s to %s, added=%d, removed=%d",
		req.SelectionID, selection.ArtistID, start.Format(domain.DateFormat), end.Format(domain.DateFormat),
		result.Added, result.Removed)
	return result, nil
}

// addMissingDays создаёт дни диапазона, которых ещё нет среди existing
func (uc *UseCase) addMissingDays(
	ctx context.Context,
	artistID int64,
	start, end time.Time,
	existing []*domain.AvailabilitySlot,
) (int, error) {
	present := make(map[time.Time]struct{}, len(existing))
	for _, slot := range existing {
		present[domain.DateOnly(slot.Date)] = struct{}{}
	}

	added := 0
	for _, day := range domain.EachDay(start, end) {
		if _, ok := present[day]; ok {
			continue
		}

		_, err := uc.availabilityRepo.Create(ctx, &domain.AvailabilitySlot{ArtistID: artistID, Date: day})
		if errors.Is(err, availabilityRepo.ErrSlotAlreadyExists) {
			continue
		}
		if err != nil {
			return 0, fmt.Errorf("%w: failed to create availability for %s: %v",
				ErrInternal, day.Format(domain.DateFormat), err)
		}
		added++
	}

	return added, nil
}
