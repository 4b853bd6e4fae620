package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ArtistCalendar/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-ArtistCalendar/internal/infra/storage/availability"
	"github.com/m04kA/SMC-ArtistCalendar/internal/service/availability/models"
)

// Service сервис для работы с доступностью артистов
type Service struct {
	repo         AvailabilityRepository
	owners       ArtistOwnership
	clock        TimeProvider
	location     *time.Location
	disallowPast bool
	logger       Logger
}

// NewService создает новый экземпляр сервиса доступности
func NewService(
	repo AvailabilityRepository,
	owners ArtistOwnership,
	clock TimeProvider,
	location *time.Location,
	disallowPast bool,
	logger Logger,
) *Service {
	if location == nil {
		location = time.UTC
	}
	return &Service{
		repo:         repo,
		owners:       owners,
		clock:        clock,
		location:     location,
		disallowPast: disallowPast,
		logger:       logger,
	}
}

// List получает дни доступности артиста за период
func (s *Service) List(ctx context.Context, req *models.ListRequest) ([]*models.SlotResponse, error) {
	if req.ArtistID <= 0 {
		return nil, fmt.Errorf("%w: artistID must be positive", ErrInvalidInput)
	}

	filter := req.ToDomainFilter()
	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		return nil, fmt.Errorf("%w: 'to' is before 'from'", ErrInvalidInput)
	}

	slots, err := s.repo.ListByArtist(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error for artist=%d: %v", req.ArtistID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d slots for artist=%d", len(slots), req.ArtistID)
	return models.FromDomainSlots(slots), nil
}

// Add отмечает день доступным; пользователь должен управлять календарём артиста
func (s *Service) Add(ctx context.Context, userID, artistID int64, date time.Time) (*models.SlotResponse, error) {
	if artistID <= 0 {
		return nil, fmt.Errorf("%w: artistID must be positive", ErrInvalidInput)
	}

	if err := s.checkOwner(ctx, "Add", userID, artistID); err != nil {
		return nil, err
	}

	day := domain.DateOnly(date)
	if s.disallowPast && day.Before(domain.StartOfDay(s.clock.Now(), s.location)) {
		s.logger.Warn("Add: date=%s is in the past for artist=%d", day.Format(domain.DateFormat), artistID)
		return nil, ErrDateInPast
	}

	slot, err := s.repo.Create(ctx, &domain.AvailabilitySlot{ArtistID: artistID, Date: day})
	if err != nil {
		if errors.Is(err, availabilityRepo.ErrSlotAlreadyExists) {
			s.logger.Warn("Add: date=%s already available for artist=%d", day.Format(domain.DateFormat), artistID)
			return nil, ErrSlotAlreadyExists
		}
		s.logger.Error("Add: repository error for artist=%d: %v", artistID, err)
		return nil, fmt.Errorf("%w: Add - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Add: slot id=%d date=%s created for artist=%d", slot.ID, day.Format(domain.DateFormat), artistID)
	return models.FromDomainSlot(slot), nil
}

// Remove удаляет день доступности; пользователь должен управлять календарём артиста
func (s *Service) Remove(ctx context.Context, userID, artistID, slotID int64) error {
	if artistID <= 0 || slotID <= 0 {
		return fmt.Errorf("%w: artistID and slotID must be positive", ErrInvalidInput)
	}

	if err := s.checkOwner(ctx, "Remove", userID, artistID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, artistID, slotID); err != nil {
		if errors.Is(err, availabilityRepo.ErrSlotNotFound) {
			s.logger.Warn("Remove: slot id=%d not found for artist=%d", slotID, artistID)
			return ErrSlotNotFound
		}
		s.logger.Error("Remove: repository error for slot id=%d: %v", slotID, err)
		return fmt.Errorf("%w: Remove - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Remove: slot id=%d removed for artist=%d", slotID, artistID)
	return nil
}

func (s *Service) checkOwner(ctx context.Context, op string, userID, artistID int64) error {
	isOwner, err := s.owners.IsArtistOwner(ctx, userID, artistID)
	if err != nil {
		s.logger.Error("%s: failed to check owner user=%d artist=%d: %v", op, userID, artistID, err)
		return fmt.Errorf("%w: %s - ownership check: %v", ErrInternal, op, err)
	}
	if !isOwner {
		s.logger.Warn("%s: access denied for user=%d to artist=%d", op, userID, artistID)
		return ErrAccessDenied
	}
	return nil
}
