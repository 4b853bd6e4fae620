package availability

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ArtistCalendar/internal/domain"
	"github.com/m04kA/SMC-ArtistCalendar/pkg/dbmetrics"
	"github.com/m04kA/SMC-ArtistCalendar/pkg/psqlbuilder"
)

const tableName = "artist_availability"

// Repository репозиторий для работы с доступностью артистов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория доступности
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListByArtist получает дни доступности артиста, отсортированные по дате
// Период (From, To) включительный, каждая граница опциональна
func (r *Repository) ListByArtist(ctx context.Context, filter domain.AvailabilityFilter) ([]*domain.AvailabilitySlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	// Внутри транзакции блокируем строки периода, чтобы параллельное применение
	// диапазона не вставило те же дни
	query, args, err := buildListQuery(filter, dbmetrics.IsInTransaction(ctx))
	if err != nil {
		return nil, fmt.Errorf("%w: ListByArtist - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByArtist - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]*domain.AvailabilitySlot, 0)
	for rows.Next() {
		var slot domain.AvailabilitySlot
		if err := rows.Scan(&slot.ID, &slot.ArtistID, &slot.Date, &slot.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: ListByArtist - scan slot: %v", ErrScanRow, err)
		}
		slot.Date = domain.DateOnly(slot.Date)
		slots = append(slots, &slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByArtist - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

// Create отмечает день доступным
// Если день уже есть, возвращает ErrSlotAlreadyExists
func (r *Repository) Create(ctx context.Context, slot *domain.AvailabilitySlot) (*domain.AvailabilitySlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildCreateQuery(slot)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := scanCreated(executor.QueryRowContext(ctx, query, args...), slot); err != nil {
		return nil, err
	}

	return slot, nil
}

func buildListQuery(filter domain.AvailabilityFilter, forUpdate bool) (string, []interface{}, error) {
	selectBuilder := psqlbuilder.Select("id", "artist_id", "date", "created_at").
		From(tableName).
		Where(squirrel.Eq{"artist_id": filter.ArtistID}).
		OrderBy("date ASC")

	if filter.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"date": *filter.From})
	}
	if filter.To != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"date": *filter.To})
	}
	if forUpdate {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	return selectBuilder.ToSql()
}

func buildCreateQuery(slot *domain.AvailabilitySlot) (string, []interface{}, error) {
	return psqlbuilder.Insert(tableName).
		Columns("artist_id", "date").
		Values(slot.ArtistID, domain.DateOnly(slot.Date)).
		Suffix("ON CONFLICT (artist_id, date) DO NOTHING RETURNING id, created_at").
		ToSql()
}

// scanCreated читает RETURNING вставки. Пустой результат означает конфликт по (artist_id, date)
func scanCreated(row rowScanner, slot *domain.AvailabilitySlot) error {
	var createdAt sql.NullTime
	err := row.Scan(&slot.ID, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrSlotAlreadyExists
	}
	if err != nil {
		return fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	slot.Date = domain.DateOnly(slot.Date)
	slot.CreatedAt = createdAt.Time
	return nil
}

// Delete удаляет день доступности артиста по ID
func (r *Repository) Delete(ctx context.Context, artistID, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(tableName).
		Where(squirrel.Eq{"id": id, "artist_id": artistID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSlotNotFound
	}

	return nil
}

// DeleteByDates удаляет дни доступности артиста по списку дат
// Возвращает количество удалённых строк
func (r *Repository) DeleteByDates(ctx context.Context, artistID int64, dates []time.Time) (int64, error) {
	if len(dates) == 0 {
		return 0, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	normalized := make([]time.Time, len(dates))
	for i, d := range dates {
		normalized[i] = domain.DateOnly(d)
	}

	query, args, err := psqlbuilder.Delete(tableName).
		Where(squirrel.Eq{"artist_id": artistID}).
		Where(squirrel.Eq{"date": normalized}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByDates - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByDates - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByDates - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}
