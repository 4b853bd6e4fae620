package artist

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ArtistCalendar/pkg/dbmetrics"
	"github.com/m04kA/SMC-ArtistCalendar/pkg/psqlbuilder"
)

const tableName = "artist_users"

// Repository репозиторий связей артист - пользователь
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// IsArtistOwner проверяет, может ли пользователь управлять календарём артиста
func (r *Repository) IsArtistOwner(ctx context.Context, userID, artistID int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildOwnerQuery(userID, artistID)
	if err != nil {
		return false, fmt.Errorf("%w: IsArtistOwner - build select query: %v", ErrBuildQuery, err)
	}

	return scanOwner(executor.QueryRowContext(ctx, query, args...))
}

func buildOwnerQuery(userID, artistID int64) (string, []interface{}, error) {
	return psqlbuilder.Select("1").
		From(tableName).
		Where(squirrel.Eq{"artist_id": artistID, "user_id": userID}).
		Limit(1).
		ToSql()
}

// scanOwner: нет строки - не владелец
func scanOwner(row rowScanner) (bool, error) {
	var one int
	err := row.Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: IsArtistOwner - execute query: %v", ErrExecQuery, err)
	}
	return true, nil
}
