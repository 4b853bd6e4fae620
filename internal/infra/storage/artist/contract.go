package artist

import "github.com/m04kA/SMC-ArtistCalendar/pkg/dbmetrics"

// Переиспользуем интерфейс из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// rowScanner то, что умеет *sql.Row
type rowScanner interface {
	Scan(dest ...interface{}) error
}
