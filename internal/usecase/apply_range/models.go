package apply_range

import (
	"github.com/m04kA/SMC-ArtistCalendar/internal/domain"
	"github.com/m04kA/SMC-ArtistCalendar/internal/service/selection/models"
)

// Request модель запроса на применение выбранного диапазона
type Request struct {
	SelectionID string           // ID сессии выбора
	UserID      int64            // владелец сессии
	Mode        domain.RangeMode // available или blocked
}

// Response модель ответа
type Response struct {
	ArtistID  int64
	Mode      domain.RangeMode
	Added     int                       // сколько дней отмечено доступными
	Removed   int                       // сколько дней снято с доступности
	Selection *models.SelectionResponse // состояние выбора после применения
}
