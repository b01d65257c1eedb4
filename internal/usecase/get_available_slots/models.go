package get_available_slots

import (
	"time"

	"github.com/ameleshkina/consult-booking/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	Date time.Time // Дата, на которую запрашиваются слоты (без времени)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date            time.Time          // Дата, на которую запрашивались слоты
	DurationMinutes int                // Длительность сессии из текущих настроек
	Slots           []types.TimeString // Свободные времена начала, по возрастанию
}
