package create_booking

import (
	"time"

	"github.com/ameleshkina/consult-booking/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	ClientID             *int64           // ID клиента (nil для гостевой брони, созданной администратором)
	ClientName           string           // Имя клиента
	ClientPhone          string           // Телефон клиента
	ClientEmail          *string          // Email для уведомлений (опционально)
	ClientTelegramChatID *int64           // Telegram chat ID для уведомлений (опционально)
	Date                 time.Time        // Дата бронирования (без времени)
	StartTime            types.TimeString // Время начала слота (например, "10:00")
	ProductID            *int64           // ID продукта/услуги (опционально)
	Amount               *float64         // Сумма к оплате (опционально)
	Notes                *string          // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              int64            // ID созданного бронирования
	ClientID        *int64           // ID клиента
	ClientName      string           // Имя клиента
	ClientPhone     string           // Телефон клиента
	BookingDate     time.Time        // Дата бронирования
	StartTime       types.TimeString // Время начала
	DurationMinutes int              // Длительность сессии в минутах
	Status          string           // Статус бронирования (pending_payment)
	ProductID       *int64           // ID продукта/услуги
	Amount          *float64         // Сумма к оплате
	Notes           *string          // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
