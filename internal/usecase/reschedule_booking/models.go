package reschedule_booking

import (
	"time"

	"github.com/ameleshkina/consult-booking/internal/domain"
	"github.com/ameleshkina/consult-booking/pkg/types"
)

// Request модель запроса на перенос бронирования
type Request struct {
	BookingID    int64            // ID переносимого бронирования
	Actor        domain.Actor     // Кто выполняет перенос (владелец или администратор)
	NewDate      time.Time        // Новая дата
	NewStartTime types.TimeString // Новое время начала
	Reason       *string          // Причина переноса (опционально)
}

// Response модель ответа с перенесённым бронированием
type Response struct {
	ID          int64            // ID бронирования
	ClientID    *int64           // ID клиента
	ClientName  string           // Имя клиента
	BookingDate time.Time        // Новая дата
	StartTime   types.TimeString // Новое время начала
	Status      string           // Статус (переносом не меняется)

	OldDate      time.Time        // Дата до переноса
	OldStartTime types.TimeString // Время до переноса
}
