package models

import (
	"time"

	"github.com/ameleshkina/consult-booking/internal/domain"
	"github.com/ameleshkina/consult-booking/pkg/types"
)

// Request модели

// BlockSlotRequest запрос на блокировку одного слота
type BlockSlotRequest struct {
	Actor    domain.Actor
	Date     time.Time
	SlotTime types.TimeString
	Reason   *string `json:"reason,omitempty"`
}

// BlockDayRequest запрос на блокировку всего дня
type BlockDayRequest struct {
	Actor  domain.Actor
	Date   time.Time
	Reason *string `json:"reason,omitempty"`
}

// Response модели

// BlockedSlotResponse ответ с данными блокировки
type BlockedSlotResponse struct {
	ID       int64   `json:"id"`
	SlotDate string  `json:"slotDate"` // "2026-06-15"
	SlotTime string  `json:"slotTime"` // "14:00"
	Reason   *string `json:"reason,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// BlockedSlotListResponse ответ со списком блокировок
type BlockedSlotListResponse struct {
	BlockedSlots []BlockedSlotResponse `json:"blockedSlots"`
}

// DayBookingResponse бронирование в административном обзоре дня
type DayBookingResponse struct {
	ID          int64   `json:"id"`
	ClientID    *int64  `json:"clientId,omitempty"`
	ClientName  string  `json:"clientName"`
	ClientPhone string  `json:"clientPhone"`
	StartTime   string  `json:"startTime"`
	Status      string  `json:"status"`
	Notes       *string `json:"notes,omitempty"`
}

// DayScheduleResponse административный обзор дня: брони, блокировки и
// признак полностью закрытого дня
type DayScheduleResponse struct {
	Date                   string                `json:"date"`
	SessionDurationMinutes int                   `json:"sessionDurationMinutes"`
	Bookings               []DayBookingResponse  `json:"bookings"`
	BlockedSlots           []BlockedSlotResponse `json:"blockedSlots"`
	FullyBlocked           bool                  `json:"fullyBlocked"`
}

// Методы конвертации

// FromDomainBlockedSlot конвертирует domain модель в DTO
func FromDomainBlockedSlot(b *domain.BlockedSlot) *BlockedSlotResponse {
	if b == nil {
		return nil
	}

	return &BlockedSlotResponse{
		ID:        b.ID,
		SlotDate:  b.SlotDate.Format(domain.DateFormat),
		SlotTime:  b.SlotTime.String(),
		Reason:    b.Reason,
		CreatedAt: b.CreatedAt,
	}
}

// FromDomainBlockedSlotList конвертирует список domain моделей в DTO
func FromDomainBlockedSlotList(slots []*domain.BlockedSlot) []BlockedSlotResponse {
	out := make([]BlockedSlotResponse, 0, len(slots))
	for _, s := range slots {
		if resp := FromDomainBlockedSlot(s); resp != nil {
			out = append(out, *resp)
		}
	}
	return out
}

// FromDomainDayBookings конвертирует брони дня в DTO
func FromDomainDayBookings(bookings []*domain.Booking) []DayBookingResponse {
	out := make([]DayBookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, DayBookingResponse{
			ID:          b.ID,
			ClientID:    b.ClientID,
			ClientName:  b.ClientName,
			ClientPhone: b.ClientPhone,
			StartTime:   b.StartTime.String(),
			Status:      string(b.Status),
			Notes:       b.Notes,
		})
	}
	return out
}
