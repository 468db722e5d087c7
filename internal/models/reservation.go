package models

import (
	"time"

	"github.com/google/uuid"
)

// ReservationResult - итог попытки бронирования
type ReservationResult struct {
	HospitalID uuid.UUID `json:"hospital_id"`
	BedType    BedType   `json:"bed_type"`
	Booked     bool      `json:"booked"`
	ReservedAt time.Time `json:"reserved_at"`
}

// ReservationLog - запись журнала успешных бронирований
type ReservationLog struct {
	ID          int64     `json:"id"`
	HospitalID  uuid.UUID `json:"hospital_id"`
	BedType     BedType   `json:"bed_type"`
	PatientName string    `json:"patient_name"`
	ReservedAt  time.Time `json:"reserved_at"`
}

// ReservationRequest - запрос на бронирование койки
type ReservationRequest struct {
	HospitalID  uuid.UUID
	BedType     string
	PatientName string
	// IdempotencyKey - необязательный ключ клиента для безопасного повтора
	IdempotencyKey string
}
