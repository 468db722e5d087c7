package v1

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb/geojson"
)

// LocationDTO координаты больницы или пользователя
// @Description Координаты в градусах
type LocationDTO struct {
	Latitude  float64 `json:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`
}

// ContactDTO контакты больницы
type ContactDTO struct {
	Phone string `json:"phone" validate:"omitempty,max=32"`
	Email string `json:"email" validate:"omitempty,email"`
}

// CreateHospitalRequest DTO для регистрации больницы администратором
// @Description DTO для регистрации больницы
type CreateHospitalRequest struct {
	Name       string         `json:"name" validate:"required,min=2,max=255"`
	Address    string         `json:"address" validate:"required,max=500"`
	Landmark   string         `json:"landmark,omitempty" validate:"max=255"`
	Type       string         `json:"type,omitempty" validate:"omitempty,oneof=General Specialty Teaching Community Clinic"`
	Contact    ContactDTO     `json:"contact"`
	Location   *LocationDTO   `json:"location,omitempty"`
	Facilities []string       `json:"facilities,omitempty" validate:"omitempty,dive,min=1,max=100"`
	Beds       map[string]int `json:"beds,omitempty" validate:"omitempty,dive,keys,oneof=emergency icu delivery general pediatric,endkeys,gte=0"`
}

// UpdateHospitalRequest DTO для частичного обновления; отсутствующие поля не меняются
// @Description DTO для частичного обновления больницы
type UpdateHospitalRequest struct {
	Name       *string        `json:"name,omitempty" validate:"omitempty,min=2,max=255"`
	Address    *string        `json:"address,omitempty" validate:"omitempty,max=500"`
	Landmark   *string        `json:"landmark,omitempty" validate:"omitempty,max=255"`
	Type       *string        `json:"type,omitempty" validate:"omitempty,oneof=General Specialty Teaching Community Clinic"`
	Contact    *ContactDTO    `json:"contact,omitempty"`
	Location   *LocationDTO   `json:"location,omitempty"`
	Facilities *[]string      `json:"facilities,omitempty" validate:"omitempty,dive,min=1,max=100"`
	Beds       map[string]int `json:"beds,omitempty" validate:"omitempty,dive,keys,oneof=emergency icu delivery general pediatric,endkeys,gte=0"`
}

// UpdateBedsRequest DTO для массового обновления коек
// @Description Новые значения свободных коек по типам
type UpdateBedsRequest struct {
	Beds map[string]int `json:"beds" validate:"required,min=1,dive,keys,oneof=emergency icu delivery general pediatric,endkeys,gte=0"`
}

// HospitalResponse DTO для ответа с информацией о больнице
// @Description DTO для ответа с информацией о больнице
type HospitalResponse struct {
	ID            uuid.UUID      `json:"id"`
	Name          string         `json:"name"`
	Address       string         `json:"address"`
	Landmark      string         `json:"landmark,omitempty"`
	Type          string         `json:"type"`
	Contact       ContactDTO     `json:"contact"`
	Location      *LocationDTO   `json:"location,omitempty"`
	Facilities    []string       `json:"facilities"`
	Beds          map[string]int `json:"beds"`
	TotalFreeBeds int            `json:"total_free_beds"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// AvailableHospitalResponse больница в выдаче поиска
// @Description Больница со свободными койками и расстоянием до пользователя
type AvailableHospitalResponse struct {
	HospitalResponse
	// DistanceKm отсутствует, если расстояние неизвестно
	DistanceKm     *float64 `json:"distance_km"`
	HasAnyFreeBeds bool     `json:"has_any_free_beds"`
}

// AvailabilityResponse DTO для ответа поиска
// @Description Результат поиска больниц
type AvailabilityResponse struct {
	Ranked    bool                        `json:"ranked"`
	Count     int                         `json:"count"`
	Hospitals []AvailableHospitalResponse `json:"hospitals"`
}

// ReserveBedRequest DTO для бронирования койки
// @Description DTO для бронирования койки
type ReserveBedRequest struct {
	BedType     string `json:"bed_type" validate:"required"`
	PatientName string `json:"patient_name,omitempty" validate:"max=255"`
}

// ReservationResponse DTO с итогом бронирования
// @Description Итог бронирования
type ReservationResponse struct {
	HospitalID uuid.UUID `json:"hospital_id"`
	BedType    string    `json:"bed_type"`
	Booked     bool      `json:"booked"`
	ReservedAt time.Time `json:"reserved_at"`
}

// TripResponse DTO с оценкой поездки
// @Description Расстояние, время в пути и параметры маршрута
type TripResponse struct {
	HospitalID uuid.UUID        `json:"hospital_id"`
	DistanceKm float64          `json:"distance_km"`
	EtaMinutes int              `json:"eta_minutes"`
	Mode       string           `json:"mode"`
	Profile    string           `json:"profile"`
	ServiceURL string           `json:"service_url"`
	Route      *geojson.Feature `json:"route" swaggertype:"object"`
}

// FacilitiesResponse DTO со списком предлагаемых услуг
type FacilitiesResponse struct {
	Facilities []string `json:"facilities"`
}

// StatsResponse DTO для ответа со статистикой
// @Description DTO для ответа со статистикой
type StatsResponse struct {
	ReservationCount int `json:"reservation_count"`
	WindowMinutes    int `json:"window_minutes"`
}
