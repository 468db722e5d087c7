package models

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/shenikar/hospital_beds/internal/geo"
)

// BedType - категория коек
type BedType string

const (
	BedEmergency BedType = "emergency"
	BedICU       BedType = "icu"
	BedDelivery  BedType = "delivery"
	BedGeneral   BedType = "general"
	BedPediatric BedType = "pediatric"
)

// BedTypes - закрытый перечень типов коек в порядке отображения
var BedTypes = []BedType{BedEmergency, BedICU, BedDelivery, BedGeneral, BedPediatric}

// Valid проверяет, что тип входит в перечень
func (b BedType) Valid() bool {
	return slices.Contains(BedTypes, b)
}

// ParseBedType разбирает строку в тип койки
func ParseBedType(s string) (BedType, error) {
	bt := BedType(strings.ToLower(strings.TrimSpace(s)))
	if !bt.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidBedType, s)
	}
	return bt, nil
}

// HospitalType - вид учреждения
type HospitalType string

const (
	TypeGeneral   HospitalType = "General"
	TypeSpecialty HospitalType = "Specialty"
	TypeTeaching  HospitalType = "Teaching"
	TypeCommunity HospitalType = "Community"
	TypeClinic    HospitalType = "Clinic"
)

var HospitalTypes = []HospitalType{TypeGeneral, TypeSpecialty, TypeTeaching, TypeCommunity, TypeClinic}

// ParseHospitalType разбирает тип больницы, пустая строка - General
func ParseHospitalType(s string) (HospitalType, error) {
	if strings.TrimSpace(s) == "" {
		return TypeGeneral, nil
	}
	for _, t := range HospitalTypes {
		if strings.EqualFold(string(t), strings.TrimSpace(s)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidHospitalType, s)
}

// SuggestedFacilities - словарь услуг, предлагаемый администраторам (не обязателен)
var SuggestedFacilities = []string{
	"ICU", "Emergency", "Surgery", "Radiology", "Pediatrics", "Birth Center",
	"Dialysis", "Cardiology", "Neurology", "Orthopedics", "Physical Therapy",
	"Geriatrics", "Maternity", "Oncology", "Psychiatry", "Trauma Center",
	"Burn Unit", "Neurosurgery",
}

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Point возвращает координату как orb.Point
func (l Location) Point() orb.Point {
	return orb.Point{l.Longitude, l.Latitude}
}

type Contact struct {
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// Beds - количество свободных коек по типам
type Beds map[BedType]int

// Count возвращает количество коек указанного типа
func (b Beds) Count(bt BedType) int {
	return b[bt]
}

// Total возвращает сумму по всем типам
func (b Beds) Total() int {
	total := 0
	for _, count := range b {
		total += count
	}
	return total
}

// HasAny - есть ли хотя бы одна свободная койка
func (b Beds) HasAny() bool {
	for _, count := range b {
		if count > 0 {
			return true
		}
	}
	return false
}

// Validate проверяет ключи и неотрицательность значений
func (b Beds) Validate() error {
	for bt, count := range b {
		if !bt.Valid() {
			return fmt.Errorf("%w: %q", ErrInvalidBedType, bt)
		}
		if count < 0 {
			return fmt.Errorf("%w: %s=%d", ErrNegativeBedCount, bt, count)
		}
	}
	return nil
}

// Normalized возвращает копию, где присутствуют все типы коек
func (b Beds) Normalized() Beds {
	out := make(Beds, len(BedTypes))
	for _, bt := range BedTypes {
		out[bt] = b[bt]
	}
	return out
}

type Hospital struct {
	ID         uuid.UUID    `json:"id"`
	Name       string       `json:"name"`
	Address    string       `json:"address"`
	Landmark   string       `json:"landmark"`
	Type       HospitalType `json:"type"`
	Contact    Contact      `json:"contact"`
	Location   *Location    `json:"location,omitempty"`
	Facilities []string     `json:"facilities"`
	Beds       Beds         `json:"beds"`
	AdminID    string       `json:"admin_id"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

// TotalFreeBeds - сумма свободных коек всех типов
func (h *Hospital) TotalFreeBeds() int {
	return h.Beds.Total()
}

// HasAnyFreeBeds - true, если хотя бы один тип коек > 0
func (h *Hospital) HasAnyFreeBeds() bool {
	return h.Beds.HasAny()
}

// HasFacility проверяет наличие услуги
func (h *Hospital) HasFacility(tag string) bool {
	return slices.Contains(h.Facilities, tag)
}

// DistanceFrom возвращает расстояние до точки в км; без координат - +Inf
func (h *Hospital) DistanceFrom(lat, lon float64) float64 {
	if h.Location == nil {
		return math.Inf(1)
	}
	return geo.DistanceKm(lat, lon, h.Location.Latitude, h.Location.Longitude)
}

// Clone возвращает глубокую копию больницы
func (h *Hospital) Clone() *Hospital {
	c := *h
	if h.Location != nil {
		loc := *h.Location
		c.Location = &loc
	}
	c.Facilities = slices.Clone(h.Facilities)
	if h.Beds != nil {
		c.Beds = make(Beds, len(h.Beds))
		for k, v := range h.Beds {
			c.Beds[k] = v
		}
	}
	return &c
}

// HospitalPatch - частичное обновление; nil поля не меняются
type HospitalPatch struct {
	Name       *string
	Address    *string
	Landmark   *string
	Type       *HospitalType
	Contact    *Contact
	Location   *Location
	Facilities *[]string
	// Beds перезаписывает только переданные типы
	Beds Beds
}

// IsEmpty - в патче нет ни одного поля
func (p HospitalPatch) IsEmpty() bool {
	return p.Name == nil && p.Address == nil && p.Landmark == nil && p.Type == nil &&
		p.Contact == nil && p.Location == nil && p.Facilities == nil && len(p.Beds) == 0
}

// Apply применяет патч к больнице
func (p HospitalPatch) Apply(h *Hospital) {
	if p.Name != nil {
		h.Name = *p.Name
	}
	if p.Address != nil {
		h.Address = *p.Address
	}
	if p.Landmark != nil {
		h.Landmark = *p.Landmark
	}
	if p.Type != nil {
		h.Type = *p.Type
	}
	if p.Contact != nil {
		h.Contact = *p.Contact
	}
	if p.Location != nil {
		loc := *p.Location
		h.Location = &loc
	}
	if p.Facilities != nil {
		h.Facilities = slices.Clone(*p.Facilities)
	}
	if len(p.Beds) > 0 {
		if h.Beds == nil {
			h.Beds = make(Beds)
		}
		for bt, count := range p.Beds {
			h.Beds[bt] = count
		}
	}
}
