package models

import (
	"fmt"
	"math"
	"strings"
)

// DistanceBand - грубая группировка расстояния для фильтра
type DistanceBand string

const (
	BandAll    DistanceBand = "all"
	BandNear   DistanceBand = "near"
	BandMedium DistanceBand = "medium"
	BandFar    DistanceBand = "far"
)

const (
	nearLimitKm   = 5.0
	mediumLimitKm = 15.0
)

// ParseDistanceBand разбирает строку, пустое значение - all
func ParseDistanceBand(s string) (DistanceBand, error) {
	switch DistanceBand(strings.ToLower(strings.TrimSpace(s))) {
	case "", BandAll:
		return BandAll, nil
	case BandNear:
		return BandNear, nil
	case BandMedium:
		return BandMedium, nil
	case BandFar:
		return BandFar, nil
	}
	return "", fmt.Errorf("unknown distance band %q", s)
}

// Contains проверяет попадание расстояния в диапазон.
// Неизвестное расстояние (+Inf) попадает только в all.
func (b DistanceBand) Contains(distanceKm float64) bool {
	if b == BandAll || b == "" {
		return true
	}
	if math.IsInf(distanceKm, 0) || math.IsNaN(distanceKm) {
		return false
	}
	switch b {
	case BandNear:
		return distanceKm <= nearLimitKm
	case BandMedium:
		return distanceKm > nearLimitKm && distanceKm <= mediumLimitKm
	case BandFar:
		return distanceKm > mediumLimitKm
	}
	return false
}

// SortKey - ключ сортировки выдачи
type SortKey string

const (
	SortByDistance  SortKey = "distance"
	SortByTotalBeds SortKey = "totalBeds"
	SortByName      SortKey = "name"
)

// ParseSortKey разбирает ключ сортировки, пустое значение - distance
func ParseSortKey(s string) (SortKey, error) {
	switch strings.TrimSpace(s) {
	case "", string(SortByDistance):
		return SortByDistance, nil
	case string(SortByTotalBeds), "total_beds":
		return SortByTotalBeds, nil
	case string(SortByName):
		return SortByName, nil
	}
	return "", fmt.Errorf("unknown sort key %q", s)
}

// AvailabilityQuery - параметры поиска больниц со свободными койками
type AvailabilityQuery struct {
	// Origin - координаты пользователя; nil - геолокация недоступна
	Origin  *Location
	Search  string
	BedType BedType
	Band    DistanceBand
	Sort    SortKey
}

// AvailabilityRow - больница с вычисленным расстоянием
type AvailabilityRow struct {
	Hospital       *Hospital
	Distance       float64
	Ranked         bool
	HasAnyFreeBeds bool
	TotalFreeBeds  int
}

// KnownDistance возвращает расстояние, если оно определено и конечно
func (r AvailabilityRow) KnownDistance() (float64, bool) {
	if !r.Ranked || math.IsInf(r.Distance, 0) || math.IsNaN(r.Distance) {
		return 0, false
	}
	return r.Distance, true
}
