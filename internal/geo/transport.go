package geo

import (
	"math"
	"strings"
)

// TransportMode - способ передвижения до больницы
type TransportMode string

const (
	ModeFoot    TransportMode = "foot"
	ModeBicycle TransportMode = "bicycle"
	ModeCar     TransportMode = "car"
)

// Средние скорости, км/ч
const (
	footSpeedKmh    = 5.0
	bicycleSpeedKmh = 60.0
	carSpeedKmh     = 47.0
)

// ParseTransportMode разбирает строку; неизвестное или пустое значение - машина
func ParseTransportMode(s string) TransportMode {
	switch TransportMode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeFoot:
		return ModeFoot
	case ModeBicycle:
		return ModeBicycle
	default:
		return ModeCar
	}
}

// SpeedKmh возвращает среднюю скорость для режима
func (m TransportMode) SpeedKmh() float64 {
	switch m {
	case ModeFoot:
		return footSpeedKmh
	case ModeBicycle:
		return bicycleSpeedKmh
	default:
		return carSpeedKmh
	}
}

// Profile возвращает профиль маршрутизатора (OSRM) для режима
func (m TransportMode) Profile() string {
	switch m {
	case ModeFoot:
		return "foot"
	case ModeBicycle:
		return "bike"
	default:
		return "car"
	}
}

// EtaMinutes оценивает время в пути в минутах, округляя вверх
func EtaMinutes(distanceKm float64, mode TransportMode) int {
	if distanceKm <= 0 || math.IsInf(distanceKm, 0) || math.IsNaN(distanceKm) {
		return 0
	}
	hours := distanceKm / mode.SpeedKmh()
	return int(math.Ceil(hours * 60))
}
