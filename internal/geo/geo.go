package geo

import (
	"math"

	"github.com/paulmach/orb"
)

// EarthRadiusKm - средний радиус Земли в километрах
const EarthRadiusKm = 6371.0

// DegToRad переводит градусы в радианы
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// RadToDeg переводит радианы в градусы
func RadToDeg(rad float64) float64 {
	return rad * 180.0 / math.Pi
}

// DistanceKm возвращает расстояние по большому кругу (формула гаверсинуса) в километрах
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := DegToRad(lat2 - lat1)
	dLon := DegToRad(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(DegToRad(lat1))*math.Cos(DegToRad(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return EarthRadiusKm * c
}

// Distance то же самое для orb.Point (порядок координат lon, lat)
func Distance(a, b orb.Point) float64 {
	return DistanceKm(a.Lat(), a.Lon(), b.Lat(), b.Lon())
}
