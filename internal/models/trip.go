package models

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/shenikar/hospital_beds/internal/geo"
)

// RoutingParams - параметры для внешнего сервиса маршрутизации и карты
type RoutingParams struct {
	Waypoints  orb.LineString
	Profile    string
	ServiceURL string
}

// Feature возвращает маршрут как GeoJSON LineString
func (p RoutingParams) Feature() *geojson.Feature {
	f := geojson.NewFeature(p.Waypoints)
	f.Properties["profile"] = p.Profile
	return f
}

// TripEstimate - оценка поездки до больницы
type TripEstimate struct {
	DistanceKm float64
	EtaMinutes int
	Mode       geo.TransportMode
	Routing    RoutingParams
}
