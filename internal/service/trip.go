package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/shenikar/hospital_beds/internal/geo"
	"github.com/shenikar/hospital_beds/internal/models"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=trip.go -destination=mocks/mock_trip.go -package=mocks

// HospitalReader - источник данных о больнице
type HospitalReader interface {
	GetHospital(ctx context.Context, id uuid.UUID) (*models.Hospital, error)
}

// TripService определяет контракт оценки поездки
type TripService interface {
	EstimateTrip(from, to models.Location, mode geo.TransportMode) models.TripEstimate
	EstimateTripToHospital(ctx context.Context, hospitalID uuid.UUID, from models.Location, mode geo.TransportMode) (*models.TripEstimate, error)
}

type tripService struct {
	hospitals  HospitalReader
	serviceURL string
	logger     *logrus.Logger
}

func NewTripService(hospitals HospitalReader, routingServiceURL string, logger *logrus.Logger) TripService {
	return &tripService{
		hospitals:  hospitals,
		serviceURL: routingServiceURL,
		logger:     logger,
	}
}

// EstimateTrip считает расстояние и время в пути и собирает параметры маршрута
func (s *tripService) EstimateTrip(from, to models.Location, mode geo.TransportMode) models.TripEstimate {
	mode = geo.ParseTransportMode(string(mode))
	distance := geo.Distance(from.Point(), to.Point())

	return models.TripEstimate{
		DistanceKm: distance,
		EtaMinutes: geo.EtaMinutes(distance, mode),
		Mode:       mode,
		Routing: models.RoutingParams{
			Waypoints:  orb.LineString{from.Point(), to.Point()},
			Profile:    mode.Profile(),
			ServiceURL: s.serviceURL,
		},
	}
}

// EstimateTripToHospital загружает больницу и оценивает поездку до нее
func (s *tripService) EstimateTripToHospital(ctx context.Context, hospitalID uuid.UUID, from models.Location, mode geo.TransportMode) (*models.TripEstimate, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "trip",
		"method":      "EstimateTripToHospital",
		"hospital_id": hospitalID,
		"mode":        mode,
	})

	hospital, err := s.hospitals.GetHospital(ctx, hospitalID)
	if err != nil {
		log.WithError(err).Error("Failed to get hospital for trip")
		return nil, fmt.Errorf("service: could not estimate trip: %w", err)
	}
	if hospital == nil {
		return nil, fmt.Errorf("service: %w", models.ErrNotFound)
	}
	if hospital.Location == nil {
		log.Warn("Hospital has no location")
		return nil, fmt.Errorf("service: %w", models.ErrLocationUnknown)
	}

	estimate := s.EstimateTrip(from, *hospital.Location, mode)
	log.WithField("eta_minutes", estimate.EtaMinutes).Debug("Trip estimated")
	return &estimate, nil
}
