package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/hospital_beds/internal/geo"
	"github.com/shenikar/hospital_beds/internal/models"
	"github.com/shenikar/hospital_beds/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testRoutingURL = "https://router.project-osrm.org"

func newTestTripService(t *testing.T) (TripService, *mocks.MockHospitalReader) {
	ctrl := gomock.NewController(t)
	readerMock := mocks.NewMockHospitalReader(ctrl)
	return NewTripService(readerMock, testRoutingURL, newTestLogger()), readerMock
}

func TestEstimateTrip(t *testing.T) {
	svc, _ := newTestTripService(t)
	from := models.Location{Latitude: 0, Longitude: 0}
	to := models.Location{Latitude: 0, Longitude: 47 / 111.195}

	tests := []struct {
		name    string
		mode    geo.TransportMode
		wantEta int
		profile string
	}{
		{"car", geo.ModeCar, 60, "car"},
		{"bicycle", geo.ModeBicycle, 47, "bike"},
		{"foot", geo.ModeFoot, 564, "foot"},
		{"unknown mode falls back to car", geo.TransportMode("rocket"), 60, "car"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			estimate := svc.EstimateTrip(from, to, tt.mode)

			assert.InDelta(t, 47.0, estimate.DistanceKm, 0.01)
			assert.Equal(t, tt.wantEta, estimate.EtaMinutes)
			assert.Equal(t, tt.profile, estimate.Routing.Profile)
			assert.Equal(t, testRoutingURL, estimate.Routing.ServiceURL)
			require.Len(t, estimate.Routing.Waypoints, 2)
			assert.Equal(t, from.Point(), estimate.Routing.Waypoints[0])
			assert.Equal(t, to.Point(), estimate.Routing.Waypoints[1])
		})
	}
}

func TestEstimateTrip_SamePoint(t *testing.T) {
	svc, _ := newTestTripService(t)
	here := models.Location{Latitude: 37.7749, Longitude: -122.4194}

	estimate := svc.EstimateTrip(here, here, geo.ModeFoot)

	assert.Zero(t, estimate.DistanceKm)
	assert.Zero(t, estimate.EtaMinutes)
}

func TestEstimateTrip_GeoJSONFeature(t *testing.T) {
	svc, _ := newTestTripService(t)

	estimate := svc.EstimateTrip(
		models.Location{Latitude: 37.7749, Longitude: -122.4194},
		models.Location{Latitude: 37.7833, Longitude: -122.4167},
		geo.ModeBicycle,
	)

	raw, err := json.Marshal(estimate.Routing.Feature())
	require.NoError(t, err)

	var decoded struct {
		Type     string `json:"type"`
		Geometry struct {
			Type        string       `json:"type"`
			Coordinates [][2]float64 `json:"coordinates"`
		} `json:"geometry"`
		Properties map[string]any `json:"properties"`
	}
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Equal(t, "Feature", decoded.Type)
	assert.Equal(t, "LineString", decoded.Geometry.Type)
	// GeoJSON хранит координаты в порядке [lon, lat]
	assert.Equal(t, [][2]float64{{-122.4194, 37.7749}, {-122.4167, 37.7833}}, decoded.Geometry.Coordinates)
	assert.Equal(t, "bike", decoded.Properties["profile"])
}

func TestEstimateTripToHospital(t *testing.T) {
	svc, readerMock := newTestTripService(t)
	ctx := context.Background()
	id := uuid.New()
	hospital := &models.Hospital{ID: id, Location: &models.Location{Latitude: 37.7833, Longitude: -122.4167}}

	readerMock.EXPECT().GetHospital(ctx, id).Return(hospital, nil).Times(1)

	estimate, err := svc.EstimateTripToHospital(ctx, id, models.Location{Latitude: 37.7749, Longitude: -122.4194}, geo.ModeCar)

	require.NoError(t, err)
	assert.InDelta(t, 0.96, estimate.DistanceKm, 0.02)
	assert.Equal(t, 2, estimate.EtaMinutes)
}

func TestEstimateTripToHospital_Errors(t *testing.T) {
	id := uuid.New()
	from := models.Location{Latitude: 37.7749, Longitude: -122.4194}

	tests := []struct {
		name     string
		hospital *models.Hospital
		readErr  error
		wantErr  error
	}{
		{"not found", nil, nil, models.ErrNotFound},
		{"no location", &models.Hospital{ID: id}, nil, models.ErrLocationUnknown},
		{"store unavailable", nil, models.ErrStoreUnavailable, models.ErrStoreUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, readerMock := newTestTripService(t)
			readerMock.EXPECT().GetHospital(gomock.Any(), id).Return(tt.hospital, tt.readErr).Times(1)

			estimate, err := svc.EstimateTripToHospital(context.Background(), id, from, geo.ModeCar)

			assert.Nil(t, estimate)
			assert.True(t, errors.Is(err, tt.wantErr))
		})
	}
}
