package service

import (
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/hospital_beds/internal/models"
	"github.com/shenikar/hospital_beds/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// Пользователь на экваторе; 1 градус долготы ≈ 111.19 км
var origin = &models.Location{Latitude: 0, Longitude: 0}

func hospitalAt(name string, distanceKm float64, beds models.Beds) *models.Hospital {
	return &models.Hospital{
		ID:       uuid.New(),
		Name:     name,
		Address:  name + " street",
		Location: &models.Location{Latitude: 0, Longitude: distanceKm / 111.195},
		Beds:     beds,
	}
}

func names(rows []models.AvailabilityRow) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Hospital.Name)
	}
	return out
}

func threeHospitals() []*models.Hospital {
	return []*models.Hospital{
		hospitalAt("H1", 2, models.Beds{models.BedGeneral: 3}),
		hospitalAt("H2", 10, models.Beds{models.BedGeneral: 0}),
		hospitalAt("H3", 1, models.Beds{models.BedGeneral: 1}),
	}
}

func TestRankHospitals_DefaultListing(t *testing.T) {
	rows := RankHospitals(threeHospitals(), models.AvailabilityQuery{Origin: origin, Sort: models.SortByDistance})

	assert.Equal(t, []string{"H3", "H1"}, names(rows))
	require.Len(t, rows, 2)
	assert.InDelta(t, 1.0, rows[0].Distance, 0.01)
	assert.True(t, rows[0].Ranked)
	assert.True(t, rows[0].HasAnyFreeBeds)
}

func TestRankHospitals_DistanceBands(t *testing.T) {
	near := RankHospitals(threeHospitals(), models.AvailabilityQuery{Origin: origin, Band: models.BandNear})
	assert.Equal(t, []string{"H3", "H1"}, names(near))

	far := RankHospitals(threeHospitals(), models.AvailabilityQuery{Origin: origin, Band: models.BandFar})
	assert.Empty(t, far)

	withCapacity := append(threeHospitals(), hospitalAt("H4", 12, models.Beds{models.BedICU: 2}))
	medium := RankHospitals(withCapacity, models.AvailabilityQuery{Origin: origin, Band: models.BandMedium})
	assert.Equal(t, []string{"H4"}, names(medium))
}

func TestRankHospitals_SortByName(t *testing.T) {
	hospitals := []*models.Hospital{
		hospitalAt("Beta", 1, models.Beds{models.BedICU: 1}),
		hospitalAt("Alpha", 9, models.Beds{models.BedICU: 1}),
	}

	rows := RankHospitals(hospitals, models.AvailabilityQuery{Origin: origin, Sort: models.SortByName})

	assert.Equal(t, []string{"Alpha", "Beta"}, names(rows))
}

func TestRankHospitals_SortByTotalBedsIsStable(t *testing.T) {
	hospitals := []*models.Hospital{
		hospitalAt("A", 1, models.Beds{models.BedICU: 2}),
		hospitalAt("B", 2, models.Beds{models.BedICU: 5}),
		hospitalAt("C", 3, models.Beds{models.BedGeneral: 2}),
	}

	rows := RankHospitals(hospitals, models.AvailabilityQuery{Origin: origin, Sort: models.SortByTotalBeds})

	assert.Equal(t, []string{"B", "A", "C"}, names(rows))
}

func TestRankHospitals_BedTypeFilter(t *testing.T) {
	hospitals := []*models.Hospital{
		hospitalAt("General only", 1, models.Beds{models.BedGeneral: 4, models.BedICU: 0}),
		hospitalAt("Has ICU", 2, models.Beds{models.BedICU: 1}),
	}

	rows := RankHospitals(hospitals, models.AvailabilityQuery{Origin: origin, BedType: models.BedICU})

	assert.Equal(t, []string{"Has ICU"}, names(rows))
}

func TestRankHospitals_SearchMatchesNameOrAddress(t *testing.T) {
	hospitals := []*models.Hospital{
		{ID: uuid.New(), Name: "City General Hospital", Address: "123 Main Street", Beds: models.Beds{models.BedICU: 1}},
		{ID: uuid.New(), Name: "Riverside Medical Center", Address: "456 River Road", Beds: models.Beds{models.BedICU: 1}},
		{ID: uuid.New(), Name: "Eastside Health Center", Address: "321 East Boulevard", Beds: models.Beds{models.BedICU: 1}},
	}

	assert.Equal(t, []string{"City General Hospital"}, names(RankHospitals(hospitals, models.AvailabilityQuery{Search: "GENERAL"})))
	assert.Equal(t, []string{"Riverside Medical Center"}, names(RankHospitals(hospitals, models.AvailabilityQuery{Search: "river road"})))
	assert.Len(t, RankHospitals(hospitals, models.AvailabilityQuery{Search: "  "}), 3)
	assert.Empty(t, RankHospitals(hospitals, models.AvailabilityQuery{Search: "dental"}))
}

func TestRankHospitals_MissingLocationSortsLast(t *testing.T) {
	unknown := &models.Hospital{ID: uuid.New(), Name: "Nowhere", Beds: models.Beds{models.BedICU: 1}}
	hospitals := []*models.Hospital{unknown, hospitalAt("Known", 30, models.Beds{models.BedICU: 1})}

	rows := RankHospitals(hospitals, models.AvailabilityQuery{Origin: origin})
	assert.Equal(t, []string{"Known", "Nowhere"}, names(rows))
	_, ok := rows[1].KnownDistance()
	assert.False(t, ok)

	near := RankHospitals(hospitals, models.AvailabilityQuery{Origin: origin, Band: models.BandNear})
	assert.Empty(t, near)
}

func TestRankHospitals_NonFiniteOriginTreatedAsUnknownDistance(t *testing.T) {
	hospitals := threeHospitals()
	badOrigin := &models.Location{Latitude: math.NaN(), Longitude: 0}

	rows := RankHospitals(hospitals, models.AvailabilityQuery{Origin: badOrigin})

	// Все расстояния неизвестны, порядок хранилища сохраняется
	assert.Equal(t, []string{"H1", "H3"}, names(rows))
	for _, r := range rows {
		assert.True(t, math.IsInf(r.Distance, 1))
		_, ok := r.KnownDistance()
		assert.False(t, ok)
	}
	assert.Empty(t, RankHospitals(hospitals, models.AvailabilityQuery{Origin: badOrigin, Band: models.BandNear}))
}

func TestRankHospitals_UnrankedWithoutOrigin(t *testing.T) {
	hospitals := threeHospitals()

	rows := RankHospitals(hospitals, models.AvailabilityQuery{Sort: models.SortByDistance})

	// Порядок хранилища сохраняется
	assert.Equal(t, []string{"H1", "H3"}, names(rows))
	for _, r := range rows {
		assert.False(t, r.Ranked)
		_, ok := r.KnownDistance()
		assert.False(t, ok)
	}
	assert.Empty(t, RankHospitals(hospitals, models.AvailabilityQuery{Band: models.BandNear}))
}

func TestRankHospitals_EmptyInput(t *testing.T) {
	rows := RankHospitals(nil, models.AvailabilityQuery{Origin: origin})

	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestAvailabilitySearch_ReadsThroughRepository(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockHospitalRepository(ctrl)
	svc := NewAvailabilityService(repoMock, newTestLogger())
	ctx := context.Background()

	repoMock.EXPECT().ListAll(ctx).Return(threeHospitals(), nil).Times(1)

	rows, err := svc.Search(ctx, models.AvailabilityQuery{Origin: origin})

	require.NoError(t, err)
	assert.Equal(t, []string{"H3", "H1"}, names(rows))
}

func TestAvailabilitySearch_StoreUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockHospitalRepository(ctrl)
	svc := NewAvailabilityService(repoMock, newTestLogger())

	repoMock.EXPECT().ListAll(gomock.Any()).Return(nil, fmt.Errorf("%w: connection refused", models.ErrStoreUnavailable)).Times(1)

	rows, err := svc.Search(context.Background(), models.AvailabilityQuery{})

	assert.Nil(t, rows)
	assert.ErrorIs(t, err, models.ErrStoreUnavailable)
}
