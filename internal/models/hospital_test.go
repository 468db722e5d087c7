package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHospital_ZeroBeds(t *testing.T) {
	h := &Hospital{Beds: Beds{BedEmergency: 0, BedICU: 0, BedDelivery: 0, BedGeneral: 0, BedPediatric: 0}}

	assert.False(t, h.HasAnyFreeBeds())
	assert.Equal(t, 0, h.TotalFreeBeds())
}

func TestHospital_TotalFreeBeds(t *testing.T) {
	h := &Hospital{Beds: Beds{BedEmergency: 5, BedICU: 3, BedDelivery: 2, BedGeneral: 10, BedPediatric: 4}}

	assert.True(t, h.HasAnyFreeBeds())
	assert.Equal(t, 24, h.TotalFreeBeds())
}

func TestHospital_NilBeds(t *testing.T) {
	h := &Hospital{}

	assert.False(t, h.HasAnyFreeBeds())
	assert.Equal(t, 0, h.TotalFreeBeds())
}

func TestHospital_HasFacility(t *testing.T) {
	h := &Hospital{Facilities: []string{"ICU", "Emergency"}}

	assert.True(t, h.HasFacility("ICU"))
	assert.False(t, h.HasFacility("icu"))
	assert.False(t, h.HasFacility("Dialysis"))
}

func TestHospital_DistanceFrom(t *testing.T) {
	h := &Hospital{Location: &Location{Latitude: 37.7749, Longitude: -122.4194}}
	assert.Equal(t, 0.0, h.DistanceFrom(37.7749, -122.4194))
	assert.InDelta(t, 0.96, h.DistanceFrom(37.7833, -122.4167), 0.01)

	noLocation := &Hospital{}
	assert.True(t, math.IsInf(noLocation.DistanceFrom(37.7749, -122.4194), 1))
}

func TestParseBedType(t *testing.T) {
	for _, bt := range BedTypes {
		got, err := ParseBedType(string(bt))
		require.NoError(t, err)
		assert.Equal(t, bt, got)
	}

	got, err := ParseBedType(" ICU ")
	require.NoError(t, err)
	assert.Equal(t, BedICU, got)

	_, err = ParseBedType("maternity-suite")
	assert.ErrorIs(t, err, ErrInvalidBedType)
}

func TestParseHospitalType(t *testing.T) {
	got, err := ParseHospitalType("")
	require.NoError(t, err)
	assert.Equal(t, TypeGeneral, got)

	got, err = ParseHospitalType("clinic")
	require.NoError(t, err)
	assert.Equal(t, TypeClinic, got)

	_, err = ParseHospitalType("Spa")
	assert.ErrorIs(t, err, ErrInvalidHospitalType)
}

func TestBeds_Validate(t *testing.T) {
	assert.NoError(t, Beds{BedICU: 0, BedGeneral: 3}.Validate())
	assert.ErrorIs(t, Beds{BedICU: -1}.Validate(), ErrNegativeBedCount)
	assert.ErrorIs(t, Beds{"sauna": 1}.Validate(), ErrInvalidBedType)
}

func TestBeds_Normalized(t *testing.T) {
	n := Beds{BedICU: 2}.Normalized()

	assert.Len(t, n, len(BedTypes))
	assert.Equal(t, 2, n[BedICU])
	assert.Equal(t, 0, n[BedGeneral])
}

func TestHospitalPatch_Apply(t *testing.T) {
	h := &Hospital{
		Name:       "Old",
		Facilities: []string{"ICU"},
		Beds:       Beds{BedICU: 1, BedGeneral: 5},
	}
	name := "New"
	facilities := []string{"Emergency"}
	patch := HospitalPatch{
		Name:       &name,
		Location:   &Location{Latitude: 1, Longitude: 2},
		Facilities: &facilities,
		Beds:       Beds{BedICU: 4},
	}

	require.False(t, patch.IsEmpty())
	patch.Apply(h)

	assert.Equal(t, "New", h.Name)
	assert.Equal(t, &Location{Latitude: 1, Longitude: 2}, h.Location)
	assert.Equal(t, []string{"Emergency"}, h.Facilities)
	assert.Equal(t, 4, h.Beds[BedICU])
	assert.Equal(t, 5, h.Beds[BedGeneral])
	assert.True(t, HospitalPatch{}.IsEmpty())
}

func TestHospital_Clone(t *testing.T) {
	h := &Hospital{Location: &Location{Latitude: 1}, Facilities: []string{"ICU"}, Beds: Beds{BedICU: 1}}
	c := h.Clone()

	c.Location.Latitude = 2
	c.Facilities[0] = "X"
	c.Beds[BedICU] = 0

	assert.Equal(t, 1.0, h.Location.Latitude)
	assert.Equal(t, "ICU", h.Facilities[0])
	assert.Equal(t, 1, h.Beds[BedICU])
}

func TestDistanceBand_Contains(t *testing.T) {
	inf := math.Inf(1)

	assert.True(t, BandAll.Contains(inf))
	assert.True(t, BandNear.Contains(5))
	assert.False(t, BandNear.Contains(5.01))
	assert.False(t, BandNear.Contains(inf))
	assert.True(t, BandMedium.Contains(15))
	assert.False(t, BandMedium.Contains(5))
	assert.True(t, BandFar.Contains(15.5))
	assert.False(t, BandFar.Contains(inf))
}

func TestParseDistanceBandAndSortKey(t *testing.T) {
	band, err := ParseDistanceBand("")
	require.NoError(t, err)
	assert.Equal(t, BandAll, band)
	_, err = ParseDistanceBand("nearby")
	assert.Error(t, err)

	key, err := ParseSortKey("")
	require.NoError(t, err)
	assert.Equal(t, SortByDistance, key)
	key, err = ParseSortKey("totalBeds")
	require.NoError(t, err)
	assert.Equal(t, SortByTotalBeds, key)
	_, err = ParseSortKey("rating")
	assert.Error(t, err)
}

func TestAvailabilityRow_KnownDistance(t *testing.T) {
	d, ok := AvailabilityRow{Ranked: true, Distance: 3.5}.KnownDistance()
	assert.True(t, ok)
	assert.Equal(t, 3.5, d)

	_, ok = AvailabilityRow{Ranked: false, Distance: 3.5}.KnownDistance()
	assert.False(t, ok)
	_, ok = AvailabilityRow{Ranked: true, Distance: math.Inf(1)}.KnownDistance()
	assert.False(t, ok)
	_, ok = AvailabilityRow{Ranked: true, Distance: math.NaN()}.KnownDistance()
	assert.False(t, ok)
}
