package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/hospital_beds/internal/config"
	"github.com/shenikar/hospital_beds/internal/events"
	eventmocks "github.com/shenikar/hospital_beds/internal/events/mocks"
	"github.com/shenikar/hospital_beds/internal/models"
	"github.com/shenikar/hospital_beds/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

type reservationMocks struct {
	repo        *mocks.MockHospitalRepository
	cache       *mocks.MockHospitalCache
	idempotency *mocks.MockIdempotencyStore
	publisher   *eventmocks.MockEventPublisher
}

func newTestReservationService(t *testing.T) (ReservationService, reservationMocks) {
	ctrl := gomock.NewController(t)
	m := reservationMocks{
		repo:        mocks.NewMockHospitalRepository(ctrl),
		cache:       mocks.NewMockHospitalCache(ctrl),
		idempotency: mocks.NewMockIdempotencyStore(ctrl),
		publisher:   eventmocks.NewMockEventPublisher(ctrl),
	}
	cfg := &config.Config{StatsTimeWindowMinutes: 30}

	svc := NewReservationService(m.repo, m.cache, m.idempotency, m.publisher, newTestLogger(), cfg)
	svc.(*reservationService).now = func() time.Time { return fixedNow }
	return svc, m
}

func TestReserveBed_Success(t *testing.T) {
	svc, m := newTestReservationService(t)
	ctx := context.Background()
	id := uuid.New()

	m.repo.EXPECT().DecrementBedIfPositive(ctx, id, models.BedICU).Return(true, nil).Times(1)
	m.cache.EXPECT().Invalidate(ctx, id).Return(nil).Times(1)
	m.publisher.EXPECT().Publish(ctx, events.ReservationEvent{
		HospitalID:  id,
		BedType:     models.BedICU,
		PatientName: "Jane Doe",
		Timestamp:   fixedNow,
	}).Return(nil).Times(1)

	result, err := svc.ReserveBed(ctx, models.ReservationRequest{HospitalID: id, BedType: " ICU ", PatientName: " Jane Doe "})

	require.NoError(t, err)
	assert.True(t, result.Booked)
	assert.Equal(t, models.BedICU, result.BedType)
	assert.Equal(t, fixedNow, result.ReservedAt)
}

func TestReserveBed_NoFreeBeds(t *testing.T) {
	svc, m := newTestReservationService(t)
	ctx := context.Background()
	id := uuid.New()

	m.repo.EXPECT().DecrementBedIfPositive(ctx, id, models.BedDelivery).Return(false, nil).Times(1)
	// Без списания нет ни инвалидации кеша, ни события
	m.cache.EXPECT().Invalidate(gomock.Any(), gomock.Any()).Times(0)
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	result, err := svc.ReserveBed(ctx, models.ReservationRequest{HospitalID: id, BedType: "delivery"})

	require.NoError(t, err)
	assert.False(t, result.Booked)
}

func TestReserveBed_InvalidBedTypeNeverTouchesStore(t *testing.T) {
	svc, m := newTestReservationService(t)

	m.repo.EXPECT().DecrementBedIfPositive(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	m.idempotency.EXPECT().Begin(gomock.Any(), gomock.Any()).Times(0)

	result, err := svc.ReserveBed(context.Background(), models.ReservationRequest{
		HospitalID:     uuid.New(),
		BedType:        "maternity-suite",
		IdempotencyKey: "k1",
	})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, models.ErrInvalidBedType)
}

func TestReserveBed_StoreUnavailable(t *testing.T) {
	svc, m := newTestReservationService(t)
	storeErr := fmt.Errorf("%w: deadline exceeded", models.ErrStoreUnavailable)

	m.repo.EXPECT().DecrementBedIfPositive(gomock.Any(), gomock.Any(), models.BedGeneral).Return(false, storeErr).Times(1)
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	result, err := svc.ReserveBed(context.Background(), models.ReservationRequest{HospitalID: uuid.New(), BedType: "general"})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, models.ErrStoreUnavailable)
}

func TestReserveBed_PublishFailureKeepsBooking(t *testing.T) {
	svc, m := newTestReservationService(t)
	id := uuid.New()

	m.repo.EXPECT().DecrementBedIfPositive(gomock.Any(), id, models.BedPediatric).Return(true, nil).Times(1)
	m.cache.EXPECT().Invalidate(gomock.Any(), id).Return(errors.New("redis down")).Times(1)
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("redis down")).Times(1)

	result, err := svc.ReserveBed(context.Background(), models.ReservationRequest{HospitalID: id, BedType: "pediatric"})

	require.NoError(t, err)
	assert.True(t, result.Booked)
}

func TestReserveBed_IdempotencyFirstAttempt(t *testing.T) {
	svc, m := newTestReservationService(t)
	ctx := context.Background()
	id := uuid.New()
	key := fmt.Sprintf("%s:icu:retry-1", id)

	gomock.InOrder(
		m.idempotency.EXPECT().Begin(ctx, key).Return(nil, true, nil),
		m.repo.EXPECT().DecrementBedIfPositive(ctx, id, models.BedICU).Return(true, nil),
		m.idempotency.EXPECT().Complete(ctx, key, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, result *models.ReservationResult) error {
				assert.True(t, result.Booked)
				return nil
			}),
	)
	m.cache.EXPECT().Invalidate(ctx, id).Return(nil)
	m.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

	result, err := svc.ReserveBed(ctx, models.ReservationRequest{HospitalID: id, BedType: "icu", IdempotencyKey: "retry-1"})

	require.NoError(t, err)
	assert.True(t, result.Booked)
}

func TestReserveBed_IdempotencyReplay(t *testing.T) {
	svc, m := newTestReservationService(t)
	id := uuid.New()
	prior := &models.ReservationResult{HospitalID: id, BedType: models.BedICU, Booked: true, ReservedAt: fixedNow.Add(-time.Minute)}

	m.idempotency.EXPECT().Begin(gomock.Any(), gomock.Any()).Return(prior, false, nil).Times(1)
	// Повтор не списывает вторую койку
	m.repo.EXPECT().DecrementBedIfPositive(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	result, err := svc.ReserveBed(context.Background(), models.ReservationRequest{HospitalID: id, BedType: "icu", IdempotencyKey: "retry-1"})

	require.NoError(t, err)
	assert.Equal(t, prior, result)
}

func TestReserveBed_IdempotencyInProgress(t *testing.T) {
	svc, m := newTestReservationService(t)

	m.idempotency.EXPECT().Begin(gomock.Any(), gomock.Any()).Return(nil, false, nil).Times(1)
	m.repo.EXPECT().DecrementBedIfPositive(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	result, err := svc.ReserveBed(context.Background(), models.ReservationRequest{HospitalID: uuid.New(), BedType: "icu", IdempotencyKey: "retry-1"})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, models.ErrReservationInProgress)
}

func TestReserveBed_IdempotencyStoreError(t *testing.T) {
	svc, m := newTestReservationService(t)

	m.idempotency.EXPECT().Begin(gomock.Any(), gomock.Any()).Return(nil, false, errors.New("redis down")).Times(1)
	m.repo.EXPECT().DecrementBedIfPositive(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.ReserveBed(context.Background(), models.ReservationRequest{HospitalID: uuid.New(), BedType: "icu", IdempotencyKey: "retry-1"})

	assert.Error(t, err)
}

func TestGetStats(t *testing.T) {
	svc, m := newTestReservationService(t)
	ctx := context.Background()

	m.repo.EXPECT().CountReservations(ctx, 30).Return(7, nil).Times(1)

	count, err := svc.GetStats(ctx)

	require.NoError(t, err)
	assert.Equal(t, 7, count)
}

func TestGetStats_Error(t *testing.T) {
	svc, m := newTestReservationService(t)

	m.repo.EXPECT().CountReservations(gomock.Any(), 30).Return(0, models.ErrStoreUnavailable).Times(1)

	_, err := svc.GetStats(context.Background())

	assert.ErrorIs(t, err, models.ErrStoreUnavailable)
}
