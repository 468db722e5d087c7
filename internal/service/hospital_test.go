package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/hospital_beds/internal/models"
	"github.com/shenikar/hospital_beds/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return logger
}

// newTestHospitalService - вспомогательная функция для создания сервиса с моками
func newTestHospitalService(t *testing.T) (HospitalService, *mocks.MockHospitalRepository, *mocks.MockHospitalCache) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockHospitalRepository(ctrl)
	cacheMock := mocks.NewMockHospitalCache(ctrl)

	return NewHospitalService(repoMock, cacheMock, newTestLogger()), repoMock, cacheMock
}

func TestGetHospital_FromCache(t *testing.T) {
	svc, _, cacheMock := newTestHospitalService(t)
	ctx := context.Background()
	id := uuid.New()
	expected := &models.Hospital{ID: id, Name: "City General Hospital"}

	cacheMock.EXPECT().Get(ctx, id).Return(expected, nil).Times(1)

	hospital, err := svc.GetHospital(ctx, id)

	require.NoError(t, err)
	assert.Equal(t, expected, hospital)
}

func TestGetHospital_FromStore(t *testing.T) {
	svc, repoMock, cacheMock := newTestHospitalService(t)
	ctx := context.Background()
	id := uuid.New()
	expected := &models.Hospital{ID: id, Name: "Riverside Medical Center"}

	gomock.InOrder(
		// 1. Промах кеша
		cacheMock.EXPECT().Get(ctx, id).Return(nil, nil).Times(1),
		// 2. Версия кеша до чтения хранилища
		cacheMock.EXPECT().Version(ctx, id).Return(int64(3), nil).Times(1),
		// 3. Попадание в хранилище
		repoMock.EXPECT().GetByID(ctx, id).Return(expected, nil).Times(1),
		// 4. Запись в кеш с той же версией
		cacheMock.EXPECT().SetIfVersion(ctx, expected, int64(3)).Return(true, nil).Times(1),
	)

	hospital, err := svc.GetHospital(ctx, id)

	require.NoError(t, err)
	assert.Equal(t, expected, hospital)
}

func TestGetHospital_CacheErrorFallsBackToStore(t *testing.T) {
	svc, repoMock, cacheMock := newTestHospitalService(t)
	ctx := context.Background()
	id := uuid.New()
	expected := &models.Hospital{ID: id}

	cacheMock.EXPECT().Get(ctx, id).Return(nil, errors.New("redis down")).Times(1)
	cacheMock.EXPECT().Version(ctx, id).Return(int64(0), errors.New("redis down")).Times(1)
	repoMock.EXPECT().GetByID(ctx, id).Return(expected, nil).Times(1)
	// Без версии снимок не кешируется
	cacheMock.EXPECT().SetIfVersion(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	hospital, err := svc.GetHospital(ctx, id)

	require.NoError(t, err)
	assert.Equal(t, expected, hospital)
}

func TestGetHospital_CacheWriteFailureStillReturnsHospital(t *testing.T) {
	svc, repoMock, cacheMock := newTestHospitalService(t)
	ctx := context.Background()
	id := uuid.New()
	expected := &models.Hospital{ID: id}

	cacheMock.EXPECT().Get(ctx, id).Return(nil, nil).Times(1)
	cacheMock.EXPECT().Version(ctx, id).Return(int64(1), nil).Times(1)
	repoMock.EXPECT().GetByID(ctx, id).Return(expected, nil).Times(1)
	cacheMock.EXPECT().SetIfVersion(ctx, expected, int64(1)).Return(false, errors.New("redis down")).Times(1)

	hospital, err := svc.GetHospital(ctx, id)

	require.NoError(t, err)
	assert.Equal(t, expected, hospital)
}

func TestGetHospital_InvalidatedDuringReadIsNotCached(t *testing.T) {
	svc, repoMock, cacheMock := newTestHospitalService(t)
	ctx := context.Background()
	id := uuid.New()
	// Снимок прочитан до бронирования: 1 койка ICU
	beforeBooking := &models.Hospital{ID: id, Beds: models.Beds{models.BedICU: 1}}

	gomock.InOrder(
		cacheMock.EXPECT().Get(ctx, id).Return(nil, nil).Times(1),
		cacheMock.EXPECT().Version(ctx, id).Return(int64(7), nil).Times(1),
		repoMock.EXPECT().GetByID(ctx, id).Return(beforeBooking, nil).Times(1),
		// Бронирование успело инвалидировать кеш, версия уже 8
		cacheMock.EXPECT().SetIfVersion(ctx, beforeBooking, int64(7)).Return(false, nil).Times(1),
	)

	hospital, err := svc.GetHospital(ctx, id)

	require.NoError(t, err)
	assert.Equal(t, beforeBooking, hospital)
}

func TestGetHospital_NotFound(t *testing.T) {
	svc, repoMock, cacheMock := newTestHospitalService(t)
	ctx := context.Background()
	id := uuid.New()

	cacheMock.EXPECT().Get(ctx, id).Return(nil, nil).Times(1)
	cacheMock.EXPECT().Version(ctx, id).Return(int64(0), nil).Times(1)
	repoMock.EXPECT().GetByID(ctx, id).Return(nil, nil).Times(1)
	cacheMock.EXPECT().SetIfVersion(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	hospital, err := svc.GetHospital(ctx, id)

	require.NoError(t, err)
	assert.Nil(t, hospital)
}

func TestGetHospital_StoreUnavailable(t *testing.T) {
	svc, repoMock, cacheMock := newTestHospitalService(t)
	ctx := context.Background()
	id := uuid.New()

	cacheMock.EXPECT().Get(ctx, id).Return(nil, nil).Times(1)
	cacheMock.EXPECT().Version(ctx, id).Return(int64(0), nil).Times(1)
	repoMock.EXPECT().GetByID(ctx, id).Return(nil, fmt.Errorf("%w: timeout", models.ErrStoreUnavailable)).Times(1)

	hospital, err := svc.GetHospital(ctx, id)

	require.Error(t, err)
	assert.Nil(t, hospital)
	assert.ErrorIs(t, err, models.ErrStoreUnavailable)
}

func TestCreateHospital_Success(t *testing.T) {
	svc, repoMock, _ := newTestHospitalService(t)
	ctx := context.Background()
	newID := uuid.New()
	hospital := &models.Hospital{
		Name: "Hillside Community Hospital",
		Beds: models.Beds{models.BedGeneral: 15},
	}

	repoMock.EXPECT().GetByOwner(ctx, "admin-1").Return(nil, nil).Times(1)
	repoMock.EXPECT().
		Create(ctx, gomock.Any(), "admin-1").
		DoAndReturn(func(_ context.Context, h *models.Hospital, _ string) (uuid.UUID, error) {
			// Все типы коек заполнены до записи
			assert.Len(t, h.Beds, len(models.BedTypes))
			assert.Equal(t, models.TypeGeneral, h.Type)
			return newID, nil
		}).Times(1)

	err := svc.CreateHospital(ctx, hospital, "admin-1")

	require.NoError(t, err)
	assert.Equal(t, newID, hospital.ID)
	assert.Equal(t, "admin-1", hospital.AdminID)
}

func TestCreateHospital_AdminAlreadyOwnsHospital(t *testing.T) {
	svc, repoMock, _ := newTestHospitalService(t)
	ctx := context.Background()

	repoMock.EXPECT().GetByOwner(ctx, "admin-1").Return(&models.Hospital{ID: uuid.New()}, nil).Times(1)
	repoMock.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	err := svc.CreateHospital(ctx, &models.Hospital{Name: "Second"}, "admin-1")

	assert.ErrorIs(t, err, models.ErrAdminHasHospital)
}

func TestCreateHospital_NegativeBeds(t *testing.T) {
	svc, repoMock, _ := newTestHospitalService(t)

	repoMock.EXPECT().GetByOwner(gomock.Any(), gomock.Any()).Times(0)

	err := svc.CreateHospital(context.Background(), &models.Hospital{Beds: models.Beds{models.BedICU: -2}}, "admin-1")

	assert.ErrorIs(t, err, models.ErrNegativeBedCount)
}

func TestUpdateBeds_Success(t *testing.T) {
	svc, repoMock, cacheMock := newTestHospitalService(t)
	ctx := context.Background()
	id := uuid.New()
	beds := models.Beds{models.BedICU: 4, models.BedGeneral: 0}
	refreshed := &models.Hospital{ID: id, Beds: models.Beds{models.BedICU: 4}}

	repoMock.EXPECT().Patch(ctx, id, models.HospitalPatch{Beds: beds}).Return(nil).Times(1)
	cacheMock.EXPECT().Invalidate(ctx, id).Return(nil).Times(1)
	repoMock.EXPECT().GetByID(ctx, id).Return(refreshed, nil).Times(1)

	hospital, err := svc.UpdateBeds(ctx, id, beds)

	require.NoError(t, err)
	assert.Equal(t, refreshed, hospital)
}

func TestUpdateBeds_RejectsInvalidKeys(t *testing.T) {
	svc, repoMock, _ := newTestHospitalService(t)

	repoMock.EXPECT().Patch(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.UpdateBeds(context.Background(), uuid.New(), models.Beds{"maternity-suite": 3})

	assert.ErrorIs(t, err, models.ErrInvalidBedType)
}

func TestUpdateHospital_NotFound(t *testing.T) {
	svc, repoMock, _ := newTestHospitalService(t)
	ctx := context.Background()
	id := uuid.New()
	name := "Renamed"

	repoMock.EXPECT().Patch(ctx, id, gomock.Any()).Return(fmt.Errorf("hospital %s: %w", id, models.ErrNotFound)).Times(1)

	_, err := svc.UpdateHospital(ctx, id, models.HospitalPatch{Name: &name})

	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestUpdateHospital_EmptyPatch(t *testing.T) {
	svc, repoMock, _ := newTestHospitalService(t)

	repoMock.EXPECT().Patch(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.UpdateHospital(context.Background(), uuid.New(), models.HospitalPatch{})

	assert.ErrorIs(t, err, models.ErrEmptyUpdate)
}

func TestUpdateHospital_InvalidType(t *testing.T) {
	svc, repoMock, _ := newTestHospitalService(t)
	hType := models.HospitalType("Spa")

	repoMock.EXPECT().Patch(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.UpdateHospital(context.Background(), uuid.New(), models.HospitalPatch{Type: &hType})

	assert.ErrorIs(t, err, models.ErrInvalidHospitalType)
}

func TestDeleteHospital_Success(t *testing.T) {
	svc, repoMock, cacheMock := newTestHospitalService(t)
	ctx := context.Background()
	id := uuid.New()

	repoMock.EXPECT().Delete(ctx, id).Return(nil).Times(1)
	cacheMock.EXPECT().Invalidate(ctx, id).Return(nil).Times(1)

	require.NoError(t, svc.DeleteHospital(ctx, id))
}

func TestGetHospitalByOwner_Success(t *testing.T) {
	svc, repoMock, _ := newTestHospitalService(t)
	ctx := context.Background()
	expected := &models.Hospital{ID: uuid.New(), AdminID: "admin-7"}

	repoMock.EXPECT().GetByOwner(ctx, "admin-7").Return(expected, nil).Times(1)

	hospital, err := svc.GetHospitalByOwner(ctx, "admin-7")

	require.NoError(t, err)
	assert.Equal(t, expected, hospital)
}
