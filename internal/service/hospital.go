package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shenikar/hospital_beds/internal/models"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=hospital.go -destination=mocks/mock_hospital.go -package=mocks

// HospitalRepository определяет контракт шлюза к хранилищу больниц
type HospitalRepository interface {
	ListAll(ctx context.Context) ([]*models.Hospital, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Hospital, error)
	GetByOwner(ctx context.Context, adminID string) (*models.Hospital, error)
	Create(ctx context.Context, hospital *models.Hospital, adminID string) (uuid.UUID, error)
	Patch(ctx context.Context, id uuid.UUID, patch models.HospitalPatch) error
	Delete(ctx context.Context, id uuid.UUID) error
	DecrementBedIfPositive(ctx context.Context, id uuid.UUID, bedType models.BedType) (bool, error)
	SaveReservationLog(ctx context.Context, entry *models.ReservationLog) error
	CountReservations(ctx context.Context, minutes int) (int, error)
}

// HospitalCache - кеш снимков больниц; промах возвращает nil, nil.
// Version растет при каждой инвалидации; SetIfVersion пишет снимок,
// только если версия не менялась с момента чтения из хранилища.
type HospitalCache interface {
	Get(ctx context.Context, id uuid.UUID) (*models.Hospital, error)
	Version(ctx context.Context, id uuid.UUID) (int64, error)
	SetIfVersion(ctx context.Context, hospital *models.Hospital, version int64) (bool, error)
	Invalidate(ctx context.Context, id uuid.UUID) error
}

// HospitalService определяет контракт для управления данными больниц
type HospitalService interface {
	CreateHospital(ctx context.Context, hospital *models.Hospital, adminID string) error
	GetHospital(ctx context.Context, id uuid.UUID) (*models.Hospital, error)
	GetHospitalByOwner(ctx context.Context, adminID string) (*models.Hospital, error)
	UpdateHospital(ctx context.Context, id uuid.UUID, patch models.HospitalPatch) (*models.Hospital, error)
	UpdateBeds(ctx context.Context, id uuid.UUID, beds models.Beds) (*models.Hospital, error)
	DeleteHospital(ctx context.Context, id uuid.UUID) error
}

type hospitalService struct {
	repo   HospitalRepository
	cache  HospitalCache
	logger *logrus.Logger
}

func NewHospitalService(repo HospitalRepository, cache HospitalCache, logger *logrus.Logger) HospitalService {
	return &hospitalService{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

// CreateHospital создает больницу; у администратора может быть только одна
func (s *hospitalService) CreateHospital(ctx context.Context, hospital *models.Hospital, adminID string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "hospital",
		"method":   "CreateHospital",
		"admin_id": adminID,
		"name":     hospital.Name,
	})
	log.Info("Attempting to create a new hospital")

	if strings.TrimSpace(adminID) == "" {
		return fmt.Errorf("service: admin id is required")
	}
	hType, err := models.ParseHospitalType(string(hospital.Type))
	if err != nil {
		return fmt.Errorf("service: %w", err)
	}
	hospital.Type = hType
	if err := hospital.Beds.Validate(); err != nil {
		return fmt.Errorf("service: invalid beds: %w", err)
	}
	hospital.Beds = hospital.Beds.Normalized()

	existing, err := s.repo.GetByOwner(ctx, adminID)
	if err != nil {
		log.WithError(err).Error("Failed to check existing hospital for admin")
		return fmt.Errorf("service: could not check admin hospital: %w", err)
	}
	if existing != nil {
		log.WithField("hospital_id", existing.ID).Warn("Admin already owns a hospital")
		return fmt.Errorf("service: %w", models.ErrAdminHasHospital)
	}

	id, err := s.repo.Create(ctx, hospital, adminID)
	if err != nil {
		log.WithError(err).Error("Failed to create hospital in repository")
		return fmt.Errorf("service: could not create hospital: %w", err)
	}
	hospital.ID = id
	hospital.AdminID = adminID

	log.WithField("hospital_id", id).Info("Hospital created successfully")
	return nil
}

// GetHospital получает больницу по ID: сначала кеш, затем хранилище
func (s *hospitalService) GetHospital(ctx context.Context, id uuid.UUID) (*models.Hospital, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "hospital",
		"method":      "GetHospital",
		"hospital_id": id,
	})

	cached, err := s.cache.Get(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to read hospital from cache")
	}
	if cached != nil {
		log.Debug("Hospital served from cache")
		return cached, nil
	}

	// Версию читаем до хранилища: инвалидация между чтениями отменит запись в кеш
	version, versionErr := s.cache.Version(ctx, id)
	if versionErr != nil {
		log.WithError(versionErr).Warn("Failed to read hospital cache version")
	}

	hospital, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to get hospital in repository")
		return nil, fmt.Errorf("service: could not get hospital: %w", err)
	}
	if hospital == nil {
		return nil, nil
	}

	if versionErr == nil {
		stored, err := s.cache.SetIfVersion(ctx, hospital, version)
		switch {
		case err != nil:
			log.WithError(err).Warn("Failed to cache hospital")
		case !stored:
			log.Debug("Hospital changed while reading, snapshot not cached")
		}
	}
	return hospital, nil
}

// GetHospitalByOwner возвращает больницу администратора
func (s *hospitalService) GetHospitalByOwner(ctx context.Context, adminID string) (*models.Hospital, error) {
	hospital, err := s.repo.GetByOwner(ctx, adminID)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service":  "hospital",
			"method":   "GetHospitalByOwner",
			"admin_id": adminID,
		}).WithError(err).Error("Failed to get hospital by owner")
		return nil, fmt.Errorf("service: could not get hospital by owner: %w", err)
	}
	return hospital, nil
}

// UpdateHospital применяет правки администратора и возвращает свежую версию
func (s *hospitalService) UpdateHospital(ctx context.Context, id uuid.UUID, patch models.HospitalPatch) (*models.Hospital, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "hospital",
		"method":      "UpdateHospital",
		"hospital_id": id,
	})
	log.Info("Attempting to update hospital")

	if patch.IsEmpty() {
		return nil, fmt.Errorf("service: %w", models.ErrEmptyUpdate)
	}
	if patch.Type != nil {
		hType, err := models.ParseHospitalType(string(*patch.Type))
		if err != nil {
			return nil, fmt.Errorf("service: %w", err)
		}
		patch.Type = &hType
	}
	if err := patch.Beds.Validate(); err != nil {
		return nil, fmt.Errorf("service: invalid beds: %w", err)
	}

	if err := s.repo.Patch(ctx, id, patch); err != nil {
		log.WithError(err).Error("Failed to update hospital in repository")
		return nil, fmt.Errorf("service: could not update hospital: %w", err)
	}
	s.invalidate(ctx, log, id)

	return s.reload(ctx, log, id)
}

// UpdateBeds - массовое обновление количества коек администратором
func (s *hospitalService) UpdateBeds(ctx context.Context, id uuid.UUID, beds models.Beds) (*models.Hospital, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "hospital",
		"method":      "UpdateBeds",
		"hospital_id": id,
	})
	log.Info("Attempting to update bed availability")

	if len(beds) == 0 {
		return nil, fmt.Errorf("service: %w", models.ErrEmptyUpdate)
	}
	if err := beds.Validate(); err != nil {
		return nil, fmt.Errorf("service: invalid beds: %w", err)
	}

	if err := s.repo.Patch(ctx, id, models.HospitalPatch{Beds: beds}); err != nil {
		log.WithError(err).Error("Failed to update beds in repository")
		return nil, fmt.Errorf("service: could not update beds: %w", err)
	}
	s.invalidate(ctx, log, id)

	log.Info("Bed availability updated successfully")
	return s.reload(ctx, log, id)
}

// DeleteHospital удаляет больницу
func (s *hospitalService) DeleteHospital(ctx context.Context, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "hospital",
		"method":      "DeleteHospital",
		"hospital_id": id,
	})
	log.Info("Attempting to delete hospital")

	if err := s.repo.Delete(ctx, id); err != nil {
		log.WithError(err).Error("Failed to delete hospital in repository")
		return fmt.Errorf("service: could not delete hospital: %w", err)
	}
	s.invalidate(ctx, log, id)

	log.Info("Hospital deleted successfully")
	return nil
}

func (s *hospitalService) invalidate(ctx context.Context, log *logrus.Entry, id uuid.UUID) {
	if err := s.cache.Invalidate(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate hospital cache")
	}
}

// reload читает больницу мимо кеша, чтобы вернуть актуальные счетчики
func (s *hospitalService) reload(ctx context.Context, log *logrus.Entry, id uuid.UUID) (*models.Hospital, error) {
	hospital, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to reload hospital")
		return nil, fmt.Errorf("service: could not reload hospital: %w", err)
	}
	if hospital == nil {
		return nil, fmt.Errorf("service: %w", models.ErrNotFound)
	}
	return hospital, nil
}
