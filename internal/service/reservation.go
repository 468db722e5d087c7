package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shenikar/hospital_beds/internal/config"
	"github.com/shenikar/hospital_beds/internal/events"
	"github.com/shenikar/hospital_beds/internal/models"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=reservation.go -destination=mocks/mock_reservation.go -package=mocks

// IdempotencyStore хранит результаты бронирований по ключу клиента.
// Begin возвращает acquired=true, если ключ захвачен впервые; иначе прежний результат
// (nil, если первое бронирование с этим ключом еще не завершено).
type IdempotencyStore interface {
	Begin(ctx context.Context, key string) (*models.ReservationResult, bool, error)
	Complete(ctx context.Context, key string, result *models.ReservationResult) error
}

// ReservationService определяет контракт бронирования коек
type ReservationService interface {
	ReserveBed(ctx context.Context, req models.ReservationRequest) (*models.ReservationResult, error)
	GetStats(ctx context.Context) (int, error)
}

type reservationService struct {
	repo        HospitalRepository
	cache       HospitalCache
	idempotency IdempotencyStore
	publisher   events.EventPublisher
	logger      *logrus.Logger
	cfg         *config.Config
	now         func() time.Time
}

func NewReservationService(
	repo HospitalRepository,
	cache HospitalCache,
	idempotency IdempotencyStore,
	publisher events.EventPublisher,
	logger *logrus.Logger,
	cfg *config.Config,
) ReservationService {
	return &reservationService{
		repo:        repo,
		cache:       cache,
		idempotency: idempotency,
		publisher:   publisher,
		logger:      logger,
		cfg:         cfg,
		now:         time.Now,
	}
}

// ReserveBed атомарно занимает одну койку указанного типа.
// Решение принимается только по результату условного списания в хранилище.
func (s *reservationService) ReserveBed(ctx context.Context, req models.ReservationRequest) (*models.ReservationResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "reservation",
		"method":      "ReserveBed",
		"hospital_id": req.HospitalID,
		"bed_type":    req.BedType,
	})

	bedType, err := models.ParseBedType(req.BedType)
	if err != nil {
		log.WithError(err).Warn("Rejected reservation with invalid bed type")
		return nil, fmt.Errorf("service: %w", err)
	}

	key := strings.TrimSpace(req.IdempotencyKey)
	if key != "" {
		key = fmt.Sprintf("%s:%s:%s", req.HospitalID, bedType, key)
		prior, acquired, err := s.idempotency.Begin(ctx, key)
		if err != nil {
			log.WithError(err).Error("Failed to acquire idempotency key")
			return nil, fmt.Errorf("service: could not acquire idempotency key: %w", err)
		}
		if !acquired {
			if prior == nil {
				log.Warn("Reservation with the same idempotency key is in progress")
				return nil, fmt.Errorf("service: %w", models.ErrReservationInProgress)
			}
			log.WithField("booked", prior.Booked).Info("Replaying reservation result for idempotency key")
			return prior, nil
		}
	}

	log.Info("Attempting to reserve a bed")
	booked, err := s.repo.DecrementBedIfPositive(ctx, req.HospitalID, bedType)
	if err != nil {
		// Ключ идемпотентности остается "в процессе" до истечения TTL:
		// списание могло состояться, повтор не должен занять вторую койку.
		log.WithError(err).Error("Failed to decrement bed in repository")
		return nil, fmt.Errorf("service: could not reserve bed: %w", err)
	}

	result := &models.ReservationResult{
		HospitalID: req.HospitalID,
		BedType:    bedType,
		Booked:     booked,
		ReservedAt: s.now().UTC(),
	}

	if key != "" {
		if err := s.idempotency.Complete(ctx, key, result); err != nil {
			log.WithError(err).Error("Failed to store idempotent reservation result")
		}
	}

	if !booked {
		log.Info("No free beds of requested type")
		return result, nil
	}

	if err := s.cache.Invalidate(ctx, req.HospitalID); err != nil {
		log.WithError(err).Warn("Failed to invalidate hospital cache after reservation")
	}

	event := events.ReservationEvent{
		HospitalID:  req.HospitalID,
		BedType:     bedType,
		PatientName: strings.TrimSpace(req.PatientName),
		Timestamp:   result.ReservedAt,
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Error("Failed to publish reservation event")
	}

	log.Info("Bed reserved successfully")
	return result, nil
}

// GetStats возвращает число бронирований за последнее окно статистики
func (s *reservationService) GetStats(ctx context.Context) (int, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "reservation",
		"method":  "GetStats",
		"minutes": s.cfg.StatsTimeWindowMinutes,
	})

	count, err := s.repo.CountReservations(ctx, s.cfg.StatsTimeWindowMinutes)
	if err != nil {
		log.WithError(err).Error("Failed to count reservations")
		return 0, fmt.Errorf("service: could not get reservation stats: %w", err)
	}
	return count, nil
}
