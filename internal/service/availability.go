package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/shenikar/hospital_beds/internal/models"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=availability.go -destination=mocks/mock_availability.go -package=mocks

// AvailabilityService определяет контракт поиска больниц со свободными койками
type AvailabilityService interface {
	Search(ctx context.Context, query models.AvailabilityQuery) ([]models.AvailabilityRow, error)
}

type availabilityService struct {
	repo   HospitalRepository
	logger *logrus.Logger
}

func NewAvailabilityService(repo HospitalRepository, logger *logrus.Logger) AvailabilityService {
	return &availabilityService{
		repo:   repo,
		logger: logger,
	}
}

// Search читает все больницы и ранжирует их относительно пользователя
func (s *availabilityService) Search(ctx context.Context, query models.AvailabilityQuery) ([]models.AvailabilityRow, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "availability",
		"method":   "Search",
		"bed_type": query.BedType,
		"band":     query.Band,
		"sort":     query.Sort,
	})
	if query.Origin == nil {
		log.WithError(models.ErrGeolocationUnavailable).Info("Searching without user location, results are unranked")
	}

	hospitals, err := s.repo.ListAll(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list hospitals from repository")
		return nil, fmt.Errorf("service: could not list hospitals: %w", err)
	}

	rows := RankHospitals(hospitals, query)
	log.WithField("count", len(rows)).Info("Availability search completed")
	return rows, nil
}

// RankHospitals вычисляет расстояния, фильтрует и сортирует выдачу.
// Порядок шагов: расстояние, наличие коек, текстовый поиск, диапазон, сортировка.
func RankHospitals(hospitals []*models.Hospital, query models.AvailabilityQuery) []models.AvailabilityRow {
	search := strings.ToLower(strings.TrimSpace(query.Search))
	rows := make([]models.AvailabilityRow, 0, len(hospitals))

	for _, h := range hospitals {
		if h == nil {
			continue
		}
		row := models.AvailabilityRow{
			Hospital:       h,
			Distance:       math.Inf(1),
			HasAnyFreeBeds: h.HasAnyFreeBeds(),
			TotalFreeBeds:  h.TotalFreeBeds(),
		}
		if query.Origin != nil {
			row.Distance = h.DistanceFrom(query.Origin.Latitude, query.Origin.Longitude)
			row.Ranked = true
			// Некорректная точка отсчета дает NaN; такое расстояние считаем неизвестным
			if math.IsNaN(row.Distance) {
				row.Distance = math.Inf(1)
			}
		}

		if !row.HasAnyFreeBeds {
			continue
		}
		if query.BedType != "" && h.Beds.Count(query.BedType) <= 0 {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(h.Name), search) &&
			!strings.Contains(strings.ToLower(h.Address), search) {
			continue
		}
		if !query.Band.Contains(row.Distance) {
			continue
		}
		rows = append(rows, row)
	}

	sortRows(rows, query.Sort)
	return rows
}

func sortRows(rows []models.AvailabilityRow, key models.SortKey) {
	switch key {
	case models.SortByTotalBeds:
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].TotalFreeBeds > rows[j].TotalFreeBeds
		})
	case models.SortByName:
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].Hospital.Name < rows[j].Hospital.Name
		})
	default:
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].Distance < rows[j].Distance
		})
	}
}
