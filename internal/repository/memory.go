package repository

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/hospital_beds/internal/models"
	"github.com/shenikar/hospital_beds/internal/service"
)

// MemoryHospitalRepository хранит больницы в памяти процесса.
// Используется для локального запуска и тестов.
type MemoryHospitalRepository struct {
	mu        sync.Mutex
	hospitals map[uuid.UUID]*models.Hospital
	order     []uuid.UUID
	logs      []models.ReservationLog
	nextLogID int64
	now       func() time.Time
}

func NewMemoryHospitalRepository() *MemoryHospitalRepository {
	return &MemoryHospitalRepository{
		hospitals: make(map[uuid.UUID]*models.Hospital),
		now:       time.Now,
	}
}

var _ service.HospitalRepository = (*MemoryHospitalRepository)(nil)

func (r *MemoryHospitalRepository) ListAll(ctx context.Context) ([]*models.Hospital, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Порядок вставки, как у остальных хранилищ
	hospitals := make([]*models.Hospital, 0, len(r.order))
	for _, id := range r.order {
		hospitals = append(hospitals, r.hospitals[id].Clone())
	}
	return hospitals, nil
}

func (r *MemoryHospitalRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Hospital, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	h, ok := r.hospitals[id]
	if !ok {
		return nil, nil
	}
	return h.Clone(), nil
}

func (r *MemoryHospitalRepository) GetByOwner(ctx context.Context, adminID string) (*models.Hospital, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if h := r.findByOwner(adminID); h != nil {
		return h.Clone(), nil
	}
	return nil, nil
}

func (r *MemoryHospitalRepository) findByOwner(adminID string) *models.Hospital {
	for _, h := range r.hospitals {
		if h.AdminID == adminID {
			return h
		}
	}
	return nil
}

func (r *MemoryHospitalRepository) Create(ctx context.Context, hospital *models.Hospital, adminID string) (uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.findByOwner(adminID) != nil {
		return uuid.Nil, fmt.Errorf("failed to create hospital: %w", models.ErrAdminHasHospital)
	}

	now := r.now().UTC()
	stored := hospital.Clone()
	stored.ID = uuid.New()
	stored.AdminID = adminID
	stored.Beds = stored.Beds.Normalized()
	if stored.Facilities == nil {
		stored.Facilities = []string{}
	}
	stored.CreatedAt = now
	stored.UpdatedAt = now
	r.hospitals[stored.ID] = stored
	r.order = append(r.order, stored.ID)

	hospital.CreatedAt = now
	hospital.UpdatedAt = now
	return stored.ID, nil
}

func (r *MemoryHospitalRepository) Patch(ctx context.Context, id uuid.UUID, patch models.HospitalPatch) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	h, ok := r.hospitals[id]
	if !ok {
		return fmt.Errorf("hospital with id %s not found for update: %w", id, models.ErrNotFound)
	}
	patch.Apply(h)
	h.UpdatedAt = r.now().UTC()
	return nil
}

func (r *MemoryHospitalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.hospitals[id]; !ok {
		return fmt.Errorf("hospital with id %s not found for delete: %w", id, models.ErrNotFound)
	}
	delete(r.hospitals, id)
	r.order = slices.DeleteFunc(r.order, func(existing uuid.UUID) bool { return existing == id })
	return nil
}

// DecrementBedIfPositive проверяет и списывает койку под одной блокировкой
func (r *MemoryHospitalRepository) DecrementBedIfPositive(ctx context.Context, id uuid.UUID, bedType models.BedType) (bool, error) {
	if !bedType.Valid() {
		return false, fmt.Errorf("failed to decrement bed: %w: %q", models.ErrInvalidBedType, bedType)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	h, ok := r.hospitals[id]
	if !ok || h.Beds.Count(bedType) <= 0 {
		return false, nil
	}
	h.Beds[bedType]--
	h.UpdatedAt = r.now().UTC()
	return true, nil
}

func (r *MemoryHospitalRepository) SaveReservationLog(ctx context.Context, entry *models.ReservationLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextLogID++
	entry.ID = r.nextLogID
	r.logs = append(r.logs, *entry)
	return nil
}

func (r *MemoryHospitalRepository) CountReservations(ctx context.Context, minutes int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	since := r.now().Add(-time.Duration(minutes) * time.Minute)
	count := 0
	for _, entry := range r.logs {
		if !entry.ReservedAt.Before(since) {
			count++
		}
	}
	return count, nil
}
