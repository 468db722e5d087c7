package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/firestore/apiv1/firestorepb"
	"github.com/google/uuid"
	"github.com/shenikar/hospital_beds/internal/models"
	"github.com/shenikar/hospital_beds/internal/service"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	hospitalsCollection      = "hospitals"
	reservationLogCollection = "reservation_log"
)

// hospitalDoc - представление больницы в Firestore
type hospitalDoc struct {
	Name       string         `firestore:"name"`
	Address    string         `firestore:"address"`
	Landmark   string         `firestore:"landmark"`
	Type       string         `firestore:"type"`
	Phone      string         `firestore:"phone"`
	Email      string         `firestore:"email"`
	Latitude   *float64       `firestore:"latitude"`
	Longitude  *float64       `firestore:"longitude"`
	Facilities []string       `firestore:"facilities"`
	Beds       map[string]int `firestore:"beds"`
	AdminID    string         `firestore:"admin_id"`
	CreatedAt  time.Time      `firestore:"created_at"`
	UpdatedAt  time.Time      `firestore:"updated_at"`
}

type reservationLogDoc struct {
	HospitalID  string    `firestore:"hospital_id"`
	BedType     string    `firestore:"bed_type"`
	PatientName string    `firestore:"patient_name"`
	ReservedAt  time.Time `firestore:"reserved_at"`
}

func toHospitalDoc(h *models.Hospital) hospitalDoc {
	doc := hospitalDoc{
		Name:       h.Name,
		Address:    h.Address,
		Landmark:   h.Landmark,
		Type:       string(h.Type),
		Phone:      h.Contact.Phone,
		Email:      h.Contact.Email,
		Facilities: h.Facilities,
		Beds:       make(map[string]int, len(models.BedTypes)),
		AdminID:    h.AdminID,
		CreatedAt:  h.CreatedAt,
		UpdatedAt:  h.UpdatedAt,
	}
	if doc.Facilities == nil {
		doc.Facilities = []string{}
	}
	if h.Location != nil {
		lat, lon := h.Location.Latitude, h.Location.Longitude
		doc.Latitude, doc.Longitude = &lat, &lon
	}
	for _, bt := range models.BedTypes {
		doc.Beds[string(bt)] = h.Beds.Count(bt)
	}
	return doc
}

func fromSnapshot(snap *firestore.DocumentSnapshot) (*models.Hospital, error) {
	var doc hospitalDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode hospital %s: %w", snap.Ref.ID, err)
	}
	id, err := uuid.Parse(snap.Ref.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid hospital document id %q: %w", snap.Ref.ID, err)
	}

	h := &models.Hospital{
		ID:         id,
		Name:       doc.Name,
		Address:    doc.Address,
		Landmark:   doc.Landmark,
		Type:       models.HospitalType(doc.Type),
		Contact:    models.Contact{Phone: doc.Phone, Email: doc.Email},
		Facilities: doc.Facilities,
		Beds:       make(models.Beds, len(models.BedTypes)),
		AdminID:    doc.AdminID,
		CreatedAt:  doc.CreatedAt,
		UpdatedAt:  doc.UpdatedAt,
	}
	if h.Type == "" {
		h.Type = models.TypeGeneral
	}
	if h.Facilities == nil {
		h.Facilities = []string{}
	}
	if doc.Latitude != nil && doc.Longitude != nil {
		h.Location = &models.Location{Latitude: *doc.Latitude, Longitude: *doc.Longitude}
	}
	// Неизвестные ключи коек в документе игнорируются
	for _, bt := range models.BedTypes {
		h.Beds[bt] = doc.Beds[string(bt)]
	}
	return h, nil
}

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

type FirestoreHospitalRepository struct {
	client  *firestore.Client
	timeout time.Duration
}

func NewFirestoreHospitalRepository(client *firestore.Client, timeout time.Duration) service.HospitalRepository {
	return &FirestoreHospitalRepository{
		client:  client,
		timeout: timeout,
	}
}

func (r *FirestoreHospitalRepository) hospitals() *firestore.CollectionRef {
	return r.client.Collection(hospitalsCollection)
}

func (r *FirestoreHospitalRepository) ListAll(ctx context.Context) ([]*models.Hospital, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	iter := r.hospitals().OrderBy("created_at", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	hospitals := make([]*models.Hospital, 0)
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list hospitals: %w: %w", models.ErrStoreUnavailable, err)
		}
		h, err := fromSnapshot(snap)
		if err != nil {
			return nil, fmt.Errorf("failed to list hospitals: %w: %w", models.ErrStoreUnavailable, err)
		}
		hospitals = append(hospitals, h)
	}
	return hospitals, nil
}

func (r *FirestoreHospitalRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Hospital, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	snap, err := r.hospitals().Doc(id.String()).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get hospital by id: %w: %w", models.ErrStoreUnavailable, err)
	}
	h, err := fromSnapshot(snap)
	if err != nil {
		return nil, fmt.Errorf("failed to get hospital by id: %w: %w", models.ErrStoreUnavailable, err)
	}
	return h, nil
}

func (r *FirestoreHospitalRepository) GetByOwner(ctx context.Context, adminID string) (*models.Hospital, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	snaps, err := r.hospitals().Where("admin_id", "==", adminID).Limit(1).Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get hospital by owner: %w: %w", models.ErrStoreUnavailable, err)
	}
	if len(snaps) == 0 {
		return nil, nil
	}
	h, err := fromSnapshot(snaps[0])
	if err != nil {
		return nil, fmt.Errorf("failed to get hospital by owner: %w: %w", models.ErrStoreUnavailable, err)
	}
	return h, nil
}

// Create проверяет владельца и создает документ в одной транзакции
func (r *FirestoreHospitalRepository) Create(ctx context.Context, hospital *models.Hospital, adminID string) (uuid.UUID, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	id := uuid.New()
	now := time.Now().UTC()
	ref := r.hospitals().Doc(id.String())

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		owned, err := tx.Documents(r.hospitals().Where("admin_id", "==", adminID).Limit(1)).GetAll()
		if err != nil {
			return err
		}
		if len(owned) > 0 {
			return models.ErrAdminHasHospital
		}

		stored := hospital.Clone()
		stored.AdminID = adminID
		stored.CreatedAt = now
		stored.UpdatedAt = now
		return tx.Create(ref, toHospitalDoc(stored))
	})
	if err != nil {
		if errors.Is(err, models.ErrAdminHasHospital) {
			return uuid.Nil, fmt.Errorf("failed to create hospital: %w", models.ErrAdminHasHospital)
		}
		return uuid.Nil, fmt.Errorf("failed to create hospital: %w: %w", models.ErrStoreUnavailable, err)
	}

	hospital.CreatedAt = now
	hospital.UpdatedAt = now
	return id, nil
}

func (r *FirestoreHospitalRepository) Patch(ctx context.Context, id uuid.UUID, patch models.HospitalPatch) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	ref := r.hospitals().Doc(id.String())
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil {
			if isNotFound(err) {
				return models.ErrNotFound
			}
			return err
		}
		h, err := fromSnapshot(snap)
		if err != nil {
			return err
		}
		patch.Apply(h)
		h.UpdatedAt = time.Now().UTC()
		return tx.Set(ref, toHospitalDoc(h))
	})
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return fmt.Errorf("hospital with id %s not found for update: %w", id, models.ErrNotFound)
		}
		return fmt.Errorf("failed to update hospital: %w: %w", models.ErrStoreUnavailable, err)
	}
	return nil
}

func (r *FirestoreHospitalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	if _, err := r.hospitals().Doc(id.String()).Delete(ctx, firestore.Exists); err != nil {
		if isNotFound(err) {
			return fmt.Errorf("hospital with id %s not found for delete: %w", id, models.ErrNotFound)
		}
		return fmt.Errorf("failed to delete hospital: %w: %w", models.ErrStoreUnavailable, err)
	}
	return nil
}

// Очередь за последними койками дает частые конфликты транзакций
const decrementMaxAttempts = 10

// DecrementBedIfPositive читает счетчик и списывает койку в транзакции.
// При конфликте Firestore повторяет функцию транзакции целиком.
func (r *FirestoreHospitalRepository) DecrementBedIfPositive(ctx context.Context, id uuid.UUID, bedType models.BedType) (bool, error) {
	if !bedType.Valid() {
		return false, fmt.Errorf("failed to decrement bed: %w: %q", models.ErrInvalidBedType, bedType)
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	ref := r.hospitals().Doc(id.String())
	var booked bool
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		booked = false
		snap, err := tx.Get(ref)
		if err != nil {
			if isNotFound(err) {
				return nil
			}
			return err
		}

		path := "beds." + string(bedType)
		raw, err := snap.DataAt(path)
		if err != nil {
			// Поля нет - коек этого типа нет
			return nil
		}
		count, ok := raw.(int64)
		if !ok || count <= 0 {
			return nil
		}

		booked = true
		return tx.Update(ref, []firestore.Update{
			{Path: path, Value: count - 1},
			{Path: "updated_at", Value: time.Now().UTC()},
		})
	}, firestore.MaxAttempts(decrementMaxAttempts))
	if err != nil {
		return false, fmt.Errorf("failed to decrement bed: %w: %w", models.ErrStoreUnavailable, err)
	}
	return booked, nil
}

func (r *FirestoreHospitalRepository) SaveReservationLog(ctx context.Context, entry *models.ReservationLog) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	_, _, err := r.client.Collection(reservationLogCollection).Add(ctx, reservationLogDoc{
		HospitalID:  entry.HospitalID.String(),
		BedType:     string(entry.BedType),
		PatientName: entry.PatientName,
		ReservedAt:  entry.ReservedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to save reservation log: %w: %w", models.ErrStoreUnavailable, err)
	}
	return nil
}

// CountReservations считает записи журнала агрегирующим запросом
func (r *FirestoreHospitalRepository) CountReservations(ctx context.Context, minutes int) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	since := time.Now().UTC().Add(-time.Duration(minutes) * time.Minute)
	query := r.client.Collection(reservationLogCollection).Where("reserved_at", ">=", since)

	result, err := query.NewAggregationQuery().WithCount("total").Get(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count reservations: %w: %w", models.ErrStoreUnavailable, err)
	}
	value, ok := result["total"].(*firestorepb.Value)
	if !ok {
		return 0, fmt.Errorf("failed to count reservations: %w: unexpected aggregation result", models.ErrStoreUnavailable)
	}
	return int(value.GetIntegerValue()), nil
}
