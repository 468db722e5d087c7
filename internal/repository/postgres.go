package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/hospital_beds/internal/models"
	"github.com/shenikar/hospital_beds/internal/service"
)

// Колонки свободных коек; имя колонки берется только из этого набора
var bedColumns = map[models.BedType]string{
	models.BedEmergency: "beds_emergency",
	models.BedICU:       "beds_icu",
	models.BedDelivery:  "beds_delivery",
	models.BedGeneral:   "beds_general",
	models.BedPediatric: "beds_pediatric",
}

const uniqueViolation = "23505"

const hospitalColumns = `
	id,
	name,
	address,
	landmark,
	hospital_type,
	phone,
	email,
	ST_Y(location::geometry) AS latitude,
	ST_X(location::geometry) AS longitude,
	facilities,
	beds_emergency,
	beds_icu,
	beds_delivery,
	beds_general,
	beds_pediatric,
	admin_id,
	created_at,
	updated_at`

type PostgresHospitalRepository struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresHospitalRepository(db *pgxpool.Pool, timeout time.Duration) service.HospitalRepository {
	return &PostgresHospitalRepository{
		db:      db,
		timeout: timeout,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanHospital(row rowScanner) (*models.Hospital, error) {
	h := &models.Hospital{}
	var (
		lat, lon   *float64
		hType      string
		facilities []string
		beds       [5]int
	)
	err := row.Scan(
		&h.ID,
		&h.Name,
		&h.Address,
		&h.Landmark,
		&hType,
		&h.Contact.Phone,
		&h.Contact.Email,
		&lat,
		&lon,
		&facilities,
		&beds[0],
		&beds[1],
		&beds[2],
		&beds[3],
		&beds[4],
		&h.AdminID,
		&h.CreatedAt,
		&h.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	h.Type = models.HospitalType(hType)
	if lat != nil && lon != nil {
		h.Location = &models.Location{Latitude: *lat, Longitude: *lon}
	}
	if facilities == nil {
		facilities = []string{}
	}
	h.Facilities = facilities
	h.Beds = models.Beds{
		models.BedEmergency: beds[0],
		models.BedICU:       beds[1],
		models.BedDelivery:  beds[2],
		models.BedGeneral:   beds[3],
		models.BedPediatric: beds[4],
	}
	return h, nil
}

// locationArgs возвращает (lon, lat); для отсутствующей точки оба nil
func locationArgs(loc *models.Location) (*float64, *float64) {
	if loc == nil {
		return nil, nil
	}
	lon, lat := loc.Longitude, loc.Latitude
	return &lon, &lat
}

// ListAll возвращает все больницы
func (r *PostgresHospitalRepository) ListAll(ctx context.Context) ([]*models.Hospital, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := `SELECT` + hospitalColumns + ` FROM hospitals ORDER BY created_at, id;`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list hospitals: %w: %w", models.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	hospitals := make([]*models.Hospital, 0)
	for rows.Next() {
		h, err := scanHospital(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan hospital row: %w: %w", models.ErrStoreUnavailable, err)
		}
		hospitals = append(hospitals, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w: %w", models.ErrStoreUnavailable, err)
	}
	return hospitals, nil
}

// GetByID возвращает больницу по UUID; nil, если не найдена
func (r *PostgresHospitalRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Hospital, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := `SELECT` + hospitalColumns + ` FROM hospitals WHERE id = $1;`
	h, err := scanHospital(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get hospital by id: %w: %w", models.ErrStoreUnavailable, err)
	}
	return h, nil
}

// GetByOwner возвращает больницу администратора; nil, если ее нет
func (r *PostgresHospitalRepository) GetByOwner(ctx context.Context, adminID string) (*models.Hospital, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := `SELECT` + hospitalColumns + ` FROM hospitals WHERE admin_id = $1 ORDER BY created_at LIMIT 1;`
	h, err := scanHospital(r.db.QueryRow(ctx, query, adminID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get hospital by owner: %w: %w", models.ErrStoreUnavailable, err)
	}
	return h, nil
}

// Create вставляет больницу, идентификатор назначает база
func (r *PostgresHospitalRepository) Create(ctx context.Context, hospital *models.Hospital, adminID string) (uuid.UUID, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	lon, lat := locationArgs(hospital.Location)
	query := `
		INSERT INTO hospitals (
			name, address, landmark, hospital_type, phone, email, location, facilities,
			beds_emergency, beds_icu, beds_delivery, beds_general, beds_pediatric, admin_id
		)
		VALUES (
			$1, $2, $3, $4, $5, $6,
			CASE WHEN $7::float8 IS NULL OR $8::float8 IS NULL THEN NULL
				ELSE ST_SetSRID(ST_MakePoint($7, $8), 4326)::geography END,
			$9, $10, $11, $12, $13, $14, $15
		)
		RETURNING id, created_at, updated_at;
	`
	facilities := hospital.Facilities
	if facilities == nil {
		facilities = []string{}
	}

	var id uuid.UUID
	err := r.db.QueryRow(ctx, query,
		hospital.Name,
		hospital.Address,
		hospital.Landmark,
		string(hospital.Type),
		hospital.Contact.Phone,
		hospital.Contact.Email,
		lon,
		lat,
		facilities,
		hospital.Beds.Count(models.BedEmergency),
		hospital.Beds.Count(models.BedICU),
		hospital.Beds.Count(models.BedDelivery),
		hospital.Beds.Count(models.BedGeneral),
		hospital.Beds.Count(models.BedPediatric),
		adminID,
	).Scan(&id, &hospital.CreatedAt, &hospital.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return uuid.Nil, fmt.Errorf("failed to create hospital: %w", models.ErrAdminHasHospital)
		}
		return uuid.Nil, fmt.Errorf("failed to create hospital: %w: %w", models.ErrStoreUnavailable, err)
	}
	return id, nil
}

// Patch применяет частичное обновление в транзакции с блокировкой строки
func (r *PostgresHospitalRepository) Patch(ctx context.Context, id uuid.UUID, patch models.HospitalPatch) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		query := `SELECT` + hospitalColumns + ` FROM hospitals WHERE id = $1 FOR UPDATE;`
		h, err := scanHospital(tx.QueryRow(ctx, query, id))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return models.ErrNotFound
			}
			return err
		}

		patch.Apply(h)
		if h.Facilities == nil {
			h.Facilities = []string{}
		}
		lon, lat := locationArgs(h.Location)

		update := `
			UPDATE hospitals SET
				name = $1,
				address = $2,
				landmark = $3,
				hospital_type = $4,
				phone = $5,
				email = $6,
				location = CASE WHEN $7::float8 IS NULL OR $8::float8 IS NULL THEN NULL
					ELSE ST_SetSRID(ST_MakePoint($7, $8), 4326)::geography END,
				facilities = $9,
				beds_emergency = $10,
				beds_icu = $11,
				beds_delivery = $12,
				beds_general = $13,
				beds_pediatric = $14,
				updated_at = NOW()
			WHERE id = $15;
		`
		_, err = tx.Exec(ctx, update,
			h.Name,
			h.Address,
			h.Landmark,
			string(h.Type),
			h.Contact.Phone,
			h.Contact.Email,
			lon,
			lat,
			h.Facilities,
			h.Beds.Count(models.BedEmergency),
			h.Beds.Count(models.BedICU),
			h.Beds.Count(models.BedDelivery),
			h.Beds.Count(models.BedGeneral),
			h.Beds.Count(models.BedPediatric),
			id,
		)
		return err
	})
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return fmt.Errorf("hospital with id %s not found for update: %w", id, models.ErrNotFound)
		}
		return fmt.Errorf("failed to update hospital: %w: %w", models.ErrStoreUnavailable, err)
	}
	return nil
}

// Delete удаляет больницу вместе с ее журналом бронирований
func (r *PostgresHospitalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cmdTag, err := r.db.Exec(ctx, `DELETE FROM hospitals WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete hospital: %w: %w", models.ErrStoreUnavailable, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("hospital with id %s not found for delete: %w", id, models.ErrNotFound)
	}
	return nil
}

// DecrementBedIfPositive списывает одну койку одним условным UPDATE.
// Строка блокируется PostgreSQL, поэтому параллельные вызовы не уводят счетчик ниже нуля.
func (r *PostgresHospitalRepository) DecrementBedIfPositive(ctx context.Context, id uuid.UUID, bedType models.BedType) (bool, error) {
	column, ok := bedColumns[bedType]
	if !ok {
		return false, fmt.Errorf("failed to decrement bed: %w: %q", models.ErrInvalidBedType, bedType)
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := fmt.Sprintf(`
		UPDATE hospitals SET
			%[1]s = %[1]s - 1,
			updated_at = NOW()
		WHERE id = $1 AND %[1]s > 0;
	`, column)
	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("failed to decrement bed: %w: %w", models.ErrStoreUnavailable, err)
	}
	return cmdTag.RowsAffected() == 1, nil
}

// SaveReservationLog сохраняет запись журнала бронирований
func (r *PostgresHospitalRepository) SaveReservationLog(ctx context.Context, entry *models.ReservationLog) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := `
		INSERT INTO reservation_log (hospital_id, bed_type, patient_name, reserved_at)
		VALUES ($1, $2, $3, $4) RETURNING id;
	`
	err := r.db.QueryRow(ctx, query,
		entry.HospitalID,
		string(entry.BedType),
		entry.PatientName,
		entry.ReservedAt,
	).Scan(&entry.ID)
	if err != nil {
		return fmt.Errorf("failed to save reservation log: %w: %w", models.ErrStoreUnavailable, err)
	}
	return nil
}

// CountReservations возвращает число бронирований за последние minutes минут
func (r *PostgresHospitalRepository) CountReservations(ctx context.Context, minutes int) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := `
		SELECT COUNT(*)
		FROM reservation_log
		WHERE reserved_at >= NOW() - ($1 * INTERVAL '1 minute');
	`
	var count int
	if err := r.db.QueryRow(ctx, query, minutes).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count reservations: %w: %w", models.ErrStoreUnavailable, err)
	}
	return count, nil
}
