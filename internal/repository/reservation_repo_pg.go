package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Domenick1991/riverbooking/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReservationRepository interface {
	Create(ctx context.Context, reservation *domain.Reservation) error
	Cancel(ctx context.Context, id string) (bool, error)
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	OccupiedSuites(ctx context.Context, travelDate string) (map[string]struct{}, error)
	ListConfirmed(ctx context.Context) ([]domain.Reservation, error)
}

type PGReservationRepository struct {
	db *pgxpool.Pool
}

func NewReservationRepository(db *pgxpool.Pool) ReservationRepository {
	return &PGReservationRepository{db: db}
}

const reservationColumns = `id, created_at, origin, destination, travel_date, suite_category, suite_id, passengers, phone, total_cents, deposit_cents, payment_method, payment_date, status`

func (r *PGReservationRepository) Create(ctx context.Context, reservation *domain.Reservation) error {
	passengers, err := json.Marshal(reservation.Passengers)
	if err != nil {
		return fmt.Errorf("marshal passengers: %w", err)
	}

	reservation.Status = domain.ReservationStatusConfirmed
	err = r.db.QueryRow(ctx, `INSERT INTO reservations (id, origin, destination, travel_date, suite_category, suite_id, passengers, phone, total_cents, deposit_cents, payment_method, payment_date, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING created_at`,
		reservation.ID, reservation.Origin, reservation.Destination, reservation.TravelDate,
		reservation.SuiteCategory, reservation.SuiteID, passengers, reservation.Phone,
		reservation.TotalCents, reservation.DepositCents, reservation.PaymentMethod,
		reservation.PaymentDate, reservation.Status).
		Scan(&reservation.CreatedAt)
	if err != nil {
		if isSuiteTaken(err) {
			return domain.ErrSuiteTaken
		}
		return err
	}
	return nil
}

// isSuiteTaken recognizes a unique violation on the confirmed
// suite/date index. Other unique violations (an id collision on the
// primary key, say) stay storage errors rather than turning into a
// bogus booking conflict.
func isSuiteTaken(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == suiteDateConfirmedIndex
}

func (r *PGReservationRepository) Cancel(ctx context.Context, id string) (bool, error) {
	cmd, err := r.db.Exec(ctx, `UPDATE reservations SET status=$1 WHERE id=$2 AND status=$3`,
		domain.ReservationStatusCancelled, id, domain.ReservationStatusConfirmed)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}

func (r *PGReservationRepository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	row := r.db.QueryRow(ctx, `SELECT `+reservationColumns+` FROM reservations WHERE id=$1`, id)
	reservation, err := scanReservation(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return reservation, nil
}

func (r *PGReservationRepository) OccupiedSuites(ctx context.Context, travelDate string) (map[string]struct{}, error) {
	rows, err := r.db.Query(ctx, `SELECT suite_id FROM reservations WHERE travel_date=$1 AND status=$2`,
		travelDate, domain.ReservationStatusConfirmed)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	occupied := make(map[string]struct{})
	for rows.Next() {
		var suiteID string
		if err := rows.Scan(&suiteID); err != nil {
			return nil, err
		}
		occupied[suiteID] = struct{}{}
	}
	return occupied, rows.Err()
}

func (r *PGReservationRepository) ListConfirmed(ctx context.Context) ([]domain.Reservation, error) {
	rows, err := r.db.Query(ctx, `SELECT `+reservationColumns+` FROM reservations WHERE status=$1`,
		domain.ReservationStatusConfirmed)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reservations := make([]domain.Reservation, 0)
	for rows.Next() {
		reservation, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		reservations = append(reservations, *reservation)
	}
	return reservations, rows.Err()
}

func scanReservation(row pgx.Row) (*domain.Reservation, error) {
	var (
		reservation domain.Reservation
		passengers  []byte
	)
	if err := row.Scan(&reservation.ID, &reservation.CreatedAt, &reservation.Origin, &reservation.Destination,
		&reservation.TravelDate, &reservation.SuiteCategory, &reservation.SuiteID, &passengers,
		&reservation.Phone, &reservation.TotalCents, &reservation.DepositCents,
		&reservation.PaymentMethod, &reservation.PaymentDate, &reservation.Status); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(passengers, &reservation.Passengers); err != nil {
		return nil, fmt.Errorf("unmarshal passengers: %w", err)
	}
	return &reservation, nil
}

var _ ReservationRepository = (*PGReservationRepository)(nil)
