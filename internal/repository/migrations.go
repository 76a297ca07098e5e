package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// The partial unique index is what keeps double bookings out: the
// conflict check and the insert become a single atomic unit inside
// postgres, so two racing bookings for the same suite and date can
// never both commit. Cancelled rows fall outside the index, which is
// what lets a cancelled suite/date pair be rebooked.
const suiteDateConfirmedIndex = "idx_reservations_suite_date_confirmed"

const schemaSQL = `
CREATE TABLE IF NOT EXISTS reservations (
	id TEXT PRIMARY KEY,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	origin TEXT NOT NULL,
	destination TEXT NOT NULL,
	travel_date TEXT NOT NULL,
	suite_category TEXT NOT NULL,
	suite_id TEXT NOT NULL,
	passengers JSONB NOT NULL,
	phone TEXT NOT NULL,
	total_cents BIGINT NOT NULL,
	deposit_cents BIGINT NOT NULL,
	payment_method TEXT NOT NULL,
	payment_date TEXT NOT NULL,
	status TEXT NOT NULL DEFAULT 'CONFIRMED'
);

CREATE UNIQUE INDEX IF NOT EXISTS ` + suiteDateConfirmedIndex + `
	ON reservations(suite_id, travel_date) WHERE status = 'CONFIRMED';

CREATE INDEX IF NOT EXISTS idx_reservations_travel_date
	ON reservations(travel_date, status);
`

// Migrate initializes the schema. Safe to run against an existing
// database; it never drops or rewrites committed rows.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, schemaSQL)
	return err
}
