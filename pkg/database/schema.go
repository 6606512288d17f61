package database

import (
	"context"
	"fmt"
)

// Schema statements run at startup. All of them are idempotent so
// restarts never fail or duplicate structure. The UNIQUE pair on
// (route_id, seat_number) is the seat-exclusivity invariant: two
// concurrent inserts for the same seat can never both commit.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		username TEXT UNIQUE NOT NULL,
		password TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'user'
	)`,
	`CREATE TABLE IF NOT EXISTS routes (
		id BIGSERIAL PRIMARY KEY,
		origin TEXT NOT NULL,
		destination TEXT NOT NULL,
		date TEXT NOT NULL,
		departure_time TEXT NOT NULL,
		arrival_time TEXT NOT NULL,
		price DOUBLE PRECISION NOT NULL,
		status TEXT NOT NULL DEFAULT 'scheduled'
	)`,
	`CREATE TABLE IF NOT EXISTS bookings (
		id BIGSERIAL PRIMARY KEY,
		route_id BIGINT NOT NULL REFERENCES routes(id),
		seat_number INT NOT NULL,
		passenger_name TEXT NOT NULL,
		passenger_phone TEXT NOT NULL,
		booking_date TIMESTAMPTZ NOT NULL DEFAULT now(),
		UNIQUE (route_id, seat_number)
	)`,
	// Additive migrations for databases created before these columns existed.
	`ALTER TABLE routes ADD COLUMN IF NOT EXISTS status TEXT NOT NULL DEFAULT 'scheduled'`,
	`ALTER TABLE users ADD COLUMN IF NOT EXISTS role TEXT NOT NULL DEFAULT 'user'`,
}

// InitSchema creates the tables and constraints if they do not exist.
func InitSchema(ctx context.Context, db PgxIface) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}
	return nil
}
