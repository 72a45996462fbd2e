package repository

import (
	"context"
	"errors"
	"fmt"

	"campus-map-api/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// nearestBuildingRadiusMeters bounds FindNearestBuilding.
const nearestBuildingRadiusMeters = 1000.0

// DBTX is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repository implements building and location ping storage on PostgreSQL/PostGIS
type Repository struct {
	db DBTX
}

// NewRepository creates a new PostgreSQL repository
func NewRepository(db DBTX) *Repository {
	return &Repository{db: db}
}

// EnsureSchema creates the tables and indexes if they do not exist yet.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	query := `
	CREATE EXTENSION IF NOT EXISTS postgis;

	CREATE TABLE IF NOT EXISTS buildings (
		name VARCHAR(255) PRIMARY KEY,
		description TEXT NOT NULL DEFAULT '',
		icon_name VARCHAR(64) NOT NULL DEFAULT '',
		geom GEOGRAPHY(POINT, 4326) NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	CREATE INDEX IF NOT EXISTS buildings_geom_idx ON buildings USING GIST (geom);

	CREATE TABLE IF NOT EXISTS location_pings (
		id UUID PRIMARY KEY,
		accuracy DOUBLE PRECISION,
		recorded_at TIMESTAMPTZ NOT NULL,
		geom GEOGRAPHY(POINT, 4326) NOT NULL
	);
	CREATE INDEX IF NOT EXISTS location_pings_recorded_at_idx ON location_pings (recorded_at);
	`
	if _, err := r.db.Exec(ctx, query); err != nil {
		return fmt.Errorf("repository: failed to create schema: %w", err)
	}
	return nil
}

// UpsertBuilding inserts the building or replaces the one with the same name
func (r *Repository) UpsertBuilding(ctx context.Context, b models.Building) error {
	sql := `
		INSERT INTO buildings (name, description, icon_name, geom, updated_at)
		VALUES ($1, $2, $3, ST_SetSRID(ST_MakePoint($4, $5), 4326)::geography, now())
		ON CONFLICT (name) DO UPDATE SET
			description = EXCLUDED.description,
			icon_name = EXCLUDED.icon_name,
			geom = EXCLUDED.geom,
			updated_at = now()
	`
	if _, err := r.db.Exec(ctx, sql, b.Name, b.Description, b.IconName, b.Longitude, b.Latitude); err != nil {
		return fmt.Errorf("repository: failed to upsert building: %w", err)
	}
	return nil
}

// ListBuildings returns all buildings ordered by name
func (r *Repository) ListBuildings(ctx context.Context) ([]models.Building, error) {
	sql := `
		SELECT
			name,
			description,
			icon_name,
			ST_Y(geom::geometry) AS latitude,
			ST_X(geom::geometry) AS longitude
		FROM buildings
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to execute list query: %w", err)
	}
	defer rows.Close()

	buildings := []models.Building{}
	for rows.Next() {
		b, err := scanBuilding(rows)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan building: %w", err)
		}
		buildings = append(buildings, *b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return buildings, nil
}

// GetBuilding returns the building with the given name
func (r *Repository) GetBuilding(ctx context.Context, name string) (*models.Building, error) {
	sql := `
		SELECT
			name,
			description,
			icon_name,
			ST_Y(geom::geometry) AS latitude,
			ST_X(geom::geometry) AS longitude
		FROM buildings
		WHERE name = $1
	`

	b, err := scanBuilding(r.db.QueryRow(ctx, sql, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("repository: building %q: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("repository: failed to get building: %w", err)
	}
	return b, nil
}

// FindNearestBuilding performs a spatial query to find the nearest building to the given coordinates
func (r *Repository) FindNearestBuilding(ctx context.Context, lat, lon float64) (*models.Building, error) {
	sql := `
		SELECT
			name,
			description,
			icon_name,
			ST_Y(geom::geometry) AS latitude,
			ST_X(geom::geometry) AS longitude
		FROM buildings
		WHERE ST_DWithin(geom, ST_SetSRID(ST_MakePoint($2, $1), 4326)::geography, $3)
		ORDER BY geom <-> ST_SetSRID(ST_MakePoint($2, $1), 4326)::geography
		LIMIT 1
	`

	b, err := scanBuilding(r.db.QueryRow(ctx, sql, lat, lon, nearestBuildingRadiusMeters))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("repository: no building near coordinates: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("repository: failed to execute spatial query: %w", err)
	}
	return b, nil
}

// InsertLocationPing appends a device position
func (r *Repository) InsertLocationPing(ctx context.Context, ping models.LocationPing) error {
	sql := `
		INSERT INTO location_pings (id, accuracy, recorded_at, geom)
		VALUES ($1, $2, $3, ST_SetSRID(ST_MakePoint($4, $5), 4326)::geography)
	`
	_, err := r.db.Exec(ctx, sql,
		ping.ID,
		ping.Accuracy,
		ping.RecordedAt,
		ping.Coordinate.Longitude,
		ping.Coordinate.Latitude,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to insert location ping: %w", err)
	}
	return nil
}

func scanBuilding(row pgx.Row) (*models.Building, error) {
	var b models.Building
	err := row.Scan(
		&b.Name,
		&b.Description,
		&b.IconName,
		&b.Latitude,
		&b.Longitude,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
