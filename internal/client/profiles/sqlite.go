package profiles

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/HassanIT2003/Planting-Optimisation-Tool/internal/client/models"
	"github.com/HassanIT2003/Planting-Optimisation-Tool/internal/dbx"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or
// *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Get returns the profile stored under id, or ErrNotFound.
func (r *SQLiteRepository) Get(ctx context.Context, id string) (models.FarmProfile, error) {
	query := `select latitude, longitude, ph, soil_type, rainfall, temperature, altitude
		from farms where id=?`

	var p models.FarmProfile
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.Latitude, &p.Longitude, &p.PH, &p.SoilType, &p.Rainfall, &p.Temperature, &p.Altitude)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.FarmProfile{}, ErrNotFound
		}
		return models.FarmProfile{}, fmt.Errorf("failed to select farm: %w", err)
	}
	return p, nil
}

// Upsert stores the profile under id. On conflict all columns are replaced.
func (r *SQLiteRepository) Upsert(ctx context.Context, id string, p models.FarmProfile) error {
	query := `insert into farms (id, latitude, longitude, ph, soil_type, rainfall, temperature, altitude)
		values (?, ?, ?, ?, ?, ?, ?, ?)
		on conflict(id) do update set latitude = excluded.latitude,
			longitude = excluded.longitude,
			ph = excluded.ph,
			soil_type = excluded.soil_type,
			rainfall = excluded.rainfall,
			temperature = excluded.temperature,
			altitude = excluded.altitude
	`
	_, err := r.db.ExecContext(ctx, query,
		id, p.Latitude, p.Longitude, p.PH, p.SoilType, p.Rainfall, p.Temperature, p.Altitude)
	if err != nil {
		return fmt.Errorf("failed to upsert farm: %w", err)
	}
	return nil
}

// UpsertBatch stores all entries in a single transaction when the repository
// is backed by *sql.DB, so a partially failed merge never leaves the registry
// half-updated. Over an existing transaction it upserts sequentially.
func (r *SQLiteRepository) UpsertBatch(ctx context.Context, entries []Entry) error {
	upsertAll := func(ctx context.Context, repo *SQLiteRepository) error {
		for _, e := range entries {
			if err := repo.Upsert(ctx, e.ID, e.Profile); err != nil {
				return err
			}
		}
		return nil
	}

	db, ok := r.db.(*sql.DB)
	if !ok {
		return upsertAll(ctx, r)
	}

	return dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return upsertAll(ctx, NewSQLiteRepository(tx))
	})
}

// Count returns the number of registered profiles.
func (r *SQLiteRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `select count(*) from farms`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count farms: %w", err)
	}
	return n, nil
}

// IDs returns all registered ids, numeric ids first in numeric order.
func (r *SQLiteRepository) IDs(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `select id from farms order by cast(id as integer), id`)
	if err != nil {
		return nil, fmt.Errorf("failed to select farm ids: %w", err)
	}
	defer rows.Close()

	var result []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		result = append(result, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
