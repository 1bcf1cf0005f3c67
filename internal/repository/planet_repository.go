package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/christopherjparrett/TheUniverse/internal/domain"
)

// PlanetRepository encapsulates planet persistence.
type PlanetRepository interface {
	Create(ctx context.Context, planet *domain.Planet) error
	Update(ctx context.Context, planet *domain.Planet) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Planet, error)
	GetByName(ctx context.Context, name string) (*domain.Planet, error)
	List(ctx context.Context) ([]domain.Planet, error)
	Count(ctx context.Context) (int64, error)
}

type planetRepository struct {
	pool *pgxpool.Pool
}

// NewPlanetRepository instantiates repository.
func NewPlanetRepository(pool *pgxpool.Pool) PlanetRepository {
	return &planetRepository{pool: pool}
}

func (r *planetRepository) Create(ctx context.Context, planet *domain.Planet) error {
	const query = `
        INSERT INTO planets (name, planet_type, distance_from_sun, radius, description, mass, orbital_period)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		planet.Name,
		planet.PlanetType,
		planet.DistanceFromSun,
		planet.Radius,
		planet.Description,
		planet.Mass,
		planet.OrbitalPeriod,
	).Scan(&planet.ID, &planet.CreatedAt, &planet.UpdatedAt)
}

func (r *planetRepository) Update(ctx context.Context, planet *domain.Planet) error {
	const query = `
        UPDATE planets SET name=$1, planet_type=$2, distance_from_sun=$3, radius=$4,
            description=$5, mass=$6, orbital_period=$7, updated_at=NOW()
        WHERE id=$8
        RETURNING updated_at`
	if err := r.pool.QueryRow(ctx, query,
		planet.Name,
		planet.PlanetType,
		planet.DistanceFromSun,
		planet.Radius,
		planet.Description,
		planet.Mass,
		planet.OrbitalPeriod,
		planet.ID,
	).Scan(&planet.UpdatedAt); err != nil {
		return err
	}
	return nil
}

func (r *planetRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM planets WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *planetRepository) GetByID(ctx context.Context, id int64) (*domain.Planet, error) {
	const query = `
        SELECT id, name, planet_type, distance_from_sun, radius, description, mass, orbital_period, created_at, updated_at
        FROM planets WHERE id=$1`
	return r.fetchSingle(ctx, query, id)
}

func (r *planetRepository) GetByName(ctx context.Context, name string) (*domain.Planet, error) {
	const query = `
        SELECT id, name, planet_type, distance_from_sun, radius, description, mass, orbital_period, created_at, updated_at
        FROM planets WHERE name=$1`
	return r.fetchSingle(ctx, query, name)
}

func (r *planetRepository) List(ctx context.Context) ([]domain.Planet, error) {
	const query = `
        SELECT id, name, planet_type, distance_from_sun, radius, description, mass, orbital_period, created_at, updated_at
        FROM planets ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	planets := make([]domain.Planet, 0)
	for rows.Next() {
		var planet domain.Planet
		if err := rows.Scan(
			&planet.ID,
			&planet.Name,
			&planet.PlanetType,
			&planet.DistanceFromSun,
			&planet.Radius,
			&planet.Description,
			&planet.Mass,
			&planet.OrbitalPeriod,
			&planet.CreatedAt,
			&planet.UpdatedAt,
		); err != nil {
			return nil, err
		}
		planets = append(planets, planet)
	}
	return planets, rows.Err()
}

func (r *planetRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM planets`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *planetRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.Planet, error) {
	var planet domain.Planet
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&planet.ID,
		&planet.Name,
		&planet.PlanetType,
		&planet.DistanceFromSun,
		&planet.Radius,
		&planet.Description,
		&planet.Mass,
		&planet.OrbitalPeriod,
		&planet.CreatedAt,
		&planet.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &planet, nil
}
