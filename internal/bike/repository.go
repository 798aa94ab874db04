package bike

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, b *Bike) error
	GetByID(ctx context.Context, id int64) (*Bike, error)
	List(ctx context.Context) ([]*Bike, error)
	Update(ctx context.Context, b *Bike) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)

	// UpdateImageByName rewrites the image of every bike with the given
	// name whose current image matches oldPrefix. Used by the startup
	// migration of legacy placeholder paths.
	UpdateImageByName(ctx context.Context, name, oldPrefix, newImage string) (int64, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, b *Bike) error {
	const query = `
		INSERT INTO public.bikes (name, type, price_per_hour, image, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	err := r.pool.QueryRow(ctx, query, b.Name, b.Type, b.PricePerHour, b.Image, b.Description).
		Scan(&b.ID, &b.CreatedAt)
	if err != nil {
		return fmt.Errorf("create bike failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id int64) (*Bike, error) {
	const query = `
		SELECT id, name, type, price_per_hour, image, description, created_at
		FROM public.bikes
		WHERE id = $1
	`
	row := r.pool.QueryRow(ctx, query, id)

	var b Bike
	if err := row.Scan(&b.ID, &b.Name, &b.Type, &b.PricePerHour, &b.Image, &b.Description, &b.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get bike failed: %w", err)
	}
	return &b, nil
}

func (r *pgxRepository) List(ctx context.Context) ([]*Bike, error) {
	const query = `
		SELECT id, name, type, price_per_hour, image, description, created_at
		FROM public.bikes
		ORDER BY id ASC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list bikes failed: %w", err)
	}
	defer rows.Close()

	var bikes []*Bike
	for rows.Next() {
		var b Bike
		if err := rows.Scan(&b.ID, &b.Name, &b.Type, &b.PricePerHour, &b.Image, &b.Description, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan bike failed: %w", err)
		}
		bikes = append(bikes, &b)
	}

	return bikes, nil
}

func (r *pgxRepository) Update(ctx context.Context, b *Bike) error {
	const query = `
		UPDATE public.bikes
		SET name = $1, type = $2, price_per_hour = $3, image = $4, description = $5
		WHERE id = $6
	`
	ct, err := r.pool.Exec(ctx, query, b.Name, b.Type, b.PricePerHour, b.Image, b.Description, b.ID)
	if err != nil {
		return fmt.Errorf("update bike failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id int64) error {
	const query = `
		DELETE FROM public.bikes
		WHERE id = $1
	`
	ct, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete bike failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Count(ctx context.Context) (int, error) {
	const query = `SELECT count(*) FROM public.bikes`

	var n int
	if err := r.pool.QueryRow(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("count bikes failed: %w", err)
	}
	return n, nil
}

func (r *pgxRepository) UpdateImageByName(ctx context.Context, name, oldPrefix, newImage string) (int64, error) {
	const query = `
		UPDATE public.bikes
		SET image = $1
		WHERE name = $2 AND image LIKE $3 || '%'
	`
	ct, err := r.pool.Exec(ctx, query, newImage, name, oldPrefix)
	if err != nil {
		return 0, fmt.Errorf("migrate bike image failed: %w", err)
	}
	return ct.RowsAffected(), nil
}
