package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, b *Booking) error
	ListByUser(ctx context.Context, userID string) ([]*Booking, error)

	// ListAll returns every booking across all owners, most recent first,
	// with the owner's name and email joined in.
	ListAll(ctx context.Context) ([]*Booking, error)

	// UpdateStatus overwrites the status of the booking with the given id,
	// scoped to the owning user. Returns ErrNotFound when no booking with
	// that id is owned by userID.
	UpdateStatus(ctx context.Context, id, userID string, status Status) (*Booking, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

var bookingColumns = []string{
	"b.id", "b.user_id", "b.bike_id", "b.bike_name", "b.bike_type",
	"b.customer_name", "b.phone", "b.address", "b.license",
	"b.date", "b.start_time", "b.end_time",
	"b.price_per_hour", "b.total_amount", "b.status", "b.created_at",
}

func scanBooking(row pgx.Row, b *Booking) error {
	return row.Scan(
		&b.ID, &b.UserID, &b.BikeID, &b.BikeName, &b.BikeType,
		&b.CustomerName, &b.Phone, &b.Address, &b.License,
		&b.Date, &b.StartTime, &b.EndTime,
		&b.PricePerHour, &b.TotalAmount, &b.Status, &b.CreatedAt,
	)
}

func (r *pgxRepository) Create(ctx context.Context, b *Booking) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.bookings").
		Columns(
			"user_id", "bike_id", "bike_name", "bike_type",
			"customer_name", "phone", "address", "license",
			"date", "start_time", "end_time",
			"price_per_hour", "total_amount", "status",
		).
		Values(
			b.UserID, b.BikeID, b.BikeName, b.BikeType,
			b.CustomerName, b.Phone, b.Address, b.License,
			b.Date, b.StartTime, b.EndTime,
			b.PricePerHour, b.TotalAmount, b.Status,
		).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create booking query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&b.ID, &b.CreatedAt); err != nil {
		return fmt.Errorf("create booking failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) ListByUser(ctx context.Context, userID string) ([]*Booking, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(bookingColumns...).
		From("public.bookings b").
		Where(squirrel.Eq{"b.user_id": userID}).
		OrderBy("b.created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	for rows.Next() {
		var b Booking
		if err := scanBooking(rows, &b); err != nil {
			return nil, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, &b)
	}

	return bookings, nil
}

func (r *pgxRepository) ListAll(ctx context.Context) ([]*Booking, error) {
	// Demo-admin owners have no users row, hence the LEFT JOIN and the
	// COALESCEd owner fields.
	cols := append(append([]string{}, bookingColumns...),
		"COALESCE(u.name, '')", "COALESCE(u.email, '')")

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(cols...).
		From("public.bookings b").
		LeftJoin("public.users u ON u.id::text = b.user_id").
		OrderBy("b.created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list all bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list all bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	for rows.Next() {
		var b Booking
		if err := rows.Scan(
			&b.ID, &b.UserID, &b.BikeID, &b.BikeName, &b.BikeType,
			&b.CustomerName, &b.Phone, &b.Address, &b.License,
			&b.Date, &b.StartTime, &b.EndTime,
			&b.PricePerHour, &b.TotalAmount, &b.Status, &b.CreatedAt,
			&b.OwnerName, &b.OwnerEmail,
		); err != nil {
			return nil, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, &b)
	}

	return bookings, nil
}

func (r *pgxRepository) UpdateStatus(ctx context.Context, id, userID string, status Status) (*Booking, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.bookings b").
		Set("status", status).
		Where(squirrel.Eq{"b.id": id, "b.user_id": userID}).
		Suffix("RETURNING " + strings.Join(bookingColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update status query failed: %w", err)
	}

	var b Booking
	if err := scanBooking(r.pool.QueryRow(ctx, query, args...), &b); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update booking status failed: %w", err)
	}
	return &b, nil
}
