package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/maxjack20001-bot/logistics-system/internal/domain/entity"
	"github.com/maxjack20001-bot/logistics-system/internal/domain/repository"
)

var _ repository.TripRepository = (*TripRepo)(nil)

// TripRepo implementación del puerto TripRepository sobre PostgreSQL.
type TripRepo struct {
	pool *pgxpool.Pool
}

// NewTripRepository construye el adaptador de persistencia para viajes.
func NewTripRepository(pool *pgxpool.Pool) *TripRepo {
	return &TripRepo{pool: pool}
}

// Create persiste un nuevo viaje.
func (r *TripRepo) Create(trip *entity.Trip) error {
	query := `
		INSERT INTO trips (id, order_id, vehicle, driver, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(context.Background(), query,
		trip.ID, trip.OrderID, trip.Vehicle, trip.Driver, trip.Status,
		trip.CreatedAt, trip.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert trip: %w", err)
	}
	return nil
}

// GetByID obtiene un viaje por ID.
func (r *TripRepo) GetByID(id string) (*entity.Trip, error) {
	query := `
		SELECT id, order_id, vehicle, driver, status, created_at, updated_at
		FROM trips WHERE id = $1`
	var t entity.Trip
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.OrderID, &t.Vehicle, &t.Driver, &t.Status, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get trip: %w", err)
	}
	return &t, nil
}

// List lista viajes con paginación, recientes primero.
func (r *TripRepo) List(limit, offset int) ([]*entity.Trip, error) {
	query := `
		SELECT id, order_id, vehicle, driver, status, created_at, updated_at
		FROM trips ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list trips: %w", err)
	}
	defer rows.Close()
	var list []*entity.Trip
	for rows.Next() {
		var t entity.Trip
		if err := rows.Scan(&t.ID, &t.OrderID, &t.Vehicle, &t.Driver, &t.Status,
			&t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan trip: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// UpdateStatus cambia el estado de un viaje.
func (r *TripRepo) UpdateStatus(id, status string) error {
	query := `UPDATE trips SET status = $2, updated_at = now() WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query, id, status)
	if err != nil {
		return fmt.Errorf("update trip status: %w", err)
	}
	return nil
}
