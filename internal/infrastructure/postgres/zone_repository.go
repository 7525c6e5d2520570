package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/maxjack20001-bot/logistics-system/internal/domain"
	"github.com/maxjack20001-bot/logistics-system/internal/domain/entity"
	"github.com/maxjack20001-bot/logistics-system/internal/domain/repository"
)

var _ repository.ZoneRepository = (*ZoneRepo)(nil)

// ZoneRepo implementación del puerto ZoneRepository sobre PostgreSQL.
type ZoneRepo struct {
	pool *pgxpool.Pool
}

// NewZoneRepository construye el adaptador de persistencia para zonas.
func NewZoneRepository(pool *pgxpool.Pool) *ZoneRepo {
	return &ZoneRepo{pool: pool}
}

// Create persiste una nueva zona.
func (r *ZoneRepo) Create(zone *entity.Zone) error {
	query := `
		INSERT INTO zones (id, warehouse_id, name, created_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.pool.Exec(context.Background(), query,
		zone.ID, zone.WarehouseID, zone.Name, zone.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert zone: %w", err)
	}
	return nil
}

// GetByID obtiene una zona por ID.
func (r *ZoneRepo) GetByID(id string) (*entity.Zone, error) {
	query := `
		SELECT id, warehouse_id, name, created_at
		FROM zones WHERE id = $1`
	var z entity.Zone
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&z.ID, &z.WarehouseID, &z.Name, &z.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get zone: %w", err)
	}
	return &z, nil
}

// ListByWarehouse lista las zonas de una bodega.
func (r *ZoneRepo) ListByWarehouse(warehouseID string) ([]*entity.Zone, error) {
	query := `
		SELECT id, warehouse_id, name, created_at
		FROM zones WHERE warehouse_id = $1 ORDER BY name`
	rows, err := r.pool.Query(context.Background(), query, warehouseID)
	if err != nil {
		return nil, fmt.Errorf("list zones: %w", err)
	}
	defer rows.Close()
	var list []*entity.Zone
	for rows.Next() {
		var z entity.Zone
		if err := rows.Scan(&z.ID, &z.WarehouseID, &z.Name, &z.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan zone: %w", err)
		}
		list = append(list, &z)
	}
	return list, rows.Err()
}
