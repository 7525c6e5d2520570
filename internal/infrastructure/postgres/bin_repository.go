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

var _ repository.BinRepository = (*BinRepo)(nil)

// BinRepo implementación del puerto BinRepository sobre PostgreSQL.
type BinRepo struct {
	pool *pgxpool.Pool
}

// NewBinRepository construye el adaptador de persistencia para bins.
func NewBinRepository(pool *pgxpool.Pool) *BinRepo {
	return &BinRepo{pool: pool}
}

// Create persiste un nuevo bin.
func (r *BinRepo) Create(bin *entity.Bin) error {
	query := `
		INSERT INTO bins (id, zone_id, code, created_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.pool.Exec(context.Background(), query,
		bin.ID, bin.ZoneID, bin.Code, bin.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert bin: %w", err)
	}
	return nil
}

// GetByID obtiene un bin por ID.
func (r *BinRepo) GetByID(id string) (*entity.Bin, error) {
	query := `
		SELECT id, zone_id, code, created_at
		FROM bins WHERE id = $1`
	var b entity.Bin
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&b.ID, &b.ZoneID, &b.Code, &b.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bin: %w", err)
	}
	return &b, nil
}

// ListByZone lista los bins de una zona.
func (r *BinRepo) ListByZone(zoneID string) ([]*entity.Bin, error) {
	query := `
		SELECT id, zone_id, code, created_at
		FROM bins WHERE zone_id = $1 ORDER BY code`
	rows, err := r.pool.Query(context.Background(), query, zoneID)
	if err != nil {
		return nil, fmt.Errorf("list bins: %w", err)
	}
	defer rows.Close()
	var list []*entity.Bin
	for rows.Next() {
		var b entity.Bin
		if err := rows.Scan(&b.ID, &b.ZoneID, &b.Code, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan bin: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}
