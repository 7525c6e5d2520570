package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/maxjack20001-bot/logistics-system/internal/domain/entity"
	"github.com/maxjack20001-bot/logistics-system/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del libro de movimientos sobre PostgreSQL
// (usable con pool o tx). Solo inserta y lee: el libro es append-only.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un movimiento.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	query := `
		INSERT INTO movements (id, item_id, type, quantity, partner, bin_id, unit_cost, date, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.ItemID, movement.Type, movement.Quantity,
		movement.Partner, movement.BinID, movement.UnitCost,
		movement.Date, movement.CreatedAt, movement.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("create movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID.
func (r *MovementRepo) GetByID(id string) (*entity.Movement, error) {
	query := `
		SELECT id, item_id, type, quantity, partner, bin_id, unit_cost, date, created_at, created_by
		FROM movements WHERE id = $1`
	m, err := scanMovement(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return m, nil
}

// List lista movimientos, recientes primero; a igual fecha, INBOUND antes que
// OUTBOUND. itemID vacío lista todo el libro.
func (r *MovementRepo) List(itemID string, limit, offset int) ([]*entity.Movement, error) {
	query := `
		SELECT id, item_id, type, quantity, partner, bin_id, unit_cost, date, created_at, created_by
		FROM movements`
	args := []any{}
	pos := 1
	if itemID != "" {
		query += fmt.Sprintf(" WHERE item_id = $%d", pos)
		args = append(args, itemID)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY date DESC, type ASC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// Balance calcula sum(INBOUND) - sum(OUTBOUND) sobre el libro para un ítem.
// binID vacío suma sobre todas las ubicaciones (saldo global); sin
// movimientos el resultado es 0.
func (r *MovementRepo) Balance(itemID, binID string) (int64, error) {
	query := `
		SELECT COALESCE(SUM(CASE WHEN type = 'INBOUND' THEN quantity ELSE -quantity END), 0)
		FROM movements WHERE item_id = $1`
	args := []any{itemID}
	if binID != "" {
		query += " AND bin_id = $2"
		args = append(args, binID)
	}
	var balance int64
	if err := r.q.QueryRow(context.Background(), query, args...).Scan(&balance); err != nil {
		return 0, fmt.Errorf("balance: %w", err)
	}
	return balance, nil
}

func scanMovement(row pgx.Row) (*entity.Movement, error) {
	var m entity.Movement
	err := row.Scan(&m.ID, &m.ItemID, &m.Type, &m.Quantity, &m.Partner,
		&m.BinID, &m.UnitCost, &m.Date, &m.CreatedAt, &m.CreatedBy)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
