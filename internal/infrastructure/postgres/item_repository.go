package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/maxjack20001-bot/logistics-system/internal/domain"
	"github.com/maxjack20001-bot/logistics-system/internal/domain/entity"
	"github.com/maxjack20001-bot/logistics-system/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación de ItemRepository sobre PostgreSQL (usable con pool o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

// Create persiste un nuevo ítem.
func (r *ItemRepo) Create(item *entity.Item) error {
	query := `
		INSERT INTO items (id, sku, name, description, warehouse_id, cost, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	warehouseID := (*string)(nil)
	if item.WarehouseID != "" {
		warehouseID = &item.WarehouseID
	}
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.SKU, item.Name, item.Description, warehouseID,
		item.Cost, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByID obtiene un ítem por ID.
func (r *ItemRepo) GetByID(id string) (*entity.Item, error) {
	query := `
		SELECT id, sku, name, description, warehouse_id, cost, created_at, updated_at
		FROM items WHERE id = $1`
	var i entity.Item
	var warehouseID *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&i.ID, &i.SKU, &i.Name, &i.Description, &warehouseID, &i.Cost, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	if warehouseID != nil {
		i.WarehouseID = *warehouseID
	}
	return &i, nil
}

// ListWithBalance lista ítems con su saldo global derivado del libro de movimientos.
func (r *ItemRepo) ListWithBalance(limit, offset int) ([]*repository.ItemWithBalance, error) {
	query := `
		SELECT i.id, i.sku, i.name, i.description, i.warehouse_id, i.cost, i.created_at, i.updated_at,
		       COALESCE(SUM(CASE WHEN m.type = 'INBOUND' THEN m.quantity
		                         WHEN m.type = 'OUTBOUND' THEN -m.quantity
		                         ELSE 0 END), 0) AS balance
		FROM items i
		LEFT JOIN movements m ON m.item_id = i.id
		GROUP BY i.id
		ORDER BY i.created_at DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()
	var list []*repository.ItemWithBalance
	for rows.Next() {
		var i entity.Item
		var warehouseID *string
		var balance int64
		if err := rows.Scan(&i.ID, &i.SKU, &i.Name, &i.Description, &warehouseID,
			&i.Cost, &i.CreatedAt, &i.UpdatedAt, &balance); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		if warehouseID != nil {
			i.WarehouseID = *warehouseID
		}
		list = append(list, &repository.ItemWithBalance{Item: &i, Balance: balance})
	}
	return list, rows.Err()
}

// UpdateCost actualiza el costo promedio ponderado de un ítem.
func (r *ItemRepo) UpdateCost(id string, cost decimal.Decimal) error {
	query := `UPDATE items SET cost = $2, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, cost)
	if err != nil {
		return fmt.Errorf("update item cost: %w", err)
	}
	return nil
}
