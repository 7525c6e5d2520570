package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/maxjack20001-bot/logistics-system/internal/domain/entity"
	"github.com/maxjack20001-bot/logistics-system/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
// bin_id usa '' como centinela para movimientos sin ubicación, de modo que la
// clave (item_id, bin_id) sea siempre NOT NULL y el upsert por ON CONFLICT funcione.
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Get obtiene el saldo materializado de un ítem en una ubicación.
// Sin fila devuelve un stock en cero, no un error.
func (r *StockRepo) Get(itemID, binID string) (*entity.Stock, error) {
	query := `
		SELECT item_id, bin_id, quantity, updated_at
		FROM stock WHERE item_id = $1 AND bin_id = $2`
	var s entity.Stock
	err := r.q.QueryRow(context.Background(), query, itemID, binID).Scan(
		&s.ItemID, &s.BinID, &s.Quantity, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.Stock{ItemID: itemID, BinID: binID}, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}

// ApplyDelta suma delta al saldo de la clave, creando la fila si no existe.
// El upsert es acumulativo (quantity = stock.quantity + delta): si dos
// transacciones crean la misma clave a la vez, ninguna ve la fila sin
// commitear de la otra en su SELECT FOR UPDATE, pero el ON CONFLICT espera
// el commit y suma sobre el valor ya escrito en vez de pisarlo con un total
// calculado sobre base vieja. Así la fila siempre iguala sum(IN) - sum(OUT).
func (r *StockRepo) ApplyDelta(itemID, binID string, delta int64) error {
	query := `
		INSERT INTO stock (item_id, bin_id, quantity, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (item_id, bin_id)
		DO UPDATE SET quantity = stock.quantity + EXCLUDED.quantity, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, itemID, binID, delta)
	if err != nil {
		return fmt.Errorf("apply stock delta: %w", err)
	}
	return nil
}

// GetForUpdate obtiene el stock y bloquea la fila (SELECT FOR UPDATE) para
// serializar chequeo + escritura por clave item+bin.
func (r *StockRepo) GetForUpdate(itemID, binID string) (*entity.Stock, error) {
	query := `
		SELECT item_id, bin_id, quantity, updated_at
		FROM stock WHERE item_id = $1 AND bin_id = $2
		FOR UPDATE`
	var s entity.Stock
	err := r.q.QueryRow(context.Background(), query, itemID, binID).Scan(
		&s.ItemID, &s.BinID, &s.Quantity, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.Stock{ItemID: itemID, BinID: binID}, nil
		}
		return nil, fmt.Errorf("get stock for update: %w", err)
	}
	return &s, nil
}

// AllForUpdate bloquea y devuelve todas las filas de stock de un ítem, para
// validar una salida sin ubicación contra el saldo global.
func (r *StockRepo) AllForUpdate(itemID string) ([]*entity.Stock, error) {
	query := `
		SELECT item_id, bin_id, quantity, updated_at
		FROM stock WHERE item_id = $1
		ORDER BY bin_id
		FOR UPDATE`
	return r.queryStocks(query, itemID)
}

// ListByItem devuelve los saldos materializados de un ítem por ubicación.
func (r *StockRepo) ListByItem(itemID string) ([]*entity.Stock, error) {
	query := `
		SELECT item_id, bin_id, quantity, updated_at
		FROM stock WHERE item_id = $1
		ORDER BY bin_id`
	return r.queryStocks(query, itemID)
}

func (r *StockRepo) queryStocks(query, itemID string) ([]*entity.Stock, error) {
	rows, err := r.q.Query(context.Background(), query, itemID)
	if err != nil {
		return nil, fmt.Errorf("query stock: %w", err)
	}
	defer rows.Close()
	var list []*entity.Stock
	for rows.Next() {
		var s entity.Stock
		if err := rows.Scan(&s.ItemID, &s.BinID, &s.Quantity, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
