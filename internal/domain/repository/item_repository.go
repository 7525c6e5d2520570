package repository

import (
	"github.com/shopspring/decimal"

	"github.com/maxjack20001-bot/logistics-system/internal/domain/entity"
)

// ItemWithBalance par ítem + saldo derivado del libro de movimientos, para listados.
type ItemWithBalance struct {
	Item    *entity.Item
	Balance int64
}

// ItemRepository define el puerto de persistencia para Item (DIP).
type ItemRepository interface {
	Create(item *entity.Item) error
	GetByID(id string) (*entity.Item, error)
	// ListWithBalance lista ítems con su saldo global calculado sobre movements.
	ListWithBalance(limit, offset int) ([]*ItemWithBalance, error)
	UpdateCost(id string, cost decimal.Decimal) error
}
