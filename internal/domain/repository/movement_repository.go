package repository

import "github.com/maxjack20001-bot/logistics-system/internal/domain/entity"

// MovementRepository define el puerto de persistencia del libro de movimientos (DIP).
// El libro es append-only: no hay Update ni Delete.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	GetByID(id string) (*entity.Movement, error)
	// List ordena por fecha descendente; a igual fecha, INBOUND antes que OUTBOUND.
	// itemID vacío lista todos los movimientos.
	List(itemID string, limit, offset int) ([]*entity.Movement, error)
	// Balance devuelve sum(INBOUND) - sum(OUTBOUND) para un ítem.
	// binID vacío suma sobre todas las ubicaciones (saldo global).
	Balance(itemID, binID string) (int64, error)
}
