package repository

import "github.com/maxjack20001-bot/logistics-system/internal/domain/entity"

// StockRepository define el puerto para el saldo materializado por ítem+bin.
// Usado dentro de transacciones para garantizar consistencia con el libro.
type StockRepository interface {
	Get(itemID, binID string) (*entity.Stock, error)
	// ApplyDelta suma delta (con signo) al saldo de la clave, creando la fila
	// si no existe. Es acumulativo, nunca escribe un total absoluto: dos
	// transacciones que crean la misma clave a la vez no pueden pisarse.
	ApplyDelta(itemID, binID string, delta int64) error
	// GetForUpdate bloquea la fila (SELECT FOR UPDATE) para serializar
	// chequeo de saldo + inserción de movimiento por clave item+bin.
	GetForUpdate(itemID, binID string) (*entity.Stock, error)
	// AllForUpdate bloquea todas las filas del ítem y las devuelve; sirve para
	// validar una salida sin ubicación contra el saldo global.
	AllForUpdate(itemID string) ([]*entity.Stock, error)
	ListByItem(itemID string) ([]*entity.Stock, error)
}
