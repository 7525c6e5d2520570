package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento del libro de inventario.
const (
	MovementTypeINBOUND  = "INBOUND"  // entrada
	MovementTypeOUTBOUND = "OUTBOUND" // salida
)

// Movement representa un evento inmutable del libro de movimientos.
// La cantidad siempre es positiva; el signo lo da el tipo.
// No existen operaciones de edición ni borrado sobre movimientos.
type Movement struct {
	ID        string
	ItemID    string
	Type      string // INBOUND, OUTBOUND
	Quantity  int64
	Partner   string // proveedor o cliente (texto libre)
	BinID     string // ubicación opcional ("" = sin ubicación)
	UnitCost  decimal.Decimal
	Date      time.Time
	CreatedAt time.Time
	CreatedBy string // UserID
}

// Signed devuelve la cantidad con signo según el tipo (entrada positiva, salida negativa).
func (m *Movement) Signed() int64 {
	if m.Type == MovementTypeOUTBOUND {
		return -m.Quantity
	}
	return m.Quantity
}
