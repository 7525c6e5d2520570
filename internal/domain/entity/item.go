package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item representa una referencia (SKU) almacenable en el sistema logístico.
// No tiene columna de cantidad: el saldo se deriva del libro de movimientos.
// Cost es el costo promedio ponderado, actualizado con cada entrada.
type Item struct {
	ID          string
	SKU         string
	Name        string
	Description string
	WarehouseID string // bodega propietaria, opcional ("" = sin asignar)
	Cost        decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
