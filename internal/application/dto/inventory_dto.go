package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterMovementRequest body para POST /api/inventory/inbound/:itemId y outbound/:itemId.
// Partner es el proveedor (entrada) o cliente (salida). BinID es opcional;
// vacío registra el movimiento sin ubicación. UnitCost solo aplica a entradas.
type RegisterMovementRequest struct {
	Quantity int64            `json:"quantity" validate:"required,gt=0"`
	Partner  string           `json:"partner" validate:"required,min=1,max=200"`
	BinID    string           `json:"bin_id" validate:"omitempty,uuid"`
	UnitCost *decimal.Decimal `json:"unit_cost,omitempty"`
}

// MovementResponse salida de un movimiento del libro.
type MovementResponse struct {
	ID        string          `json:"id"`
	ItemID    string          `json:"item_id"`
	Type      string          `json:"type"`
	Quantity  int64           `json:"quantity"`
	Partner   string          `json:"partner"`
	BinID     string          `json:"bin_id,omitempty"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
	Date      time.Time       `json:"date"`
	CreatedBy string          `json:"created_by,omitempty"`
}

// MovementListResponse lista paginada de movimientos (recientes primero).
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// StockByBinResponse saldo materializado de un ítem por ubicación.
type StockByBinResponse struct {
	BinID     string    `json:"bin_id"`
	Quantity  int64     `json:"quantity"`
	UpdatedAt time.Time `json:"updated_at"`
}
