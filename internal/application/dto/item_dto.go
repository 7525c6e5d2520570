package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateItemRequest entrada para crear un ítem. InitialQuantity > 0 genera el
// primer movimiento INBOUND del libro ("saldo inicial"); el ítem nunca guarda
// cantidad propia.
type CreateItemRequest struct {
	SKU             string           `json:"sku" validate:"required,min=1,max=64"`
	Name            string           `json:"name" validate:"required,min=1,max=200"`
	Description     string           `json:"description" validate:"max=1000"`
	WarehouseID     string           `json:"warehouse_id" validate:"omitempty,uuid"`
	InitialQuantity int64            `json:"initial_quantity" validate:"min=0"`
	UnitCost        *decimal.Decimal `json:"unit_cost,omitempty"`
}

// ItemResponse salida de un ítem con su saldo derivado.
type ItemResponse struct {
	ID          string          `json:"id"`
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	WarehouseID string          `json:"warehouse_id,omitempty"`
	Cost        decimal.Decimal `json:"cost"`
	Balance     int64           `json:"balance"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ItemListResponse lista paginada de ítems.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// BalanceResponse saldo actual de un ítem, global o por bin.
type BalanceResponse struct {
	ItemID  string `json:"item_id"`
	BinID   string `json:"bin_id,omitempty"`
	Balance int64  `json:"balance"`
}
