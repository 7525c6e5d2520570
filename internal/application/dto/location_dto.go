package dto

import "time"

// CreateWarehouseRequest entrada para crear una bodega.
type CreateWarehouseRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Location string `json:"location" validate:"required,min=1,max=200"`
}

// WarehouseResponse salida de una bodega.
type WarehouseResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// WarehouseListResponse lista paginada de bodegas.
type WarehouseListResponse struct {
	Items []WarehouseResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}

// CreateZoneRequest entrada para crear una zona dentro de una bodega.
type CreateZoneRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
}

// ZoneResponse salida de una zona.
type ZoneResponse struct {
	ID          string    `json:"id"`
	WarehouseID string    `json:"warehouse_id"`
	Name        string    `json:"name"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateBinRequest entrada para crear un bin dentro de una zona.
type CreateBinRequest struct {
	Code string `json:"code" validate:"required,min=1,max=64"`
}

// BinResponse salida de un bin.
type BinResponse struct {
	ID        string    `json:"id"`
	ZoneID    string    `json:"zone_id"`
	Code      string    `json:"code"`
	CreatedAt time.Time `json:"created_at"`
}
