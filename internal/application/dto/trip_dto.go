package dto

import "time"

// CreateTripRequest entrada para crear un viaje de reparto.
type CreateTripRequest struct {
	OrderID string `json:"order_id" validate:"required,min=1,max=64"`
	Vehicle string `json:"vehicle" validate:"required,min=1,max=64"`
	Driver  string `json:"driver" validate:"required,min=1,max=200"`
	Status  string `json:"status" validate:"omitempty,oneof=pendiente en_ruta entregado"`
}

// UpdateTripStatusRequest entrada para cambiar el estado de un viaje.
type UpdateTripStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pendiente en_ruta entregado"`
}

// TripResponse salida de un viaje.
type TripResponse struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"order_id"`
	Vehicle   string    `json:"vehicle"`
	Driver    string    `json:"driver"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TripListResponse lista paginada de viajes.
type TripListResponse struct {
	Items []TripResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
