package entity

import "time"

// Estados válidos de un viaje de reparto.
const (
	TripStatusPendiente = "pendiente"
	TripStatusEnRuta    = "en_ruta"
	TripStatusEntregado = "entregado"
)

// Trip representa un viaje de transporte asociado a una orden de salida.
type Trip struct {
	ID        string
	OrderID   string
	Vehicle   string
	Driver    string
	Status    string // pendiente, en_ruta, entregado
	CreatedAt time.Time
	UpdatedAt time.Time
}
