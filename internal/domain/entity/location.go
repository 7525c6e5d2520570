package entity

import "time"

// Warehouse representa una bodega física. Contiene zonas; borrar una bodega
// elimina en cascada sus zonas y bins (FK en el esquema).
type Warehouse struct {
	ID        string
	Name      string
	Location  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Zone representa una zona dentro de una bodega.
type Zone struct {
	ID          string
	WarehouseID string
	Name        string
	CreatedAt   time.Time
}

// Bin representa una posición de almacenamiento dentro de una zona.
// Es la unidad mínima sobre la que se lleva saldo por ubicación.
type Bin struct {
	ID        string
	ZoneID    string
	Code      string
	CreatedAt time.Time
}
