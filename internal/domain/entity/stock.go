package entity

import "time"

// Stock representa el saldo materializado de un ítem en una ubicación (item × bin).
// Es una desnormalización del libro de movimientos: se actualiza en la misma
// transacción que cada movimiento y siempre debe igualar sum(IN) - sum(OUT)
// de esa clave. BinID vacío agrupa los movimientos sin ubicación.
type Stock struct {
	ItemID    string
	BinID     string
	Quantity  int64
	UpdatedAt time.Time
}
