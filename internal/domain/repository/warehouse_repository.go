package repository

import "github.com/maxjack20001-bot/logistics-system/internal/domain/entity"

// WarehouseRepository define el puerto de persistencia para Warehouse (DIP).
type WarehouseRepository interface {
	Create(warehouse *entity.Warehouse) error
	GetByID(id string) (*entity.Warehouse, error)
	List(limit, offset int) ([]*entity.Warehouse, error)
	// Delete elimina la bodega; zonas y bins caen en cascada (FK).
	Delete(id string) error
}

// ZoneRepository define el puerto de persistencia para Zone (DIP).
type ZoneRepository interface {
	Create(zone *entity.Zone) error
	GetByID(id string) (*entity.Zone, error)
	ListByWarehouse(warehouseID string) ([]*entity.Zone, error)
}

// BinRepository define el puerto de persistencia para Bin (DIP).
type BinRepository interface {
	Create(bin *entity.Bin) error
	GetByID(id string) (*entity.Bin, error)
	ListByZone(zoneID string) ([]*entity.Bin, error)
}
