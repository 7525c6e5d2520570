package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/maxjack20001-bot/logistics-system/internal/application/dto"
	"github.com/maxjack20001-bot/logistics-system/internal/domain"
	"github.com/maxjack20001-bot/logistics-system/internal/domain/entity"
	"github.com/maxjack20001-bot/logistics-system/internal/domain/repository"
)

// LocationUseCase casos de uso para la jerarquía bodega → zona → bin.
// Son datos de referencia estáticos: crear y listar, más borrado de bodega
// que cae en cascada sobre zonas y bins.
type LocationUseCase struct {
	warehouseRepo repository.WarehouseRepository
	zoneRepo      repository.ZoneRepository
	binRepo       repository.BinRepository
}

// NewLocationUseCase construye el caso de uso.
func NewLocationUseCase(
	warehouseRepo repository.WarehouseRepository,
	zoneRepo repository.ZoneRepository,
	binRepo repository.BinRepository,
) *LocationUseCase {
	return &LocationUseCase{warehouseRepo: warehouseRepo, zoneRepo: zoneRepo, binRepo: binRepo}
}

// CreateWarehouse crea una nueva bodega.
func (uc *LocationUseCase) CreateWarehouse(in dto.CreateWarehouseRequest) (*dto.WarehouseResponse, error) {
	now := time.Now()
	warehouse := &entity.Warehouse{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Location:  in.Location,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.warehouseRepo.Create(warehouse); err != nil {
		return nil, err
	}
	return toWarehouseResponse(warehouse), nil
}

// GetWarehouse obtiene una bodega por ID.
func (uc *LocationUseCase) GetWarehouse(id string) (*dto.WarehouseResponse, error) {
	warehouse, err := uc.warehouseRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}
	return toWarehouseResponse(warehouse), nil
}

// ListWarehouses lista bodegas con paginación.
func (uc *LocationUseCase) ListWarehouses(limit, offset int) (*dto.WarehouseListResponse, error) {
	list, err := uc.warehouseRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.WarehouseResponse, 0, len(list))
	for _, w := range list {
		items = append(items, *toWarehouseResponse(w))
	}
	return &dto.WarehouseListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// DeleteWarehouse elimina una bodega; sus zonas y bins caen en cascada.
func (uc *LocationUseCase) DeleteWarehouse(id string) error {
	warehouse, err := uc.warehouseRepo.GetByID(id)
	if err != nil {
		return err
	}
	if warehouse == nil {
		return domain.ErrNotFound
	}
	return uc.warehouseRepo.Delete(id)
}

// CreateZone crea una zona dentro de una bodega existente.
func (uc *LocationUseCase) CreateZone(warehouseID string, in dto.CreateZoneRequest) (*dto.ZoneResponse, error) {
	warehouse, err := uc.warehouseRepo.GetByID(warehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}
	zone := &entity.Zone{
		ID:          uuid.New().String(),
		WarehouseID: warehouseID,
		Name:        in.Name,
		CreatedAt:   time.Now(),
	}
	if err := uc.zoneRepo.Create(zone); err != nil {
		return nil, err
	}
	return toZoneResponse(zone), nil
}

// ListZones lista las zonas de una bodega.
func (uc *LocationUseCase) ListZones(warehouseID string) ([]dto.ZoneResponse, error) {
	list, err := uc.zoneRepo.ListByWarehouse(warehouseID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ZoneResponse, 0, len(list))
	for _, z := range list {
		items = append(items, *toZoneResponse(z))
	}
	return items, nil
}

// CreateBin crea un bin dentro de una zona existente.
func (uc *LocationUseCase) CreateBin(zoneID string, in dto.CreateBinRequest) (*dto.BinResponse, error) {
	zone, err := uc.zoneRepo.GetByID(zoneID)
	if err != nil {
		return nil, err
	}
	if zone == nil {
		return nil, domain.ErrNotFound
	}
	bin := &entity.Bin{
		ID:        uuid.New().String(),
		ZoneID:    zoneID,
		Code:      in.Code,
		CreatedAt: time.Now(),
	}
	if err := uc.binRepo.Create(bin); err != nil {
		return nil, err
	}
	return toBinResponse(bin), nil
}

// ListBins lista los bins de una zona.
func (uc *LocationUseCase) ListBins(zoneID string) ([]dto.BinResponse, error) {
	list, err := uc.binRepo.ListByZone(zoneID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.BinResponse, 0, len(list))
	for _, b := range list {
		items = append(items, *toBinResponse(b))
	}
	return items, nil
}

func toWarehouseResponse(w *entity.Warehouse) *dto.WarehouseResponse {
	return &dto.WarehouseResponse{
		ID:        w.ID,
		Name:      w.Name,
		Location:  w.Location,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}

func toZoneResponse(z *entity.Zone) *dto.ZoneResponse {
	return &dto.ZoneResponse{
		ID:          z.ID,
		WarehouseID: z.WarehouseID,
		Name:        z.Name,
		CreatedAt:   z.CreatedAt,
	}
}

func toBinResponse(b *entity.Bin) *dto.BinResponse {
	return &dto.BinResponse{
		ID:        b.ID,
		ZoneID:    b.ZoneID,
		Code:      b.Code,
		CreatedAt: b.CreatedAt,
	}
}
