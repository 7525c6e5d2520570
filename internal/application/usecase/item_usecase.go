package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/maxjack20001-bot/logistics-system/internal/application/dto"
	"github.com/maxjack20001-bot/logistics-system/internal/application/ledger"
	"github.com/maxjack20001-bot/logistics-system/internal/domain"
	"github.com/maxjack20001-bot/logistics-system/internal/domain/entity"
	"github.com/maxjack20001-bot/logistics-system/internal/domain/repository"
)

// PartnerInitialStock es la contraparte con que se registra el movimiento
// inicial de un ítem creado con cantidad distinta de cero.
const PartnerInitialStock = "saldo inicial"

// ItemUseCase casos de uso para ítems. La cantidad inicial de un ítem nuevo
// entra al libro como su primer movimiento INBOUND; el ítem no guarda cantidad.
type ItemUseCase struct {
	repo          repository.ItemRepository
	warehouseRepo repository.WarehouseRepository
	ledgerUC      *ledger.UseCase
	txRunner      ledger.TxRunner
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(repo repository.ItemRepository, warehouseRepo repository.WarehouseRepository, ledgerUC *ledger.UseCase, txRunner ledger.TxRunner) *ItemUseCase {
	return &ItemUseCase{repo: repo, warehouseRepo: warehouseRepo, ledgerUC: ledgerUC, txRunner: txRunner}
}

// Create crea un ítem y, si InitialQuantity > 0, registra la entrada inicial.
// Alta del ítem y movimiento inicial van en la misma transacción: si el
// movimiento falla, el ítem tampoco queda creado.
func (uc *ItemUseCase) Create(ctx context.Context, userID string, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if in.InitialQuantity < 0 {
		return nil, domain.ErrInvalidQuantity
	}
	if in.WarehouseID != "" {
		wh, err := uc.warehouseRepo.GetByID(in.WarehouseID)
		if err != nil {
			return nil, err
		}
		if wh == nil {
			return nil, domain.ErrNotFound
		}
	}
	now := time.Now()
	cost := decimal.Zero
	if in.InitialQuantity > 0 && in.UnitCost != nil {
		cost = *in.UnitCost
	}
	item := &entity.Item{
		ID:          uuid.New().String(),
		SKU:         in.SKU,
		Name:        in.Name,
		Description: in.Description,
		WarehouseID: in.WarehouseID,
		Cost:        cost,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		stockRepo repository.StockRepository,
		itemRepo repository.ItemRepository,
	) error {
		if err := itemRepo.Create(item); err != nil {
			return err
		}
		if in.InitialQuantity == 0 {
			return nil
		}
		if err := stockRepo.ApplyDelta(item.ID, "", in.InitialQuantity); err != nil {
			return err
		}
		return movRepo.Create(&entity.Movement{
			ID:        uuid.New().String(),
			ItemID:    item.ID,
			Type:      entity.MovementTypeINBOUND,
			Quantity:  in.InitialQuantity,
			Partner:   PartnerInitialStock,
			UnitCost:  cost,
			Date:      now,
			CreatedAt: now,
			CreatedBy: userID,
		})
	})
	if err != nil {
		return nil, err
	}
	return toItemResponse(item, in.InitialQuantity), nil
}

// GetByID obtiene un ítem con su saldo global derivado.
func (uc *ItemUseCase) GetByID(ctx context.Context, id string) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	balance, err := uc.ledgerUC.CurrentBalance(ctx, id, "")
	if err != nil {
		return nil, err
	}
	return toItemResponse(item, balance), nil
}

// List lista ítems con saldos derivados del libro.
func (uc *ItemUseCase) List(ctx context.Context, limit, offset int) (*dto.ItemListResponse, error) {
	list, err := uc.repo.ListWithBalance(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ItemResponse, 0, len(list))
	for _, ib := range list {
		items = append(items, *toItemResponse(ib.Item, ib.Balance))
	}
	return &dto.ItemListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toItemResponse(item *entity.Item, balance int64) *dto.ItemResponse {
	if item == nil {
		return nil
	}
	return &dto.ItemResponse{
		ID:          item.ID,
		SKU:         item.SKU,
		Name:        item.Name,
		Description: item.Description,
		WarehouseID: item.WarehouseID,
		Cost:        item.Cost,
		Balance:     balance,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}
