package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/maxjack20001-bot/logistics-system/internal/domain"
	"github.com/maxjack20001-bot/logistics-system/internal/domain/entity"
	domledger "github.com/maxjack20001-bot/logistics-system/internal/domain/ledger"
	"github.com/maxjack20001-bot/logistics-system/internal/domain/repository"
)

// UseCase es el libro de inventario: registra entradas y salidas de forma
// transaccional (bloqueo de fila con SELECT FOR UPDATE) y deriva saldos del
// log de movimientos. El log es append-only; el stock materializado se
// actualiza en la misma transacción que cada movimiento.
type UseCase struct {
	txRunner  TxRunner
	itemRepo  repository.ItemRepository
	binRepo   repository.BinRepository
	movRepo   repository.MovementRepository
	stockRepo repository.StockRepository
}

// NewUseCase construye el caso de uso del libro.
func NewUseCase(
	txRunner TxRunner,
	itemRepo repository.ItemRepository,
	binRepo repository.BinRepository,
	movRepo repository.MovementRepository,
	stockRepo repository.StockRepository,
) *UseCase {
	return &UseCase{
		txRunner:  txRunner,
		itemRepo:  itemRepo,
		binRepo:   binRepo,
		movRepo:   movRepo,
		stockRepo: stockRepo,
	}
}

// MovementInput entrada para registrar un movimiento.
// BinID vacío registra el movimiento sin ubicación; UnitCost solo aplica a entradas.
type MovementInput struct {
	ItemID   string
	Quantity int64
	Partner  string
	BinID    string
	UnitCost *decimal.Decimal
	UserID   string
}

// validate aplica las reglas comunes a entrada y salida y resuelve el ítem.
func (uc *UseCase) validate(in MovementInput) (*entity.Item, error) {
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	if in.ItemID == "" || in.Partner == "" {
		return nil, domain.ErrInvalidInput
	}
	item, err := uc.itemRepo.GetByID(in.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if in.BinID != "" {
		bin, err := uc.binRepo.GetByID(in.BinID)
		if err != nil {
			return nil, err
		}
		if bin == nil {
			return nil, domain.ErrNotFound
		}
	}
	return item, nil
}

// RecordInbound registra una entrada: siempre se acepta (no hay tope de
// capacidad). Suma al stock de la clave item+bin y agrega el movimiento
// INBOUND al libro en una sola transacción. Si viene UnitCost, recalcula el
// costo promedio ponderado del ítem.
func (uc *UseCase) RecordInbound(ctx context.Context, in MovementInput) (*entity.Movement, error) {
	item, err := uc.validate(in)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	var mov *entity.Movement
	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		stockRepo repository.StockRepository,
		itemRepo repository.ItemRepository,
	) error {
		// Bloquea la fila de stock para serializar escrituras sobre la misma clave
		stock, err := stockRepo.GetForUpdate(in.ItemID, in.BinID)
		if err != nil {
			return err
		}

		unitCost := item.Cost
		if in.UnitCost != nil {
			unitCost = *in.UnitCost
			newCost := domledger.AverageCost(stock.Quantity, item.Cost, in.Quantity, unitCost)
			if err := itemRepo.UpdateCost(in.ItemID, newCost); err != nil {
				return err
			}
		}

		if err := stockRepo.ApplyDelta(in.ItemID, in.BinID, in.Quantity); err != nil {
			return err
		}

		mov = &entity.Movement{
			ID:        uuid.New().String(),
			ItemID:    in.ItemID,
			Type:      entity.MovementTypeINBOUND,
			Quantity:  in.Quantity,
			Partner:   in.Partner,
			BinID:     in.BinID,
			UnitCost:  unitCost,
			Date:      now,
			CreatedAt: now,
			CreatedBy: in.UserID,
		}
		return movRepo.Create(mov)
	})
	if err != nil {
		return nil, err
	}
	return mov, nil
}

// RecordOutbound registra una salida. Precondición atómica: el saldo de la
// clave (o el global si no hay bin) debe cubrir la cantidad; si no, devuelve
// ErrInsufficientStock sin escribir nada. El chequeo y la inserción ocurren
// bajo el mismo bloqueo de fila, de modo que dos salidas concurrentes sobre
// la última unidad no puedan aprobarse ambas.
func (uc *UseCase) RecordOutbound(ctx context.Context, in MovementInput) (*entity.Movement, error) {
	item, err := uc.validate(in)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	var mov *entity.Movement
	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		stockRepo repository.StockRepository,
		_ repository.ItemRepository,
	) error {
		if in.BinID != "" {
			// Chequeo por ubicación: contra el saldo de ese bin, no el global
			stock, err := stockRepo.GetForUpdate(in.ItemID, in.BinID)
			if err != nil {
				return err
			}
			if stock.Quantity < in.Quantity {
				return domain.ErrInsufficientStock
			}
			if err := stockRepo.ApplyDelta(in.ItemID, in.BinID, -in.Quantity); err != nil {
				return err
			}
		} else {
			// Salida sin ubicación: bloquea todas las filas del ítem y valida el saldo global
			rows, err := stockRepo.AllForUpdate(in.ItemID)
			if err != nil {
				return err
			}
			var total int64
			for _, s := range rows {
				total += s.Quantity
			}
			if total < in.Quantity {
				return domain.ErrInsufficientStock
			}
			if err := stockRepo.ApplyDelta(in.ItemID, "", -in.Quantity); err != nil {
				return err
			}
		}

		mov = &entity.Movement{
			ID:        uuid.New().String(),
			ItemID:    in.ItemID,
			Type:      entity.MovementTypeOUTBOUND,
			Quantity:  in.Quantity,
			Partner:   in.Partner,
			BinID:     in.BinID,
			UnitCost:  item.Cost,
			Date:      now,
			CreatedAt: now,
			CreatedBy: in.UserID,
		}
		return movRepo.Create(mov)
	})
	if err != nil {
		return nil, err
	}
	return mov, nil
}

// CurrentBalance devuelve el saldo actual de un ítem, global (binID vacío) o
// por ubicación. El saldo es función pura del libro: sum(IN) - sum(OUT);
// un ítem sin movimientos tiene saldo 0.
func (uc *UseCase) CurrentBalance(ctx context.Context, itemID, binID string) (int64, error) {
	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil {
		return 0, err
	}
	if item == nil {
		return 0, domain.ErrNotFound
	}
	return uc.movRepo.Balance(itemID, binID)
}

// ListMovements lista movimientos, recientes primero; a igual fecha las
// entradas van antes que las salidas. itemID vacío lista todo el libro.
func (uc *UseCase) ListMovements(ctx context.Context, itemID string, limit, offset int) ([]*entity.Movement, error) {
	return uc.movRepo.List(itemID, limit, offset)
}

// StockByItem devuelve los saldos materializados del ítem por ubicación.
func (uc *UseCase) StockByItem(ctx context.Context, itemID string) ([]*entity.Stock, error) {
	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return uc.stockRepo.ListByItem(itemID)
}
