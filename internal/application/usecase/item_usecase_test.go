package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxjack20001-bot/logistics-system/internal/application/dto"
	"github.com/maxjack20001-bot/logistics-system/internal/application/ledger"
	"github.com/maxjack20001-bot/logistics-system/internal/application/usecase"
	"github.com/maxjack20001-bot/logistics-system/internal/domain"
	"github.com/maxjack20001-bot/logistics-system/internal/domain/entity"
	"github.com/maxjack20001-bot/logistics-system/internal/domain/repository"
)

// ─────────────────────────────────────────────────────────────────────────────
// Fakes en memoria con transacciones reales: el TxRunner toma una copia del
// estado antes de ejecutar el callback y la restaura si este falla, igual que
// un ROLLBACK. Así se puede verificar que el alta de ítem y su movimiento
// inicial son atómicos.
// ─────────────────────────────────────────────────────────────────────────────

type itemStore struct {
	items      map[string]*entity.Item
	warehouses map[string]*entity.Warehouse
	movs       []*entity.Movement
	stock      map[string]int64 // clave "itemID|binID"

	failMovementCreate bool
}

func newItemStore() *itemStore {
	return &itemStore{
		items:      make(map[string]*entity.Item),
		warehouses: make(map[string]*entity.Warehouse),
		stock:      make(map[string]int64),
	}
}

func stockKey(itemID, binID string) string { return itemID + "|" + binID }

type storeItemRepo struct{ s *itemStore }

func (r *storeItemRepo) Create(item *entity.Item) error {
	cp := *item
	r.s.items[item.ID] = &cp
	return nil
}

func (r *storeItemRepo) GetByID(id string) (*entity.Item, error) {
	return r.s.items[id], nil
}

func (r *storeItemRepo) ListWithBalance(limit, offset int) ([]*repository.ItemWithBalance, error) {
	out := make([]*repository.ItemWithBalance, 0, len(r.s.items))
	for _, it := range r.s.items {
		var bal int64
		for _, m := range r.s.movs {
			if m.ItemID == it.ID {
				bal += m.Signed()
			}
		}
		out = append(out, &repository.ItemWithBalance{Item: it, Balance: bal})
	}
	return out, nil
}

func (r *storeItemRepo) UpdateCost(id string, cost decimal.Decimal) error {
	if it, ok := r.s.items[id]; ok {
		it.Cost = cost
	}
	return nil
}

type storeWarehouseRepo struct{ s *itemStore }

func (r *storeWarehouseRepo) Create(w *entity.Warehouse) error {
	r.s.warehouses[w.ID] = w
	return nil
}

func (r *storeWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	return r.s.warehouses[id], nil
}

func (r *storeWarehouseRepo) List(limit, offset int) ([]*entity.Warehouse, error) {
	return nil, nil
}

func (r *storeWarehouseRepo) Delete(id string) error {
	delete(r.s.warehouses, id)
	return nil
}

type storeMovementRepo struct{ s *itemStore }

var errMovementInsert = errors.New("insert movement: conexión perdida")

func (r *storeMovementRepo) Create(m *entity.Movement) error {
	if r.s.failMovementCreate {
		return errMovementInsert
	}
	cp := *m
	r.s.movs = append(r.s.movs, &cp)
	return nil
}

func (r *storeMovementRepo) GetByID(id string) (*entity.Movement, error) {
	for _, m := range r.s.movs {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, nil
}

func (r *storeMovementRepo) List(itemID string, limit, offset int) ([]*entity.Movement, error) {
	out := []*entity.Movement{}
	for _, m := range r.s.movs {
		if itemID == "" || m.ItemID == itemID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *storeMovementRepo) Balance(itemID, binID string) (int64, error) {
	var bal int64
	for _, m := range r.s.movs {
		if m.ItemID != itemID {
			continue
		}
		if binID != "" && m.BinID != binID {
			continue
		}
		bal += m.Signed()
	}
	return bal, nil
}

type storeStockRepo struct{ s *itemStore }

func (r *storeStockRepo) Get(itemID, binID string) (*entity.Stock, error) {
	return &entity.Stock{ItemID: itemID, BinID: binID, Quantity: r.s.stock[stockKey(itemID, binID)]}, nil
}

func (r *storeStockRepo) ApplyDelta(itemID, binID string, delta int64) error {
	r.s.stock[stockKey(itemID, binID)] += delta
	return nil
}

func (r *storeStockRepo) GetForUpdate(itemID, binID string) (*entity.Stock, error) {
	return r.Get(itemID, binID)
}

func (r *storeStockRepo) AllForUpdate(itemID string) ([]*entity.Stock, error) {
	return r.ListByItem(itemID)
}

func (r *storeStockRepo) ListByItem(itemID string) ([]*entity.Stock, error) {
	out := []*entity.Stock{}
	for k, q := range r.s.stock {
		if !strings.HasPrefix(k, itemID+"|") {
			continue
		}
		out = append(out, &entity.Stock{
			ItemID:    itemID,
			BinID:     strings.TrimPrefix(k, itemID+"|"),
			Quantity:  q,
			UpdatedAt: time.Now(),
		})
	}
	return out, nil
}

type storeBinRepo struct{ s *itemStore }

func (r *storeBinRepo) Create(b *entity.Bin) error                      { return nil }
func (r *storeBinRepo) GetByID(id string) (*entity.Bin, error)          { return nil, nil }
func (r *storeBinRepo) ListByZone(zoneID string) ([]*entity.Bin, error) { return nil, nil }

type storeTxRunner struct{ s *itemStore }

func (t *storeTxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovementRepository,
	stockRepo repository.StockRepository,
	itemRepo repository.ItemRepository,
) error) error {
	snapItems := make(map[string]*entity.Item, len(t.s.items))
	for k, v := range t.s.items {
		cp := *v
		snapItems[k] = &cp
	}
	snapMovs := append([]*entity.Movement{}, t.s.movs...)
	snapStock := make(map[string]int64, len(t.s.stock))
	for k, v := range t.s.stock {
		snapStock[k] = v
	}

	err := fn(&storeMovementRepo{t.s}, &storeStockRepo{t.s}, &storeItemRepo{t.s})
	if err != nil {
		t.s.items = snapItems
		t.s.movs = snapMovs
		t.s.stock = snapStock
	}
	return err
}

func newItemUseCase(s *itemStore) *usecase.ItemUseCase {
	txRunner := &storeTxRunner{s}
	itemRepo := &storeItemRepo{s}
	ledgerUC := ledger.NewUseCase(txRunner, itemRepo, &storeBinRepo{s}, &storeMovementRepo{s}, &storeStockRepo{s})
	return usecase.NewItemUseCase(itemRepo, &storeWarehouseRepo{s}, ledgerUC, txRunner)
}

// ─────────────────────────────────────────────────────────────────────────────
// Alta de ítem con saldo inicial
// ─────────────────────────────────────────────────────────────────────────────

func TestItemCreate_SaldoInicialEntraAlLibro(t *testing.T) {
	s := newItemStore()
	s.warehouses["wh-1"] = &entity.Warehouse{ID: "wh-1", Name: "Bodega Central"}
	uc := newItemUseCase(s)

	cost := decimal.RequireFromString("12.50")
	resp, err := uc.Create(context.Background(), "user-1", dto.CreateItemRequest{
		SKU:             "TOR-001",
		Name:            "Tornillos 3/4",
		WarehouseID:     "wh-1",
		InitialQuantity: 50,
		UnitCost:        &cost,
	})
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, int64(50), resp.Balance)
	assert.True(t, resp.Cost.Equal(cost))

	require.Len(t, s.items, 1)
	require.Len(t, s.movs, 1)
	mov := s.movs[0]
	assert.Equal(t, resp.ID, mov.ItemID)
	assert.Equal(t, entity.MovementTypeINBOUND, mov.Type)
	assert.Equal(t, int64(50), mov.Quantity)
	assert.Equal(t, usecase.PartnerInitialStock, mov.Partner)
	assert.Equal(t, "user-1", mov.CreatedBy)
	assert.Equal(t, int64(50), s.stock[stockKey(resp.ID, "")])
}

func TestItemCreate_SinCantidadInicialNoGeneraMovimiento(t *testing.T) {
	s := newItemStore()
	uc := newItemUseCase(s)

	resp, err := uc.Create(context.Background(), "user-1", dto.CreateItemRequest{
		SKU:  "CAJ-001",
		Name: "Cajas de cartón",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), resp.Balance)
	assert.Len(t, s.items, 1)
	assert.Empty(t, s.movs)
	assert.Empty(t, s.stock)
}

func TestItemCreate_CantidadInicialNegativaRechazada(t *testing.T) {
	s := newItemStore()
	uc := newItemUseCase(s)

	_, err := uc.Create(context.Background(), "user-1", dto.CreateItemRequest{
		SKU:             "NEG-001",
		Name:            "Inválido",
		InitialQuantity: -5,
	})
	require.ErrorIs(t, err, domain.ErrInvalidQuantity)
	assert.Empty(t, s.items)
}

func TestItemCreate_BodegaInexistenteRechazada(t *testing.T) {
	s := newItemStore()
	uc := newItemUseCase(s)

	_, err := uc.Create(context.Background(), "user-1", dto.CreateItemRequest{
		SKU:         "TOR-001",
		Name:        "Tornillos 3/4",
		WarehouseID: "no-existe",
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, s.items)
}

// Alta de ítem y movimiento inicial van en la misma transacción: si el insert
// del movimiento falla, el ítem tampoco debe quedar creado.
func TestItemCreate_FalloDelMovimientoNoDejaItemHuerfano(t *testing.T) {
	s := newItemStore()
	s.failMovementCreate = true
	uc := newItemUseCase(s)

	_, err := uc.Create(context.Background(), "user-1", dto.CreateItemRequest{
		SKU:             "TOR-001",
		Name:            "Tornillos 3/4",
		InitialQuantity: 30,
	})
	require.ErrorIs(t, err, errMovementInsert)

	assert.Empty(t, s.items, "el ítem no debe sobrevivir al rollback")
	assert.Empty(t, s.movs)
	assert.Empty(t, s.stock)
}
