package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/maxjack20001-bot/logistics-system/internal/application/dto"
	"github.com/maxjack20001-bot/logistics-system/internal/application/ledger"
	"github.com/maxjack20001-bot/logistics-system/internal/domain/entity"
	"github.com/maxjack20001-bot/logistics-system/pkg/validator"
)

// InventoryHandler maneja entradas, salidas y el listado del libro (protegido).
type InventoryHandler struct {
	uc *ledger.UseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *ledger.UseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// RegisterInbound godoc
// @Summary      Registrar entrada de inventario
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        itemId  path  string  true  "ID del ítem"
// @Param        body  body  dto.RegisterMovementRequest  true  "quantity, partner, bin_id (opcional), unit_cost (opcional)"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/inbound/{itemId} [post]
func (h *InventoryHandler) RegisterInbound(c *fiber.Ctx) error {
	in, verr := parseMovementBody(c)
	if verr != nil {
		return c.Status(fiber.StatusBadRequest).JSON(*verr)
	}
	mov, err := h.uc.RecordInbound(c.Context(), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toMovementResponse(mov))
}

// RegisterOutbound godoc
// @Summary      Registrar salida de inventario
// @Description  Rechaza con 409 si el saldo (global o del bin indicado) no cubre la cantidad; en ese caso no se escribe nada.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        itemId  path  string  true  "ID del ítem"
// @Param        body  body  dto.RegisterMovementRequest  true  "quantity, partner, bin_id (opcional)"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/outbound/{itemId} [post]
func (h *InventoryHandler) RegisterOutbound(c *fiber.Ctx) error {
	in, verr := parseMovementBody(c)
	if verr != nil {
		return c.Status(fiber.StatusBadRequest).JSON(*verr)
	}
	mov, err := h.uc.RecordOutbound(c.Context(), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toMovementResponse(mov))
}

// ListMovements godoc
// @Summary      Listar movimientos del libro
// @Description  Recientes primero; a igual fecha, entradas antes que salidas.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        item_id  query  string  false  "Filtrar por ítem"
// @Param        limit    query  int     false  "Límite"   default(20)
// @Param        offset   query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.MovementListResponse
// @Router       /api/inventory/movements [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	list, err := h.uc.ListMovements(c.Context(), c.Query("item_id"), page.Limit, page.Offset)
	if err != nil {
		return respondDomainError(c, err)
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMovementResponse(m))
	}
	return c.JSON(dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	})
}

// parseMovementBody valida el body común de entrada/salida.
func parseMovementBody(c *fiber.Ctx) (ledger.MovementInput, *dto.ErrorResponse) {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return ledger.MovementInput{}, &dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"}
	}
	if errs := validator.ValidateStruct(in); errs != nil {
		return ledger.MovementInput{}, &dto.ErrorResponse{Code: "VALIDATION", Message: validator.Describe(errs)}
	}
	return ledger.MovementInput{
		ItemID:   c.Params("itemId"),
		Quantity: in.Quantity,
		Partner:  in.Partner,
		BinID:    in.BinID,
		UnitCost: in.UnitCost,
		UserID:   GetUserID(c),
	}, nil
}

func toMovementResponse(m *entity.Movement) *dto.MovementResponse {
	return &dto.MovementResponse{
		ID:        m.ID,
		ItemID:    m.ItemID,
		Type:      m.Type,
		Quantity:  m.Quantity,
		Partner:   m.Partner,
		BinID:     m.BinID,
		UnitCost:  m.UnitCost,
		Date:      m.Date,
		CreatedBy: m.CreatedBy,
	}
}
