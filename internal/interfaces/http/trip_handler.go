package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/maxjack20001-bot/logistics-system/internal/application/dto"
	"github.com/maxjack20001-bot/logistics-system/internal/application/usecase"
	"github.com/maxjack20001-bot/logistics-system/pkg/validator"
)

// TripHandler maneja los viajes de reparto (protegido).
type TripHandler struct {
	uc *usecase.TripUseCase
}

// NewTripHandler construye el handler.
func NewTripHandler(uc *usecase.TripUseCase) *TripHandler {
	return &TripHandler{uc: uc}
}

// Create godoc
// @Summary      Crear viaje
// @Tags         trips
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTripRequest  true  "order_id, vehicle, driver, status (opcional)"
// @Success      201   {object}  dto.TripResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/trips [post]
func (h *TripHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTripRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if errs := validator.ValidateStruct(in); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validator.Describe(errs)})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener viaje por ID
// @Tags         trips
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del viaje"
// @Success      200  {object}  dto.TripResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/trips/{id} [get]
func (h *TripHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar viajes
// @Tags         trips
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.TripListResponse
// @Router       /api/trips [get]
func (h *TripHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	out, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Cambiar estado de un viaje
// @Tags         trips
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                       true  "ID del viaje"
// @Param        body  body  dto.UpdateTripStatusRequest  true  "status"
// @Success      200   {object}  dto.TripResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/trips/{id}/status [put]
func (h *TripHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateTripStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if errs := validator.ValidateStruct(in); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validator.Describe(errs)})
	}
	out, err := h.uc.UpdateStatus(c.Params("id"), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}
