package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Tiendas-api/internal/application/dto"
	"github.com/jhoicas/Tiendas-api/internal/application/usecase"
	"github.com/jhoicas/Tiendas-api/internal/domain/entity"
)

// StoreHandler maneja el listado público de tiendas y la creación admin.
type StoreHandler struct {
	uc *usecase.StoreUseCase
}

// NewStoreHandler construye el handler de tiendas.
func NewStoreHandler(uc *usecase.StoreUseCase) *StoreHandler {
	return &StoreHandler{uc: uc}
}

// Create godoc
// @Summary      Crear tienda (admin)
// @Tags         stores
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateStoreRequest  true  "name, email, address, owner_id?"
// @Success      201   {object}  dto.StoreResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stores [post]
func (h *StoreHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateStoreRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	store, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return mapError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(store)
}

// List godoc
// @Summary      Listar tiendas con promedio y calificación propia
// @Tags         stores
// @Produce      json
// @Security     BearerAuth
// @Param        name     query  string  false  "substring case-insensitive"
// @Param        address  query  string  false  "substring case-insensitive"
// @Param        sort     query  string  false  "name | email | address"
// @Param        order    query  string  false  "asc | desc"
// @Success      200  {array}  dto.StoreListItem
// @Router       /api/stores [get]
func (h *StoreHandler) List(c *fiber.Ctx) error {
	var in dto.StoreListRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	// Solo el listado admin expone email y owner_id de las tiendas.
	includePrivate := GetRole(c) == entity.RoleAdmin
	stores, err := h.uc.List(c.Context(), in, GetUserID(c), includePrivate)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(stores)
}
