package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Tiendas-api/internal/application/dto"
	"github.com/jhoicas/Tiendas-api/internal/application/usecase"
)

// RatingHandler maneja el upsert de calificaciones.
type RatingHandler struct {
	uc *usecase.RatingUseCase
}

// NewRatingHandler construye el handler de calificaciones.
func NewRatingHandler(uc *usecase.RatingUseCase) *RatingHandler {
	return &RatingHandler{uc: uc}
}

// Rate godoc
// @Summary      Calificar una tienda (inserta o reemplaza la calificación propia)
// @Tags         ratings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        storeId  path  string          true  "store id"
// @Param        body     body  dto.RateRequest true  "rating 1-5"
// @Success      200  {object}  dto.RatingResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ratings/{storeId} [post]
func (h *RatingHandler) Rate(c *fiber.Ctx) error {
	var in dto.RateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	rating, err := h.uc.Rate(c.Context(), GetUserID(c), c.Params("storeId"), in)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(rating)
}

// StatsHandler maneja los conteos globales del panel admin.
type StatsHandler struct {
	uc *usecase.StatsUseCase
}

// NewStatsHandler construye el handler de estadísticas.
func NewStatsHandler(uc *usecase.StatsUseCase) *StatsHandler {
	return &StatsHandler{uc: uc}
}

// Stats godoc
// @Summary      Conteos globales de usuarios, tiendas y calificaciones (admin)
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.StatsResponse
// @Router       /api/admin/stats [get]
func (h *StatsHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.Totals(c.Context())
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(out)
}
