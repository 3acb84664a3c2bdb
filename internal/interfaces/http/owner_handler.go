package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Tiendas-api/internal/application/reports"
	"github.com/jhoicas/Tiendas-api/internal/application/usecase"
)

// OwnerHandler maneja el panel del dueño: sus tiendas, las calificaciones
// recibidas y el reporte PDF. El ownerID siempre sale del token, nunca de la
// petición.
type OwnerHandler struct {
	storeUC *usecase.StoreUseCase
	pdfUC   *reports.PDFUseCase
}

// NewOwnerHandler construye el handler del panel del dueño.
func NewOwnerHandler(storeUC *usecase.StoreUseCase, pdfUC *reports.PDFUseCase) *OwnerHandler {
	return &OwnerHandler{storeUC: storeUC, pdfUC: pdfUC}
}

// ListStores godoc
// @Summary      Tiendas propias con promedio y conteo de calificaciones (owner)
// @Tags         owner
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.OwnerStoreItem
// @Router       /api/owner/stores [get]
func (h *OwnerHandler) ListStores(c *fiber.Ctx) error {
	stores, err := h.storeUC.ListOwned(c.Context(), GetUserID(c))
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(stores)
}

// ListStoreRatings godoc
// @Summary      Calificaciones de una tienda propia (owner)
// @Tags         owner
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "store id"
// @Success      200  {array}   dto.StoreRatingItem
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/owner/stores/{id}/ratings [get]
func (h *OwnerHandler) ListStoreRatings(c *fiber.Ctx) error {
	ratings, err := h.storeUC.ListStoreRatings(c.Context(), GetUserID(c), c.Params("id"))
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(ratings)
}

// DownloadRatingsPDF godoc
// @Summary      Reporte PDF de calificaciones de una tienda propia (owner)
// @Tags         owner
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id  path  string  true  "store id"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/owner/stores/{id}/ratings/pdf [get]
func (h *OwnerHandler) DownloadRatingsPDF(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.pdfUC.DownloadStoreRatingsPDF(c.Context(), GetUserID(c), c.Params("id"))
	if err != nil {
		return mapError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
