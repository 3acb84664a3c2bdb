package reports

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Tiendas-api/internal/domain"
	"github.com/jhoicas/Tiendas-api/internal/domain/entity"
	"github.com/jhoicas/Tiendas-api/internal/domain/repository"
)

// RatingsReport datos listos para rendir el PDF de calificaciones de una tienda.
type RatingsReport struct {
	Store     entity.Store
	AvgRating decimal.Decimal
	Ratings   []repository.StoreRatingRow
}

// RatingsPDFGenerator puerto de generación de PDFs; la implementación vive en
// infrastructure/pdf.
type RatingsPDFGenerator interface {
	GenerateRatingsPDF(ctx context.Context, report *RatingsReport) ([]byte, error)
}

// PDFUseCase genera el reporte PDF de calificaciones de una tienda para su dueño.
type PDFUseCase struct {
	storeRepo  repository.StoreRepository
	ratingRepo repository.RatingRepository
	generator  RatingsPDFGenerator
}

// NewPDFUseCase construye el caso de uso inyectando sus dependencias.
func NewPDFUseCase(storeRepo repository.StoreRepository, ratingRepo repository.RatingRepository, generator RatingsPDFGenerator) *PDFUseCase {
	return &PDFUseCase{storeRepo: storeRepo, ratingRepo: ratingRepo, generator: generator}
}

// DownloadStoreRatingsPDF verifica la propiedad de la tienda y genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil)   si todo sale bien.
//   - domain.ErrStoreNotFound     si la tienda no existe o no pertenece al dueño.
func (uc *PDFUseCase) DownloadStoreRatingsPDF(ctx context.Context, ownerID, storeID string) (pdfBytes []byte, filename string, err error) {
	owned, err := uc.storeRepo.BelongsToOwner(ctx, storeID, ownerID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: verificar propiedad: %w", err)
	}
	if !owned {
		return nil, "", domain.ErrStoreNotFound
	}

	store, err := uc.storeRepo.GetByID(ctx, storeID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener tienda: %w", err)
	}
	if store == nil {
		return nil, "", domain.ErrStoreNotFound
	}

	rows, err := uc.ratingRepo.ListByStore(ctx, storeID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener calificaciones: %w", err)
	}

	var sum int
	for _, r := range rows {
		sum += r.Rating
	}
	avg := decimal.Zero
	if len(rows) > 0 {
		avg = decimal.NewFromInt(int64(sum)).Div(decimal.NewFromInt(int64(len(rows)))).Round(2)
	}

	report := &RatingsReport{Store: *store, AvgRating: avg, Ratings: rows}
	pdfBytes, err = uc.generator.GenerateRatingsPDF(ctx, report)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generar reporte: %w", err)
	}
	return pdfBytes, fmt.Sprintf("ratings-%s.pdf", store.ID), nil
}
