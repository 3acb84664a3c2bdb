package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/Tiendas-api/internal/application/dto"
	"github.com/jhoicas/Tiendas-api/internal/domain"
	"github.com/jhoicas/Tiendas-api/internal/domain/account"
	"github.com/jhoicas/Tiendas-api/internal/domain/entity"
	"github.com/jhoicas/Tiendas-api/internal/domain/repository"
)

// RatingUseCase upsert de calificaciones.
type RatingUseCase struct {
	ratingRepo repository.RatingRepository
	storeRepo  repository.StoreRepository
}

// NewRatingUseCase construye el caso de uso con los puertos de persistencia.
func NewRatingUseCase(ratingRepo repository.RatingRepository, storeRepo repository.StoreRepository) *RatingUseCase {
	return &RatingUseCase{ratingRepo: ratingRepo, storeRepo: storeRepo}
}

// Rate registra o reemplaza la calificación del usuario sobre la tienda.
// El reemplazo es un solo statement atómico contra el constraint único
// (user_id, store_id): dos envíos concurrentes del mismo usuario nunca dejan
// dos filas ni pierden la última escritura.
func (uc *RatingUseCase) Rate(ctx context.Context, userID, storeID string, in dto.RateRequest) (*dto.RatingResponse, error) {
	if in.Rating < entity.RatingMin || in.Rating > entity.RatingMax {
		return nil, fmt.Errorf("%w: rating debe ser un entero entre %d y %d", account.ErrValidation, entity.RatingMin, entity.RatingMax)
	}
	store, err := uc.storeRepo.GetByID(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrStoreNotFound
	}
	rating, err := uc.ratingRepo.Upsert(ctx, userID, storeID, in.Rating)
	if err != nil {
		return nil, err
	}
	return &dto.RatingResponse{
		ID:      rating.ID,
		UserID:  rating.UserID,
		StoreID: rating.StoreID,
		Rating:  rating.Rating,
	}, nil
}

// StatsUseCase conteos globales del panel admin.
type StatsUseCase struct {
	statsRepo repository.StatsRepository
}

// NewStatsUseCase construye el caso de uso de estadísticas.
func NewStatsUseCase(statsRepo repository.StatsRepository) *StatsUseCase {
	return &StatsUseCase{statsRepo: statsRepo}
}

// Totals devuelve los conteos de usuarios, tiendas y calificaciones.
func (uc *StatsUseCase) Totals(ctx context.Context) (*dto.StatsResponse, error) {
	totals, err := uc.statsRepo.Totals(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.StatsResponse{
		TotalUsers:   totals.TotalUsers,
		TotalStores:  totals.TotalStores,
		TotalRatings: totals.TotalRatings,
	}, nil
}
