package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Tiendas-api/internal/application/dto"
	"github.com/jhoicas/Tiendas-api/internal/domain"
	"github.com/jhoicas/Tiendas-api/internal/domain/account"
	"github.com/jhoicas/Tiendas-api/internal/domain/entity"
	"github.com/jhoicas/Tiendas-api/internal/domain/repository"
)

// StoreUseCase reglas de negocio de tiendas: creación admin, listado general
// con promedios y vistas del dueño.
type StoreUseCase struct {
	storeRepo  repository.StoreRepository
	userRepo   repository.UserRepository
	ratingRepo repository.RatingRepository
}

// NewStoreUseCase construye el caso de uso con los puertos de persistencia.
func NewStoreUseCase(storeRepo repository.StoreRepository, userRepo repository.UserRepository, ratingRepo repository.RatingRepository) *StoreUseCase {
	return &StoreUseCase{storeRepo: storeRepo, userRepo: userRepo, ratingRepo: ratingRepo}
}

// Create crea una tienda. Si viene OwnerID, el usuario referenciado debe
// existir y tener rol owner; ningún otro rol puede quedar como dueño.
func (uc *StoreUseCase) Create(ctx context.Context, in dto.CreateStoreRequest) (*dto.StoreResponse, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name es requerido", account.ErrValidation)
	}
	if err := account.ValidateEmail(in.Email); err != nil {
		return nil, err
	}
	if err := account.ValidateAddress(in.Address); err != nil {
		return nil, err
	}
	if in.OwnerID != "" {
		owner, err := uc.userRepo.GetByID(ctx, in.OwnerID)
		if err != nil {
			return nil, err
		}
		if owner == nil {
			return nil, domain.ErrUserNotFound
		}
		if owner.Role != entity.RoleOwner {
			return nil, domain.ErrOwnerRequired
		}
	}
	now := time.Now()
	store := &entity.Store{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Email:     in.Email,
		Address:   in.Address,
		OwnerID:   in.OwnerID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.storeRepo.Create(ctx, store); err != nil {
		return nil, err
	}
	return &dto.StoreResponse{
		ID:      store.ID,
		Name:    store.Name,
		Email:   store.Email,
		Address: store.Address,
		OwnerID: store.OwnerID,
	}, nil
}

// List devuelve las tiendas con su promedio y la calificación propia del
// consultante. includePrivate expone email/owner_id (listado admin).
func (uc *StoreUseCase) List(ctx context.Context, in dto.StoreListRequest, requestingUserID string, includePrivate bool) ([]dto.StoreListItem, error) {
	filter := repository.StoreFilter{Name: in.Name, Address: in.Address}
	sort := repository.StoreSort{Field: in.Sort, Desc: in.Desc()}
	rows, err := uc.storeRepo.ListWithRatings(ctx, filter, sort, requestingUserID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StoreListItem, 0, len(rows))
	for _, r := range rows {
		item := dto.StoreListItem{
			ID:         r.Store.ID,
			Name:       r.Store.Name,
			Address:    r.Store.Address,
			AvgRating:  r.AvgRating,
			UserRating: r.UserRating,
		}
		if includePrivate {
			item.Email = r.Store.Email
			item.OwnerID = r.Store.OwnerID
		}
		out = append(out, item)
	}
	return out, nil
}

// ListOwned devuelve las tiendas del dueño autenticado con promedio y conteo.
// El filtro por dueño lo impone el servidor, nunca el caller.
func (uc *StoreUseCase) ListOwned(ctx context.Context, ownerID string) ([]dto.OwnerStoreItem, error) {
	rows, err := uc.storeRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OwnerStoreItem, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.OwnerStoreItem{
			ID:          r.Store.ID,
			Name:        r.Store.Name,
			Address:     r.Store.Address,
			AvgRating:   r.AvgRating,
			RatingCount: r.RatingCount,
		})
	}
	return out, nil
}

// ListStoreRatings devuelve las calificaciones de una tienda del dueño. La
// verificación de propiedad va antes del listado: una tienda ajena responde
// ErrStoreNotFound, no las calificaciones de otro dueño.
func (uc *StoreUseCase) ListStoreRatings(ctx context.Context, ownerID, storeID string) ([]dto.StoreRatingItem, error) {
	owned, err := uc.storeRepo.BelongsToOwner(ctx, storeID, ownerID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, domain.ErrStoreNotFound
	}
	rows, err := uc.ratingRepo.ListByStore(ctx, storeID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StoreRatingItem, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.StoreRatingItem{
			ID:     r.ID,
			Rating: r.Rating,
			Name:   r.RaterName,
			Email:  r.RaterEmail,
		})
	}
	return out, nil
}
