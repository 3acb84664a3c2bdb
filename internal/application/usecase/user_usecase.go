package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Tiendas-api/internal/application/auth"
	"github.com/jhoicas/Tiendas-api/internal/application/dto"
	"github.com/jhoicas/Tiendas-api/internal/domain"
	"github.com/jhoicas/Tiendas-api/internal/domain/account"
	"github.com/jhoicas/Tiendas-api/internal/domain/entity"
	"github.com/jhoicas/Tiendas-api/internal/domain/repository"
)

// UserUseCase reglas de negocio del directorio de usuarios (operaciones admin).
type UserUseCase struct {
	userRepo  repository.UserRepository
	storeRepo repository.StoreRepository
}

// NewUserUseCase construye el caso de uso con los puertos de persistencia.
func NewUserUseCase(userRepo repository.UserRepository, storeRepo repository.StoreRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo, storeRepo: storeRepo}
}

// Create crea un usuario con rol arbitrario (solo admin llega aquí). Misma
// validación que el registro, más el rol del conjunto cerrado.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if err := account.ValidateNew(in.Name, in.Email, in.Password, in.Address); err != nil {
		return nil, err
	}
	if err := account.ValidateRole(in.Role); err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        in.Email,
		Address:      in.Address,
		PasswordHash: string(hash),
		Role:         in.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// List devuelve el directorio filtrado y ordenado; los hashes nunca cruzan
// hacia el DTO.
func (uc *UserUseCase) List(ctx context.Context, in dto.UserListRequest) ([]dto.UserResponse, error) {
	filter := repository.UserFilter{
		Name:    in.Name,
		Email:   in.Email,
		Address: in.Address,
		Role:    in.Role,
	}
	sort := repository.UserSort{Field: in.Sort, Desc: in.Desc()}
	users, err := uc.userRepo.List(ctx, filter, sort)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *auth.ToUserResponse(u))
	}
	return out, nil
}

// GetDetail devuelve el detalle de un usuario; para dueños agrega el promedio
// de calificaciones sobre todas sus tiendas (0 si no tiene).
func (uc *UserUseCase) GetDetail(ctx context.Context, id string) (*dto.UserDetailResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	out := &dto.UserDetailResponse{UserResponse: *auth.ToUserResponse(user)}
	if user.Role == entity.RoleOwner {
		avg, err := uc.storeRepo.AvgRatingByOwner(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		out.OwnerRating = &avg
	}
	return out, nil
}
