package repository

import (
	"context"

	"github.com/jhoicas/Tiendas-api/internal/domain/entity"
)

// UserFilter filtros opcionales para el listado de usuarios. Los campos de
// texto son substring case-insensitive; Role es coincidencia exacta.
type UserFilter struct {
	Name    string
	Email   string
	Address string
	Role    string
}

// UserSort columnas permitidas para ordenar el listado de usuarios. Cualquier
// otro valor cae al orden por defecto (name asc).
type UserSort struct {
	Field string // name | email | role
	Desc  bool
}

// UserRepository define el puerto de persistencia para User (DIP).
// La implementación vive en infrastructure.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// List aplica filtros y orden con allow-list de columnas; nunca interpola
	// identificadores provistos por el caller.
	List(ctx context.Context, filter UserFilter, sort UserSort) ([]*entity.User, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
}
