package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Tiendas-api/internal/domain/entity"
)

// StoreFilter filtros opcionales (substring case-insensitive) para tiendas.
type StoreFilter struct {
	Name    string
	Address string
}

// StoreSort columnas permitidas para ordenar tiendas (name | email | address).
type StoreSort struct {
	Field string
	Desc  bool
}

// StoreWithRating resultado crudo del listado de tiendas: la tienda más el
// promedio de todas sus calificaciones y la calificación propia del usuario
// que consulta (nil si no ha calificado).
type StoreWithRating struct {
	Store      entity.Store
	AvgRating  decimal.Decimal // 0 si no hay calificaciones
	UserRating *int            // calificación del usuario consultante
}

// OwnedStoreStats resultado crudo para el panel del dueño: tienda propia con
// promedio y cantidad de calificaciones.
type OwnedStoreStats struct {
	Store       entity.Store
	AvgRating   decimal.Decimal
	RatingCount int
}

// StoreRepository define el puerto de persistencia para Store (DIP).
type StoreRepository interface {
	Create(ctx context.Context, store *entity.Store) error
	GetByID(ctx context.Context, id string) (*entity.Store, error)
	// ListWithRatings calcula avg_rating por tienda y la calificación propia de
	// requestingUserID en una sola consulta.
	ListWithRatings(ctx context.Context, filter StoreFilter, sort StoreSort, requestingUserID string) ([]StoreWithRating, error)
	// ListByOwner devuelve solo las tiendas de ownerID; el filtro es obligatorio
	// del lado servidor, nunca provisto por el caller.
	ListByOwner(ctx context.Context, ownerID string) ([]OwnedStoreStats, error)
	// BelongsToOwner verifica la propiedad antes de exponer calificaciones.
	BelongsToOwner(ctx context.Context, storeID, ownerID string) (bool, error)
	// AvgRatingByOwner promedio de calificaciones sobre todas las tiendas de un
	// dueño (0 si no tiene tiendas o calificaciones).
	AvgRatingByOwner(ctx context.Context, ownerID string) (decimal.Decimal, error)
}
