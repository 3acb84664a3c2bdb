package dto

import "github.com/shopspring/decimal"

// CreateStoreRequest entrada admin para crear una tienda. OwnerID es opcional;
// si viene, debe referenciar a un usuario con rol owner.
type CreateStoreRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Address string `json:"address" validate:"required,max=400"`
	OwnerID string `json:"owner_id" validate:"omitempty,uuid"`
}

// StoreResponse salida de una tienda recién creada.
type StoreResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	OwnerID string `json:"owner_id,omitempty"`
}

// StoreListItem fila del listado de tiendas. Email y OwnerID solo se pueblan
// para callers admin; UserRating es la calificación propia del consultante.
type StoreListItem struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Address    string          `json:"address"`
	Email      string          `json:"email,omitempty"`
	OwnerID    string          `json:"owner_id,omitempty"`
	AvgRating  decimal.Decimal `json:"avg_rating"`
	UserRating *int            `json:"user_rating"`
}

// StoreListRequest filtros y orden del listado de tiendas.
type StoreListRequest struct {
	Name    string `query:"name"`
	Address string `query:"address"`
	SortRequest
}

// OwnerStoreItem fila del panel del dueño: tienda propia con promedio y
// cantidad de calificaciones.
type OwnerStoreItem struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Address     string          `json:"address"`
	AvgRating   decimal.Decimal `json:"avg_rating"`
	RatingCount int             `json:"rating_count"`
}

// StoreRatingItem calificación individual de una tienda con su calificador,
// visible solo para el dueño de la tienda.
type StoreRatingItem struct {
	ID     string `json:"id"`
	Rating int    `json:"rating"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}
