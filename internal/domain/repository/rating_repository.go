package repository

import (
	"context"

	"github.com/jhoicas/Tiendas-api/internal/domain/entity"
)

// StoreRatingRow calificación de una tienda junto con quién la emitió,
// para el panel del dueño.
type StoreRatingRow struct {
	ID         string
	Rating     int
	RaterName  string
	RaterEmail string
}

// RatingRepository define el puerto de persistencia para Rating (DIP).
type RatingRepository interface {
	// Upsert inserta la calificación o, si ya existe una fila para el par
	// (user_id, store_id), reemplaza su valor en un solo statement atómico.
	Upsert(ctx context.Context, userID, storeID string, value int) (*entity.Rating, error)
	// ListByStore devuelve las calificaciones de una tienda con nombre y email
	// de cada calificador.
	ListByStore(ctx context.Context, storeID string) ([]StoreRatingRow, error)
}

// GlobalStats conteos globales para el panel admin.
type GlobalStats struct {
	TotalUsers   int
	TotalStores  int
	TotalRatings int
}

// StatsRepository define las consultas de conteo global. Read-only.
type StatsRepository interface {
	Totals(ctx context.Context) (GlobalStats, error)
}
