package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Tiendas-api/internal/domain/entity"
	"github.com/jhoicas/Tiendas-api/internal/domain/repository"
)

var _ repository.RatingRepository = (*RatingRepo)(nil)

// RatingRepo implementación del puerto RatingRepository sobre PostgreSQL.
type RatingRepo struct {
	pool *pgxpool.Pool
}

// NewRatingRepository construye el adaptador de persistencia para calificaciones.
func NewRatingRepository(pool *pgxpool.Pool) *RatingRepo {
	return &RatingRepo{pool: pool}
}

// Upsert inserta o reemplaza la calificación en un solo statement contra el
// constraint único (user_id, store_id). Dos envíos concurrentes del mismo
// usuario serializan en la DB: queda exactamente una fila con el último valor.
func (r *RatingRepo) Upsert(ctx context.Context, userID, storeID string, value int) (*entity.Rating, error) {
	query := `
		INSERT INTO ratings (id, user_id, store_id, rating)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, store_id)
		DO UPDATE SET rating = EXCLUDED.rating, updated_at = now()
		RETURNING id, user_id, store_id, rating, created_at, updated_at`
	var rt entity.Rating
	err := r.pool.QueryRow(ctx, query, uuid.New().String(), userID, storeID, value).Scan(
		&rt.ID, &rt.UserID, &rt.StoreID, &rt.Rating, &rt.CreatedAt, &rt.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("upsert rating: %w", err)
	}
	return &rt, nil
}

// ListByStore devuelve las calificaciones de una tienda con nombre y email del calificador.
func (r *RatingRepo) ListByStore(ctx context.Context, storeID string) ([]repository.StoreRatingRow, error) {
	query := `
		SELECT r.id, r.rating, u.name, u.email
		FROM ratings r
		JOIN users u ON r.user_id = u.id
		WHERE r.store_id = $1
		ORDER BY r.updated_at DESC`
	rows, err := r.pool.Query(ctx, query, storeID)
	if err != nil {
		return nil, fmt.Errorf("list store ratings: %w", err)
	}
	defer rows.Close()
	var list []repository.StoreRatingRow
	for rows.Next() {
		var row repository.StoreRatingRow
		if err := rows.Scan(&row.ID, &row.Rating, &row.RaterName, &row.RaterEmail); err != nil {
			return nil, fmt.Errorf("scan rating: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo consultas de conteo global para el panel admin. Read-only.
type StatsRepo struct {
	pool *pgxpool.Pool
}

// NewStatsRepository construye el adaptador de estadísticas.
func NewStatsRepository(pool *pgxpool.Pool) *StatsRepo {
	return &StatsRepo{pool: pool}
}

// Totals cuenta usuarios, tiendas y calificaciones en una sola consulta.
func (r *StatsRepo) Totals(ctx context.Context) (repository.GlobalStats, error) {
	var stats repository.GlobalStats
	err := r.pool.QueryRow(ctx, `
		SELECT (SELECT COUNT(*) FROM users),
		       (SELECT COUNT(*) FROM stores),
		       (SELECT COUNT(*) FROM ratings)`,
	).Scan(&stats.TotalUsers, &stats.TotalStores, &stats.TotalRatings)
	if err != nil {
		return repository.GlobalStats{}, fmt.Errorf("global stats: %w", err)
	}
	return stats, nil
}
