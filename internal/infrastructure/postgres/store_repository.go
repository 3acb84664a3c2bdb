package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Tiendas-api/internal/domain"
	"github.com/jhoicas/Tiendas-api/internal/domain/entity"
	"github.com/jhoicas/Tiendas-api/internal/domain/repository"
)

var _ repository.StoreRepository = (*StoreRepo)(nil)

// Columnas permitidas para ordenar tiendas.
var storeSortColumns = map[string]string{
	"name":    "s.name",
	"email":   "s.email",
	"address": "s.address",
}

// StoreRepo implementación del puerto StoreRepository sobre PostgreSQL.
type StoreRepo struct {
	pool *pgxpool.Pool
}

// NewStoreRepository construye el adaptador de persistencia para tiendas.
func NewStoreRepository(pool *pgxpool.Pool) *StoreRepo {
	return &StoreRepo{pool: pool}
}

// Create persiste una tienda. owner_id vacío se guarda como NULL.
func (r *StoreRepo) Create(ctx context.Context, store *entity.Store) error {
	query := `
		INSERT INTO stores (id, name, email, address, owner_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, '')::uuid, $6, $7)`
	_, err := r.pool.Exec(ctx, query,
		store.ID, store.Name, store.Email, store.Address, store.OwnerID,
		store.CreatedAt, store.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert store: %w", err)
	}
	return nil
}

// GetByID obtiene una tienda por ID. Devuelve nil sin error si no existe.
func (r *StoreRepo) GetByID(ctx context.Context, id string) (*entity.Store, error) {
	query := `
		SELECT id, name, email, address, COALESCE(owner_id::text, ''), created_at, updated_at
		FROM stores WHERE id = $1`
	var s entity.Store
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.Name, &s.Email, &s.Address, &s.OwnerID, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get store by id: %w", err)
	}
	return &s, nil
}

// ListWithRatings devuelve las tiendas con el promedio de todas sus
// calificaciones y la calificación propia de requestingUserID, en una sola
// consulta con dos LEFT JOIN sobre ratings.
func (r *StoreRepo) ListWithRatings(ctx context.Context, filter repository.StoreFilter, sort repository.StoreSort, requestingUserID string) ([]repository.StoreWithRating, error) {
	query := `
		SELECT s.id, s.name, s.email, s.address, COALESCE(s.owner_id::text, ''),
		       s.created_at, s.updated_at,
		       COALESCE(AVG(r.rating), 0) AS avg_rating,
		       MAX(ur.rating) AS user_rating
		FROM stores s
		LEFT JOIN ratings r ON s.id = r.store_id
		LEFT JOIN ratings ur ON s.id = ur.store_id AND ur.user_id = $1`
	params := []any{requestingUserID}
	var where []string
	if filter.Name != "" {
		params = append(params, "%"+filter.Name+"%")
		where = append(where, "s.name ILIKE $"+strconv.Itoa(len(params)))
	}
	if filter.Address != "" {
		params = append(params, "%"+filter.Address+"%")
		where = append(where, "s.address ILIKE $"+strconv.Itoa(len(params)))
	}
	for i, w := range where {
		if i == 0 {
			query += " WHERE " + w
		} else {
			query += " AND " + w
		}
	}
	query += " GROUP BY s.id"
	query += " ORDER BY " + sortClause(storeSortColumns, sort.Field, "s.name", sort.Desc)

	rows, err := r.pool.Query(ctx, query, params...)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	defer rows.Close()
	var list []repository.StoreWithRating
	for rows.Next() {
		var row repository.StoreWithRating
		if err := rows.Scan(
			&row.Store.ID, &row.Store.Name, &row.Store.Email, &row.Store.Address, &row.Store.OwnerID,
			&row.Store.CreatedAt, &row.Store.UpdatedAt,
			&row.AvgRating, &row.UserRating,
		); err != nil {
			return nil, fmt.Errorf("scan store: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// ListByOwner devuelve las tiendas del dueño con promedio y conteo de calificaciones.
func (r *StoreRepo) ListByOwner(ctx context.Context, ownerID string) ([]repository.OwnedStoreStats, error) {
	query := `
		SELECT s.id, s.name, s.email, s.address, COALESCE(s.owner_id::text, ''),
		       s.created_at, s.updated_at,
		       COALESCE(AVG(r.rating), 0) AS avg_rating,
		       COUNT(r.id) AS rating_count
		FROM stores s
		LEFT JOIN ratings r ON s.id = r.store_id
		WHERE s.owner_id = $1
		GROUP BY s.id
		ORDER BY s.name ASC`
	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list owner stores: %w", err)
	}
	defer rows.Close()
	var list []repository.OwnedStoreStats
	for rows.Next() {
		var row repository.OwnedStoreStats
		if err := rows.Scan(
			&row.Store.ID, &row.Store.Name, &row.Store.Email, &row.Store.Address, &row.Store.OwnerID,
			&row.Store.CreatedAt, &row.Store.UpdatedAt,
			&row.AvgRating, &row.RatingCount,
		); err != nil {
			return nil, fmt.Errorf("scan owner store: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// BelongsToOwner verifica si la tienda pertenece al dueño dado.
func (r *StoreRepo) BelongsToOwner(ctx context.Context, storeID, ownerID string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM stores WHERE id = $1 AND owner_id = $2)`,
		storeID, ownerID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("store belongs to owner: %w", err)
	}
	return exists, nil
}

// AvgRatingByOwner promedio de calificaciones sobre todas las tiendas del
// dueño; 0 si no tiene tiendas o calificaciones.
func (r *StoreRepo) AvgRatingByOwner(ctx context.Context, ownerID string) (decimal.Decimal, error) {
	var avg decimal.Decimal
	err := r.pool.QueryRow(ctx, `
		SELECT COALESCE(AVG(r.rating), 0)
		FROM stores s
		LEFT JOIN ratings r ON s.id = r.store_id
		WHERE s.owner_id = $1`,
		ownerID,
	).Scan(&avg)
	if err != nil {
		return decimal.Zero, fmt.Errorf("avg rating by owner: %w", err)
	}
	return avg, nil
}
