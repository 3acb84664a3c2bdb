package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Tiendas-api/internal/application/dto"
	"github.com/jhoicas/Tiendas-api/internal/application/usecase"
	"github.com/jhoicas/Tiendas-api/internal/domain"
	"github.com/jhoicas/Tiendas-api/internal/domain/account"
	"github.com/jhoicas/Tiendas-api/internal/domain/entity"
	"github.com/jhoicas/Tiendas-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia. fakeRatingRepo reproduce la
// semántica del upsert: una sola fila por par (user, store) con el último valor.
// ──────────────────────────────────────────────────────────────────────────────

type ratingKey struct{ userID, storeID string }

type fakeRatingRepo struct {
	rows map[ratingKey]*entity.Rating
}

func newFakeRatingRepo() *fakeRatingRepo {
	return &fakeRatingRepo{rows: map[ratingKey]*entity.Rating{}}
}

func (f *fakeRatingRepo) Upsert(_ context.Context, userID, storeID string, value int) (*entity.Rating, error) {
	key := ratingKey{userID, storeID}
	if existing, ok := f.rows[key]; ok {
		existing.Rating = value
		existing.UpdatedAt = time.Now()
		cp := *existing
		return &cp, nil
	}
	now := time.Now()
	rt := &entity.Rating{
		ID:        uuid.New().String(),
		UserID:    userID,
		StoreID:   storeID,
		Rating:    value,
		CreatedAt: now,
		UpdatedAt: now,
	}
	f.rows[key] = rt
	cp := *rt
	return &cp, nil
}

func (f *fakeRatingRepo) ListByStore(_ context.Context, storeID string) ([]repository.StoreRatingRow, error) {
	var out []repository.StoreRatingRow
	for _, r := range f.rows {
		if r.StoreID == storeID {
			out = append(out, repository.StoreRatingRow{ID: r.ID, Rating: r.Rating})
		}
	}
	return out, nil
}

type fakeStoreRepo struct {
	stores  map[string]*entity.Store
	ratings *fakeRatingRepo
}

func newFakeStoreRepo(ratings *fakeRatingRepo) *fakeStoreRepo {
	return &fakeStoreRepo{stores: map[string]*entity.Store{}, ratings: ratings}
}

func (f *fakeStoreRepo) Create(_ context.Context, store *entity.Store) error {
	for _, s := range f.stores {
		if s.Email == store.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *store
	f.stores[store.ID] = &cp
	return nil
}

func (f *fakeStoreRepo) GetByID(_ context.Context, id string) (*entity.Store, error) {
	s, ok := f.stores[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (f *fakeStoreRepo) ListWithRatings(_ context.Context, _ repository.StoreFilter, _ repository.StoreSort, requestingUserID string) ([]repository.StoreWithRating, error) {
	var out []repository.StoreWithRating
	for _, s := range f.stores {
		row := repository.StoreWithRating{Store: *s, AvgRating: f.avgFor(s.ID)}
		if r, ok := f.ratings.rows[ratingKey{requestingUserID, s.ID}]; ok {
			v := r.Rating
			row.UserRating = &v
		}
		out = append(out, row)
	}
	return out, nil
}

func (f *fakeStoreRepo) ListByOwner(_ context.Context, ownerID string) ([]repository.OwnedStoreStats, error) {
	var out []repository.OwnedStoreStats
	for _, s := range f.stores {
		if s.OwnerID != ownerID {
			continue
		}
		count := 0
		for _, r := range f.ratings.rows {
			if r.StoreID == s.ID {
				count++
			}
		}
		out = append(out, repository.OwnedStoreStats{Store: *s, AvgRating: f.avgFor(s.ID), RatingCount: count})
	}
	return out, nil
}

func (f *fakeStoreRepo) BelongsToOwner(_ context.Context, storeID, ownerID string) (bool, error) {
	s, ok := f.stores[storeID]
	return ok && s.OwnerID == ownerID, nil
}

func (f *fakeStoreRepo) AvgRatingByOwner(_ context.Context, ownerID string) (decimal.Decimal, error) {
	var sum, count int
	for _, s := range f.stores {
		if s.OwnerID != ownerID {
			continue
		}
		for _, r := range f.ratings.rows {
			if r.StoreID == s.ID {
				sum += r.Rating
				count++
			}
		}
	}
	if count == 0 {
		return decimal.Zero, nil
	}
	return decimal.NewFromInt(int64(sum)).Div(decimal.NewFromInt(int64(count))), nil
}

func (f *fakeStoreRepo) avgFor(storeID string) decimal.Decimal {
	var sum, count int
	for _, r := range f.ratings.rows {
		if r.StoreID == storeID {
			sum += r.Rating
			count++
		}
	}
	if count == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(sum)).Div(decimal.NewFromInt(int64(count)))
}

func seedStore(t *testing.T, repo *fakeStoreRepo, ownerID string) *entity.Store {
	t.Helper()
	store := &entity.Store{
		ID:      uuid.New().String(),
		Name:    "Tienda de Prueba",
		Email:   uuid.New().String() + "@tienda.com",
		Address: "Calle 1",
		OwnerID: ownerID,
	}
	require.NoError(t, repo.Create(context.Background(), store))
	return store
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests del upsert de calificaciones
// ──────────────────────────────────────────────────────────────────────────────

func TestRate_ValorFueraDeRango(t *testing.T) {
	ratings := newFakeRatingRepo()
	stores := newFakeStoreRepo(ratings)
	uc := usecase.NewRatingUseCase(ratings, stores)
	store := seedStore(t, stores, "")

	for _, v := range []int{0, -1, 6, 100} {
		_, err := uc.Rate(context.Background(), "user-1", store.ID, dto.RateRequest{Rating: v})
		assert.ErrorIs(t, err, account.ErrValidation, "valor %d debe rechazarse", v)
	}
	assert.Empty(t, ratings.rows, "ninguna calificación inválida debe persistirse")
}

func TestRate_TiendaInexistente(t *testing.T) {
	ratings := newFakeRatingRepo()
	stores := newFakeStoreRepo(ratings)
	uc := usecase.NewRatingUseCase(ratings, stores)

	_, err := uc.Rate(context.Background(), "user-1", uuid.New().String(), dto.RateRequest{Rating: 3})
	assert.ErrorIs(t, err, domain.ErrStoreNotFound)
}

// Calificar dos veces deja exactamente una fila con el último valor, y el
// listado refleja la calificación propia.
func TestRate_ReenvioReemplazaSinDuplicar(t *testing.T) {
	ratings := newFakeRatingRepo()
	stores := newFakeStoreRepo(ratings)
	uc := usecase.NewRatingUseCase(ratings, stores)
	storeUC := usecase.NewStoreUseCase(stores, nil, ratings)
	store := seedStore(t, stores, "")

	first, err := uc.Rate(context.Background(), "user-1", store.ID, dto.RateRequest{Rating: 4})
	require.NoError(t, err)
	assert.Equal(t, 4, first.Rating)

	second, err := uc.Rate(context.Background(), "user-1", store.ID, dto.RateRequest{Rating: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, second.Rating)
	assert.Equal(t, first.ID, second.ID, "el reenvío reutiliza la fila existente")
	assert.Len(t, ratings.rows, 1, "nunca debe haber dos filas para el mismo par (user, store)")

	list, err := storeUC.List(context.Background(), dto.StoreListRequest{}, "user-1", false)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.NotNil(t, list[0].UserRating)
	assert.Equal(t, 2, *list[0].UserRating, "user_rating debe reflejar el último valor")
	assert.True(t, list[0].AvgRating.Equal(decimal.NewFromInt(2)), "el promedio solo cuenta el último valor")
}

// user_rating es nil para quien no ha calificado, sin afectar el promedio.
func TestListStores_UserRatingAusente(t *testing.T) {
	ratings := newFakeRatingRepo()
	stores := newFakeStoreRepo(ratings)
	uc := usecase.NewRatingUseCase(ratings, stores)
	storeUC := usecase.NewStoreUseCase(stores, nil, ratings)
	store := seedStore(t, stores, "")

	_, err := uc.Rate(context.Background(), "user-1", store.ID, dto.RateRequest{Rating: 5})
	require.NoError(t, err)

	list, err := storeUC.List(context.Background(), dto.StoreListRequest{}, "user-2", false)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Nil(t, list[0].UserRating)
	assert.True(t, list[0].AvgRating.Equal(decimal.NewFromInt(5)))
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests del panel del dueño
// ──────────────────────────────────────────────────────────────────────────────

func TestListStoreRatings_TiendaAjenaEsNotFound(t *testing.T) {
	ratings := newFakeRatingRepo()
	stores := newFakeStoreRepo(ratings)
	storeUC := usecase.NewStoreUseCase(stores, nil, ratings)

	mine := seedStore(t, stores, "owner-1")
	foreign := seedStore(t, stores, "owner-2")

	_, err := storeUC.ListStoreRatings(context.Background(), "owner-1", foreign.ID)
	assert.ErrorIs(t, err, domain.ErrStoreNotFound, "una tienda ajena no debe revelar sus calificaciones")

	_, err = storeUC.ListStoreRatings(context.Background(), "owner-1", mine.ID)
	assert.NoError(t, err)
}

func TestListOwned_SoloTiendasPropias(t *testing.T) {
	ratings := newFakeRatingRepo()
	stores := newFakeStoreRepo(ratings)
	ratingUC := usecase.NewRatingUseCase(ratings, stores)
	storeUC := usecase.NewStoreUseCase(stores, nil, ratings)

	mine := seedStore(t, stores, "owner-1")
	seedStore(t, stores, "owner-2")

	_, err := ratingUC.Rate(context.Background(), "user-1", mine.ID, dto.RateRequest{Rating: 3})
	require.NoError(t, err)
	_, err = ratingUC.Rate(context.Background(), "user-2", mine.ID, dto.RateRequest{Rating: 5})
	require.NoError(t, err)

	owned, err := storeUC.ListOwned(context.Background(), "owner-1")
	require.NoError(t, err)
	require.Len(t, owned, 1, "solo las tiendas del dueño autenticado")
	assert.Equal(t, mine.ID, owned[0].ID)
	assert.Equal(t, 2, owned[0].RatingCount)
	assert.True(t, owned[0].AvgRating.Equal(decimal.NewFromInt(4)))
}
