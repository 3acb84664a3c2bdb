package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Tiendas-api/internal/application/auth"
	"github.com/jhoicas/Tiendas-api/internal/application/reports"
	"github.com/jhoicas/Tiendas-api/internal/application/usecase"
	"github.com/jhoicas/Tiendas-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	UserUC    *usecase.UserUseCase
	StoreUC   *usecase.StoreUseCase
	RatingUC  *usecase.RatingUseCase
	StatsUC   *usecase.StatsUseCase
	PDFUC     *reports.PDFUseCase
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Stores: listado para cualquier rol autenticado, creación solo admin
	stores := protected.Group("/stores")
	storeHandler := NewStoreHandler(deps.StoreUC)
	stores.Get("/", storeHandler.List)
	stores.Post("/", RequireRole(entity.RoleAdmin), storeHandler.Create)

	// Ratings: upsert para cualquier rol autenticado
	ratings := protected.Group("/ratings")
	ratingHandler := NewRatingHandler(deps.RatingUC)
	ratings.Post("/:storeId", ratingHandler.Rate)

	// Users: directorio admin + cambio de contraseña propio
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Put("/password/change", authHandler.ChangePassword)
	users.Get("/", RequireRole(entity.RoleAdmin), userHandler.List)
	users.Post("/", RequireRole(entity.RoleAdmin), userHandler.Create)
	users.Get("/:id", RequireRole(entity.RoleAdmin), userHandler.GetByID)

	// Owner: panel del dueño
	owner := protected.Group("/owner", RequireRole(entity.RoleOwner))
	ownerHandler := NewOwnerHandler(deps.StoreUC, deps.PDFUC)
	owner.Get("/stores", ownerHandler.ListStores)
	owner.Get("/stores/:id/ratings", ownerHandler.ListStoreRatings)
	owner.Get("/stores/:id/ratings/pdf", ownerHandler.DownloadRatingsPDF)

	// Admin: estadísticas globales
	admin := protected.Group("/admin", RequireRole(entity.RoleAdmin))
	statsHandler := NewStatsHandler(deps.StatsUC)
	admin.Get("/stats", statsHandler.Stats)
}
