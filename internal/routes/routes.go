// Package routes defines the API routing configuration.
// It sets up all HTTP routes and their corresponding handlers,
// including middleware and authentication requirements.
package routes

import (
	"kobo/internal/handlers"
	"kobo/internal/middleware"
	"kobo/internal/repositories"
	"kobo/internal/services/auth"
	"kobo/internal/services/karma"
	"kobo/internal/services/ledger"
	"kobo/internal/services/user"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes configures all application routes.
// It groups routes by functionality and applies appropriate middleware.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// Initialize repositories
	ledgerRepo := repositories.NewLedgerRepository(db)
	userRepo := repositories.NewUserRepository(db, repositories.CacheService)

	// Initialize services
	karmaGate := karma.NewFromEnv()
	ledgerService := ledger.NewService(ledgerRepo, repositories.CacheService, &ledger.NoopMetricsCollector{})
	userService := user.NewService(userRepo, ledgerRepo, karmaGate)
	authService := auth.NewService(userRepo)

	// Initialize handlers
	walletHandler := handlers.NewWalletHandler(ledgerService)
	userHandler := handlers.NewUserHandler(userService)
	authHandler := handlers.NewAuthHandler(authService)

	app.Get("/health", handlers.HealthCheck)

	api := app.Group("/api")

	// Public endpoints (no auth required)
	api.Post("/register", userHandler.RegisterUser)
	api.Post("/login", authHandler.LoginUser)

	// Authenticated endpoints
	authenticated := api.Group("/", middleware.Auth())
	authenticated.Get("/users/me", userHandler.GetProfile)

	wallets := authenticated.Group("/wallets")
	wallets.Get("/balance", walletHandler.GetBalance)
	wallets.Post("/fund", walletHandler.Fund)
	wallets.Post("/withdraw", walletHandler.Withdraw)
	wallets.Post("/transfer", walletHandler.Transfer)
	wallets.Get("/transactions", walletHandler.GetTransactions)
}
