package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/vinayak20130/dino-ventures-assignment/cmd/docs"
	portssvc "github.com/vinayak20130/dino-ventures-assignment/internal/core/ports/services"
	"github.com/vinayak20130/dino-ventures-assignment/internal/middleware"
	"github.com/vinayak20130/dino-ventures-assignment/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	r.GET("/", getHome)

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services)

	// Swagger routes (conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Apply AuthMiddleware to the entire v1 group
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerTransactionRoutes(v1, services.Ledger)
	registerWalletRoutes(v1, services.Wallet)
	registerUserRoutes(v1, services.User)
	registerAssetTypeRoutes(v1, services.AssetType)
}

// registerTransactionRoutes registers movement and transaction read routes.
// Write endpoints require the Idempotency-Key header.
func registerTransactionRoutes(group *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newTransactionHandler(ledgerService)

	transactions := group.Group("/transactions")
	writes := transactions.Group("", middleware.RequireIdempotencyKey())
	writes.POST("/topup", h.topUp)
	writes.POST("/bonus", h.bonus)
	writes.POST("/purchase", h.purchase)

	transactions.GET("", h.listTransactions)
	transactions.GET("/key/:idempotencyKey", h.getTransactionByKey)
	transactions.GET("/:transactionID", h.getTransaction)
}

// registerWalletRoutes registers wallet routes.
func registerWalletRoutes(group *gin.RouterGroup, walletService portssvc.WalletSvcFacade) {
	h := newWalletHandler(walletService)

	group.GET("/wallets/:walletID", h.getWallet)
	group.GET("/users/:userID/wallets", h.listUserWallets)
	group.POST("/users/:userID/wallets/:assetTypeCode", h.createWallet)
}

// registerUserRoutes registers user routes.
func registerUserRoutes(group *gin.RouterGroup, userService portssvc.UserSvcFacade) {
	h := newUserHandler(userService)

	users := group.Group("/users")
	users.POST("", h.createUser)
	users.GET("/:userID", h.getUser)
}

// registerAssetTypeRoutes registers asset type routes.
func registerAssetTypeRoutes(group *gin.RouterGroup, assetTypeService portssvc.AssetTypeSvcFacade) {
	h := newAssetTypeHandler(assetTypeService)

	assetTypes := group.Group("/asset-types")
	assetTypes.POST("", h.createAssetType)
	assetTypes.GET("", h.listAssetTypes)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	// Swagger setup
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
