// internal/router/router.go
package router

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/dippchain/studio-api/internal/config"
	"github.com/dippchain/studio-api/internal/handlers"
	"github.com/dippchain/studio-api/internal/i18n"
	"github.com/dippchain/studio-api/internal/middleware"
	"github.com/dippchain/studio-api/internal/services"
	"github.com/dippchain/studio-api/internal/store"
	"github.com/dippchain/studio-api/internal/utils"
)

// Dependencies are the injectable backends of the router. A nil Registrar
// or Pinner falls back to the local implementations.
type Dependencies struct {
	Stores    store.Stores
	Registrar services.Registrar
	Pinner    services.Pinner
}

// Initialize builds the engine. ctx bounds the lifetime of background work
// such as rate limiter cleanup.
func Initialize(ctx context.Context, deps Dependencies, cfg *config.Config) *gin.Engine {
	if err := i18n.Initialize(cfg.I18n.DefaultLocale); err != nil {
		logrus.WithError(err).Warn("Failed to load translations, falling back to keys")
	}

	registrar := deps.Registrar
	if registrar == nil {
		registrar = services.NewBlockchainService(cfg)
	}
	pinner := deps.Pinner
	if pinner == nil {
		pinner = services.DigestPinner{}
	}

	// Initialize services
	ipService := services.NewIPService(deps.Stores)
	listingService := services.NewListingService(deps.Stores.Listings)
	governanceService := services.NewGovernanceService(deps.Stores.Proposals)
	violationService := services.NewViolationService(deps.Stores.Violations)
	registrationService := services.NewRegistrationService(registrar, deps.Stores.IPs)
	storageService := services.NewStorageService(pinner, cfg)

	// Initialize handlers
	ipAssetHandler := handlers.NewIPAssetHandler(ipService)
	listingHandler := handlers.NewListingHandler(listingService)
	governanceHandler := handlers.NewGovernanceHandler(governanceService)
	violationHandler := handlers.NewViolationHandler(violationService)
	registrationHandler := handlers.NewRegistrationHandler(registrationService)
	uploadHandler := handlers.NewUploadHandler(storageService, cfg.Storage.MaxUploadSizeMB*1024*1024)
	chainHandler := handlers.NewChainHandler(cfg.Chain)

	r := gin.New()
	r.HandleMethodNotAllowed = true

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	r.Use(middleware.I18nMiddleware(cfg.I18n.DefaultLocale))
	r.Use(middleware.RateLimit(ctx, cfg.RateLimit.General, cfg.RateLimit.Burst))

	r.NoMethod(func(c *gin.Context) {
		utils.MethodNotAllowedResponse(c)
	})
	r.NoRoute(func(c *gin.Context) {
		utils.ErrorResponse(c, http.StatusNotFound, utils.CodeNotFound,
			i18n.T(utils.GetLangFromContext(c), i18n.KeyRouteNotFound), nil)
	})

	// Health check
	r.GET("/health", handlers.Health)

	writeLimit := middleware.RateLimit(ctx, cfg.RateLimit.Write, cfg.RateLimit.Burst)

	api := r.Group("/api")
	{
		api.GET("/ips", ipAssetHandler.GetIPAssets)
		api.GET("/ips/:id", ipAssetHandler.GetIPAsset)

		api.GET("/listings", listingHandler.GetListings)

		api.GET("/governance/proposals", governanceHandler.GetProposals)

		api.GET("/violations", violationHandler.GetViolations)

		api.POST("/ip/register", writeLimit, registrationHandler.RegisterIP)
		api.POST("/ipfs/upload", writeLimit, uploadHandler.Upload)

		api.GET("/config/chain", chainHandler.GetChainConfig)
	}

	return r
}
