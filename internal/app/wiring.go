package app

import (
	"catalog-service/internal/domain/admin"
	"catalog-service/internal/domain/brand"
	"catalog-service/internal/domain/category"
	"catalog-service/internal/domain/contact"
	"catalog-service/internal/domain/product"
	"catalog-service/internal/domain/stats"
	authHandler "catalog-service/internal/handlers/auth"
	brandHandler "catalog-service/internal/handlers/brand"
	categoryHandler "catalog-service/internal/handlers/category"
	contactHandler "catalog-service/internal/handlers/contact"
	productHandler "catalog-service/internal/handlers/product"
	statsHandler "catalog-service/internal/handlers/stats"
	"catalog-service/internal/middleware"
	"catalog-service/internal/pkg/attempts"
	"catalog-service/internal/pkg/jwt"
	"catalog-service/internal/pkg/media"
	"catalog-service/internal/pkg/metrics"
	authUsecase "catalog-service/internal/service/auth"
	brandUsecase "catalog-service/internal/service/brand"
	categoryUsecase "catalog-service/internal/service/category"
	contactUsecase "catalog-service/internal/service/contact"
	productUsecase "catalog-service/internal/service/product"
	statsUsecase "catalog-service/internal/service/stats"

	"go.uber.org/zap"
)

// Repositories are the stores behind every service.
type Repositories struct {
	Admins     admin.Repository
	Products   product.Repository
	Categories category.Repository
	Brands     brand.Repository
	Contacts   contact.Repository
	Stats      stats.Repository
}

// Dependencies are the shared collaborators built from configuration.
type Dependencies struct {
	Tokens  *jwt.Manager
	Tracker attempts.Tracker
	Images  media.Uploader
	Metrics *metrics.Metrics
	Logger  *zap.Logger
}

// NewHandlers builds services and handlers on top of repos.
func NewHandlers(repos Repositories, deps Dependencies) *Handlers {
	logger := deps.Logger

	authService := authUsecase.NewAuthService(repos.Admins, deps.Tokens, deps.Tracker, deps.Metrics, logger)
	productService := productUsecase.NewProductService(repos.Products, deps.Images, logger)
	categoryService := categoryUsecase.NewCategoryService(repos.Categories, deps.Images, logger)
	brandService := brandUsecase.NewBrandService(repos.Brands, logger)
	contactService := contactUsecase.NewContactService(repos.Contacts, logger)
	statsService := statsUsecase.NewStatsService(repos.Stats, logger)

	return &Handlers{
		AuthHandler:     authHandler.NewAuthHandler(authService, logger),
		ProductHandler:  productHandler.NewProductHandler(productService),
		CategoryHandler: categoryHandler.NewCategoryHandler(categoryService),
		BrandHandler:    brandHandler.NewBrandHandler(brandService),
		ContactHandler:  contactHandler.NewContactHandler(contactService),
		StatsHandler:    statsHandler.NewStatsHandler(statsService),
		AuthMiddleware:  middleware.NewAuthMiddleware(authService, logger),
	}
}
