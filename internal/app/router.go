// internal/app/router.go
package app

import (
	"net/http"
	"time"

	authHandler "catalog-service/internal/handlers/auth"
	brandHandler "catalog-service/internal/handlers/brand"
	categoryHandler "catalog-service/internal/handlers/category"
	contactHandler "catalog-service/internal/handlers/contact"
	productHandler "catalog-service/internal/handlers/product"
	statsHandler "catalog-service/internal/handlers/stats"
	"catalog-service/internal/middleware"
	xerrors "catalog-service/internal/pkg/errors"
	"catalog-service/internal/pkg/metrics"
	"catalog-service/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MaxRequestBody caps every request body, multipart uploads included.
const MaxRequestBody = 10 << 20

type Handlers struct {
	AuthHandler     *authHandler.AuthHandler
	ProductHandler  *productHandler.ProductHandler
	CategoryHandler *categoryHandler.CategoryHandler
	BrandHandler    *brandHandler.BrandHandler
	ContactHandler  *contactHandler.ContactHandler
	StatsHandler    *statsHandler.StatsHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// Limits groups the per-IP rate limiters applied by the router.
type Limits struct {
	API     middleware.Limit
	Login   middleware.Limit
	Contact middleware.Limit
}

func DefaultLimits() Limits {
	return Limits{
		API:     middleware.APILimit,
		Login:   middleware.LoginLimit,
		Contact: middleware.ContactLimit,
	}
}

type RouterConfig struct {
	Env      string
	Security middleware.SecurityConfig
	Origins  *middleware.OriginPolicy
	Metrics  *metrics.Metrics
	Limits   Limits
}

func SetupRouter(r *gin.Engine, logger *zap.Logger, cfg RouterConfig, h *Handlers) {
	if cfg.Origins == nil {
		cfg.Origins = middleware.NewOriginPolicy()
	}

	r.Use(
		middleware.RequestID(),
		middleware.RecoveryMiddleware(logger),
		middleware.RequestLogger(logger, cfg.Metrics),
		middleware.SecurityHeaders(cfg.Security),
		middleware.CORS(cfg.Origins, logger),
		middleware.MaxBodySize(MaxRequestBody),
	)

	// ==================== Health Check ====================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "OK",
			"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
			"env":       cfg.Env,
		})
	})
	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	api := r.Group("/api")
	api.Use(middleware.RateLimit(cfg.Limits.API, cfg.Metrics))

	// Path IDs are checked ahead of the token on admin routes.
	validID := middleware.ValidateUUID("id")
	auth := h.AuthMiddleware.Auth()

	// ==================== Public Catalog ====================
	products := api.Group("/products")
	{
		products.GET("", h.ProductHandler.ListProducts)
		products.GET("/coming-soon", h.ProductHandler.ListComingSoon)
		products.GET("/new", h.ProductHandler.ListNew)
		products.GET("/:id", validID, h.ProductHandler.GetProduct)
	}
	api.GET("/categories", h.CategoryHandler.ListCategories)
	api.GET("/brands", h.BrandHandler.ListBrands)

	// ==================== Contact Form ====================
	api.POST("/contact", middleware.RateLimit(cfg.Limits.Contact, cfg.Metrics), h.ContactHandler.Submit)

	// ==================== Admin ====================
	admin := api.Group("/admin")
	admin.POST("/login", middleware.RateLimit(cfg.Limits.Login, cfg.Metrics), h.AuthHandler.Login)

	admin.GET("/profile", auth, h.AuthHandler.GetProfile)
	admin.PUT("/profile", auth, h.AuthHandler.UpdateProfile)
	admin.PUT("/password", auth, h.AuthHandler.ChangePassword)

	adminProducts := admin.Group("/products")
	{
		adminProducts.POST("", auth, h.ProductHandler.CreateProduct)
		adminProducts.PUT("/:id", validID, auth, h.ProductHandler.UpdateProduct)
		adminProducts.DELETE("/:id", validID, auth, h.ProductHandler.DeleteProduct)
		adminProducts.POST("/:id/images", validID, auth, h.ProductHandler.UploadImage)
		adminProducts.DELETE("/:id/images/:imageId",
			middleware.ValidateUUID("id", "imageId"), auth, h.ProductHandler.DeleteImage)
	}

	adminCategories := admin.Group("/categories")
	{
		adminCategories.POST("", auth, h.CategoryHandler.CreateCategory)
		adminCategories.PUT("/:id", validID, auth, h.CategoryHandler.UpdateCategory)
		adminCategories.DELETE("/:id", validID, auth, h.CategoryHandler.DeleteCategory)
		adminCategories.POST("/:id/image", validID, auth, h.CategoryHandler.UploadImage)
	}

	adminBrands := admin.Group("/brands")
	{
		adminBrands.POST("", auth, h.BrandHandler.CreateBrand)
		adminBrands.PUT("/:id", validID, auth, h.BrandHandler.UpdateBrand)
		adminBrands.DELETE("/:id", validID, auth, h.BrandHandler.DeleteBrand)
	}

	adminContacts := admin.Group("/contacts")
	{
		adminContacts.GET("", auth, h.ContactHandler.ListMessages)
		adminContacts.GET("/:id", validID, auth, h.ContactHandler.GetMessage)
		adminContacts.PUT("/:id", validID, auth, h.ContactHandler.UpdateMessage)
		adminContacts.PUT("/:id/read", validID, auth, h.ContactHandler.MarkRead)
		adminContacts.DELETE("/:id", validID, auth, h.ContactHandler.DeleteMessage)
	}

	admin.GET("/stats", auth, h.StatsHandler.Dashboard)

	r.NoRoute(func(c *gin.Context) {
		response.FromError(c, xerrors.RouteNotFound())
	})
}
