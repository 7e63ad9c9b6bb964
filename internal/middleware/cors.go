package middleware

import (
	"net/http"
	"regexp"
	"strings"

	xerrors "catalog-service/internal/pkg/errors"
	"catalog-service/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

// DefaultOrigins are always allowed in addition to the configured frontend.
var DefaultOrigins = []string{
	"http://localhost:5173",
	"http://localhost:3000",
	"https://fronted-interplast.vercel.app",
}

var previewOrigin = regexp.MustCompile(`^https://fronted-interplast.*\.vercel\.app$`)

// OriginPolicy decides which browser origins may call the API.
type OriginPolicy struct {
	allowed map[string]bool
}

// NewOriginPolicy allows DefaultOrigins, the extra origins and the frontend
// preview deployments. Empty extras are ignored.
func NewOriginPolicy(extra ...string) *OriginPolicy {
	p := &OriginPolicy{allowed: make(map[string]bool)}
	for _, o := range append(append([]string{}, DefaultOrigins...), extra...) {
		o = strings.TrimRight(strings.TrimSpace(o), "/")
		if o != "" {
			p.allowed[o] = true
		}
	}
	return p
}

func (p *OriginPolicy) Allows(origin string) bool {
	return p.allowed[origin] || previewOrigin.MatchString(origin)
}

// CORS answers preflights and sets CORS headers for allowed origins. Requests
// without an Origin header pass untouched; disallowed origins get a 403.
func CORS(policy *OriginPolicy, logger *zap.Logger) gin.HandlerFunc {
	handler := cors.New(cors.Options{
		AllowOriginFunc:  policy.Allows,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", RequestIDHeader},
		ExposedHeaders:   []string{RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           600,
	})

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin == "" {
			c.Next()
			return
		}
		if !policy.Allows(origin) {
			logger.Warn("cors origin rejected",
				zap.String("origin", origin),
				zap.String("path", c.Request.URL.Path),
			)
			response.Error(c, http.StatusForbidden, xerrors.CodeOriginNotAllowed, "Origen no permitido por CORS")
			return
		}

		handler.HandlerFunc(c.Writer, c.Request)

		if c.Request.Method == http.MethodOptions && c.GetHeader("Access-Control-Request-Method") != "" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
