package middleware

import (
	"math"
	"net/http"
	"strconv"
	"time"

	xerrors "catalog-service/internal/pkg/errors"
	"catalog-service/internal/pkg/metrics"
	"catalog-service/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/go-chi/httprate"
)

// Limit describes one sliding window limiter.
type Limit struct {
	Name     string
	Requests int
	Window   time.Duration
	Message  string
	// SkipSuccessful counts only requests answered with a status >= 400.
	SkipSuccessful bool
}

var (
	// APILimit applies to every /api route.
	APILimit = Limit{Name: "api", Requests: 100, Window: 15 * time.Minute, Message: "Demasiadas solicitudes, intenta más tarde"}
	// LoginLimit counts failed login requests only.
	LoginLimit = Limit{Name: "login", Requests: 5, Window: 15 * time.Minute, Message: "Demasiados intentos de login. Espera 15 minutos.", SkipSuccessful: true}
	// ContactLimit applies to the public contact form.
	ContactLimit = Limit{Name: "contact", Requests: 5, Window: time.Hour, Message: "Demasiados mensajes enviados. Intenta más tarde."}
)

// RateLimit limits requests per client IP with an httprate counter. Keys use
// gin's ClientIP so forwarded headers are only honoured from trusted proxies.
// Rejections use the JSON error envelope.
func RateLimit(limit Limit, m *metrics.Metrics) gin.HandlerFunc {
	limiter := httprate.NewRateLimiter(limit.Requests, limit.Window)

	reject := func(c *gin.Context) {
		m.RateLimited(limit.Name)
		c.Header("Retry-After", formatSeconds(limit.Window))
		response.Error(c, http.StatusTooManyRequests, xerrors.CodeRateLimited, limit.Message)
		c.Abort()
	}

	if !limit.SkipSuccessful {
		return func(c *gin.Context) {
			if limiter.OnLimit(c.Writer, c.Request, c.ClientIP()) {
				reject(c)
				return
			}
			c.Next()
		}
	}

	return func(c *gin.Context) {
		key := c.ClientIP()

		_, rate, err := limiter.Status(key)
		if err == nil && int(math.Round(rate)) >= limit.Requests {
			reject(c)
			return
		}

		c.Next()

		if c.Writer.Status() >= http.StatusBadRequest {
			window := time.Now().UTC().Truncate(limit.Window)
			_ = limiter.Counter().IncrementBy(key, window, 1)
		}
	}
}

func formatSeconds(d time.Duration) string {
	return strconv.Itoa(int(d.Seconds()))
}
