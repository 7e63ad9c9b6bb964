package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// SecurityConfig feeds the Content-Security-Policy and HSTS headers.
type SecurityConfig struct {
	// SupabaseURL is added to connect-src when set.
	SupabaseURL string
	// HSTS enables Strict-Transport-Security; leave it off for plain-HTTP
	// development.
	HSTS bool
}

const cloudinaryOrigin = "https://res.cloudinary.com"

func contentSecurityPolicy(supabaseURL string) string {
	connect := []string{"'self'"}
	if supabaseURL != "" {
		connect = append(connect, strings.TrimRight(supabaseURL, "/"))
	}
	connect = append(connect, cloudinaryOrigin)

	directives := []string{
		"default-src 'self'",
		"style-src 'self' 'unsafe-inline'",
		"img-src 'self' data: https: blob:",
		"connect-src " + strings.Join(connect, " "),
		"font-src 'self' https: data:",
		"object-src 'none'",
		"media-src 'self'",
		"frame-src 'none'",
	}
	return strings.Join(directives, "; ")
}

// SecurityHeaders sets the hardening headers on every response and disables
// caching of /api/admin responses.
func SecurityHeaders(cfg SecurityConfig) gin.HandlerFunc {
	csp := contentSecurityPolicy(cfg.SupabaseURL)

	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Content-Security-Policy", csp)
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-XSS-Protection", "1; mode=block")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Cross-Origin-Opener-Policy", "same-origin")
		h.Set("Cross-Origin-Resource-Policy", "same-origin")
		if cfg.HSTS {
			h.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains; preload")
		}

		if strings.HasPrefix(c.Request.URL.Path, "/api/admin") {
			h.Set("Cache-Control", "no-store, no-cache, must-revalidate, private")
			h.Set("Pragma", "no-cache")
			h.Set("Expires", "0")
		}
		c.Next()
	}
}
