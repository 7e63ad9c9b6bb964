// internal/app/server.go
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"catalog-service/internal/config"
	"catalog-service/internal/db"
	"catalog-service/internal/middleware"
	"catalog-service/internal/pkg/attempts"
	"catalog-service/internal/pkg/jwt"
	"catalog-service/internal/pkg/media"
	"catalog-service/internal/pkg/metrics"
	"catalog-service/internal/repository/postgres"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Server struct {
	cfg    config.AppConfig
	engine *gin.Engine
	logger *zap.Logger

	pool  *pgxpool.Pool
	redis redis.UniversalClient
}

func NewServer(cfg config.AppConfig, logger *zap.Logger) *Server {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	return &Server{cfg: cfg, engine: gin.New(), logger: logger}
}

// Start builds every dependency, serves HTTP until ctx is cancelled, then
// drains in-flight requests within the shutdown timeout.
func (s *Server) Start(ctx context.Context) error {
	defer s.close()

	if err := s.setup(ctx); err != nil {
		return err
	}

	srv := &http.Server{
		Addr:    s.cfg.HTTPAddr,
		Handler: s.engine,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening",
			zap.String("addr", s.cfg.HTTPAddr),
			zap.String("env", s.cfg.Env),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	return nil
}

func (s *Server) setup(ctx context.Context) error {
	// ----- PostgreSQL -----
	pool, err := db.ConnectDB(ctx, s.cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	s.pool = pool
	s.logger.Info("connected to PostgreSQL")

	// ----- Login attempts -----
	tracker, err := s.loginTracker()
	if err != nil {
		return err
	}

	// ----- JWT Manager -----
	jwtManager, err := jwt.LoadAndBuild(s.cfg.JWT)
	if err != nil {
		return fmt.Errorf("failed to load JWT manager: %w", err)
	}

	// ----- Images -----
	images, err := s.imageUploader()
	if err != nil {
		return err
	}

	m := metrics.New()

	// ----- Repositories -----
	dbWrapper := postgres.NewDB(pool)
	repos := Repositories{
		Admins:     postgres.NewAdminRepository(dbWrapper),
		Products:   postgres.NewProductRepository(pool),
		Categories: postgres.NewCategoryRepository(pool),
		Brands:     postgres.NewBrandRepository(pool),
		Contacts:   postgres.NewContactRepository(pool),
		Stats:      postgres.NewStatsRepository(pool),
	}

	handlers := NewHandlers(repos, Dependencies{
		Tokens:  jwtManager,
		Tracker: tracker,
		Images:  images,
		Metrics: m,
		Logger:  s.logger,
	})

	if err := s.engine.SetTrustedProxies(s.cfg.TrustedProxies); err != nil {
		return fmt.Errorf("invalid TRUSTED_PROXIES: %w", err)
	}

	var extraOrigins []string
	if s.cfg.FrontendURL != "" {
		extraOrigins = append(extraOrigins, s.cfg.FrontendURL)
	}

	SetupRouter(s.engine, s.logger, RouterConfig{
		Env: s.cfg.Env,
		Security: middleware.SecurityConfig{
			SupabaseURL: s.cfg.SupabaseURL,
			HSTS:        s.cfg.IsProduction(),
		},
		Origins: middleware.NewOriginPolicy(extraOrigins...),
		Metrics: m,
		Limits:  DefaultLimits(),
	}, handlers)

	return nil
}

// loginTracker shares failure counters through Redis when REDIS_ADDR is set.
func (s *Server) loginTracker() (attempts.Tracker, error) {
	if s.cfg.RedisAddr == "" {
		s.logger.Warn("REDIS_ADDR not set, login attempts are tracked in memory")
		return attempts.NewMemoryTracker(attempts.DefaultMaxFailures, attempts.DefaultWindow), nil
	}

	client, err := db.NewRedisClient(db.RedisConfig{
		Addresses: []string{s.cfg.RedisAddr},
		Password:  s.cfg.RedisPass,
		PoolSize:  10,
	})
	if err != nil {
		return nil, err
	}
	s.redis = client
	s.logger.Info("connected to Redis", zap.String("addr", s.cfg.RedisAddr))

	return attempts.NewRedisTracker(client, attempts.DefaultMaxFailures, attempts.DefaultWindow), nil
}

func (s *Server) imageUploader() (media.Uploader, error) {
	if !s.cfg.Cloudinary.Enabled() {
		s.logger.Warn("cloudinary credentials missing, image uploads are disabled")
		return media.Disabled{}, nil
	}
	c := s.cfg.Cloudinary
	uploader, err := media.NewCloudinary(c.CloudName, c.APIKey, c.APISecret, s.logger)
	if err != nil {
		return nil, err
	}
	return uploader, nil
}

func (s *Server) close() {
	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			s.logger.Warn("failed to close Redis client", zap.Error(err))
		}
	}
	if s.pool != nil {
		s.pool.Close()
	}
}
