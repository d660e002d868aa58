package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/survey-engine/config"
	"github.com/vnkhanh/survey-engine/controllers"
	"github.com/vnkhanh/survey-engine/middleware"
	"github.com/vnkhanh/survey-engine/routes"
	"github.com/vnkhanh/survey-engine/storage"
	"github.com/vnkhanh/survey-engine/store"
)

type backend interface {
	storage.KV
	storage.Pinger
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Invalid configuration", "err", err)
		os.Exit(1)
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	kv, err := openBackend(cfg)
	if err != nil {
		slog.Error("Cannot open state backend", "backend", cfg.StateBackend, "err", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	st, err := store.Open(ctx, store.NewBlobPersister(kv, cfg.StateKey))
	cancel()
	if err != nil {
		slog.Error("Cannot load survey state", "err", err)
		os.Exit(1)
	}

	// 30 lần gửi/phút mỗi IP, IP im lặng 10 phút thì bị dọn
	limiter := middleware.NewIPRateLimiter(cfg.SubmitRatePerMin, cfg.SubmitBurst, 10*time.Minute)
	stop := make(chan struct{})
	defer close(stop)
	go limiter.RunCleanup(stop)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/", func(c *gin.Context) {
		c.String(200, "Survey engine is running")
	})

	if err := r.SetTrustedProxies(nil); err != nil {
		panic(err)
	}

	ctl := controllers.New(st, kv, controllers.AuthConfig{
		JWTSecret:         cfg.JWTSecret,
		JWTTTL:            cfg.JWTTTL,
		AdminPasswordHash: cfg.AdminPasswordHash,
		GoogleClientID:    cfg.GoogleClientID,
	})
	if err := routes.SetupRoutes(r, ctl, routes.Options{JWTSecret: cfg.JWTSecret, Limiter: limiter}); err != nil {
		panic(err)
	}

	slog.Info("Server listening", "port", cfg.Port, "backend", cfg.StateBackend)
	if err := r.Run(":" + cfg.Port); err != nil {
		slog.Error("Server stopped", "err", err)
		os.Exit(1)
	}
}

func openBackend(cfg config.Config) (backend, error) {
	switch cfg.StateBackend {
	case "memory":
		slog.Warn("STATE_BACKEND=memory: survey state is lost on restart")
		return storage.NewMemoryKV(), nil
	case "supabase":
		return storage.NewSupabaseKV(cfg.SupabaseURL, cfg.SupabaseKey, cfg.SupabaseBucket), nil
	default:
		db, err := config.OpenDB(cfg)
		if err != nil {
			return nil, err
		}
		kv := storage.NewGormKV(db)
		if err := kv.Migrate(); err != nil {
			return nil, err
		}
		return kv, nil
	}
}
