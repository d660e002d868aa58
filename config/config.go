package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	DBDriver   string // postgres | sqlite
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	SQLitePath string

	StateBackend   string // db | supabase | memory
	StateKey       string
	SupabaseURL    string
	SupabaseKey    string
	SupabaseBucket string

	JWTSecret         string
	JWTTTL            time.Duration
	AdminPasswordHash string
	GoogleClientID    string

	AllowedOrigins   []string
	SubmitRatePerMin int
	SubmitBurst      int

	Debug bool
}

// Load đọc .env (nếu có) rồi lấy cấu hình từ biến môi trường.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("Cannot read .env file", "err", err)
	}

	cfg := Config{
		Port:              getenv("PORT", "8080"),
		DBDriver:          getenv("DB_DRIVER", "postgres"),
		DBHost:            os.Getenv("DB_HOST"),
		DBPort:            getenv("DB_PORT", "5432"),
		DBUser:            os.Getenv("DB_USER"),
		DBPassword:        os.Getenv("DB_PASSWORD"),
		DBName:            os.Getenv("DB_NAME"),
		SQLitePath:        getenv("SQLITE_PATH", "survey.sqlite"),
		StateBackend:      getenv("STATE_BACKEND", "db"),
		StateKey:          getenv("STATE_KEY", "surveyCreatorData"),
		SupabaseURL:       os.Getenv("SUPABASE_URL"),
		SupabaseKey:       os.Getenv("SUPABASE_KEY"),
		SupabaseBucket:    getenv("SUPABASE_BUCKET", "survey_state"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		GoogleClientID:    os.Getenv("GOOGLE_CLIENT_ID"),
		AllowedOrigins:    splitList(getenv("ALLOWED_ORIGINS", "http://localhost:5173")),
	}

	var err error
	if cfg.JWTTTL, err = time.ParseDuration(getenv("JWT_TTL", "24h")); err != nil {
		return cfg, fmt.Errorf("JWT_TTL: %w", err)
	}
	if cfg.SubmitRatePerMin, err = strconv.Atoi(getenv("SUBMIT_RATE_PER_MIN", "30")); err != nil {
		return cfg, fmt.Errorf("SUBMIT_RATE_PER_MIN: %w", err)
	}
	if cfg.SubmitBurst, err = strconv.Atoi(getenv("SUBMIT_BURST", "10")); err != nil {
		return cfg, fmt.Errorf("SUBMIT_BURST: %w", err)
	}
	cfg.Debug, _ = strconv.ParseBool(os.Getenv("DEBUG"))

	return cfg, cfg.Validate()
}

func (cfg Config) Validate() error {
	if cfg.JWTSecret == "" {
		return errors.New("JWT_SECRET không được thiết lập")
	}
	switch cfg.DBDriver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("DB_DRIVER không hỗ trợ: %q", cfg.DBDriver)
	}
	switch cfg.StateBackend {
	case "db", "memory":
	case "supabase":
		if cfg.SupabaseURL == "" || cfg.SupabaseKey == "" {
			return errors.New("STATE_BACKEND=supabase cần SUPABASE_URL và SUPABASE_KEY")
		}
	default:
		return fmt.Errorf("STATE_BACKEND không hỗ trợ: %q", cfg.StateBackend)
	}
	return nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func splitList(s string) []string {
	out := []string{}
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
