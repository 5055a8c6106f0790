package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/sushiludps-lang/wellness-app/models"
)

type Config struct {
	Env      string
	HTTPAddr string
	DB       DBConfig

	MealHistoryDays  int
	DailyHistoryDays int

	RateLimitRPS   float64
	RateLimitBurst int
	CORSOrigins    []string

	TGtoken    string
	TGProfiles map[int64]string // telegram user id -> profile name
}

type DBConfig struct {
	Driver   string // sqlite|postgres
	Path     string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

func Load(log *zap.Logger) *Config {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system env")
	}

	return &Config{
		Env:      getEnv("APP_ENV", "development"),
		HTTPAddr: getEnv("HTTP_ADDR", ":8080"),
		DB: DBConfig{
			Driver:   getEnv("DB_DRIVER", "sqlite"),
			Path:     getEnv("DB_PATH", "data/wellness.db"),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", ""),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "wellness"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		MealHistoryDays:  getInt("MEAL_HISTORY_DAYS", 60, log),
		DailyHistoryDays: getInt("DAILY_HISTORY_DAYS", 90, log),
		RateLimitRPS:     getFloat("RATE_LIMIT_RPS", 10, log),
		RateLimitBurst:   getInt("RATE_LIMIT_BURST", 20, log),
		CORSOrigins:      splitList(getEnv("CORS_ORIGINS", "*")),
		TGtoken:          getEnv("TG_TOKEN", ""),
		TGProfiles:       ParseTGProfiles(getEnv("TG_PROFILES", ""), log),
	}
}

// InitDB opens the configured store and migrates every table.
func InitDB(cfg *Config, log *zap.Logger) (*gorm.DB, error) {
	gcfg := &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Warn)}

	var (
		db  *gorm.DB
		err error
	)
	switch cfg.DB.Driver {
	case "postgres":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			cfg.DB.Host, cfg.DB.User, cfg.DB.Password, cfg.DB.Name, cfg.DB.Port, cfg.DB.SSLMode)
		db, err = gorm.Open(postgres.Open(dsn), gcfg)
	case "sqlite", "":
		if dir := filepath.Dir(cfg.DB.Path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create data dir: %w", err)
			}
		}
		db, err = gorm.Open(sqlite.Open(cfg.DB.Path), gcfg)
		if err == nil {
			err = db.Exec("PRAGMA journal_mode=WAL").Error
		}
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DB.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.MealEntry{},
		&models.DailyCheckin{},
		&models.Goal{},
		&models.HabitLog{},
	); err != nil {
		return nil, fmt.Errorf("automigrate: %w", err)
	}

	log.Info("Database ready", zap.String("driver", cfg.DB.Driver))
	return db, nil
}

// ParseTGProfiles reads "telegramID:Profile,..." pairs. Malformed pairs are skipped.
func ParseTGProfiles(raw string, log *zap.Logger) map[int64]string {
	out := map[int64]string{}
	for _, pair := range splitList(raw) {
		idStr, name, ok := strings.Cut(pair, ":")
		if !ok {
			log.Warn("Skipping malformed TG_PROFILES entry", zap.String("entry", pair))
			continue
		}
		id, err := strconv.ParseInt(strings.TrimSpace(idStr), 10, 64)
		if err != nil || strings.TrimSpace(name) == "" {
			log.Warn("Skipping malformed TG_PROFILES entry", zap.String("entry", pair))
			continue
		}
		out[id] = strings.TrimSpace(name)
	}
	return out
}

func getEnv(key, fallback string) string {
	if val, exists := os.LookupEnv(key); exists && val != "" {
		return val
	}
	return fallback
}

func getInt(key string, fallback int, log *zap.Logger) int {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		log.Warn("Invalid integer in env, using default", zap.String("key", key), zap.Int("default", fallback))
		return fallback
	}
	return v
}

func getFloat(key string, fallback float64, log *zap.Logger) float64 {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Warn("Invalid number in env, using default", zap.String("key", key), zap.Float64("default", fallback))
		return fallback
	}
	return v
}

func splitList(raw string) []string {
	var out []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
