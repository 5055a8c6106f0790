package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"APP_ENV", "HTTP_ADDR", "DB_DRIVER", "DB_PATH", "MEAL_HISTORY_DAYS", "CORS_ORIGINS", "TG_PROFILES"} {
		t.Setenv(k, "")
	}
	cfg := Load(zap.NewNop())
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "sqlite", cfg.DB.Driver)
	assert.Equal(t, "data/wellness.db", cfg.DB.Path)
	assert.Equal(t, 60, cfg.MealHistoryDays)
	assert.Equal(t, 90, cfg.DailyHistoryDays)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Empty(t, cfg.TGProfiles)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("MEAL_HISTORY_DAYS", "14")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("RATE_LIMIT_BURST", "nope")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test")
	cfg := Load(zap.NewNop())
	assert.Equal(t, 14, cfg.MealHistoryDays)
	assert.Equal(t, 2.5, cfg.RateLimitRPS)
	assert.Equal(t, 20, cfg.RateLimitBurst)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
}

func TestParseTGProfiles(t *testing.T) {
	got := ParseTGProfiles("101:Sushil, 202:Chido,bad,x:Stupid,303:", zap.NewNop())
	assert.Equal(t, map[int64]string{101: "Sushil", 202: "Chido"}, got)
}

func TestInitDBSqlite(t *testing.T) {
	cfg := &Config{DB: DBConfig{Driver: "sqlite", Path: filepath.Join(t.TempDir(), "nested", "wellness.db")}}
	db, err := InitDB(cfg, zap.NewNop())
	require.NoError(t, err)
	for _, table := range []string{"logs", "daily", "goals", "habit_logs"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
}

func TestInitDBUnknownDriver(t *testing.T) {
	_, err := InitDB(&Config{DB: DBConfig{Driver: "oracle"}}, zap.NewNop())
	assert.Error(t, err)
}
