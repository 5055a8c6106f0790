package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sushiludps-lang/wellness-app/config"
	"github.com/sushiludps-lang/wellness-app/services"
)

func init() { gin.SetMode(gin.TestMode) }

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	cfg := &config.Config{
		Env:            "test",
		DB:             config.DBConfig{Driver: "sqlite", Path: filepath.Join(t.TempDir(), "wellness.db")},
		RateLimitRPS:   1000,
		RateLimitBurst: 1000,
	}
	db, err := config.InitDB(cfg, zap.NewNop())
	require.NoError(t, err)
	svc := services.New(services.NewRecordStore(db), 60, 90)
	return SetupRouter(svc, cfg, zap.NewNop())
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

func TestHealthAndCatalog(t *testing.T) {
	r := newTestRouter(t)

	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/health", "").Code)

	w := do(r, http.MethodGet, "/api/v1/profiles", "")
	require.Equal(t, http.StatusOK, w.Code)
	var profiles []map[string]any
	decode(t, w, &profiles)
	assert.Len(t, profiles, 3)

	w = do(r, http.MethodGet, "/api/v1/dishes/omelette/macros?grams=125", "")
	require.Equal(t, http.StatusOK, w.Code)
	var dish struct {
		Macros struct {
			Kcal float64 `json:"kcal"`
		} `json:"macros"`
	}
	decode(t, w, &dish)
	assert.Equal(t, 217.0, dish.Macros.Kcal)

	w = do(r, http.MethodGet, "/api/v1/dishes/lasagne/macros?grams=300", "")
	require.Equal(t, http.StatusOK, w.Code)
	var unknown struct {
		KnownDish bool             `json:"known_dish"`
		Recipe    []map[string]any `json:"recipe"`
		Macros    map[string]float64
	}
	decode(t, w, &unknown)
	assert.False(t, unknown.KnownDish)
	assert.NotNil(t, unknown.Recipe)
	assert.Empty(t, unknown.Recipe)
	for k, v := range unknown.Macros {
		assert.Zero(t, v, k)
	}
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodGet, "/api/v1/dishes?meal_type=Brunch", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodGet, "/api/v1/wellness?kcal=lots", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodGet, "/api/v1/wellness?kcal=NaN", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodGet, "/api/v1/dishes/omelette/macros?grams=Inf", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodGet, "/api/v1/plan?start_weight=70&target_weight=65&target_date=soon", "").Code)
}

func TestMealLifecycle(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodPost, "/api/v1/profiles/Sushil/meals", `{"dish":"omelette","grams":125,"meal_time":"08:15"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var logged struct {
		Meal struct {
			MealType string  `json:"meal_type"`
			Kcal     float64 `json:"kcal"`
		} `json:"meal"`
	}
	decode(t, w, &logged)
	assert.Equal(t, "Breakfast", logged.Meal.MealType)
	assert.Equal(t, 217.0, logged.Meal.Kcal)

	w = do(r, http.MethodGet, "/api/v1/profiles/Sushil/meals", "")
	require.Equal(t, http.StatusOK, w.Code)
	var meals []map[string]any
	decode(t, w, &meals)
	assert.Len(t, meals, 1)

	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPost, "/api/v1/profiles/Sushil/meals", `{"dish":"lasagne","grams":300}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPost, "/api/v1/profiles/Sushil/meals", `{"grams":300}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodGet, "/api/v1/profiles/Sushil/meals?days=abc", "").Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/api/v1/profiles/nobody/meals", "").Code)

	w = do(r, http.MethodPost, "/api/v1/profiles/Sushil/meals/preview", `{"dish":"fries","grams":180,"meal_time":"22:00"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "late_meal")
}

func TestCheckinGoalAndBMI(t *testing.T) {
	r := newTestRouter(t)

	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/api/v1/profiles/Chido/bmi?height_cm=170", "").Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/api/v1/profiles/Chido/daily/2023-01-01", "").Code)

	w := do(r, http.MethodPut, "/api/v1/profiles/Chido/daily/2024-03-01", `{"weight_kg":65,"period_flow":"Light"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPut, "/api/v1/profiles/Chido/daily/2024-03-01", `{"sleep_hours":20}`).Code)

	w = do(r, http.MethodGet, "/api/v1/profiles/Chido/bmi?height_cm=170", "")
	require.Equal(t, http.StatusOK, w.Code)
	var bmi struct {
		BMI float64 `json:"bmi"`
	}
	decode(t, w, &bmi)
	assert.Equal(t, 22.5, bmi.BMI)

	w = do(r, http.MethodGet, "/api/v1/profiles/Chido/goals/loss", "")
	require.Equal(t, http.StatusOK, w.Code)
	var goal struct {
		Saved bool `json:"saved"`
	}
	decode(t, w, &goal)
	assert.False(t, goal.Saved)

	w = do(r, http.MethodPut, "/api/v1/profiles/Chido/goals/loss", `{"start_weight":70,"target_weight":64,"target_date":"2030-01-01"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	decode(t, w, &goal)
	assert.True(t, goal.Saved)

	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPut, "/api/v1/profiles/Chido/goals/bulk", `{"start_weight":70,"target_weight":64,"target_date":"2030-01-01"}`).Code)

	w = do(r, http.MethodGet, "/api/v1/profiles/Chido/week", "")
	require.Equal(t, http.StatusOK, w.Code)
}

func TestHabitsAndDashboard(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodPut, "/api/v1/profiles/Stupid/habits/2024-03-01", `{"completed":{"Water 2L":true,"Walk 20 min":false}}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var h struct {
		Score float64 `json:"score"`
	}
	decode(t, w, &h)
	assert.Equal(t, 0.5, h.Score)

	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPut, "/api/v1/profiles/Stupid/habits/2024-03-01", `{}`).Code)

	w = do(r, http.MethodGet, "/api/v1/profiles/Stupid/dashboard", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"goal"`)
}
