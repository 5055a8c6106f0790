package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sushiludps-lang/wellness-app/config"
	"github.com/sushiludps-lang/wellness-app/controllers"
	"github.com/sushiludps-lang/wellness-app/middlewares"
	"github.com/sushiludps-lang/wellness-app/services"
)

func SetupRouter(svc *services.Services, cfg *config.Config, log *zap.Logger) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(
		gin.Recovery(),
		middlewares.RequestID(),
		middlewares.RequestLogger(log),
		middlewares.SecurityHeaders(),
		middlewares.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst).Middleware(),
	)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	catalog := controllers.NewCatalogController(svc.Goals)
	meals := controllers.NewMealController(svc.Meals)
	daily := controllers.NewDailyController(svc.Daily)
	goals := controllers.NewGoalController(svc.Goals)
	habits := controllers.NewHabitController(svc.Habits)
	analytics := controllers.NewAnalyticsController(svc.Analytics)

	api := r.Group("/api/v1")
	{
		api.GET("/profiles", catalog.ListProfiles)
		api.GET("/dishes", catalog.ListDishes)
		api.GET("/dishes/:dish/macros", catalog.DishMacros)
		api.GET("/wellness", catalog.Wellness)
		api.GET("/plan", catalog.Plan)
		api.GET("/habits/defaults", catalog.HabitDefaults)
	}

	person := api.Group("/profiles/:person")
	person.Use(middlewares.ProfileMiddleware())
	{
		person.POST("/meals/preview", meals.Preview)
		person.POST("/meals", meals.LogMeal)
		person.GET("/meals", meals.ListMeals)

		person.PUT("/daily/:date", daily.SaveCheckin)
		person.GET("/daily/:date", daily.GetCheckin)
		person.GET("/daily", daily.ListCheckins)

		person.GET("/goals/:type", goals.GetGoal)
		person.PUT("/goals/:type", goals.SaveGoal)

		person.PUT("/habits/:date", habits.SaveHabits)
		person.GET("/habits", habits.ListHabits)

		person.GET("/dashboard", analytics.GetDashboard)
		person.GET("/week", analytics.GetWeek)
		person.GET("/bmi", analytics.GetBMI)
	}

	return r
}
