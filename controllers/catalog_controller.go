package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sushiludps-lang/wellness-app/models"
	"github.com/sushiludps-lang/wellness-app/services"
	"github.com/sushiludps-lang/wellness-app/utils"
)

// CatalogController serves the stateless calculators and static tables.
type CatalogController struct {
	Goals *services.GoalService
}

func NewCatalogController(goals *services.GoalService) *CatalogController {
	return &CatalogController{Goals: goals}
}

func (h *CatalogController) ListProfiles(c *gin.Context) {
	c.JSON(http.StatusOK, models.Profiles())
}

func (h *CatalogController) ListDishes(c *gin.Context) {
	mealType := c.Query("meal_type")
	if mealType != "" && !utils.IsMealType(mealType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown meal_type"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"meal_types": utils.MealTypes(),
		"meal_type":  mealType,
		"dishes":     utils.DishesFor(mealType),
	})
}

// DishMacros answers zero macros with known_dish=false for dishes outside the catalogue.
func (h *CatalogController) DishMacros(c *gin.Context) {
	dish := c.Param("dish")
	recipe, known := utils.LookupRecipe(dish)
	if recipe == nil {
		recipe = []utils.Portion{}
	}
	grams, ok := floatQuery(c, "grams", 300)
	if !ok {
		return
	}
	if grams <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "grams must be positive"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"dish":       dish,
		"grams":      grams,
		"known_dish": known,
		"recipe":     recipe,
		"macros":     utils.ComputeMacros(dish, grams),
	})
}

func (h *CatalogController) Wellness(c *gin.Context) {
	var in [5]float64
	for i, key := range []string{"kcal", "protein_g", "sleep_hours", "exercise_min", "stress"} {
		v, ok := floatQuery(c, key, 0)
		if !ok {
			return
		}
		in[i] = v
	}
	c.JSON(http.StatusOK, gin.H{"wellness_index": utils.WellnessIndex(in[0], in[1], in[2], in[3], in[4])})
}

func (h *CatalogController) Plan(c *gin.Context) {
	start, ok := floatQuery(c, "start_weight", 0)
	if !ok {
		return
	}
	target, ok := floatQuery(c, "target_weight", 0)
	if !ok {
		return
	}
	plan, err := h.Goals.Plan(start, target, c.Query("target_date"))
	if err != nil {
		respondError(c, err)
		return
	}

	out := gin.H{"plan": plan}
	if goalType := c.Query("goal_type"); goalType != "" {
		out["protein_target_g"] = utils.ProteinTarget(start, goalType)
	}
	c.JSON(http.StatusOK, out)
}

func (h *CatalogController) HabitDefaults(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"habits": utils.DefaultHabits()})
}
