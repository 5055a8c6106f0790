package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sushiludps-lang/wellness-app/services"
)

type MealController struct {
	Svc *services.MealService
}

func NewMealController(svc *services.MealService) *MealController {
	return &MealController{Svc: svc}
}

func (h *MealController) Preview(c *gin.Context) {
	p, ok := profileFromCtx(c)
	if !ok {
		return
	}
	var req services.MealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	out, err := h.Svc.Preview(p, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *MealController) LogMeal(c *gin.Context) {
	p, ok := profileFromCtx(c)
	if !ok {
		return
	}
	var req services.MealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	out, err := h.Svc.LogMeal(c.Request.Context(), p, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

func (h *MealController) ListMeals(c *gin.Context) {
	p, ok := profileFromCtx(c)
	if !ok {
		return
	}
	days, ok := daysQuery(c)
	if !ok {
		return
	}
	meals, err := h.Svc.ListMeals(c.Request.Context(), p, days)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, meals)
}
