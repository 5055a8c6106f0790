package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sushiludps-lang/wellness-app/services"
)

type HabitController struct {
	Svc *services.HabitService
}

func NewHabitController(svc *services.HabitService) *HabitController {
	return &HabitController{Svc: svc}
}

func (h *HabitController) SaveHabits(c *gin.Context) {
	p, ok := profileFromCtx(c)
	if !ok {
		return
	}
	var body struct {
		Completed map[string]bool `json:"completed" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	out, err := h.Svc.SaveHabits(c.Request.Context(), p, c.Param("date"), body.Completed)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *HabitController) ListHabits(c *gin.Context) {
	p, ok := profileFromCtx(c)
	if !ok {
		return
	}
	days, ok := daysQuery(c)
	if !ok {
		return
	}
	out, err := h.Svc.ListHabits(c.Request.Context(), p, days)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
