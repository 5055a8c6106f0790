package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sushiludps-lang/wellness-app/services"
)

type GoalController struct {
	Svc *services.GoalService
}

func NewGoalController(svc *services.GoalService) *GoalController {
	return &GoalController{Svc: svc}
}

func (h *GoalController) GetGoal(c *gin.Context) {
	p, ok := profileFromCtx(c)
	if !ok {
		return
	}
	out, err := h.Svc.GetGoal(c.Request.Context(), p, c.Param("type"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *GoalController) SaveGoal(c *gin.Context) {
	p, ok := profileFromCtx(c)
	if !ok {
		return
	}
	var req services.GoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	out, err := h.Svc.SaveGoal(c.Request.Context(), p, c.Param("type"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
