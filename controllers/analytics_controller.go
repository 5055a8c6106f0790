package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sushiludps-lang/wellness-app/services"
)

type AnalyticsController struct {
	Svc *services.AnalyticsService
}

func NewAnalyticsController(svc *services.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{Svc: svc}
}

func (h *AnalyticsController) GetDashboard(c *gin.Context) {
	p, ok := profileFromCtx(c)
	if !ok {
		return
	}
	out, err := h.Svc.Dashboard(c.Request.Context(), p)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GetWeek answers {"week": null} when there is not enough history.
func (h *AnalyticsController) GetWeek(c *gin.Context) {
	p, ok := profileFromCtx(c)
	if !ok {
		return
	}
	week, err := h.Svc.Week(c.Request.Context(), p)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"week": week})
}

func (h *AnalyticsController) GetBMI(c *gin.Context) {
	p, ok := profileFromCtx(c)
	if !ok {
		return
	}
	height, ok := floatQuery(c, "height_cm", 0)
	if !ok {
		return
	}
	out, err := h.Svc.BMI(c.Request.Context(), p, height)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
