package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sushiludps-lang/wellness-app/services"
)

type DailyController struct {
	Svc *services.DailyService
}

func NewDailyController(svc *services.DailyService) *DailyController {
	return &DailyController{Svc: svc}
}

// SaveCheckin replaces the check-in for :date.
func (h *DailyController) SaveCheckin(c *gin.Context) {
	p, ok := profileFromCtx(c)
	if !ok {
		return
	}
	var req services.CheckinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	out, err := h.Svc.SaveCheckin(c.Request.Context(), p, c.Param("date"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *DailyController) GetCheckin(c *gin.Context) {
	p, ok := profileFromCtx(c)
	if !ok {
		return
	}
	out, err := h.Svc.GetCheckin(c.Request.Context(), p, c.Param("date"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *DailyController) ListCheckins(c *gin.Context) {
	p, ok := profileFromCtx(c)
	if !ok {
		return
	}
	days, ok := daysQuery(c)
	if !ok {
		return
	}
	out, err := h.Svc.ListCheckins(c.Request.Context(), p, days)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
