package controllers

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sushiludps-lang/wellness-app/middlewares"
	"github.com/sushiludps-lang/wellness-app/models"
	"github.com/sushiludps-lang/wellness-app/services"
)

func profileFromCtx(c *gin.Context) (models.Profile, bool) {
	p, ok := middlewares.ProfileFromCtx(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown profile"})
	}
	return p, ok
}

// respondError maps service errors onto status codes.
func respondError(c *gin.Context, err error) {
	switch {
	case services.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrGoalNotFound),
		errors.Is(err, services.ErrCheckinNotFound),
		errors.Is(err, services.ErrNoWeight):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// daysQuery reads ?days=, 0 meaning the configured default.
func daysQuery(c *gin.Context) (int, bool) {
	raw := c.Query("days")
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 || n > 3650 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "days must be a whole number between 1 and 3650"})
		return 0, false
	}
	return n, true
}

// floatQuery reads an optional numeric query parameter.
func floatQuery(c *gin.Context, key string, fallback float64) (float64, bool) {
	raw := c.Query(key)
	if raw == "" {
		return fallback, true
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + key})
		return 0, false
	}
	return v, true
}
