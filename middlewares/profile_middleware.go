package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sushiludps-lang/wellness-app/models"
)

const profileKey = "profile"

// ProfileMiddleware resolves the :person path segment to a built-in profile.
func ProfileMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := models.LookupProfile(c.Param("person"))
		if !ok {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "unknown profile"})
			return
		}
		c.Set(profileKey, p)
		c.Next()
	}
}

// ProfileFromCtx returns the profile set by ProfileMiddleware.
func ProfileFromCtx(c *gin.Context) (models.Profile, bool) {
	v, ok := c.Get(profileKey)
	if !ok {
		return models.Profile{}, false
	}
	p, ok := v.(models.Profile)
	return p, ok
}
