package handlers

import (
	"net/http"
	"time"

	"pixel_portfolio/internal/service"

	"github.com/gin-gonic/gin"
)

var endpointIndex = gin.H{
	"health":   "GET /health",
	"auth":     "POST /auth/register, POST /auth/login, GET /auth/me",
	"posts":    "GET /posts, GET /posts/{id}, POST /posts, PUT /posts/{id}, DELETE /posts/{id}",
	"projects": "GET /projects, GET /projects/{id}, POST /projects, PUT /projects/{id}, DELETE /projects/{id}",
	"settings": "GET /settings, GET /settings/{key}, PUT /settings/{key}",
	"feed":     "GET /ws",
}

func (h *Handler) index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":      "Pixel World Portfolio API",
		"version":   h.version,
		"endpoints": endpointIndex,
	})
}

// health godoc
// @Summary  Liveness probe
// @Tags     meta
// @Produce  json
// @Success  200 {object} map[string]string
// @Router   /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   h.version,
	})
}

func (h *Handler) notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"error": "endpoint not found",
		"code":  service.KindNotFound,
	})
}

func (h *Handler) methodNotAllowed(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, gin.H{
		"error": "method not allowed",
		"code":  service.KindMethodNotAllowed,
	})
}
