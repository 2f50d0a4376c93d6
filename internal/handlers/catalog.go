package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      Predefined categories
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string][]string
// @Failure      401  {object}  messageResponse
// @Failure      403  {object}  messageResponse
// @Router       /api/categories [get]
func (h *Handler) listPredefinedCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.services.PredefinedCategories()})
}

// @Summary      Seasons
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string][]string
// @Failure      401  {object}  messageResponse
// @Failure      403  {object}  messageResponse
// @Router       /api/seasons [get]
func (h *Handler) listSeasons(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"seasons": h.services.Seasons()})
}
