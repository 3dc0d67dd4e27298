package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chainsaw-registry/backend/pkg/logger"
	"go.uber.org/zap"
)

func (h *Handler) initStatsRoutes(api *gin.RouterGroup) {
	stats := api.Group("/stats", h.staffIdentityMiddleware)
	{
		stats.GET("", h.getStatsOverview)
	}
}

// @Summary Dashboard Stats
// @Tags Stats
// @Description Aggregated counts over approved registrations: totals, month-over-month growth, expired and expiring-soon counts, use type and monthly breakdowns
// @ModuleID getStatsOverview
// @Accept  json
// @Produce  json
// @Success 200 {object} service.StatsOverview
// @Failure 500
// @Security StaffAuth
// @Router /stats [get]
func (h *Handler) getStatsOverview(c *gin.Context) {
	overview, err := h.services.Stats.Overview(c.Request.Context())
	if err != nil {
		logger.Error("failed to get stats overview", zap.Error(err))
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, overview)
}
