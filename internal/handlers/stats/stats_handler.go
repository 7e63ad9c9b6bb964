// internal/handlers/stats/stats_handler.go
package stats

import (
	"net/http"

	"catalog-service/internal/pkg/response"
	service "catalog-service/internal/service/stats"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	statsService *service.StatsService
}

func NewStatsHandler(statsService *service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// Dashboard returns the admin overview counters
func (h *StatsHandler) Dashboard(c *gin.Context) {
	d, err := h.statsService.Dashboard(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Estadísticas obtenidas", d)
}
