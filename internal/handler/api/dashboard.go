package api

import (
	"net/http"

	resdto "airvoucher-admin/internal/handler/dto/response"
	"airvoucher-admin/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	q queries.DashboardQueries
}

func NewDashboardHandler(q queries.DashboardQueries) *DashboardHandler {
	return &DashboardHandler{q: q}
}

// @Summary Dashboard summary
// @Description Voucher counts per status plus entity counts
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.DashboardResponse
// @Router /dashboard/summary [get]
func (h *DashboardHandler) Summary(c *gin.Context) {
	summary, err := h.q.Summary(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to load dashboard")
		return
	}
	c.JSON(http.StatusOK, resdto.FromDashboardSummary(summary))
}
