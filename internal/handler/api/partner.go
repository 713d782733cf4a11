package api

import (
	"net/http"

	reqdto "airvoucher-admin/internal/handler/dto/request"
	"airvoucher-admin/internal/usecase/commands"
	"airvoucher-admin/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PartnerHandler struct {
	cmds commands.PartnerCommands
	q    queries.PartnerQueries
}

func NewPartnerHandler(cmds commands.PartnerCommands, q queries.PartnerQueries) *PartnerHandler {
	return &PartnerHandler{cmds: cmds, q: q}
}

// @Summary Partner bundles
// @Tags partner
// @Produce json
// @Security BearerAuth
// @Param category query string true "data or airtime"
// @Success 200 {array} partner.BundleProduct
// @Failure 400 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /partner/bundles [get]
func (h *PartnerHandler) Bundles(c *gin.Context) {
	bundles, err := h.q.Bundles(c.Request.Context(), c.Query("category"))
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to load partner bundles")
		return
	}
	c.JSON(http.StatusOK, bundles)
}

// @Summary Request a partner voucher
// @Tags partner
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PartnerVoucherRequest true "Value in rand and provider"
// @Success 200 {object} commands.PartnerVoucherResult
// @Failure 400 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /partner/vouchers [post]
func (h *PartnerHandler) RequestVoucher(c *gin.Context) {
	var req reqdto.PartnerVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalidRequest(c, err)
		return
	}
	result, err := h.cmds.RequestVoucher(c.Request.Context(), req.Value, req.Provider)
	if err != nil {
		abortWithUsecaseError(c, err, "Partner voucher request failed")
		return
	}
	c.JSON(http.StatusOK, result)
}
