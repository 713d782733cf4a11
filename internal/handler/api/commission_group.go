package api

import (
	"net/http"

	"airvoucher-admin/internal/domain/commissiongroup"
	reqdto "airvoucher-admin/internal/handler/dto/request"
	resdto "airvoucher-admin/internal/handler/dto/response"
	"airvoucher-admin/internal/usecase/commands"
	"airvoucher-admin/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CommissionGroupHandler struct {
	*EntityHandler[queries.CommissionGroupView, commissiongroup.Params, resdto.CommissionGroupResponse]
	cmds commands.CommissionGroupCommands
	q    queries.CommissionGroupQueries
}

func NewCommissionGroupHandler(cmds commands.CommissionGroupCommands, q queries.CommissionGroupQueries) *CommissionGroupHandler {
	return &CommissionGroupHandler{
		EntityHandler: newEntityHandler[queries.CommissionGroupView, commissiongroup.Params, resdto.CommissionGroupResponse,
			reqdto.CreateCommissionGroupRequest, reqdto.UpdateCommissionGroupRequest]("commission group", cmds, q),
		cmds: cmds,
		q:    q,
	}
}

// @Summary List group vouchers
// @Tags commission-groups
// @Produce json
// @Security BearerAuth
// @Param id path string true "Commission group ID"
// @Success 200 {array} resdto.GroupVoucherResponse
// @Failure 404 {object} httperr.Response
// @Router /commission-groups/{id}/vouchers [get]
func (h *CommissionGroupHandler) Vouchers(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	views, err := h.q.Vouchers(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to list group vouchers")
		return
	}
	c.JSON(http.StatusOK, resdto.FromGroupVouchers(views))
}

// @Summary Attach a voucher to a group
// @Tags commission-groups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Commission group ID"
// @Param request body reqdto.AddGroupVoucherRequest true "Voucher and commission split"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /commission-groups/{id}/vouchers [post]
func (h *CommissionGroupHandler) AddVoucher(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.AddGroupVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalidRequest(c, err)
		return
	}
	params, err := req.ToParams()
	if err != nil {
		abortInvalidRequest(c, err)
		return
	}
	voucherID, err := h.cmds.AddVoucher(c.Request.Context(), id, params)
	if err != nil {
		abortWithUsecaseError(c, err, "Attach voucher failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: voucherID.String()})
}

// @Summary Detach a voucher from a group
// @Tags commission-groups
// @Security BearerAuth
// @Param id path string true "Commission group ID"
// @Param voucherId path string true "Group voucher ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /commission-groups/{id}/vouchers/{voucherId} [delete]
func (h *CommissionGroupHandler) RemoveVoucher(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	voucherID, ok := pathID(c, "voucherId")
	if !ok {
		return
	}
	if err := h.cmds.RemoveVoucher(c.Request.Context(), id, voucherID); err != nil {
		abortWithUsecaseError(c, err, "Detach voucher failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Supplier voucher candidates
// @Description List what one supplier offers for the group; entries already chosen come back disabled
// @Tags commission-groups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Commission group ID"
// @Param request body reqdto.SupplierVouchersRequest true "Supplier and current selection"
// @Success 200 {array} resdto.CandidateResponse
// @Failure 404 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /commission-groups/{id}/supplier-vouchers [post]
func (h *CommissionGroupHandler) SupplierVouchers(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.SupplierVouchersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalidRequest(c, err)
		return
	}
	candidates, err := h.q.SupplierVouchers(c.Request.Context(), id, req.ToParams())
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to list supplier vouchers")
		return
	}
	c.JSON(http.StatusOK, resdto.FromCandidates(candidates))
}
