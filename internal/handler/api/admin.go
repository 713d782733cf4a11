package api

import (
	"net/http"

	"airvoucher-admin/internal/domain/admin"
	reqdto "airvoucher-admin/internal/handler/dto/request"
	resdto "airvoucher-admin/internal/handler/dto/response"
	"airvoucher-admin/internal/usecase/commands"
	"airvoucher-admin/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	*EntityHandler[queries.AdminView, admin.Params, resdto.AdminResponse]
	cmds commands.AdminCommands
	q    queries.AdminQueries
}

func NewAdminHandler(cmds commands.AdminCommands, q queries.AdminQueries) *AdminHandler {
	return &AdminHandler{
		EntityHandler: newEntityHandler[queries.AdminView, admin.Params, resdto.AdminResponse,
			reqdto.CreateAdminRequest, reqdto.UpdateAdminRequest]("admin", cmds, q),
		cmds: cmds,
		q:    q,
	}
}

// @Summary List assigned retailers
// @Tags admins
// @Produce json
// @Security BearerAuth
// @Param id path string true "Admin ID"
// @Success 200 {object} resdto.AdminRetailersResponse
// @Failure 404 {object} httperr.Response
// @Router /admins/{id}/retailers [get]
func (h *AdminHandler) Retailers(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	ids, err := h.q.AssignedRetailers(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to load assigned retailers")
		return
	}
	c.JSON(http.StatusOK, resdto.FromAdminRetailers(id, ids))
}

// @Summary Assign retailers
// @Description Replace the admin's retailer set; every id must name an existing retailer
// @Tags admins
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Admin ID"
// @Param request body reqdto.AssignRetailersRequest true "Retailer ids"
// @Success 200 {object} resdto.AdminRetailersResponse
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /admins/{id}/retailers [put]
func (h *AdminHandler) AssignRetailers(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.AssignRetailersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalidRequest(c, err)
		return
	}
	if err := h.cmds.AssignRetailers(c.Request.Context(), id, req.RetailerIDs); err != nil {
		abortWithUsecaseError(c, err, "Assign retailers failed")
		return
	}
	ids, err := h.q.AssignedRetailers(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to load assigned retailers")
		return
	}
	c.JSON(http.StatusOK, resdto.FromAdminRetailers(id, ids))
}
