package api

import (
	"airvoucher-admin/internal/domain/retailer"
	"airvoucher-admin/internal/domain/supplier"
	reqdto "airvoucher-admin/internal/handler/dto/request"
	resdto "airvoucher-admin/internal/handler/dto/response"
	"airvoucher-admin/internal/usecase/commands"
	"airvoucher-admin/internal/usecase/queries"
)

type RetailerHandler struct {
	*EntityHandler[queries.RetailerView, retailer.Params, resdto.RetailerResponse]
}

func NewRetailerHandler(cmds commands.RetailerCommands, q queries.EntityQueries[queries.RetailerView]) *RetailerHandler {
	return &RetailerHandler{
		EntityHandler: newEntityHandler[queries.RetailerView, retailer.Params, resdto.RetailerResponse,
			reqdto.CreateRetailerRequest, reqdto.UpdateRetailerRequest]("retailer", cmds, q),
	}
}

type SupplierHandler struct {
	*EntityHandler[queries.SupplierView, supplier.Params, resdto.SupplierResponse]
}

func NewSupplierHandler(cmds commands.SupplierCommands, q queries.EntityQueries[queries.SupplierView]) *SupplierHandler {
	return &SupplierHandler{
		EntityHandler: newEntityHandler[queries.SupplierView, supplier.Params, resdto.SupplierResponse,
			reqdto.CreateSupplierRequest, reqdto.UpdateSupplierRequest]("supplier", cmds, q),
	}
}
