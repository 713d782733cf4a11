package converter

import (
	"airvoucher-admin/internal/domain/admin"
	"airvoucher-admin/internal/domain/commissiongroup"
	"airvoucher-admin/internal/domain/contact"
	"airvoucher-admin/internal/domain/retailer"
	"airvoucher-admin/internal/domain/supplier"
	sqlc "airvoucher-admin/internal/infra/sqlc/generated"
	"airvoucher-admin/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func AdminToCreateParams(a *admin.Admin) sqlc.CreateAdminParams {
	return sqlc.CreateAdminParams{
		ID:        a.ID(),
		Name:      a.Name(),
		Email:     a.Email().Value(),
		Phone:     phoneToPgtype(a.Phone()),
		Role:      a.Role().String(),
		IsActive:  a.IsActive(),
		CreatedAt: pgconv.TimeToPgtype(a.CreatedAt()),
		UpdatedAt: pgconv.TimeToPgtype(a.UpdatedAt()),
	}
}

func AdminToUpdateParams(a *admin.Admin) sqlc.UpdateAdminParams {
	return sqlc.UpdateAdminParams{
		ID:        a.ID(),
		Name:      a.Name(),
		Email:     a.Email().Value(),
		Phone:     phoneToPgtype(a.Phone()),
		Role:      a.Role().String(),
		IsActive:  a.IsActive(),
		UpdatedAt: pgconv.TimeToPgtype(a.UpdatedAt()),
	}
}

func RetailerToCreateParams(r *retailer.Retailer) sqlc.CreateRetailerParams {
	return sqlc.CreateRetailerParams{
		ID:                r.ID(),
		Name:              r.Name(),
		ContactPerson:     pgconv.StringPtrToPgtype(r.ContactPerson()),
		Email:             r.Email().Value(),
		Phone:             phoneToPgtype(r.Phone()),
		Location:          pgconv.StringPtrToPgtype(r.Location()),
		IsActive:          r.IsActive(),
		CommissionGroupID: pgconv.UUIDPtrToPgtype(r.CommissionGroupID()),
		CreatedAt:         pgconv.TimeToPgtype(r.CreatedAt()),
		UpdatedAt:         pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

func RetailerToUpdateParams(r *retailer.Retailer) sqlc.UpdateRetailerParams {
	return sqlc.UpdateRetailerParams{
		ID:                r.ID(),
		Name:              r.Name(),
		ContactPerson:     pgconv.StringPtrToPgtype(r.ContactPerson()),
		Email:             r.Email().Value(),
		Phone:             phoneToPgtype(r.Phone()),
		Location:          pgconv.StringPtrToPgtype(r.Location()),
		IsActive:          r.IsActive(),
		CommissionGroupID: pgconv.UUIDPtrToPgtype(r.CommissionGroupID()),
		UpdatedAt:         pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

func SupplierToCreateParams(s *supplier.Supplier) sqlc.CreateSupplierParams {
	return sqlc.CreateSupplierParams{
		ID:           s.ID(),
		Name:         s.Name(),
		Kind:         string(s.Kind()),
		Catalog:      catalogToPgtype(s.Catalog()),
		ContactEmail: emailToPgtype(s.ContactEmail()),
		ContactPhone: phoneToPgtype(s.ContactPhone()),
		IsActive:     s.IsActive(),
		CreatedAt:    pgconv.TimeToPgtype(s.CreatedAt()),
		UpdatedAt:    pgconv.TimeToPgtype(s.UpdatedAt()),
	}
}

func SupplierToUpdateParams(s *supplier.Supplier) sqlc.UpdateSupplierParams {
	return sqlc.UpdateSupplierParams{
		ID:           s.ID(),
		Name:         s.Name(),
		Kind:         string(s.Kind()),
		Catalog:      catalogToPgtype(s.Catalog()),
		ContactEmail: emailToPgtype(s.ContactEmail()),
		ContactPhone: phoneToPgtype(s.ContactPhone()),
		IsActive:     s.IsActive(),
		UpdatedAt:    pgconv.TimeToPgtype(s.UpdatedAt()),
	}
}

func CommissionGroupToCreateParams(g *commissiongroup.CommissionGroup) sqlc.CreateCommissionGroupParams {
	return sqlc.CreateCommissionGroupParams{
		ID:                    g.ID(),
		Name:                  g.Name(),
		Description:           pgconv.StringPtrToPgtype(g.Description()),
		RetailerCommissionPct: pgconv.DecimalToNumeric(g.RetailerCommissionPct().Decimal()),
		AgentCommissionPct:    pgconv.DecimalToNumeric(g.AgentCommissionPct().Decimal()),
		CreatedAt:             pgconv.TimeToPgtype(g.CreatedAt()),
		UpdatedAt:             pgconv.TimeToPgtype(g.UpdatedAt()),
	}
}

func CommissionGroupToUpdateParams(g *commissiongroup.CommissionGroup) sqlc.UpdateCommissionGroupParams {
	return sqlc.UpdateCommissionGroupParams{
		ID:                    g.ID(),
		Name:                  g.Name(),
		Description:           pgconv.StringPtrToPgtype(g.Description()),
		RetailerCommissionPct: pgconv.DecimalToNumeric(g.RetailerCommissionPct().Decimal()),
		AgentCommissionPct:    pgconv.DecimalToNumeric(g.AgentCommissionPct().Decimal()),
		UpdatedAt:             pgconv.TimeToPgtype(g.UpdatedAt()),
	}
}

func GroupVoucherToCreateParams(v *commissiongroup.GroupVoucher) sqlc.CreateCommissionGroupVoucherParams {
	return sqlc.CreateCommissionGroupVoucherParams{
		ID:                    v.ID(),
		CommissionGroupID:     v.GroupID(),
		SupplierID:            v.SupplierID(),
		Name:                  v.Name(),
		Vendor:                v.Vendor(),
		Category:              v.Category(),
		AmountCents:           pgconv.Int64PtrToPgtype(v.AmountCents()),
		RetailerCommissionPct: pgconv.DecimalToNumeric(v.RetailerCommissionPct().Decimal()),
		AgentCommissionPct:    pgconv.DecimalToNumeric(v.AgentCommissionPct().Decimal()),
		CreatedAt:             pgconv.TimeToPgtype(v.CreatedAt()),
	}
}

func phoneToPgtype(p *contact.Phone) pgtype.Text {
	if p == nil {
		return pgtype.Text{Valid: false}
	}
	return pgconv.StringToPgtype(p.Value())
}

func emailToPgtype(e *contact.Email) pgtype.Text {
	if e == nil {
		return pgtype.Text{Valid: false}
	}
	return pgconv.StringToPgtype(e.Value())
}

func catalogToPgtype(c *supplier.Catalog) pgtype.Text {
	if c == nil {
		return pgtype.Text{Valid: false}
	}
	return pgconv.StringToPgtype(string(*c))
}
