package response

import "airvoucher-admin/internal/usecase/queries"

type DashboardResponse struct {
	Vouchers         queries.VoucherStatusCounts `json:"vouchers"`
	Admins           int64                       `json:"admins"`
	Retailers        int64                       `json:"retailers"`
	Suppliers        int64                       `json:"suppliers"`
	CommissionGroups int64                       `json:"commission_groups"`
}

func FromDashboardSummary(s *queries.DashboardSummary) *DashboardResponse {
	return &DashboardResponse{
		Vouchers:         s.Vouchers,
		Admins:           s.Admins,
		Retailers:        s.Retailers,
		Suppliers:        s.Suppliers,
		CommissionGroups: s.CommissionGroups,
	}
}
