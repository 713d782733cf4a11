package queries

//go:generate mockgen -source=dashboard.go -destination=../../../tests/mock/queries/dashboard.go -package=queriesmock

import (
	"context"

	"airvoucher-admin/internal/domain/voucher"
)

type DashboardReadStore interface {
	CountVouchersByStatus(ctx context.Context) (map[string]int64, error)
	CountEntities(ctx context.Context) (*EntityCounts, error)
}

type DashboardQueries interface {
	Summary(ctx context.Context) (*DashboardSummary, error)
}

type dashboardQueriesImpl struct {
	store DashboardReadStore
}

func NewDashboardQueries(store DashboardReadStore) DashboardQueries {
	return &dashboardQueriesImpl{store: store}
}

func (q *dashboardQueriesImpl) Summary(ctx context.Context) (*DashboardSummary, error) {
	byStatus, err := q.store.CountVouchersByStatus(ctx)
	if err != nil {
		return nil, err
	}
	entities, err := q.store.CountEntities(ctx)
	if err != nil {
		return nil, err
	}

	summary := &DashboardSummary{
		Vouchers: VoucherStatusCounts{
			Active:  byStatus[voucher.StatusActive.String()],
			Sold:    byStatus[voucher.StatusSold.String()],
			Expired: byStatus[voucher.StatusExpired.String()],
		},
		EntityCounts: *entities,
	}
	for _, n := range byStatus {
		summary.Vouchers.Total += n
	}
	return summary, nil
}
