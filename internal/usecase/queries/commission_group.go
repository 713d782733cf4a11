package queries

//go:generate mockgen -source=commission_group.go -destination=../../../tests/mock/queries/commission_group.go -package=queriesmock

import (
	"context"
	"log/slog"

	"airvoucher-admin/internal/domain/commissiongroup"
	"airvoucher-admin/internal/domain/supplier"
	"airvoucher-admin/internal/infra"
	"airvoucher-admin/internal/infra/partner"
	"airvoucher-admin/internal/pkg/errs"
	"airvoucher-admin/internal/pkg/money"

	"github.com/google/uuid"
)

type CommissionGroupReadStore interface {
	EntityReadStore[CommissionGroupView]
	FindVouchers(ctx context.Context, groupID uuid.UUID) ([]*GroupVoucherView, error)
	FindVouchersBySupplier(ctx context.Context, groupID, supplierID uuid.UUID) ([]*GroupVoucherView, error)
}

// BundleCatalog is the partner bundle listing used for aggregator suppliers.
type BundleCatalog interface {
	ListBundles(ctx context.Context, category string) ([]partner.BundleProduct, error)
}

type SupplierVoucherParams struct {
	SupplierID uuid.UUID
	// BatchCount is the size of the voucher batch being attached, for batch suppliers.
	BatchCount int
	InSession  []commissiongroup.Selected
}

type CommissionGroupQueries interface {
	EntityQueries[CommissionGroupView]
	Vouchers(ctx context.Context, groupID uuid.UUID) ([]*GroupVoucherView, error)
	SupplierVouchers(ctx context.Context, groupID uuid.UUID, params SupplierVoucherParams) ([]commissiongroup.Candidate, error)
}

type commissionGroupQueriesImpl struct {
	EntityQueries[CommissionGroupView]
	store     CommissionGroupReadStore
	suppliers EntityReadStore[SupplierView]
	catalog   BundleCatalog
}

func NewCommissionGroupQueries(store CommissionGroupReadStore, suppliers EntityReadStore[SupplierView], catalog BundleCatalog) CommissionGroupQueries {
	return &commissionGroupQueriesImpl{
		EntityQueries: NewEntityQueries[CommissionGroupView](store),
		store:         store,
		suppliers:     suppliers,
		catalog:       catalog,
	}
}

func (q *commissionGroupQueriesImpl) Vouchers(ctx context.Context, groupID uuid.UUID) ([]*GroupVoucherView, error) {
	if _, err := q.GetByID(ctx, groupID); err != nil {
		return nil, err
	}
	return q.store.FindVouchers(ctx, groupID)
}

func (q *commissionGroupQueriesImpl) SupplierVouchers(ctx context.Context, groupID uuid.UUID, params SupplierVoucherParams) ([]commissiongroup.Candidate, error) {
	if _, err := q.GetByID(ctx, groupID); err != nil {
		return nil, err
	}

	sup, err := q.suppliers.FindByID(ctx, params.SupplierID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.WithMessage(ErrEntityNotFound, "supplier %s not found", params.SupplierID)
		}
		return nil, err
	}
	kind, err := supplier.NewKind(sup.Kind)
	if err != nil {
		return nil, err
	}

	persisted, err := q.store.FindVouchersBySupplier(ctx, groupID, sup.ID)
	if err != nil {
		return nil, err
	}

	in := commissiongroup.SelectionInput{
		SupplierName: sup.Name,
		SupplierKind: kind,
		BatchCount:   params.BatchCount,
		InSession:    params.InSession,
		Persisted:    make([]commissiongroup.Selected, 0, len(persisted)),
	}
	for _, p := range persisted {
		in.Persisted = append(in.Persisted, commissiongroup.Selected{Name: p.Name, Vendor: p.Vendor})
	}

	if kind == supplier.KindAggregator && sup.Catalog != nil {
		catalog, cerr := supplier.NewCatalog(*sup.Catalog)
		if cerr != nil {
			return nil, cerr
		}
		in.SupplierCatalog = &catalog

		bundles, cerr := q.catalog.ListBundles(ctx, catalog.Category())
		if cerr != nil {
			slog.ErrorContext(ctx, "Failed to load bundle catalog",
				slog.String("supplier", sup.Name),
				slog.String("category", catalog.Category()),
				slog.Any("error", cerr))
			return nil, errs.Mark(cerr, ErrCatalogUnavailable)
		}
		in.Catalog = toCatalogEntries(bundles)
	}

	return commissiongroup.SelectCandidates(in), nil
}

func toCatalogEntries(bundles []partner.BundleProduct) []commissiongroup.CatalogEntry {
	entries := make([]commissiongroup.CatalogEntry, 0, len(bundles))
	for _, b := range bundles {
		e := commissiongroup.CatalogEntry{
			ID:       b.ID,
			Name:     b.Name,
			Vendor:   b.Vendor,
			Category: b.Category,
		}
		if b.Amount != nil {
			if cents, err := money.FromDecimal(*b.Amount); err == nil {
				e.AmountCents = &cents
			}
		}
		entries = append(entries, e)
	}
	return entries
}
