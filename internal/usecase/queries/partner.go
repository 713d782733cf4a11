package queries

//go:generate mockgen -source=partner.go -destination=../../../tests/mock/queries/partner.go -package=queriesmock

import (
	"context"

	"airvoucher-admin/internal/domain/supplier"
	"airvoucher-admin/internal/infra/partner"
	"airvoucher-admin/internal/pkg/errs"
)

type PartnerQueries interface {
	Bundles(ctx context.Context, category string) ([]partner.BundleProduct, error)
}

type partnerQueriesImpl struct {
	catalog BundleCatalog
}

func NewPartnerQueries(catalog BundleCatalog) PartnerQueries {
	return &partnerQueriesImpl{catalog: catalog}
}

func (q *partnerQueriesImpl) Bundles(ctx context.Context, category string) ([]partner.BundleProduct, error) {
	catalog, err := supplier.CatalogForCategory(category)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRequest)
	}
	bundles, err := q.catalog.ListBundles(ctx, catalog.Category())
	if err != nil {
		return nil, errs.Mark(err, ErrPartnerUnavailable)
	}
	return bundles, nil
}
