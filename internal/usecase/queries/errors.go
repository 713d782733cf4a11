package queries

import "airvoucher-admin/internal/pkg/errs"

var (
	ErrInvalidRequest     = errs.New("invalid request")
	ErrInvalidCursor      = errs.New("invalid cursor")
	ErrEntityNotFound     = errs.New("entity not found")
	ErrVoucherNotFound    = errs.New("voucher not found")
	ErrNoVoucherAvailable = errs.New("no voucher available")
	ErrCatalogUnavailable = errs.New("bundle catalog unavailable")
	ErrPartnerUnavailable = errs.New("partner api unavailable")
)
