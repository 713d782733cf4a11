package converter

import (
	"airvoucher-admin/internal/domain/voucher"
	sqlc "airvoucher-admin/internal/infra/sqlc/generated"
	"airvoucher-admin/internal/pkg/pgconv"
)

func VoucherToCreateParams(v *voucher.Voucher) sqlc.CreateVoucherParams {
	return sqlc.CreateVoucherParams{
		ID:                v.ID(),
		Name:              v.Name().String(),
		Category:          v.Category(),
		Vendor:            v.Vendor(),
		SupplierName:      v.SupplierName(),
		AmountCents:       v.Amount().Cents(),
		Status:            v.Status().String(),
		Pin:               pgconv.StringPtrToPgtype(v.PIN()),
		Serial:            pgconv.StringPtrToPgtype(v.Serial()),
		CommissionGroupID: pgconv.UUIDPtrToPgtype(v.CommissionGroupID()),
		ExpiresAt:         pgconv.DatePtrToPgtype(v.ExpiresAt()),
		CreatedAt:         pgconv.TimeToPgtype(v.CreatedAt()),
		UpdatedAt:         pgconv.TimeToPgtype(v.UpdatedAt()),
	}
}

// VoucherToUpdateParams leaves status alone; status moves only through UpdateVoucherStatus.
func VoucherToUpdateParams(v *voucher.Voucher) sqlc.UpdateVoucherParams {
	return sqlc.UpdateVoucherParams{
		ID:                v.ID(),
		Name:              v.Name().String(),
		Category:          v.Category(),
		Vendor:            v.Vendor(),
		SupplierName:      v.SupplierName(),
		AmountCents:       v.Amount().Cents(),
		Pin:               pgconv.StringPtrToPgtype(v.PIN()),
		Serial:            pgconv.StringPtrToPgtype(v.Serial()),
		CommissionGroupID: pgconv.UUIDPtrToPgtype(v.CommissionGroupID()),
		ExpiresAt:         pgconv.DatePtrToPgtype(v.ExpiresAt()),
		UpdatedAt:         pgconv.TimeToPgtype(v.UpdatedAt()),
	}
}
