package sheet

import (
	"io"
	"time"

	"airvoucher-admin/internal/domain/voucher"
	"airvoucher-admin/internal/pkg/errs"
	"airvoucher-admin/internal/pkg/money"
	"airvoucher-admin/internal/usecase/queries"

	"github.com/xuri/excelize/v2"
)

const exportSheet = "Vouchers"

var exportHeader = []any{
	"id", "name", "category", "vendor", "supplier_name", "amount", "status",
	"pin", "serial", "expires_at", "sold_at", "created_at",
}

type VoucherSheetWriter struct{}

func NewVoucherSheetWriter() *VoucherSheetWriter {
	return &VoucherSheetWriter{}
}

// WriteVouchers streams one row per voucher through excelize's StreamWriter.
func (VoucherSheetWriter) WriteVouchers(w io.Writer, vouchers []*queries.VoucherView) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), exportSheet); err != nil {
		return errs.Wrap(err, "failed to name export sheet")
	}
	sw, err := f.NewStreamWriter(exportSheet)
	if err != nil {
		return errs.Wrap(err, "failed to open stream writer")
	}

	if err := sw.SetRow("A1", exportHeader); err != nil {
		return errs.Wrap(err, "failed to write export header")
	}
	for i, v := range vouchers {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return errs.Wrap(err, "failed to address export row")
		}
		if err := sw.SetRow(cell, exportRow(v)); err != nil {
			return errs.Wrapf(err, "failed to write voucher %s", v.ID)
		}
	}
	if err := sw.Flush(); err != nil {
		return errs.Wrap(err, "failed to flush export sheet")
	}
	if _, err := f.WriteTo(w); err != nil {
		return errs.Wrap(err, "failed to write xlsx")
	}
	return nil
}

func exportRow(v *queries.VoucherView) []any {
	return []any{
		v.ID.String(),
		v.Name,
		v.Category,
		v.Vendor,
		v.SupplierName,
		money.ToDecimal(v.AmountCents).StringFixed(2),
		v.Status,
		deref(v.PIN),
		deref(v.Serial),
		formatTime(v.ExpiresAt, voucher.ExpiryDateLayout),
		formatTime(v.SoldAt, timestampLayout),
		v.CreatedAt.UTC().Format(timestampLayout),
	}
}

const timestampLayout = "2006-01-02 15:04:05"

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func formatTime(t *time.Time, layout string) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(layout)
}
