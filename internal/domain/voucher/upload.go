package voucher

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"airvoucher-admin/internal/pkg/money"
)

const ExpiryDateLayout = "2006-01-02"

var UploadColumns = []string{"name", "category", "vendor", "supplier_name", "amount", "pin", "serial", "expires_at"}

// UploadRow is one spreadsheet line as text; Line is 1-based and counts the header.
type UploadRow struct {
	Line         int
	Name         string
	Category     string
	Vendor       string
	SupplierName string
	Amount       string
	PIN          string
	Serial       string
	ExpiresAt    string
}

type RowError struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
}

func (e RowError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

func (r UploadRow) ToVoucher(now time.Time) (*Voucher, error) {
	cents, err := money.ParseRand(r.Amount)
	if err != nil {
		return nil, RowError{Line: r.Line, Message: "amount: " + err.Error()}
	}

	var expiresAt *time.Time
	if s := strings.TrimSpace(r.ExpiresAt); s != "" {
		t, perr := time.Parse(ExpiryDateLayout, s)
		if perr != nil {
			return nil, RowError{Line: r.Line, Message: "expires_at: expected YYYY-MM-DD"}
		}
		expiresAt = &t
	}

	v, err := NewVoucher(NewVoucherParams{
		Name:         r.Name,
		Category:     r.Category,
		Vendor:       r.Vendor,
		SupplierName: r.SupplierName,
		AmountCents:  cents,
		PIN:          &r.PIN,
		Serial:       &r.Serial,
		ExpiresAt:    expiresAt,
	}, now)
	if err != nil {
		return nil, RowError{Line: r.Line, Message: err.Error()}
	}
	return v, nil
}

// ConvertRows is all-or-nothing: any invalid row yields no vouchers and every row error.
func ConvertRows(rows []UploadRow, now time.Time) ([]*Voucher, []RowError) {
	vouchers := make([]*Voucher, 0, len(rows))
	var rowErrs []RowError
	for _, r := range rows {
		v, err := r.ToVoucher(now)
		if err != nil {
			var re RowError
			if !errors.As(err, &re) {
				re = RowError{Line: r.Line, Message: err.Error()}
			}
			rowErrs = append(rowErrs, re)
			continue
		}
		vouchers = append(vouchers, v)
	}
	if len(rowErrs) > 0 {
		return nil, rowErrs
	}
	return vouchers, nil
}
