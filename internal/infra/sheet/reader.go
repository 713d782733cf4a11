package sheet

import (
	"encoding/csv"
	"io"
	"path/filepath"
	"strings"

	"airvoucher-admin/internal/domain/voucher"
	"airvoucher-admin/internal/pkg/errs"
	"airvoucher-admin/internal/usecase/commands"

	"github.com/xuri/excelize/v2"
)

var headerAliases = map[string]string{
	"supplier":      "supplier_name",
	"expiry":        "expires_at",
	"expiry_date":   "expires_at",
	"expires":       "expires_at",
	"value":         "amount",
	"serial_no":     "serial",
	"serial_number": "serial",
}

var requiredColumns = []string{"name", "category", "vendor", "supplier_name", "amount"}

type VoucherSheetReader struct{}

func NewVoucherSheetReader() *VoucherSheetReader {
	return &VoucherSheetReader{}
}

// ReadRows picks the decoder from the file extension. maxRows <= 0 disables the row cap.
func (VoucherSheetReader) ReadRows(filename string, r io.Reader, maxRows int) ([]voucher.UploadRow, error) {
	var (
		records [][]string
		err     error
	)
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		records, err = readCSV(r)
	case ".xlsx":
		records, err = readXLSX(r)
	default:
		return nil, errs.WithMessage(commands.ErrUnsupportedUpload, "unsupported file type %q: expected .csv or .xlsx", filepath.Ext(filename))
	}
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, errs.WithMessage(commands.ErrMalformedUpload, "file is empty")
	}

	index, err := mapHeader(records[0])
	if err != nil {
		return nil, err
	}

	rows := make([]voucher.UploadRow, 0, len(records)-1)
	for i, rec := range records[1:] {
		if blank(rec) {
			continue
		}
		if maxRows > 0 && len(rows) == maxRows {
			return nil, errs.WithMessage(commands.ErrUploadTooLarge, "file has more than %d rows", maxRows)
		}
		cell := func(col string) string {
			pos, ok := index[col]
			if !ok || pos >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[pos])
		}
		rows = append(rows, voucher.UploadRow{
			Line:         i + 2,
			Name:         cell("name"),
			Category:     cell("category"),
			Vendor:       cell("vendor"),
			SupplierName: cell("supplier_name"),
			Amount:       cell("amount"),
			PIN:          cell("pin"),
			Serial:       cell("serial"),
			ExpiresAt:    cell("expires_at"),
		})
	}
	if len(rows) == 0 {
		return nil, errs.WithMessage(commands.ErrMalformedUpload, "file has a header but no rows")
	}
	return rows, nil
}

func readCSV(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to parse csv"), commands.ErrMalformedUpload)
	}
	if len(records) > 0 && len(records[0]) > 0 {
		records[0][0] = strings.TrimPrefix(records[0][0], "\ufeff")
	}
	return records, nil
}

func readXLSX(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to open xlsx"), commands.ErrMalformedUpload)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errs.WithMessage(commands.ErrMalformedUpload, "workbook has no sheets")
	}
	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to read first sheet"), commands.ErrMalformedUpload)
	}
	return records, nil
}

func mapHeader(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, raw := range header {
		name := normalizeHeader(raw)
		if name == "" {
			continue
		}
		if _, dup := index[name]; dup {
			return nil, errs.WithMessage(commands.ErrMalformedUpload, "duplicate column %q", name)
		}
		index[name] = i
	}

	var missing []string
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, errs.WithMessage(commands.ErrMalformedUpload, "missing columns: %s", strings.Join(missing, ", "))
	}
	return index, nil
}

func normalizeHeader(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.Join(strings.Fields(s), "_")
	if alias, ok := headerAliases[s]; ok {
		return alias
	}
	return s
}

func blank(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
