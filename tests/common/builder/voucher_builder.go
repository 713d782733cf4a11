//go:build unit || e2e

package builder

import (
	"time"

	"airvoucher-admin/internal/domain/voucher"
	reqdto "airvoucher-admin/internal/handler/dto/request"
	sqlc "airvoucher-admin/internal/infra/sqlc/generated"
	"airvoucher-admin/internal/pkg/money"
	"airvoucher-admin/internal/pkg/pgconv"
	"airvoucher-admin/internal/usecase/queries"

	"github.com/google/uuid"
)

type VoucherBuilder struct {
	ID           uuid.UUID
	Name         string
	Category     string
	Vendor       string
	SupplierName string
	AmountCents  int64
	Status       string
	PIN          *string
	Serial       *string
	ExpiresAt    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func NewVoucherBuilder() *VoucherBuilder {
	now := time.Now().UTC().Truncate(time.Microsecond)
	pin := "1234567890123456"
	serial := "SN-0001"
	return &VoucherBuilder{
		ID:           uuid.New(),
		Name:         "MTN R10 Airtime",
		Category:     "airtime",
		Vendor:       "MTN",
		SupplierName: "MTN Direct",
		AmountCents:  1000,
		Status:       voucher.StatusActive.String(),
		PIN:          &pin,
		Serial:       &serial,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (b *VoucherBuilder) With(mutate func(*VoucherBuilder)) *VoucherBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *VoucherBuilder) BuildParams() voucher.NewVoucherParams {
	return voucher.NewVoucherParams{
		ID:           b.ID,
		Name:         b.Name,
		Category:     b.Category,
		Vendor:       b.Vendor,
		SupplierName: b.SupplierName,
		AmountCents:  b.AmountCents,
		Status:       b.Status,
		PIN:          b.PIN,
		Serial:       b.Serial,
		ExpiresAt:    b.ExpiresAt,
	}
}

func (b *VoucherBuilder) BuildDomain() (*voucher.Voucher, error) {
	return voucher.NewVoucher(b.BuildParams(), b.CreatedAt)
}

func (b *VoucherBuilder) BuildInfra() sqlc.Vouchers {
	return sqlc.Vouchers{
		ID:           b.ID,
		Name:         b.Name,
		Category:     b.Category,
		Vendor:       b.Vendor,
		SupplierName: b.SupplierName,
		AmountCents:  b.AmountCents,
		Status:       b.Status,
		Pin:          pgconv.StringPtrToPgtype(b.PIN),
		Serial:       pgconv.StringPtrToPgtype(b.Serial),
		ExpiresAt:    pgconv.DatePtrToPgtype(b.ExpiresAt),
		CreatedAt:    pgconv.TimeToPgtype(b.CreatedAt),
		UpdatedAt:    pgconv.TimeToPgtype(b.UpdatedAt),
	}
}

func (b *VoucherBuilder) BuildView() *queries.VoucherView {
	return &queries.VoucherView{
		ID:           b.ID,
		Name:         b.Name,
		Category:     b.Category,
		Vendor:       b.Vendor,
		SupplierName: b.SupplierName,
		AmountCents:  b.AmountCents,
		Status:       b.Status,
		PIN:          b.PIN,
		Serial:       b.Serial,
		ExpiresAt:    b.ExpiresAt,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

func (b *VoucherBuilder) BuildCreateRequestDTO() reqdto.CreateVoucherRequest {
	req := reqdto.CreateVoucherRequest{
		Name:         b.Name,
		Category:     b.Category,
		Vendor:       b.Vendor,
		SupplierName: b.SupplierName,
		Amount:       money.ToDecimal(b.AmountCents).StringFixed(2),
		PIN:          b.PIN,
		Serial:       b.Serial,
	}
	if b.ExpiresAt != nil {
		d := b.ExpiresAt.Format(voucher.ExpiryDateLayout)
		req.ExpiresAt = &d
	}
	return req
}

// Fluent builder methods
func (b *VoucherBuilder) WithAmount(cents int64) *VoucherBuilder {
	b.AmountCents = cents
	return b
}

func (b *VoucherBuilder) WithVendor(vendor string) *VoucherBuilder {
	b.Vendor = vendor
	return b
}

func (b *VoucherBuilder) WithCategory(category string) *VoucherBuilder {
	b.Category = category
	return b
}

func (b *VoucherBuilder) WithSupplier(name string) *VoucherBuilder {
	b.SupplierName = name
	return b
}

func (b *VoucherBuilder) WithName(name string) *VoucherBuilder {
	b.Name = name
	return b
}

func (b *VoucherBuilder) AsSold() *VoucherBuilder {
	b.Status = voucher.StatusSold.String()
	return b
}

func (b *VoucherBuilder) AsExpired() *VoucherBuilder {
	b.Status = voucher.StatusExpired.String()
	return b
}

func (b *VoucherBuilder) WithoutSecrets() *VoucherBuilder {
	b.PIN = nil
	b.Serial = nil
	return b
}
