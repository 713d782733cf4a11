package commands

//go:generate mockgen -source=partner.go -destination=../../../tests/mock/commands/partner.go -package=commandsmock

import (
	"context"
	"log/slog"
	"strings"

	"airvoucher-admin/internal/domain/voucher"
	"airvoucher-admin/internal/infra/partner"
	"airvoucher-admin/internal/pkg/errs"
	"airvoucher-admin/internal/pkg/money"

	"github.com/shopspring/decimal"
)

type VoucherIssuer interface {
	RequestVoucher(ctx context.Context, value decimal.Decimal, provider string) (*partner.Voucher, error)
}

type PartnerVoucherResult struct {
	Voucher  *partner.Voucher `json:"voucher"`
	External bool             `json:"external"`
}

type PartnerCommands interface {
	RequestVoucher(ctx context.Context, value, provider string) (*PartnerVoucherResult, error)
}

type partnerCommandsImpl struct {
	issuer VoucherIssuer
}

func NewPartnerCommands(issuer VoucherIssuer) PartnerCommands {
	return &partnerCommandsImpl{issuer: issuer}
}

func (c *partnerCommandsImpl) RequestVoucher(ctx context.Context, value, provider string) (*PartnerVoucherResult, error) {
	provider = strings.TrimSpace(provider)
	if provider == "" {
		return nil, errs.Mark(voucher.ErrProviderRequired, ErrValidation)
	}
	cents, err := money.ParseRand(value)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	v, err := c.issuer.RequestVoucher(ctx, money.ToDecimal(cents), provider)
	if err != nil {
		slog.ErrorContext(ctx, "Partner voucher request failed",
			slog.String("provider", provider),
			slog.String("amount", money.FormatRand(cents)),
			slog.Any("error", err))
		return nil, errs.Mark(err, ErrPartnerUnavailable)
	}
	return &PartnerVoucherResult{Voucher: v, External: true}, nil
}
