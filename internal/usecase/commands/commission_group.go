package commands

//go:generate mockgen -source=commission_group.go -destination=../../../tests/mock/commands/commission_group.go -package=commandsmock

import (
	"context"

	"airvoucher-admin/internal/domain/commissiongroup"
	"airvoucher-admin/internal/infra"
	"airvoucher-admin/internal/pkg/clock"
	"airvoucher-admin/internal/pkg/errs"
	"airvoucher-admin/internal/usecase/shared"

	"github.com/google/uuid"
)

type CommissionGroupCommands interface {
	EntityCommands[commissiongroup.Params]
	AddVoucher(ctx context.Context, groupID uuid.UUID, params commissiongroup.GroupVoucherParams) (uuid.UUID, error)
	RemoveVoucher(ctx context.Context, groupID, voucherID uuid.UUID) error
}

type commissionGroupCommandsImpl struct {
	*entityCommandsImpl[commissiongroup.CommissionGroup, commissiongroup.Params]
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCommissionGroupCommands(uow shared.UnitOfWork, clk clock.Clock) CommissionGroupCommands {
	return &commissionGroupCommandsImpl{
		entityCommandsImpl: newCommissionGroupEntityCommands(uow, clk),
		uow:                uow,
		clock:              clk,
	}
}

func (c *commissionGroupCommandsImpl) AddVoucher(ctx context.Context, groupID uuid.UUID, params commissiongroup.GroupVoucherParams) (uuid.UUID, error) {
	gv, err := commissiongroup.NewGroupVoucher(groupID, params, c.clock.Now())
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrValidation)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.CommissionGroups().AddVoucher(ctx, tx.DB(), gv)
	})
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindDuplicateKey):
			return uuid.Nil, errs.WithMessage(ErrEntityDuplicate,
				"voucher %q from %s is already attached to this group", gv.Name(), gv.Vendor())
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return uuid.Nil, errs.WithMessage(ErrEntityReference, "commission group or supplier does not exist")
		default:
			return uuid.Nil, err
		}
	}
	return gv.ID(), nil
}

func (c *commissionGroupCommandsImpl) RemoveVoucher(ctx context.Context, groupID, voucherID uuid.UUID) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.CommissionGroups().RemoveVoucher(ctx, tx.DB(), groupID, voucherID)
	})
	if err != nil {
		return classifyWriteErr(err, "group voucher")
	}
	return nil
}
