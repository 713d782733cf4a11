package commands

//go:generate mockgen -source=entity.go -destination=../../../tests/mock/commands/entity.go -package=commandsmock

import (
	"context"
	"time"

	"airvoucher-admin/internal/domain/admin"
	"airvoucher-admin/internal/domain/commissiongroup"
	"airvoucher-admin/internal/domain/retailer"
	"airvoucher-admin/internal/domain/supplier"
	"airvoucher-admin/internal/pkg/clock"
	"airvoucher-admin/internal/pkg/errs"
	"airvoucher-admin/internal/usecase/shared"

	"github.com/google/uuid"
)

// EntityCommands is the single editor behind every administered entity; P is its field set.
type EntityCommands[P any] interface {
	Create(ctx context.Context, params P) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, params P) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// EntityFactory validates params and builds the aggregate; it is the entity's schema.
type EntityFactory[T, P any] func(id uuid.UUID, params P, now time.Time) (*T, error)

type entityCommandsImpl[T, P any] struct {
	uow   shared.UnitOfWork
	clock clock.Clock
	name  string
	repo  func(tx shared.Tx) shared.EntityRepository[T]
	build EntityFactory[T, P]
}

func newEntityCommands[T, P any](
	uow shared.UnitOfWork,
	clk clock.Clock,
	name string,
	repo func(tx shared.Tx) shared.EntityRepository[T],
	build EntityFactory[T, P],
) *entityCommandsImpl[T, P] {
	return &entityCommandsImpl[T, P]{uow: uow, clock: clk, name: name, repo: repo, build: build}
}

func (c *entityCommandsImpl[T, P]) Create(ctx context.Context, params P) (uuid.UUID, error) {
	id := uuid.New()
	entity, err := c.build(id, params, c.clock.Now())
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrValidation)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return c.repo(tx).Create(ctx, tx.DB(), entity)
	})
	if err != nil {
		return uuid.Nil, classifyWriteErr(err, c.name)
	}
	return id, nil
}

func (c *entityCommandsImpl[T, P]) Update(ctx context.Context, id uuid.UUID, params P) error {
	entity, err := c.build(id, params, c.clock.Now())
	if err != nil {
		return errs.Mark(err, ErrValidation)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return c.repo(tx).Update(ctx, tx.DB(), entity)
	})
	if err != nil {
		return classifyWriteErr(err, c.name)
	}
	return nil
}

func (c *entityCommandsImpl[T, P]) Delete(ctx context.Context, id uuid.UUID) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return c.repo(tx).Delete(ctx, tx.DB(), id)
	})
	if err != nil {
		return classifyWriteErr(err, c.name)
	}
	return nil
}

type RetailerCommands interface {
	EntityCommands[retailer.Params]
}

func NewRetailerCommands(uow shared.UnitOfWork, clk clock.Clock) RetailerCommands {
	return newEntityCommands[retailer.Retailer, retailer.Params](uow, clk, "retailer",
		func(tx shared.Tx) shared.EntityRepository[retailer.Retailer] { return tx.Retailers() },
		retailer.NewRetailer,
	)
}

type SupplierCommands interface {
	EntityCommands[supplier.Params]
}

func NewSupplierCommands(uow shared.UnitOfWork, clk clock.Clock) SupplierCommands {
	return newEntityCommands[supplier.Supplier, supplier.Params](uow, clk, "supplier",
		func(tx shared.Tx) shared.EntityRepository[supplier.Supplier] { return tx.Suppliers() },
		supplier.NewSupplier,
	)
}

// Shared by admin and commission group commands, which add operations on top.
func newAdminEntityCommands(uow shared.UnitOfWork, clk clock.Clock) *entityCommandsImpl[admin.Admin, admin.Params] {
	return newEntityCommands[admin.Admin, admin.Params](uow, clk, "admin",
		func(tx shared.Tx) shared.EntityRepository[admin.Admin] { return tx.Admins() },
		admin.NewAdmin,
	)
}

func newCommissionGroupEntityCommands(uow shared.UnitOfWork, clk clock.Clock) *entityCommandsImpl[commissiongroup.CommissionGroup, commissiongroup.Params] {
	return newEntityCommands[commissiongroup.CommissionGroup, commissiongroup.Params](uow, clk, "commission group",
		func(tx shared.Tx) shared.EntityRepository[commissiongroup.CommissionGroup] { return tx.CommissionGroups() },
		commissiongroup.NewCommissionGroup,
	)
}
