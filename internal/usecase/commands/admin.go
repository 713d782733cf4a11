package commands

//go:generate mockgen -source=admin.go -destination=../../../tests/mock/commands/admin.go -package=commandsmock

import (
	"context"

	"airvoucher-admin/internal/domain/admin"
	"airvoucher-admin/internal/infra"
	"airvoucher-admin/internal/pkg/clock"
	"airvoucher-admin/internal/pkg/errs"
	"airvoucher-admin/internal/usecase/shared"

	"github.com/google/uuid"
)

type AdminCommands interface {
	EntityCommands[admin.Params]
	// AssignRetailers replaces the admin's retailer set; every id must exist.
	AssignRetailers(ctx context.Context, adminID uuid.UUID, retailerIDs []uuid.UUID) error
}

type adminCommandsImpl struct {
	*entityCommandsImpl[admin.Admin, admin.Params]
	uow shared.UnitOfWork
}

func NewAdminCommands(uow shared.UnitOfWork, clk clock.Clock) AdminCommands {
	return &adminCommandsImpl{
		entityCommandsImpl: newAdminEntityCommands(uow, clk),
		uow:                uow,
	}
}

func (c *adminCommandsImpl) AssignRetailers(ctx context.Context, adminID uuid.UUID, retailerIDs []uuid.UUID) error {
	ids := uniqueIDs(retailerIDs)

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().AdminByID(ctx, adminID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.WithMessage(ErrEntityNotFound, "admin not found")
			}
			return err
		}

		if len(ids) > 0 {
			existing, err := tx.Reads().ExistingRetailerIDs(ctx, ids)
			if err != nil {
				return err
			}
			if missing := missingIDs(ids, existing); len(missing) > 0 {
				return errs.Mark(&MissingRetailersError{IDs: missing}, ErrUnknownRetailers)
			}
		}

		return tx.Admins().ReplaceRetailers(ctx, tx.DB(), adminID, ids)
	})
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func missingIDs(want, have []uuid.UUID) []uuid.UUID {
	found := make(map[uuid.UUID]struct{}, len(have))
	for _, id := range have {
		found[id] = struct{}{}
	}
	var missing []uuid.UUID
	for _, id := range want {
		if _, ok := found[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}
