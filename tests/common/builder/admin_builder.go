//go:build unit || e2e

package builder

import (
	"time"

	"airvoucher-admin/internal/domain/admin"
	sqlc "airvoucher-admin/internal/infra/sqlc/generated"
	"airvoucher-admin/internal/pkg/pgconv"
	"airvoucher-admin/internal/usecase/queries"

	"github.com/google/uuid"
)

type AdminBuilder struct {
	ID       uuid.UUID
	Name     string
	Email    string
	Phone    *string
	Role     string
	IsActive bool
}

func NewAdminBuilder() *AdminBuilder {
	return &AdminBuilder{
		ID:       uuid.New(),
		Name:     "Thandi Mokoena",
		Email:    "admin@example.com",
		Role:     admin.RoleAdmin.String(),
		IsActive: true,
	}
}

func (a *AdminBuilder) With(mutate func(*AdminBuilder)) *AdminBuilder {
	mutate(a)
	return a
}

// Build methods
func (a *AdminBuilder) BuildParams() admin.Params {
	return admin.Params{
		Name:     a.Name,
		Email:    a.Email,
		Phone:    a.Phone,
		Role:     a.Role,
		IsActive: a.IsActive,
	}
}

func (a *AdminBuilder) BuildDomain() (*admin.Admin, error) {
	return admin.NewAdmin(a.ID, a.BuildParams(), time.Now())
}

func (a *AdminBuilder) BuildInfra() sqlc.Admins {
	now := time.Now()
	return sqlc.Admins{
		ID:        a.ID,
		Name:      a.Name,
		Email:     a.Email,
		Phone:     pgconv.StringPtrToPgtype(a.Phone),
		Role:      a.Role,
		IsActive:  a.IsActive,
		CreatedAt: pgconv.TimeToPgtype(now),
		UpdatedAt: pgconv.TimeToPgtype(now),
	}
}

func (a *AdminBuilder) BuildView() *queries.AdminView {
	now := time.Now()
	return &queries.AdminView{
		ID:        a.ID,
		Name:      a.Name,
		Email:     a.Email,
		Phone:     a.Phone,
		Role:      a.Role,
		IsActive:  a.IsActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Fluent builder methods
func (a *AdminBuilder) WithEmail(email string) *AdminBuilder {
	a.Email = email
	return a
}

func (a *AdminBuilder) WithRole(role admin.Role) *AdminBuilder {
	a.Role = role.String()
	return a
}

func (a *AdminBuilder) AsInactive() *AdminBuilder {
	a.IsActive = false
	return a
}
