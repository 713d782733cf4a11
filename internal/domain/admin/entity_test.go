//go:build unit

package admin_test

import (
	"testing"
	"time"

	"airvoucher-admin/internal/domain/admin"
	"airvoucher-admin/internal/domain/contact"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAdmin(t *testing.T) {
	now := time.Now()
	phone := "+27 82 555 0101"
	base := admin.Params{Name: "Thandi Mokoena", Email: " Thandi@AirVoucher.co.za ", Phone: &phone, Role: "admin", IsActive: true}

	t.Run("success", func(t *testing.T) {
		a, err := admin.NewAdmin(uuid.Nil, base, now)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, a.ID())
		assert.Equal(t, "thandi@airvoucher.co.za", a.Email().Value())
		assert.Equal(t, admin.RoleAdmin, a.Role())
		require.NotNil(t, a.Phone())
	})

	t.Run("keeps given id", func(t *testing.T) {
		id := uuid.New()
		a, err := admin.NewAdmin(id, base, now)
		require.NoError(t, err)
		assert.Equal(t, id, a.ID())
	})

	cases := []struct {
		name   string
		mutate func(*admin.Params)
		errIs  error
	}{
		{"missing name", func(p *admin.Params) { p.Name = "" }, admin.ErrNameRequired},
		{"bad email", func(p *admin.Params) { p.Email = "thandi" }, contact.ErrInvalidEmail},
		{"bad phone", func(p *admin.Params) { bad := "call me"; p.Phone = &bad }, contact.ErrInvalidPhone},
		{"unknown role", func(p *admin.Params) { p.Role = "owner" }, admin.ErrInvalidRole},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := base
			tc.mutate(&p)
			_, err := admin.NewAdmin(uuid.Nil, p, now)
			assert.ErrorIs(t, err, tc.errIs)
		})
	}
}

func TestRole_AtLeast(t *testing.T) {
	assert.True(t, admin.RoleSuperAdmin.AtLeast(admin.RoleAdmin))
	assert.True(t, admin.RoleAdmin.AtLeast(admin.RoleAdmin))
	assert.False(t, admin.RoleSubAdmin.AtLeast(admin.RoleAdmin))
	assert.False(t, admin.Role("root").AtLeast(admin.RoleSubAdmin))
	assert.False(t, admin.RoleAdmin.AtLeast(admin.Role("root")))
}
