package admin

import (
	"errors"
	"strings"
	"time"

	"airvoucher-admin/internal/domain/contact"

	"github.com/google/uuid"
)

var (
	ErrNameRequired = errors.New("admin name is required")
	ErrInvalidRole  = errors.New("invalid admin role")
)

type Params struct {
	Name     string
	Email    string
	Phone    *string
	Role     string
	IsActive bool
}

type Admin struct {
	id        uuid.UUID
	name      string
	email     contact.Email
	phone     *contact.Phone
	role      Role
	isActive  bool
	createdAt time.Time
	updatedAt time.Time
}

func NewAdmin(id uuid.UUID, p Params, now time.Time) (*Admin, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return nil, ErrNameRequired
	}
	email, err := contact.NewEmail(p.Email)
	if err != nil {
		return nil, err
	}
	phone, err := contact.NewOptionalPhone(p.Phone)
	if err != nil {
		return nil, err
	}
	role, err := NewRole(p.Role)
	if err != nil {
		return nil, err
	}
	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Admin{
		id:        id,
		name:      name,
		email:     email,
		phone:     phone,
		role:      role,
		isActive:  p.IsActive,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func (a *Admin) ID() uuid.UUID         { return a.id }
func (a *Admin) Name() string          { return a.name }
func (a *Admin) Email() contact.Email  { return a.email }
func (a *Admin) Phone() *contact.Phone { return a.phone }
func (a *Admin) Role() Role            { return a.role }
func (a *Admin) IsActive() bool        { return a.isActive }
func (a *Admin) CreatedAt() time.Time  { return a.createdAt }
func (a *Admin) UpdatedAt() time.Time  { return a.updatedAt }
