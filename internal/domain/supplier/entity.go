package supplier

import (
	"errors"
	"strings"
	"time"

	"airvoucher-admin/internal/domain/contact"

	"github.com/google/uuid"
)

var (
	ErrNameRequired      = errors.New("supplier name is required")
	ErrInvalidKind       = errors.New("invalid supplier kind")
	ErrInvalidCatalog    = errors.New("invalid supplier catalog")
	ErrCatalogRequired   = errors.New("aggregator suppliers need a catalog")
	ErrCatalogNotAllowed = errors.New("only aggregator suppliers have a catalog")
)

type Params struct {
	Name         string
	Kind         string
	Catalog      *string
	ContactEmail *string
	ContactPhone *string
	IsActive     bool
}

type Supplier struct {
	id           uuid.UUID
	name         string
	kind         Kind
	catalog      *Catalog
	contactEmail *contact.Email
	contactPhone *contact.Phone
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewSupplier(id uuid.UUID, p Params, now time.Time) (*Supplier, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return nil, ErrNameRequired
	}
	kind, err := NewKind(p.Kind)
	if err != nil {
		return nil, err
	}
	catalog, err := catalogFor(kind, contact.Text(p.Catalog))
	if err != nil {
		return nil, err
	}
	email, err := contact.NewOptionalEmail(p.ContactEmail)
	if err != nil {
		return nil, err
	}
	phone, err := contact.NewOptionalPhone(p.ContactPhone)
	if err != nil {
		return nil, err
	}
	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Supplier{
		id:           id,
		name:         name,
		kind:         kind,
		catalog:      catalog,
		contactEmail: email,
		contactPhone: phone,
		isActive:     p.IsActive,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func catalogFor(kind Kind, raw *string) (*Catalog, error) {
	if kind != KindAggregator {
		if raw != nil {
			return nil, ErrCatalogNotAllowed
		}
		return nil, nil
	}
	if raw == nil {
		return nil, ErrCatalogRequired
	}
	c, err := NewCatalog(*raw)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Supplier) ID() uuid.UUID                { return s.id }
func (s *Supplier) Name() string                 { return s.name }
func (s *Supplier) Kind() Kind                   { return s.kind }
func (s *Supplier) Catalog() *Catalog            { return s.catalog }
func (s *Supplier) ContactEmail() *contact.Email { return s.contactEmail }
func (s *Supplier) ContactPhone() *contact.Phone { return s.contactPhone }
func (s *Supplier) IsActive() bool               { return s.isActive }
func (s *Supplier) CreatedAt() time.Time         { return s.createdAt }
func (s *Supplier) UpdatedAt() time.Time         { return s.updatedAt }
