package retailer

import (
	"errors"
	"strings"
	"time"

	"airvoucher-admin/internal/domain/contact"

	"github.com/google/uuid"
)

var ErrNameRequired = errors.New("retailer name is required")

type Params struct {
	Name              string
	ContactPerson     *string
	Email             string
	Phone             *string
	Location          *string
	IsActive          bool
	CommissionGroupID *uuid.UUID
}

type Retailer struct {
	id                uuid.UUID
	name              string
	contactPerson     *string
	email             contact.Email
	phone             *contact.Phone
	location          *string
	isActive          bool
	commissionGroupID *uuid.UUID
	createdAt         time.Time
	updatedAt         time.Time
}

func NewRetailer(id uuid.UUID, p Params, now time.Time) (*Retailer, error) {
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
	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Retailer{
		id:                id,
		name:              name,
		contactPerson:     contact.Text(p.ContactPerson),
		email:             email,
		phone:             phone,
		location:          contact.Text(p.Location),
		isActive:          p.IsActive,
		commissionGroupID: p.CommissionGroupID,
		createdAt:         now,
		updatedAt:         now,
	}, nil
}

func (r *Retailer) ID() uuid.UUID                 { return r.id }
func (r *Retailer) Name() string                  { return r.name }
func (r *Retailer) ContactPerson() *string        { return r.contactPerson }
func (r *Retailer) Email() contact.Email          { return r.email }
func (r *Retailer) Phone() *contact.Phone         { return r.phone }
func (r *Retailer) Location() *string             { return r.location }
func (r *Retailer) IsActive() bool                { return r.isActive }
func (r *Retailer) CommissionGroupID() *uuid.UUID { return r.commissionGroupID }
func (r *Retailer) CreatedAt() time.Time          { return r.createdAt }
func (r *Retailer) UpdatedAt() time.Time          { return r.updatedAt }
