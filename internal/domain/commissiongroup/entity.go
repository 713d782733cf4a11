package commissiongroup

import (
	"strings"
	"time"

	"airvoucher-admin/internal/domain/contact"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Params struct {
	Name                  string
	Description           *string
	RetailerCommissionPct decimal.Decimal
	AgentCommissionPct    decimal.Decimal
}

type CommissionGroup struct {
	id          uuid.UUID
	name        string
	description *string
	retailerPct Percentage
	agentPct    Percentage
	createdAt   time.Time
	updatedAt   time.Time
}

func NewCommissionGroup(id uuid.UUID, p Params, now time.Time) (*CommissionGroup, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return nil, ErrNameRequired
	}
	retailerPct, err := NewPercentage(p.RetailerCommissionPct)
	if err != nil {
		return nil, err
	}
	agentPct, err := NewPercentage(p.AgentCommissionPct)
	if err != nil {
		return nil, err
	}
	if id == uuid.Nil {
		id = uuid.New()
	}

	return &CommissionGroup{
		id:          id,
		name:        name,
		description: contact.Text(p.Description),
		retailerPct: retailerPct,
		agentPct:    agentPct,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func (g *CommissionGroup) ID() uuid.UUID                     { return g.id }
func (g *CommissionGroup) Name() string                      { return g.name }
func (g *CommissionGroup) Description() *string              { return g.description }
func (g *CommissionGroup) RetailerCommissionPct() Percentage { return g.retailerPct }
func (g *CommissionGroup) AgentCommissionPct() Percentage    { return g.agentPct }
func (g *CommissionGroup) CreatedAt() time.Time              { return g.createdAt }
func (g *CommissionGroup) UpdatedAt() time.Time              { return g.updatedAt }
