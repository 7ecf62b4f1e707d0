// Package catalog indexes species and move reference data and the type chart.
package catalog

import (
	"strings"

	"github.com/KirkDiggler/creature-battle/internal/domain/rulebook/typechart"
	apperrors "github.com/KirkDiggler/creature-battle/internal/errors"
	"golang.org/x/text/cases"
)

// Catalog is a validated, read-only index of reference data. Lookups are
// case-insensitive so ids typed by players resolve.
type Catalog struct {
	species      map[string]*Species
	speciesOrder []*Species
	moves        map[string]*Move
	moveOrder    []*Move
	chart        *typechart.Chart
}

// NormalizeID folds an identifier for lookup
func NormalizeID(id string) string {
	// a Caser carries state, so each call gets its own
	return cases.Fold().String(strings.TrimSpace(id))
}

// New validates the reference data and builds the index
func New(species []*Species, moves []*Move, chart *typechart.Chart) (*Catalog, error) {
	if err := chart.Validate(); err != nil {
		return nil, apperrors.WrapWithCode(err, apperrors.CodeInvalidArgument, "invalid type chart")
	}

	c := &Catalog{
		species: make(map[string]*Species, len(species)),
		moves:   make(map[string]*Move, len(moves)),
		chart:   chart,
	}

	for _, s := range species {
		if err := c.validateSpecies(s); err != nil {
			return nil, err
		}
		key := NormalizeID(s.ID)
		if _, exists := c.species[key]; exists {
			return nil, apperrors.AlreadyExistsf("duplicate species id '%s'", s.ID)
		}
		c.species[key] = s
		c.speciesOrder = append(c.speciesOrder, s)
	}

	for _, m := range moves {
		if err := c.validateMove(m); err != nil {
			return nil, err
		}
		key := NormalizeID(m.ID)
		if _, exists := c.moves[key]; exists {
			return nil, apperrors.AlreadyExistsf("duplicate move id '%s'", m.ID)
		}
		c.moves[key] = m
		c.moveOrder = append(c.moveOrder, m)
	}

	return c, nil
}

func (c *Catalog) validateSpecies(s *Species) error {
	if s == nil || strings.TrimSpace(s.ID) == "" {
		return apperrors.InvalidArgument("species id is required")
	}
	if len(s.Types) < 1 || len(s.Types) > 2 {
		return apperrors.InvalidArgumentf("species '%s' must have one or two types, has %d", s.ID, len(s.Types))
	}
	for _, t := range s.Types {
		if !c.chart.Has(t) {
			return apperrors.NotFoundf("species '%s' has unknown type '%s'", s.ID, t)
		}
	}
	if len(s.Base) != BaseStatCount {
		return apperrors.InvalidArgumentf("species '%s' must have %d base stats, has %d", s.ID, BaseStatCount, len(s.Base))
	}
	for i, b := range s.Base {
		if b < 1 {
			return apperrors.InvalidArgumentf("species '%s' base stat %d must be positive", s.ID, i)
		}
	}
	return nil
}

func (c *Catalog) validateMove(m *Move) error {
	if m == nil || strings.TrimSpace(m.ID) == "" {
		return apperrors.InvalidArgument("move id is required")
	}
	if !c.chart.Has(m.Type) {
		return apperrors.NotFoundf("move '%s' has unknown type '%s'", m.ID, m.Type)
	}
	switch m.Category {
	case CategoryPhysical, CategorySpecial, CategoryStatus:
	default:
		return apperrors.InvalidArgumentf("move '%s' has unknown category '%s'", m.ID, m.Category)
	}
	if m.PP < 1 {
		return apperrors.InvalidArgumentf("move '%s' must have at least 1 pp", m.ID)
	}
	if !m.AlwaysHits() && m.Accuracy > 100 {
		return apperrors.InvalidArgumentf("move '%s' accuracy %d must be 1-100 or an always-hit value", m.ID, m.Accuracy)
	}
	if m.Stage != nil && !m.Stage.Target.IsMoveTarget() {
		return apperrors.InvalidArgumentf("move '%s' stage effect targets unsupported stat '%s'", m.ID, m.Stage.Target)
	}
	return nil
}

// Species looks up a species by id
func (c *Catalog) Species(id string) (*Species, error) {
	s, ok := c.species[NormalizeID(id)]
	if !ok {
		return nil, apperrors.NotFoundf("species '%s' not found", id)
	}
	return s, nil
}

// Move looks up a move by id
func (c *Catalog) Move(id string) (*Move, error) {
	m, ok := c.moves[NormalizeID(id)]
	if !ok {
		return nil, apperrors.NotFoundf("move '%s' not found", id)
	}
	return m, nil
}

// Chart returns the type chart
func (c *Catalog) Chart() *typechart.Chart {
	return c.chart
}

// ListSpecies returns species in their original order
func (c *Catalog) ListSpecies() []*Species {
	return append([]*Species(nil), c.speciesOrder...)
}

// ListMoves returns moves in their original order
func (c *Catalog) ListMoves() []*Move {
	return append([]*Move(nil), c.moveOrder...)
}

// DefaultMoveIDs returns the ids of the first n moves, the loadout a new
// roster slot starts with
func (c *Catalog) DefaultMoveIDs(n int) []string {
	if n > len(c.moveOrder) {
		n = len(c.moveOrder)
	}
	ids := make([]string, 0, n)
	for _, m := range c.moveOrder[:n] {
		ids = append(ids, m.ID)
	}
	return ids
}
