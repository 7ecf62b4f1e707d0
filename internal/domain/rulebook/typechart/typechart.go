// Package typechart holds the elemental type effectiveness table.
package typechart

import (
	"fmt"
	"strings"
)

// TypeName is an elemental type
type TypeName string

const (
	Normal   TypeName = "Normal"
	Fire     TypeName = "Fire"
	Water    TypeName = "Water"
	Electric TypeName = "Electric"
	Grass    TypeName = "Grass"
	Ice      TypeName = "Ice"
	Fighting TypeName = "Fighting"
	Poison   TypeName = "Poison"
	Ground   TypeName = "Ground"
	Flying   TypeName = "Flying"
	Psychic  TypeName = "Psychic"
	Bug      TypeName = "Bug"
	Rock     TypeName = "Rock"
	Ghost    TypeName = "Ghost"
	Dragon   TypeName = "Dragon"
	Dark     TypeName = "Dark"
	Steel    TypeName = "Steel"
)

// Chart maps "Attacking:Defending" to a damage multiplier.
// Pairs that are not listed are neutral.
type Chart struct {
	Types       []TypeName         `json:"types"`
	Multipliers map[string]float64 `json:"chart"`
}

// Key builds the lookup key for an attacking/defending pair
func Key(attacking, defending TypeName) string {
	return string(attacking) + ":" + string(defending)
}

// Multiplier returns the multiplier for one attacking/defending pair
func (c *Chart) Multiplier(attacking, defending TypeName) float64 {
	if c == nil {
		return 1
	}
	if m, ok := c.Multipliers[Key(attacking, defending)]; ok {
		return m
	}
	return 1
}

// Combine multiplies the per-type multipliers across every defending type
func (c *Chart) Combine(attacking TypeName, defending []TypeName) float64 {
	m := 1.0
	for _, d := range defending {
		m *= c.Multiplier(attacking, d)
	}
	return m
}

// Has reports whether the chart declares t
func (c *Chart) Has(t TypeName) bool {
	if c == nil {
		return false
	}
	for _, known := range c.Types {
		if known == t {
			return true
		}
	}
	return false
}

// Validate checks that every chart entry names declared types and a
// non-negative multiplier
func (c *Chart) Validate() error {
	if c == nil {
		return fmt.Errorf("type chart is nil")
	}
	if len(c.Types) == 0 {
		return fmt.Errorf("type chart declares no types")
	}

	for key, m := range c.Multipliers {
		parts := strings.Split(key, ":")
		if len(parts) != 2 {
			return fmt.Errorf("invalid chart key %q", key)
		}
		if !c.Has(TypeName(parts[0])) || !c.Has(TypeName(parts[1])) {
			return fmt.Errorf("chart key %q references an undeclared type", key)
		}
		if m < 0 {
			return fmt.Errorf("chart key %q has negative multiplier %v", key, m)
		}
	}
	return nil
}
