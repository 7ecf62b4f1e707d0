// Package stats derives battle statistics and translates stat stages into
// multipliers.
package stats

const (
	// DefaultIV is the fixed individual variation every combatant is built with
	DefaultIV = 31

	// MinStage and MaxStage bound every stat stage
	MinStage = -6
	MaxStage = 6

	// MinLevel and MaxLevel bound a roster entry's level
	MinLevel = 1
	MaxLevel = 100
)

// CalcHP derives maximum HP
func CalcHP(base, iv, ev, level int) int {
	hp := ((2*base+iv+ev/4)*level)/100 + level + 10
	if hp < 1 {
		return 1
	}
	return hp
}

// CalcOther derives Attack, Defense, Special Attack, Special Defense or Speed
func CalcOther(base, iv, ev, level int) int {
	return ((2*base+iv+ev/4)*level)/100 + 5
}

// StageModifier is the multiplier for an offense, defense or speed stage
func StageModifier(stage int) float64 {
	if stage >= 0 {
		return float64(2+stage) / 2
	}
	return 2 / float64(2-stage)
}

// AccuracyModifier is the multiplier for an accuracy or evasion stage
func AccuracyModifier(stage int) float64 {
	if stage >= 0 {
		return float64(3+stage) / 3
	}
	return 3 / float64(3-stage)
}

// ClampStage pins a stage into [MinStage, MaxStage]
func ClampStage(stage int) int {
	if stage < MinStage {
		return MinStage
	}
	if stage > MaxStage {
		return MaxStage
	}
	return stage
}
