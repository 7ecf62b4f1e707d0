package stats

// Stat names a stage-able battle statistic
type Stat string

const (
	Attack         Stat = "atk"
	Defense        Stat = "def"
	SpecialAttack  Stat = "spa"
	SpecialDefense Stat = "spd"
	Speed          Stat = "spe"
	Accuracy       Stat = "acc"
	Evasion        Stat = "eva"
)

// IsMoveTarget reports whether a move's stage effect may name this stat.
// Accuracy and evasion stages exist but no move shape shifts them.
func (s Stat) IsMoveTarget() bool {
	switch s {
	case Attack, Defense, SpecialAttack, SpecialDefense, Speed:
		return true
	}
	return false
}

// BaseStats are a species' six base values
type BaseStats struct {
	HP             int
	Attack         int
	Defense        int
	SpecialAttack  int
	SpecialDefense int
	Speed          int
}

// Derived are the battle stats computed once when a combatant is created
type Derived struct {
	MaxHP          int `json:"maxhp"`
	Attack         int `json:"atk"`
	Defense        int `json:"def"`
	SpecialAttack  int `json:"spa"`
	SpecialDefense int `json:"spd"`
	Speed          int `json:"spe"`
}

// Derive computes battle stats. evs holds training points in base-stat order;
// a nil slice means zero everywhere.
func (b BaseStats) Derive(iv int, evs []int, level int) Derived {
	ev := func(i int) int {
		if i < len(evs) {
			return evs[i]
		}
		return 0
	}

	return Derived{
		MaxHP:          CalcHP(b.HP, iv, ev(0), level),
		Attack:         CalcOther(b.Attack, iv, ev(1), level),
		Defense:        CalcOther(b.Defense, iv, ev(2), level),
		SpecialAttack:  CalcOther(b.SpecialAttack, iv, ev(3), level),
		SpecialDefense: CalcOther(b.SpecialDefense, iv, ev(4), level),
		Speed:          CalcOther(b.Speed, iv, ev(5), level),
	}
}

// Stages holds the seven stat stages of a combatant
type Stages struct {
	Attack         int `json:"atk"`
	Defense        int `json:"def"`
	SpecialAttack  int `json:"spa"`
	SpecialDefense int `json:"spd"`
	Speed          int `json:"spe"`
	Accuracy       int `json:"acc"`
	Evasion        int `json:"eva"`
}

func (s *Stages) field(stat Stat) *int {
	switch stat {
	case Attack:
		return &s.Attack
	case Defense:
		return &s.Defense
	case SpecialAttack:
		return &s.SpecialAttack
	case SpecialDefense:
		return &s.SpecialDefense
	case Speed:
		return &s.Speed
	case Accuracy:
		return &s.Accuracy
	case Evasion:
		return &s.Evasion
	}
	return nil
}

// Get returns the current stage for stat, 0 for unknown stats
func (s *Stages) Get(stat Stat) int {
	if f := s.field(stat); f != nil {
		return *f
	}
	return 0
}

// Shift adds delta to stat, clamps, and returns the change actually applied
func (s *Stages) Shift(stat Stat, delta int) int {
	f := s.field(stat)
	if f == nil {
		return 0
	}
	before := *f
	*f = ClampStage(before + delta)
	return *f - before
}
