package dice

import (
	"fmt"
	"strings"
)

// RollResult is the outcome of rolling count dice of the same size
type RollResult struct {
	Total    int
	Rolls    []int
	Bonus    int
	Count    int
	Sides    int
	RawTotal int
}

// Is reports whether a single-die roll landed on face
func (r *RollResult) Is(face int) bool {
	return r != nil && len(r.Rolls) == 1 && r.Rolls[0] == face
}

func (r *RollResult) String() string {
	compact := strings.ReplaceAll(fmt.Sprintf("%v", r.Rolls), " ", "")
	return fmt.Sprintf("%dd%d: **%d** %s", r.Count, r.Sides, r.Total, compact)
}
