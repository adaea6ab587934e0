package assistant

import "math/rand/v2"

// Chooser picks a uniformly random index in [0,n).
type Chooser interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// DefaultChooser draws from the process-wide generator.
func DefaultChooser() Chooser { return globalRand{} }

func pick(c Chooser, pool []string) string {
	if len(pool) == 0 {
		return ""
	}
	return pool[c.IntN(len(pool))]
}
