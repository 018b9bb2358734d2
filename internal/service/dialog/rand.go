package dialog

import "math/rand"

// Rand supplies index picks for the fact selector. Injected so tests can
// seed it and walk the selector deterministically.
type Rand interface {
	Intn(n int) int
}

// lockedRand delegates to the top-level math/rand functions, which are safe
// for concurrent use. One engine serves turns for every session at once, so
// the default source must tolerate concurrent picks; a bare *rand.Rand does
// not.
type lockedRand struct{}

func (lockedRand) Intn(n int) int {
	return rand.Intn(n)
}

func newDefaultRand() Rand {
	return lockedRand{}
}
