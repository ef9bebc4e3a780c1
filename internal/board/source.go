package board

import "math/rand/v2"

// NewRand returns the seeded generator used for live games.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1|1))
}

// Cycle is a Source that replays a fixed sequence of values, wrapping at the
// end. Each value is reduced modulo n. Useful for reproducible boards.
type Cycle struct {
	Values []int
	pos    int
}

// IntN returns the next scripted value modulo n.
func (c *Cycle) IntN(n int) int {
	if len(c.Values) == 0 || n <= 0 {
		return 0
	}
	v := c.Values[c.pos%len(c.Values)]
	c.pos++
	if v < 0 {
		v = -v
	}
	return v % n
}
