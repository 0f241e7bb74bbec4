package fixture

// counterRegistry hands out named monotonic sequences. The empty key is the
// default sequence.
type counterRegistry struct {
	sequences map[string]int
}

func newCounterRegistry() *counterRegistry {
	return &counterRegistry{sequences: make(map[string]int)}
}

// next returns 1 on the first call for key and increments by one afterwards.
func (c *counterRegistry) next(key string) int {
	c.sequences[key]++
	return c.sequences[key]
}

// peek returns the last value handed out for key, 0 if none.
func (c *counterRegistry) peek(key string) int {
	return c.sequences[key]
}
