package combat

// Cooldown tracks one action's period and when it was last used.
type Cooldown struct {
	Period int
	Last   int
}

// Ready reports whether strictly more than Period ticks have passed since Last.
func (c *Cooldown) Ready(now int) bool {
	return now-c.Last > c.Period
}

func (c *Cooldown) Trigger(now int) {
	c.Last = now
}

func (c *Cooldown) Reset() {
	c.Last = 0
}
