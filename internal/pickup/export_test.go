package pickup

func (c *Controller) Recomputations() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.recomputes
}
