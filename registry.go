package fixture

import "sync"

// factoryRegistry caches one nested factory per recipe identity.
type factoryRegistry struct {
	data sync.Map
}

// loadOrCreate returns the factory registered for key, registering the result
// of create on first use.
func (c *factoryRegistry) loadOrCreate(key any, create func() any) any {
	if v, ok := c.data.Load(key); ok {
		return v
	}
	v, _ := c.data.LoadOrStore(key, create())
	return v
}

func (c *factoryRegistry) size() int {
	count := 0
	c.data.Range(func(key, value any) bool {
		count++
		return true
	})
	return count
}
