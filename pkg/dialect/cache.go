package dialect

import "sync"

// reflectionCache memoizes reflection results per operation and table, the
// way the host toolkit caches its dialect hook calls.
type reflectionCache struct {
	mu sync.Mutex
	m  map[cacheKey]any
}

type cacheKey struct {
	op    string
	table string
}

func newReflectionCache() *reflectionCache {
	return &reflectionCache{m: make(map[cacheKey]any)}
}

func (c *reflectionCache) put(op, table string, v any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m[cacheKey{op: op, table: table}] = v
}

func (c *reflectionCache) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m = make(map[cacheKey]any)
}

// cacheGet returns the memoized value for op/table if present and of the
// expected type.
func cacheGet[T any](c *reflectionCache, op, table string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var zero T
	v, ok := c.m[cacheKey{op: op, table: table}]
	if !ok {
		return zero, false
	}
	typed, ok := v.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}
