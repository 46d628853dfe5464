package services

// orderedGroups keeps groups in first-seen key order
type orderedGroups[K comparable, V any] struct {
	index map[K]int
	items []V
}

func newOrderedGroups[K comparable, V any]() *orderedGroups[K, V] {
	return &orderedGroups[K, V]{index: make(map[K]int)}
}

// getOrAdd returns the group for key, creating it with create on first sight
func (g *orderedGroups[K, V]) getOrAdd(key K, create func() V) V {
	if i, ok := g.index[key]; ok {
		return g.items[i]
	}
	v := create()
	g.index[key] = len(g.items)
	g.items = append(g.items, v)
	return v
}

func (g *orderedGroups[K, V]) values() []V {
	if g.items == nil {
		return []V{}
	}
	return g.items
}
