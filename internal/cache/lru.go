// Package cache provides a small generic LRU used to memoize derived ledger
// aggregates. Entries are keyed by aggregate name plus the ledger version
// counter, so stale results age out of the LRU instead of being invalidated.
package cache

import (
	"container/list"
	"sync"
)

type LRU[T any] struct {
	mu      sync.Mutex
	maxSize int
	items   map[string]*list.Element
	lru     *list.List
}

type entry[T any] struct {
	key  string
	data T
}

func NewLRU[T any](maxSize int) *LRU[T] {
	return &LRU[T]{
		maxSize: maxSize,
		items:   make(map[string]*list.Element),
		lru:     list.New(),
	}
}

// Get retrieves a value and marks it most recently used.
func (c *LRU[T]) Get(key string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	elem, exists := c.items[key]
	if !exists {
		return zero, false
	}
	c.lru.MoveToFront(elem)
	return elem.Value.(*entry[T]).data, true
}

// Set stores a value, evicting the least recently used entry when the cache
// is over capacity.
func (c *LRU[T]) Set(key string, data T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, exists := c.items[key]; exists {
		elem.Value = &entry[T]{key: key, data: data}
		c.lru.MoveToFront(elem)
		return
	}

	elem := c.lru.PushFront(&entry[T]{key: key, data: data})
	c.items[key] = elem

	if c.lru.Len() > c.maxSize {
		oldest := c.lru.Back()
		if oldest != nil {
			c.removeElement(oldest)
		}
	}
}

// Delete removes a key from the cache.
func (c *LRU[T]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, exists := c.items[key]; exists {
		c.removeElement(elem)
	}
}

func (c *LRU[T]) removeElement(elem *list.Element) {
	e := elem.Value.(*entry[T])
	delete(c.items, e.key)
	c.lru.Remove(elem)
}

// Size returns the current number of items in the cache.
func (c *LRU[T]) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}
