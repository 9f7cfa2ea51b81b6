package cache

import (
	"container/list"
	"context"
	"sync"
	"time"
)

const janitorInterval = 2 * time.Minute

type entry[V any] struct {
	key        string
	value      V
	expiration time.Time
}

// LRUCache LRU кэш с TTL. onEvict вызывается для записей, вытесненных по размеру или по TTL,
// но не для удаленных через Delete.
type LRUCache[V any] struct {
	capacity int
	mu       sync.Mutex
	ll       *list.List
	cache    map[string]*list.Element
	ttl      time.Duration
	onEvict  func(key string, value V)
}

func NewLRUCache[V any](capacity int, ttl time.Duration) *LRUCache[V] {
	return &LRUCache[V]{
		capacity: capacity,
		ll:       list.New(),
		cache:    make(map[string]*list.Element),
		ttl:      ttl,
	}
}

func (c *LRUCache[V]) OnEvict(fn func(key string, value V)) *LRUCache[V] {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onEvict = fn
	return c
}

func (c *LRUCache[V]) Get(key string) (V, bool) {
	c.mu.Lock()

	if ele, ok := c.cache[key]; ok {
		ent := ele.Value.(*entry[V])
		if time.Now().After(ent.expiration) {
			c.removeElement(ele)
			c.mu.Unlock()
			c.evicted(ent)
			var zero V
			return zero, false
		}
		c.ll.MoveToFront(ele)
		c.mu.Unlock()
		return ent.value, true
	}
	c.mu.Unlock()

	var zero V
	return zero, false
}

func (c *LRUCache[V]) Set(key string, value V) {
	c.mu.Lock()

	if ele, ok := c.cache[key]; ok {
		c.ll.MoveToFront(ele)
		ent := ele.Value.(*entry[V])
		ent.value = value
		ent.expiration = time.Now().Add(c.ttl)
		c.mu.Unlock()
		return
	}

	ent := &entry[V]{key: key, value: value, expiration: time.Now().Add(c.ttl)}
	ele := c.ll.PushFront(ent)
	c.cache[key] = ele

	var oldest *entry[V]
	if c.ll.Len() > c.capacity {
		oldest = c.removeOldest()
	}
	c.mu.Unlock()

	if oldest != nil {
		c.evicted(oldest)
	}
}

// Touch продлевает TTL записи без изменения значения.
func (c *LRUCache[V]) Touch(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	ele, ok := c.cache[key]
	if !ok {
		return false
	}
	c.ll.MoveToFront(ele)
	ele.Value.(*entry[V]).expiration = time.Now().Add(c.ttl)
	return true
}

func (c *LRUCache[V]) Delete(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	ele, ok := c.cache[key]
	if !ok {
		return false
	}
	c.removeElement(ele)
	return true
}

func (c *LRUCache[V]) removeOldest() *entry[V] {
	ele := c.ll.Back()
	if ele == nil {
		return nil
	}
	c.removeElement(ele)
	return ele.Value.(*entry[V])
}

func (c *LRUCache[V]) removeElement(e *list.Element) {
	c.ll.Remove(e)
	ent := e.Value.(*entry[V])
	delete(c.cache, ent.key)
}

func (c *LRUCache[V]) evicted(ent *entry[V]) {
	c.mu.Lock()
	fn := c.onEvict
	c.mu.Unlock()
	if fn != nil {
		fn(ent.key, ent.value)
	}
}

func (c *LRUCache[V]) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}

// Start запускает janitor до отмены контекста.
func (c *LRUCache[V]) Start(ctx context.Context) error {
	c.StartJanitor(ctx)
	return nil
}

func (c *LRUCache[V]) StartJanitor(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(janitorInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				c.cleanup()
			case <-ctx.Done():
				return
			}
		}
	}()
}

func (c *LRUCache[V]) cleanup() {
	c.mu.Lock()
	var expired []*entry[V]
	for e := c.ll.Back(); e != nil; {
		prev := e.Prev()
		ent := e.Value.(*entry[V])
		if time.Now().After(ent.expiration) {
			c.removeElement(e)
			expired = append(expired, ent)
		}
		e = prev
	}
	c.mu.Unlock()

	for _, ent := range expired {
		c.evicted(ent)
	}
}
