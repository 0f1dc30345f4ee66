package enginedetect

import (
	"container/list"
	"sync"

	"github.com/twmb/murmur3"

	"github.com/dmitrymomot/uaengine/pkg/renderingengine"
)

type cacheEntry struct {
	key    uint64
	ua     string
	engine renderingengine.RenderingEngine
}

// engineCache is a thread-safe LRU of detection results keyed by the murmur3
// digest of the raw user agent. The user agent is kept in the entry so that a
// digest collision is reported as a miss instead of a wrong engine.
type engineCache struct {
	capacity int
	items    map[uint64]*list.Element
	eviction *list.List
	mu       sync.Mutex
}

func newEngineCache(capacity int) *engineCache {
	return &engineCache{
		capacity: capacity,
		items:    make(map[uint64]*list.Element, capacity),
		eviction: list.New(),
	}
}

func digest(ua string) uint64 {
	return murmur3.StringSum64(ua)
}

// get returns the cached engine for ua and marks it as recently used.
func (c *engineCache) get(ua string) (renderingengine.RenderingEngine, bool) {
	key := digest(ua)

	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[key]
	if !ok {
		return renderingengine.RenderingEngine{}, false
	}
	entry := elem.Value.(*cacheEntry)
	if entry.ua != ua {
		return renderingengine.RenderingEngine{}, false
	}
	c.eviction.MoveToFront(elem)
	return entry.engine, true
}

// put stores the engine for ua, evicting the least recently used entry when
// the cache is full. A colliding entry for another user agent is replaced.
func (c *engineCache) put(ua string, engine renderingengine.RenderingEngine) {
	key := digest(ua)

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.eviction.MoveToFront(elem)
		entry := elem.Value.(*cacheEntry)
		entry.ua = ua
		entry.engine = engine
		return
	}

	c.items[key] = c.eviction.PushFront(&cacheEntry{key: key, ua: ua, engine: engine})

	if c.eviction.Len() > c.capacity {
		c.evictOldest()
	}
}

func (c *engineCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.eviction.Len()
}

// Must be called with lock held.
func (c *engineCache) evictOldest() {
	elem := c.eviction.Back()
	if elem == nil {
		return
	}
	c.eviction.Remove(elem)
	delete(c.items, elem.Value.(*cacheEntry).key)
}
