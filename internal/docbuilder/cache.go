package docbuilder

import (
	"container/list"
	"context"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/jacoelho/xbrl/internal/xmldom"
)

// DefaultCacheSize is the document-cache capacity when none is configured.
const DefaultCacheSize = 5000

// CachingBuilder is a bounded, thread-safe LRU wrapper over a Builder.
//
// Concurrent builds of the same URI coalesce to a single parse. Failures are
// never memoized. Eviction only drops the cache's reference; documents are
// immutable, so handles already returned to callers stay valid.
type CachingBuilder struct {
	inner    Builder
	capacity int

	group singleflight.Group

	mu      sync.Mutex
	order   *list.List
	entries map[string]*list.Element
}

type cacheEntry struct {
	uri string
	doc *xmldom.Document
}

// NewCaching wraps inner with an LRU cache of the given capacity. A
// non-positive capacity selects DefaultCacheSize.
func NewCaching(inner Builder, capacity int) *CachingBuilder {
	if capacity <= 0 {
		capacity = DefaultCacheSize
	}
	return &CachingBuilder{
		inner:    inner,
		capacity: capacity,
		order:    list.New(),
		entries:  make(map[string]*list.Element),
	}
}

// Build returns the cached document for uri or delegates to the inner
// builder, coalescing concurrent requests for the same URI.
func (c *CachingBuilder) Build(ctx context.Context, uri string) (*xmldom.Document, error) {
	if doc, ok := c.lookup(uri); ok {
		return doc, nil
	}

	result, err, _ := c.group.Do(uri, func() (any, error) {
		if doc, ok := c.lookup(uri); ok {
			return doc, nil
		}
		doc, err := c.inner.Build(ctx, uri)
		if err != nil {
			return nil, err
		}
		c.store(uri, doc)
		return doc, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*xmldom.Document), nil
}

// Len returns the number of cached documents.
func (c *CachingBuilder) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *CachingBuilder) lookup(uri string) (*xmldom.Document, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	elem, ok := c.entries[uri]
	if !ok {
		return nil, false
	}
	c.order.MoveToFront(elem)
	return elem.Value.(*cacheEntry).doc, true
}

func (c *CachingBuilder) store(uri string, doc *xmldom.Document) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if elem, ok := c.entries[uri]; ok {
		c.order.MoveToFront(elem)
		elem.Value.(*cacheEntry).doc = doc
		return
	}
	c.entries[uri] = c.order.PushFront(&cacheEntry{uri: uri, doc: doc})
	for len(c.entries) > c.capacity {
		oldest := c.order.Back()
		if oldest == nil {
			break
		}
		c.order.Remove(oldest)
		delete(c.entries, oldest.Value.(*cacheEntry).uri)
	}
}
