package text

import (
	"container/list"
	"sync"

	"github.com/gogpu/textlayout/layout"
)

// shapingKey identifies the glyphs of a direction run.
type shapingKey struct {
	text      string
	font      layout.FontID
	direction layout.Direction
}

type shapedRun struct {
	key    shapingKey
	glyphs []ShapedGlyph
}

// shapingCache keeps the glyphs of recently shaped direction runs, so that
// editing a paragraph doesn't reshape the others. Once limit runs are kept,
// storing a run drops the least recently used one. A limit of 0 keeps every
// run.
//
// shapingCache is safe for concurrent use.
type shapingCache struct {
	mu    sync.Mutex
	limit int
	runs  *list.List // most recent first
	byKey map[shapingKey]*list.Element

	hits, misses int
}

func newShapingCache(limit int) *shapingCache {
	return &shapingCache{
		limit: max(limit, 0),
		runs:  list.New(),
		byKey: make(map[shapingKey]*list.Element),
	}
}

// lookup returns the glyphs of the run and marks it as recently used.
// c.mu must be held.
func (c *shapingCache) lookup(key shapingKey) ([]ShapedGlyph, bool) {
	el, ok := c.byKey[key]
	if !ok {
		c.misses++
		return nil, false
	}
	c.hits++
	c.runs.MoveToFront(el)
	return el.Value.(*shapedRun).glyphs, true
}

// store keeps the glyphs of a new run and drops the least recently used
// runs over the limit. c.mu must be held.
func (c *shapingCache) store(key shapingKey, glyphs []ShapedGlyph) {
	c.byKey[key] = c.runs.PushFront(&shapedRun{key: key, glyphs: glyphs})
	for c.limit > 0 && c.runs.Len() > c.limit {
		oldest := c.runs.Back()
		delete(c.byKey, oldest.Value.(*shapedRun).key)
		c.runs.Remove(oldest)
	}
}

// shaped returns the glyphs of the run, shaping them on a miss. Shaping
// happens under the lock, so a run is shaped once.
func (c *shapingCache) shaped(key shapingKey, shape func() []ShapedGlyph) []ShapedGlyph {
	c.mu.Lock()
	defer c.mu.Unlock()
	if glyphs, ok := c.lookup(key); ok {
		return glyphs
	}
	glyphs := shape()
	c.store(key, glyphs)
	return glyphs
}

// reset drops every run and returns the hits and misses counted since the
// previous reset.
func (c *shapingCache) reset() (hits, misses int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	hits, misses = c.hits, c.misses
	c.runs.Init()
	clear(c.byKey)
	c.hits, c.misses = 0, 0
	return hits, misses
}

func (c *shapingCache) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.runs.Len()
}
