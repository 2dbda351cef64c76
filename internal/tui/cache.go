package tui

import "github.com/smileynet/contacts/internal/addressbook"

// pageCache remembers the pages pulled from a source so the pager can move
// backwards. Pages are only pulled when first requested.
type pageCache struct {
	src       PageSource
	pages     []addressbook.Page
	exhausted bool
}

func newPageCache(src PageSource) *pageCache {
	return &pageCache{src: src}
}

// get returns page i (0-based), pulling from the source as needed.
func (c *pageCache) get(i int) (addressbook.Page, bool) {
	for len(c.pages) <= i && !c.exhausted {
		p, ok := c.src.Next()
		if !ok {
			c.exhausted = true
			break
		}
		c.pages = append(c.pages, p)
	}
	if i < 0 || i >= len(c.pages) {
		return addressbook.Page{}, false
	}
	return c.pages[i], true
}

// knownLast reports whether page i is known to be the final page without
// pulling ahead.
func (c *pageCache) knownLast(i int) bool {
	return c.exhausted && i == len(c.pages)-1
}

// replay returns a source that yields the cached pages from the start and
// then continues with the rest of the underlying source.
func (c *pageCache) replay() PageSource {
	return &replaySource{cache: c}
}

type replaySource struct {
	cache *pageCache
	next  int
}

func (r *replaySource) Next() (addressbook.Page, bool) {
	p, ok := r.cache.get(r.next)
	if ok {
		r.next++
	}
	return p, ok
}
