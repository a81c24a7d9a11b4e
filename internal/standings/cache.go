package standings

import lru "github.com/hashicorp/golang-lru/v2"

// Cache holds computed reports keyed by the fingerprint of their input, evicting the
// least recently used report when full. A nil *Cache is valid and never hits.
type Cache struct {
	reports *lru.Cache[string, *Report]
}

// NewCache returns a cache holding at most size reports, or nil when size is not
// positive.
func NewCache(size int) *Cache {
	if size <= 0 {
		return nil
	}
	reports, err := lru.New[string, *Report](size)
	if err != nil {
		return nil
	}
	return &Cache{reports: reports}
}

// Get returns the report computed for fingerprint, if any.
func (c *Cache) Get(fingerprint string) (*Report, bool) {
	if c == nil {
		return nil, false
	}
	return c.reports.Get(fingerprint)
}

// Put stores a report.
func (c *Cache) Put(fingerprint string, r *Report) {
	if c == nil {
		return
	}
	c.reports.Add(fingerprint, r)
}

// Len returns the number of cached reports.
func (c *Cache) Len() int {
	if c == nil {
		return 0
	}
	return c.reports.Len()
}
