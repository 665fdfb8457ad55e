package titlecache

import (
	"log/slog"
	"strings"
	"sync"

	"tubelang/internal/language"
	"tubelang/internal/logging"
)

// DefaultLimit is the entry count a table may exceed before the next new
// title resets it.
const DefaultLimit = 2000

// Classifier produces a verdict for a cleaned title.
type Classifier interface {
	Classify(title string) language.Code
}

// Stats is a snapshot of cache counters.
type Stats struct {
	Entries int    `json:"entries"`
	Limit   int    `json:"limit"`
	Hits    uint64 `json:"hits"`
	Misses  uint64 `json:"misses"`
	Resets  uint64 `json:"resets"`
}

// Cache provides thread-safe memoization of title verdicts.
type Cache struct {
	classifier Classifier
	limit      int
	logger     *slog.Logger

	mu      sync.Mutex
	entries map[string]language.Code
	hits    uint64
	misses  uint64
	resets  uint64
}

// New creates a cache in front of classifier. A non-positive limit selects
// DefaultLimit.
func New(classifier Classifier, limit int, logger *slog.Logger) *Cache {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Cache{
		classifier: classifier,
		limit:      limit,
		logger:     logging.NewComponentLogger(logger, "titlecache"),
		entries:    make(map[string]language.Code),
	}
}

// Get returns the verdict for title, classifying it on first access. Blank
// titles are Unknown and never stored.
func (c *Cache) Get(title string) language.Code {
	if strings.TrimSpace(title) == "" {
		return language.Unknown
	}

	c.mu.Lock()
	if verdict, ok := c.entries[title]; ok {
		c.hits++
		c.mu.Unlock()
		return verdict
	}
	c.misses++
	c.mu.Unlock()

	// Classification is pure, so a concurrent miss on the same title only
	// repeats work.
	verdict := c.classifier.Classify(title)

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.entries[title]; !ok && len(c.entries) > c.limit {
		c.entries = make(map[string]language.Code)
		c.resets++
		c.logger.Debug("title cache reset",
			logging.String(logging.FieldEventType, "titlecache_reset"),
			logging.Int("limit", c.limit))
	}
	c.entries[title] = verdict
	return verdict
}

// Clear drops every entry. Counters are kept.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]language.Code)
}

// Len reports the number of stored verdicts.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Stats returns a snapshot of the cache counters.
func (c *Cache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Stats{
		Entries: len(c.entries),
		Limit:   c.limit,
		Hits:    c.hits,
		Misses:  c.misses,
		Resets:  c.resets,
	}
}
