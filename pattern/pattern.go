package pattern

import (
	"regexp"
	"sync"

	"go.uber.org/zap"

	"github.com/HomunMage/homun-std/errors"
)

// Match is the result of an anchored match attempt. On failure Text is
// empty and End equals the offset the match was attempted at, never
// advanced.
type Match struct {
	Text    string
	End     int
	Matched bool
}

// Compiled is an immutable compiled pattern. Values are cheap to share
// across call sites once built.
type Compiled struct {
	re     *regexp.Regexp
	source string
}

// Source returns the exact pattern string this was compiled from.
func (c *Compiled) Source() string {
	return c.source
}

// MatchAt attempts a match beginning exactly at byte offset pos. The match
// may end anywhere the pattern permits; it is anchored at its start only.
// An offset outside the text is a soft failure, not an error.
func (c *Compiled) MatchAt(text string, pos int) Match {
	if pos < 0 || pos > len(text) {
		return Match{End: pos}
	}
	loc := c.re.FindStringIndex(text[pos:])
	if loc == nil || loc[0] != 0 {
		return Match{End: pos}
	}
	return Match{
		Matched: true,
		Text:    text[pos : pos+loc[1]],
		End:     pos + loc[1],
	}
}

// Search reports whether the pattern matches anywhere in text.
func (c *Compiled) Search(text string) bool {
	return c.re.MatchString(text)
}

// Cache compiles patterns on first use and reuses the compiled form for
// every later call with the same pattern string. The cache only grows;
// entries live for the lifetime of the cache. A mutex serializes access so
// one cache may be shared across goroutines, though one cache per worker
// is the recommended arrangement.
type Cache struct {
	mu       sync.Mutex
	compiled map[string]*Compiled
	logger   *zap.Logger
}

// Option configures a Cache.
type Option func(*Cache)

// WithLogger sets the logger used for compile events. The default is a
// no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Cache) {
		c.logger = l
	}
}

// NewCache creates an empty pattern cache.
func NewCache(opts ...Option) *Cache {
	c := &Cache{
		compiled: make(map[string]*Compiled),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetOrCompile returns the compiled form of pattern, compiling and caching
// it on first use. A pattern that fails to compile yields a typed
// InvalidPattern error carrying the pattern and the compiler diagnostic;
// nothing is cached for it.
func (c *Cache) GetOrCompile(pattern string) (*Compiled, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if cp, ok := c.compiled[pattern]; ok {
		return cp, nil
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		c.logger.Debug("pattern compile failed",
			zap.String("pattern", pattern),
			zap.Error(err))
		return nil, errors.InvalidPattern(pattern, err)
	}

	cp := &Compiled{re: re, source: pattern}
	c.compiled[pattern] = cp
	c.logger.Debug("compiled pattern", zap.String("pattern", pattern))
	return cp, nil
}

// Len returns the number of cached patterns.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.compiled)
}

// MatchAt compiles pattern through the cache and attempts a match anchored
// at byte offset pos in text.
func (c *Cache) MatchAt(pattern, text string, pos int) (Match, error) {
	cp, err := c.GetOrCompile(pattern)
	if err != nil {
		return Match{End: pos}, err
	}
	return cp.MatchAt(text, pos), nil
}

// Search compiles pattern through the cache and reports whether it matches
// anywhere in text.
func (c *Cache) Search(pattern, text string) (bool, error) {
	cp, err := c.GetOrCompile(pattern)
	if err != nil {
		return false, err
	}
	return cp.Search(text), nil
}
