package runtime

import (
	"go.uber.org/zap"

	"github.com/HomunMage/homun-std/pattern"
	"github.com/HomunMage/homun-std/pqueue"
)

// Context bundles the per-worker state of the runtime: one pattern cache
// and one queue registry. Generated code executing in one worker owns one
// Context; workers never share one implicitly.
type Context struct {
	patterns *pattern.Cache
	queues   *pqueue.Registry
	logger   *zap.Logger
}

// Option configures a Context.
type Option func(*Context)

// WithLogger sets the logger for the context and its pattern cache.
// The default is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Context) {
		c.logger = l
	}
}

// New creates a fresh execution context.
func New(opts ...Option) *Context {
	c := &Context{
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.patterns = pattern.NewCache(pattern.WithLogger(c.logger.Named("pattern")))
	c.queues = pqueue.NewRegistry()
	return c
}

// Patterns returns the context-local pattern cache.
func (c *Context) Patterns() *pattern.Cache {
	return c.patterns
}

// Queues returns the context-local queue registry.
func (c *Context) Queues() *pqueue.Registry {
	return c.queues
}

// Logger returns the context's logger.
func (c *Context) Logger() *zap.Logger {
	return c.logger
}

// Close releases every queue owned by the context. The pattern cache needs
// no teardown; it is dropped with the context.
func (c *Context) Close() error {
	return c.queues.Close()
}
