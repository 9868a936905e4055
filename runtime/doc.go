// Package runtime ties the stateful pieces of homun-std to an explicit
// execution context.
//
// The pattern cache and the queue registry are the only stateful parts of
// the runtime. Rather than living as ambient globals, both hang off a
// Context that generated code receives when its worker starts:
//
//	ctx := runtime.New()
//	defer ctx.Close()
//
//	m, err := ctx.Patterns().MatchAt(`[a-z]+`, line, pos)
//	h, err := ctx.Queues().New()
//
// One Context per worker makes the sharing policy explicit: two workers
// with their own contexts share nothing and need no locks between them.
// The components themselves are also internally synchronized, so handing
// one Context to cooperating goroutines is safe, merely slower.
//
// A zap logger can be attached for visibility into pattern compilation:
//
//	ctx := runtime.New(runtime.WithLogger(logger))
package runtime
