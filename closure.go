package uevloop

// ClosureFn is a unit of deferred work: an opaque context pointer and a
// params pointer, both caller-owned, producing an opaque return value.
// Neither ctx nor params nor the return value are interpreted by the
// loop; they are passed through verbatim.
type ClosureFn func(ctx any, params any) any

// Destructor releases resources owned by a Closure's ctx/params once the
// closure has been invoked (or cancelled) and will never run again.
type Destructor func(ctx any, params any)

// Closure pairs a function with the data it closes over, following a
// create/invoke/destroy lifecycle: construction never runs fn, Invoke
// runs it exactly once to completion (the loop never preempts a running
// closure), and Destroy releases ctx/params without invoking fn.
type Closure struct {
	fn      ClosureFn
	ctx     any
	params  any
	rv      any
	destroy Destructor
}

// NewClosure builds a Closure value. destroy may be nil when ctx/params
// need no cleanup.
func NewClosure(fn ClosureFn, ctx any, params any, destroy Destructor) Closure {
	return Closure{fn: fn, ctx: ctx, params: params, destroy: destroy}
}

// Invoke runs fn to completion and stores its return value, retrievable
// with Result. Each call runs fn again and overwrites the stored value;
// the loop invokes a recurring listener's closure once per dispatch.
func (c *Closure) Invoke() any {
	c.rv = c.fn(c.ctx, c.params)
	return c.rv
}

// Result returns the value produced by the most recent Invoke.
func (c *Closure) Result() any {
	return c.rv
}

// Destroy runs the destructor, if any, against ctx/params. It does not
// invoke fn. Safe to call on a closure that was never invoked, e.g. one
// cancelled before its due time.
func (c *Closure) Destroy() {
	if c.destroy != nil {
		c.destroy(c.ctx, c.params)
	}
}
