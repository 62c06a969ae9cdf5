package ns

import "github.com/mj1618/appname/internal/objc"

// AutoreleasePool scopes autoreleased objects returned by the runtime.
type AutoreleasePool struct {
	Object
}

// NewAutoreleasePool pushes a pool. Pools must be drained on the thread
// that created them, in reverse order.
func NewAutoreleasePool(b *objc.Binding) AutoreleasePool {
	cls := b.Class("NSAutoreleasePool")
	id, _ := b.Send(cls.ID(), b.Selector("new"))
	return AutoreleasePool{wrap(b, id)}
}

// Drain releases every object autoreleased since the pool was created.
func (p AutoreleasePool) Drain() {
	if p.id == 0 {
		return
	}
	p.b.Send(p.id, p.b.Selector("drain"))
}

// WithAutoreleasePool runs fn inside a fresh pool and drains it afterwards,
// also when fn panics.
func WithAutoreleasePool(b *objc.Binding, fn func()) {
	pool := NewAutoreleasePool(b)
	defer pool.Drain()
	fn()
}
