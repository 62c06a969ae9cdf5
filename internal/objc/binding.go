package objc

import (
	"sync"

	"gitlab.com/tozd/go/errors"
)

// Binding resolves classes and selectors through a Runtime and memoizes
// them for the life of the process. It is safe for concurrent use, but
// the runtime itself generally is not; see internal/mainthread.
type Binding struct {
	rt Runtime

	mu      sync.Mutex
	classes map[string]Class
	sels    map[string]SEL
}

// NewBinding wraps rt.
func NewBinding(rt Runtime) *Binding {
	return &Binding{
		rt:      rt,
		classes: make(map[string]Class),
		sels:    make(map[string]SEL),
	}
}

// LookupClass resolves a class by name.
func (b *Binding) LookupClass(name string) (Class, error) {
	if err := checkName(name); err != nil {
		return 0, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if c, ok := b.classes[name]; ok {
		return c, nil
	}
	c := b.rt.GetClass(name)
	if c == 0 {
		return 0, errors.WithDetails(ErrClassNotFound, "class", name)
	}
	b.classes[name] = c
	return c, nil
}

// Class resolves a class by name and panics if it is missing. A missing
// system class means the environment is broken; there is nothing to retry.
func (b *Binding) Class(name string) Class {
	c, err := b.LookupClass(name)
	if err != nil {
		panic(err)
	}
	return c
}

// Selector returns the selector for name. It panics only on an invalid name.
func (b *Binding) Selector(name string) SEL {
	if err := checkName(name); err != nil {
		panic(err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if s, ok := b.sels[name]; ok {
		return s
	}
	s := b.rt.RegisterName(name)
	b.sels[name] = s
	return s
}

// Send forwards a message to receiver. The second result is false when
// there is no object, either because receiver is nil or because the method
// returned nil; the two cases are not distinguishable.
func (b *Binding) Send(receiver ID, sel SEL, args ...any) (ID, bool) {
	if receiver == 0 {
		return 0, false
	}
	r := b.rt.Send(receiver, sel, args...)
	return r, r != 0
}

// SendBool forwards a message whose method returns BOOL. A nil receiver
// yields false.
func (b *Binding) SendBool(receiver ID, sel SEL, args ...any) bool {
	if receiver == 0 {
		return false
	}
	return b.rt.SendBool(receiver, sel, args...)
}

// SendString forwards a message whose method returns a C string and copies
// the result into Go memory. A nil receiver yields "".
func (b *Binding) SendString(receiver ID, sel SEL, args ...any) string {
	if receiver == 0 {
		return ""
	}
	return b.rt.SendString(receiver, sel, args...)
}
