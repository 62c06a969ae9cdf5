package ns

import "github.com/mj1618/appname/internal/objc"

// ProcessInfo is an NSProcessInfo handle.
type ProcessInfo struct {
	Object
}

// CurrentProcessInfo returns the shared NSProcessInfo.
func CurrentProcessInfo(b *objc.Binding) ProcessInfo {
	cls := b.Class("NSProcessInfo")
	id, _ := b.Send(cls.ID(), b.Selector("processInfo"))
	return ProcessInfo{wrap(b, id)}
}

// ProcessName returns the name the OS reports for this process. It is
// never nil.
func (p ProcessInfo) ProcessName() String {
	id, _ := p.b.Send(p.id, p.b.Selector("processName"))
	return String{wrap(p.b, id)}
}

// ProcessIdentifier returns the process ID.
func (p ProcessInfo) ProcessIdentifier() int {
	r, _ := p.b.Send(p.id, p.b.Selector("processIdentifier"))
	return int(int32(r))
}
