package ns

import "github.com/mj1618/appname/internal/objc"

// Object is a runtime object handle with access to retain and release.
type Object struct {
	b  *objc.Binding
	id objc.ID
}

func wrap(b *objc.Binding, id objc.ID) Object {
	return Object{b: b, id: id}
}

// ID returns the underlying handle.
func (o Object) ID() objc.ID { return o.id }

// IsNil reports whether o refers to no object.
func (o Object) IsNil() bool { return o.id == 0 }

// IsKindOfClass reports whether o is an instance of cls or a subclass.
// A nil o is not an instance of anything.
func (o Object) IsKindOfClass(cls objc.Class) bool {
	if o.id == 0 {
		return false
	}
	return o.b.SendBool(o.id, o.b.Selector("isKindOfClass:"), cls)
}

// Retain takes an additional reference to o and returns it.
func (o Object) Retain() Object {
	if o.id == 0 {
		return o
	}
	o.b.Send(o.id, o.b.Selector("retain"))
	return o
}

// Release gives up one reference to o. o must not be used afterwards unless
// another reference is held.
func (o Object) Release() {
	if o.id == 0 {
		return
	}
	o.b.Send(o.id, o.b.Selector("release"))
}
