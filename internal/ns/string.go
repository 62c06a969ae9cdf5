package ns

import (
	"unsafe"

	"github.com/mj1618/appname/internal/objc"
)

// UTF8StringEncoding is NSUTF8StringEncoding.
const UTF8StringEncoding uint = 4

// String is an NSString handle.
type String struct {
	Object
}

// NewString creates an NSString from UTF-8 bytes. b need not be
// NUL-terminated. The caller owns the result and must Release it. ok is
// false if the runtime refused the bytes.
func NewString(b *objc.Binding, s []byte) (String, bool) {
	cls := b.Class("NSString")
	alloc, ok := b.Send(cls.ID(), b.Selector("alloc"))
	if !ok {
		return String{}, false
	}
	var p unsafe.Pointer
	if len(s) > 0 {
		p = unsafe.Pointer(&s[0])
	}
	id, ok := b.Send(alloc, b.Selector("initWithBytes:length:encoding:"), p, uint(len(s)), UTF8StringEncoding)
	if !ok {
		return String{}, false
	}
	return String{wrap(b, id)}, true
}

// NewStringFromGo is NewString for a Go string.
func NewStringFromGo(b *objc.Binding, s string) (String, bool) {
	return NewString(b, []byte(s))
}

// String copies the receiver's UTF-8 contents into a Go string. The
// runtime's byte buffer stays owned by the NSString and is not freed here.
// Contents past an embedded NUL are not recoverable.
func (s String) String() string {
	if s.id == 0 {
		return ""
	}
	return s.b.SendString(s.id, s.b.Selector("UTF8String"))
}
