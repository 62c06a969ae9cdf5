package objc

import (
	"strings"

	"gitlab.com/tozd/go/errors"
)

// ID is an opaque reference to an object owned by the runtime.
// The zero value is nil.
type ID uintptr

// Class identifies a class in the runtime's class table.
type Class uintptr

// SEL identifies an interned method name.
type SEL uintptr

// ID returns the class as a message receiver.
func (c Class) ID() ID { return ID(c) }

// Runtime is the foreign boundary to an Objective-C runtime.
type Runtime interface {
	// GetClass returns 0 if no class with the given name is registered.
	GetClass(name string) Class

	// RegisterName returns the selector for name, interning it if needed.
	RegisterName(name string) SEL

	// Send performs objc_msgSend and returns the pointer-sized result.
	Send(receiver ID, sel SEL, args ...any) ID

	// SendBool performs objc_msgSend for methods returning BOOL.
	SendBool(receiver ID, sel SEL, args ...any) bool

	// SendString performs objc_msgSend for methods returning a C string
	// and copies the result. The buffer stays owned by the receiver. A
	// NULL result yields "".
	SendString(receiver ID, sel SEL, args ...any) string
}

var (
	// ErrClassNotFound is raised when a required class is not registered.
	ErrClassNotFound = errors.Base("objc: class not found")

	// ErrInvalidName is raised for empty names or names with a NUL byte.
	ErrInvalidName = errors.Base("objc: invalid name")
)

func checkName(name string) error {
	if name == "" || strings.IndexByte(name, 0) >= 0 {
		return errors.WithDetails(ErrInvalidName, "name", name)
	}
	return nil
}
