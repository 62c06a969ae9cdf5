package platform

import (
	"runtime"

	"gitlab.com/tozd/go/errors"

	"github.com/mj1618/appname/internal/objc"
)

// ErrUnsupported is returned on platforms without an Objective-C runtime.
var ErrUnsupported = errors.Base("appname is not supported on " + runtime.GOOS + "/" + runtime.GOARCH + "; supported: darwin/amd64, darwin/arm64")

// NewRuntimeFunc is set by platform-specific packages via init().
// See internal/platform/darwin/init.go for the macOS registration.
var NewRuntimeFunc func() (objc.Runtime, error)

// NewRuntime returns the Objective-C runtime for the current OS.
func NewRuntime() (objc.Runtime, error) {
	if NewRuntimeFunc == nil {
		return nil, errors.WithStack(ErrUnsupported)
	}
	return NewRuntimeFunc()
}

// NewBinding returns a Binding over the current OS runtime.
func NewBinding() (*objc.Binding, error) {
	rt, err := NewRuntime()
	if err != nil {
		return nil, err
	}
	return objc.NewBinding(rt), nil
}
