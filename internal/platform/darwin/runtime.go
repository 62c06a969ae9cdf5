//go:build darwin

package darwin

import (
	"sync"

	"github.com/ebitengine/purego"
	pobjc "github.com/ebitengine/purego/objc"
	"gitlab.com/tozd/go/errors"

	"github.com/mj1618/appname/internal/objc"
)

// Frameworks holding the classes this program uses. libobjc itself is
// loaded by purego/objc.
var frameworks = []string{
	"/System/Library/Frameworks/Foundation.framework/Foundation",
	"/System/Library/Frameworks/AppKit.framework/AppKit",
}

var loadFrameworks = sync.OnceValue(func() error {
	for _, path := range frameworks {
		if _, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL); err != nil {
			return errors.WithDetails(errors.WithMessage(err, "loading framework"), "path", path)
		}
	}
	return nil
})

// Runtime implements objc.Runtime against the system libobjc.
type Runtime struct{}

// NewRuntime loads the frameworks and returns the runtime.
func NewRuntime() (*Runtime, error) {
	if err := loadFrameworks(); err != nil {
		return nil, err
	}
	return &Runtime{}, nil
}

func (Runtime) GetClass(name string) objc.Class {
	return objc.Class(pobjc.GetClass(name))
}

func (Runtime) RegisterName(name string) objc.SEL {
	return objc.SEL(pobjc.RegisterName(name))
}

func (Runtime) Send(receiver objc.ID, sel objc.SEL, args ...any) objc.ID {
	return objc.ID(pobjc.ID(receiver).Send(pobjc.SEL(sel), convertArgs(args)...))
}

func (Runtime) SendBool(receiver objc.ID, sel objc.SEL, args ...any) bool {
	return pobjc.Send[bool](pobjc.ID(receiver), pobjc.SEL(sel), convertArgs(args)...)
}

// SendString relies on purego copying a char* return into a Go string.
func (Runtime) SendString(receiver objc.ID, sel objc.SEL, args ...any) string {
	return pobjc.Send[string](pobjc.ID(receiver), pobjc.SEL(sel), convertArgs(args)...)
}

// convertArgs maps handle types to purego's own so that they are passed as
// plain pointers.
func convertArgs(args []any) []any {
	if len(args) == 0 {
		return nil
	}
	out := make([]any, len(args))
	for i, a := range args {
		switch v := a.(type) {
		case objc.ID:
			out[i] = pobjc.ID(v)
		case objc.Class:
			out[i] = pobjc.Class(v)
		case objc.SEL:
			out[i] = pobjc.SEL(v)
		default:
			out[i] = a
		}
	}
	return out
}
