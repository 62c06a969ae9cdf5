//go:build darwin

package darwin

import (
	"github.com/mj1618/appname/internal/objc"
	"github.com/mj1618/appname/internal/platform"
)

func init() {
	platform.NewRuntimeFunc = func() (objc.Runtime, error) {
		rt, err := NewRuntime()
		if err != nil {
			return nil, err
		}
		return rt, nil
	}
}
