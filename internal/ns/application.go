package ns

import (
	"fmt"
	"strings"

	"gitlab.com/tozd/go/errors"

	"github.com/mj1618/appname/internal/objc"
)

// ActivationPolicy is NSApplicationActivationPolicy.
type ActivationPolicy int

const (
	// ActivationPolicyRegular is an ordinary app with a Dock icon and menu bar.
	ActivationPolicyRegular ActivationPolicy = 0
	// ActivationPolicyAccessory has no Dock icon but may show windows.
	ActivationPolicyAccessory ActivationPolicy = 1
	// ActivationPolicyProhibited cannot create windows or be activated.
	ActivationPolicyProhibited ActivationPolicy = 2
)

func (p ActivationPolicy) String() string {
	switch p {
	case ActivationPolicyRegular:
		return "regular"
	case ActivationPolicyAccessory:
		return "accessory"
	case ActivationPolicyProhibited:
		return "prohibited"
	default:
		return fmt.Sprintf("ActivationPolicy(%d)", int(p))
	}
}

// ParseActivationPolicy converts a flag value to an ActivationPolicy.
func ParseActivationPolicy(s string) (ActivationPolicy, error) {
	switch strings.ToLower(s) {
	case "regular":
		return ActivationPolicyRegular, nil
	case "accessory":
		return ActivationPolicyAccessory, nil
	case "prohibited":
		return ActivationPolicyProhibited, nil
	default:
		return ActivationPolicyRegular, errors.Errorf("unknown activation policy: %q (expected regular, accessory, or prohibited)", s)
	}
}

// Application is an NSApplication handle.
type Application struct {
	Object
}

// SharedApplication returns NSApp, creating it on first use.
func SharedApplication(b *objc.Binding) Application {
	cls := b.Class("NSApplication")
	id, _ := b.Send(cls.ID(), b.Selector("sharedApplication"))
	return Application{wrap(b, id)}
}

// SetActivationPolicy reports whether the runtime accepted p.
func (a Application) SetActivationPolicy(p ActivationPolicy) bool {
	return a.b.SendBool(a.id, a.b.Selector("setActivationPolicy:"), int(p))
}

// ActivationPolicy returns the current activation policy.
func (a Application) ActivationPolicy() ActivationPolicy {
	r, _ := a.b.Send(a.id, a.b.Selector("activationPolicy"))
	return ActivationPolicy(r)
}

// FinishLaunching tells AppKit that startup configuration is complete.
// Send it once, after the activation policy is set.
func (a Application) FinishLaunching() {
	a.b.Send(a.id, a.b.Selector("finishLaunching"))
}
