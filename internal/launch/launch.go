// Package launch is the program proper: make the process a foreground
// application, work out its name, report it and finish launching.
package launch

import (
	"context"

	slogctx "github.com/veqryn/slog-context"
	"gitlab.com/tozd/go/errors"

	"github.com/mj1618/appname/internal/appname"
	"github.com/mj1618/appname/internal/ns"
	"github.com/mj1618/appname/internal/objc"
)

// Report describes the running application.
type Report struct {
	Name             string         `yaml:"name"                        json:"name"`
	Source           appname.Source `yaml:"source"                      json:"source"`
	BundleIdentifier string         `yaml:"bundle_identifier,omitempty" json:"bundle_identifier,omitempty"`
	ProcessName      string         `yaml:"process_name"                json:"process_name"`
	PID              int            `yaml:"pid"                         json:"pid"`
	Policy           string         `yaml:"policy"                      json:"policy"`
	PolicyAccepted   *bool          `yaml:"policy_accepted,omitempty"   json:"policy_accepted,omitempty"`
}

// Options controls Run.
type Options struct {
	Policy ns.ActivationPolicy

	// Emit is called with the report after the policy is set and before
	// finishLaunching is sent. An error from Emit is returned by Run, but
	// launching still finishes.
	Emit func(Report) error
}

// Inspect reports the application's name and metadata without changing
// anything.
func Inspect(ctx context.Context, b *objc.Binding) (rep Report, err error) {
	defer recoverMissingClass(&err)
	ns.WithAutoreleasePool(b, func() {
		rep = inspect(ctx, b)
	})
	return rep, nil
}

func inspect(ctx context.Context, b *objc.Binding) Report {
	res := appname.Resolve(b)
	slogctx.Debug(ctx, "resolved application name", "name", res.Name, "source", res.Source)

	proc := ns.CurrentProcessInfo(b)
	rep := Report{
		Name:        res.Name,
		Source:      res.Source,
		ProcessName: proc.ProcessName().String(),
		PID:         proc.ProcessIdentifier(),
		Policy:      ns.SharedApplication(b).ActivationPolicy().String(),
	}
	if id, ok := ns.MainBundle(b).BundleIdentifier(); ok {
		rep.BundleIdentifier = id.String()
	}
	return rep
}

// Run sets the activation policy on the shared application, reports the
// application and sends finishLaunching exactly once.
func Run(ctx context.Context, b *objc.Binding, opts Options) (rep Report, err error) {
	defer recoverMissingClass(&err)

	var emitErr error
	ns.WithAutoreleasePool(b, func() {
		app := ns.SharedApplication(b)
		accepted := app.SetActivationPolicy(opts.Policy)
		slogctx.Debug(ctx, "set activation policy", "policy", opts.Policy, "accepted", accepted)

		rep = inspect(ctx, b)
		rep.PolicyAccepted = &accepted

		if opts.Emit != nil {
			emitErr = opts.Emit(rep)
		}

		app.FinishLaunching()
		slogctx.Debug(ctx, "finished launching")
	})
	if emitErr != nil {
		return rep, errors.WithMessage(emitErr, "writing report")
	}
	return rep, nil
}

// recoverMissingClass turns the binding's missing-class panic into an
// error. Other panics propagate.
func recoverMissingClass(err *error) {
	p := recover()
	if p == nil {
		return
	}
	if e, ok := p.(error); ok && errors.Is(e, objc.ErrClassNotFound) {
		*err = errors.WithMessage(e, "objective-c runtime is missing a required class")
		return
	}
	panic(p)
}
