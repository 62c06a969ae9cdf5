// Package objc is a narrow binding to the Objective-C runtime.
//
// It exposes opaque handles for objects, classes and selectors and a single
// variadic message send. The argument list of every send must match the
// receiver's method signature exactly; nothing here can check it. Callers
// outside internal/ns should not send messages directly.
package objc
