// Package darwin provides the macOS Objective-C runtime through purego.
// libobjc, Foundation and AppKit are loaded with dlopen, so no C toolchain
// is needed and the package builds with CGO_ENABLED=0. On other systems
// the package is empty and platform.NewRuntime reports ErrUnsupported.
package darwin
