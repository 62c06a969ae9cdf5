// Package ns wraps the few Foundation and AppKit messages this program
// sends. Every function hard-codes one selector and one argument shape, so
// callers never build a raw message send.
package ns
