package main

import (
	"runtime"

	"github.com/mj1618/appname/cmd"
	_ "github.com/mj1618/appname/internal/platform/darwin"
)

func init() {
	// AppKit must only be used from the main thread, and main runs on
	// whichever goroutine init ran on.
	runtime.LockOSThread()
}

func main() {
	cmd.Execute()
}
