package main

import (
	"runtime/cgo"

	"github.com/yhilem-ai/mdffi"
	"github.com/yhilem-ai/mdffi/internal/buffer"
)

// Options handles are cgo.Handle values. The handle table is safe for
// concurrent use, the options behind a handle are not.

func newHandle(o *mdffi.Options) uintptr {
	return uintptr(cgo.NewHandle(o))
}

// lookupOptions resolves a live handle. Null is fatal; a released handle
// panics inside cgo.Handle.
func lookupOptions(h uintptr) *mdffi.Options {
	if h == 0 {
		buffer.Fatal("options is NULL")
	}
	return cgo.Handle(h).Value().(*mdffi.Options)
}

func releaseHandle(h uintptr) {
	if h == 0 {
		buffer.Fatal("options is NULL")
	}
	cgo.Handle(h).Delete()
}
