// Package strbox allocates the mdffi_str values handed to C callers.
//
// A box and its data live in C heap memory so the caller can keep them
// across calls; ownership moves to the caller until Release.
package strbox

/*
#cgo CFLAGS: -I${SRCDIR}/../../include
#include <stdlib.h>
#include "mdffi.h"
*/
import "C"

import "unsafe"

// New copies s into a fresh box. The data is NUL terminated.
func New(s string) unsafe.Pointer {
	box := (*C.mdffi_str)(C.malloc(C.size_t(unsafe.Sizeof(C.mdffi_str{}))))
	data := C.malloc(C.size_t(len(s) + 1))

	buf := unsafe.Slice((*byte)(data), len(s)+1)
	copy(buf, s)
	buf[len(s)] = 0

	box.data = (*C.char)(data)
	box.len = C.size_t(len(s))
	return unsafe.Pointer(box)
}

// Release frees a box created by New. Each box must be released exactly once.
func Release(p unsafe.Pointer) {
	box := (*C.mdffi_str)(p)
	data := unsafe.Pointer(box.data)
	if held.hold(box, data, int(box.len)) {
		return
	}
	C.free(data)
	C.free(p)
}

// Data returns the box's data pointer.
func Data(p unsafe.Pointer) unsafe.Pointer {
	return unsafe.Pointer((*C.mdffi_str)(p).data)
}

// Len returns the box's length in bytes, excluding the terminator.
func Len(p unsafe.Pointer) int {
	return int((*C.mdffi_str)(p).len)
}

// Bytes returns a Go copy of the box's contents.
func Bytes(p unsafe.Pointer) []byte {
	box := (*C.mdffi_str)(p)
	if box.data == nil {
		return nil
	}
	src := unsafe.Slice((*byte)(unsafe.Pointer(box.data)), int(box.len))
	return append([]byte(nil), src...)
}
