// Command libmdffi builds the mdffi C shared library:
//
//	go build -buildmode=c-shared -o libmdffi.so ./cmd/libmdffi
//
// Options objects cross the boundary as opaque mdffi_options handles, text
// as (pointer, length) pairs, and results as heap-allocated mdffi_str boxes
// that the caller releases with mdffi_str_free. Passing NULL where a live
// object or buffer is required aborts the process with a diagnostic.
package main

/*
#cgo CFLAGS: -I${SRCDIR}/../../include
#include "mdffi.h"
*/
import "C"

//go:generate go run ../mdffi-gen -out setters_gen.go

// symbolPrefix prefixes every exported function name.
const symbolPrefix = "mdffi_"

// main is required for c-shared build mode but is never called.
func main() {}
