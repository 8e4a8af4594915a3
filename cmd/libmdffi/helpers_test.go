package main

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"

	"github.com/yhilem-ai/mdffi/internal/strbox"
)

// goBuffer returns a (pointer, length) pair over a copy of s. The pointer is
// valid even for an empty s.
func goBuffer(s string) (unsafe.Pointer, uintptr) {
	b := make([]byte, len(s)+1)
	copy(b, s)
	return unsafe.Pointer(&b[0]), uintptr(len(s))
}

func rawBuffer(b []byte) (unsafe.Pointer, uintptr) {
	buf := make([]byte, len(b)+1)
	copy(buf, b)
	return unsafe.Pointer(&buf[0]), uintptr(len(b))
}

// takeString copies a returned box and releases it.
func takeString(t *testing.T, p unsafe.Pointer) string {
	t.Helper()
	require.NotNil(t, p)
	s := string(strbox.Bytes(p))
	strFree(p)
	return s
}

// newTestOptions allocates a handle released at the end of the test.
func newTestOptions(t *testing.T) uintptr {
	t.Helper()
	h := optionsNew()
	require.NotZero(t, h)
	t.Cleanup(func() { optionsFree(h) })
	return h
}

func clearLastError(t *testing.T) {
	t.Helper()
	takeLastError()
	t.Cleanup(func() { takeLastError() })
}
