// Package buffer turns caller-supplied (pointer, length) pairs into checked
// Go strings.
//
// A nil pointer is a caller bug and is fatal. Invalid UTF-8 is an input
// problem and is reported as an error without side effects.
package buffer

import (
	"fmt"
	"unsafe"

	"github.com/yhilem-ai/mdffi"
	"go.uber.org/zap"
)

// RequireNonNull panics with "<arg> is NULL" when p is nil. Inside an
// exported function the panic aborts the process.
func RequireNonNull(p unsafe.Pointer, arg string) {
	if p == nil {
		Fatal(arg + " is NULL")
	}
}

// Fatal logs msg and panics with it.
func Fatal(msg string) {
	Logger().Error("fatal boundary misuse", zap.String("reason", msg))
	panic(msg)
}

// Text validates n bytes at p and returns them as an owned string.
// n == 0 always yields "" for a non-nil p.
func Text(p unsafe.Pointer, n uintptr, arg string) (string, error) {
	RequireNonNull(p, arg)
	text, err := mdffi.DecodeText(unsafe.Slice((*byte)(p), n))
	if err != nil {
		Logger().Debug("rejected buffer",
			zap.String("arg", arg),
			zap.Uintptr("len", n),
			zap.Error(err))
		return "", fmt.Errorf("%s: %w", arg, err)
	}
	return text, nil
}
