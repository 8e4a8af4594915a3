package mdffi

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"
)

func TestDecodeTextReturnsEncodingError(t *testing.T) {
	_, err := DecodeText([]byte{'o', 'k', 0xff, 'x'})
	encErr, ok := err.(*EncodingError)
	if !ok {
		t.Fatalf("expected EncodingError, got %T", err)
	}
	if encErr.Kind() != ErrorKindEncoding {
		t.Fatalf("unexpected kind: %s", encErr.Kind())
	}
	if encErr.Offset != 2 {
		t.Fatalf("expected offset 2, got %d", encErr.Offset)
	}
	if encErr.Error() != "mdffi: invalid UTF-8 at byte 2" {
		t.Fatalf("unexpected message: %s", encErr.Error())
	}
}

func TestKindOfUnwrapsWrappedErrors(t *testing.T) {
	err := fmt.Errorf("text: %w", newEncodingError(0))
	if KindOf(err) != ErrorKindEncoding {
		t.Fatalf("expected encoding kind, got %s", KindOf(err))
	}
	if KindOf(errors.New("plain")) != ErrorKindUnknown {
		t.Fatalf("expected unknown kind for foreign error")
	}
	if KindOf(nil) != ErrorKindUnknown {
		t.Fatalf("expected unknown kind for nil")
	}
}

func TestErrorMessageKeepsCause(t *testing.T) {
	err := newIOError("failed to read options file", fs.ErrNotExist)
	if !strings.HasPrefix(err.Error(), "mdffi: failed to read options file: ") {
		t.Fatalf("unexpected message: %s", err.Error())
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected cause to be reachable through Unwrap")
	}
}

func TestFormatErrorMessageDefaults(t *testing.T) {
	if got := formatErrorMessage("   "); got != "mdffi: unknown error" {
		t.Fatalf("unexpected message for blank input: %s", got)
	}
	if got := formatErrorMessage("mdffi: already prefixed"); got != "mdffi: already prefixed" {
		t.Fatalf("prefix duplicated: %s", got)
	}
}

func TestLoadOptionsFromFileValidation(t *testing.T) {
	_, err := LoadOptionsFromFile("")
	if err == nil {
		t.Fatalf("expected validation error for empty options path")
	}
	if _, ok := err.(*ValidationError); !ok {
		t.Fatalf("expected ValidationError, got %T", err)
	}
}

func TestMarkdownToHTMLBytesValidation(t *testing.T) {
	if _, err := MarkdownToHTMLBytes([]byte{0xc3}, nil); err == nil {
		t.Fatalf("expected error for truncated UTF-8")
	} else if _, ok := err.(*EncodingError); !ok {
		t.Fatalf("expected EncodingError, got %T", err)
	}
}

func TestRenderSafelyConvertsPanics(t *testing.T) {
	_, err := renderSafely(func() []byte { panic("boom") })
	renderErr, ok := err.(*RenderError)
	if !ok {
		t.Fatalf("expected RenderError, got %T", err)
	}
	if !strings.Contains(renderErr.Error(), "boom") {
		t.Fatalf("expected panic value in message, got: %s", renderErr.Error())
	}
}
