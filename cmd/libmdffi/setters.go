package main

import (
	"fmt"
	"unsafe"

	"github.com/yhilem-ai/mdffi"
	"github.com/yhilem-ai/mdffi/internal/buffer"
)

// setterBinding ties a generated export to its field. Exactly one of the
// set funcs is non-nil, matching the field's kind.
type setterBinding struct {
	symbol  string
	field   mdffi.Field
	setBool func(h uintptr, v bool)
	setSize func(h uintptr, v uint)
	setText func(h uintptr, p unsafe.Pointer, n uintptr)
}

func init() {
	if err := checkBindings(generatedSetters, mdffi.Fields()); err != nil {
		panic(err)
	}
}

// checkBindings fails when the generated setters are out of date with the
// field table.
func checkBindings(bindings []setterBinding, fields []mdffi.Field) error {
	seen := make(map[string]bool, len(bindings))
	for _, b := range bindings {
		if want := b.field.Symbol(symbolPrefix); b.symbol != want {
			return fmt.Errorf("mdffi: setter %s bound to field %s (want %s); run go generate", b.symbol, b.field, want)
		}
		if seen[b.symbol] {
			return fmt.Errorf("mdffi: setter %s generated twice; run go generate", b.symbol)
		}
		seen[b.symbol] = true
	}
	for _, f := range fields {
		if !seen[f.Symbol(symbolPrefix)] {
			return fmt.Errorf("mdffi: no setter for field %s; run go generate", f)
		}
	}
	return nil
}

func setBool(h uintptr, f mdffi.Field, value bool) {
	mdffi.SetBool(lookupOptions(h), f, value)
}

func setSize(h uintptr, f mdffi.Field, value uint) {
	mdffi.SetSize(lookupOptions(h), f, value)
}

// setText stores Some(text) when the buffer is valid UTF-8 and leaves the
// field untouched otherwise.
func setText(h uintptr, f mdffi.Field, p unsafe.Pointer, n uintptr) {
	o := lookupOptions(h)
	text, err := buffer.Text(p, n, "value")
	if err != nil {
		recordError(fmt.Errorf("%s: %w", f.Symbol(symbolPrefix), err))
		return
	}
	mdffi.SetText(o, f, &text)
}
