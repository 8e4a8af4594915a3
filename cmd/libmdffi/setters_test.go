package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yhilem-ai/mdffi"
)

func TestGeneratedSettersCoverFields(t *testing.T) {
	require.NoError(t, checkBindings(generatedSetters, mdffi.Fields()))
	assert.Len(t, generatedSetters, len(mdffi.Fields()))

	for _, b := range generatedSetters {
		switch b.field.Kind {
		case mdffi.KindBool:
			assert.NotNil(t, b.setBool, b.symbol)
		case mdffi.KindSize:
			assert.NotNil(t, b.setSize, b.symbol)
		case mdffi.KindText:
			assert.NotNil(t, b.setText, b.symbol)
		}
	}
}

func TestCheckBindingsDetectsDrift(t *testing.T) {
	fields := mdffi.Fields()

	missing := generatedSetters[1:]
	assert.ErrorContains(t, checkBindings(missing, fields), "no setter for field")

	dup := append([]setterBinding{generatedSetters[0]}, generatedSetters...)
	assert.ErrorContains(t, checkBindings(dup, fields), "generated twice")

	renamed := append([]setterBinding(nil), generatedSetters...)
	renamed[0].symbol = "mdffi_set_extension_option_renamed"
	assert.ErrorContains(t, checkBindings(renamed, fields), "bound to field")
}

// Each setter writes exactly its own field and leaves every other field at
// its default.
func TestEachSetterWritesOnlyItsField(t *testing.T) {
	defaults := mdffi.NewOptions()

	for _, b := range generatedSetters {
		t.Run(b.symbol, func(t *testing.T) {
			h := newTestOptions(t)

			var want any
			switch b.field.Kind {
			case mdffi.KindBool:
				b.setBool(h, true)
				want = true
			case mdffi.KindSize:
				b.setSize(h, 42)
				want = uint(42)
			case mdffi.KindText:
				p, n := goBuffer("héllo")
				b.setText(h, p, n)
				want = mdffi.StringPtr("héllo")
			}

			o := lookupOptions(h)
			assert.Equal(t, want, mdffi.Value(o, b.field))
			for _, other := range mdffi.Fields() {
				if other.String() == b.field.String() {
					continue
				}
				assert.Equal(t, mdffi.Value(defaults, other), mdffi.Value(o, other), other.String())
			}
		})
	}
}

func bindingFor(t *testing.T, symbol string) setterBinding {
	t.Helper()
	for _, b := range generatedSetters {
		if b.symbol == symbol {
			return b
		}
	}
	t.Fatalf("no binding for %s", symbol)
	return setterBinding{}
}

func TestSettersOverwrite(t *testing.T) {
	h := newTestOptions(t)
	o := lookupOptions(h)

	unsafeSetter := bindingFor(t, "mdffi_set_render_option_unsafe")
	unsafeSetter.setBool(h, true)
	unsafeSetter.setBool(h, false)
	assert.False(t, o.Render.Unsafe)

	width := bindingFor(t, "mdffi_set_render_option_width")
	width.setSize(h, 80)
	width.setSize(h, 0)
	assert.Equal(t, uint(0), o.Render.Width)

	ids := bindingFor(t, "mdffi_set_extension_option_header_ids")
	p, n := goBuffer("a-")
	ids.setText(h, p, n)
	p, n = goBuffer("")
	ids.setText(h, p, n)
	require.NotNil(t, o.Extension.HeaderIDs)
	assert.Equal(t, "", *o.Extension.HeaderIDs)
}

func TestTextSetterCopiesInput(t *testing.T) {
	h := newTestOptions(t)
	b := []byte("lang")
	p, n := rawBuffer(b)
	bindingFor(t, "mdffi_set_parse_option_default_info_string").setText(h, p, n)

	(*[4]byte)(p)[0] = 'X'
	assert.Equal(t, "lang", *lookupOptions(h).Parse.DefaultInfoString)
}

func TestTextSetterInvalidUTF8IsNoOp(t *testing.T) {
	clearLastError(t)
	h := newTestOptions(t)
	setter := bindingFor(t, "mdffi_set_extension_option_front_matter_delimiter")

	p, n := goBuffer("---")
	setter.setText(h, p, n)

	p, n = rawBuffer([]byte{'-', 0xfe})
	setter.setText(h, p, n)
	assert.Equal(t, "---", *lookupOptions(h).Extension.FrontMatterDelimiter)

	msg, ok := takeLastError()
	require.True(t, ok)
	assert.Equal(t, "mdffi_set_extension_option_front_matter_delimiter: value: mdffi: invalid UTF-8 at byte 1", msg)

	_, ok = takeLastError()
	assert.False(t, ok)
}

func TestTextSetterInvalidUTF8LeavesUnsetField(t *testing.T) {
	clearLastError(t)
	h := newTestOptions(t)

	p, n := rawBuffer([]byte{0xc3, 0x28})
	bindingFor(t, "mdffi_set_extension_option_header_ids").setText(h, p, n)
	assert.Nil(t, lookupOptions(h).Extension.HeaderIDs)
}

func TestSettersNullArgumentsAreFatal(t *testing.T) {
	h := newTestOptions(t)

	for _, b := range generatedSetters {
		assert.PanicsWithValue(t, "options is NULL", func() {
			switch b.field.Kind {
			case mdffi.KindBool:
				b.setBool(0, true)
			case mdffi.KindSize:
				b.setSize(0, 1)
			case mdffi.KindText:
				p, n := goBuffer("x")
				b.setText(0, p, n)
			}
		}, b.symbol)

		if b.field.Kind == mdffi.KindText {
			assert.PanicsWithValue(t, "value is NULL", func() {
				b.setText(h, nil, 3)
			}, b.symbol)
			assert.Nil(t, mdffi.Value(lookupOptions(h), b.field), b.symbol)
		}
	}
}

func TestSizeSetterAcceptsFullRange(t *testing.T) {
	h := newTestOptions(t)
	width := bindingFor(t, "mdffi_set_render_option_width")

	for _, v := range []uint{0, 1, 80, 1 << 31, ^uint(0)} {
		width.setSize(h, v)
		assert.Equal(t, v, lookupOptions(h).Render.Width)
	}
}

func TestTextSetterEmptyBufferSetsEmptyString(t *testing.T) {
	h := newTestOptions(t)

	p, _ := rawBuffer([]byte{0xff})
	bindingFor(t, "mdffi_set_parse_option_default_info_string").setText(h, p, 0)

	got := lookupOptions(h).Parse.DefaultInfoString
	require.NotNil(t, got)
	assert.Equal(t, "", *got)
}
