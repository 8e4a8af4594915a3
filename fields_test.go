package mdffi

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldsCoverEveryOption(t *testing.T) {
	fs := Fields()
	require.Len(t, fs, 20)

	seen := map[string]bool{}
	for _, f := range fs {
		assert.False(t, seen[f.String()], "duplicate field %s", f)
		seen[f.String()] = true

		got, ok := LookupField(f.Category, f.Name)
		require.True(t, ok, f.String())
		assert.Equal(t, f.Kind, got.Kind)
	}

	kinds := map[Kind]int{}
	for _, f := range fs {
		kinds[f.Kind]++
	}
	assert.Equal(t, map[Kind]int{KindBool: 16, KindSize: 1, KindText: 3}, kinds)
}

func TestFieldSymbol(t *testing.T) {
	f := MustLookupField(CategoryRender, "github_pre_lang")
	assert.Equal(t, "mdffi_set_render_option_github_pre_lang", f.Symbol("mdffi_"))
	assert.Equal(t, "render.github_pre_lang", f.String())

	for _, f := range Fields() {
		sym := f.Symbol("mdffi_")
		assert.True(t, strings.HasPrefix(sym, "mdffi_set_"+string(f.Category)+"_option_"), sym)
	}
}

func TestFieldsReturnsCopy(t *testing.T) {
	fs := Fields()
	fs[0].Name = "changed"
	assert.NotEqual(t, "changed", Fields()[0].Name)
}

func TestLookupFieldUnknown(t *testing.T) {
	_, ok := LookupField(CategoryParse, "nope")
	assert.False(t, ok)
	assert.Panics(t, func() { MustLookupField(CategoryRender, "nope") })
}

func TestSetters(t *testing.T) {
	o := NewOptions()

	SetBool(o, MustLookupField(CategoryExtension, "table"), true)
	SetSize(o, MustLookupField(CategoryRender, "width"), 80)
	label := "rust"
	SetText(o, MustLookupField(CategoryParse, "default_info_string"), &label)
	label = "mutated"

	want := NewOptions()
	want.Extension.Table = true
	want.Render.Width = 80
	want.Parse.DefaultInfoString = StringPtr("rust")
	if diff := cmp.Diff(want, o); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}

	SetText(o, MustLookupField(CategoryParse, "default_info_string"), nil)
	assert.Nil(t, o.Parse.DefaultInfoString)
}

func TestSetterKindMismatchPanics(t *testing.T) {
	o := NewOptions()
	assert.Panics(t, func() { SetBool(o, MustLookupField(CategoryRender, "width"), true) })
	assert.Panics(t, func() { SetSize(o, MustLookupField(CategoryRender, "unsafe"), 1) })
	assert.Panics(t, func() { SetText(o, MustLookupField(CategoryExtension, "table"), nil) })
}

func TestValue(t *testing.T) {
	o := NewOptions()
	o.Extension.HeaderIDs = StringPtr("id-")
	o.Render.Width = 40
	o.Render.Escape = true

	assert.Equal(t, true, Value(o, MustLookupField(CategoryRender, "escape")))
	assert.Equal(t, uint(40), Value(o, MustLookupField(CategoryRender, "width")))

	got := Value(o, MustLookupField(CategoryExtension, "header_ids")).(*string)
	require.NotNil(t, got)
	assert.Equal(t, "id-", *got)
	assert.NotSame(t, o.Extension.HeaderIDs, got)
}

func TestCloneIsDeep(t *testing.T) {
	o := NewOptions()
	o.Extension.FrontMatterDelimiter = StringPtr("---")
	o.Parse.Smart = true

	c := o.Clone()
	if diff := cmp.Diff(o, c); diff != "" {
		t.Fatalf("clone differs (-orig +clone):\n%s", diff)
	}

	*c.Extension.FrontMatterDelimiter = "+++"
	c.Parse.Smart = false
	assert.Equal(t, "---", *o.Extension.FrontMatterDelimiter)
	assert.True(t, o.Parse.Smart)

	var nilOpts *Options
	assert.Equal(t, NewOptions(), nilOpts.Clone())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "bool", KindBool.String())
	assert.Equal(t, "size", KindSize.String())
	assert.Equal(t, "text", KindText.String())
	assert.Equal(t, "Kind(9)", Kind(9).String())
}
