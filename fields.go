package mdffi

import "fmt"

// Category groups related option fields.
type Category string

const (
	CategoryExtension Category = "extension"
	CategoryParse     Category = "parse"
	CategoryRender    Category = "render"
)

// Kind is the primitive shape of a field and selects its setter contract.
type Kind int

const (
	KindBool Kind = iota
	KindSize
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindSize:
		return "size"
	case KindText:
		return "text"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Field describes one settable option. The set of fields is fixed at build
// time; exported setter functions are generated from it.
type Field struct {
	Category Category
	Name     string
	Kind     Kind

	boolRef func(*Options) *bool
	sizeRef func(*Options) *uint
	textRef func(*Options) **string
}

// Symbol returns the exported setter name for the field.
func (f Field) Symbol(prefix string) string {
	return fmt.Sprintf("%sset_%s_option_%s", prefix, f.Category, f.Name)
}

func (f Field) String() string {
	return string(f.Category) + "." + f.Name
}

func boolField(c Category, name string, ref func(*Options) *bool) Field {
	return Field{Category: c, Name: name, Kind: KindBool, boolRef: ref}
}

func sizeField(c Category, name string, ref func(*Options) *uint) Field {
	return Field{Category: c, Name: name, Kind: KindSize, sizeRef: ref}
}

func textField(c Category, name string, ref func(*Options) **string) Field {
	return Field{Category: c, Name: name, Kind: KindText, textRef: ref}
}

var fields = []Field{
	boolField(CategoryExtension, "strikethrough", func(o *Options) *bool { return &o.Extension.Strikethrough }),
	boolField(CategoryExtension, "tagfilter", func(o *Options) *bool { return &o.Extension.Tagfilter }),
	boolField(CategoryExtension, "table", func(o *Options) *bool { return &o.Extension.Table }),
	boolField(CategoryExtension, "autolink", func(o *Options) *bool { return &o.Extension.Autolink }),
	boolField(CategoryExtension, "tasklist", func(o *Options) *bool { return &o.Extension.Tasklist }),
	boolField(CategoryExtension, "superscript", func(o *Options) *bool { return &o.Extension.Superscript }),
	textField(CategoryExtension, "header_ids", func(o *Options) **string { return &o.Extension.HeaderIDs }),
	boolField(CategoryExtension, "footnotes", func(o *Options) *bool { return &o.Extension.Footnotes }),
	boolField(CategoryExtension, "description_lists", func(o *Options) *bool { return &o.Extension.DescriptionLists }),
	textField(CategoryExtension, "front_matter_delimiter", func(o *Options) **string { return &o.Extension.FrontMatterDelimiter }),

	boolField(CategoryParse, "smart", func(o *Options) *bool { return &o.Parse.Smart }),
	textField(CategoryParse, "default_info_string", func(o *Options) **string { return &o.Parse.DefaultInfoString }),
	boolField(CategoryParse, "relaxed_tasklist_matching", func(o *Options) *bool { return &o.Parse.RelaxedTasklistMatching }),

	boolField(CategoryRender, "hardbreaks", func(o *Options) *bool { return &o.Render.Hardbreaks }),
	boolField(CategoryRender, "github_pre_lang", func(o *Options) *bool { return &o.Render.GithubPreLang }),
	boolField(CategoryRender, "full_info_string", func(o *Options) *bool { return &o.Render.FullInfoString }),
	sizeField(CategoryRender, "width", func(o *Options) *uint { return &o.Render.Width }),
	boolField(CategoryRender, "unsafe", func(o *Options) *bool { return &o.Render.Unsafe }),
	boolField(CategoryRender, "escape", func(o *Options) *bool { return &o.Render.Escape }),
	boolField(CategoryRender, "sanitize", func(o *Options) *bool { return &o.Render.Sanitize }),
}

var fieldIndex = func() map[string]int {
	idx := make(map[string]int, len(fields))
	for i, f := range fields {
		key := f.String()
		if _, dup := idx[key]; dup {
			panic("mdffi: duplicate option field " + key)
		}
		idx[key] = i
	}
	return idx
}()

// Fields returns every option field in declaration order.
func Fields() []Field {
	out := make([]Field, len(fields))
	copy(out, fields)
	return out
}

// LookupField finds a field by category and name.
func LookupField(category Category, name string) (Field, bool) {
	i, ok := fieldIndex[string(category)+"."+name]
	if !ok {
		return Field{}, false
	}
	return fields[i], true
}

// MustLookupField is LookupField for names known at build time.
func MustLookupField(category Category, name string) Field {
	f, ok := LookupField(category, name)
	if !ok {
		panic(fmt.Sprintf("mdffi: unknown option field %s.%s", category, name))
	}
	return f
}

// SetBool assigns a boolean field.
func SetBool(o *Options, f Field, value bool) {
	f.mustBe(KindBool)
	*f.boolRef(o) = value
}

// SetSize assigns an unsigned-size field.
func SetSize(o *Options, f Field, value uint) {
	f.mustBe(KindSize)
	*f.sizeRef(o) = value
}

// SetText assigns an optional-text field. A nil value clears it.
func SetText(o *Options, f Field, value *string) {
	f.mustBe(KindText)
	*f.textRef(o) = cloneString(value)
}

// Value reads a field: bool, uint, or *string depending on its kind.
func Value(o *Options, f Field) any {
	switch f.Kind {
	case KindBool:
		return *f.boolRef(o)
	case KindSize:
		return *f.sizeRef(o)
	case KindText:
		return cloneString(*f.textRef(o))
	}
	return nil
}

func (f Field) mustBe(k Kind) {
	if f.Kind != k {
		panic(fmt.Sprintf("mdffi: field %s is %s, not %s", f, f.Kind, k))
	}
}
