package mdffi

// Options is the configuration object handed across the boundary. It mirrors
// the engine's three option categories and is serialized with the same field
// names in JSON and YAML. Optional text fields use nil for "not set".
type Options struct {
	Extension ExtensionOptions `json:"extension" yaml:"extension"`
	Parse     ParseOptions     `json:"parse" yaml:"parse"`
	Render    RenderOptions    `json:"render" yaml:"render"`
}

// ExtensionOptions toggles Markdown syntax extensions.
type ExtensionOptions struct {
	Strikethrough        bool    `json:"strikethrough" yaml:"strikethrough"`
	Tagfilter            bool    `json:"tagfilter" yaml:"tagfilter"`
	Table                bool    `json:"table" yaml:"table"`
	Autolink             bool    `json:"autolink" yaml:"autolink"`
	Tasklist             bool    `json:"tasklist" yaml:"tasklist"`
	Superscript          bool    `json:"superscript" yaml:"superscript"`
	HeaderIDs            *string `json:"header_ids,omitempty" yaml:"header_ids,omitempty"`
	Footnotes            bool    `json:"footnotes" yaml:"footnotes"`
	DescriptionLists     bool    `json:"description_lists" yaml:"description_lists"`
	FrontMatterDelimiter *string `json:"front_matter_delimiter,omitempty" yaml:"front_matter_delimiter,omitempty"`
}

// ParseOptions tunes how input text is parsed.
type ParseOptions struct {
	Smart                   bool    `json:"smart" yaml:"smart"`
	DefaultInfoString       *string `json:"default_info_string,omitempty" yaml:"default_info_string,omitempty"`
	RelaxedTasklistMatching bool    `json:"relaxed_tasklist_matching" yaml:"relaxed_tasklist_matching"`
}

// RenderOptions tunes the HTML and CommonMark output.
type RenderOptions struct {
	Hardbreaks     bool `json:"hardbreaks" yaml:"hardbreaks"`
	GithubPreLang  bool `json:"github_pre_lang" yaml:"github_pre_lang"`
	FullInfoString bool `json:"full_info_string" yaml:"full_info_string"`
	// Width is the wrap column for CommonMark output; 0 disables wrapping.
	Width    uint `json:"width" yaml:"width"`
	Unsafe   bool `json:"unsafe" yaml:"unsafe"`
	Escape   bool `json:"escape" yaml:"escape"`
	Sanitize bool `json:"sanitize" yaml:"sanitize"`
}

// NewOptions returns options with every extension off and every text unset.
func NewOptions() *Options {
	return &Options{}
}

// Clone returns a deep copy; optional text values are not shared.
func (o *Options) Clone() *Options {
	if o == nil {
		return NewOptions()
	}
	c := *o
	c.Extension.HeaderIDs = cloneString(o.Extension.HeaderIDs)
	c.Extension.FrontMatterDelimiter = cloneString(o.Extension.FrontMatterDelimiter)
	c.Parse.DefaultInfoString = cloneString(o.Parse.DefaultInfoString)
	return &c
}

// StringPtr returns a pointer to a copy of value.
func StringPtr(value string) *string {
	v := value
	return &v
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	return StringPtr(*s)
}

func orDefaults(o *Options) *Options {
	if o == nil {
		return NewOptions()
	}
	return o
}
