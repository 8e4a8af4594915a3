package mdffi

import (
	"bytes"
	stdhtml "html"
	"io"
	"regexp"
	"strings"
	"sync"

	"github.com/gomarkdown/markdown/ast"
	"github.com/microcosm-cc/bluemonday"
)

const rawHTMLOmitted = "<!-- raw HTML omitted -->"

var (
	// GFM tag filter: these tags have their opening "<" escaped.
	filteredTag = regexp.MustCompile(`(?i)<(/?)(title|textarea|style|xmp|iframe|noembed|noframes|script|plaintext)([\s/>]|$)`)

	taskMarker        = regexp.MustCompile(`^\[([ xX])\](?:[ \t]|$)`)
	relaxedTaskMarker = regexp.MustCompile(`^\[([^\]\n])\](?:[ \t]|$)`)

	fenceLine = regexp.MustCompile("^(`{3,}|~{3,})(.*)$")

	// Link protocols blanked unless Render.Unsafe is set. Inline images in
	// common raster formats are allowed.
	unsafeURL = regexp.MustCompile(`(?i)^(?:javascript:|vbscript:|file:|data:)`)
	safeData  = regexp.MustCompile(`(?i)^data:image/(?:png|gif|jpeg|webp)[;,]`)
)

// renderHook applies the options the HTML renderer has no flag for.
type renderHook struct {
	o *Options
}

func (h renderHook) render(w io.Writer, node ast.Node, entering bool) (ast.WalkStatus, bool) {
	switch n := node.(type) {
	case *ast.HTMLBlock:
		h.rawHTML(w, n.Literal, true)
		return ast.GoToNext, true
	case *ast.HTMLSpan:
		h.rawHTML(w, n.Literal, false)
		return ast.GoToNext, true
	case *ast.CodeBlock:
		if h.o.Render.GithubPreLang || h.o.Render.FullInfoString {
			h.codeBlock(w, n)
			return ast.GoToNext, true
		}
	case *ast.Link:
		if entering && n.NoteID == 0 && !h.o.Render.Unsafe && isUnsafeURL(n.Destination) {
			n.Destination = nil
		}
	case *ast.Image:
		if entering && !h.o.Render.Unsafe && isUnsafeURL(n.Destination) {
			n.Destination = nil
		}
	case *ast.Text:
		if entering && h.o.Extension.Tasklist && h.taskItem(w, n) {
			return ast.GoToNext, true
		}
	}
	return ast.GoToNext, false
}

// rawHTML writes inline or block HTML. Escape wins over Unsafe; without
// either the HTML is replaced by a comment.
func (h renderHook) rawHTML(w io.Writer, literal []byte, block bool) {
	if block {
		literal = []byte(strings.TrimRight(string(literal), "\n"))
	}
	switch {
	case h.o.Render.Escape:
		io.WriteString(w, stdhtml.EscapeString(string(literal)))
	case !h.o.Render.Unsafe:
		io.WriteString(w, rawHTMLOmitted)
	case h.o.Extension.Tagfilter:
		w.Write(filterTags(literal))
	default:
		w.Write(literal)
	}
	if block {
		io.WriteString(w, "\n")
	}
}

func isUnsafeURL(dest []byte) bool {
	d := bytes.TrimSpace(dest)
	return unsafeURL.Match(d) && !safeData.Match(d)
}

func filterTags(literal []byte) []byte {
	return filteredTag.ReplaceAll(literal, []byte("&lt;${1}${2}${3}"))
}

func (h renderHook) codeBlock(w io.Writer, cb *ast.CodeBlock) {
	info := strings.TrimSpace(string(cb.Info))
	lang, meta, _ := strings.Cut(info, " ")
	meta = strings.TrimSpace(meta)
	if !h.o.Render.FullInfoString {
		meta = ""
	}

	io.WriteString(w, "<pre")
	if h.o.Render.GithubPreLang {
		if lang != "" {
			io.WriteString(w, ` lang="`+stdhtml.EscapeString(lang)+`"`)
		}
		if meta != "" {
			io.WriteString(w, ` data-meta="`+stdhtml.EscapeString(meta)+`"`)
		}
		io.WriteString(w, "><code>")
	} else {
		io.WriteString(w, "><code")
		if lang != "" {
			io.WriteString(w, ` class="language-`+stdhtml.EscapeString(lang)+`"`)
		}
		if meta != "" {
			io.WriteString(w, ` data-meta="`+stdhtml.EscapeString(meta)+`"`)
		}
		io.WriteString(w, ">")
	}
	io.WriteString(w, stdhtml.EscapeString(string(cb.Literal)))
	io.WriteString(w, "</code></pre>\n")
}

// taskItem renders the leading "[ ] " of a list item's first paragraph as a
// disabled checkbox. It reports false when t is not such a marker.
func (h renderHook) taskItem(w io.Writer, t *ast.Text) bool {
	para, ok := t.GetParent().(*ast.Paragraph)
	if !ok || firstChild(para) != ast.Node(t) {
		return false
	}
	item, ok := para.GetParent().(*ast.ListItem)
	if !ok || firstChild(item) != ast.Node(para) {
		return false
	}

	marker := taskMarker
	if h.o.Parse.RelaxedTasklistMatching {
		marker = relaxedTaskMarker
	}
	m := marker.FindSubmatch(t.Literal)
	if m == nil {
		return false
	}

	io.WriteString(w, `<input type="checkbox" disabled=""`)
	if string(m[1]) != " " {
		io.WriteString(w, ` checked=""`)
	}
	io.WriteString(w, " /> ")
	io.WriteString(w, stdhtml.EscapeString(string(t.Literal[len(m[0]):])))
	return true
}

func firstChild(n ast.Node) ast.Node {
	children := n.GetChildren()
	if len(children) == 0 {
		return nil
	}
	return children[0]
}

// scanFenceInfo returns the info string of every opening code fence in
// document order. Block quote markers and indentation are ignored so that
// fences nested in quotes and lists line up with the parsed blocks.
func scanFenceInfo(body string) []string {
	var (
		infos []string
		open  string
	)
	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimLeft(line, " \t>")
		m := fenceLine.FindStringSubmatch(trimmed)
		if m == nil {
			continue
		}
		fence, rest := m[1], strings.TrimSpace(m[2])
		if open == "" {
			if fence[0] == '`' && strings.Contains(rest, "`") {
				continue
			}
			open = fence
			infos = append(infos, rest)
			continue
		}
		if fence[0] == open[0] && len(fence) >= len(open) && rest == "" {
			open = ""
		}
	}
	return infos
}

// splitFrontMatter separates a leading block fenced by delimiter lines.
// Without a delimiter, or without a closing line, everything is body.
func splitFrontMatter(text string, delimiter *string) (front, body string) {
	if delimiter == nil || *delimiter == "" {
		return "", text
	}
	d := *delimiter
	first, rest, ok := strings.Cut(text, "\n")
	if !ok || first != d {
		return "", text
	}

	offset := len(first) + 1
	for rest != "" {
		line, next, found := strings.Cut(rest, "\n")
		offset += len(line)
		if found {
			offset++
		}
		if line == d {
			return text[:offset], text[offset:]
		}
		rest = next
	}
	return "", text
}

var (
	sanitizePolicyOnce sync.Once
	sanitizePolicy     *bluemonday.Policy
)

func sanitizer() *bluemonday.Policy {
	sanitizePolicyOnce.Do(func() {
		policy := bluemonday.UGCPolicy()
		policy.AllowAttrs("class").Matching(regexp.MustCompile(`^language-[\w.+-]+$`)).OnElements("code")
		policy.AllowAttrs("data-meta").OnElements("pre", "code")
		policy.AllowAttrs("lang").OnElements("pre")
		policy.AllowAttrs("type", "checked", "disabled").OnElements("input")
		policy.AllowElements("input")
		sanitizePolicy = policy
	})
	return sanitizePolicy
}
