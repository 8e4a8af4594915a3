package mdffi

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/ast"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"go.uber.org/zap"
)

// CommonMark behaviour the engine always has on, independent of options.
const baseExtensions = parser.FencedCode | parser.NoIntraEmphasis | parser.SpaceHeadings | parser.BackslashLineBreak

// MarkdownToHTML renders text as HTML. A nil o means default options.
func MarkdownToHTML(text string, o *Options) (string, error) {
	o = orDefaults(o)
	_, body := splitFrontMatter(normalizeNewlines(text), o.Extension.FrontMatterDelimiter)

	out, err := renderSafely(func() []byte {
		doc := parseDocument(body, o, o.Render.FullInfoString)
		return markdown.Render(doc, newHTMLRenderer(o))
	})
	if err != nil {
		return "", err
	}

	result := string(out)
	if o.Render.Sanitize {
		result = sanitizer().Sanitize(result)
	}
	Logger().Debug("rendered markdown",
		zap.String("format", "html"),
		zap.Int("input_bytes", len(text)),
		zap.Int("output_bytes", len(result)))
	return result, nil
}

// MarkdownToHTMLBytes validates raw as UTF-8 before rendering it as HTML.
func MarkdownToHTMLBytes(raw []byte, o *Options) (string, error) {
	text, err := DecodeText(raw)
	if err != nil {
		return "", err
	}
	return MarkdownToHTML(text, o)
}

// MarkdownToCommonMark normalizes text to CommonMark. Front matter is kept
// verbatim at the top and Render.Width, when set, wraps plain paragraphs.
func MarkdownToCommonMark(text string, o *Options) (string, error) {
	o = orDefaults(o)
	front, body := splitFrontMatter(normalizeNewlines(text), o.Extension.FrontMatterDelimiter)

	out, err := renderSafely(func() []byte {
		doc := parseDocument(body, o, true)
		return markdown.Render(doc, newCommonMarkRenderer())
	})
	if err != nil {
		return "", err
	}

	result := string(out)
	if o.Render.Width > 0 {
		result = wrapParagraphs(result, int(o.Render.Width))
	}
	Logger().Debug("rendered markdown",
		zap.String("format", "commonmark"),
		zap.Int("input_bytes", len(text)),
		zap.Int("output_bytes", len(result)))
	return front + result, nil
}

func parserExtensions(o *Options) parser.Extensions {
	ext := baseExtensions
	if o.Extension.Strikethrough {
		ext |= parser.Strikethrough
	}
	if o.Extension.Table {
		ext |= parser.Tables
	}
	if o.Extension.Autolink {
		ext |= parser.Autolink
	}
	if o.Extension.Superscript {
		ext |= parser.SuperSubscript
	}
	if o.Extension.HeaderIDs != nil {
		ext |= parser.AutoHeadingIDs
	}
	if o.Extension.Footnotes {
		ext |= parser.Footnotes
	}
	if o.Extension.DescriptionLists {
		ext |= parser.DefinitionLists
	}
	if o.Render.Hardbreaks {
		ext |= parser.HardLineBreak
	}
	return ext
}

// parseDocument parses body into an AST. Parsers are single use, so a new
// one is built per call. keepInfo restores full fence info strings, which the
// parser truncates to their first word.
func parseDocument(body string, o *Options, keepInfo bool) ast.Node {
	p := parser.NewWithExtensions(parserExtensions(o))
	doc := p.Parse([]byte(body))

	fenced := fencedCodeBlocks(doc)
	if keepInfo {
		infos := scanFenceInfo(body)
		// A mismatch means a fence-like line was not a fence (for example
		// inside an indented code block); keep the parser's view then.
		if len(infos) == len(fenced) {
			for i, cb := range fenced {
				cb.Info = []byte(infos[i])
			}
		}
	}
	if o.Parse.DefaultInfoString != nil {
		for _, cb := range fenced {
			if len(bytes.TrimSpace(cb.Info)) == 0 {
				cb.Info = []byte(*o.Parse.DefaultInfoString)
			}
		}
	}
	return doc
}

func fencedCodeBlocks(doc ast.Node) []*ast.CodeBlock {
	var blocks []*ast.CodeBlock
	ast.WalkFunc(doc, func(node ast.Node, entering bool) ast.WalkStatus {
		if cb, ok := node.(*ast.CodeBlock); ok && entering && cb.IsFenced {
			blocks = append(blocks, cb)
		}
		return ast.GoToNext
	})
	return blocks
}

func newHTMLRenderer(o *Options) *html.Renderer {
	flags := html.UseXHTML
	if o.Parse.Smart {
		flags |= html.Smartypants | html.SmartypantsDashes
	}

	opts := html.RendererOptions{
		Flags:          flags,
		RenderNodeHook: renderHook{o: o}.render,
	}
	if o.Extension.HeaderIDs != nil {
		opts.HeadingIDPrefix = *o.Extension.HeaderIDs
	}
	return html.NewRenderer(opts)
}

// renderSafely turns a panic inside the engine into a RenderError so that it
// never unwinds through an exported function.
func renderSafely(fn func() []byte) (out []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			Logger().Error("markdown engine panicked", zap.Any("panic", r))
			out = nil
			err = newRenderError("engine panicked", fmt.Errorf("%v", r))
		}
	}()
	return fn(), nil
}

func normalizeNewlines(text string) string {
	if !strings.Contains(text, "\r") {
		return text
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}
