package mdffi

import (
	"bytes"
	"io"
	"strconv"
	"strings"

	"github.com/gomarkdown/markdown/ast"
	"github.com/gomarkdown/markdown/md"
)

// commonMarkRenderer fills in the nodes md.Renderer does not implement and
// keeps full fence info strings. Everything else goes to md.Renderer.
type commonMarkRenderer struct {
	*md.Renderer
}

func newCommonMarkRenderer() *commonMarkRenderer {
	return &commonMarkRenderer{Renderer: md.NewRenderer()}
}

func (r *commonMarkRenderer) RenderNode(w io.Writer, node ast.Node, entering bool) ast.WalkStatus {
	switch n := node.(type) {
	case *ast.Hardbreak:
		io.WriteString(w, "\\\n")
	case *ast.Softbreak:
		io.WriteString(w, "\n")
	case *ast.HorizontalRule:
		io.WriteString(w, "\n---\n\n")
	case *ast.BlockQuote:
		if entering {
			r.blockQuote(w, n)
		}
		return ast.SkipChildren
	case *ast.Table:
		if entering {
			r.table(w, n)
		}
		return ast.SkipChildren
	case *ast.List:
		if n.IsFootnotesList || n.ListFlags&ast.ListTypeDefinition != 0 {
			return r.Renderer.RenderNode(w, node, entering)
		}
		if entering {
			r.list(w, n)
		}
		return ast.SkipChildren
	case *ast.CodeBlock:
		r.codeBlock(w, n)
	case *ast.Superscript:
		io.WriteString(w, "^"+string(n.Literal)+"^")
	case *ast.Subscript:
		io.WriteString(w, "~"+string(n.Literal)+"~")
	case *ast.Math:
		io.WriteString(w, "$"+string(n.Literal)+"$")
	case *ast.MathBlock:
		if entering {
			io.WriteString(w, "\n$$\n"+string(n.Literal)+"$$\n\n")
		}
	case *ast.Link:
		if n.NoteID == 0 {
			return r.Renderer.RenderNode(w, node, entering)
		}
		if entering {
			io.WriteString(w, "[^"+string(n.Destination)+"]")
		}
		return ast.SkipChildren
	case *ast.ListItem:
		switch {
		case n.RefLink != nil:
			r.footnote(w, n, entering)
		case n.ListFlags&ast.ListTypeTerm != 0:
		case n.ListFlags&ast.ListTypeDefinition != 0:
			if entering {
				io.WriteString(w, ": ")
			}
		default:
			return r.Renderer.RenderNode(w, node, entering)
		}
	case *ast.DocumentMatter, *ast.Aside, *ast.Caption, *ast.CaptionFigure,
		*ast.Citation, *ast.CrossReference, *ast.Callout, *ast.Index:
		// mmark nodes; no mmark extension is enabled
	default:
		return r.Renderer.RenderNode(w, node, entering)
	}
	return ast.GoToNext
}

// renderChildren renders the children of n with a fresh renderer.
func renderChildren(n ast.Node) string {
	var buf bytes.Buffer
	sub := newCommonMarkRenderer()
	for _, child := range n.GetChildren() {
		ast.WalkFunc(child, func(node ast.Node, entering bool) ast.WalkStatus {
			return sub.RenderNode(&buf, node, entering)
		})
	}
	return buf.String()
}

func renderBlock(n ast.Node) string {
	var buf bytes.Buffer
	sub := newCommonMarkRenderer()
	ast.WalkFunc(n, func(node ast.Node, entering bool) ast.WalkStatus {
		return sub.RenderNode(&buf, node, entering)
	})
	return buf.String()
}

// listIndent prefixes continuation lines of a list item. The parser only
// keeps a block after a blank line in the item when it is indented this far.
const listIndent = "    "

func (r *commonMarkRenderer) list(w io.Writer, n *ast.List) {
	number := n.Start
	if number <= 0 {
		number = 1
	}
	first := true
	for _, c := range n.GetChildren() {
		item, ok := c.(*ast.ListItem)
		if !ok {
			continue
		}
		if !first && !n.Tight {
			io.WriteString(w, "\n")
		}
		first = false

		var marker string
		if n.ListFlags&ast.ListTypeOrdered != 0 {
			delim := n.Delimiter
			if delim == 0 {
				delim = '.'
			}
			marker = strconv.Itoa(number) + string(delim) + " "
			number++
		} else {
			bullet := item.BulletChar
			if bullet == 0 {
				bullet = '-'
			}
			marker = string(bullet) + " "
		}
		io.WriteString(w, marker+listItemBody(item, n.Tight)+"\n")
	}
	io.WriteString(w, "\n")
}

// listItemBody renders the blocks of an item, separated by a blank line in
// loose lists. Lines after the first are indented by listIndent.
func listItemBody(item *ast.ListItem, tight bool) string {
	sep := "\n\n"
	if tight {
		sep = "\n"
	}
	var blocks []string
	for _, child := range item.GetChildren() {
		if b := strings.Trim(renderBlock(child), "\n"); b != "" {
			blocks = append(blocks, b)
		}
	}
	lines := strings.Split(strings.Join(blocks, sep), "\n")
	for i := 1; i < len(lines); i++ {
		if lines[i] != "" {
			lines[i] = listIndent + lines[i]
		}
	}
	return strings.Join(lines, "\n")
}

func (r *commonMarkRenderer) blockQuote(w io.Writer, n *ast.BlockQuote) {
	body := strings.Trim(renderChildren(n), "\n")
	io.WriteString(w, "\n")
	for _, line := range strings.Split(body, "\n") {
		if line == "" {
			io.WriteString(w, ">\n")
			continue
		}
		io.WriteString(w, "> "+line+"\n")
	}
	io.WriteString(w, "\n")
}

func (r *commonMarkRenderer) table(w io.Writer, n *ast.Table) {
	var (
		rows   [][]string
		aligns []ast.CellAlignFlags
	)
	ast.WalkFunc(n, func(node ast.Node, entering bool) ast.WalkStatus {
		row, ok := node.(*ast.TableRow)
		if !ok || !entering {
			return ast.GoToNext
		}
		var cells []string
		for _, c := range row.GetChildren() {
			cell, ok := c.(*ast.TableCell)
			if !ok {
				continue
			}
			text := strings.TrimSpace(strings.ReplaceAll(renderChildren(cell), "\n", " "))
			cells = append(cells, strings.ReplaceAll(text, "|", `\|`))
			if len(rows) == 0 {
				aligns = append(aligns, cell.Align)
			}
		}
		rows = append(rows, cells)
		return ast.SkipChildren
	})
	if len(rows) == 0 {
		return
	}

	io.WriteString(w, "\n")
	writeRow := func(cells []string) {
		io.WriteString(w, "| "+strings.Join(cells, " | ")+" |\n")
	}
	writeRow(rows[0])
	seps := make([]string, len(aligns))
	for i, a := range aligns {
		switch a {
		case ast.TableAlignmentLeft:
			seps[i] = ":---"
		case ast.TableAlignmentRight:
			seps[i] = "---:"
		case ast.TableAlignmentCenter:
			seps[i] = ":---:"
		default:
			seps[i] = "---"
		}
	}
	writeRow(seps)
	for _, row := range rows[1:] {
		writeRow(row)
	}
	io.WriteString(w, "\n")
}

func (r *commonMarkRenderer) codeBlock(w io.Writer, n *ast.CodeBlock) {
	if !n.IsFenced {
		io.WriteString(w, "\n")
		for _, line := range strings.SplitAfter(strings.TrimRight(string(n.Literal), "\n"), "\n") {
			io.WriteString(w, "    "+line)
		}
		io.WriteString(w, "\n\n")
		return
	}

	fence := "```"
	for strings.Contains(string(n.Literal), fence) {
		fence += "`"
	}
	io.WriteString(w, "\n"+fence+strings.TrimSpace(string(n.Info))+"\n")
	w.Write(n.Literal)
	if len(n.Literal) > 0 && !bytes.HasSuffix(n.Literal, []byte("\n")) {
		io.WriteString(w, "\n")
	}
	io.WriteString(w, fence+"\n\n")
}

func (r *commonMarkRenderer) footnote(w io.Writer, n *ast.ListItem, entering bool) {
	if entering {
		io.WriteString(w, "[^"+string(n.RefLink)+"]: ")
		return
	}
	for _, c := range n.GetChildren() {
		if _, ok := c.(*ast.Paragraph); ok {
			return
		}
	}
	io.WriteString(w, "\n")
}
