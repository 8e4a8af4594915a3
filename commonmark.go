package mdffi

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	// Lines that open something other than a plain paragraph.
	blockStart = regexp.MustCompile(`^(?:#{1,6}(?:\s|$)|[-+*](?:\s|$)|\d{1,9}[.)](?:\s|$)|>|\||<|\s{4}|\t|[-*_](?:\s*[-*_]){2,}\s*$|=+\s*$|\[\^?[^\]]*\]:)`)

	// Words that would turn a wrapped continuation line into block syntax.
	blockToken = regexp.MustCompile(`^(?:#{1,6}|[-+*]|\d{1,9}[.)]|>|=+|-+|\|.*)$`)
)

// wrapParagraphs re-flows plain paragraphs of CommonMark text to width
// columns. Code, headings, lists, quotes, tables and HTML are left alone, as
// are paragraphs ending lines in hard breaks.
func wrapParagraphs(text string, width int) string {
	if width <= 0 {
		return text
	}
	lines := strings.Split(text, "\n")
	var (
		out   []string
		para  []string
		fence string
	)
	flush := func() {
		if len(para) == 0 {
			return
		}
		if wrappable(para) {
			out = append(out, wrapWords(strings.Fields(strings.Join(para, " ")), width)...)
		} else {
			out = append(out, para...)
		}
		para = para[:0]
	}

	for _, line := range lines {
		if fence != "" {
			out = append(out, line)
			if m := fenceLine.FindStringSubmatch(strings.TrimLeft(line, " ")); m != nil &&
				m[1][0] == fence[0] && len(m[1]) >= len(fence) && strings.TrimSpace(m[2]) == "" {
				fence = ""
			}
			continue
		}
		if m := fenceLine.FindStringSubmatch(strings.TrimLeft(line, " ")); m != nil {
			flush()
			fence = m[1]
			out = append(out, line)
			continue
		}
		if strings.TrimSpace(line) == "" {
			flush()
			out = append(out, line)
			continue
		}
		para = append(para, line)
	}
	flush()
	return strings.Join(out, "\n")
}

func wrappable(para []string) bool {
	if blockStart.MatchString(para[0]) {
		return false
	}
	for _, line := range para {
		if strings.HasSuffix(line, "  ") || strings.HasSuffix(line, "\\") {
			return false
		}
	}
	return true
}

func wrapWords(words []string, width int) []string {
	var (
		lines []string
		cur   strings.Builder
		col   int
	)
	for _, w := range words {
		n := utf8.RuneCountInString(w)
		switch {
		case col == 0:
			cur.WriteString(w)
			col = n
		case col+1+n <= width || blockToken.MatchString(w):
			cur.WriteByte(' ')
			cur.WriteString(w)
			col += 1 + n
		default:
			lines = append(lines, cur.String())
			cur.Reset()
			cur.WriteString(w)
			col = n
		}
	}
	if cur.Len() > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}
