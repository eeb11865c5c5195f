package organizer

import "strings"

// Edit replaces the text between (StartLine, StartCol) and (EndLine, EndCol)
// with Text. Lines and columns are zero based; columns count bytes.
type Edit struct {
	StartLine int
	StartCol  int
	EndLine   int
	EndCol    int
	Text      string
}

func newEdit(lines []string, b block, rendered []string, eol string) *Edit {
	return &Edit{
		StartLine: b.start,
		StartCol:  0,
		EndLine:   b.end,
		EndCol:    len(strings.TrimSuffix(lines[b.end], "\r")),
		Text:      strings.Join(rendered, eol),
	}
}

// Offsets converts the edit range to byte offsets into text
func (e *Edit) Offsets(text string) (start, end int) {
	line, offset := 0, 0
	for line < e.StartLine {
		offset += strings.IndexByte(text[offset:], '\n') + 1
		line++
	}
	start = offset + e.StartCol
	for line < e.EndLine {
		offset += strings.IndexByte(text[offset:], '\n') + 1
		line++
	}
	return start, offset + e.EndCol
}

// Apply returns text with the edit applied
func (e *Edit) Apply(text string) string {
	start, end := e.Offsets(text)
	return text[:start] + e.Text + text[end:]
}

// lineEnding returns the line terminator used by text
func lineEnding(text string) string {
	if i := strings.IndexByte(text, '\n'); i > 0 && text[i-1] == '\r' {
		return "\r\n"
	}
	return "\n"
}
