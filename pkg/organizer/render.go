package organizer

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// render returns one output line per record. Aligned padding is computed from
// the specifier length, or from terminal columns when displayWidth is set.
func render(records []Record, style FormatStyle, displayWidth bool) []string {
	measure := length
	if displayWidth {
		measure = columns
	}

	maxWidth := 0
	if style == StyleAligned {
		for _, rec := range records {
			if !rec.Separator() {
				maxWidth = max(maxWidth, measure(rec.Specifier))
			}
		}
	}

	lines := make([]string, len(records))
	for i, rec := range records {
		switch {
		case rec.Separator():
			lines[i] = ""
		case rec.IsSideEffect():
			lines[i] = "import " + rec.Path + ";"
		case style == StyleAligned:
			pad := strings.Repeat(" ", maxWidth-measure(rec.Specifier)+1)
			lines[i] = "import " + rec.Specifier + pad + "from " + rec.Path + ";"
		default:
			lines[i] = "import " + rec.Specifier + " from " + rec.Path + ";"
		}
	}
	return lines
}

// columns is the terminal width of s. Every rune takes at least one column,
// so tabs and zero-width runes still push "from" to the right.
func columns(s string) int {
	n := 0
	for _, r := range s {
		n += max(runewidth.RuneWidth(r), 1)
	}
	return n
}
