package organizer

import (
	"regexp"
	"strings"
)

const identPattern = `[A-Za-z_$][A-Za-z0-9_$]*`

var (
	namedPattern     = `\{\s*[^{}\s][^{}]*\}`
	specifierPattern = `(?:` + identPattern + `\s*,\s*` + namedPattern +
		`|` + namedPattern +
		`|\*\s+as\s+` + identPattern +
		`|` + identPattern + `)`

	// importLine matches a complete single-line import statement. Group 1 is
	// the specifier (empty for side-effect imports), group 2 the quoted path.
	importLine = regexp.MustCompile(`^import\s+(?:(` + specifierPattern + `)\s+from\s+)?('[^'"]+'|"[^'"]+")\s*;?$`)
)

// block is the contiguous run of import lines found in a document
type block struct {
	start   int // index of the first import line
	end     int // index of the last import line
	records []Record
}

// parseLine parses a trimmed line into a Record
func parseLine(line, pinnedMarker string) (Record, bool) {
	m := importLine.FindStringSubmatch(line)
	if m == nil {
		return Record{}, false
	}
	rec := Record{
		Raw:       line,
		Specifier: m[1],
		Path:      m[2],
		Kind:      kindOf(m[1]),
	}
	rec.Pinned = pinnedMarker != "" && strings.Contains(rec.Path, pinnedMarker)
	return rec, true
}

func kindOf(specifier string) Kind {
	switch {
	case specifier == "":
		return KindSideEffect
	case strings.HasPrefix(specifier, "*"):
		return KindNamespace
	case strings.HasPrefix(specifier, "{"):
		return KindNamed
	case strings.Contains(specifier, "{"):
		return KindMixed
	default:
		return KindDefault
	}
}

func isComment(line string) bool {
	return strings.HasPrefix(line, "//") || strings.HasPrefix(line, "/*") || strings.HasPrefix(line, "*")
}

// extractBlock scans lines top-down for the leading import block. Lines before
// the first import are ignored; once an import was seen, blank and comment
// lines are tolerated and anything else ends the block. An import-like line
// that fails to parse, e.g. "import {} from 'x';", ends it as well.
func extractBlock(lines []string, pinnedMarker string) (block, bool) {
	b := block{start: -1, end: -1}
	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if rec, ok := parseLine(line, pinnedMarker); ok {
			if b.start == -1 {
				b.start = i
			}
			b.end = i
			b.records = append(b.records, rec)
			continue
		}
		if b.start != -1 && line != "" && !isComment(line) {
			break
		}
	}
	if len(b.records) == 0 {
		return block{}, false
	}
	return b, true
}
