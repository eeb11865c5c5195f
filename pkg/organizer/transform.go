package organizer

import (
	"regexp"
	"strings"
)

var bareIdent = regexp.MustCompile(`^` + identPattern + `$`)

// optimizeBarrels rewrites named imports from barrel modules into one default
// import per binding, e.g. import { Button } from '@mui/material' becomes
// import Button from '@mui/material/Button'. Records with aliased or otherwise
// non-trivial bindings are kept as they are.
func optimizeBarrels(records []Record, targets []string) []Record {
	kept := make([]Record, 0, len(records))
	var split []Record
	for _, rec := range records {
		entries, ok := barrelEntries(rec, targets)
		if !ok {
			kept = append(kept, rec)
			continue
		}
		base := strings.TrimSuffix(rec.Unquoted(), "/")
		q := rec.quote()
		for _, name := range entries {
			path := q + base + "/" + name + q
			split = append(split, Record{
				Raw:       "import " + name + " from " + path + ";",
				Specifier: name,
				Path:      path,
				Kind:      KindDefault,
				Pinned:    rec.Pinned,
			})
		}
	}
	return append(kept, split...)
}

// barrelEntries returns the bindings of rec when it can be split
func barrelEntries(rec Record, targets []string) ([]string, bool) {
	if !rec.IsNamed() || !matchesAny(rec.Path, targets) {
		return nil, false
	}
	entries := rec.namedEntries()
	if len(entries) == 0 {
		return nil, false
	}
	for _, e := range entries {
		if !bareIdent.MatchString(e) {
			return nil, false
		}
	}
	return entries, true
}

func matchesAny(path string, targets []string) bool {
	for _, t := range targets {
		if t != "" && strings.Contains(path, t) {
			return true
		}
	}
	return false
}

// removeUnused drops imports whose bindings never appear in body. Side-effect
// and namespace imports are always kept.
func removeUnused(records []Record, body string) []Record {
	kept := make([]Record, 0, len(records))
	for _, rec := range records {
		if isUsed(rec, body) {
			kept = append(kept, rec)
		}
	}
	return kept
}

func isUsed(rec Record, body string) bool {
	switch rec.Kind {
	case KindSideEffect, KindNamespace:
		return true
	case KindNamed:
		for _, e := range rec.namedEntries() {
			name, _, _ := strings.Cut(e, " as ")
			if containsWord(body, strings.TrimSpace(name)) {
				return true
			}
		}
		return false
	default:
		return containsWord(body, rec.defaultName())
	}
}

// containsWord reports whether word occurs in text delimited by non-identifier
// characters on both sides
func containsWord(text, word string) bool {
	if word == "" {
		return false
	}
	for offset := 0; ; {
		i := strings.Index(text[offset:], word)
		if i < 0 {
			return false
		}
		i += offset
		j := i + len(word)
		if (i == 0 || !isIdentByte(text[i-1])) && (j == len(text) || !isIdentByte(text[j])) {
			return true
		}
		offset = i + 1
	}
}

func isIdentByte(c byte) bool {
	return c == '_' || c == '$' ||
		('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9') ||
		c >= 0x80
}

// classify assigns a SourceClass to every record except pinned ones and separators
func classify(records []Record, aliases []string) []Record {
	out := make([]Record, len(records))
	for i, rec := range records {
		if !rec.Pinned && !rec.Separator() {
			rec.Class = classOf(rec.Unquoted(), aliases)
		}
		out[i] = rec
	}
	return out
}

func classOf(path string, aliases []string) SourceClass {
	if strings.HasPrefix(path, "./") || strings.HasPrefix(path, "../") {
		return ClassRelative
	}
	for _, alias := range aliases {
		if alias != "" && strings.HasPrefix(path, alias) {
			return ClassAlias
		}
	}
	return ClassExternal
}
