package organizer

import (
	"cmp"
	"slices"
	"strings"
	"unicode/utf8"
)

// bucket is the precedence rank of a record in the organized block
type bucket int

const (
	pinnedBucket bucket = iota
	namespaceBucket
	namedBucket
	mixedBucket
	defaultBucket
	sideEffectBucket
	bucketCount
)

func bucketOf(rec Record) bucket {
	if rec.Pinned {
		return pinnedBucket
	}
	switch rec.Kind {
	case KindNamespace:
		return namespaceBucket
	case KindNamed:
		return namedBucket
	case KindMixed:
		return mixedBucket
	case KindDefault:
		return defaultBucket
	}
	return sideEffectBucket
}

// partition buckets records by precedence and sorts each bucket for style
func partition(records []Record, style FormatStyle) []Record {
	var buckets [bucketCount][]Record
	for _, rec := range records {
		if rec.Separator() {
			continue
		}
		b := bucketOf(rec)
		buckets[b] = append(buckets[b], rec)
	}

	out := make([]Record, 0, len(records))
	for _, recs := range buckets {
		sortBucket(recs, style)
		out = append(out, recs...)
	}
	return out
}

// sortBucket sorts by module path for the aligned style and by specifier
// length otherwise. Both sorts are stable.
func sortBucket(records []Record, style FormatStyle) {
	if style == StyleAligned {
		slices.SortStableFunc(records, func(a, b Record) int {
			return strings.Compare(a.Path, b.Path)
		})
		return
	}
	slices.SortStableFunc(records, func(a, b Record) int {
		return cmp.Compare(length(a.Specifier), length(b.Specifier))
	})
}

// length counts runes, so a tab or a CJK character is one
func length(s string) int {
	return utf8.RuneCountInString(s)
}
