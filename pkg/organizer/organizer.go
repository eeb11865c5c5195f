// Package organizer reorders the leading block of import statements of a
// JavaScript or TypeScript document.
//
// The block is found with line-oriented patterns, so only single-line imports
// are recognized. Records are bucketed (pinned, namespace, named, mixed,
// default, side-effect), sorted inside each bucket, optionally grouped by
// source class, and rendered back in the normal or aligned style.
package organizer

import "strings"

// Organize computes the edit that reorganizes the import block of text. It
// returns nil when text has no import block. The result only depends on text
// and cfg, and organizing the edited text again yields the same block.
func Organize(text string, cfg Config) *Edit {
	lines := strings.Split(text, "\n")
	b, ok := extractBlock(lines, cfg.PinnedMarker)
	if !ok {
		return nil
	}

	records := b.records
	if cfg.OptimizeBarrelImports {
		records = optimizeBarrels(records, cfg.BarrelTargets)
	}
	if cfg.RemoveUnused {
		records = removeUnused(records, strings.Join(lines[b.end+1:], "\n"))
	}
	if cfg.GroupBySourceClass {
		records = classify(records, cfg.PathAliases)
	}

	records = partition(records, cfg.Style)
	if cfg.GroupBySourceClass {
		records = groupByClass(records)
	}

	return newEdit(lines, b, render(records, cfg.Style, cfg.AlignDisplayWidth), lineEnding(text))
}

// Format returns text with its import block organized and whether it changed
func Format(text string, cfg Config) (string, bool) {
	edit := Organize(text, cfg)
	if edit == nil {
		return text, false
	}
	out := edit.Apply(text)
	return out, out != text
}
