package organizer

import "strings"

// Kind is the binding shape of an import; exactly one applies to each record
type Kind int

const (
	KindSideEffect Kind = iota // import './styles.css';
	KindNamespace              // import * as X from 'x';
	KindNamed                  // import { A, B } from 'x';
	KindMixed                  // import D, { A } from 'x';
	KindDefault                // import D from 'x';
)

// SourceClass says where a module path points to
type SourceClass int

const (
	ClassUnknown SourceClass = iota
	ClassExternal
	ClassAlias
	ClassRelative
)

func (c SourceClass) String() string {
	switch c {
	case ClassExternal:
		return "external"
	case ClassAlias:
		return "alias"
	case ClassRelative:
		return "relative"
	}
	return "unknown"
}

// Record represents a single parsed import line
type Record struct {
	Raw       string // trimmed line text, empty for separators
	Specifier string // binding clause as written, empty for side-effect imports
	Path      string // module path with its quotes
	Kind      Kind
	Pinned    bool
	Class     SourceClass
}

func (r Record) IsNamed() bool      { return r.Kind == KindNamed }
func (r Record) IsAsterisk() bool   { return r.Kind == KindNamespace }
func (r Record) IsSideEffect() bool { return r.Kind == KindSideEffect }

// Separator reports whether r is the blank line marker placed between groups
func (r Record) Separator() bool {
	return r.Raw == "" && r.Path == ""
}

// Unquoted returns the module path without its surrounding quotes
func (r Record) Unquoted() string {
	return strings.Trim(r.Path, `'"`)
}

// quote returns the quote character the path was written with
func (r Record) quote() string {
	if strings.HasPrefix(r.Path, `"`) {
		return `"`
	}
	return "'"
}

// defaultName returns the leading identifier of a default or mixed specifier
func (r Record) defaultName() string {
	name, _, _ := strings.Cut(r.Specifier, ",")
	return strings.TrimSpace(name)
}

// namedEntries returns the trimmed, non-empty entries of the brace list
func (r Record) namedEntries() []string {
	open := strings.Index(r.Specifier, "{")
	end := strings.LastIndex(r.Specifier, "}")
	if open < 0 || end <= open {
		return nil
	}
	var entries []string
	for _, e := range strings.Split(r.Specifier[open+1:end], ",") {
		if e = strings.TrimSpace(e); e != "" {
			entries = append(entries, e)
		}
	}
	return entries
}

func separator() Record {
	return Record{}
}
