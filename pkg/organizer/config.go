package organizer

// FormatStyle selects how the import block is rendered and sorted
type FormatStyle string

const (
	// StyleNormal sorts each bucket by specifier length and uses a single space before "from"
	StyleNormal FormatStyle = "normal"
	// StyleAligned sorts each bucket by module path and aligns every "from" keyword
	StyleAligned FormatStyle = "aligned"
)

// Config is the per-call configuration of Organize
type Config struct {
	Style                 FormatStyle
	OptimizeBarrelImports bool
	GroupBySourceClass    bool
	RemoveUnused          bool
	PathAliases           []string // checked in order, first match wins
	BarrelTargets         []string // module path substrings eligible for barrel splitting
	PinnedMarker          string   // module path substring forced to the top

	// AlignDisplayWidth pads aligned lines by terminal columns instead of
	// specifier length, for blocks with wide (CJK) characters.
	AlignDisplayWidth bool
}

var (
	DefaultPathAliases = []string{"@/", "~/", "@components/", "@services/", "@utils/", "@hooks/"}

	DefaultBarrelTargets = []string{
		"@mui/material",
		"@mui/icons-material",
		"@mui/lab",
		"@mui/x-data-grid",
		"@mui/x-date-pickers",
	}
)

const DefaultPinnedMarker = "fix-ts-path"

// DefaultConfig returns the documented defaults
func DefaultConfig() Config {
	return Config{
		Style:              StyleAligned,
		GroupBySourceClass: true,
		PathAliases:        append([]string(nil), DefaultPathAliases...),
		BarrelTargets:      append([]string(nil), DefaultBarrelTargets...),
		PinnedMarker:       DefaultPinnedMarker,
	}
}
