package organizer

// groupOrder is the order in which source classes are emitted
var groupOrder = []SourceClass{ClassExternal, ClassAlias, ClassRelative}

// groupByClass splits the sorted records into external, alias and relative
// groups, keeping their relative order, and puts a separator between
// consecutive non-empty groups. Pinned records come first and are not grouped.
func groupByClass(sorted []Record) []Record {
	var pinned []Record
	groups := make(map[SourceClass][]Record, len(groupOrder))
	for _, rec := range sorted {
		switch {
		case rec.Separator():
		case rec.Pinned:
			pinned = append(pinned, rec)
		case rec.Class == ClassUnknown:
			groups[ClassExternal] = append(groups[ClassExternal], rec)
		default:
			groups[rec.Class] = append(groups[rec.Class], rec)
		}
	}

	out := make([]Record, 0, len(sorted)+len(groupOrder))
	out = append(out, pinned...)
	wrote := false
	for _, class := range groupOrder {
		group := groups[class]
		if len(group) == 0 {
			continue
		}
		if wrote {
			out = append(out, separator())
		}
		out = append(out, group...)
		wrote = true
	}
	return out
}
