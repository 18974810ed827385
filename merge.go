package localization

import (
	"maps"
	"slices"
)

// mergeTables merges the resolved language's table over the default
// language's table. Keys present in resolved win; keys present only in the
// default are copied in and reported through onMissing with their dotted
// path. When both tables hold a group at the same key the merge recurses, so
// partially translated nested groups are filled field by field.
//
// A key is considered translated when it is present in resolved, even when
// its text is empty; only absent keys fall back to the default.
func mergeTables(def, res Table, onMissing func(path string)) Table {
	return mergeLevel(def, res, "", onMissing)
}

func mergeLevel(def, res Table, prefix string, onMissing func(path string)) Table {
	merged := make(Table, max(len(def), len(res)))
	maps.Copy(merged, res)

	// Sorted iteration keeps the missing-key diagnostics deterministic.
	for _, key := range slices.Sorted(maps.Keys(def)) {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}

		dv := def[key]
		rv, ok := res[key]
		if !ok {
			merged[key] = dv
			onMissing(path)
			continue
		}
		if dv.kind == kindGroup && rv.kind == kindGroup {
			merged[key] = Value{
				kind:  kindGroup,
				group: mergeLevel(dv.group, rv.group, path, onMissing),
			}
		}
		// Leaf or kind mismatch: the resolved language's value stands.
	}

	return merged
}
