package resolver

import (
	"sort"

	"github.com/benn-herrera/gladfortran/model"
)

// RemoveEmptyEnums drops enum types that resolve to no enumerants in the
// feature set, together with every type whose alias chain reaches one of them.
// Some registries ship empty enum groups, and declaring them would produce
// invalid output. Returns the removed type names, sorted.
func RemoveEmptyEnums(fs *model.FeatureSet) []string {
	removed := make(map[string]bool)
	for i := range fs.Types {
		t := &fs.Types[i]
		if t.IsEnum() && t.Alias == "" && len(fs.EnumsFor(t)) == 0 {
			removed[t.Name] = true
		}
	}
	if len(removed) == 0 {
		return nil
	}

	// Follow alias chains until no new type is reached.
	for changed := true; changed; {
		changed = false
		for _, t := range fs.Types {
			if t.Alias != "" && removed[t.Alias] && !removed[t.Name] {
				removed[t.Name] = true
				changed = true
			}
		}
	}

	kept := fs.Types[:0]
	for _, t := range fs.Types {
		if !removed[t.Name] {
			kept = append(kept, t)
		}
	}
	fs.Types = kept

	names := make([]string, 0, len(removed))
	for name := range removed {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
