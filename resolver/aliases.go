package resolver

import (
	"sort"

	"github.com/benn-herrera/gladfortran/model"
)

// CollectAliases groups commands by the entry point they alias. The result
// maps each canonical command name to the sorted names of the commands in the
// list that alias it. Canonical commands absent from the list still get an
// entry so the aliasing commands stay discoverable.
func CollectAliases(commands []model.Command) map[string][]string {
	aliases := make(map[string][]string)
	for _, c := range commands {
		if c.Alias == "" || c.Alias == c.Name {
			continue
		}
		aliases[c.Alias] = append(aliases[c.Alias], c.Name)
	}
	for name := range aliases {
		sort.Strings(aliases[name])
	}
	return aliases
}
