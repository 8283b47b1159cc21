package validate

import "sort"

// sortedKeys gives the checks a deterministic traversal order; Go maps do
// not preserve insertion order the way the extraction results are built.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
