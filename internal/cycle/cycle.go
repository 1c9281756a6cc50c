// Package cycle computes the rotation of schemes used by "huectl cycle".
package cycle

// BuildList returns the cycle list: the default scheme first (when set),
// followed by the preferred schemes in order. Only the first occurrence of a
// name is kept, so a scheme repeated within the preferred list is visited
// once per rotation rather than once per entry.
func BuildList(defaultScheme string, preferred []string) []string {
	list := make([]string, 0, len(preferred)+1)
	seen := make(map[string]bool, len(preferred)+1)
	for _, name := range append([]string{defaultScheme}, preferred...) {
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		list = append(list, name)
	}
	return list
}

// Next returns the scheme after current in list, wrapping around at the end.
// An empty or unknown current yields list[0]; an empty list yields current.
func Next(current string, list []string) string {
	if len(list) == 0 {
		return current
	}
	for i, name := range list {
		if name == current {
			return list[(i+1)%len(list)]
		}
	}
	return list[0]
}
