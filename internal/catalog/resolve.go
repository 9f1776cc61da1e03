package catalog

import (
	"regexp"
	"sort"
	"strings"
)

// lineCountSuffix matches the decorative "(N líneas)" suffix that listing
// output appends to keys, so a copied listing line still resolves.
var lineCountSuffix = regexp.MustCompile(`(?i)\s*\(\s*\d+\s+l[ií]neas\s*\)\s*$`)

// CleanMaterialName strips the listing decoration and surrounding quote
// characters from a user-supplied material name.
func CleanMaterialName(name string) string {
	name = strings.TrimSpace(name)
	name = lineCountSuffix.ReplaceAllString(name, "")
	return strings.Trim(name, " '\"“”‘’")
}

// Resolve maps a possibly imprecise name to exactly one material key.
// Precedence: exact match, case-insensitive match, then basename/suffix
// match. When several keys share the basename the longest key wins, on the
// assumption that deeper paths are more specific.
func (d *Directory) Resolve(input string) (string, bool) {
	name := CleanMaterialName(input)
	if name == "" {
		return "", false
	}
	if _, ok := d.materials[name]; ok {
		return name, true
	}

	lower := strings.ToLower(name)
	for _, key := range d.Keys() {
		if strings.ToLower(key) == lower {
			return key, true
		}
	}

	var candidates []string
	for _, key := range d.Keys() {
		lowerKey := strings.ToLower(key)
		if strings.HasSuffix(lowerKey, "/"+lower) || strings.ToLower(baseName(key)) == lower {
			candidates = append(candidates, key)
		}
	}
	switch len(candidates) {
	case 0:
		return "", false
	case 1:
		return candidates[0], true
	default:
		sort.Slice(candidates, func(a, b int) bool {
			if len(candidates[a]) != len(candidates[b]) {
				return len(candidates[a]) < len(candidates[b])
			}
			return candidates[a] < candidates[b]
		})
		return candidates[len(candidates)-1], true
	}
}

func baseName(key string) string {
	if idx := strings.LastIndex(key, "/"); idx >= 0 {
		return key[idx+1:]
	}
	return key
}
