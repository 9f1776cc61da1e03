// Package language normalizes translation target codes.
package language

import "strings"

type entry struct {
	code    string // ISO 639-1
	display string
	words   []string
}

var languages = []entry{
	{"es", "Español", []string{"spanish", "español", "espanol", "castellano"}},
	{"en", "English", []string{"english", "inglés", "ingles"}},
	{"fr", "Français", []string{"french", "francés", "frances"}},
	{"de", "Deutsch", []string{"german", "alemán", "aleman"}},
	{"it", "Italiano", []string{"italian", "italiano"}},
	{"pt", "Português", []string{"portuguese", "portugués", "portugues"}},
	{"ja", "日本語", []string{"japanese", "japonés", "japones"}},
	{"zh", "中文", []string{"chinese", "chino"}},
	{"ru", "Русский", []string{"russian", "ruso"}},
	{"ar", "العربية", []string{"arabic", "árabe", "arabe"}},
	{"nl", "Nederlands", []string{"dutch", "neerlandés", "neerlandes"}},
	{"pl", "Polski", []string{"polish", "polaco"}},
}

var (
	byCode map[string]*entry
	byWord map[string]*entry
)

func init() {
	byCode = make(map[string]*entry, len(languages))
	byWord = make(map[string]*entry, len(languages)*2)
	for i := range languages {
		e := &languages[i]
		byCode[e.code] = e
		for _, w := range e.words {
			byWord[w] = e
		}
	}
}

func lookup(value string) *entry {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return nil
	}
	if e, ok := byCode[value]; ok {
		return e
	}
	if e, ok := byWord[value]; ok {
		return e
	}
	return nil
}

// Normalize converts a language code or name to its ISO 639-1 code.
// Unrecognized two-letter codes pass through; anything else yields "".
func Normalize(value string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return ""
	}
	if e := lookup(value); e != nil {
		return e.code
	}
	if len(value) == 2 {
		return value
	}
	return ""
}

// DisplayName returns a human-readable name for a recognized code, or the
// uppercased code itself for unrecognized input.
func DisplayName(value string) string {
	if e := lookup(value); e != nil {
		return e.display
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return "Unknown"
	}
	return strings.ToUpper(value)
}
