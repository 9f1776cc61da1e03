package catalog

import (
	"sort"
	"time"

	"parlo/internal/subtitles"
)

// Material is one playable audio/transcript pair.
type Material struct {
	Key       string
	AudioPath string
	Cues      []subtitles.Cue
	// TagTitle is the title from the audio file's metadata tags, when present.
	TagTitle string
}

// Directory maps material keys to materials. A Directory is immutable once
// built; rescans produce a fresh snapshot.
type Directory struct {
	materials map[string]Material
	builtAt   time.Time
}

// NewDirectory wraps a finished material map into a snapshot.
func NewDirectory(materials map[string]Material) *Directory {
	if materials == nil {
		materials = map[string]Material{}
	}
	return &Directory{materials: materials, builtAt: time.Now()}
}

// Get returns the material for an exact key.
func (d *Directory) Get(key string) (Material, bool) {
	m, ok := d.materials[key]
	return m, ok
}

// Keys returns all material keys in sorted order.
func (d *Directory) Keys() []string {
	keys := make([]string, 0, len(d.materials))
	for key := range d.materials {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Len reports the number of materials.
func (d *Directory) Len() int {
	return len(d.materials)
}

// BuiltAt reports when the snapshot was constructed.
func (d *Directory) BuiltAt() time.Time {
	return d.builtAt
}

// CueCount returns the number of cues for a key, zero when absent.
func (d *Directory) CueCount(key string) int {
	return len(d.materials[key].Cues)
}
