package subtitles

import (
	"regexp"
	"sort"
	"strings"
)

// timedRangePattern matches an SRT/VTT cue range line. Hours are optional and
// the millisecond separator may be a comma or a dot.
var timedRangePattern = regexp.MustCompile(
	`(\d{2}:\d{2}:\d{2}[.,]\d{3}|\d{2}:\d{2}[.,]\d{3})\s*-->\s*(\d{2}:\d{2}:\d{2}[.,]\d{3}|\d{2}:\d{2}[.,]\d{3})`,
)

// ParseTimed extracts cues from SRT or WebVTT content. Cue index lines and a
// leading WEBVTT header are tolerated; malformed blocks are skipped. The
// result is sorted ascending by start time.
func ParseTimed(content string) []Cue {
	lines := strings.Split(normalizeLineEndings(content), "\n")
	if len(lines) > 0 && strings.HasPrefix(strings.ToUpper(strings.TrimSpace(lines[0])), "WEBVTT") {
		lines = lines[1:]
	}

	var cues []Cue
	for i := 0; i < len(lines); i++ {
		match := timedRangePattern.FindStringSubmatch(strings.TrimSpace(lines[i]))
		if match == nil && i+1 < len(lines) {
			// SRT blocks carry a numeric index line before the range.
			if next := timedRangePattern.FindStringSubmatch(strings.TrimSpace(lines[i+1])); next != nil {
				match = next
				i++
			}
		}
		if match == nil {
			continue
		}

		start, errStart := ParseTimestamp(match[1])
		end, errEnd := ParseTimestamp(match[2])
		i++

		var block []string
		for i < len(lines) && strings.TrimSpace(lines[i]) != "" {
			block = append(block, lines[i])
			i++
		}
		if errStart != nil || errEnd != nil {
			continue
		}
		text := CleanText(strings.Join(block, " "))
		if end > start && text != "" {
			cues = append(cues, Cue{Start: start, End: end, Text: text})
		}
	}

	sort.Slice(cues, func(a, b int) bool { return cues[a].Start < cues[b].Start })
	return cues
}
