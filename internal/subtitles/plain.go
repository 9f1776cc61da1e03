package subtitles

import (
	"regexp"
	"strings"
)

const (
	// defaultWordsPerSecond paces synthetic cue timing for untimed transcripts.
	defaultWordsPerSecond = 2.5
	// minCueDuration keeps very short lines readable.
	minCueDuration = 1.2
)

var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// ParsePlain builds cues from untimed transcript text. Each non-blank line
// becomes one cue; durations derive from word count at a fixed reading rate
// and cues are laid out back to back starting at zero.
func ParsePlain(content string) []Cue {
	var cues []Cue
	offset := 0.0
	for _, line := range strings.Split(normalizeLineEndings(content), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		text := CleanText(line)
		words := len(wordPattern.FindAllString(text, -1))
		duration := float64(words) / defaultWordsPerSecond
		if duration < minCueDuration {
			duration = minCueDuration
		}
		cues = append(cues, Cue{Start: offset, End: offset + duration, Text: text})
		offset += duration
	}
	return cues
}
