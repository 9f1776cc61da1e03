package subtitles

// Cue is one line of subtitle or transcript text with offsets in seconds.
// Parsers only emit cues with End > Start and non-empty Text.
type Cue struct {
	Start float64
	End   float64
	Text  string
}

// Duration returns the cue length in seconds.
func (c Cue) Duration() float64 {
	return c.End - c.Start
}
