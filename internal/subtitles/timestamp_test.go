package subtitles_test

import (
	"math"
	"testing"

	"parlo/internal/subtitles"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{name: "hours minutes seconds", input: "01:02:03.456", want: 3723.456},
		{name: "minutes seconds", input: "02:03.456", want: 123.456},
		{name: "bare seconds", input: "3.5", want: 3.5},
		{name: "comma separator", input: "01:02:03,456", want: 3723.456},
		{name: "surrounding whitespace", input: " 00:05.000 ", want: 5},
		{name: "whole seconds", input: "00:01:00", want: 60},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := subtitles.ParseTimestamp(tc.input)
			if err != nil {
				t.Fatalf("ParseTimestamp(%q) returned error: %v", tc.input, err)
			}
			if math.Abs(got-tc.want) > 1e-9 {
				t.Fatalf("ParseTimestamp(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestParseTimestampCommaMatchesDot(t *testing.T) {
	dot, err := subtitles.ParseTimestamp("00:10:42.250")
	if err != nil {
		t.Fatalf("dot form: %v", err)
	}
	comma, err := subtitles.ParseTimestamp("00:10:42,250")
	if err != nil {
		t.Fatalf("comma form: %v", err)
	}
	if dot != comma {
		t.Fatalf("comma and dot forms diverge: %v vs %v", comma, dot)
	}
}

func TestParseTimestampRejectsGarbage(t *testing.T) {
	for _, input := range []string{"", "aa:bb:cc", "1:2:3:4", "12:xx.000", "abc"} {
		if _, err := subtitles.ParseTimestamp(input); err == nil {
			t.Errorf("ParseTimestamp(%q) succeeded, want error", input)
		}
	}
}
