package paging

import (
	"sort"
	"strings"
)

// SortNatural orders keys so that numeric runs compare by value and
// everything else compares case-insensitively, segment by path segment.
func SortNatural(keys []string) {
	sort.SliceStable(keys, func(a, b int) bool {
		return naturalLess(keys[a], keys[b])
	})
}

func naturalLess(a, b string) bool {
	segmentsA := strings.Split(a, "/")
	segmentsB := strings.Split(b, "/")
	for i := 0; i < len(segmentsA) && i < len(segmentsB); i++ {
		if cmp := compareSegments(segmentsA[i], segmentsB[i]); cmp != 0 {
			return cmp < 0
		}
	}
	if len(segmentsA) != len(segmentsB) {
		return len(segmentsA) < len(segmentsB)
	}
	return a < b
}

func compareSegments(a, b string) int {
	tokensA := splitRuns(a)
	tokensB := splitRuns(b)
	for i := 0; i < len(tokensA) && i < len(tokensB); i++ {
		ta, tb := tokensA[i], tokensB[i]
		switch {
		case ta.numeric && tb.numeric:
			if cmp := compareNumbers(ta.text, tb.text); cmp != 0 {
				return cmp
			}
		case ta.numeric != tb.numeric:
			// Numbers sort before words at the same position.
			if ta.numeric {
				return -1
			}
			return 1
		default:
			la, lb := strings.ToLower(ta.text), strings.ToLower(tb.text)
			if la != lb {
				if la < lb {
					return -1
				}
				return 1
			}
		}
	}
	return len(tokensA) - len(tokensB)
}

type run struct {
	text    string
	numeric bool
}

// splitRuns breaks a segment into alternating digit and non-digit runs.
func splitRuns(s string) []run {
	var runs []run
	start := 0
	current := false
	for i, r := range s {
		digit := r >= '0' && r <= '9'
		if i == 0 {
			current = digit
			continue
		}
		if digit != current {
			runs = append(runs, run{text: s[start:i], numeric: current})
			start = i
			current = digit
		}
	}
	if start < len(s) {
		runs = append(runs, run{text: s[start:], numeric: current})
	}
	return runs
}

// compareNumbers compares two digit strings by value without overflow:
// shorter (after stripping leading zeros) means smaller.
func compareNumbers(a, b string) int {
	ta := strings.TrimLeft(a, "0")
	tb := strings.TrimLeft(b, "0")
	if len(ta) != len(tb) {
		return len(ta) - len(tb)
	}
	if ta != tb {
		if ta < tb {
			return -1
		}
		return 1
	}
	return 0
}
