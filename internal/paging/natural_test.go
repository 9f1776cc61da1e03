package paging_test

import (
	"reflect"
	"testing"

	"parlo/internal/paging"
)

func TestSortNatural(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{
			name:  "numeric runs compare by value",
			input: []string{"item9", "item10", "item2"},
			want:  []string{"item2", "item9", "item10"},
		},
		{
			name:  "hundreds after tens",
			input: []string{"lesson100", "lesson9", "lesson10"},
			want:  []string{"lesson9", "lesson10", "lesson100"},
		},
		{
			name:  "case folded",
			input: []string{"Beta", "alfa", "Gamma"},
			want:  []string{"alfa", "Beta", "Gamma"},
		},
		{
			name:  "path segments compared independently",
			input: []string{"unit10/lesson1", "unit2/lesson1", "unit2/lesson10", "unit2/lesson2"},
			want:  []string{"unit2/lesson1", "unit2/lesson2", "unit2/lesson10", "unit10/lesson1"},
		},
		{
			name:  "leading zeros",
			input: []string{"cap007", "cap2", "cap010"},
			want:  []string{"cap2", "cap007", "cap010"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := make([]string, len(tc.input))
			copy(got, tc.input)
			paging.SortNatural(got)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("SortNatural(%v) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}
