package paging_test

import (
	"fmt"
	"strings"
	"testing"

	"parlo/internal/paging"
)

func keysWithCounts(n int, format string) ([]string, map[string]int) {
	keys := make([]string, 0, n)
	counts := make(map[string]int, n)
	for i := 1; i <= n; i++ {
		key := fmt.Sprintf(format, i)
		keys = append(keys, key)
		counts[key] = i
	}
	return keys, counts
}

func TestBuildPageEmpty(t *testing.T) {
	page := paging.BuildPage("Materiales", nil, nil, 1)
	if !strings.Contains(page, "No he encontrado materiales") {
		t.Fatalf("unexpected empty listing: %q", page)
	}
}

func TestBuildPageSinglePage(t *testing.T) {
	keys, counts := keysWithCounts(25, "curso/leccion%d")
	page := paging.BuildPage("Materiales", keys, counts, 1)

	if !strings.Contains(page, "página 1/1, 25 materiales") {
		t.Fatalf("missing header: %q", page)
	}
	if !strings.Contains(page, "1–10") || !strings.Contains(page, "11–20") || !strings.Contains(page, "21–30") {
		t.Fatalf("missing decade headers: %q", page)
	}
	if !strings.Contains(page, "• curso/leccion3 (3 líneas)") {
		t.Fatalf("missing key line: %q", page)
	}
	// Natural order inside the page.
	if strings.Index(page, "leccion9 ") > strings.Index(page, "leccion10 ") {
		t.Fatalf("keys not naturally ordered: %q", page)
	}
}

func TestBuildPagePagination(t *testing.T) {
	keys, counts := keysWithCounts(150, "curso/leccion%d")

	first := paging.BuildPage("Materiales", keys, counts, 1)
	if !strings.Contains(first, "página 1/2") {
		t.Fatalf("unexpected first page header: %q", first)
	}
	if strings.Contains(first, "• curso/leccion101 ") {
		t.Fatalf("page 1 leaked page 2 content")
	}

	second := paging.BuildPage("Materiales", keys, counts, 2)
	if !strings.Contains(second, "página 2/2") {
		t.Fatalf("unexpected second page header: %q", second)
	}
	if !strings.Contains(second, "• curso/leccion101 ") || !strings.Contains(second, "• curso/leccion150 ") {
		t.Fatalf("page 2 missing expected keys: %q", second)
	}
	if strings.Contains(second, "• curso/leccion100 ") {
		t.Fatalf("page 2 contains page 1 content")
	}
}

func TestBuildPageClampsPageNumber(t *testing.T) {
	keys, counts := keysWithCounts(5, "curso/leccion%d")
	for _, page := range []int{-3, 0, 99} {
		out := paging.BuildPage("Materiales", keys, counts, page)
		if !strings.Contains(out, "página 1/1") {
			t.Fatalf("page %d not clamped: %q", page, out)
		}
	}
}

func TestBuildPageRespectsBudget(t *testing.T) {
	// Long keys force truncation well before 100 entries fit.
	keys := make([]string, 0, 100)
	counts := map[string]int{}
	for i := 1; i <= 100; i++ {
		key := fmt.Sprintf("curso/%s-leccion%d", strings.Repeat("x", 120), i)
		keys = append(keys, key)
		counts[key] = i
	}
	page := paging.BuildPage("Materiales", keys, counts, 1)
	if len(page) > paging.MessageBudget {
		t.Fatalf("rendered page is %d chars, budget %d", len(page), paging.MessageBudget)
	}
	// Lines are never split mid-key.
	for _, line := range strings.Split(page, "\n") {
		if strings.HasPrefix(line, "• ") && !strings.HasSuffix(line, "líneas)") {
			t.Fatalf("truncated mid-line: %q", line)
		}
	}
}

func TestBuildPageOthersBucket(t *testing.T) {
	keys := []string{"curso/introduccion", "curso/leccion1"}
	counts := map[string]int{"curso/introduccion": 4, "curso/leccion1": 2}
	page := paging.BuildPage("Materiales", keys, counts, 1)
	if !strings.Contains(page, "Otros") {
		t.Fatalf("missing Otros bucket: %q", page)
	}
}
