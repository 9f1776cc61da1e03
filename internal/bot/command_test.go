package bot

import "testing"

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name     string
		cmd      string
		args     string
		wantKind commandKind
		wantText string
		wantPage int
	}{
		{name: "start", cmd: "start", wantKind: cmdHelp},
		{name: "help", cmd: "help", wantKind: cmdHelp},
		{name: "list bare", cmd: "list", wantKind: cmdList, wantPage: 1},
		{name: "list page", cmd: "list", args: "3", wantKind: cmdList, wantPage: 3},
		{name: "search with page", cmd: "search", args: "lesson 2", wantKind: cmdSearch, wantText: "lesson", wantPage: 2},
		{name: "search multiword", cmd: "search", args: "unidad dos", wantKind: cmdSearch, wantText: "unidad dos", wantPage: 1},
		{name: "search numeric-ish word", cmd: "search", args: "leccion5", wantKind: cmdSearch, wantText: "leccion5", wantPage: 1},
		{name: "rescan", cmd: "rescan", wantKind: cmdRescan},
		{name: "play multiword keeps digits", cmd: "play", args: "unit1/lesson 1", wantKind: cmdPlay, wantText: "unit1/lesson 1"},
		{name: "case-insensitive command", cmd: "LIST", wantKind: cmdList, wantPage: 1},
		{name: "unknown", cmd: "dance", wantKind: cmdUnknown},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := parseCommand(tc.cmd, tc.args)
			if got.kind != tc.wantKind {
				t.Fatalf("kind = %v, want %v", got.kind, tc.wantKind)
			}
			if tc.wantPage != 0 && got.page != tc.wantPage {
				t.Fatalf("page = %d, want %d", got.page, tc.wantPage)
			}
			if got.query != tc.wantText {
				t.Fatalf("query = %q, want %q", got.query, tc.wantText)
			}
		})
	}
}

func TestSplitChunks(t *testing.T) {
	if got := splitChunks("", 10); got != nil {
		t.Fatalf("empty input yielded %v", got)
	}
	chunks := splitChunks("áéíóú", 2)
	if len(chunks) != 3 || chunks[0] != "áé" || chunks[2] != "ú" {
		t.Fatalf("rune chunking broken: %q", chunks)
	}
}
