package catalog_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"parlo/internal/catalog"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestScanPairsAudioWithSubtitles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "unit1", "lesson1.mp3"), "not really audio")
	writeFile(t, filepath.Join(root, "unit1", "lesson1.srt"),
		"1\n00:00:00,000 --> 00:00:02,000\nHola\n")

	dir, err := catalog.Scan(context.Background(), root, nil)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if dir.Len() != 1 {
		t.Fatalf("got %d materials, want 1", dir.Len())
	}
	material, ok := dir.Get("unit1/lesson1")
	if !ok {
		t.Fatalf("key unit1/lesson1 missing; keys: %v", dir.Keys())
	}
	if len(material.Cues) != 1 {
		t.Fatalf("got %d cues, want 1", len(material.Cues))
	}
	cue := material.Cues[0]
	if cue.Start != 0 || cue.End != 2 || cue.Text != "Hola" {
		t.Fatalf("unexpected cue: %+v", cue)
	}
	if filepath.Base(material.AudioPath) != "lesson1.mp3" {
		t.Fatalf("unexpected audio path: %s", material.AudioPath)
	}
}

func TestScanSkipsUnpairedFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "unit1", "solo-audio.mp3"), "x")
	writeFile(t, filepath.Join(root, "unit1", "solo-texto.txt"), "hola\n")
	writeFile(t, filepath.Join(root, "unit1", "completo.ogg"), "x")
	writeFile(t, filepath.Join(root, "unit1", "completo.txt"), "hola\n")

	dir, err := catalog.Scan(context.Background(), root, nil)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if dir.Len() != 1 {
		t.Fatalf("got %d materials, want 1: %v", dir.Len(), dir.Keys())
	}
	if _, ok := dir.Get("unit1/completo"); !ok {
		t.Fatalf("paired material missing; keys: %v", dir.Keys())
	}
}

func TestScanNestedDirectoriesUseForwardSlashKeys(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "curso", "nivel2", "leccion3.mp3"), "x")
	writeFile(t, filepath.Join(root, "curso", "nivel2", "leccion3.vtt"),
		"WEBVTT\n\n00:01.000 --> 00:02.000\nBuenos días\n")

	dir, err := catalog.Scan(context.Background(), root, nil)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if _, ok := dir.Get("curso/nivel2/leccion3"); !ok {
		t.Fatalf("nested key missing; keys: %v", dir.Keys())
	}
}

func TestScanPlainTextGetsSyntheticTiming(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "unit1", "dialogo.wav"), "x")
	writeFile(t, filepath.Join(root, "unit1", "dialogo.txt"), "primera línea\nsegunda línea\n")

	dir, err := catalog.Scan(context.Background(), root, nil)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	material, ok := dir.Get("unit1/dialogo")
	if !ok {
		t.Fatalf("material missing; keys: %v", dir.Keys())
	}
	if len(material.Cues) != 2 {
		t.Fatalf("got %d cues, want 2", len(material.Cues))
	}
	if material.Cues[0].End != material.Cues[1].Start {
		t.Fatalf("synthetic cues not back to back: %+v", material.Cues)
	}
}

func TestScanMissingRootYieldsEmptyDirectory(t *testing.T) {
	dir, err := catalog.Scan(context.Background(), filepath.Join(t.TempDir(), "nope"), nil)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if dir.Len() != 0 {
		t.Fatalf("got %d materials, want 0", dir.Len())
	}
}

func TestScanIgnoresFilesOutsideNamespaces(t *testing.T) {
	root := t.TempDir()
	// Files directly under the root belong to no namespace.
	writeFile(t, filepath.Join(root, "huérfano.mp3"), "x")
	writeFile(t, filepath.Join(root, "huérfano.txt"), "hola\n")

	dir, err := catalog.Scan(context.Background(), root, nil)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if dir.Len() != 0 {
		t.Fatalf("got %d materials, want 0: %v", dir.Len(), dir.Keys())
	}
}

func TestLibraryRebuildSwapsSnapshot(t *testing.T) {
	root := t.TempDir()
	library := catalog.NewLibrary(root, nil)
	if library.Snapshot().Len() != 0 {
		t.Fatalf("fresh library should be empty")
	}

	writeFile(t, filepath.Join(root, "unit1", "lesson1.mp3"), "x")
	writeFile(t, filepath.Join(root, "unit1", "lesson1.txt"), "hola\n")
	dir, err := library.Rebuild(context.Background())
	if err != nil {
		t.Fatalf("Rebuild: %v", err)
	}
	if dir.Len() != 1 || library.Snapshot() != dir {
		t.Fatalf("snapshot not swapped in")
	}
}
