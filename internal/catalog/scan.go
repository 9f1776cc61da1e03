package catalog

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dhowden/tag"

	"parlo/internal/subtitles"
)

var audioExtensions = map[string]struct{}{
	".mp3": {}, ".wav": {}, ".m4a": {}, ".ogg": {}, ".oga": {}, ".aac": {}, ".flac": {},
}

var textExtensions = map[string]struct{}{
	".txt": {}, ".srt": {}, ".vtt": {},
}

type pairCandidate struct {
	audioPath string
	textPath  string
}

// Scan walks the storage root and builds a fresh Directory. Each immediate
// subdirectory of the root is a namespace; within it, any audio file whose
// base name matches a subtitle/transcript file in the same directory becomes
// a material. Unreadable or unparsable pairs are logged and skipped so one
// bad file never aborts the rest of the scan.
func Scan(ctx context.Context, root string, logger *slog.Logger) (*Directory, error) {
	if logger == nil {
		logger = slog.Default()
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		if os.IsNotExist(err) {
			return NewDirectory(nil), nil
		}
		return nil, fmt.Errorf("read storage root: %w", err)
	}

	materials := map[string]Material{}
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !entry.IsDir() {
			continue
		}
		namespace := entry.Name()
		candidates, err := collectCandidates(filepath.Join(root, namespace), namespace)
		if err != nil {
			logger.Warn("walk namespace failed", "namespace", namespace, "error", err)
			continue
		}
		for key, pair := range candidates {
			if pair.audioPath == "" || pair.textPath == "" {
				continue
			}
			material, err := buildMaterial(key, pair)
			if err != nil {
				logger.Warn("skipping material", "key", key, "error", err)
				continue
			}
			materials[key] = material
		}
	}

	return NewDirectory(materials), nil
}

func collectCandidates(namespacePath, namespace string) (map[string]pairCandidate, error) {
	candidates := map[string]pairCandidate{}
	err := filepath.WalkDir(namespacePath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(d.Name()))
		_, isAudio := audioExtensions[ext]
		_, isText := textExtensions[ext]
		if !isAudio && !isText {
			return nil
		}

		rel, err := filepath.Rel(namespacePath, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		key := namespace + "/" + strings.TrimSuffix(rel, filepath.Ext(rel))

		pair := candidates[key]
		if isAudio {
			pair.audioPath = path
		} else {
			pair.textPath = path
		}
		candidates[key] = pair
		return nil
	})
	if err != nil {
		return nil, err
	}
	return candidates, nil
}

func buildMaterial(key string, pair pairCandidate) (Material, error) {
	data, err := os.ReadFile(pair.textPath)
	if err != nil {
		return Material{}, fmt.Errorf("read transcript: %w", err)
	}
	content := strings.ToValidUTF8(string(data), "")

	var cues []subtitles.Cue
	switch strings.ToLower(filepath.Ext(pair.textPath)) {
	case ".srt", ".vtt":
		cues = subtitles.ParseTimed(content)
	default:
		cues = subtitles.ParsePlain(content)
	}

	return Material{
		Key:       key,
		AudioPath: pair.audioPath,
		Cues:      cues,
		TagTitle:  probeTagTitle(pair.audioPath),
	}, nil
}

// probeTagTitle reads the tagged title from the audio file. Metadata is
// optional; any failure simply leaves the title empty.
func probeTagTitle(path string) string {
	file, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer file.Close()

	meta, err := tag.ReadFrom(file)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(meta.Title())
}
