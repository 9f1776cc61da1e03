package bot

import (
	"context"
	"strings"
)

// playbackChunkSize bounds each text message of the bilingual stream.
const playbackChunkSize = 3500

func (s *Service) handlePlay(ctx context.Context, chatID int64, name string) error {
	if strings.TrimSpace(name) == "" {
		return s.messenger.SendText(ctx, chatID, "Uso: /play <clave o nombre>")
	}

	dir := s.library.Snapshot()
	if dir.Len() == 0 {
		rebuilt, err := s.library.Rebuild(ctx)
		if err != nil {
			s.logger.Error("rebuild failed", "error", err)
			return s.messenger.SendText(ctx, chatID, "No pude leer el almacén de materiales.")
		}
		dir = rebuilt
	}

	key, ok := dir.Resolve(name)
	if !ok {
		return s.messenger.SendText(ctx, chatID, "No encuentro ese material. Prueba /list o /search.")
	}
	material, _ := dir.Get(key)
	if material.AudioPath == "" || len(material.Cues) == 0 {
		return s.messenger.SendText(ctx, chatID, "Faltan archivos para ese material.")
	}

	if err := s.messenger.SendAudio(ctx, chatID, material.AudioPath, "▶ "+key); err != nil {
		s.logger.Warn("audio delivery failed", "key", key, "error", err)
		return s.messenger.SendText(ctx, chatID, "No pude enviar el audio: "+err.Error())
	}

	if s.recorder != nil {
		if err := s.recorder.RecordPlay(ctx, key, chatID, len(material.Cues)); err != nil {
			s.logger.Warn("record play failed", "key", key, "error", err)
		}
	}

	blocks := make([]string, 0, len(material.Cues))
	for _, cue := range material.Cues {
		translated, err := s.translator.Translate(ctx, cue.Text)
		if err != nil || translated == "" {
			// Degrade to the untranslated line rather than failing playback.
			s.logger.Debug("translation fallback", "key", key, "error", err)
			translated = cue.Text
		}
		blocks = append(blocks, cue.Text+"\n"+translated+"\n")
	}

	fullText := strings.TrimSpace(strings.Join(blocks, "\n"))
	for _, chunk := range splitChunks(fullText, playbackChunkSize) {
		if err := s.messenger.SendText(ctx, chatID, chunk); err != nil {
			return err
		}
	}
	return nil
}

// splitChunks slices text into sequential rune windows of at most limit
// runes, with no structural awareness.
func splitChunks(text string, limit int) []string {
	if text == "" {
		return nil
	}
	runes := []rune(text)
	chunks := make([]string, 0, len(runes)/limit+1)
	for start := 0; start < len(runes); start += limit {
		end := start + limit
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[start:end]))
	}
	return chunks
}
