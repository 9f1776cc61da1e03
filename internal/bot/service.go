package bot

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"parlo/internal/catalog"
	"parlo/internal/paging"
)

const helpText = `Hola 👋
• /list [página] → ver todos los materiales
• /search <texto> [página] → buscar materiales
• /rescan → reindexar el almacén
• /play <clave|nombre> → audio y texto con traducción debajo`

// Messenger delivers replies to one chat. Implementations must be safe for
// sequential reuse; the serve loop never calls them concurrently.
type Messenger interface {
	SendText(ctx context.Context, chatID int64, text string) error
	SendAudio(ctx context.Context, chatID int64, path, caption string) error
}

// Translator renders a line into the configured target language.
type Translator interface {
	Translate(ctx context.Context, text string) (string, error)
}

// Recorder persists successful playbacks. A nil Recorder disables history.
type Recorder interface {
	RecordPlay(ctx context.Context, key string, chatID int64, cueCount int) error
}

// Service handles chat commands against the media catalog.
type Service struct {
	library    *catalog.Library
	messenger  Messenger
	translator Translator
	recorder   Recorder
	logger     *slog.Logger
}

// NewService wires the command handlers. recorder may be nil.
func NewService(library *catalog.Library, messenger Messenger, translator Translator, recorder Recorder, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		library:    library,
		messenger:  messenger,
		translator: translator,
		recorder:   recorder,
		logger:     logger.With("component", "bot"),
	}
}

// HandleCommand dispatches one chat command. Errors that reach the user are
// delivered as messages; the returned error covers delivery failures only.
func (s *Service) HandleCommand(ctx context.Context, chatID int64, name, args string) error {
	cmd := parseCommand(name, args)
	switch cmd.kind {
	case cmdHelp:
		return s.messenger.SendText(ctx, chatID, helpText)
	case cmdList:
		return s.handleList(ctx, chatID, cmd.page)
	case cmdSearch:
		return s.handleSearch(ctx, chatID, cmd.query, cmd.page)
	case cmdRescan:
		return s.handleRescan(ctx, chatID)
	case cmdPlay:
		return s.handlePlay(ctx, chatID, cmd.query)
	default:
		return s.messenger.SendText(ctx, chatID, "Comando desconocido. Prueba /help.")
	}
}

func (s *Service) handleList(ctx context.Context, chatID int64, page int) error {
	dir, err := s.library.Rebuild(ctx)
	if err != nil {
		s.logger.Error("rebuild failed", "error", err)
		return s.messenger.SendText(ctx, chatID, "No pude leer el almacén de materiales.")
	}
	keys := dir.Keys()
	rendered := paging.BuildPage("📚 Materiales", keys, cueCounts(dir, keys), page)
	return s.messenger.SendText(ctx, chatID, rendered)
}

func (s *Service) handleSearch(ctx context.Context, chatID int64, query string, page int) error {
	if strings.TrimSpace(query) == "" {
		return s.messenger.SendText(ctx, chatID, "Uso: /search <texto> [página]")
	}
	dir, err := s.library.Rebuild(ctx)
	if err != nil {
		s.logger.Error("rebuild failed", "error", err)
		return s.messenger.SendText(ctx, chatID, "No pude leer el almacén de materiales.")
	}

	needle := strings.ToLower(query)
	var matches []string
	for _, key := range dir.Keys() {
		if strings.Contains(strings.ToLower(key), needle) {
			matches = append(matches, key)
		}
	}
	if len(matches) == 0 {
		return s.messenger.SendText(ctx, chatID, fmt.Sprintf("Sin resultados para %q.", query))
	}
	rendered := paging.BuildPage(fmt.Sprintf("🔎 Resultados para %q", query), matches, cueCounts(dir, matches), page)
	return s.messenger.SendText(ctx, chatID, rendered)
}

func (s *Service) handleRescan(ctx context.Context, chatID int64) error {
	dir, err := s.library.Rebuild(ctx)
	if err != nil {
		s.logger.Error("rebuild failed", "error", err)
		return s.messenger.SendText(ctx, chatID, "No pude reindexar el almacén.")
	}
	return s.messenger.SendText(ctx, chatID, fmt.Sprintf("Reindexado. Total materiales: %d", dir.Len()))
}

func cueCounts(dir *catalog.Directory, keys []string) map[string]int {
	counts := make(map[string]int, len(keys))
	for _, key := range keys {
		counts[key] = dir.CueCount(key)
	}
	return counts
}
