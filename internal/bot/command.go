package bot

import (
	"strconv"
	"strings"
)

type commandKind int

const (
	cmdUnknown commandKind = iota
	cmdHelp
	cmdList
	cmdSearch
	cmdRescan
	cmdPlay
)

// command is one parsed chat command with its typed arguments.
type command struct {
	kind commandKind
	// query is the search text or the material name for play.
	query string
	// page is the requested listing page, defaulting to 1.
	page int
}

// parseCommand maps a command name and its raw argument string onto the
// closed command set. A trailing all-digits token is a page number; the rest
// of the argument string is the query or material name, so multi-word names
// need no quoting.
func parseCommand(name, args string) command {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "start", "help":
		return command{kind: cmdHelp}
	case "list":
		_, page := splitPageSuffix(args)
		return command{kind: cmdList, page: page}
	case "search":
		query, page := splitPageSuffix(args)
		return command{kind: cmdSearch, query: query, page: page}
	case "rescan":
		return command{kind: cmdRescan}
	case "play":
		return command{kind: cmdPlay, query: strings.TrimSpace(args)}
	default:
		return command{kind: cmdUnknown}
	}
}

// splitPageSuffix separates an optional trailing page number from the
// argument string.
func splitPageSuffix(args string) (string, int) {
	fields := strings.Fields(args)
	if len(fields) == 0 {
		return "", 1
	}
	last := fields[len(fields)-1]
	if page, err := strconv.Atoi(last); err == nil && allDigits(last) {
		return strings.Join(fields[:len(fields)-1], " "), page
	}
	return strings.Join(fields, " "), 1
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
