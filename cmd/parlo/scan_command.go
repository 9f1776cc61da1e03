package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"parlo/internal/catalog"
	"parlo/internal/paging"
)

func newScanCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "scan",
		Short: "Index the data directory and list materials",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			dir, err := catalog.Scan(cmd.Context(), cfg.Paths.DataDir, nil)
			if err != nil {
				return fmt.Errorf("scan data directory: %w", err)
			}

			out := cmd.OutOrStdout()
			keys := dir.Keys()
			paging.SortNatural(keys)
			if len(keys) == 0 {
				fmt.Fprintf(out, "No materials found under %s\n", cfg.Paths.DataDir)
				return nil
			}

			rows := make([][]string, 0, len(keys))
			for _, key := range keys {
				material, _ := dir.Get(key)
				rows = append(rows, []string{
					key,
					displayName(material),
					strconv.Itoa(len(material.Cues)),
				})
			}
			fmt.Fprintln(out, renderTable([]string{"Key", "Title", "Lines"}, rows, 3))
			fmt.Fprintf(out, "%d materials\n", dir.Len())
			return nil
		},
	}
}

var titleCaser = cases.Title(language.Spanish)

// displayName prefers the audio file's tagged title, falling back to a
// title-cased rendition of the key's final segment.
func displayName(material catalog.Material) string {
	if title := strings.TrimSpace(material.TagTitle); title != "" {
		return title
	}
	segment := material.Key
	if idx := strings.LastIndex(segment, "/"); idx >= 0 {
		segment = segment[idx+1:]
	}
	segment = strings.NewReplacer("-", " ", "_", " ").Replace(segment)
	return titleCaser.String(segment)
}
