package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"parlo/internal/history"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "history [count]",
		Short: "Show recent playbacks",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cfg.History.Enabled {
				return fmt.Errorf("playback history is disabled (set history.enabled = true)")
			}

			limit := 20
			if len(args) == 1 {
				parsed, err := strconv.Atoi(args[0])
				if err != nil || parsed < 1 {
					return fmt.Errorf("invalid count %q", args[0])
				}
				limit = parsed
			}

			store, err := history.Open(cfg.HistoryPath())
			if err != nil {
				return fmt.Errorf("open history store: %w", err)
			}
			defer store.Close()

			entries, err := store.Recent(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("load history: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "No playbacks recorded yet")
				return nil
			}

			rows := make([][]string, 0, len(entries))
			for _, entry := range entries {
				rows = append(rows, []string{
					entry.PlayedAt.Local().Format("2006-01-02 15:04"),
					entry.Key,
					strconv.FormatInt(entry.ChatID, 10),
					strconv.Itoa(entry.CueCount),
				})
			}
			fmt.Fprintln(out, renderTable([]string{"Played", "Material", "Chat", "Lines"}, rows, 3, 4))
			return nil
		},
	}
}
