package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"parlo/internal/catalog"
)

func newResolveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <name>",
		Short: "Resolve a material name the way /play does",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			dir, err := catalog.Scan(cmd.Context(), cfg.Paths.DataDir, nil)
			if err != nil {
				return fmt.Errorf("scan data directory: %w", err)
			}

			input := strings.Join(args, " ")
			key, ok := dir.Resolve(input)
			if !ok {
				return fmt.Errorf("no material matches %q", input)
			}
			material, _ := dir.Get(key)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Key:   %s\n", key)
			fmt.Fprintf(out, "Audio: %s\n", material.AudioPath)
			fmt.Fprintf(out, "Lines: %d\n", len(material.Cues))
			if material.TagTitle != "" {
				fmt.Fprintf(out, "Title: %s\n", material.TagTitle)
			}
			return nil
		},
	}
}
