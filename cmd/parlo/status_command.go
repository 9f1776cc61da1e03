package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"parlo/internal/catalog"
	"parlo/internal/language"
	"parlo/internal/preflight"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check directories, token, and translation endpoint",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)

			for _, line := range renderSectionHeader("Readiness", colorize) {
				fmt.Fprintln(out, line)
			}
			failed := 0
			for _, result := range preflight.RunAll(cmd.Context(), cfg) {
				kind := statusOK
				if !result.Passed {
					kind = statusError
					failed++
				}
				fmt.Fprintln(out, renderStatusLine(result.Name, kind, result.Detail, colorize))
			}

			target := cfg.Translate.TargetLanguage
			fmt.Fprintln(out, renderStatusLine("Target language", statusOK,
				fmt.Sprintf("%s (%s)", language.DisplayName(target), target), colorize))

			for _, line := range renderSectionHeader("Catalog", colorize) {
				fmt.Fprintln(out, line)
			}
			dir, scanErr := catalog.Scan(cmd.Context(), cfg.Paths.DataDir, nil)
			if scanErr != nil {
				failed++
				fmt.Fprintln(out, renderStatusLine("Materials", statusError, scanErr.Error(), colorize))
			} else {
				fmt.Fprintln(out, renderStatusLine("Materials", statusOK, fmt.Sprintf("%d indexed", dir.Len()), colorize))
			}

			if failed > 0 {
				return fmt.Errorf("%d check(s) failed", failed)
			}
			return nil
		},
	}
}
