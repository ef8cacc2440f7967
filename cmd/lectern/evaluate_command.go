package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"lectern/internal/archive"
	"lectern/internal/engine"
	"lectern/internal/ingest"
)

func newEvaluateCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool
	var noSave bool

	cmd := &cobra.Command{
		Use:   "evaluate <bundle-dir>",
		Short: "Evaluate a session bundle and archive the report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			bundle, err := ingest.LoadBundle(args[0])
			if err != nil {
				return err
			}

			eng, err := engine.New(cfg, ctx.ensureLogger())
			if err != nil {
				return err
			}
			rep, err := eng.Evaluate(bundle)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !noSave {
				store, err := archive.Open(cfg)
				if err != nil {
					return err
				}
				defer func() { _ = store.Close() }()

				rec, err := store.Save(cmd.Context(), rep)
				if err != nil {
					return err
				}
				if !jsonOutput {
					fmt.Fprintf(out, "Archived report %s\n\n", rec.ID)
				}
			}

			if jsonOutput {
				return writeJSON(out, rep)
			}
			renderReport(out, rep)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the full report as JSON")
	cmd.Flags().BoolVar(&noSave, "no-save", false, "Skip archiving the report")
	return cmd
}
