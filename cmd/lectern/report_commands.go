package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"lectern/internal/archive"
)

func newReportCommand(ctx *commandContext) *cobra.Command {
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Inspect archived reports",
	}

	reportCmd.AddCommand(newReportListCommand(ctx))
	reportCmd.AddCommand(newReportShowCommand(ctx))
	return reportCmd
}

func newReportListCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List archived reports, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			store, err := archive.Open(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			records, err := store.List(cmd.Context())
			if err != nil {
				return err
			}

			if jsonOutput {
				summaries := make([]reportSummary, 0, len(records))
				for _, rec := range records {
					summaries = append(summaries, newReportSummary(rec))
				}
				return writeJSON(cmd.OutOrStdout(), summaries)
			}

			out := cmd.OutOrStdout()
			if len(records) == 0 {
				fmt.Fprintln(out, "No archived reports")
				return nil
			}

			rows := make([][]string, 0, len(records))
			for _, rec := range records {
				rows = append(rows, []string{
					rec.ID,
					rec.Topic,
					rec.TeacherName,
					fmt.Sprintf("%.1f", rec.FinalScore),
					rec.EvaluatedAt.Local().Format("2006-01-02 15:04"),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]col{
					{head: "ID"},
					{head: "Topic"},
					{head: "Teacher"},
					{head: "Score", numeric: true},
					{head: "Evaluated"},
				},
				rows,
			))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit report summaries as JSON")
	return cmd
}

func newReportShowCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show <report-id>",
		Short: "Show one archived report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			store, err := archive.Open(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			rec, err := store.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if jsonOutput {
				return writeJSON(cmd.OutOrStdout(), rec.Report)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Report %s, evaluated %s\n\n", rec.ID, rec.EvaluatedAt.Local().Format(time.RFC1123))
			renderReport(out, rec.Report)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the full report as JSON")
	return cmd
}

type reportSummary struct {
	ID          string  `json:"id"`
	Topic       string  `json:"topic"`
	TeacherName string  `json:"teacher_name"`
	FinalScore  float64 `json:"final_score"`
	EvaluatedAt string  `json:"evaluated_at"`
}

func newReportSummary(rec archive.Record) reportSummary {
	return reportSummary{
		ID:          rec.ID,
		Topic:       rec.Topic,
		TeacherName: rec.TeacherName,
		FinalScore:  rec.FinalScore,
		EvaluatedAt: rec.EvaluatedAt.Format(time.RFC3339),
	}
}
