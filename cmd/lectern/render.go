package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"lectern/internal/report"
	"lectern/internal/timeutil"
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiBlue   = "\x1b[34m"
)

// renderReport writes the human-readable report view. Colors are applied
// only when the writer is a terminal.
func renderReport(out io.Writer, rep *report.Report) {
	colorize := shouldColorize(out)

	for _, line := range renderSectionHeader("Session", colorize) {
		fmt.Fprintln(out, line)
	}
	fmt.Fprintf(out, "Topic:    %s\n", orDash(rep.Session.Topic))
	fmt.Fprintf(out, "Level:    %s\n", orDash(rep.Session.Level))
	fmt.Fprintf(out, "Teacher:  %s\n", orDash(rep.Session.TeacherName))
	fmt.Fprintf(out, "Students: %d\n", rep.Session.StudentCount)
	fmt.Fprintf(out, "Covered:  %s\n\n", orDash(rep.Summary.TopicsCovered))

	for _, line := range renderSectionHeader("Summary", colorize) {
		fmt.Fprintln(out, line)
	}
	fmt.Fprintln(out, renderTable(
		[]col{
			{head: "Correct", numeric: true},
			{head: "Response rate", numeric: true},
			{head: "Teacher talk", numeric: true},
			{head: "Students active", numeric: true},
			{head: "Activities"},
		},
		[][]string{{
			fmt.Sprintf("%d%%", rep.Summary.OverallCorrectnessPct),
			fmt.Sprintf("%d%%", rep.Summary.ResponseRatePct),
			fmt.Sprintf("%.1f min", rep.Summary.TeacherTalkMin),
			fmt.Sprintf("%d%%", rep.Summary.StudentActivePct),
			fmt.Sprintf("%d of %d", rep.Summary.ActivitiesHappened, rep.Summary.ActivitiesPlanned),
		}},
	))
	fmt.Fprintln(out)

	if len(rep.Activities) > 0 {
		for _, line := range renderSectionHeader("Activities", colorize) {
			fmt.Fprintln(out, line)
		}
		rows := make([][]string, 0, len(rep.Activities))
		for _, act := range rep.Activities {
			rows = append(rows, []string{
				act.ID,
				act.Type,
				timeutil.FormatSeconds(act.StartSec),
				questionTally(act),
				fmt.Sprintf("%d/%d", act.Correctness.Correct, act.Correctness.Answered),
				fmt.Sprintf("%d%%", act.Correctness.Percent),
				flag(act.ConfusionDetected, "confusion"),
				flag(act.ProtocolViolation, "violation"),
				act.Insight,
			})
		}
		fmt.Fprintln(out, renderTable(
			[]col{
				{head: "ID"},
				{head: "Type"},
				{head: "Start", numeric: true},
				{head: "Questions", numeric: true},
				{head: "Correct", numeric: true},
				{head: "Pct", numeric: true},
				{head: "Confusion"},
				{head: "Protocol"},
				{head: "Insight"},
			},
			rows,
		))
		fmt.Fprintln(out)
	}

	for _, line := range renderSectionHeader("Went well", colorize) {
		fmt.Fprintln(out, line)
	}
	renderItems(out, rep.Feedback.Positive, ansiGreen, colorize)
	fmt.Fprintln(out)

	for _, line := range renderSectionHeader("Needs improvement", colorize) {
		fmt.Fprintln(out, line)
	}
	renderItems(out, rep.Feedback.Improvements, ansiYellow, colorize)
	fmt.Fprintln(out)

	for _, line := range renderSectionHeader("Rubric", colorize) {
		fmt.Fprintln(out, line)
	}
	rows := make([][]string, 0, len(rep.Criteria))
	for _, crit := range rep.Criteria {
		rows = append(rows, []string{crit.Name, fmt.Sprintf("%.1f", crit.Score)})
	}
	fmt.Fprintln(out, renderTable(
		[]col{{head: "Criterion"}, {head: "Score", numeric: true}},
		rows,
	))
	for _, crit := range rep.Criteria {
		for _, rec := range crit.Recommendations {
			fmt.Fprintf(out, "  - %s: %s\n", crit.Name, rec)
		}
	}
	fmt.Fprintln(out)

	score := fmt.Sprintf("Final score: %.1f / 5.0", rep.FinalScore)
	if colorize {
		score = scoreColor(rep.FinalScore) + score + ansiReset
	}
	fmt.Fprintln(out, score)
}

func renderItems(out io.Writer, items []report.Item, color string, colorize bool) {
	if len(items) == 0 {
		fmt.Fprintln(out, "  (nothing recorded)")
		return
	}
	for _, item := range items {
		line := "  - " + item.Text
		if item.ActivityID != "" {
			line += fmt.Sprintf(" [%s]", item.ActivityID)
		}
		if colorize {
			line = color + line + ansiReset
		}
		fmt.Fprintln(out, line)
	}
}

func renderSectionHeader(title string, colorize bool) []string {
	line := fmt.Sprintf("== %s ==", strings.TrimSpace(title))
	rule := strings.Repeat("-", len(line))
	if colorize {
		line = ansiBlue + line + ansiReset
		rule = ansiBlue + rule + ansiReset
	}
	return []string{line, rule}
}

func scoreColor(score float64) string {
	switch {
	case score >= 4.0:
		return ansiGreen
	case score >= 3.0:
		return ansiYellow
	default:
		return ansiRed
	}
}

// questionTally shows how many questions drew answers against the planned
// count, or just the answered count when no plan was recorded.
func questionTally(act report.Activity) string {
	if act.QuestionsPlanned > 0 {
		return fmt.Sprintf("%d of %d", len(act.Questions), act.QuestionsPlanned)
	}
	return fmt.Sprintf("%d", len(act.Questions))
}

// writeJSON prints v as indented JSON, the machine-readable twin of the
// rendered views.
func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func flag(set bool, label string) string {
	if set {
		return label
	}
	return "-"
}

func orDash(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
