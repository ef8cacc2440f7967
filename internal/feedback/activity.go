package feedback

import (
	"fmt"
	"regexp"
	"sort"

	"lectern/internal/segments"
	"lectern/internal/timeline"
)

// Correctness bands and their acceptable post-activity explanation windows.
// High correctness needs almost no follow-up; low correctness deserves a real
// re-teach, but not an unbounded one.
const (
	HighCorrectnessPct   = 75
	MediumCorrectnessPct = 50

	HighBandMaxExplainSec   = 15.0
	MediumBandMinExplainSec = 30.0
	MediumBandMaxExplainSec = 60.0
	LowBandMinExplainSec    = 60.0
	LowBandMaxExplainSec    = 120.0
)

var frontCallRe = regexp.MustCompile(`(?i)come (up )?to the (front|board)|come up and (show|solve|explain)`)

// ForActivities produces per-activity time-management items, processed in
// end-time order.
func ForActivities(entries []timeline.Entry, lines []segments.Line) []Item {
	ordered := make([]timeline.Entry, len(entries))
	copy(ordered, entries)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].EndSec < ordered[j].EndSec })

	items := make([]Item, 0, len(ordered))
	for _, entry := range ordered {
		items = append(items, explanationItem(entry))

		if entry.ProtocolViolation {
			items = append(items, Item{
				Category:   CategoryProtocol,
				ActivityID: entry.ActivityID,
				Positive:   false,
				Text: fmt.Sprintf("teacher talk overlapped the %s for %.0fs; independent completion is required for a valid measurement",
					entry.Type, entry.TalkDuringSeconds),
				ActualSec: entry.TalkDuringSeconds,
			})
		}

		if entry.Correctness.Percent > HighCorrectnessPct && CalledToFront(lines, entry.EndSec, entry.PostWindowEndSec) {
			items = append(items, Item{
				Category:   CategoryTimeManagement,
				ActivityID: entry.ActivityID,
				Positive:   false,
				Text: fmt.Sprintf("a student was called to the front although %d%% had already answered correctly; that walkthrough was unnecessary",
					entry.Correctness.Percent),
			})
		}
	}
	return items
}

func explanationItem(entry timeline.Entry) Item {
	post := entry.PostTeachSeconds
	pct := entry.Correctness.Percent

	item := Item{
		Category:   CategoryTimeManagement,
		ActivityID: entry.ActivityID,
		ActualSec:  post,
	}

	switch {
	case pct > HighCorrectnessPct:
		if post <= HighBandMaxExplainSec {
			item.Positive = true
			item.Text = fmt.Sprintf("moved on promptly after %d%% correct; %.0fs of follow-up was enough", pct, post)
			item.ActualSec = 0
		} else {
			item.Text = fmt.Sprintf("spent %.0fs re-explaining although %d%% already answered correctly", post, pct)
			item.RecommendedSec = HighBandMaxExplainSec
		}
	case pct >= MediumCorrectnessPct:
		if post >= MediumBandMinExplainSec && post <= MediumBandMaxExplainSec {
			item.Positive = true
			item.Text = fmt.Sprintf("follow-up of %.0fs matched the mixed result of %d%% correct", post, pct)
			item.ActualSec = 0
		} else if post < MediumBandMinExplainSec {
			item.Text = fmt.Sprintf("only %.0fs of follow-up after a mixed result of %d%% correct; the gap deserved more", post, pct)
			item.RecommendedSec = MediumBandMinExplainSec
		} else {
			item.Text = fmt.Sprintf("%.0fs of follow-up after %d%% correct overshot what the result called for", post, pct)
			item.RecommendedSec = MediumBandMaxExplainSec
		}
	default:
		if post >= LowBandMinExplainSec && post <= LowBandMaxExplainSec {
			item.Positive = true
			item.Text = fmt.Sprintf("gave the weak result of %d%% correct a proper %.0fs re-teach", pct, post)
			item.ActualSec = 0
		} else if post < LowBandMinExplainSec {
			item.Text = fmt.Sprintf("only %.0fs of follow-up although just %d%% answered correctly", post, pct)
			item.RecommendedSec = LowBandMinExplainSec
		} else {
			item.Text = fmt.Sprintf("%.0fs of re-teaching after %d%% correct; past two minutes a different approach works better", post, pct)
			item.RecommendedSec = LowBandMaxExplainSec
		}
	}
	return item
}

// CalledToFront reports whether the teacher asked a student up to the board
// during the given transcript window.
func CalledToFront(lines []segments.Line, startSec, endSec float64) bool {
	for _, line := range lines {
		if segments.OverlapSeconds(line.StartSec, line.EndSec, startSec, endSec) <= 0 {
			continue
		}
		if frontCallRe.MatchString(line.Text) {
			return true
		}
	}
	return false
}
