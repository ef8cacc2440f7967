package feedback

import (
	"fmt"
	"math"

	"lectern/internal/segments"
	"lectern/internal/session"
)

// SessionInputs carries the derived signals the session-level checks judge.
type SessionInputs struct {
	Segments []segments.Segment
	Lines    []segments.Line
	Chats    []session.ChatEvent
	Students []session.StudentSummary

	TeachingDurationMin float64

	MaxContinuousSec         float64
	MaxTotalTalkMin          float64
	StudentActiveTargetPct   int
	BurstWindowSec           float64
	BurstMinMessages         int
	BurstOverlapToleranceSec float64
}

// ForSession runs the four session-level pedagogy checks. Each yields exactly
// one item.
func ForSession(in SessionInputs) []Item {
	items := make([]Item, 0, 4)
	items = append(items, pacingItem(in))
	items = append(items, talkTimeItem(in))
	items = append(items, participationItem(in))
	items = append(items, engagementItem(in))
	return items
}

func pacingItem(in SessionInputs) Item {
	long := segments.OverLong(in.Segments, in.MaxContinuousSec)
	if len(long) == 0 {
		return Item{
			Category: CategoryPacing,
			Positive: true,
			Text:     fmt.Sprintf("no speech segment exceeded %.0fs; instruction stayed broken up", in.MaxContinuousSec),
		}
	}
	longest := long[0]
	for _, seg := range long[1:] {
		if seg.Duration() > longest.Duration() {
			longest = seg
		}
	}
	return Item{
		Category:       CategoryPacing,
		Positive:       false,
		Text:           fmt.Sprintf("%d speech segment(s) ran past %.0fs without a break; the longest lasted %.0fs", len(long), in.MaxContinuousSec, longest.Duration()),
		RecommendedSec: in.MaxContinuousSec,
		ActualSec:      longest.Duration(),
	}
}

func talkTimeItem(in SessionInputs) Item {
	talkMin := segments.TotalTalkSeconds(in.Lines) / 60
	if talkMin <= in.MaxTotalTalkMin {
		return Item{
			Category: CategoryTalkTime,
			Positive: true,
			Text:     fmt.Sprintf("total teacher talk of %.1f min stayed under the %.0f min ceiling", talkMin, in.MaxTotalTalkMin),
		}
	}
	return Item{
		Category:       CategoryTalkTime,
		Positive:       false,
		Text:           fmt.Sprintf("total teacher talk of %.1f min exceeded the %.0f min ceiling", talkMin, in.MaxTotalTalkMin),
		RecommendedSec: in.MaxTotalTalkMin * 60,
		ActualSec:      math.Round(talkMin * 60),
	}
}

func participationItem(in SessionInputs) Item {
	active := StudentActivePercent(in.Students, in.TeachingDurationMin)
	if active > in.StudentActiveTargetPct {
		return Item{
			Category: CategoryParticipation,
			Positive: true,
			Text:     fmt.Sprintf("students were active for %d%% of the session, above the %d%% target", active, in.StudentActiveTargetPct),
		}
	}
	return Item{
		Category: CategoryParticipation,
		Positive: false,
		Text:     fmt.Sprintf("students were active for only %d%% of the session; the target is above %d%%", active, in.StudentActiveTargetPct),
	}
}

func engagementItem(in SessionInputs) Item {
	bursts := DetectBursts(in.Chats, in.BurstWindowSec, in.BurstMinMessages)
	if len(bursts) == 0 {
		return Item{
			Category: CategoryEngagement,
			Positive: false,
			Text: fmt.Sprintf("no chat engagement bursts (%d+ student messages within %.0fs) occurred during the session",
				in.BurstMinMessages, in.BurstWindowSec),
		}
	}
	prompted := 0
	for _, burst := range bursts {
		if burst.OverlapsTeacherTalk(in.Segments, in.BurstOverlapToleranceSec) {
			prompted++
		}
	}
	return Item{
		Category: CategoryEngagement,
		Positive: true,
		Text: fmt.Sprintf("%d chat engagement burst(s) occurred, %d of them right around teacher talk",
			len(bursts), prompted),
	}
}

// StudentActivePercent is the mean share of the teaching duration each
// student spent active, as an integer percent. Zero when no students or no
// duration is known.
func StudentActivePercent(students []session.StudentSummary, teachingDurationMin float64) int {
	if len(students) == 0 || teachingDurationMin <= 0 {
		return 0
	}
	durationSec := teachingDurationMin * 60
	var total float64
	for _, student := range students {
		share := student.ActiveSec / durationSec
		if share > 1 {
			share = 1
		}
		if share < 0 {
			share = 0
		}
		total += share
	}
	return int(math.Round(100 * total / float64(len(students))))
}
