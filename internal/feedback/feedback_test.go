package feedback

import (
	"strings"
	"testing"

	"lectern/internal/correctness"
	"lectern/internal/segments"
	"lectern/internal/session"
	"lectern/internal/timeline"
)

func entryWith(pct, answered int, post float64) timeline.Entry {
	return timeline.Entry{
		ActivityID:       "a1",
		Type:             session.ActivitySectionCheck,
		StartSec:         500,
		EndSec:           560,
		PostTeachSeconds: post,
		PostWindowEndSec: 700,
		Correctness:      correctness.Stat{Answered: answered, Correct: answered * pct / 100, Percent: pct},
	}
}

func TestExplanationBands(t *testing.T) {
	tests := []struct {
		name         string
		pct          int
		post         float64
		wantPositive bool
		wantRecSec   float64
	}{
		{"high quick", 90, 10, true, 0},
		{"high slow", 90, 40, false, HighBandMaxExplainSec},
		{"medium in range", 60, 45, true, 0},
		{"medium too short", 60, 10, false, MediumBandMinExplainSec},
		{"medium too long", 60, 90, false, MediumBandMaxExplainSec},
		{"low in range", 30, 90, true, 0},
		{"low too short", 30, 20, false, LowBandMinExplainSec},
		{"low too long", 30, 200, false, LowBandMaxExplainSec},
		{"band boundary 75 is medium", 75, 45, true, 0},
		{"band boundary 50 is medium", 50, 45, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := ForActivities([]timeline.Entry{entryWith(tt.pct, 10, tt.post)}, nil)
			if len(items) != 1 {
				t.Fatalf("expected 1 item, got %d", len(items))
			}
			item := items[0]
			if item.Positive != tt.wantPositive {
				t.Errorf("positive = %v, want %v (%s)", item.Positive, tt.wantPositive, item.Text)
			}
			if !item.Positive {
				if item.RecommendedSec != tt.wantRecSec {
					t.Errorf("recommended = %v, want %v", item.RecommendedSec, tt.wantRecSec)
				}
				if item.ActualSec != tt.post {
					t.Errorf("actual = %v, want %v", item.ActualSec, tt.post)
				}
			}
		})
	}
}

func TestForActivitiesSortsByEnd(t *testing.T) {
	entries := []timeline.Entry{
		{ActivityID: "later", EndSec: 900, PostWindowEndSec: 1000, Correctness: correctness.Stat{Answered: 4, Percent: 80}},
		{ActivityID: "earlier", EndSec: 560, PostWindowEndSec: 700, Correctness: correctness.Stat{Answered: 4, Percent: 80}},
	}
	items := ForActivities(entries, nil)
	if items[0].ActivityID != "earlier" || items[1].ActivityID != "later" {
		t.Errorf("expected end-time order, got %s then %s", items[0].ActivityID, items[1].ActivityID)
	}
}

func TestProtocolViolationItem(t *testing.T) {
	entry := entryWith(80, 10, 5)
	entry.Type = session.ActivityExitTicket
	entry.TeacherTalkDuring = true
	entry.TalkDuringSeconds = 20
	entry.ProtocolViolation = true

	items := ForActivities([]timeline.Entry{entry}, nil)
	var found bool
	for _, item := range items {
		if item.Category == CategoryProtocol {
			found = true
			if item.Positive {
				t.Error("protocol violation must be negative")
			}
			if item.ActualSec != 20 {
				t.Errorf("actual = %v, want 20", item.ActualSec)
			}
		}
	}
	if !found {
		t.Fatal("expected a protocol item")
	}
}

func TestCalledToFrontFlaggedWhenCorrectnessHigh(t *testing.T) {
	lines := []segments.Line{
		{StartSec: 570, EndSec: 590, Text: "Great job! Mia, come up to the board and show us."},
	}
	items := ForActivities([]timeline.Entry{entryWith(90, 10, 10)}, lines)
	var found bool
	for _, item := range items {
		if strings.Contains(item.Text, "called to the front") {
			found = true
			if item.Positive {
				t.Error("front call after high correctness is always unnecessary")
			}
		}
	}
	if !found {
		t.Fatal("expected a front-call item")
	}
}

func TestCalledToFrontIgnoredWhenCorrectnessModest(t *testing.T) {
	lines := []segments.Line{
		{StartSec: 570, EndSec: 590, Text: "come up to the front please"},
	}
	items := ForActivities([]timeline.Entry{entryWith(60, 10, 45)}, lines)
	for _, item := range items {
		if strings.Contains(item.Text, "called to the front") {
			t.Fatal("front call should only be flagged when correctness is already high")
		}
	}
}

func defaultSessionInputs() SessionInputs {
	return SessionInputs{
		TeachingDurationMin:      40,
		MaxContinuousSec:         120,
		MaxTotalTalkMin:          15,
		StudentActiveTargetPct:   50,
		BurstWindowSec:           30,
		BurstMinMessages:         3,
		BurstOverlapToleranceSec: 10,
	}
}

func TestForSessionAlwaysFourItems(t *testing.T) {
	items := ForSession(defaultSessionInputs())
	if len(items) != 4 {
		t.Fatalf("expected 4 items, got %d", len(items))
	}
	seen := map[Category]int{}
	for _, item := range items {
		seen[item.Category]++
	}
	for _, cat := range []Category{CategoryPacing, CategoryTalkTime, CategoryParticipation, CategoryEngagement} {
		if seen[cat] != 1 {
			t.Errorf("category %s appeared %d times, want exactly 1", cat, seen[cat])
		}
	}
}

func TestPacingItem(t *testing.T) {
	in := defaultSessionInputs()
	in.Segments = []segments.Segment{{StartSec: 0, EndSec: 100}}
	if item := pacingItem(in); !item.Positive {
		t.Errorf("expected positive pacing, got %q", item.Text)
	}

	in.Segments = []segments.Segment{{StartSec: 0, EndSec: 200}}
	item := pacingItem(in)
	if item.Positive {
		t.Errorf("expected negative pacing, got %q", item.Text)
	}
	if item.ActualSec != 200 || item.RecommendedSec != 120 {
		t.Errorf("recommended/actual = %v/%v, want 120/200", item.RecommendedSec, item.ActualSec)
	}
}

func TestTalkTimeItem(t *testing.T) {
	in := defaultSessionInputs()
	in.Lines = []segments.Line{{StartSec: 0, EndSec: 600}} // 10 min
	if item := talkTimeItem(in); !item.Positive {
		t.Errorf("expected positive talk time, got %q", item.Text)
	}

	in.Lines = []segments.Line{{StartSec: 0, EndSec: 1200}} // 20 min
	if item := talkTimeItem(in); item.Positive {
		t.Errorf("expected negative talk time, got %q", item.Text)
	}
}

func TestParticipationItem(t *testing.T) {
	in := defaultSessionInputs()
	in.Students = []session.StudentSummary{
		{StudentID: "s1", ActiveSec: 2000},
		{StudentID: "s2", ActiveSec: 1600},
	}
	// 2000/2400 + 1600/2400 -> mean 75%.
	if item := participationItem(in); !item.Positive {
		t.Errorf("expected positive participation, got %q", item.Text)
	}

	in.Students = []session.StudentSummary{{StudentID: "s1", ActiveSec: 600}}
	if item := participationItem(in); item.Positive {
		t.Errorf("expected negative participation, got %q", item.Text)
	}
}

func TestStudentActivePercentEdgeCases(t *testing.T) {
	if got := StudentActivePercent(nil, 40); got != 0 {
		t.Errorf("no students = %d, want 0", got)
	}
	if got := StudentActivePercent([]session.StudentSummary{{ActiveSec: 100}}, 0); got != 0 {
		t.Errorf("no duration = %d, want 0", got)
	}
	// Shares are capped at 100%.
	if got := StudentActivePercent([]session.StudentSummary{{ActiveSec: 99999}}, 10); got != 100 {
		t.Errorf("capped share = %d, want 100", got)
	}
}

func TestDetectBursts(t *testing.T) {
	chats := []session.ChatEvent{
		{AtSec: 100, Role: session.RoleStudent},
		{AtSec: 110, Role: session.RoleStudent},
		{AtSec: 120, Role: session.RoleStudent},
		{AtSec: 500, Role: session.RoleStudent},
		{AtSec: 800, Role: session.RoleStudent},
		{AtSec: 805, Role: session.RoleTeacher}, // teacher messages never count
		{AtSec: 810, Role: session.RoleStudent},
		{AtSec: 825, Role: session.RoleStudent},
	}
	bursts := DetectBursts(chats, 30, 3)
	if len(bursts) != 2 {
		t.Fatalf("expected 2 bursts, got %d: %+v", len(bursts), bursts)
	}
	if bursts[0].StartSec != 100 || bursts[0].EndSec != 120 || bursts[0].Messages != 3 {
		t.Errorf("first burst = %+v", bursts[0])
	}
	if bursts[1].StartSec != 800 || bursts[1].EndSec != 825 {
		t.Errorf("second burst = %+v", bursts[1])
	}
}

func TestDetectBurstsNoneBelowThreshold(t *testing.T) {
	chats := []session.ChatEvent{
		{AtSec: 100, Role: session.RoleStudent},
		{AtSec: 200, Role: session.RoleStudent},
		{AtSec: 300, Role: session.RoleStudent},
	}
	if bursts := DetectBursts(chats, 30, 3); bursts != nil {
		t.Errorf("expected no bursts, got %+v", bursts)
	}
}

func TestBurstOverlapsTeacherTalk(t *testing.T) {
	segs := []segments.Segment{{StartSec: 200, EndSec: 260}}
	tests := []struct {
		name  string
		burst Burst
		want  bool
	}{
		{"inside", Burst{StartSec: 210, EndSec: 240}, true},
		{"just after within tolerance", Burst{StartSec: 265, EndSec: 280}, true},
		{"just before within tolerance", Burst{StartSec: 180, EndSec: 195}, true},
		{"far away", Burst{StartSec: 500, EndSec: 520}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.burst.OverlapsTeacherTalk(segs, 10); got != tt.want {
				t.Errorf("OverlapsTeacherTalk = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEngagementItemZeroChats(t *testing.T) {
	item := engagementItem(defaultSessionInputs())
	if item.Positive {
		t.Errorf("no chats must hit the negative branch, got %q", item.Text)
	}
}

func TestSplit(t *testing.T) {
	items := []Item{
		{Positive: true, Text: "a"},
		{Positive: false, Text: "b"},
		{Positive: true, Text: "c"},
	}
	pos, neg := Split(items)
	if len(pos) != 2 || len(neg) != 1 {
		t.Fatalf("split = %d/%d, want 2/1", len(pos), len(neg))
	}
	if pos[0].Text != "a" || pos[1].Text != "c" || neg[0].Text != "b" {
		t.Error("split must preserve order")
	}
}
