package timeline

import (
	"strings"
	"testing"

	"lectern/internal/segments"
	"lectern/internal/session"
)

func clock(sec int) string {
	h := sec / 3600
	m := (sec % 3600) / 60
	s := sec % 60
	return pad(h) + ":" + pad(m) + ":" + pad(s)
}

func pad(v int) string {
	if v < 10 {
		return "0" + string(rune('0'+v))
	}
	return string(rune('0'+v/10)) + string(rune('0'+v%10))
}

func TestBuildExcludesUnhappenedAndUnplaced(t *testing.T) {
	activities := []session.ActivityRecord{
		{ID: "a1", Start: clock(500), End: clock(560), Happened: true},
		{ID: "a2", Start: clock(600), End: clock(660), Happened: false},
		{ID: "a3", Start: "", End: "", Happened: true},
	}
	entries := Build(activities, nil, nil, nil, DefaultOptions())
	if len(entries) != 1 || entries[0].ActivityID != "a1" {
		t.Fatalf("expected only a1 on the timeline, got %+v", entries)
	}
}

func TestBuildStableOrderForEqualStarts(t *testing.T) {
	activities := []session.ActivityRecord{
		{ID: "first", Start: clock(500), End: clock(560), Happened: true},
		{ID: "second", Start: clock(500), End: clock(540), Happened: true},
	}
	entries := Build(activities, nil, nil, nil, DefaultOptions())
	if len(entries) != 2 || entries[0].ActivityID != "first" || entries[1].ActivityID != "second" {
		t.Fatalf("expected stable source order, got %+v", entries)
	}
}

func TestExitTicketTalkDuringIsProtocolViolation(t *testing.T) {
	activities := []session.ActivityRecord{
		{ID: "a1", Type: session.ActivityExitTicket, Start: clock(500), End: clock(560), Happened: true},
	}
	lines := []segments.Line{{StartSec: 520, EndSec: 540, Text: "let me clarify"}}

	entries := Build(activities, lines, nil, nil, DefaultOptions())
	if len(entries) != 1 {
		t.Fatalf("expected one entry, got %d", len(entries))
	}
	entry := entries[0]
	if !entry.TeacherTalkDuring {
		t.Error("expected TeacherTalkDuring")
	}
	if entry.TalkDuringSeconds != 20 {
		t.Errorf("overlap = %v, want 20", entry.TalkDuringSeconds)
	}
	if !entry.ProtocolViolation {
		t.Error("exit ticket with talk during must be a protocol violation")
	}
	if !strings.Contains(entry.Insight, "independent") {
		t.Errorf("insight should call out independence, got %q", entry.Insight)
	}
}

func TestBuildCoercesPlatformTypeSpellings(t *testing.T) {
	tests := []struct {
		raw  string
		want session.ActivityType
	}{
		{"ExitTicket", session.ActivityExitTicket},
		{"exit ticket", session.ActivityExitTicket},
		{"Exit-Ticket", session.ActivityExitTicket},
		{"GroupWork", session.ActivityTeamExercise},
		{"quiz", session.ActivitySectionCheck},
		{"", session.ActivitySectionCheck},
	}
	lines := []segments.Line{{StartSec: 520, EndSec: 540, Text: "one more hint"}}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			activities := []session.ActivityRecord{
				{ID: "a1", Type: session.ActivityType(tt.raw), Start: clock(500), End: clock(560), Happened: true},
			}
			entries := Build(activities, lines, nil, nil, DefaultOptions())
			if entries[0].Type != tt.want {
				t.Errorf("type = %q, want %q", entries[0].Type, tt.want)
			}
			wantViolation := tt.want == session.ActivityExitTicket
			if entries[0].ProtocolViolation != wantViolation {
				t.Errorf("protocol violation = %v, want %v for %q", entries[0].ProtocolViolation, wantViolation, tt.raw)
			}
		})
	}
}

func TestSectionCheckTalkDuringIsNotViolation(t *testing.T) {
	activities := []session.ActivityRecord{
		{ID: "a1", Type: session.ActivitySectionCheck, Start: clock(500), End: clock(560), Happened: true},
	}
	lines := []segments.Line{{StartSec: 520, EndSec: 540, Text: "hint"}}

	entries := Build(activities, lines, nil, nil, DefaultOptions())
	if entries[0].ProtocolViolation {
		t.Error("section check tolerates teacher talk")
	}
	if !entries[0].TeacherTalkDuring {
		t.Error("overlap should still be recorded")
	}
}

func TestPreWindowCappedAndTopicsExtracted(t *testing.T) {
	activities := []session.ActivityRecord{
		{ID: "a1", Start: clock(1000), End: clock(1060), Happened: true},
	}
	lines := []segments.Line{
		// Outside the 300s pre window.
		{StartSec: 500, EndSec: 600, Text: "tangent talk long before"},
		// Inside the window.
		{StartSec: 800, EndSec: 860, Text: "the radius of a circle"},
	}
	entries := Build(activities, lines, nil, nil, DefaultOptions())
	entry := entries[0]
	if entry.PreTeachSeconds != 60 {
		t.Errorf("pre teach = %v, want 60", entry.PreTeachSeconds)
	}
	if entry.PreTopics != "radius" {
		t.Errorf("pre topics = %q, want radius", entry.PreTopics)
	}
}

func TestPreWindowBoundedByPreviousActivity(t *testing.T) {
	activities := []session.ActivityRecord{
		{ID: "a1", Start: clock(400), End: clock(500), Happened: true},
		{ID: "a2", Start: clock(600), End: clock(700), Happened: true},
	}
	lines := []segments.Line{
		{StartSec: 450, EndSec: 490, Text: "during a1"},
		{StartSec: 520, EndSec: 580, Text: "between activities"},
	}
	entries := Build(activities, lines, nil, nil, DefaultOptions())
	if entries[1].PreTeachSeconds != 60 {
		t.Errorf("a2 pre teach = %v, want 60 (only the gap)", entries[1].PreTeachSeconds)
	}
}

func TestPostWindowToNextActivityAndTail(t *testing.T) {
	activities := []session.ActivityRecord{
		{ID: "a1", Start: clock(400), End: clock(500), Happened: true},
		{ID: "a2", Start: clock(600), End: clock(700), Happened: true},
	}
	lines := []segments.Line{
		{StartSec: 510, EndSec: 550, Text: "recap of a1"},
		{StartSec: 710, EndSec: 760, Text: "closing words"},
		// Beyond the 180s tail after a2.
		{StartSec: 1000, EndSec: 1100, Text: "way later"},
	}
	entries := Build(activities, lines, nil, nil, DefaultOptions())
	if entries[0].PostTeachSeconds != 40 {
		t.Errorf("a1 post teach = %v, want 40", entries[0].PostTeachSeconds)
	}
	if entries[1].PostTeachSeconds != 50 {
		t.Errorf("a2 post teach = %v, want 50", entries[1].PostTeachSeconds)
	}
}

func TestConfusionDetection(t *testing.T) {
	activities := []session.ActivityRecord{
		{ID: "a1", Start: clock(500), End: clock(560), Happened: true},
	}
	chats := []session.ChatEvent{
		{AtSec: 480, Role: session.RoleStudent, Text: "i'm confused"},          // within lead
		{AtSec: 530, Role: session.RoleStudent, Text: "????"},                  // during
		{AtSec: 610, Role: session.RoleStudent, Text: "still lost, im lost"},   // within lag
		{AtSec: 530, Role: session.RoleTeacher, Text: "are you confused?"},     // teacher ignored
		{AtSec: 700, Role: session.RoleStudent, Text: "confused again"},        // outside window
		{AtSec: 540, Role: session.RoleStudent, Text: "makes no sense at all"}, // fourth match
	}
	entries := Build(activities, nil, chats, nil, DefaultOptions())
	entry := entries[0]
	if !entry.ConfusionDetected {
		t.Fatal("expected confusion detected")
	}
	if len(entry.ConfusionSamples) != 3 {
		t.Errorf("samples = %d, want capped at 3", len(entry.ConfusionSamples))
	}
}

func TestNoConfusionLeavesEmptySampleList(t *testing.T) {
	activities := []session.ActivityRecord{
		{ID: "a1", Start: clock(500), End: clock(560), Happened: true},
	}
	entries := Build(activities, nil, nil, nil, DefaultOptions())
	if entries[0].ConfusionDetected {
		t.Error("no chat, no confusion")
	}
	if entries[0].ConfusionSamples == nil {
		t.Error("samples must be an empty list, not nil, for stable output")
	}
}

func TestCorrectnessAttached(t *testing.T) {
	activities := []session.ActivityRecord{
		{ID: "a1", Start: clock(500), End: clock(560), Happened: true, TotalQuestions: 2},
	}
	polls := []session.PollResponse{
		{ActivityID: "a1", QuestionID: "q1", Seen: true, Answered: true, Correct: true},
		{ActivityID: "a1", QuestionID: "q1", Seen: true, Answered: true, Correct: false},
		{ActivityID: "ghost", QuestionID: "q9", Seen: true, Answered: true, Correct: true},
	}
	entries := Build(activities, nil, nil, polls, DefaultOptions())
	if entries[0].Correctness.Percent != 50 {
		t.Errorf("correctness = %+v, want 50%%", entries[0].Correctness)
	}
	if entries[0].QuestionsPlanned != 2 {
		t.Errorf("questions planned = %d, want 2 from the activity record", entries[0].QuestionsPlanned)
	}
}

func TestDurationRatioAndInsights(t *testing.T) {
	tests := []struct {
		name      string
		planned   float64
		actual    float64
		correct   int
		wrong     int
		wantRatio float64
		wantPart  string
	}{
		{"well calibrated", 60, 60, 9, 1, 1.0, "well calibrated"},
		{"overran while high", 60, 90, 9, 1, 1.5, "reclaimed"},
		{"cut short and low", 60, 30, 1, 9, 0.5, "full window"},
		{"low despite time", 60, 60, 1, 9, 1.0, "needs revisiting"},
		{"no plan", 0, 60, 9, 1, 0, "well calibrated"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			activities := []session.ActivityRecord{{
				ID:                 "a1",
				Start:              clock(500),
				End:                clock(560),
				Happened:           true,
				PlannedDurationSec: tt.planned,
				ActualDurationSec:  tt.actual,
			}}
			var polls []session.PollResponse
			for i := 0; i < tt.correct; i++ {
				polls = append(polls, session.PollResponse{ActivityID: "a1", Seen: true, Answered: true, Correct: true})
			}
			for i := 0; i < tt.wrong; i++ {
				polls = append(polls, session.PollResponse{ActivityID: "a1", Seen: true, Answered: true, Correct: false})
			}

			entries := Build(activities, nil, nil, polls, DefaultOptions())
			entry := entries[0]
			if entry.DurationRatio != tt.wantRatio {
				t.Errorf("ratio = %v, want %v", entry.DurationRatio, tt.wantRatio)
			}
			if !strings.Contains(entry.Insight, tt.wantPart) {
				t.Errorf("insight = %q, want it to contain %q", entry.Insight, tt.wantPart)
			}
		})
	}
}

func TestNoResponsesInsight(t *testing.T) {
	activities := []session.ActivityRecord{
		{ID: "a1", Start: clock(500), End: clock(560), Happened: true},
	}
	entries := Build(activities, nil, nil, nil, DefaultOptions())
	if !strings.Contains(entries[0].Insight, "no responses") {
		t.Errorf("insight = %q, want the no-responses branch", entries[0].Insight)
	}
}
