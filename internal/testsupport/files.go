package testsupport

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"lectern/internal/ingest"
	"lectern/internal/session"
)

// WriteBundle materializes a session bundle as a directory of JSON files in
// the layout ingest.LoadBundle expects. Empty streams are omitted, matching
// real platform exports.
func WriteBundle(t testing.TB, dir string, bundle *session.Bundle) {
	t.Helper()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir bundle dir: %v", err)
	}

	write := func(name string, value any, empty bool) {
		if empty {
			return
		}
		data, err := json.MarshalIndent(value, "", "  ")
		if err != nil {
			t.Fatalf("marshal %s: %v", name, err)
		}
		if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	write(ingest.MetadataFile, bundle.Metadata, bundle.Metadata == nil)
	write(ingest.TranscriptFile, bundle.Transcript, len(bundle.Transcript) == 0)
	write(ingest.ChatsFile, bundle.Chats, len(bundle.Chats) == 0)
	write(ingest.PollsFile, bundle.Polls, len(bundle.Polls) == 0)
	write(ingest.ActivitiesFile, bundle.Activities, len(bundle.Activities) == 0)
	write(ingest.StudentsFile, bundle.Students, len(bundle.Students) == 0)
}

// SampleBundle returns a small, fully populated session fixture.
func SampleBundle() *session.Bundle {
	return &session.Bundle{
		Metadata: &session.Metadata{
			Topic:               "Circle Geometry",
			Level:               "grade 8",
			TeacherName:         "Dana Rivera",
			TeachingDurationMin: 30,
			SessionTemperature:  75,
			PositiveSentiment:   8,
			NegativeSentiment:   1,
		},
		Transcript: []session.TranscriptLine{
			{Start: "10:00:00 AM", End: "10:02:00 AM", Text: "the circumference is pi times the diameter"},
			{Start: "10:06:10 AM", End: "10:06:25 AM", Text: "nice work, let's keep going"},
		},
		Chats: []session.ChatMessage{
			{Timestamp: "10:03:00 AM", Role: "student", AuthorID: "s1", Text: "got it"},
		},
		Polls: []session.PollResponse{
			{QuestionID: "q1", ActivityID: "a1", Seen: true, Answered: true, Correct: true},
			{QuestionID: "q1", ActivityID: "a1", Seen: true, Answered: true, Correct: true},
		},
		Activities: []session.ActivityRecord{
			{
				ID: "a1", Type: session.ActivitySectionCheck,
				Start: "10:04:00 AM", End: "10:06:00 AM", Happened: true,
				PlannedDurationSec: 120, ActualDurationSec: 120, TotalQuestions: 1,
			},
		},
		Students: []session.StudentSummary{
			{StudentID: "s1", Name: "Mia Chen", ActiveSec: 1200, MessagesSent: 1, ResponsesSubmitted: 2},
		},
	}
}
