package session

import "testing"

func TestParseActivityType(t *testing.T) {
	tests := []struct {
		input string
		want  ActivityType
	}{
		{"section_check", ActivitySectionCheck},
		{"Section Check", ActivitySectionCheck},
		{"team_exercise", ActivityTeamExercise},
		{"Team-Exercise", ActivityTeamExercise},
		{"group work", ActivityTeamExercise},
		{"exit_ticket", ActivityExitTicket},
		{"Exit Ticket", ActivityExitTicket},
		{"ticket", ActivityExitTicket},
		{"", ActivitySectionCheck},
		{"quiz", ActivitySectionCheck},
		{"???", ActivitySectionCheck},
	}
	for _, tt := range tests {
		if got := ParseActivityType(tt.input); got != tt.want {
			t.Errorf("ParseActivityType(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParseRole(t *testing.T) {
	tests := []struct {
		input string
		want  Role
	}{
		{"teacher", RoleTeacher},
		{"Teacher", RoleTeacher},
		{"co-instructor", RoleTeacher},
		{"host", RoleTeacher},
		{"student", RoleStudent},
		{"", RoleStudent},
		{"guest", RoleStudent},
	}
	for _, tt := range tests {
		if got := ParseRole(tt.input); got != tt.want {
			t.Errorf("ParseRole(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestChatEventsDropsUnparseableAndSorts(t *testing.T) {
	messages := []ChatMessage{
		{Timestamp: "10:00:30", Role: RoleStudent, AuthorID: "s2", Text: "second"},
		{Timestamp: "not a clock", Role: RoleStudent, AuthorID: "s9", Text: "dropped"},
		{Timestamp: "10:00:10", Role: RoleTeacher, AuthorID: "t1", Text: "first"},
	}

	events := ChatEvents(messages)
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].Text != "first" || events[1].Text != "second" {
		t.Errorf("events not sorted by time: %+v", events)
	}
	if events[0].Role != RoleTeacher {
		t.Errorf("expected teacher role preserved, got %v", events[0].Role)
	}
}

func TestChatEventsEmpty(t *testing.T) {
	if got := ChatEvents(nil); len(got) != 0 {
		t.Errorf("expected empty slice, got %v", got)
	}
}
