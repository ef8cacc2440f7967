package session

import "strings"

// ActivityType classifies a planned classroom activity.
type ActivityType string

const (
	// ActivitySectionCheck is a quick comprehension check after a section.
	ActivitySectionCheck ActivityType = "section_check"
	// ActivityTeamExercise is a collaborative exercise worked in groups.
	ActivityTeamExercise ActivityType = "team_exercise"
	// ActivityExitTicket is an individually completed end-of-class measurement.
	// Teacher talk during an exit ticket invalidates the measurement.
	ActivityExitTicket ActivityType = "exit_ticket"
)

var allActivityTypes = []ActivityType{
	ActivitySectionCheck,
	ActivityTeamExercise,
	ActivityExitTicket,
}

// ParseActivityType coerces a raw type string to a canonical ActivityType.
// Unknown values map to ActivitySectionCheck rather than failing.
func ParseActivityType(raw string) ActivityType {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	normalized = strings.NewReplacer("-", "_", " ", "_").Replace(normalized)
	for _, t := range allActivityTypes {
		if normalized == string(t) {
			return t
		}
	}
	switch {
	case strings.Contains(normalized, "exit"), strings.Contains(normalized, "ticket"):
		return ActivityExitTicket
	case strings.Contains(normalized, "team"), strings.Contains(normalized, "group"):
		return ActivityTeamExercise
	default:
		return ActivitySectionCheck
	}
}

// String returns a human-readable label for the activity type.
func (t ActivityType) String() string {
	switch t {
	case ActivityTeamExercise:
		return "team exercise"
	case ActivityExitTicket:
		return "exit ticket"
	default:
		return "section check"
	}
}

// Role identifies a chat author.
type Role string

const (
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
)

// ParseRole coerces a raw role string; anything not recognizably the teacher
// counts as a student.
func ParseRole(raw string) Role {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case strings.Contains(normalized, "teach"), strings.Contains(normalized, "instructor"), strings.Contains(normalized, "host"):
		return RoleTeacher
	default:
		return RoleStudent
	}
}

// TranscriptLine is a single row of the teacher speech transcript. Start and
// End are raw clock strings; rows whose clocks fail to parse are dropped from
// temporal analysis but the line itself is never an error.
type TranscriptLine struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Text  string `json:"text"`
}

// ChatMessage is a single chat entry.
type ChatMessage struct {
	Timestamp string `json:"timestamp"`
	Role      Role   `json:"role"`
	AuthorID  string `json:"author_id"`
	Text      string `json:"text"`
}

// PollResponse records one student's interaction with one poll question.
type PollResponse struct {
	QuestionID string `json:"question_id"`
	ActivityID string `json:"activity_id"`
	Seen       bool   `json:"seen"`
	Answered   bool   `json:"answered"`
	Correct    bool   `json:"correct"`
}

// ActivityRecord describes one planned activity window.
type ActivityRecord struct {
	ID                 string       `json:"id"`
	Type               ActivityType `json:"type"`
	Start              string       `json:"start"`
	End                string       `json:"end"`
	Happened           bool         `json:"happened"`
	PlannedDurationSec float64      `json:"planned_duration_sec"`
	ActualDurationSec  float64      `json:"actual_duration_sec"`
	TotalQuestions     int          `json:"total_questions"`
}

// StudentSummary is the per-student rollup produced by the session platform.
type StudentSummary struct {
	StudentID          string  `json:"student_id"`
	Name               string  `json:"name"`
	ActiveSec          float64 `json:"active_sec"`
	MessagesSent       int     `json:"messages_sent"`
	ResponsesSubmitted int     `json:"responses_submitted"`
}

// Metadata carries session-level fields. A nil Metadata is a valid input:
// every derived field defaults instead of erroring.
type Metadata struct {
	Topic               string  `json:"topic"`
	Level               string  `json:"level"`
	TeacherName         string  `json:"teacher_name"`
	TeachingDurationMin float64 `json:"teaching_duration_min"`
	SessionTemperature  float64 `json:"session_temperature"`
	PositiveSentiment   int     `json:"positive_sentiment"`
	NegativeSentiment   int     `json:"negative_sentiment"`
}

// Bundle is the immutable snapshot of one closed session handed to the
// engine. The engine never mutates a bundle.
type Bundle struct {
	Metadata   *Metadata        `json:"metadata"`
	Transcript []TranscriptLine `json:"transcript"`
	Chats      []ChatMessage    `json:"chats"`
	Polls      []PollResponse   `json:"polls"`
	Activities []ActivityRecord `json:"activities"`
	Students   []StudentSummary `json:"students"`
}
