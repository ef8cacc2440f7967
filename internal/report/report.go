package report

import "math"

// Report is the complete derived quality report for one session.
type Report struct {
	Session    Session     `json:"session"`
	Summary    Summary     `json:"summary"`
	Activities []Activity  `json:"activities"`
	Feedback   Feedback    `json:"feedback"`
	Criteria   []Criterion `json:"criteria"`
	FinalScore float64     `json:"final_score"`
}

// Session carries the descriptive metadata echoed into the report.
type Session struct {
	Topic        string `json:"topic"`
	Level        string `json:"level"`
	TeacherName  string `json:"teacher_name"`
	StudentCount int    `json:"student_count"`
}

// Summary holds the session-wide headline numbers.
type Summary struct {
	OverallCorrectnessPct int     `json:"overall_correctness_pct"`
	ResponseRatePct       int     `json:"response_rate_pct"`
	TeacherTalkMin        float64 `json:"teacher_talk_min"`
	StudentActivePct      int     `json:"student_active_pct"`
	ActivitiesPlanned     int     `json:"activities_planned"`
	ActivitiesHappened    int     `json:"activities_happened"`
	TopicsCovered         string  `json:"topics_covered"`
}

// Activity is one measured activity with its surrounding context.
type Activity struct {
	ID                string      `json:"id"`
	Type              string      `json:"type"`
	StartSec          float64     `json:"start_sec"`
	EndSec            float64     `json:"end_sec"`
	PreTeachSec       float64     `json:"pre_teach_sec"`
	PreTopics         string      `json:"pre_topics"`
	TalkDuringSec     float64     `json:"talk_during_sec"`
	ProtocolViolation bool        `json:"protocol_violation"`
	PostTeachSec      float64     `json:"post_teach_sec"`
	Correctness       Correctness `json:"correctness"`
	QuestionsPlanned  int         `json:"questions_planned"`
	Questions         []Question  `json:"questions"`
	ConfusionDetected bool        `json:"confusion_detected"`
	ConfusionSamples  []string    `json:"confusion_samples"`
	DurationRatio     float64     `json:"duration_ratio"`
	Insight           string      `json:"insight"`
}

// Correctness is an answered/correct tally with its derived percent.
type Correctness struct {
	Answered int `json:"answered"`
	Correct  int `json:"correct"`
	Percent  int `json:"percent"`
}

// Question is the per-question correctness breakdown.
type Question struct {
	QuestionID string `json:"question_id"`
	Answered   int    `json:"answered"`
	Correct    int    `json:"correct"`
	Percent    int    `json:"percent"`
}

// Feedback splits generated feedback into praise and improvements.
type Feedback struct {
	Positive     []Item `json:"positive"`
	Improvements []Item `json:"improvements"`
}

// Item is one actionable feedback statement.
type Item struct {
	Category       string  `json:"category"`
	ActivityID     string  `json:"activity_id,omitempty"`
	Positive       bool    `json:"positive"`
	Text           string  `json:"text"`
	RecommendedSec float64 `json:"recommended_sec,omitempty"`
	ActualSec      float64 `json:"actual_sec,omitempty"`
}

// Criterion is one graded rubric criterion.
type Criterion struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Score           float64  `json:"score"`
	Evidence        []string `json:"evidence"`
	Commentary      []string `json:"commentary"`
	Recommendations []string `json:"recommendations"`
}

// New returns a report with every slice initialized.
func New() *Report {
	return &Report{
		Activities: []Activity{},
		Feedback: Feedback{
			Positive:     []Item{},
			Improvements: []Item{},
		},
		Criteria: []Criterion{},
	}
}

// Round1 rounds a value to one decimal place for report fields.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
