package timeline

import (
	"sort"

	"lectern/internal/config"
	"lectern/internal/correctness"
	"lectern/internal/segments"
	"lectern/internal/session"
	"lectern/internal/textutil"
	"lectern/internal/timeutil"
	"lectern/internal/topics"
)

// Options bundles the correlation windows and pattern tables.
type Options struct {
	PreWindowSec        float64
	PostTailSec         float64
	ConfusionLeadSec    float64
	ConfusionLagSec     float64
	RatioLow            float64
	RatioHigh           float64
	MaxConfusionSamples int
	Topics              *topics.Extractor
	Confusion           *topics.Matcher
}

// DefaultOptions returns options matching the repository default config.
func DefaultOptions() Options {
	return Options{
		PreWindowSec:        config.DefaultPreWindowSec,
		PostTailSec:         config.DefaultPostTailSec,
		ConfusionLeadSec:    config.DefaultConfusionLeadSec,
		ConfusionLagSec:     config.DefaultConfusionLagSec,
		RatioLow:            config.DefaultRatioLow,
		RatioHigh:           config.DefaultRatioHigh,
		MaxConfusionSamples: 3,
		Topics:              topics.DefaultExtractor(),
		Confusion:           topics.DefaultConfusionMatcher(),
	}
}

// Entry is one activity's slot on the correlated timeline.
type Entry struct {
	ActivityID string               `json:"activity_id"`
	Type       session.ActivityType `json:"type"`
	StartSec   float64              `json:"start_sec"`
	EndSec     float64              `json:"end_sec"`

	PreTeachSeconds float64 `json:"pre_teach_seconds"`
	PreTopics       string  `json:"pre_topics"`

	TalkDuringSeconds float64 `json:"talk_during_seconds"`
	TeacherTalkDuring bool    `json:"teacher_talk_during"`
	// ProtocolViolation is set when the teacher talked during an activity
	// whose type requires independent completion.
	ProtocolViolation bool `json:"protocol_violation"`

	PostTeachSeconds float64 `json:"post_teach_seconds"`
	// PostWindowEndSec is where the post-teaching window closed: the next
	// activity's start, or a fixed tail after the final activity.
	PostWindowEndSec float64 `json:"post_window_end_sec"`

	Correctness correctness.Stat `json:"correctness"`
	// QuestionsPlanned is the question count the activity was planned with,
	// for comparison against how many questions actually drew answers.
	QuestionsPlanned int `json:"questions_planned"`

	ConfusionDetected bool     `json:"confusion_detected"`
	ConfusionSamples  []string `json:"confusion_samples"`

	// DurationRatio is actual over planned duration; 0 when no plan exists.
	DurationRatio float64 `json:"duration_ratio"`
	Insight       string  `json:"insight"`
}

type placedActivity struct {
	session.ActivityRecord
	startSec float64
	endSec   float64
}

// Build derives one timeline entry per happened activity, in start order.
// Activities that did not happen, or whose clocks fail to parse, are
// excluded: they cannot be temporally correlated.
func Build(
	activities []session.ActivityRecord,
	lines []segments.Line,
	chats []session.ChatEvent,
	polls []session.PollResponse,
	opts Options,
) []Entry {
	if opts.Topics == nil {
		opts.Topics = topics.DefaultExtractor()
	}
	if opts.Confusion == nil {
		opts.Confusion = topics.DefaultConfusionMatcher()
	}
	if opts.MaxConfusionSamples <= 0 {
		opts.MaxConfusionSamples = 3
	}

	placed := make([]placedActivity, 0, len(activities))
	for _, act := range activities {
		if !act.Happened {
			continue
		}
		start, okStart := timeutil.ParseClock(act.Start)
		end, okEnd := timeutil.ParseClock(act.End)
		if !okStart || !okEnd || end < start {
			continue
		}
		// Activity records arrive with whatever type spelling the platform
		// exported; coerce to the canonical enum before any type checks.
		act.Type = session.ParseActivityType(string(act.Type))
		placed = append(placed, placedActivity{ActivityRecord: act, startSec: start, endSec: end})
	}
	// Stable: same-start activities keep source order.
	sort.SliceStable(placed, func(i, j int) bool { return placed[i].startSec < placed[j].startSec })

	entries := make([]Entry, len(placed))
	for i, act := range placed {
		entries[i] = buildEntry(act, i, placed, lines, chats, polls, opts)
	}
	return entries
}

// buildEntry fills one timeline slot. It reads only its own inputs and writes
// only its own slot, so callers may fan entries out across goroutines.
func buildEntry(
	act placedActivity,
	index int,
	placed []placedActivity,
	lines []segments.Line,
	chats []session.ChatEvent,
	polls []session.PollResponse,
	opts Options,
) Entry {
	entry := Entry{
		ActivityID:       act.ID,
		Type:             act.Type,
		StartSec:         act.startSec,
		EndSec:           act.endSec,
		ConfusionSamples: []string{},
	}

	// Pre-teaching window: previous activity end (or session start) up to
	// this start, capped to the most recent PreWindowSec.
	preLow := act.startSec - opts.PreWindowSec
	if index > 0 && placed[index-1].endSec > preLow {
		preLow = placed[index-1].endSec
	}
	entry.PreTeachSeconds = segments.TalkSecondsWithin(lines, preLow, act.startSec)
	entry.PreTopics = opts.Topics.Extract(lineTexts(lines, preLow, act.startSec))

	// In-activity talk.
	entry.TalkDuringSeconds = segments.TalkSecondsWithin(lines, act.startSec, act.endSec)
	entry.TeacherTalkDuring = entry.TalkDuringSeconds > 0
	entry.ProtocolViolation = entry.TeacherTalkDuring && act.Type == session.ActivityExitTicket

	// Post-teaching window: up to the next activity, or a fixed tail after
	// the final one.
	postHigh := act.endSec + opts.PostTailSec
	if index+1 < len(placed) {
		postHigh = placed[index+1].startSec
	}
	entry.PostTeachSeconds = segments.TalkSecondsWithin(lines, act.endSec, postHigh)
	entry.PostWindowEndSec = postHigh

	// Confusion scan over student chat around the activity.
	confLow := act.startSec - opts.ConfusionLeadSec
	confHigh := act.endSec + opts.ConfusionLagSec
	for _, event := range chats {
		if event.Role != session.RoleStudent || event.AtSec < confLow || event.AtSec > confHigh {
			continue
		}
		if !opts.Confusion.Match(event.Text) {
			continue
		}
		entry.ConfusionDetected = true
		if len(entry.ConfusionSamples) < opts.MaxConfusionSamples {
			entry.ConfusionSamples = append(entry.ConfusionSamples, textutil.Snippet(event.Text, 80))
		}
	}

	entry.Correctness = correctness.ForActivity(polls, act.ID)
	entry.QuestionsPlanned = act.TotalQuestions

	actual := act.ActualDurationSec
	if actual <= 0 {
		actual = act.endSec - act.startSec
	}
	if act.PlannedDurationSec > 0 {
		entry.DurationRatio = actual / act.PlannedDurationSec
	}
	entry.Insight = calibrationInsight(entry, opts)

	return entry
}

func lineTexts(lines []segments.Line, startSec, endSec float64) []string {
	var texts []string
	for _, line := range lines {
		if segments.OverlapSeconds(line.StartSec, line.EndSec, startSec, endSec) > 0 {
			texts = append(texts, line.Text)
		}
	}
	return texts
}
