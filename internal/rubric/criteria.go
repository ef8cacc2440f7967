package rubric

import "fmt"

// Fixed grading thresholds. These are deliberately constants, not
// configuration: rubric scores must be comparable across sessions.
const (
	baseScore = 3.0
	minScore  = 1.0
	maxScore  = 5.0
	stepSize  = 0.5

	strongCorrectnessPct   = 75
	weakCorrectnessPct     = 50
	strongResponseRatePct  = 80
	weakResponseRatePct    = 40
	strongChatSharePct     = 50
	warmTemperature        = 70.0
	coldTemperature        = 40.0
	positiveSentimentRatio = 2.0
	talkCeilingMin         = 15.0
)

type check struct {
	when     func(s Signals) bool
	delta    float64
	evidence func(s Signals) string
	// recommendation is only surfaced on subtracting checks.
	recommendation string
}

type criterion struct {
	id   string
	name string
	// affirmation is surfaced instead of recommendations when the score is
	// high; fallbackRec covers a middling score where no failing check fired.
	affirmation string
	fallbackRec string
	checks      []check
}

func criteria() []criterion {
	return []criterion{
		{
			id:          "content_mastery",
			name:        "Content Mastery",
			affirmation: "comprehension signals are strong; keep the current depth of explanation",
			fallbackRec: "probe understanding with one extra checkpoint question per concept",
			checks: []check{
				{
					when:  func(s Signals) bool { return s.OverallCorrectnessPct >= strongCorrectnessPct && s.AnsweredTotal > 0 },
					delta: stepSize,
					evidence: func(s Signals) string {
						return fmt.Sprintf("strong comprehension: %d%% of answered questions were correct", s.OverallCorrectnessPct)
					},
				},
				{
					when:  func(s Signals) bool { return s.ActivitiesMeasured > 0 && s.ActivitiesBelow50 == 0 },
					delta: stepSize,
					evidence: func(s Signals) string {
						return fmt.Sprintf("none of the %d measured activities fell below %d%% correct", s.ActivitiesMeasured, weakCorrectnessPct)
					},
				},
				{
					when:  func(s Signals) bool { return s.AnsweredTotal > 0 && s.OverallCorrectnessPct < weakCorrectnessPct },
					delta: -stepSize,
					evidence: func(s Signals) string {
						return fmt.Sprintf("overall correctness of %d%% signals comprehension gaps", s.OverallCorrectnessPct)
					},
					recommendation: "revisit the concepts behind the lowest-scoring questions before the next session",
				},
				{
					when:  func(s Signals) bool { return s.ConfusionActivities >= 2 },
					delta: -stepSize,
					evidence: func(s Signals) string {
						return fmt.Sprintf("confusion signals appeared around %d activities", s.ConfusionActivities)
					},
					recommendation: "pause for a comprehension check as soon as confusion shows up in chat",
				},
			},
		},
		{
			id:          "student_engagement",
			name:        "Student Engagement",
			affirmation: "students are answering and writing; the participation habits are working",
			fallbackRec: "invite one written reaction per explanation block to lift participation",
			checks: []check{
				{
					when:  func(s Signals) bool { return s.ResponseRatePct >= strongResponseRatePct },
					delta: stepSize,
					evidence: func(s Signals) string {
						return fmt.Sprintf("%d%% of seen prompts were answered", s.ResponseRatePct)
					},
				},
				{
					when:  func(s Signals) bool { return s.ChatParticipationPct >= strongChatSharePct },
					delta: stepSize,
					evidence: func(s Signals) string {
						return fmt.Sprintf("%d%% of students wrote in chat", s.ChatParticipationPct)
					},
				},
				{
					when:     func(s Signals) bool { return s.StudentMessageCount == 0 },
					delta:    -stepSize,
					evidence: func(s Signals) string { return "no student wrote a single chat message" },
					recommendation: "seed the chat with low-stakes prompts so writing in it feels normal",
				},
				{
					when:  func(s Signals) bool { return s.ResponseRatePct < weakResponseRatePct },
					delta: -stepSize,
					evidence: func(s Signals) string {
						return fmt.Sprintf("only %d%% of seen prompts were answered", s.ResponseRatePct)
					},
					recommendation: "leave more answer time and name the poll before moving on",
				},
			},
		},
		{
			id:          "communication",
			name:        "Communication & Presence",
			affirmation: "the room reads warm and the delivery lands; no change needed",
			fallbackRec: "vary tone and check in with the room between explanation blocks",
			checks: []check{
				{
					when:  func(s Signals) bool { return s.SentimentRatio() >= positiveSentimentRatio },
					delta: stepSize,
					evidence: func(s Signals) string {
						return fmt.Sprintf("positive reactions outweighed negative ones %d to %d", s.PositiveSentiment, s.NegativeSentiment)
					},
				},
				{
					when:  func(s Signals) bool { return s.SentimentRatio() < 1 },
					delta: -stepSize,
					evidence: func(s Signals) string {
						return fmt.Sprintf("negative reactions outweighed positive ones %d to %d", s.NegativeSentiment, s.PositiveSentiment)
					},
					recommendation: "close explanation blocks by inviting reactions; silence usually reads as disengagement",
				},
				{
					when:  func(s Signals) bool { return s.SessionTemperature >= warmTemperature },
					delta: stepSize,
					evidence: func(s Signals) string {
						return fmt.Sprintf("session temperature of %.0f indicates a warm room", s.SessionTemperature)
					},
				},
				{
					when:  func(s Signals) bool { return s.SessionTemperature > 0 && s.SessionTemperature < coldTemperature },
					delta: -stepSize,
					evidence: func(s Signals) string {
						return fmt.Sprintf("session temperature of %.0f indicates a cold room", s.SessionTemperature)
					},
					recommendation: "open with a short warm-up exchange before the first content block",
				},
				{
					when:  func(s Signals) bool { return s.OverLongSegments >= 2 },
					delta: -stepSize,
					evidence: func(s Signals) string {
						return fmt.Sprintf("%d monologues ran past the pacing threshold", s.OverLongSegments)
					},
					recommendation: "break long explanations with a question every two minutes",
				},
			},
		},
		{
			id:          "time_management",
			name:        "Time Management",
			affirmation: "activities ran to plan and talk time stayed in bounds",
			fallbackRec: "compare planned against actual durations when preparing the next session",
			checks: []check{
				{
					when:  func(s Signals) bool { return s.WellCalibratedCount > 0 && s.OverranPlanCount == 0 },
					delta: stepSize,
					evidence: func(s Signals) string {
						return fmt.Sprintf("%d activities ran close to their planned duration", s.WellCalibratedCount)
					},
				},
				{
					when:  func(s Signals) bool { return s.OverranPlanCount >= 1 },
					delta: -stepSize,
					evidence: func(s Signals) string {
						return fmt.Sprintf("%d activities overran their plan", s.OverranPlanCount)
					},
					recommendation: "set a visible timer for activities that tend to sprawl",
				},
				{
					when:  func(s Signals) bool { return s.TeacherTalkMin > talkCeilingMin },
					delta: -stepSize,
					evidence: func(s Signals) string {
						return fmt.Sprintf("teacher talk totalled %.1f min against a %.0f min ceiling", s.TeacherTalkMin, talkCeilingMin)
					},
					recommendation: "convert part of the lecture into a guided exercise",
				},
				{
					when:  func(s Signals) bool { return s.TeacherTalkMin > 0 && s.TeacherTalkMin <= talkCeilingMin },
					delta: stepSize,
					evidence: func(s Signals) string {
						return fmt.Sprintf("teacher talk stayed at %.1f min, under the ceiling", s.TeacherTalkMin)
					},
				},
			},
		},
		{
			id:          "instructional_accuracy",
			name:        "Instructional Accuracy",
			affirmation: "measurement protocols were respected throughout",
			fallbackRec: "review the activity protocols before the next measured session",
			checks: []check{
				{
					when:  func(s Signals) bool { return s.ProtocolViolations == 0 && s.FrontCallFlags == 0 && s.ActivitiesHappened > 0 },
					delta: stepSize,
					evidence: func(s Signals) string {
						return "every activity was run by its protocol"
					},
				},
				{
					when:  func(s Signals) bool { return s.ProtocolViolations >= 1 },
					delta: -stepSize,
					evidence: func(s Signals) string {
						return fmt.Sprintf("%d activities were invalidated by teacher talk during independent work", s.ProtocolViolations)
					},
					recommendation: "stay silent during exit tickets; park clarifications for afterwards",
				},
				{
					when:  func(s Signals) bool { return s.FrontCallFlags >= 1 },
					delta: -stepSize,
					evidence: func(s Signals) string {
						return fmt.Sprintf("%d front-of-class walkthroughs happened after results were already strong", s.FrontCallFlags)
					},
					recommendation: "reserve board walkthroughs for results below the strong threshold",
				},
				{
					when:  func(s Signals) bool { return s.ConfusionActivities > s.ConfusionAddressed },
					delta: -stepSize,
					evidence: func(s Signals) string {
						return fmt.Sprintf("confusion around %d activities received no follow-up explanation", s.ConfusionActivities-s.ConfusionAddressed)
					},
					recommendation: "answer confusion signals before starting the next block",
				},
			},
		},
		{
			id:          "distinctive_moments",
			name:        "Distinctive Moments",
			affirmation: "the session had real peaks; students reacted in clusters",
			fallbackRec: "build one memorable worked example into the plan",
			checks: []check{
				{
					when:  func(s Signals) bool { return s.BurstCount >= 2 },
					delta: stepSize,
					evidence: func(s Signals) string {
						return fmt.Sprintf("%d chat engagement bursts lit up the session", s.BurstCount)
					},
				},
				{
					when:  func(s Signals) bool { return s.DistinctTopicCount >= 3 },
					delta: stepSize,
					evidence: func(s Signals) string {
						return fmt.Sprintf("instruction touched %d distinct concepts", s.DistinctTopicCount)
					},
				},
				{
					when:  func(s Signals) bool { return s.PromptedBurstCount >= 1 },
					delta: stepSize,
					evidence: func(s Signals) string {
						return fmt.Sprintf("%d bursts followed directly on teacher talk", s.PromptedBurstCount)
					},
				},
				{
					when:     func(s Signals) bool { return s.BurstCount == 0 && s.StudentMessageCount == 0 },
					delta:    -stepSize,
					evidence: func(s Signals) string { return "the session produced no standout interaction moments" },
					recommendation: "plan one deliberately surprising example per session",
				},
			},
		},
		{
			id:          "pacing_structure",
			name:        "Pacing & Structure",
			affirmation: "instruction stayed broken up and the plan held together",
			fallbackRec: "rehearse the transitions between explanation and activity blocks",
			checks: []check{
				{
					when:  func(s Signals) bool { return s.SegmentCount > 0 && s.OverLongSegments == 0 },
					delta: stepSize,
					evidence: func(s Signals) string {
						return fmt.Sprintf("all %d speech segments stayed under the continuous-talk limit", s.SegmentCount)
					},
				},
				{
					when:  func(s Signals) bool { return s.OverLongSegments >= 1 },
					delta: -stepSize,
					evidence: func(s Signals) string {
						return fmt.Sprintf("%d speech segments ran past the continuous-talk limit", s.OverLongSegments)
					},
					recommendation: "split long explanations around a quick poll",
				},
				{
					when:  func(s Signals) bool { return s.ActivitiesPlanned > 0 && s.ActivitiesHappened == s.ActivitiesPlanned },
					delta: stepSize,
					evidence: func(s Signals) string {
						return fmt.Sprintf("all %d planned activities happened", s.ActivitiesPlanned)
					},
				},
				{
					when:  func(s Signals) bool { return s.ActivitiesHappened < s.ActivitiesPlanned },
					delta: -stepSize,
					evidence: func(s Signals) string {
						return fmt.Sprintf("%d of %d planned activities were skipped", s.ActivitiesPlanned-s.ActivitiesHappened, s.ActivitiesPlanned)
					},
					recommendation: "trim lecture content rather than dropping measurement activities",
				},
			},
		},
		{
			id:          "responsiveness",
			name:        "Responsiveness",
			affirmation: "student signals were picked up and answered in the moment",
			fallbackRec: "set aside a minute after each activity to react to the chat",
			checks: []check{
				{
					when:  func(s Signals) bool { return s.ConfusionActivities > 0 && s.ConfusionAddressed == s.ConfusionActivities },
					delta: stepSize,
					evidence: func(s Signals) string {
						return fmt.Sprintf("every one of %d confusion signals was followed by an explanation", s.ConfusionActivities)
					},
				},
				{
					when:  func(s Signals) bool { return s.ConfusionActivities > s.ConfusionAddressed },
					delta: -stepSize,
					evidence: func(s Signals) string {
						return fmt.Sprintf("%d confusion signals went unanswered", s.ConfusionActivities-s.ConfusionAddressed)
					},
					recommendation: "scan the chat after each activity before moving on",
				},
				{
					when:  func(s Signals) bool { return s.PromptedBurstCount >= 1 },
					delta: stepSize,
					evidence: func(s Signals) string {
						return fmt.Sprintf("students reacted in chat right after teacher prompts %d time(s)", s.PromptedBurstCount)
					},
				},
				{
					when:  func(s Signals) bool { return s.StudentMessageCount > 0 && s.BurstCount == 0 },
					delta: -stepSize,
					evidence: func(s Signals) string {
						return "chat stayed a trickle; no prompt gathered a cluster of replies"
					},
					recommendation: "ask questions addressed to the whole chat, not to volunteers",
				},
			},
		},
	}
}
