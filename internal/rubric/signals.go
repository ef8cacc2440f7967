package rubric

// Signals aggregates every derived metric the criteria check. All fields are
// plain values so a criterion evaluation is a pure function of this struct.
type Signals struct {
	// Correctness and responses.
	OverallCorrectnessPct int
	ResponseRatePct       int
	ActivitiesMeasured    int
	ActivitiesBelow50     int
	AnsweredTotal         int

	// Talk and pacing.
	TeacherTalkMin   float64
	OverLongSegments int
	SegmentCount     int

	// Participation and chat.
	StudentCount         int
	StudentActivePct     int
	StudentMessageCount  int
	ChatParticipationPct int
	BurstCount           int
	PromptedBurstCount   int

	// Climate.
	SessionTemperature float64
	PositiveSentiment  int
	NegativeSentiment  int

	// Timeline findings.
	ConfusionActivities    int
	ConfusionAddressed     int
	ProtocolViolations     int
	FrontCallFlags         int
	WellCalibratedCount    int
	OverranPlanCount       int
	DistinctTopicCount     int
	ActivitiesPlanned      int
	ActivitiesHappened     int
	NegativeFeedbackCount  int
	PositiveFeedbackCount  int
}

// SentimentRatio is positive over negative sentiment; a session with no
// negative reactions counts as strongly positive once anything was recorded.
func (s Signals) SentimentRatio() float64 {
	if s.NegativeSentiment == 0 {
		if s.PositiveSentiment > 0 {
			return float64(s.PositiveSentiment)
		}
		return 1
	}
	return float64(s.PositiveSentiment) / float64(s.NegativeSentiment)
}
