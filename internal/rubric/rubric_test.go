package rubric

import (
	"math"
	"strings"
	"testing"
)

func strongSignals() Signals {
	return Signals{
		OverallCorrectnessPct: 82,
		ResponseRatePct:       90,
		ActivitiesMeasured:    3,
		AnsweredTotal:         24,
		TeacherTalkMin:        9.5,
		SegmentCount:          6,
		StudentCount:          12,
		StudentActivePct:      64,
		StudentMessageCount:   31,
		ChatParticipationPct:  75,
		BurstCount:            3,
		PromptedBurstCount:    2,
		SessionTemperature:    81,
		PositiveSentiment:     14,
		NegativeSentiment:     2,
		WellCalibratedCount:   3,
		DistinctTopicCount:    4,
		ActivitiesPlanned:     3,
		ActivitiesHappened:    3,
	}
}

func findCriterion(t *testing.T, scores []CriterionScore, id string) CriterionScore {
	t.Helper()
	for _, cs := range scores {
		if cs.ID == id {
			return cs
		}
	}
	t.Fatalf("criterion %q missing from %d scores", id, len(scores))
	return CriterionScore{}
}

func TestScoresStayOnHalfSteps(t *testing.T) {
	inputs := []Signals{
		{},
		strongSignals(),
		{OverallCorrectnessPct: 12, AnsweredTotal: 9, ConfusionActivities: 4, ProtocolViolations: 2, OverLongSegments: 3, NegativeSentiment: 8, SessionTemperature: 20, ActivitiesPlanned: 4, ActivitiesHappened: 1, TeacherTalkMin: 22},
	}
	for _, s := range inputs {
		for _, cs := range Score(s, nil) {
			if cs.Score < 1.0 || cs.Score > 5.0 {
				t.Errorf("criterion %s score %v out of range", cs.ID, cs.Score)
			}
			if rem := math.Mod(cs.Score*2, 1); rem != 0 {
				t.Errorf("criterion %s score %v is not a half step", cs.ID, cs.Score)
			}
		}
	}
}

func TestStrongSessionCitesComprehension(t *testing.T) {
	scores := Score(strongSignals(), nil)
	mastery := findCriterion(t, scores, "content_mastery")
	if mastery.Score < 4.0 {
		t.Fatalf("content mastery score = %v, want >= 4.0", mastery.Score)
	}
	found := false
	for _, ev := range mastery.Evidence {
		if strings.Contains(ev, "strong comprehension") {
			found = true
		}
	}
	if !found {
		t.Errorf("content mastery evidence %v lacks a strong comprehension signal", mastery.Evidence)
	}
	if len(mastery.Recommendations) != 1 || !strings.Contains(mastery.Recommendations[0], "keep") {
		t.Errorf("high-scoring criterion should carry a single affirmation, got %v", mastery.Recommendations)
	}
}

func TestSilentChatScoresEngagementLow(t *testing.T) {
	s := Signals{StudentCount: 10, AnsweredTotal: 5, OverallCorrectnessPct: 60, ResponseRatePct: 30}
	scores := Score(s, nil)
	engagement := findCriterion(t, scores, "student_engagement")
	if engagement.Score >= 3.0 {
		t.Fatalf("engagement score = %v for a silent chat, want < 3.0", engagement.Score)
	}
	found := false
	for _, ev := range engagement.Evidence {
		if strings.Contains(ev, "no student wrote") {
			found = true
		}
	}
	if !found {
		t.Errorf("engagement evidence %v does not mention the silent chat", engagement.Evidence)
	}
	if len(engagement.Recommendations) == 0 {
		t.Error("low-scoring criterion has no recommendations")
	}
}

func TestScoreAttachesInsightCommentary(t *testing.T) {
	insights := []string{"explanation time was well calibrated to the result"}
	scores := Score(strongSignals(), insights)
	timeMgmt := findCriterion(t, scores, "time_management")
	if len(timeMgmt.Commentary) != 1 || timeMgmt.Commentary[0] != insights[0] {
		t.Errorf("time management commentary = %v, want the activity insight", timeMgmt.Commentary)
	}
}

func TestOverallIsMeanOfCriteria(t *testing.T) {
	scores := Score(strongSignals(), nil)
	overall := findCriterion(t, scores, OverallCriterionID)
	sum := 0.0
	n := 0
	for _, cs := range scores {
		if cs.ID == OverallCriterionID {
			continue
		}
		sum += cs.Score
		n++
	}
	want := snap(sum / float64(n))
	if overall.Score != want {
		t.Errorf("overall score = %v, want %v", overall.Score, want)
	}
}

func TestFinalScoreRoundsToTenths(t *testing.T) {
	scores := []CriterionScore{{Score: 4.5}, {Score: 3.0}, {Score: 4.0}}
	got := FinalScore(scores)
	if got != 3.8 {
		t.Errorf("FinalScore = %v, want 3.8", got)
	}
	if FinalScore(nil) != 0 {
		t.Errorf("FinalScore(nil) = %v, want 0", FinalScore(nil))
	}
}

func TestSnapClampsRange(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{0.4, 1.0},
		{1.24, 1.0},
		{1.3, 1.5},
		{3.74, 3.5},
		{3.76, 4.0},
		{5.9, 5.0},
	}
	for _, tc := range cases {
		if got := snap(tc.in); got != tc.want {
			t.Errorf("snap(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
