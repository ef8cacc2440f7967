package rubric

import "math"

// OverallCriterionID identifies the synthesized summary criterion.
const OverallCriterionID = "overall"

// recommendationThreshold is the score below which a criterion carries
// improvement recommendations; at or above it, a single affirmation.
const recommendationThreshold = 4.0

// CriterionScore is the graded outcome of a single rubric criterion.
type CriterionScore struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Score           float64  `json:"score"`
	Evidence        []string `json:"evidence"`
	Commentary      []string `json:"commentary"`
	Recommendations []string `json:"recommendations"`
}

// Score grades the session signals against every criterion in rubric order
// and appends the synthesized overall criterion. The per-activity insight
// strings become the time-management commentary. Output depends only on the
// inputs.
func Score(s Signals, insights []string) []CriterionScore {
	defs := criteria()
	scores := make([]CriterionScore, 0, len(defs)+1)
	for _, def := range defs {
		cs := scoreCriterion(def, s)
		if def.id == "time_management" {
			cs.Commentary = append(cs.Commentary, insights...)
		}
		scores = append(scores, cs)
	}
	scores = append(scores, overallScore(scores))
	return scores
}

// FinalScore is the mean of all criterion scores, including the
// overall criterion, rounded to one decimal place.
func FinalScore(scores []CriterionScore) float64 {
	if len(scores) == 0 {
		return 0
	}
	sum := 0.0
	for _, cs := range scores {
		sum += cs.Score
	}
	return math.Round(sum/float64(len(scores))*10) / 10
}

func scoreCriterion(def criterion, s Signals) CriterionScore {
	cs := CriterionScore{
		ID:              def.id,
		Name:            def.name,
		Evidence:        []string{},
		Commentary:      []string{},
		Recommendations: []string{},
	}
	score := baseScore
	var recs []string
	for _, c := range def.checks {
		if !c.when(s) {
			continue
		}
		score += c.delta
		cs.Evidence = append(cs.Evidence, c.evidence(s))
		if c.delta < 0 && c.recommendation != "" {
			recs = append(recs, c.recommendation)
		}
	}
	cs.Score = snap(score)

	switch {
	case cs.Score >= recommendationThreshold:
		cs.Recommendations = append(cs.Recommendations, def.affirmation)
	case len(recs) > 0:
		cs.Recommendations = append(cs.Recommendations, recs...)
	default:
		cs.Recommendations = append(cs.Recommendations, def.fallbackRec)
	}
	return cs
}

func overallScore(scores []CriterionScore) CriterionScore {
	cs := CriterionScore{
		ID:              OverallCriterionID,
		Name:            "Overall",
		Score:           baseScore,
		Evidence:        []string{},
		Commentary:      []string{},
		Recommendations: []string{},
	}
	if len(scores) > 0 {
		sum := 0.0
		for _, other := range scores {
			sum += other.Score
		}
		cs.Score = snap(sum / float64(len(scores)))
	}
	if cs.Score >= recommendationThreshold {
		cs.Recommendations = append(cs.Recommendations, "a strong session overall; keep this structure")
	} else {
		cs.Recommendations = append(cs.Recommendations, "start with the lowest-scoring criteria above")
	}
	return cs
}

// snap clamps a score into the rubric range and rounds it to the
// nearest half step.
func snap(score float64) float64 {
	score = math.Round(score/stepSize) * stepSize
	if score < minScore {
		return minScore
	}
	if score > maxScore {
		return maxScore
	}
	return score
}
