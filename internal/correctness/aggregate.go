package correctness

import (
	"math"

	"lectern/internal/session"
)

// Stat summarizes answered and correct counts for a set of poll responses.
type Stat struct {
	Answered int `json:"answered"`
	Correct  int `json:"correct"`
	// Percent is round(100*Correct/Answered), or 0 when nothing was answered.
	Percent int `json:"percent"`
}

// QuestionStat pairs a question with its aggregate, in first-seen order.
type QuestionStat struct {
	QuestionID string `json:"question_id"`
	Stat
}

// Aggregate computes the correctness stat over all given responses.
func Aggregate(responses []session.PollResponse) Stat {
	var stat Stat
	for _, resp := range responses {
		if !resp.Answered {
			continue
		}
		stat.Answered++
		if resp.Correct {
			stat.Correct++
		}
	}
	stat.Percent = percent(stat.Correct, stat.Answered)
	return stat
}

// ForActivity computes the stat over responses referencing the given activity.
func ForActivity(responses []session.PollResponse, activityID string) Stat {
	filtered := make([]session.PollResponse, 0, len(responses))
	for _, resp := range responses {
		if resp.ActivityID == activityID {
			filtered = append(filtered, resp)
		}
	}
	return Aggregate(filtered)
}

// PerQuestion groups responses by question and aggregates each group.
// Questions appear in first-seen order.
func PerQuestion(responses []session.PollResponse) []QuestionStat {
	order := make([]string, 0)
	grouped := make(map[string][]session.PollResponse)
	for _, resp := range responses {
		if _, seen := grouped[resp.QuestionID]; !seen {
			order = append(order, resp.QuestionID)
		}
		grouped[resp.QuestionID] = append(grouped[resp.QuestionID], resp)
	}

	stats := make([]QuestionStat, 0, len(order))
	for _, id := range order {
		stats = append(stats, QuestionStat{QuestionID: id, Stat: Aggregate(grouped[id])})
	}
	return stats
}

// ResponseRatePercent is the share of seen poll prompts that were answered.
// An answered response counts as seen even when the platform dropped its seen
// flag, which keeps the rate inside [0, 100] on noisy exports.
func ResponseRatePercent(responses []session.PollResponse) int {
	var seen, answered int
	for _, resp := range responses {
		if resp.Seen || resp.Answered {
			seen++
		}
		if resp.Answered {
			answered++
		}
	}
	return percent(answered, seen)
}

func percent(part, whole int) int {
	if whole <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(part) / float64(whole)))
}
