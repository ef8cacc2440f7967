package timeline

import "fmt"

// calibrationInsight describes how well the time spent on an activity matched
// its outcome. Rules are checked in order; the first hit wins.
func calibrationInsight(entry Entry, opts Options) string {
	pct := entry.Correctness.Percent
	ratio := entry.DurationRatio

	type rule struct {
		when func() bool
		text func() string
	}

	rules := []rule{
		{
			when: func() bool { return entry.ProtocolViolation },
			text: func() string {
				return fmt.Sprintf("teacher talk overlapped this %s for %.0fs; results cannot be trusted as independent work", entry.Type, entry.TalkDuringSeconds)
			},
		},
		{
			when: func() bool { return entry.Correctness.Answered == 0 },
			text: func() string { return "no responses were recorded, so timing cannot be judged against outcomes" },
		},
		{
			when: func() bool { return ratio > 0 && ratio > opts.RatioHigh && pct >= 75 },
			text: func() string {
				return fmt.Sprintf("activity ran %.1fx its plan although %d%% already answered correctly; some of that time could be reclaimed", ratio, pct)
			},
		},
		{
			when: func() bool { return ratio > 0 && ratio < opts.RatioLow && pct < 50 },
			text: func() string {
				return fmt.Sprintf("activity was cut to %.1fx its plan and only %d%% answered correctly; the concept likely needed the full window", ratio, pct)
			},
		},
		{
			when: func() bool { return pct < 50 },
			text: func() string {
				return fmt.Sprintf("only %d%% answered correctly despite adequate time; the explanation, not the schedule, needs revisiting", pct)
			},
		},
		{
			when: func() bool { return ratio > 0 && ratio > opts.RatioHigh },
			text: func() string {
				return fmt.Sprintf("activity ran %.1fx its planned duration; correctness of %d%% suggests the extra time helped only partially", ratio, pct)
			},
		},
		{
			when: func() bool { return ratio > 0 && ratio < opts.RatioLow },
			text: func() string {
				return fmt.Sprintf("activity finished early at %.1fx its plan and still reached %d%% correct; the class was ready for it", ratio, pct)
			},
		},
		{
			when: func() bool { return pct >= 75 },
			text: func() string {
				return fmt.Sprintf("explanation time was well calibrated; %d%% answered correctly", pct)
			},
		},
	}

	for _, r := range rules {
		if r.when() {
			return r.text()
		}
	}
	return fmt.Sprintf("%d%% answered correctly with timing close to plan; outcome was acceptable but has headroom", pct)
}
