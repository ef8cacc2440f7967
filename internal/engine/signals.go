package engine

import (
	"lectern/internal/correctness"
	"lectern/internal/feedback"
	"lectern/internal/rubric"
	"lectern/internal/segments"
	"lectern/internal/session"
	"lectern/internal/timeline"
)

func (e *Engine) deriveSignals(
	bundle *session.Bundle,
	meta *session.Metadata,
	lines []segments.Line,
	segs []segments.Segment,
	chats []session.ChatEvent,
	entries []timeline.Entry,
	positive, negative []feedback.Item,
	teachingMin float64,
	topicsCovered string,
) rubric.Signals {
	overall := correctness.Aggregate(bundle.Polls)

	s := rubric.Signals{
		OverallCorrectnessPct: overall.Percent,
		ResponseRatePct:       correctness.ResponseRatePercent(bundle.Polls),
		AnsweredTotal:         overall.Answered,

		TeacherTalkMin:   segments.TotalTalkSeconds(lines) / 60,
		OverLongSegments: len(segments.OverLong(segs, e.cfg.Segments.MaxContinuousSec)),
		SegmentCount:     len(segs),

		StudentCount:     len(bundle.Students),
		StudentActivePct: feedback.StudentActivePercent(bundle.Students, teachingMin),

		SessionTemperature: meta.SessionTemperature,
		PositiveSentiment:  meta.PositiveSentiment,
		NegativeSentiment:  meta.NegativeSentiment,

		DistinctTopicCount:    distinctTopicCount(topicsCovered, e.extractor.Fallback()),
		ActivitiesPlanned:     len(bundle.Activities),
		PositiveFeedbackCount: len(positive),
		NegativeFeedbackCount: len(negative),
	}

	for _, act := range bundle.Activities {
		if act.Happened {
			s.ActivitiesHappened++
		}
	}

	for _, entry := range entries {
		if entry.Correctness.Answered > 0 {
			s.ActivitiesMeasured++
			if entry.Correctness.Percent < feedback.MediumCorrectnessPct {
				s.ActivitiesBelow50++
			}
		}
		if entry.ConfusionDetected {
			s.ConfusionActivities++
			if entry.PostTeachSeconds >= confusionFollowUpSec {
				s.ConfusionAddressed++
			}
		}
		if entry.ProtocolViolation {
			s.ProtocolViolations++
		}
		if entry.Correctness.Percent > feedback.HighCorrectnessPct &&
			feedback.CalledToFront(lines, entry.EndSec, entry.PostWindowEndSec) {
			s.FrontCallFlags++
		}
		if entry.DurationRatio > 0 {
			switch {
			case entry.DurationRatio > e.cfg.Timeline.RatioHigh:
				s.OverranPlanCount++
			case entry.DurationRatio >= e.cfg.Timeline.RatioLow:
				s.WellCalibratedCount++
			}
		}
	}

	authors := make(map[string]struct{})
	for _, event := range chats {
		if event.Role != session.RoleStudent {
			continue
		}
		s.StudentMessageCount++
		if event.AuthorID != "" {
			authors[event.AuthorID] = struct{}{}
		}
	}
	if s.StudentCount > 0 {
		s.ChatParticipationPct = pct(len(authors), s.StudentCount)
	}

	bursts := feedback.DetectBursts(chats, e.cfg.Engagement.BurstWindowSec, e.cfg.Engagement.BurstMinMessages)
	s.BurstCount = len(bursts)
	for _, burst := range bursts {
		if burst.OverlapsTeacherTalk(segs, e.cfg.Engagement.BurstOverlapToleranceSec) {
			s.PromptedBurstCount++
		}
	}

	return s
}

func pct(part, whole int) int {
	if whole == 0 {
		return 0
	}
	p := 100 * part / whole
	if p > 100 {
		return 100
	}
	return p
}
