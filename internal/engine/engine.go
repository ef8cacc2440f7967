package engine

import (
	"fmt"
	"log/slog"
	"strings"

	"lectern/internal/config"
	"lectern/internal/correctness"
	"lectern/internal/feedback"
	"lectern/internal/logging"
	"lectern/internal/report"
	"lectern/internal/rubric"
	"lectern/internal/segments"
	"lectern/internal/session"
	"lectern/internal/textutil"
	"lectern/internal/timeline"
	"lectern/internal/topics"
)

// confusionFollowUpSec is the minimum post-activity explanation that counts
// as having addressed a confusion signal.
const confusionFollowUpSec = feedback.MediumBandMinExplainSec

// Engine evaluates session bundles against one configuration.
type Engine struct {
	cfg       *config.Config
	logger    *slog.Logger
	extractor *topics.Extractor
	confusion *topics.Matcher
}

// New builds an engine from validated configuration. The vocabulary pattern
// tables are compiled once here, not per evaluation.
func New(cfg *config.Config, logger *slog.Logger) (*Engine, error) {
	if cfg == nil {
		return nil, fmt.Errorf("engine: config is required")
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	extractor := topics.DefaultExtractor()
	if len(cfg.Vocabulary.Topics) > 0 {
		var err error
		extractor, err = topics.NewExtractor(cfg.Vocabulary.Topics, cfg.Vocabulary.FallbackTopic)
		if err != nil {
			return nil, fmt.Errorf("engine: compile topic vocabulary: %w", err)
		}
	}
	confusion := topics.DefaultConfusionMatcher()
	if len(cfg.Vocabulary.ConfusionPatterns) > 0 {
		var err error
		confusion, err = topics.NewMatcher(cfg.Vocabulary.ConfusionPatterns)
		if err != nil {
			return nil, fmt.Errorf("engine: compile confusion vocabulary: %w", err)
		}
	}

	return &Engine{
		cfg:       cfg,
		logger:    logging.NewComponentLogger(logger, "engine"),
		extractor: extractor,
		confusion: confusion,
	}, nil
}

// Evaluate derives the full quality report for one session bundle. The
// bundle is never mutated and the result depends on nothing but the bundle
// and the engine's configuration.
func (e *Engine) Evaluate(bundle *session.Bundle) (*report.Report, error) {
	if bundle == nil {
		return nil, fmt.Errorf("engine: bundle is required")
	}
	meta := bundle.Metadata
	if meta == nil {
		meta = &session.Metadata{}
	}

	lines := segments.FromTranscript(bundle.Transcript)
	segs := segments.Build(lines, e.cfg.Segments.GapThresholdSec)
	chats := session.ChatEvents(bundle.Chats)

	entries := timeline.Build(bundle.Activities, lines, chats, bundle.Polls, e.timelineOptions())

	teachingMin := meta.TeachingDurationMin
	if teachingMin <= 0 {
		teachingMin = spanMinutes(lines, entries)
	}

	items := feedback.ForActivities(entries, lines)
	items = append(items, feedback.ForSession(feedback.SessionInputs{
		Segments:                 segs,
		Lines:                    lines,
		Chats:                    chats,
		Students:                 bundle.Students,
		TeachingDurationMin:      teachingMin,
		MaxContinuousSec:         e.cfg.Segments.MaxContinuousSec,
		MaxTotalTalkMin:          e.cfg.Segments.MaxTotalTalkMin,
		StudentActiveTargetPct:   e.cfg.Engagement.StudentActiveTargetPct,
		BurstWindowSec:           e.cfg.Engagement.BurstWindowSec,
		BurstMinMessages:         e.cfg.Engagement.BurstMinMessages,
		BurstOverlapToleranceSec: e.cfg.Engagement.BurstOverlapToleranceSec,
	})...)
	positive, negative := feedback.Split(items)

	topicsCovered := e.extractor.Extract(allTexts(lines))
	signals := e.deriveSignals(bundle, meta, lines, segs, chats, entries, positive, negative, teachingMin, topicsCovered)

	insights := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.Insight != "" {
			insights = append(insights, entry.Insight)
		}
	}
	criteria := rubric.Score(signals, insights)
	finalScore := rubric.FinalScore(criteria)

	out := report.New()
	out.Session = report.Session{
		Topic:        meta.Topic,
		Level:        meta.Level,
		TeacherName:  textutil.CleanName(meta.TeacherName),
		StudentCount: len(bundle.Students),
	}
	out.Summary = report.Summary{
		OverallCorrectnessPct: signals.OverallCorrectnessPct,
		ResponseRatePct:       signals.ResponseRatePct,
		TeacherTalkMin:        report.Round1(signals.TeacherTalkMin),
		StudentActivePct:      signals.StudentActivePct,
		ActivitiesPlanned:     signals.ActivitiesPlanned,
		ActivitiesHappened:    signals.ActivitiesHappened,
		TopicsCovered:         topicsCovered,
	}
	out.Activities = e.reportActivities(entries, bundle.Polls)
	out.Feedback = report.Feedback{
		Positive:     reportItems(positive),
		Improvements: reportItems(negative),
	}
	out.Criteria = reportCriteria(criteria)
	out.FinalScore = finalScore

	e.logger.Info("session evaluated",
		logging.Int("activities", len(entries)),
		logging.Int("segments", len(segs)),
		logging.Int("feedback_items", len(items)),
		logging.Float64("final_score", finalScore))
	return out, nil
}

func (e *Engine) timelineOptions() timeline.Options {
	return timeline.Options{
		PreWindowSec:        e.cfg.Timeline.PreWindowSec,
		PostTailSec:         e.cfg.Timeline.PostTailSec,
		ConfusionLeadSec:    e.cfg.Timeline.ConfusionLeadSec,
		ConfusionLagSec:     e.cfg.Timeline.ConfusionLagSec,
		RatioLow:            e.cfg.Timeline.RatioLow,
		RatioHigh:           e.cfg.Timeline.RatioHigh,
		MaxConfusionSamples: 3,
		Topics:              e.extractor,
		Confusion:           e.confusion,
	}
}

func (e *Engine) reportActivities(entries []timeline.Entry, polls []session.PollResponse) []report.Activity {
	out := make([]report.Activity, 0, len(entries))
	for _, entry := range entries {
		activityPolls := make([]session.PollResponse, 0)
		for _, p := range polls {
			if p.ActivityID == entry.ActivityID {
				activityPolls = append(activityPolls, p)
			}
		}
		out = append(out, report.Activity{
			ID:                entry.ActivityID,
			Type:              entry.Type.String(),
			StartSec:          entry.StartSec,
			EndSec:            entry.EndSec,
			PreTeachSec:       entry.PreTeachSeconds,
			PreTopics:         entry.PreTopics,
			TalkDuringSec:     entry.TalkDuringSeconds,
			ProtocolViolation: entry.ProtocolViolation,
			PostTeachSec:      entry.PostTeachSeconds,
			Correctness: report.Correctness{
				Answered: entry.Correctness.Answered,
				Correct:  entry.Correctness.Correct,
				Percent:  entry.Correctness.Percent,
			},
			QuestionsPlanned:  entry.QuestionsPlanned,
			Questions:         reportQuestions(activityPolls),
			ConfusionDetected: entry.ConfusionDetected,
			ConfusionSamples:  entry.ConfusionSamples,
			DurationRatio:     entry.DurationRatio,
			Insight:           entry.Insight,
		})
	}
	return out
}

func reportQuestions(polls []session.PollResponse) []report.Question {
	stats := correctness.PerQuestion(polls)
	out := make([]report.Question, 0, len(stats))
	for _, qs := range stats {
		out = append(out, report.Question{
			QuestionID: qs.QuestionID,
			Answered:   qs.Answered,
			Correct:    qs.Correct,
			Percent:    qs.Percent,
		})
	}
	return out
}

func reportItems(items []feedback.Item) []report.Item {
	out := make([]report.Item, 0, len(items))
	for _, item := range items {
		out = append(out, report.Item{
			Category:       string(item.Category),
			ActivityID:     item.ActivityID,
			Positive:       item.Positive,
			Text:           item.Text,
			RecommendedSec: item.RecommendedSec,
			ActualSec:      item.ActualSec,
		})
	}
	return out
}

func reportCriteria(scores []rubric.CriterionScore) []report.Criterion {
	out := make([]report.Criterion, 0, len(scores))
	for _, cs := range scores {
		out = append(out, report.Criterion{
			ID:              cs.ID,
			Name:            cs.Name,
			Score:           cs.Score,
			Evidence:        cs.Evidence,
			Commentary:      cs.Commentary,
			Recommendations: cs.Recommendations,
		})
	}
	return out
}

// spanMinutes approximates teaching duration from the observed timeline when
// the platform did not report one.
func spanMinutes(lines []segments.Line, entries []timeline.Entry) float64 {
	var low, high float64
	seeded := false
	observe := func(start, end float64) {
		if !seeded {
			low, high = start, end
			seeded = true
			return
		}
		if start < low {
			low = start
		}
		if end > high {
			high = end
		}
	}
	for _, line := range lines {
		observe(line.StartSec, line.EndSec)
	}
	for _, entry := range entries {
		observe(entry.StartSec, entry.EndSec)
	}
	if !seeded || high <= low {
		return 0
	}
	return (high - low) / 60
}

func allTexts(lines []segments.Line) []string {
	texts := make([]string, 0, len(lines))
	for _, line := range lines {
		texts = append(texts, line.Text)
	}
	return texts
}

func distinctTopicCount(covered, fallback string) int {
	if covered == "" || covered == fallback {
		return 0
	}
	return strings.Count(covered, ",") + 1
}
