package config

const (
	defaultArchiveDir = "~/.local/share/lectern/archive"
	defaultLogDir     = "~/.local/share/lectern/logs"
	defaultLogFormat  = "console"
	defaultLogLevel   = "info"

	// DefaultGapThresholdSec merges transcript lines separated by at most
	// this many seconds of silence into one speech segment.
	DefaultGapThresholdSec = 5.0
	// DefaultMaxContinuousSec marks uninterrupted talk longer than this as
	// a pacing problem.
	DefaultMaxContinuousSec = 120.0
	// DefaultMaxTotalTalkMin is the per-session teacher talk ceiling.
	DefaultMaxTotalTalkMin = 15.0

	// DefaultPreWindowSec caps the pre-activity teaching window.
	DefaultPreWindowSec = 300.0
	// DefaultPostTailSec bounds the post-window after the final activity.
	DefaultPostTailSec = 180.0
	// DefaultConfusionLeadSec starts the confusion scan before the activity.
	DefaultConfusionLeadSec = 30.0
	// DefaultConfusionLagSec keeps scanning after the activity ends.
	DefaultConfusionLagSec = 60.0
	// DefaultRatioLow and DefaultRatioHigh bound the actual/planned duration
	// ratio considered well calibrated.
	DefaultRatioLow  = 0.7
	DefaultRatioHigh = 1.3

	// DefaultBurstWindowSec is the rolling window for chat burst detection.
	DefaultBurstWindowSec = 30.0
	// DefaultBurstMinMessages is the student message count that makes a burst.
	DefaultBurstMinMessages = 3
	// DefaultBurstOverlapToleranceSec pads teacher segments when matching bursts.
	DefaultBurstOverlapToleranceSec = 10.0
	// DefaultStudentActiveTargetPct is the student-active share to beat.
	DefaultStudentActiveTargetPct = 50

	// DefaultFallbackTopic labels speech no concept pattern matched.
	DefaultFallbackTopic = "general instruction"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			ArchiveDir: defaultArchiveDir,
			LogDir:     defaultLogDir,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Segments: Segments{
			GapThresholdSec:  DefaultGapThresholdSec,
			MaxContinuousSec: DefaultMaxContinuousSec,
			MaxTotalTalkMin:  DefaultMaxTotalTalkMin,
		},
		Timeline: Timeline{
			PreWindowSec:     DefaultPreWindowSec,
			PostTailSec:      DefaultPostTailSec,
			ConfusionLeadSec: DefaultConfusionLeadSec,
			ConfusionLagSec:  DefaultConfusionLagSec,
			RatioLow:         DefaultRatioLow,
			RatioHigh:        DefaultRatioHigh,
		},
		Engagement: Engagement{
			BurstWindowSec:           DefaultBurstWindowSec,
			BurstMinMessages:         DefaultBurstMinMessages,
			BurstOverlapToleranceSec: DefaultBurstOverlapToleranceSec,
			StudentActiveTargetPct:   DefaultStudentActiveTargetPct,
		},
		Vocabulary: Vocabulary{
			FallbackTopic: DefaultFallbackTopic,
		},
	}
}
