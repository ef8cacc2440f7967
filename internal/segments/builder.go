package segments

import (
	"sort"

	"lectern/internal/session"
	"lectern/internal/timeutil"
)

// Line is a transcript line whose clocks parsed, on the seconds axis.
type Line struct {
	StartSec float64
	EndSec   float64
	Text     string
}

// Duration returns the line's span in seconds.
func (l Line) Duration() float64 {
	return l.EndSec - l.StartSec
}

// Segment is a maximal run of lines with internal gaps at or below the
// merge threshold.
type Segment struct {
	StartSec float64
	EndSec   float64
	Lines    int
}

// Duration returns the segment's span in seconds.
func (s Segment) Duration() float64 {
	return s.EndSec - s.StartSec
}

// FromTranscript normalizes raw transcript lines for temporal analysis.
// Lines with unparseable clocks or inverted spans are dropped; the result is
// stably sorted by start time.
func FromTranscript(lines []session.TranscriptLine) []Line {
	parsed := make([]Line, 0, len(lines))
	for _, raw := range lines {
		start, okStart := timeutil.ParseClock(raw.Start)
		end, okEnd := timeutil.ParseClock(raw.End)
		if !okStart || !okEnd || end < start {
			continue
		}
		parsed = append(parsed, Line{StartSec: start, EndSec: end, Text: raw.Text})
	}
	sort.SliceStable(parsed, func(i, j int) bool { return parsed[i].StartSec < parsed[j].StartSec })
	return parsed
}

// Build merges chronologically sorted lines into segments. A new segment
// starts whenever the gap to the previous line's furthest end exceeds
// gapThresholdSec.
func Build(lines []Line, gapThresholdSec float64) []Segment {
	if len(lines) == 0 {
		return nil
	}

	segs := make([]Segment, 0, len(lines))
	current := Segment{StartSec: lines[0].StartSec, EndSec: lines[0].EndSec, Lines: 1}

	for _, line := range lines[1:] {
		if line.StartSec-current.EndSec <= gapThresholdSec {
			if line.EndSec > current.EndSec {
				current.EndSec = line.EndSec
			}
			current.Lines++
			continue
		}
		segs = append(segs, current)
		current = Segment{StartSec: line.StartSec, EndSec: line.EndSec, Lines: 1}
	}
	segs = append(segs, current)
	return segs
}

// TotalTalkSeconds sums raw line durations. This intentionally ignores
// segmentation: silence merged into a segment must not count as speech.
func TotalTalkSeconds(lines []Line) float64 {
	var total float64
	for _, line := range lines {
		total += line.Duration()
	}
	return total
}

// OverLong returns the segments whose duration exceeds maxSec.
func OverLong(segs []Segment, maxSec float64) []Segment {
	var long []Segment
	for _, seg := range segs {
		if seg.Duration() > maxSec {
			long = append(long, seg)
		}
	}
	return long
}

// TalkSecondsWithin sums the portions of lines that overlap [startSec, endSec).
func TalkSecondsWithin(lines []Line, startSec, endSec float64) float64 {
	var total float64
	for _, line := range lines {
		total += OverlapSeconds(line.StartSec, line.EndSec, startSec, endSec)
	}
	return total
}

// OverlapSeconds computes the overlap between [aStart, aEnd) and [bStart, bEnd).
func OverlapSeconds(aStart, aEnd, bStart, bEnd float64) float64 {
	low := aStart
	if bStart > low {
		low = bStart
	}
	high := aEnd
	if bEnd < high {
		high = bEnd
	}
	if high <= low {
		return 0
	}
	return high - low
}
