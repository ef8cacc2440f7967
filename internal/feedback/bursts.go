package feedback

import (
	"sort"

	"lectern/internal/segments"
	"lectern/internal/session"
)

// Burst is a cluster of student chat messages dense enough to count as an
// engagement burst.
type Burst struct {
	StartSec float64
	EndSec   float64
	Messages int
}

// DetectBursts finds clusters of at least minMessages student messages whose
// span fits a rolling window of windowSec. Overlapping clusters are merged.
func DetectBursts(chats []session.ChatEvent, windowSec float64, minMessages int) []Burst {
	times := make([]float64, 0, len(chats))
	for _, event := range chats {
		if event.Role == session.RoleStudent {
			times = append(times, event.AtSec)
		}
	}
	sort.Float64s(times)
	if len(times) < minMessages {
		return nil
	}

	var bursts []Burst
	for i := 0; i+minMessages-1 < len(times); i++ {
		j := i
		for j+1 < len(times) && times[j+1]-times[i] <= windowSec {
			j++
		}
		if j-i+1 < minMessages {
			continue
		}
		candidate := Burst{StartSec: times[i], EndSec: times[j], Messages: j - i + 1}
		if n := len(bursts); n > 0 && candidate.StartSec <= bursts[n-1].EndSec {
			// Extend the previous burst instead of reporting an overlap.
			if candidate.EndSec > bursts[n-1].EndSec {
				bursts[n-1].EndSec = candidate.EndSec
			}
			if candidate.Messages > bursts[n-1].Messages {
				bursts[n-1].Messages = candidate.Messages
			}
			continue
		}
		bursts = append(bursts, candidate)
	}
	return bursts
}

// OverlapsTeacherTalk reports whether the burst touches any teacher-talk
// segment once each segment is padded by toleranceSec on both sides.
func (b Burst) OverlapsTeacherTalk(segs []segments.Segment, toleranceSec float64) bool {
	for _, seg := range segs {
		if b.StartSec <= seg.EndSec+toleranceSec && b.EndSec >= seg.StartSec-toleranceSec {
			return true
		}
	}
	return false
}
