package feedback

// Category identifies what aspect of the session an item judges.
type Category string

const (
	CategoryTimeManagement Category = "time_management"
	CategoryProtocol       Category = "protocol"
	CategoryPacing         Category = "pacing"
	CategoryTalkTime       Category = "talk_time"
	CategoryParticipation  Category = "participation"
	CategoryEngagement     Category = "engagement"
)

// Item is one observation about the session. Items are immutable once
// produced; negative time items always carry recommended and actual values.
type Item struct {
	Category   Category `json:"category"`
	ActivityID string   `json:"activity_id,omitempty"`
	Positive   bool     `json:"positive"`
	Text       string   `json:"text"`

	RecommendedSec float64 `json:"recommended_sec,omitempty"`
	ActualSec      float64 `json:"actual_sec,omitempty"`
}

// Split partitions items into went-well and needs-improvement lists,
// preserving order.
func Split(items []Item) (positive, negative []Item) {
	positive = make([]Item, 0, len(items))
	negative = make([]Item, 0, len(items))
	for _, item := range items {
		if item.Positive {
			positive = append(positive, item)
		} else {
			negative = append(negative, item)
		}
	}
	return positive, negative
}
