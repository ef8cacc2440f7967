package report

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestEmptyReportMarshalsWithEmptyLists(t *testing.T) {
	payload, err := json.Marshal(New())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(payload), "null") {
		t.Errorf("empty report contains null fields: %s", payload)
	}
}

func TestRound1(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{14.25, 14.3},
		{14.24, 14.2},
		{0, 0},
		{9.999, 10},
	}
	for _, tc := range cases {
		if got := Round1(tc.in); got != tc.want {
			t.Errorf("Round1(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
