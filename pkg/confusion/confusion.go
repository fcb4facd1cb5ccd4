// Package confusion classifies per-character disagreements between an
// initial text, its ground-truth correction, and a model's correction.
package confusion

import (
	"fmt"

	"styleval/pkg/textalign"
)

// Counts holds the four confusion classes of one evaluated file. Field order
// follows the report column order.
type Counts struct {
	// Misdetection counts positions the model changed although no change
	// was needed.
	Misdetection int `json:"misdetection"`
	// Undetected counts positions that needed a change the model did not
	// make.
	Undetected int `json:"undetected"`
	// DetectedBadChange counts positions the model changed where a change
	// was needed, but to the wrong character.
	DetectedBadChange int `json:"detected_bad_change"`
	// DetectedGoodChange counts positions the model fixed exactly.
	DetectedGoodChange int `json:"detected_good_change"`
}

// Add accumulates other into c.
func (c *Counts) Add(other Counts) {
	c.Misdetection += other.Misdetection
	c.Undetected += other.Undetected
	c.DetectedBadChange += other.DetectedBadChange
	c.DetectedGoodChange += other.DetectedGoodChange
}

// Total returns the number of disagreeing positions.
func (c Counts) Total() int {
	return c.Misdetection + c.Undetected + c.DetectedBadChange + c.DetectedGoodChange
}

// Classify walks three aligned sequences position by position and buckets
// every disagreement. The sequences must come from the same alignment and
// therefore have equal length; a mismatch is a programming error and is
// rejected, never truncated.
//
// Per position (a, b, c) = (init, correct, predicted), the first rule wins:
// all equal → agreeing, not counted; a == b → Misdetection; a == c →
// Undetected; b == c → DetectedGoodChange; otherwise DetectedBadChange.
// Alignment gaps are ordinary symbols here: a gap that should have been a
// character, or the reverse, is a disagreement like any other.
func Classify(init, correct, predicted textalign.Aligned) (Counts, error) {
	if len(init) != len(correct) || len(correct) != len(predicted) {
		return Counts{}, fmt.Errorf("aligned lengths differ: init %d, correct %d, predicted %d",
			len(init), len(correct), len(predicted))
	}
	var counts Counts
	for i := range init {
		a, b, c := init[i], correct[i], predicted[i]
		switch {
		case a == b && b == c:
		case a == b:
			counts.Misdetection++
		case a == c:
			counts.Undetected++
		case b == c:
			counts.DetectedGoodChange++
		default:
			counts.DetectedBadChange++
		}
	}
	return counts, nil
}
