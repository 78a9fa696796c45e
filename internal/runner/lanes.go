package runner

import (
	"math"
	"math/rand"
)

// LaneSet is the ordered set of horizontal lane offsets for a play-area width.
// Entities and the player always sit exactly on one of these offsets.
type LaneSet struct {
	offsets []float64
}

// NewLaneSet computes max(minLanes, floor(areaWidth/laneWidth)) lanes, each at
// index × laneWidth. Widths too small for minLanes still yield minLanes lanes.
func NewLaneSet(areaWidth, laneWidth float64, minLanes int) LaneSet {
	count := 0
	if laneWidth > 0 && areaWidth > 0 {
		count = int(math.Floor(areaWidth / laneWidth))
	}
	count = max(count, minLanes, 1)

	offsets := make([]float64, count)
	for i := range offsets {
		offsets[i] = float64(i) * laneWidth
	}
	return LaneSet{offsets: offsets}
}

// Count returns the number of lanes.
func (l LaneSet) Count() int {
	return len(l.offsets)
}

// Clamp restricts a lane index to [0, Count()-1].
func (l LaneSet) Clamp(i int) int {
	if i < 0 {
		return 0
	}
	if i >= len(l.offsets) {
		return len(l.offsets) - 1
	}
	return i
}

// Offset returns the pixel offset of lane i, clamping out-of-range indexes.
func (l LaneSet) Offset(i int) float64 {
	if len(l.offsets) == 0 {
		return 0
	}
	return l.offsets[l.Clamp(i)]
}

// Snap maps a field offset onto the nearest lane offset, clamping offsets
// past either edge.
func (l LaneSet) Snap(offset, laneWidth float64) float64 {
	if laneWidth <= 0 {
		return l.Offset(0)
	}
	return l.Offset(int(math.Round(offset / laneWidth)))
}

// Center returns the middle lane index (the lower middle for even counts).
func (l LaneSet) Center() int {
	return len(l.offsets) / 2
}

// Random returns a uniformly chosen lane index.
func (l LaneSet) Random(rng *rand.Rand) int {
	return rng.Intn(len(l.offsets))
}

// Offsets returns a copy of the lane offsets.
func (l LaneSet) Offsets() []float64 {
	out := make([]float64, len(l.offsets))
	copy(out, l.offsets)
	return out
}

// Width returns the total play-area width covered by the lanes.
func (l LaneSet) Width(laneWidth float64) float64 {
	return float64(len(l.offsets)) * laneWidth
}
