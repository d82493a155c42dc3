// Package dbscan defines points, labels, snapshots and sentinel errors
// for the DBSCAN trace engine.
package dbscan

import (
	"errors"
	"strconv"
)

// Sentinel errors for Run.
var (
	// ErrInvalidParameter is returned when epsilon is not a positive finite
	// number or minPts is below 1.
	ErrInvalidParameter = errors.New("dbscan: invalid parameter")

	// ErrNonFinitePoint is returned when a point has a NaN or ±Inf coordinate.
	ErrNonFinitePoint = errors.New("dbscan: point coordinates must be finite")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dbscan: invalid option supplied")
)

// NoFocus is the Snapshot.Focus value of the resting frame.
const NoFocus = -1

// Point is an immutable 2-D coordinate. Its index in the input slice is its
// identity for the duration of one Run.
type Point struct {
	X, Y float64
}

// Label is the state of one point at one instant.
//
//   - Unvisited (0) — not processed yet.
//   - Noise (-1)    — processed, too few neighbors, not claimed by a cluster.
//   - k ≥ 1         — member of cluster k.
type Label int

const (
	// Noise marks a processed point with fewer than minPts neighbors.
	Noise Label = -1

	// Unvisited marks a point the engine has not decided on yet.
	Unvisited Label = 0
)

// ClusterLabel returns the label of cluster id. Ids start at 1.
func ClusterLabel(id int) Label {
	return Label(id)
}

// IsUnvisited reports whether l is Unvisited.
func (l Label) IsUnvisited() bool { return l == Unvisited }

// IsNoise reports whether l is Noise.
func (l Label) IsNoise() bool { return l == Noise }

// ClusterID returns the cluster id carried by l and true, or 0 and false
// when l is Unvisited or Noise.
func (l Label) ClusterID() (int, bool) {
	if l > 0 {
		return int(l), true
	}

	return 0, false
}

// String renders l as "unvisited", "noise" or "cluster(k)".
func (l Label) String() string {
	switch {
	case l == Unvisited:
		return "unvisited"
	case l == Noise:
		return "noise"
	case l > 0:
		return "cluster(" + strconv.Itoa(int(l)) + ")"
	default:
		return "label(" + strconv.Itoa(int(l)) + ")"
	}
}

// Snapshot is one recorded instant of a Run.
//
// Fields:
//   - Labels  — copy of every point's label at that instant; never shared
//     with the engine or with other snapshots.
//   - Focus   — index of the point whose neighborhood was just decided,
//     or NoFocus on the resting frame.
//   - At      — coordinates of the focus point (zero value when Focus==NoFocus).
//   - Epsilon — search radius in effect, or 0 on the resting frame.
type Snapshot struct {
	Labels  []Label
	Focus   int
	At      Point
	Epsilon float64
}

// HasFocus reports whether the snapshot highlights a point.
func (s Snapshot) HasFocus() bool { return s.Focus != NoFocus }

// HasRadius reports whether the snapshot carries a search radius to draw.
func (s Snapshot) HasRadius() bool { return s.Epsilon > 0 }
