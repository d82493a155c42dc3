// Package dbscan clusters 2-D points with DBSCAN and records every labeling
// decision as an ordered, replayable trace.
//
// 🚀 What is DBSCAN?
//
//	Density-Based Spatial Clustering of Applications with Noise groups points
//	that sit in dense regions and marks the rest as noise. Two knobs drive it:
//	  • epsilon — neighborhood radius
//	  • minPts  — minimum neighborhood size (the point itself included)
//
// ✨ Key features:
//   - deterministic: same points, epsilon and minPts ⇒ identical trace
//   - one Snapshot per decision, each with its own copy of the labels
//   - a final "resting" Snapshot with no focus point and no radius
//   - breadth-first cluster growth through an explicit work-list
//   - Trace/Cursor helpers for stepping through the frames at any pace
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/dbscanviz/dbscan"
//
//	pts := []dbscan.Point{{X: 0.10, Y: 0.10}, {X: 0.11, Y: 0.10}, {X: 0.90, Y: 0.90}}
//	trace, err := dbscan.Run(pts, 0.05, 2)
//	if err != nil {
//	  // ErrInvalidParameter, ErrNonFinitePoint or ErrOptionViolation
//	}
//	for _, snap := range trace {
//	  // draw snap.Labels; circle snap.At with radius snap.Epsilon if snap.HasFocus()
//	}
//
// Label encoding:
//
//	Unvisited = 0, Noise = -1, cluster k = k (k ≥ 1, in discovery order).
//	A label moves only Unvisited→Noise, Unvisited→k or Noise→k.
//
// Performance:
//
//   - Time:   O(n²) region queries (no spatial index)
//   - Memory: O(n·s) for s snapshots, since every snapshot copies n labels
//
// The package performs no I/O and keeps no package-level mutable state; each
// Run owns its labels, processed set and trace.
package dbscan
