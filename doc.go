// Package dbscanviz is a step-by-step DBSCAN engine for 2-D points: it
// clusters a point set and records every labeling decision so the process
// can be replayed, animated or audited frame by frame.
//
// 🚀 What is dbscanviz?
//
//	A small, deterministic, pure-Go library that brings together:
//		• dbscan/  — the engine: region queries, breadth-first cluster
//		             expansion, label state and the Snapshot trace
//		• palette/ — label → colour mapping shared by every renderer
//
// ✨ Why choose dbscanviz?
//
//   - Deterministic – same input, same trace, every time
//   - Replay-ready – each Snapshot owns its labels, focus point and radius
//   - Renderer-agnostic – no timing, windowing or drawing dependencies
//   - Extensible – OnSnapshot hook and slog logger via functional options
//
// Quick ASCII example (epsilon = 0.05, minPts = 3):
//
//	p0 · p1 · p2          p3
//	 N    1    1           N
//
//	p1 sees p0..p2 and opens cluster 1; p0 and p3 stay noise.
//
// See examples/dbscan_trace_replay.go for a full replay walkthrough.
//
//	go get github.com/katalvlaran/dbscanviz
package dbscanviz
