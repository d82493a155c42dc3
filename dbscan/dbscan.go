package dbscan

import (
	"log/slog"
	"math"
)

// walker encapsulates the mutable state of one Run.
type walker struct {
	points    []Point
	epsilon   float64
	minPts    int
	opts      Options
	log       *slog.Logger
	labels    []Label
	processed []bool
	clusterID int
	trace     Trace
}

// Run clusters points with DBSCAN and returns the trace of every decision.
//
// Algorithm Outline:
//  1. For i = 0..n-1, skip points that are already labeled.
//  2. Mark i processed and query its epsilon-neighborhood.
//  3. If the neighborhood holds ≥ minPts points, open cluster k+1, label i,
//     record a snapshot and grow the cluster breadth-first (expandCluster).
//  4. Otherwise label i Noise and record a snapshot.
//  5. Record the resting snapshot (no focus, no radius).
//
// Every snapshot carries its own copy of the labels, so later decisions never
// alter frames already handed out.
//
// Complexity:
//
//	Time   = O(n²) for the region queries plus O(n·s) for s snapshot copies
//	Memory = O(n·s)
//
// Errors:
//   - ErrInvalidParameter — epsilon ≤ 0, NaN or ±Inf; minPts < 1.
//   - ErrNonFinitePoint   — a coordinate is NaN or ±Inf.
//   - ErrOptionViolation  — an Option rejected its argument.
//
// On error the trace is nil and no hook has been called.
func Run(points []Point, epsilon float64, minPts int, opts ...Option) (Trace, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := validate(points, epsilon, minPts); err != nil {
		return nil, err
	}

	n := len(points)
	capacity := o.CapacityHint
	if capacity == 0 {
		capacity = n + 1
	}
	w := &walker{
		points:    points,
		epsilon:   epsilon,
		minPts:    minPts,
		opts:      o,
		log:       o.Logger,
		labels:    make([]Label, n),
		processed: make([]bool, n),
		trace:     make(Trace, 0, capacity),
	}
	w.log.Debug("dbscan: run start",
		slog.Int("points", n),
		slog.Float64("epsilon", epsilon),
		slog.Int("minPts", minPts),
		slog.Bool("borderReclaim", o.BorderReclaim))

	w.loop()

	w.log.Debug("dbscan: run done",
		slog.Int("clusters", w.clusterID),
		slog.Int("noise", countNoise(w.labels)),
		slog.Int("snapshots", len(w.trace)))

	return w.trace, nil
}

// loop performs the single ascending pass and the resting frame.
func (w *walker) loop() {
	for i := range w.points {
		if w.labels[i] != Unvisited {
			continue
		}
		w.processed[i] = true
		neighbors := w.regionQuery(i)
		if len(neighbors) >= w.minPts {
			w.clusterID++
			w.log.Debug("dbscan: cluster discovered",
				slog.Int("cluster", w.clusterID),
				slog.Int("seed", i),
				slog.Int("neighbors", len(neighbors)))
			w.labels[i] = ClusterLabel(w.clusterID)
			w.record(i)
			w.expandCluster(neighbors, w.clusterID)
			continue
		}
		w.labels[i] = Noise
		if w.opts.BorderReclaim {
			// let a later expansion claim it as a border point
			w.processed[i] = false
		}
		w.record(i)
	}
	w.recordResting()
}

// expandCluster grows cluster id breadth-first from the seed's neighborhood.
//
// The work-list is read through a cursor and only ever appended to.
// Duplicates are not filtered; they hit the processed check and are skipped.
// A Noise point is relabeled as a border point without its own region query.
func (w *walker) expandCluster(neighbors []int, id int) {
	work := neighbors
	for cursor := 0; cursor < len(work); cursor++ {
		j := work[cursor]
		if w.processed[j] {
			continue
		}
		w.processed[j] = true

		switch w.labels[j] {
		case Unvisited:
			w.labels[j] = ClusterLabel(id)
			w.record(j)
			if next := w.regionQuery(j); len(next) >= w.minPts {
				work = append(work, next...)
			}
		case Noise:
			w.labels[j] = ClusterLabel(id)
			w.record(j)
		default:
			// already in a cluster
		}
	}
}

// regionQuery returns the ascending indices within epsilon of point i.
func (w *walker) regionQuery(i int) []int {
	return RegionQuery(w.points, i, w.epsilon)
}

// record appends a snapshot focused on point i.
func (w *walker) record(i int) {
	w.emit(Snapshot{
		Labels:  w.copyLabels(),
		Focus:   i,
		At:      w.points[i],
		Epsilon: w.epsilon,
	})
}

// recordResting appends the final frame: no focus, no radius.
func (w *walker) recordResting() {
	w.emit(Snapshot{
		Labels: w.copyLabels(),
		Focus:  NoFocus,
	})
}

func (w *walker) emit(s Snapshot) {
	w.trace = append(w.trace, s)
	w.opts.OnSnapshot(s)
}

// copyLabels returns an independent copy of the live label slice.
func (w *walker) copyLabels() []Label {
	out := make([]Label, len(w.labels))
	copy(out, w.labels)

	return out
}

// RegionQuery returns every index j (including i) whose point lies within
// Euclidean distance epsilon of points[i], in ascending order.
// It has no side effects. i must be a valid index into points.
//
// Complexity: O(n).
func RegionQuery(points []Point, i int, epsilon float64) []int {
	p := points[i]
	var neighbors []int
	for j, q := range points {
		if math.Hypot(p.X-q.X, p.Y-q.Y) <= epsilon {
			neighbors = append(neighbors, j)
		}
	}

	return neighbors
}

func countNoise(labels []Label) int {
	c := 0
	for _, l := range labels {
		if l == Noise {
			c++
		}
	}

	return c
}
