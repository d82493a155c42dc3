package dbscan

import "sort"

// Trace is the ordered sequence of snapshots produced by one Run.
// A trace returned by Run always holds at least the resting snapshot.
type Trace []Snapshot

// Final returns the resting snapshot, or the zero Snapshot with
// Focus==NoFocus for an empty trace.
func (t Trace) Final() Snapshot {
	if len(t) == 0 {
		return Snapshot{Focus: NoFocus}
	}

	return t[len(t)-1]
}

// Labels returns a copy of the final labels.
func (t Trace) Labels() []Label {
	final := t.Final().Labels
	out := make([]Label, len(final))
	copy(out, final)

	return out
}

// ClusterCount returns the number of distinct clusters in the final labels.
func (t Trace) ClusterCount() int {
	seen := make(map[Label]struct{})
	for _, l := range t.Final().Labels {
		if l > 0 {
			seen[l] = struct{}{}
		}
	}

	return len(seen)
}

// Members returns the ascending point indices that end in cluster id.
func (t Trace) Members(id int) []int {
	var out []int
	for i, l := range t.Final().Labels {
		if l == ClusterLabel(id) {
			out = append(out, i)
		}
	}

	return out
}

// NoiseIndices returns the ascending point indices that end as Noise.
func (t Trace) NoiseIndices() []int {
	var out []int
	for i, l := range t.Final().Labels {
		if l == Noise {
			out = append(out, i)
		}
	}

	return out
}

// Clusters groups final members by cluster id. Ids come back ascending.
func (t Trace) Clusters() (ids []int, members map[int][]int) {
	members = make(map[int][]int)
	for i, l := range t.Final().Labels {
		if id, ok := l.ClusterID(); ok {
			members[id] = append(members[id], i)
		}
	}
	ids = make([]int, 0, len(members))
	for id := range members {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids, members
}

// Cursor steps through a Trace one snapshot at a time. Timing between
// steps is left to the caller.
//
// A Cursor is not safe for concurrent use; give each player its own.
type Cursor struct {
	trace Trace
	pos   int
}

// NewCursor returns a Cursor positioned before the first snapshot of t.
func NewCursor(t Trace) *Cursor {
	return &Cursor{trace: t}
}

// Next returns the snapshot at the current position and advances.
// It returns false once the trace is exhausted.
func (c *Cursor) Next() (Snapshot, bool) {
	if c.pos >= len(c.trace) {
		return Snapshot{}, false
	}
	s := c.trace[c.pos]
	c.pos++

	return s, true
}

// Peek returns the snapshot Next would return, without advancing.
func (c *Cursor) Peek() (Snapshot, bool) {
	if c.pos >= len(c.trace) {
		return Snapshot{}, false
	}

	return c.trace[c.pos], true
}

// Seek moves the cursor to frame i, clamped to [0, len].
func (c *Cursor) Seek(i int) {
	switch {
	case i < 0:
		c.pos = 0
	case i > len(c.trace):
		c.pos = len(c.trace)
	default:
		c.pos = i
	}
}

// Reset rewinds to the first snapshot.
func (c *Cursor) Reset() { c.pos = 0 }

// Pos returns the index of the next snapshot to be returned.
func (c *Cursor) Pos() int { return c.pos }

// Len returns the number of snapshots in the underlying trace.
func (c *Cursor) Len() int { return len(c.trace) }

// Done reports whether every snapshot has been returned.
func (c *Cursor) Done() bool { return c.pos >= len(c.trace) }
