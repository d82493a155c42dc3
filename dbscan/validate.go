// Package dbscan - input validation shared by Run.
//
// Validation is deterministic and side-effect free: it runs before any label
// or snapshot is allocated, so a failing Run leaves nothing behind.
package dbscan

import (
	"fmt"
	"math"
)

// validate checks parameters first, then every point.
//
// Error priority: epsilon -> minPts -> points (first offending index).
//
// Complexity: O(n).
func validate(points []Point, epsilon float64, minPts int) error {
	if math.IsNaN(epsilon) || math.IsInf(epsilon, 0) || epsilon <= 0 {
		return fmt.Errorf("%w: epsilon must be a positive finite number (got %v)", ErrInvalidParameter, epsilon)
	}
	if minPts < 1 {
		return fmt.Errorf("%w: minPts must be >= 1 (got %d)", ErrInvalidParameter, minPts)
	}
	for i, p := range points {
		if !finite(p.X) || !finite(p.Y) {
			return fmt.Errorf("%w: point %d = (%v, %v)", ErrNonFinitePoint, i, p.X, p.Y)
		}
	}

	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
