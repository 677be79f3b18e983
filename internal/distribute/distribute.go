// Package distribute generates the deterministic sequence that maps
// logical bit positions onto flippable-module indices.
//
// The sequence idx[i] = (i·p) mod total with p the largest prime below
// total visits every index exactly once over the first total terms,
// spreading consecutive bits across the module grid without either
// side storing a table.
package distribute

import (
	"errors"
	"fmt"

	"github.com/yyyoichi/stegoqr/internal/prime"
)

var ErrCapacityExceeded = errors.New("bit count exceeds slot count")

// Step returns the stride used for a grid of total slots.
func Step(total int) int {
	return prime.LargestBelow(total)
}

// Sequence returns need slot indices in [0, total), pairwise distinct
// whenever total > 2.
func Sequence(need, total int) ([]int, error) {
	if need > total {
		return nil, fmt.Errorf("%w: need %d, total %d", ErrCapacityExceeded, need, total)
	}
	p := prime.LargestBelow(total)
	idx := make([]int, need)
	for i := range idx {
		idx[i] = i * p % total
	}
	return idx, nil
}
