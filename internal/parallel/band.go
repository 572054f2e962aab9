// Package parallel splits a canvas into row bands and renders the bands on
// fresh goroutines per request.
package parallel

import (
	"errors"
	"fmt"
)

// ErrBadPartition is returned by Covers when bands leave gaps, overlap or
// run past the canvas.
var ErrBadPartition = errors.New("parallel: bands do not partition the canvas")

// Band is the half-open row range [Start, End) owned by one worker.
type Band struct {
	Index int
	Start int
	End   int
}

// Rows returns the number of rows in the band.
func (b Band) Rows() int { return b.End - b.Start }

// Empty reports whether the band owns no rows.
func (b Band) Empty() bool { return b.End <= b.Start }

// Partition splits [0, height) into n contiguous bands. Band i starts at
// i*height/n in integer arithmetic. Remainder rows are spread one per band
// and the last band always ends at height. When n > height some bands are
// empty.
//
// n < 1 is treated as 1 and height < 0 as 0.
func Partition(height, n int) []Band {
	if n < 1 {
		n = 1
	}
	height = max(height, 0)
	bands := make([]Band, n)
	for i := range n {
		bands[i] = Band{
			Index: i,
			Start: i * height / n,
			End:   (i + 1) * height / n,
		}
	}
	return bands
}

// Covers checks that bands tile [0, height) in order with no gaps and no
// overlaps.
func Covers(bands []Band, height int) error {
	next := 0
	for i, b := range bands {
		if b.Start != next {
			return fmt.Errorf("band %d starts at %d, want %d: %w", i, b.Start, next, ErrBadPartition)
		}
		if b.End < b.Start {
			return fmt.Errorf("band %d ends at %d before its start %d: %w", i, b.End, b.Start, ErrBadPartition)
		}
		next = b.End
	}
	if next != height {
		return fmt.Errorf("bands end at row %d, want %d: %w", next, height, ErrBadPartition)
	}
	return nil
}
