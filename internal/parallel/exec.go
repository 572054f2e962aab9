package parallel

import (
	"errors"

	"golang.org/x/sync/errgroup"
)

// ErrSpawnRefused reports that at least one band could not be started.
// Bands that did start have finished by the time Run returns it.
var ErrSpawnRefused = errors.New("parallel: worker spawn refused")

// Executor runs one goroutine per band and joins them before returning.
// It holds no goroutines between calls.
type Executor struct {
	// limit caps the number of goroutines alive at once. Negative means
	// no cap (one goroutine per band).
	limit int
}

// NewExecutor returns an executor with one goroutine per band.
func NewExecutor() *Executor {
	return &Executor{limit: -1}
}

// NewLimitedExecutor returns an executor that refuses to start more than
// limit goroutines at once. A limit of 0 refuses every band.
func NewLimitedExecutor(limit int) *Executor {
	return &Executor{limit: limit}
}

// Run calls fn for every non-empty band, each on its own goroutine, and
// waits for all of them.
//
// The first error returned by fn wins. If a goroutine cannot be started,
// Run stops starting new ones, waits for those already running and returns
// ErrSpawnRefused; the caller decides how to cover the skipped rows.
func (e *Executor) Run(bands []Band, fn func(Band) error) error {
	g := new(errgroup.Group)
	if e.limit >= 0 {
		g.SetLimit(e.limit)
	}

	refused := false
	for _, b := range bands {
		if b.Empty() {
			continue
		}
		if !g.TryGo(func() error { return fn(b) }) {
			refused = true
			break
		}
	}

	if err := g.Wait(); err != nil {
		return err
	}
	if refused {
		return ErrSpawnRefused
	}
	return nil
}
