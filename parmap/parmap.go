package parmap

import (
	"context"
	"runtime"
	"sync"

	channerics "github.com/niceyeti/channerics/channels"
	"golang.org/x/sync/errgroup"
)

// MapInit maps body over items in parallel. Each of the workers goroutines
// (runtime.NumCPU() when workers <= 0) obtains one scratch value from init
// and reuses it for every item it processes.
//
// A closed done channel stops the feed: in-flight items finish, queued items
// are dropped, and MapInit returns the partial results with a nil error —
// the caller distinguishes cancellation by checking its Flag. A nil done
// channel disables cancellation.
//
// The first non-nil error from body aborts the map and is returned after
// all workers stop. Result order is unspecified.
func MapInit[T, S, R any](done <-chan struct{}, items []T, workers int, init func() S, body func(S, T) (R, error)) ([]R, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if len(items) < workers {
		workers = len(items)
	}
	if workers == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(context.Background())

	feed := make(chan T)
	go func() {
		defer close(feed)
		for _, item := range items {
			select {
			case feed <- item:
			case <-done:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	var (
		mu      sync.Mutex
		results = make([]R, 0, len(items))
	)
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			scratch := init()
			for item := range channerics.OrDone(done, feed) {
				r, err := body(scratch, item)
				if err != nil {
					return err
				}
				mu.Lock()
				results = append(results, r)
				mu.Unlock()
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
