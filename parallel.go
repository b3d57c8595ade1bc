package stockpile

import (
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// parallelRange splits [0, n) into chunks and fans them out over a fixed
// worker set. Workers pull chunks off a shared cursor, so uneven per-chunk
// cost balances out instead of pinning slow ranges to one worker.
func parallelRange(n int, fn func(lo, hi int)) {
	if n <= 0 {
		return
	}
	workers := Config.workers
	chunk := Config.chunkSize
	if workers <= 1 || n <= chunk {
		fn(0, n)
		return
	}

	var cursor atomic.Int64
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for {
				hi := int(cursor.Add(int64(chunk)))
				lo := hi - chunk
				if lo >= n {
					return nil
				}
				fn(lo, min(hi, n))
			}
		})
	}
	// Workers never return errors; Wait only joins them.
	_ = g.Wait()
}
