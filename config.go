package stockpile

import (
	"runtime"

	"go.uber.org/zap"
)

// Config holds global configuration for the store package.
var Config config = config{
	logger:    zap.NewNop(),
	workers:   runtime.GOMAXPROCS(0),
	chunkSize: 64,
}

type config struct {
	logger    *zap.Logger
	workers   int
	chunkSize int
}

// SetLogger installs the logger used for generation-wrap warnings. A nil
// logger restores the no-op default.
func (c *config) SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	c.logger = l
}

// SetParallelism tunes the parallel iteration fan-out: workers is the
// goroutine count, chunkSize the number of slots a worker claims at a time.
// Non-positive values leave the current setting unchanged.
func (c *config) SetParallelism(workers, chunkSize int) {
	if workers > 0 {
		c.workers = workers
	}
	if chunkSize > 0 {
		c.chunkSize = chunkSize
	}
}
