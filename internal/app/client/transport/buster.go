package transport

import (
	"strconv"
	"sync/atomic"

	"learninghub/internal/utils/clock"
)

// CacheBuster выдает строго возрастающие значения параметра v
type CacheBuster struct {
	clock clock.Clock
	last  atomic.Int64
}

func NewCacheBuster(clk clock.Clock) *CacheBuster {
	return &CacheBuster{clock: clk}
}

// Next миллисекунды текущего времени, но не меньше предыдущего значения + 1
func (b *CacheBuster) Next() string {
	for {
		prev := b.last.Load()
		next := max(b.clock.Now().UnixMilli(), prev+1)
		if b.last.CompareAndSwap(prev, next) {
			return strconv.FormatInt(next, 10)
		}
	}
}
