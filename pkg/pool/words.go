package pool

import "sync"

// WordPool manages a pool of fixed-size 64-bit word slices used as
// test regions. Regions cycle through workers for the lifetime of a
// run; pooling keeps refills from churning the allocator and, just as
// important for a memory tester, keeps the run exercising the same
// physical allocations instead of fresh ones.
type WordPool struct {
	words int       // Length of each slice, in words.
	pool  sync.Pool // Thread-safe pool of slices.
}

// Creates a new pool handing out slices of the given word count.
func NewWordPool(words int) *WordPool {
	return &WordPool{
		words: words,
		pool: sync.Pool{
			New: func() any {
				s := make([]uint64, words)
				return &s
			},
		},
	}
}

// Retrieves a region from the pool. Contents are unspecified; the
// caller fills it before use.
func (wp *WordPool) Get() []uint64 {
	return *wp.pool.Get().(*[]uint64)
}

// Returns a region to the pool. Slices of the wrong size are dropped.
func (wp *WordPool) Put(words []uint64) {
	if len(words) != wp.words {
		return
	}
	wp.pool.Put(&words)
}

// Words returns the region length this pool hands out.
func (wp *WordPool) Words() int {
	return wp.words
}
