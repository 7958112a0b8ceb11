package empty_test

import (
	"testing"

	"github.com/alitto/pond/v2"
	"github.com/amp-labs/nothing/empty"
	"github.com/amp-labs/nothing/hashing"
	"github.com/amp-labs/nothing/iterator"
	"github.com/stretchr/testify/assert"
	"go.uber.org/atomic"
)

func TestConcurrentUse(t *testing.T) {
	t.Parallel()

	const (
		workers = 16
		tasks   = 512
	)

	shared := empty.NewList[int]()
	sharedIter := shared.Iter()

	var (
		yielded  = atomic.NewInt64(0)
		mismatch = atomic.NewInt64(0)
	)

	reference, err := hashing.XXH3(shared)
	assert.NoError(t, err)

	pool := pond.NewPool(workers)

	for range tasks {
		pool.Submit(func() {
			for range shared.All() {
				yielded.Inc()
			}

			if _, ok := sharedIter.Next(); ok {
				yielded.Inc()
			}

			if _, ok := sharedIter.NextBack(); ok {
				yielded.Inc()
			}

			yielded.Add(int64(shared.Len() + iterator.Count[int](sharedIter)))

			digest, err := hashing.XXH3(shared)
			if err != nil || digest != reference || !shared.Equals(empty.List[int]{}) {
				mismatch.Inc()
			}
		})
	}

	pool.StopAndWait()

	assert.Zero(t, yielded.Load())
	assert.Zero(t, mismatch.Load())
}
