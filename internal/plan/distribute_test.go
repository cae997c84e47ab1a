package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistribute(t *testing.T) {
	t.Run("earlier slots receive the remainder", func(t *testing.T) {
		assert.Equal(t, []int{34, 33, 33}, Distribute(3, 100))
		assert.Equal(t, []int{4, 4, 3, 3, 3, 3, 3}, Distribute(7, 23))
		assert.Equal(t, []int{100}, Distribute(1, 100))
	})

	t.Run("shares always sum to the total and differ by at most one", func(t *testing.T) {
		for count := 1; count <= 9; count++ {
			for total := 0; total <= 50; total++ {
				shares := Distribute(count, total)
				require.Len(t, shares, count)

				sum, lo, hi := 0, shares[0], shares[0]
				for _, s := range shares {
					sum += s
					if s < lo {
						lo = s
					}
					if s > hi {
						hi = s
					}
				}
				assert.Equal(t, total, sum, "count=%d total=%d", count, total)
				assert.LessOrEqual(t, hi-lo, 1, "count=%d total=%d", count, total)
			}
		}
	})

	t.Run("zero users spread as zeros", func(t *testing.T) {
		assert.Equal(t, []int{0, 0, 0}, Distribute(3, 0))
	})

	t.Run("no slots yields nil", func(t *testing.T) {
		assert.Nil(t, Distribute(0, 100))
		assert.Nil(t, Distribute(-1, 100))
	})
}
