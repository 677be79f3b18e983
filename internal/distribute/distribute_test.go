package distribute

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequence(t *testing.T) {
	t.Run("distinct and bounded", func(t *testing.T) {
		test := []struct {
			need, total int
		}{
			{1, 2},
			{3, 10},
			{10, 10},
			{80, 807},
			{441, 441},
			{133, 208},
		}
		for _, tt := range test {
			idx, err := Sequence(tt.need, tt.total)
			require.NoError(t, err)
			require.Len(t, idx, tt.need)
			seen := make(map[int]bool, tt.need)
			for _, v := range idx {
				assert.GreaterOrEqual(t, v, 0)
				assert.Less(t, v, tt.total)
				assert.False(t, seen[v], "duplicate index %d for need=%d total=%d", v, tt.need, tt.total)
				seen[v] = true
			}
		}
	})

	t.Run("need exceeds total", func(t *testing.T) {
		_, err := Sequence(11, 10)
		assert.ErrorIs(t, err, ErrCapacityExceeded)
	})

	t.Run("deterministic", func(t *testing.T) {
		a, err := Sequence(50, 807)
		require.NoError(t, err)
		b, err := Sequence(50, 807)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("degenerate total", func(t *testing.T) {
		// p falls back to 2 and the sequence is no longer unique;
		// the capacity gate upstream refuses to encode here.
		idx, err := Sequence(2, 2)
		require.NoError(t, err)
		assert.Equal(t, []int{0, 0}, idx)
	})
}
