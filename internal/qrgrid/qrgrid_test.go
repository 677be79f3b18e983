package qrgrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSize(t *testing.T) {
	assert.Equal(t, 21, Size(1))
	assert.Equal(t, 177, Size(40))

	v, ok := VersionForSize(21)
	require.True(t, ok)
	assert.Equal(t, 1, v)
	v, ok = VersionForSize(177)
	require.True(t, ok)
	assert.Equal(t, 40, v)
	_, ok = VersionForSize(20)
	assert.False(t, ok)
	_, ok = VersionForSize(181)
	assert.False(t, ok)
}

func TestClassify(t *testing.T) {
	test := []struct {
		name    string
		x, y    int
		version int
		exp     ModuleClass
	}{
		{"top left finder", 0, 0, 1, ClassFinder},
		{"finder center", 3, 3, 1, ClassFinder},
		{"separator right of finder", 7, 0, 1, ClassSeparator},
		{"top right finder", 20, 0, 1, ClassFinder},
		{"bottom left finder", 0, 20, 1, ClassFinder},
		{"horizontal timing", 9, 6, 1, ClassTiming},
		{"vertical timing", 6, 9, 1, ClassTiming},
		{"data module", 9, 9, 1, ClassData},
		{"last data module", 20, 12, 1, ClassData},
		{"alignment center v2", 18, 18, 2, ClassAlignment},
		{"alignment edge v2", 16, 16, 2, ClassAlignment},
		{"outside alignment v2", 15, 15, 2, ClassData},
		{"version info bottom left v7", 0, 34, 7, ClassVersionInfo},
		{"version info top right v7", 34, 0, 7, ClassVersionInfo},
		{"no version info v6", 0, 30, 6, ClassData},
	}
	for _, tt := range test {
		t.Run(tt.name, func(t *testing.T) {
			size := Size(tt.version)
			assert.Equal(t, tt.exp, Classify(tt.x, tt.y, size, tt.version))
		})
	}
}

// Flippable counts must equal the codeword bits (data + EC) plus
// remainder bits of each version; spot-check against ISO totals.
func TestFlippableCounts(t *testing.T) {
	test := []struct {
		version int
		exp     int
	}{
		{1, 26 * 8},   // 26 codewords, no remainder
		{2, 44*8 + 7}, // 44 codewords, 7 remainder bits
		{7, 196 * 8},  // version info present, no remainder
	}
	for _, tt := range test {
		assert.Equal(t, tt.exp, len(Flippable(tt.version)), "version %d", tt.version)
	}
}

func TestFlippableNeverFunction(t *testing.T) {
	for version := MinVersion; version <= MaxVersion; version++ {
		size := Size(version)
		for _, p := range Flippable(version) {
			require.False(t, IsFunction(p.X, p.Y, size, version),
				"version %d position (%d,%d)", version, p.X, p.Y)
		}
	}
}

func TestFlippableCanonicalOrder(t *testing.T) {
	list := Flippable(1)
	require.NotEmpty(t, list)
	assert.Equal(t, Position{X: 9, Y: 0}, list[0])
	for i := 1; i < len(list); i++ {
		prev, cur := list[i-1], list[i]
		ordered := cur.Y > prev.Y || cur.Y == prev.Y && cur.X > prev.X
		require.True(t, ordered, "positions out of order at %d", i)
	}
}

func TestFlippableCached(t *testing.T) {
	a := Flippable(3)
	b := Flippable(3)
	assert.Same(t, &a[0], &b[0], "cache should return the shared slice")
}
