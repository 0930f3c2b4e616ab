package sliceutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seqkit/seqs"
	"seqkit/sliceutil"
)

func TestSkipAt(t *testing.T) {
	input := []int{1, 2, 3, 4, 5}

	got, err := sliceutil.SkipAt(input, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, got)

	got, err = sliceutil.SkipAt(input, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 4, 5}, got)

	assert.Equal(t, []int{1, 2, 3, 4, 5}, input, "input must not be modified")

	for _, idx := range []int{-1, 5} {
		_, err = sliceutil.SkipAt(input, idx)
		assert.ErrorIs(t, err, seqs.ErrIndexOutOfRange, "index %d", idx)
	}
}

func TestSkipAtOrDefault(t *testing.T) {
	input := []int{1, 2, 3, 4, 5}

	assert.Equal(t, []int{1, 2, 4, 5}, sliceutil.SkipAtOrDefault(input, 2))
	assert.Equal(t, input, sliceutil.SkipAtOrDefault(input, 5))
	assert.Equal(t, input, sliceutil.SkipAtOrDefault(input, -1))

	out := sliceutil.SkipAtOrDefault(input, 9)
	out[0] = 0
	assert.Equal(t, 1, input[0], "out-of-range result is a copy")
}
