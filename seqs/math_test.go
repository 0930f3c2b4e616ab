package seqs_test

import (
	"iter"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seqkit/seqs"
)

func TestSumMinMax(t *testing.T) {
	src := slices.Values([]float64{2.5, -1, 4})

	assert.Equal(t, 5.5, seqs.Sum(src))

	lo, ok := seqs.Min(src)
	require.True(t, ok)
	assert.Equal(t, -1.0, lo)

	hi, ok := seqs.Max(src)
	require.True(t, ok)
	assert.Equal(t, 4.0, hi)

	empty := slices.Values([]int(nil))
	assert.Equal(t, 0, seqs.Sum(empty))
	_, ok = seqs.Min(empty)
	assert.False(t, ok)
	_, ok = seqs.Max(empty)
	assert.False(t, ok)
}

// foldOf adapts a sequence fold to take a slice.
func foldOf(f func(iter.Seq[int]) (int, error)) func([]int) (int, error) {
	return func(s []int) (int, error) {
		return f(slices.Values(s))
	}
}

func TestFolds(t *testing.T) {
	tests := []struct {
		name  string
		fold  func([]int) (int, error)
		input []int
		want  int
	}{
		{"Product", foldOf(seqs.Product[int]), defaultSource, 120},
		{"ProductSingle", foldOf(seqs.Product[int]), []int{7}, 7},
		{"And", foldOf(seqs.And[int]), []int{1, 3, 7, 15}, 1},
		{"AndSingle", foldOf(seqs.And[int]), []int{7}, 7},
		{"Or", foldOf(seqs.Or[int]), defaultSource, 7},
		{"OrSingle", foldOf(seqs.Or[int]), []int{8}, 8},
		{"Xor", foldOf(seqs.Xor[int]), defaultSource, 1},
		{"XorSingle", foldOf(seqs.Xor[int]), []int{9}, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fold(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})

		t.Run(tt.name+"Empty", func(t *testing.T) {
			_, err := tt.fold(nil)
			assert.ErrorIs(t, err, seqs.ErrEmptySequence)
		})
	}
}

func TestFolds_NilSource(t *testing.T) {
	_, err := seqs.Product[float64](nil)
	assert.ErrorIs(t, err, seqs.ErrNilSource)

	_, err = seqs.Xor[uint8](nil)
	assert.ErrorIs(t, err, seqs.ErrNilSource)
}

func TestSumMinMax_NilSource(t *testing.T) {
	assert.Equal(t, 0, seqs.Sum[int](nil))

	_, ok := seqs.Min[int](nil)
	assert.False(t, ok)
	_, ok = seqs.Max[float64](nil)
	assert.False(t, ok)
}

func TestProduct_Float(t *testing.T) {
	got, err := seqs.Product(slices.Values([]float64{0.5, 4, 3}))
	require.NoError(t, err)
	assert.InDelta(t, 6.0, got, 1e-9)
}
