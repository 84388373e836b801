// SPDX-License-Identifier: MIT

package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ndlabel/builder"
)

func count(data []uint8) int {
	n := 0
	for _, v := range data {
		if v != 0 {
			n++
		}
	}
	return n
}

func TestBuild_Constructors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		shape []int
		cons  []builder.Constructor
		want  int // foreground count
	}{
		{"empty", []int{4, 4}, nil, 0},
		{"box", []int{5, 5}, []builder.Constructor{builder.Box([]int{1, 1}, []int{4, 3})}, 6},
		{"box3d", []int{3, 3, 3}, []builder.Constructor{builder.Box([]int{0, 0, 0}, []int{3, 3, 3})}, 27},
		{"points", []int{3, 3}, []builder.Constructor{builder.Points([]int{0, 0}, []int{2, 2}, []int{0, 0})}, 2},
		{"checkerboard", []int{3, 3}, []builder.Constructor{builder.Checkerboard()}, 5},
		{"ball", []int{5, 5}, []builder.Constructor{builder.Ball([]int{2, 2}, 1)}, 5},
		{"ball clipped", []int{3, 3}, []builder.Constructor{builder.Ball([]int{0, 0}, 1)}, 3},
		{"random p=1", []int{2, 3}, []builder.Constructor{builder.RandomSparse(1)}, 6},
		{"random p=0", []int{2, 3}, []builder.Constructor{builder.RandomSparse(0)}, 0},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			a, err := builder.Build(tc.shape, nil, tc.cons...)
			require.NoError(t, err)
			assert.Equal(t, tc.shape, a.Shape())
			assert.Equal(t, tc.want, count(a.Data()))
		})
	}
}

func TestBuild_Layout(t *testing.T) {
	a := builder.MustBuild([]int{3, 4}, nil, builder.Box([]int{0, 1}, []int{2, 3}))
	assert.Equal(t, []uint8{
		0, 1, 1, 0,
		0, 1, 1, 0,
		0, 0, 0, 0,
	}, a.Data())
}

func TestWithValue(t *testing.T) {
	b, err := builder.Build([]int{3, 3}, []builder.Option{builder.WithValue(7)},
		builder.Points([]int{1, 1}),
	)
	require.NoError(t, err)
	assert.Equal(t, uint8(7), b.Data()[4])
	assert.Equal(t, 1, count(b.Data()))
}

func TestErase_Ring(t *testing.T) {
	ring, err := builder.Build([]int{4, 4}, nil,
		builder.Box([]int{0, 0}, []int{4, 4}),
		builder.Erase(builder.Box([]int{1, 1}, []int{3, 3})),
	)
	require.NoError(t, err)
	assert.Equal(t, 12, count(ring.Data()))
	assert.Equal(t, uint8(0), ring.Data()[5])

	_, err = builder.Build([]int{2}, nil, builder.Erase(nil))
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestRandomSparse_Deterministic(t *testing.T) {
	opts := []builder.Option{builder.WithSeed(42)}
	a := builder.MustBuild([]int{16, 16}, opts, builder.RandomSparse(0.3))
	b := builder.MustBuild([]int{16, 16}, opts, builder.RandomSparse(0.3))
	assert.Equal(t, a.Data(), b.Data())

	n := count(a.Data())
	assert.Greater(t, n, 0)
	assert.Less(t, n, 256)

	c := builder.MustBuild([]int{16, 16}, []builder.Option{builder.WithRand(rand.New(rand.NewSource(42)))}, builder.RandomSparse(0.3))
	assert.Equal(t, a.Data(), c.Data())
}

func TestBuild_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		shape   []int
		opts    []builder.Option
		con     builder.Constructor
		wantErr error
	}{
		{"bad shape", []int{0, 3}, nil, builder.Checkerboard(), builder.ErrBadSize},
		{"nil constructor", []int{2}, nil, nil, builder.ErrConstructFailed},
		{"box rank", []int{3, 3}, nil, builder.Box([]int{0}, []int{1}), builder.ErrBadSize},
		{"box empty", []int{3, 3}, nil, builder.Box([]int{1, 1}, []int{1, 2}), builder.ErrBadSize},
		{"box outside", []int{3, 3}, nil, builder.Box([]int{0, 0}, []int{4, 1}), builder.ErrOutOfBounds},
		{"point outside", []int{3, 3}, nil, builder.Points([]int{3, 0}), builder.ErrOutOfBounds},
		{"ball radius", []int{3, 3}, nil, builder.Ball([]int{1, 1}, -1), builder.ErrBadSize},
		{"ball centre", []int{3, 3}, nil, builder.Ball([]int{5, 1}, 1), builder.ErrOutOfBounds},
		{"probability", []int{3}, []builder.Option{builder.WithSeed(1)}, builder.RandomSparse(1.5), builder.ErrInvalidProbability},
		{"no rng", []int{3}, nil, builder.RandomSparse(0.5), builder.ErrNeedRandSource},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := builder.Build(tc.shape, tc.opts, tc.con)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestWithRand_Nil(t *testing.T) {
	assert.PanicsWithValue(t, "builder: WithRand(nil)", func() { builder.WithRand(nil) })
}
