// SPDX-License-Identifier: MIT

package labeled_test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ndlabel/builder"
	"github.com/katalvlaran/ndlabel/labeled"
	"github.com/katalvlaran/ndlabel/ndarray"
	"github.com/katalvlaran/ndlabel/strel"
)

func TestLabel_SinglePixel(t *testing.T) {
	img := builder.MustBuild([]int{5, 5}, nil, builder.Points([]int{2, 2}))

	L, n, err := labeled.Label(img)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	v, err := L.At(2, 2)
	require.NoError(t, err)
	assert.Equal(t, int32(1), v)

	kept, err := labeled.RemoveBordering(L, 1, labeled.Copy)
	require.NoError(t, err)
	assert.Equal(t, L.Data(), kept.Data())
}

func TestLabel_DiagonalPixels(t *testing.T) {
	img := builder.MustBuild([]int{2, 2}, nil, builder.Points([]int{0, 0}, []int{1, 1}))

	_, n, err := labeled.Label(img)
	require.NoError(t, err)
	assert.Equal(t, 2, n, "cross")

	L, n, err := labeled.Label(img, labeled.WithStructuringElement(strel.Full(2)))
	require.NoError(t, err)
	assert.Equal(t, 1, n, "full")
	assert.Equal(t, []int32{1, 0, 0, 1}, L.Data())
}

func TestLabel_MergeOrder(t *testing.T) {
	tests := []struct {
		name  string
		img   []uint8
		shape []int
		want  []int32
		n     int
	}{
		{
			name: "U",
			img: []uint8{
				1, 0, 1,
				1, 0, 1,
				1, 1, 1,
			},
			shape: []int{3, 3},
			want: []int32{
				1, 0, 1,
				1, 0, 1,
				1, 1, 1,
			},
			n: 1,
		},
		{
			name: "W",
			img: []uint8{
				1, 0, 1, 0, 1,
				1, 1, 1, 1, 1,
				0, 0, 0, 0, 0,
				1, 1, 0, 0, 1,
			},
			shape: []int{4, 5},
			want: []int32{
				1, 0, 1, 0, 1,
				1, 1, 1, 1, 1,
				0, 0, 0, 0, 0,
				2, 2, 0, 0, 3,
			},
			n: 3,
		},
		{
			name:  "1-D runs",
			img:   []uint8{0, 1, 1, 0, 1, 0, 0, 1},
			shape: []int{8},
			want:  []int32{0, 1, 1, 0, 2, 0, 0, 3},
			n:     3,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			img := ndarray.MustFromSlice(tc.img, tc.shape...)
			L, n, err := labeled.Label(img)
			require.NoError(t, err)
			assert.Equal(t, tc.n, n)
			if diff := cmp.Diff(tc.want, L.Data()); diff != "" {
				t.Errorf("labels mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLabel_EmptyAndFull(t *testing.T) {
	empty := builder.MustBuild([]int{4, 3, 2}, nil)
	L, n, err := labeled.Label(empty)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, make([]int32, 24), L.Data())

	full := builder.MustBuild([]int{4, 3, 2}, nil, builder.RandomSparse(1))
	L, n, err = labeled.Label(full)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	for _, l := range L.Data() {
		assert.Equal(t, int32(1), l)
	}
}

func TestLabel_ElementTypes(t *testing.T) {
	b := ndarray.MustFromSlice([]bool{true, false, true, true}, 4)
	_, n, err := labeled.Label(b)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	f := ndarray.MustFromSlice([]float64{0.5, 0, -2, 0}, 4)
	L, n, err := labeled.Label(f)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []int32{1, 0, 2, 0}, L.Data())
}

func TestLabel_AsymmetricElement(t *testing.T) {
	// Only the right-hand neighbour is in the element; adjacency is still
	// symmetric, so runs connect.
	e := strel.MustNew([]bool{false, false, true}, 3)
	img := ndarray.MustFromSlice([]int{1, 1, 0, 1, 1, 1}, 6)
	L, n, err := labeled.Label(img, labeled.WithStructuringElement(e))
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []int32{1, 1, 0, 2, 2, 2}, L.Data())
}

func TestLabel_LongReachElement(t *testing.T) {
	// Offsets ±2 along the only axis: every other position connects.
	e := strel.MustNew([]bool{true, false, false, false, true}, 5)
	img := ndarray.MustFromSlice([]uint8{1, 1, 1, 1, 0, 0, 0, 1}, 8)
	L, n, err := labeled.Label(img, labeled.WithStructuringElement(e))
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []int32{1, 2, 1, 2, 0, 0, 0, 3}, L.Data())
}

func TestLabel_MatchesFloodFill(t *testing.T) {
	t.Parallel()

	cases := []struct {
		shape []int
		elem  *strel.Element
	}{
		{[]int{24, 31}, strel.Cross(2)},
		{[]int{24, 31}, strel.Full(2)},
		{[]int{7, 8, 9}, strel.Cross(3)},
		{[]int{7, 8, 9}, strel.Full(3)},
		{[]int{50}, strel.Cross(1)},
		{[]int{3, 4, 5, 6}, strel.Cross(4)},
	}
	for _, tc := range cases {
		for _, p := range []float64{0.2, 0.45, 0.6} {
			for seed := int64(1); seed <= 3; seed++ {
				tc, p, seed := tc, p, seed
				name := fmt.Sprintf("%v/n=%d/p=%.2f/seed=%d", tc.shape, len(tc.elem.Offsets()), p, seed)
				t.Run(name, func(t *testing.T) {
					t.Parallel()
					img := builder.MustBuild(tc.shape, []builder.Option{builder.WithSeed(seed)}, builder.RandomSparse(p))

					L, n, err := labeled.Label(img, labeled.WithStructuringElement(tc.elem))
					require.NoError(t, err)
					want, wantN := floodLabel(img, tc.elem)
					assert.Equal(t, wantN, n)
					if diff := cmp.Diff(want, L.Data()); diff != "" {
						t.Fatalf("labels mismatch (-flood +label):\n%s", diff)
					}

					// Background coincidence.
					for i, v := range img.Data() {
						require.Equal(t, v == 0, L.Data()[i] == 0, "index %d", i)
					}
				})
			}
		}
	}
}

func TestLabel_BufferReuse(t *testing.T) {
	img := builder.MustBuild([]int{6, 6}, []builder.Option{builder.WithSeed(7)}, builder.RandomSparse(0.5))
	fresh, n, err := labeled.Label(img)
	require.NoError(t, err)

	buf, err := ndarray.New[int32](6, 6)
	require.NoError(t, err)
	buf.Fill(99)
	got, m, err := labeled.Label(img, labeled.WithLabelBuffer(buf))
	require.NoError(t, err)
	assert.Same(t, buf, got)
	assert.Equal(t, n, m)
	assert.Equal(t, fresh.Data(), got.Data())
}

func TestLabel_Errors(t *testing.T) {
	img := builder.MustBuild([]int{4, 4}, nil, builder.Checkerboard())

	_, _, err := labeled.Label[uint8](nil)
	assert.ErrorIs(t, err, labeled.ErrConfiguration)
	assert.ErrorIs(t, err, ndarray.ErrNilArray)

	_, _, err = labeled.Label(img, labeled.WithStructuringElement(strel.Cross(3)))
	assert.ErrorIs(t, err, labeled.ErrConfiguration)
	assert.ErrorIs(t, err, strel.ErrDimensionMismatch)

	buf, err := ndarray.New[int32](4, 5)
	require.NoError(t, err)
	buf.Fill(5)
	_, _, err = labeled.Label(img, labeled.WithLabelBuffer(buf))
	assert.ErrorIs(t, err, labeled.ErrConfiguration)
	assert.ErrorIs(t, err, ndarray.ErrShapeMismatch)
	for _, v := range buf.Data() {
		require.Equal(t, int32(5), v, "buffer written despite failed precondition")
	}

	assert.Panics(t, func() { labeled.WithLabelBuffer(nil) })
}
