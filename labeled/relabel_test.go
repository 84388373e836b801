// SPDX-License-Identifier: MIT

package labeled_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ndlabel/builder"
	"github.com/katalvlaran/ndlabel/labeled"
	"github.com/katalvlaran/ndlabel/ndarray"
	"github.com/katalvlaran/ndlabel/strel"
)

func TestRelabel_ClosesGaps(t *testing.T) {
	L := labelMap(t, []int32{1, 3, 3, 7}, 4)
	got, n, err := labeled.Relabel(L, labeled.Copy)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []int32{1, 2, 2, 3}, got.Data())
	assert.Equal(t, []int32{1, 3, 3, 7}, L.Data(), "Copy must not touch the input")
}

func TestRelabel_FirstAppearance(t *testing.T) {
	L := labelMap(t, []int32{
		5, 0, 2,
		5, 9, 0,
	}, 2, 3)
	got, n, err := labeled.Relabel(L, labeled.InPlace)
	require.NoError(t, err)
	assert.Same(t, L, got)
	assert.Equal(t, 3, n)
	assert.Equal(t, []int32{1, 0, 2, 1, 3, 0}, L.Data())
}

func TestRelabel_AllBackground(t *testing.T) {
	L := labelMap(t, []int32{0, 0, 0}, 3)
	got, n, err := labeled.Relabel(L, labeled.Copy)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, []int32{0, 0, 0}, got.Data())
}

func TestRelabel_Properties(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		img := builder.MustBuild([]int{20, 20}, []builder.Option{builder.WithSeed(seed)}, builder.RandomSparse(0.4))
		L, n, err := labeled.Label(img, labeled.WithStructuringElement(strel.Full(2)))
		require.NoError(t, err)

		// Label output is already canonical.
		once, m, err := labeled.Relabel(L, labeled.Copy)
		require.NoError(t, err)
		assert.Equal(t, n, m)
		assert.Equal(t, L.Data(), once.Data())

		// Removing every other region and relabeling twice is idempotent.
		var drop []int32
		for r := int32(2); r <= int32(n); r += 2 {
			drop = append(drop, r)
		}
		cut, err := labeled.RemoveRegions(L, drop, labeled.Copy)
		require.NoError(t, err)
		r1, k1, err := labeled.Relabel(cut, labeled.Copy)
		require.NoError(t, err)
		r2, k2, err := labeled.Relabel(r1, labeled.Copy)
		require.NoError(t, err)
		assert.Equal(t, k1, k2)
		assert.Equal(t, r1.Data(), r2.Data())
		assert.Equal(t, (n+1)/2, k1)

		same, err := labeled.IsSameLabeling(cut, r1)
		require.NoError(t, err)
		assert.True(t, same)
	}
}

func TestRelabel_Errors(t *testing.T) {
	_, _, err := labeled.Relabel(nil, labeled.Copy)
	assert.ErrorIs(t, err, ndarray.ErrNilArray)

	L := labelMap(t, []int32{1, -2, 3}, 3)
	_, _, err = labeled.Relabel(L, labeled.InPlace)
	assert.ErrorIs(t, err, labeled.ErrConfiguration)
	assert.ErrorIs(t, err, labeled.ErrNegativeLabel)
	assert.Equal(t, []int32{1, -2, 3}, L.Data())

	ok := labelMap(t, []int32{1, 2}, 2)
	_, _, err = labeled.Relabel(ok, labeled.Placement(7))
	assert.ErrorIs(t, err, labeled.ErrBadPlacement)
	assert.Equal(t, "Placement(7)", labeled.Placement(7).String())
	assert.Equal(t, "in-place", labeled.InPlace.String())
}
