// SPDX-License-Identifier: MIT

package labeled_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ndlabel/labeled"
	"github.com/katalvlaran/ndlabel/ndarray"
)

func TestIsSameLabeling(t *testing.T) {
	base := []int32{1, 1, 0, 2, 2, 3}
	tests := []struct {
		name  string
		other []int32
		want  bool
	}{
		{"identical", []int32{1, 1, 0, 2, 2, 3}, true},
		{"renamed", []int32{7, 7, 0, 4, 4, 9}, true},
		{"swapped", []int32{2, 2, 0, 1, 1, 3}, true},
		{"background differs", []int32{1, 1, 1, 2, 2, 3}, false},
		{"merged", []int32{1, 1, 0, 1, 1, 3}, false},
		{"split", []int32{1, 4, 0, 2, 2, 3}, false},
		{"background moved", []int32{1, 0, 1, 2, 2, 3}, false},
	}
	a := labelMap(t, base, 2, 3)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := labelMap(t, tc.other, 2, 3)
			got, err := labeled.IsSameLabeling(a, b)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)

			back, err := labeled.IsSameLabeling(b, a)
			require.NoError(t, err)
			assert.Equal(t, got, back, "symmetry")
		})
	}

	self, err := labeled.IsSameLabeling(a, a)
	require.NoError(t, err)
	assert.True(t, self)
}

func TestIsSameLabeling_Errors(t *testing.T) {
	a := labelMap(t, []int32{1, 2, 3, 4}, 2, 2)
	b := labelMap(t, []int32{1, 2, 3, 4}, 4)
	_, err := labeled.IsSameLabeling(a, b)
	assert.ErrorIs(t, err, labeled.ErrConfiguration)
	assert.ErrorIs(t, err, ndarray.ErrShapeMismatch)

	_, err = labeled.IsSameLabeling(a, nil)
	assert.ErrorIs(t, err, ndarray.ErrNilArray)
}
