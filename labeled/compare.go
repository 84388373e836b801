// SPDX-License-Identifier: MIT

package labeled

import "github.com/katalvlaran/ndlabel/ndarray"

// IsSameLabeling reports whether a and b partition the array identically:
// they share the same background and there is a one-to-one label
// correspondence between them. Label values themselves do not matter.
//
// The scan stops at the first background disagreement or the first label
// pair contradicting a correspondence seen earlier.
func IsSameLabeling(a, b *LabelMap) (bool, error) {
	const op = "IsSameLabeling"
	if err := ndarray.ValidateNotNil(a); err != nil {
		return false, configError(op, err)
	}
	if err := ndarray.ValidateNotNil(b); err != nil {
		return false, configError(op, err)
	}
	if err := ndarray.ValidateSameShape(a, b); err != nil {
		return false, configError(op, err)
	}

	da, db := a.Data(), b.Data()
	for i := range da {
		if (da[i] == 0) != (db[i] == 0) {
			return false, nil
		}
	}

	forward := make(map[int32]int32)
	backward := make(map[int32]int32)
	for i, la := range da {
		if la == 0 {
			continue
		}
		lb := db[i]
		if got, seen := forward[la]; seen {
			if got != lb {
				return false, nil
			}
			continue
		}
		if _, taken := backward[lb]; taken {
			return false, nil
		}
		forward[la] = lb
		backward[lb] = la
	}

	return true, nil
}
