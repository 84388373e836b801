// SPDX-License-Identifier: MIT

package unionfind

// Forest is a disjoint-set forest over dense integer ids.
// The zero value is an empty forest ready for MakeSet.
// A Forest is not safe for concurrent use.
type Forest struct {
	parent []int
}

// New returns an empty forest with room for capacity ids before reallocating.
func New(capacity int) *Forest {
	if capacity < 0 {
		capacity = 0
	}

	return &Forest{parent: make([]int, 0, capacity)}
}

// MakeSet adds a new singleton set and returns its id (ids start at 0).
// Complexity: amortised O(1).
func (f *Forest) MakeSet() int {
	id := len(f.parent)
	f.parent = append(f.parent, id)

	return id
}

// Len returns the number of ids created so far.
func (f *Forest) Len() int { return len(f.parent) }

// Find returns the representative of a's set, halving the path on the way up.
// a must be a valid id.
func (f *Forest) Find(a int) int {
	p := f.parent
	for p[a] != a {
		p[a] = p[p[a]]
		a = p[a]
	}

	return a
}

// Union merges the sets containing a and b and returns the new representative,
// which is the smaller of the two roots.
func (f *Forest) Union(a, b int) int {
	ra, rb := f.Find(a), f.Find(b)
	if ra == rb {
		return ra
	}
	if rb < ra {
		ra, rb = rb, ra
	}
	f.parent[rb] = ra

	return ra
}

// Same reports whether a and b are in the same set.
func (f *Forest) Same(a, b int) bool { return f.Find(a) == f.Find(b) }

// Sets returns the number of disjoint sets.
// Complexity: O(Len()).
func (f *Forest) Sets() int {
	n := 0
	for id, p := range f.parent {
		if id == p {
			n++
		}
	}

	return n
}

// Reset empties the forest while keeping its storage.
func (f *Forest) Reset() { f.parent = f.parent[:0] }
