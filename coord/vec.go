package coord

// Vec is a fixed-length vector of signed integers.
// Its length is the dimensionality N of the lattice it describes.
type Vec []int

// New returns a zero vector with n components.
// Complexity: O(n).
func New(n int) Vec {
	return make(Vec, n)
}

// Of builds a Vec from the given components, copying them.
// Complexity: O(n).
func Of(components ...int) Vec {
	v := make(Vec, len(components))
	copy(v, components)
	return v
}

// Dim returns the number of components of v.
// Complexity: O(1).
func (v Vec) Dim() int {
	return len(v)
}

// Clone returns an independent copy of v.
// Complexity: O(n).
func (v Vec) Clone() Vec {
	w := make(Vec, len(v))
	copy(w, v)
	return w
}

// Equal reports whether v and w have identical length and components.
// Complexity: O(n).
func (v Vec) Equal(w Vec) bool {
	if len(v) != len(w) {
		return false
	}
	for d := range v {
		if v[d] != w[d] {
			return false
		}
	}
	return true
}

// Negate returns a new Vec with every component of v negated.
// Complexity: O(n).
func (v Vec) Negate() Vec {
	w := make(Vec, len(v))
	for d := range v {
		w[d] = -v[d]
	}
	return w
}

// Dot returns the scalar product of v and w.
// Returns ErrDimensionMismatch when the lengths differ.
// Complexity: O(n).
func (v Vec) Dot(w Vec) (int, error) {
	if len(v) != len(w) {
		return 0, ErrDimensionMismatch
	}
	sum := 0
	for d := range v {
		sum += v[d] * w[d]
	}
	return sum, nil
}

// CumProd returns the running product of v:
// c[0] = v[0], c[d] = c[d-1] * v[d].
// Complexity: O(n).
func (v Vec) CumProd() Vec {
	c := make(Vec, len(v))
	acc := 1
	for d := range v {
		acc *= v[d]
		c[d] = acc
	}
	return c
}

// Strides returns the row-major stride vector of an array with extents
// extent: component 0 varies fastest (stride 1), and each later stride is
// the previous stride times the previous extent.
// Complexity: O(n).
func Strides(extent Vec) Vec {
	s := make(Vec, len(extent))
	acc := 1
	for d := range extent {
		s[d] = acc
		acc *= extent[d]
	}
	return s
}
