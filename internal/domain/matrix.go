package domain

// All-pairs travel distances between places, in kilometers.
//
// Row and column indices correspond 1:1, in order, to the place list the
// matrix was built from. The diagonal is always zero; builders based on
// great-circle distance produce a symmetric matrix.
type DistanceMatrix [][]float64

// NewDistanceMatrix allocates a zeroed n×n matrix.
func NewDistanceMatrix(n int) DistanceMatrix {
	m := make(DistanceMatrix, n)
	for i := range m {
		m[i] = make([]float64, n)
	}
	return m
}

// Len returns the number of places the matrix covers.
func (m DistanceMatrix) Len() int { return len(m) }
