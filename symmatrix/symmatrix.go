package symmatrix

import "errors"

// Sentinel errors for symmetric matrix operations.
var (
	// ErrOutOfRange indicates that a row or column index is outside [0, Size).
	ErrOutOfRange = errors.New("symmatrix: index out of range")

	// ErrNonSquare is returned by FromMatrix for ragged or non-square input.
	ErrNonSquare = errors.New("symmatrix: matrix is not square")

	// ErrAsymmetry is returned by FromMatrix when m[i][j] != m[j][i].
	ErrAsymmetry = errors.New("symmatrix: matrix is not symmetric")
)

// SymmetricMatrix stores an n×n symmetric matrix in n(n+1)/2 cells:
// the lower triangle, diagonal included, in a flat slice.
type SymmetricMatrix struct {
	size     int
	elements []int64
}

// New creates a size×size symmetric matrix initialized to zeros.
// Complexity: O(n²) space compressed to n(n+1)/2 cells.
func New(size int) *SymmetricMatrix {
	if size < 0 {
		size = 0
	}

	return &SymmetricMatrix{
		size:     size,
		elements: make([]int64, size*(size+1)/2),
	}
}

// FromMatrix builds a SymmetricMatrix from a full square matrix.
// Returns ErrNonSquare when the input is ragged or not square, and
// ErrAsymmetry when any m[i][j] != m[j][i].
func FromMatrix(m [][]int64) (*SymmetricMatrix, error) {
	size := len(m)
	for _, row := range m {
		if len(row) != size {
			return nil, ErrNonSquare
		}
	}
	for i := 0; i < size; i++ {
		for j := 0; j < i; j++ {
			if m[i][j] != m[j][i] {
				return nil, ErrAsymmetry
			}
		}
	}

	s := New(size)
	// Copy the lower triangle only; the upper triangle is the same data.
	for i := 0; i < size; i++ {
		for j := 0; j <= i; j++ {
			s.elements[triangularIndex(i, j)] = m[i][j]
		}
	}

	return s, nil
}

// Size reports the matrix dimension n.
func (s *SymmetricMatrix) Size() int { return s.size }

// triangularIndex maps (row, col) with row >= col into the flat lower-
// triangular layout.
func triangularIndex(row, col int) int {
	return row*(row+1)/2 + col
}

// index normalizes (row, col) into the lower triangle and returns the flat
// cell index. (r,c) and (c,r) resolve to the identical cell.
func (s *SymmetricMatrix) index(row, col int) (int, error) {
	if row < 0 || row >= s.size || col < 0 || col >= s.size {
		return 0, ErrOutOfRange
	}
	if row < col {
		row, col = col, row
	}

	return triangularIndex(row, col), nil
}

// Set writes value at (row, col) and, structurally, at (col, row).
func (s *SymmetricMatrix) Set(row, col int, value int64) error {
	idx, err := s.index(row, col)
	if err != nil {
		return err
	}
	s.elements[idx] = value

	return nil
}

// Get reads the value at (row, col), identical to the value at (col, row).
func (s *SymmetricMatrix) Get(row, col int) (int64, error) {
	idx, err := s.index(row, col)
	if err != nil {
		return 0, err
	}

	return s.elements[idx], nil
}

// ToMatrix expands the compressed storage back into a full square matrix,
// deriving every cell through the shared-cell normalization.
func (s *SymmetricMatrix) ToMatrix() [][]int64 {
	out := make([][]int64, s.size)
	for i := range out {
		out[i] = make([]int64, s.size)
		for j := 0; j < s.size; j++ {
			v, _ := s.Get(i, j) // indices are valid by construction
			out[i][j] = v
		}
	}

	return out
}
