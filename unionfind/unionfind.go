package unionfind

import "errors"

// ErrIndexOutOfRange indicates an element index outside [0, n).
var ErrIndexOutOfRange = errors.New("unionfind: element index out of range")

// UnionFind tracks a partition of {0, …, n-1} into disjoint sets.
//
// Encoding: parent[x] >= 0 points to x's parent; a root holds the negated
// size of its set (parent[root] == -size). A fresh structure is n
// singleton sets, every cell -1.
type UnionFind struct {
	parent []int
	sets   int
}

// New creates a union-find over n singleton sets.
func New(n int) *UnionFind {
	if n < 0 {
		n = 0
	}
	parent := make([]int, n)
	for i := range parent {
		parent[i] = -1
	}

	return &UnionFind{parent: parent, sets: n}
}

// Len reports the number of elements.
func (u *UnionFind) Len() int { return len(u.parent) }

// Count reports the number of disjoint sets.
func (u *UnionFind) Count() int { return u.sets }

// Find returns the root representative of x's set, compressing the path
// so every node walked now points directly at the root.
func (u *UnionFind) Find(x int) (int, error) {
	if x < 0 || x >= len(u.parent) {
		return 0, ErrIndexOutOfRange
	}

	// First pass: locate the root.
	root := x
	for u.parent[root] >= 0 {
		root = u.parent[root]
	}
	// Second pass: repoint the walked path at the root.
	for x != root {
		next := u.parent[x]
		u.parent[x] = root
		x = next
	}

	return root, nil
}

// Union merges the sets containing x and y, attaching the smaller tree
// under the larger. Merging two elements already in one set is a no-op.
func (u *UnionFind) Union(x, y int) error {
	rootX, err := u.Find(x)
	if err != nil {
		return err
	}
	rootY, err := u.Find(y)
	if err != nil {
		return err
	}
	if rootX == rootY {
		return nil
	}

	// Roots hold negated sizes, so the "more negative" root is larger.
	if u.parent[rootX] <= u.parent[rootY] {
		u.parent[rootX] += u.parent[rootY]
		u.parent[rootY] = rootX
	} else {
		u.parent[rootY] += u.parent[rootX]
		u.parent[rootX] = rootY
	}
	u.sets--

	return nil
}

// Connected reports whether x and y currently share a set.
func (u *UnionFind) Connected(x, y int) (bool, error) {
	rootX, err := u.Find(x)
	if err != nil {
		return false, err
	}
	rootY, err := u.Find(y)
	if err != nil {
		return false, err
	}

	return rootX == rootY, nil
}

// SetSize reports the size of the set containing x.
func (u *UnionFind) SetSize(x int) (int, error) {
	root, err := u.Find(x)
	if err != nil {
		return 0, err
	}

	return -u.parent[root], nil
}
