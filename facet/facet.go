// Package facet specifies how the subdim-dimensional faces of a
// dim-dimensional simplex are numbered and ordered.
//
// The numbering scheme:
//
//   - Low-dimensional faces (subdim ≤ dim-1-subdim) are numbered in
//     lexicographical order of their vertex sets. In a 3-simplex, edges
//     0..5 span vertices 01, 02, 03, 12, 13, 23.
//
//   - High-dimensional faces are numbered in reverse lexicographical
//     order; equivalently, face i spans the complement of the vertices
//     of low-dimensional face i of the opposite dimension. In a
//     3-simplex, triangles 0..3 span vertices 123, 023, 013, 012.
//
//   - Consequently face i is opposite face i of dimension dim-1-subdim,
//     except in the halfway case subdim == (dim-1)/2 where face i is
//     opposite face Count-1-i.
//
// Dimensions 1 to perm.MaxDegree-1 (MaxDim) are supported, which covers
// every dimension the rest of the module works in.
package facet

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/lowtopo/perm"
)

// ErrBadFace is returned for an out-of-range dimension, sub-dimension,
// face number or vertex.
var ErrBadFace = errors.New("facet: face specification out of range")

// MaxDim is the largest supported simplex dimension.
const MaxDim = perm.MaxDegree - 1

// binom is Pascal's triangle up to perm.MaxDegree, enough for every
// supported dimension.
var binom [perm.MaxDegree + 1][perm.MaxDegree + 1]int

func init() {
	for n := 0; n <= perm.MaxDegree; n++ {
		binom[n][0] = 1
		for k := 1; k <= n; k++ {
			binom[n][k] = binom[n-1][k-1] + binom[n-1][k]
		}
	}
}

// Binomial returns C(n, k) for 0 ≤ k ≤ n ≤ perm.MaxDegree, and 0 outside
// that triangle.
func Binomial(n, k int) int {
	if n < 0 || n > perm.MaxDegree || k < 0 || k > n {
		return 0
	}
	return binom[n][k]
}

// checkDims validates the (dim, subdim) pair.
func checkDims(dim, subdim int) error {
	if dim < 1 || dim > MaxDim || subdim < 0 || subdim >= dim {
		return fmt.Errorf("%w: dim=%d subdim=%d", ErrBadFace, dim, subdim)
	}
	return nil
}

// Count returns the number of subdim-faces of a dim-simplex,
// C(dim+1, subdim+1).
func Count(dim, subdim int) (int, error) {
	if err := checkDims(dim, subdim); err != nil {
		return 0, err
	}
	return binom[dim+1][subdim+1], nil
}

// lexNumbering reports whether subdim-faces of a dim-simplex are
// numbered in forward lexicographical order.
func lexNumbering(dim, subdim int) bool { return subdim <= dim-1-subdim }

// lexSubset returns the idx-th k-element subset of {0..n-1} in
// lexicographic order, ascending.
func lexSubset(n, k, idx int) []int {
	out := make([]int, 0, k)
	next := 0
	for k > 0 {
		// Subsets starting with `next` as their minimum: C(n-1-next, k-1).
		block := binom[n-1-next][k-1]
		if idx < block {
			out = append(out, next)
			k--
		} else {
			idx -= block
		}
		next++
	}
	return out
}

// lexIndex is the inverse of lexSubset; verts must be strictly ascending.
func lexIndex(n int, verts []int) int {
	idx := 0
	prev := -1
	k := len(verts)
	for pos, v := range verts {
		for c := prev + 1; c < v; c++ {
			idx += binom[n-1-c][k-pos-1]
		}
		prev = v
	}
	return idx
}

// complement returns {0..n-1} minus the ascending set verts, ascending.
func complement(n int, verts []int) []int {
	out := make([]int, 0, n-len(verts))
	j := 0
	for v := 0; v < n; v++ {
		if j < len(verts) && verts[j] == v {
			j++
			continue
		}
		out = append(out, v)
	}
	return out
}

// Vertices returns the ascending vertex list spanned by the given face.
func Vertices(dim, subdim, face int) ([]int, error) {
	count, err := Count(dim, subdim)
	if err != nil {
		return nil, err
	}
	if face < 0 || face >= count {
		return nil, fmt.Errorf("%w: face=%d of %d", ErrBadFace, face, count)
	}
	n := dim + 1
	if lexNumbering(dim, subdim) {
		return lexSubset(n, subdim+1, face), nil
	}
	// High faces: face i spans the complement of low face i of the
	// opposite dimension.
	return complement(n, lexSubset(n, dim-subdim, face)), nil
}

// Number returns the face number spanned by the ascending images
// p(0)..p(subdim) of the given ordering permutation. The remaining
// images of p are ignored.
func Number(dim, subdim int, p perm.Perm) (int, error) {
	if err := checkDims(dim, subdim); err != nil {
		return 0, err
	}
	if p.Degree() != dim+1 {
		return 0, fmt.Errorf("%w: permutation degree %d for dim %d",
			ErrBadFace, p.Degree(), dim)
	}
	verts := make([]int, subdim+1)
	for i := range verts {
		verts[i] = p.Image(i)
	}
	sort.Ints(verts)
	n := dim + 1
	if lexNumbering(dim, subdim) {
		return lexIndex(n, verts), nil
	}
	return lexIndex(n, complement(n, verts)), nil
}

// Ordering returns the canonical vertex ordering of the given face: a
// permutation whose images 0..subdim list the face's vertices in
// ascending order, with the remaining images in descending order.
func Ordering(dim, subdim, face int) (perm.Perm, error) {
	verts, err := Vertices(dim, subdim, face)
	if err != nil {
		return perm.Perm{}, err
	}
	images := make([]int, 0, dim+1)
	images = append(images, verts...)
	rest := complement(dim+1, verts)
	for i := len(rest) - 1; i >= 0; i-- {
		images = append(images, rest[i])
	}
	return perm.FromImages(images...)
}

// ContainsVertex reports whether the given face spans vertex v.
func ContainsVertex(dim, subdim, face, v int) (bool, error) {
	if v < 0 || v > dim {
		return false, fmt.Errorf("%w: vertex=%d", ErrBadFace, v)
	}
	verts, err := Vertices(dim, subdim, face)
	if err != nil {
		return false, err
	}
	for _, w := range verts {
		if w == v {
			return true, nil
		}
	}
	return false, nil
}

// OppositeFace returns the number of the (dim-1-subdim)-face spanned by
// the vertices not in the given face. Outside the halfway case this is
// the same number; in the halfway case it is Count-1-face.
func OppositeFace(dim, subdim, face int) (int, error) {
	verts, err := Vertices(dim, subdim, face)
	if err != nil {
		return 0, err
	}
	opp := complement(dim+1, verts)
	oppDim := dim - 1 - subdim
	n := dim + 1
	if lexNumbering(dim, oppDim) {
		return lexIndex(n, opp), nil
	}
	return lexIndex(n, complement(n, opp)), nil
}
