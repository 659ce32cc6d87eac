package abelian

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/lowtopo/integer"
	"github.com/katalvlaran/lowtopo/matrix"
)

// Hom is a homomorphism between two marked abelian groups, induced by a
// chain map: a matrix with Codomain().ChainDim() rows and
// Domain().ChainDim() columns carrying cycles to cycles and boundaries
// to boundaries.
//
// The reduced matrix, kernel, cokernel and image are derived lazily on
// first use and cached; a Hom is safe for concurrent use.
type Hom struct {
	domain, codomain *MarkedAbelianGroup
	mat              *matrix.Dense

	mu         sync.Mutex
	reduced    *matrix.Dense
	kernelLat  *matrix.Dense
	kernel     *MarkedAbelianGroup
	cokernel   *MarkedAbelianGroup
	image      *MarkedAbelianGroup
}

// NewHom constructs the homomorphism with the given defining matrix.
// Both groups must use integer coefficients, and the matrix must be
// Codomain().ChainDim() × Domain().ChainDim().
func NewHom(domain, codomain *MarkedAbelianGroup, mat *matrix.Dense) (*Hom, error) {
	if domain == nil || codomain == nil || mat == nil {
		return nil, fmt.Errorf("%w: nil argument", ErrPrecondition)
	}
	if !domain.coeff.IsZero() || !codomain.coeff.IsZero() {
		return nil, fmt.Errorf("%w: homomorphisms require integer coefficients",
			ErrPrecondition)
	}
	if mat.Rows() != codomain.ChainDim() || mat.Cols() != domain.ChainDim() {
		return nil, fmt.Errorf("%w: matrix is %dx%d, want %dx%d",
			ErrPrecondition, mat.Rows(), mat.Cols(),
			codomain.ChainDim(), domain.ChainDim())
	}
	return &Hom{domain: domain, codomain: codomain, mat: mat.Clone()}, nil
}

// Domain returns the domain group.
func (h *Hom) Domain() *MarkedAbelianGroup { return h.domain }

// Codomain returns the codomain group.
func (h *Hom) Codomain() *MarkedAbelianGroup { return h.codomain }

// Matrix returns a copy of the defining chain-coordinate matrix.
func (h *Hom) Matrix() *matrix.Dense { return h.mat.Clone() }

// Apply pushes a chain vector of the domain through the defining matrix.
func (h *Hom) Apply(v []integer.Int) ([]integer.Int, error) {
	return h.mat.MulVec(v)
}

// ReducedMatrix returns the map written in the SNF-quotient coordinates
// of both sides: torsion generators first, then free generators.
func (h *Hom) ReducedMatrix() *matrix.Dense {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.computeReducedLocked()
	return h.reduced.Clone()
}

// computeReducedLocked derives the reduced matrix: restrict to kernel
// coordinates on both sides through the SNF bases of M, then project to
// the quotient bases, dropping the columns dual to the unit diagonal
// entries.
func (h *Hom) computeReducedLocked() {
	if h.reduced != nil {
		return
	}
	dom, ran := h.domain.core, h.codomain.core

	// Step 1: kerMatrix = rows-below-rankM(ran) of mri · mat · cols-from-rankM(dom.mr).
	temp1, _ := matrix.NewDense(h.mat.Rows(), h.mat.Cols()-dom.rankM)
	for i := 0; i < temp1.Rows(); i++ {
		for j := 0; j < temp1.Cols(); j++ {
			var sum integer.Int
			for k := 0; k < h.mat.Cols(); k++ {
				a, _ := h.mat.At(i, k)
				b, _ := dom.mr.At(k, j+dom.rankM)
				if a.IsZero() || b.IsZero() {
					continue
				}
				sum = sum.Add(a.Mul(b))
			}
			_ = temp1.Set(i, j, sum)
		}
	}
	kerMat, _ := matrix.NewDense(h.mat.Rows()-ran.rankM, temp1.Cols())
	for i := 0; i < kerMat.Rows(); i++ {
		for j := 0; j < kerMat.Cols(); j++ {
			var sum integer.Int
			for k := 0; k < ran.mri.Cols(); k++ {
				a, _ := ran.mri.At(i+ran.rankM, k)
				b, _ := temp1.At(k, j)
				if a.IsZero() || b.IsZero() {
					continue
				}
				sum = sum.Add(a.Mul(b))
			}
			_ = kerMat.Set(i, j, sum)
		}
	}

	// Step 2: project through ornCi (domain) and ornC (codomain),
	// dropping the unit-diagonal block on each side.
	temp2, _ := matrix.NewDense(kerMat.Rows(), kerMat.Cols()-dom.ifLoc)
	for i := 0; i < temp2.Rows(); i++ {
		for j := 0; j < temp2.Cols(); j++ {
			var sum integer.Int
			for k := 0; k < kerMat.Cols(); k++ {
				a, _ := kerMat.At(i, k)
				b, _ := dom.ornCi.At(k, j+dom.ifLoc)
				if a.IsZero() || b.IsZero() {
					continue
				}
				sum = sum.Add(a.Mul(b))
			}
			_ = temp2.Set(i, j, sum)
		}
	}
	red, _ := matrix.NewDense(kerMat.Rows()-ran.ifLoc, temp2.Cols())
	for i := 0; i < red.Rows(); i++ {
		for j := 0; j < red.Cols(); j++ {
			var sum integer.Int
			for k := 0; k < ran.ornC.Cols(); k++ {
				a, _ := ran.ornC.At(i+ran.ifLoc, k)
				b, _ := temp2.At(k, j)
				if a.IsZero() || b.IsZero() {
					continue
				}
				sum = sum.Add(a.Mul(b))
			}
			_ = red.Set(i, j, sum)
		}
	}
	h.reduced = red
}

// computeKernelLatticeLocked derives the pre-image, inside the reduced
// domain coordinates, of the codomain's lattice (invariant factors
// first, then free factors, matching the reduced matrix rows).
func (h *Hom) computeKernelLatticeLocked() {
	if h.kernelLat != nil {
		return
	}
	h.computeReducedLocked()
	ran := h.codomain.core

	orders := make([]integer.Int, h.reduced.Rows())
	for i := range orders {
		if i < ran.ifNum {
			orders[i] = ran.invFac[i]
		}
	}
	lat, err := matrix.PreimageOfLattice(h.reduced.Clone(), orders)
	if err != nil {
		// The reduced matrix and order vector are consistent by
		// construction; failure is a programmer error.
		panic(err)
	}
	h.kernelLat = lat
}

// Kernel returns the kernel as a marked abelian group, presented on the
// kernel-lattice generators modulo the domain's torsion relations.
func (h *Hom) Kernel() *MarkedAbelianGroup {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.kernel != nil {
		return h.kernel
	}
	h.computeKernelLatticeLocked()
	dom := h.domain.core

	// The domain's torsion lattice, written in kernel-lattice
	// coordinates: generator j is d_j·e_j in the reduced domain, and it
	// lies inside the kernel lattice because torsion dies in the
	// codomain, so solving against the lattice basis is exact.
	solver, err := newLatticeSolver(h.kernelLat)
	if err != nil {
		panic(err)
	}
	work, _ := matrix.NewDense(h.kernelLat.Cols(), dom.ifNum)
	for j := 0; j < dom.ifNum; j++ {
		gen := make([]integer.Int, h.kernelLat.Rows())
		gen[j] = dom.invFac[j]
		x, ok := solver.solve(gen)
		if !ok {
			panic("abelian: torsion generator outside the kernel lattice")
		}
		for i := 0; i < work.Rows(); i++ {
			_ = work.Set(i, j, x[i])
		}
	}

	zero, _ := matrix.NewDense(1, h.kernelLat.Cols())
	ker, err := New(zero, work)
	if err != nil {
		panic(err)
	}
	h.kernel = ker
	return h.kernel
}

// Cokernel returns the cokernel as a marked abelian group: the reduced
// codomain modulo the image of the reduced matrix and the codomain's
// invariant factors.
func (h *Hom) Cokernel() *MarkedAbelianGroup {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.cokernel != nil {
		return h.cokernel
	}
	h.computeReducedLocked()
	ran := h.codomain.core

	rel, _ := matrix.NewDense(h.reduced.Rows(), h.reduced.Cols()+ran.ifNum)
	for i := 0; i < h.reduced.Rows(); i++ {
		for j := 0; j < h.reduced.Cols(); j++ {
			v, _ := h.reduced.At(i, j)
			_ = rel.Set(i, j, v)
		}
	}
	for i := 0; i < ran.ifNum; i++ {
		_ = rel.Set(i, i+h.reduced.Cols(), ran.invFac[i])
	}

	zero, _ := matrix.NewDense(1, h.reduced.Rows())
	coker, err := New(zero, rel)
	if err != nil {
		panic(err)
	}
	h.cokernel = coker
	return h.cokernel
}

// Image returns the image as a marked abelian group, generated by the
// kernel-lattice columns together with the domain's torsion relations.
func (h *Hom) Image() *MarkedAbelianGroup {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.image != nil {
		return h.image
	}
	h.computeKernelLatticeLocked()
	dom := h.domain.core

	rel, _ := matrix.NewDense(h.kernelLat.Rows(), h.kernelLat.Cols()+dom.ifNum)
	for i := 0; i < dom.ifNum && i < rel.Rows(); i++ {
		_ = rel.Set(i, i, dom.invFac[i])
	}
	for i := 0; i < h.kernelLat.Rows(); i++ {
		for j := 0; j < h.kernelLat.Cols(); j++ {
			v, _ := h.kernelLat.At(i, j)
			_ = rel.Set(i, j+dom.ifNum, v)
		}
	}

	zero, _ := matrix.NewDense(1, h.kernelLat.Rows())
	img, err := New(zero, rel)
	if err != nil {
		panic(err)
	}
	h.image = img
	return h.image
}

// IsEpic reports whether the cokernel is trivial.
func (h *Hom) IsEpic() bool { return h.Cokernel().IsTrivial() }

// IsMonic reports whether the kernel is trivial.
func (h *Hom) IsMonic() bool { return h.Kernel().IsTrivial() }

// IsIso reports whether the map is an isomorphism.
func (h *Hom) IsIso() bool { return h.IsMonic() && h.IsEpic() }

// IsZero reports whether the image is trivial.
func (h *Hom) IsZero() bool { return h.Image().IsTrivial() }

// IsIdentity reports whether the domain and codomain carry the same
// marking and the reduced matrix is the identity.
func (h *Hom) IsIdentity() bool {
	return h.domain.Equal(h.codomain) && h.ReducedMatrix().IsIdentity()
}

// Compose returns h ∘ g: first g, then h. The domain of h must equal
// the codomain of g.
func (h *Hom) Compose(g *Hom) (*Hom, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: nil homomorphism", ErrPrecondition)
	}
	if !h.domain.Equal(g.codomain) {
		return nil, fmt.Errorf("%w: composition through mismatched groups",
			ErrPrecondition)
	}
	prod, err := h.mat.Mul(g.mat)
	if err != nil {
		return nil, err
	}
	return NewHom(g.domain, h.codomain, prod)
}

// String classifies the map the way a topologist reads one.
func (h *Hom) String() string {
	switch {
	case h.IsIso():
		return "isomorphism"
	case h.IsZero():
		return "zero map"
	case h.IsMonic():
		return fmt.Sprintf("monic, with cokernel %s", h.Cokernel())
	case h.IsEpic():
		return fmt.Sprintf("epic, with kernel %s", h.Kernel())
	default:
		return fmt.Sprintf("kernel %s | cokernel %s | image %s",
			h.Kernel(), h.Cokernel(), h.Image())
	}
}
