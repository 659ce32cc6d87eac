package abelian

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lowtopo/integer"
	"github.com/katalvlaran/lowtopo/matrix"
)

// core holds the Smith-Normal-Form machinery of a marked abelian group
// for integer coefficients: ker(m)/im(n) with all basis changes kept.
type core struct {
	m, n *matrix.Dense

	// SNF of m: mc · m · mr is diagonal; mri and mci are the inverses.
	mr, mri, mc, mci *matrix.Dense
	rankM            int

	// pres is the internal presentation: the rows of mri·n below rankM.
	// ornC · pres · ornR is its Smith Normal Form.
	pres                     *matrix.Dense
	ornR, ornRi, ornC, ornCi *matrix.Dense
	snfDiag                  []integer.Int

	invFac      []integer.Int // diagonal entries > 1, in divisor order
	invFacIndex []int         // their positions on the diagonal
	snfRank     int           // free rank r
	freeIndex   int           // first free column in SNF coordinates
	ifNum       int           // number of invariant factors
	ifLoc       int           // first invariant-factor column
}

// buildCore runs the two Smith Normal Forms that everything else reads.
// m and n are retained; callers must not mutate them afterwards.
func buildCore(m, n *matrix.Dense) (*core, error) {
	rankM, err := matrix.Rank(m)
	if err != nil {
		return nil, err
	}

	c := &core{m: m, n: n, rankM: rankM}

	// SNF of m, keeping all four basis changes.
	tm := m.Clone()
	c.mr, _ = matrix.NewIdentity(m.Cols())
	c.mri, _ = matrix.NewIdentity(m.Cols())
	c.mc, _ = matrix.NewIdentity(m.Rows())
	c.mci, _ = matrix.NewIdentity(m.Rows())
	if err := matrix.SmithNormalForm(tm, c.mr, c.mri, c.mc, c.mci); err != nil {
		return nil, err
	}

	// pres = the rows of mri·n below rankM: the presentation of the
	// quotient in kernel coordinates.
	prod, err := c.mri.Mul(n)
	if err != nil {
		return nil, err
	}
	rows := n.Rows() - rankM
	c.pres, _ = matrix.NewDense(rows, n.Cols())
	for i := 0; i < rows; i++ {
		for j := 0; j < n.Cols(); j++ {
			v, _ := prod.At(i+rankM, j)
			_ = c.pres.Set(i, j, v)
		}
	}

	// SNF of the presentation.
	tx := c.pres.Clone()
	c.ornR, _ = matrix.NewIdentity(n.Cols())
	c.ornRi, _ = matrix.NewIdentity(n.Cols())
	c.ornC, _ = matrix.NewIdentity(rows)
	c.ornCi, _ = matrix.NewIdentity(rows)
	if err := matrix.SmithNormalForm(tx, c.ornR, c.ornRi, c.ornC, c.ornCi); err != nil {
		return nil, err
	}
	c.snfDiag = tx.Diagonal()

	// Classify the diagonal: ones, invariant factors, zeros.
	one := integer.One()
	ones, ifs := 0, 0
	for i, d := range c.snfDiag {
		switch {
		case d.Equal(one):
			ones++
		case d.Sign() > 0:
			ifs++
			c.invFacIndex = append(c.invFacIndex, i)
			c.invFac = append(c.invFac, d)
		}
	}
	c.ifNum = ifs
	c.ifLoc = ones
	c.snfRank = rows - ones - ifs
	c.freeIndex = ones + ifs
	return c, nil
}

// cycleDim returns the dimension of the kernel coordinates.
func (c *core) cycleDim() int { return c.n.Rows() - c.rankM }

// freeRep returns the chain-coordinate representative of the i-th free
// generator: the (freeIndex+i)-th column of ornCi padded with rankM
// zeros on top, pushed through mr.
func (c *core) freeRep(i int) []integer.Int {
	return c.repFromColumn(c.freeIndex + i)
}

// torsionRep returns the chain-coordinate representative of the i-th
// torsion generator, from the invFacIndex[i]-th column of ornCi.
func (c *core) torsionRep(i int) []integer.Int {
	return c.repFromColumn(c.invFacIndex[i])
}

func (c *core) repFromColumn(col int) []integer.Int {
	b := c.m.Cols()
	temp := make([]integer.Int, b)
	for i := 0; i < c.ornCi.Rows(); i++ {
		v, _ := c.ornCi.At(i, col)
		temp[i+c.rankM] = v
	}
	out, _ := c.mr.MulVec(temp)
	return out
}

// snfRep converts a chain vector into SNF coordinates: the free block
// first, then the torsion block reduced mod the invariant factors.
// The second result is false when v is not a cycle.
func (c *core) snfRep(v []integer.Int) ([]integer.Int, bool) {
	temp, _ := c.mri.MulVec(v)
	for i := 0; i < c.rankM; i++ {
		if !temp[i].IsZero() {
			return nil, false
		}
	}
	tail := temp[c.rankM:]

	out := make([]integer.Int, c.snfRank+c.ifNum)
	for i := 0; i < c.snfRank; i++ {
		var sum integer.Int
		for k, t := range tail {
			e, _ := c.ornC.At(c.freeIndex+i, k)
			if e.IsZero() || t.IsZero() {
				continue
			}
			sum = sum.Add(e.Mul(t))
		}
		out[i] = sum
	}
	for i := 0; i < c.ifNum; i++ {
		var sum integer.Int
		for k, t := range tail {
			e, _ := c.ornC.At(c.invFacIndex[i], k)
			if e.IsZero() || t.IsZero() {
				continue
			}
			sum = sum.Add(e.Mul(t))
		}
		out[c.snfRank+i] = sum.Mod(c.invFac[i])
	}
	return out, true
}

// MarkedAbelianGroup is ker M / im N for a chain segment
// Z^a --N--> Z^b --M--> Z^c with M·N = 0, optionally with Z_p
// coefficients. Immutable once constructed.
type MarkedAbelianGroup struct {
	om, on *matrix.Dense // the defining chain maps, as given
	coeff  integer.Int   // modulus p; zero for integer coefficients

	core *core

	// Z_p coefficients only: lat spans the mod-p cycle lattice
	// {v : M·v ≡ 0 (mod p)} and latSolve inverts it exactly.
	lat      *matrix.Dense
	latSolve *latticeSolver
}

// New constructs the marked abelian group ker M / im N with integer
// coefficients. It fails with ErrPrecondition if M.Cols() != N.Rows()
// or if M·N != 0.
func New(m, n *matrix.Dense) (*MarkedAbelianGroup, error) {
	return NewWithCoeffs(m, n, integer.Zero())
}

// NewWithCoeffs constructs the group with Z_p coefficients (p = 0 means
// integer coefficients). It fails with ErrPrecondition for a negative p,
// mismatched dimensions, or M·N != 0.
func NewWithCoeffs(m, n *matrix.Dense, p integer.Int) (*MarkedAbelianGroup, error) {
	if m == nil || n == nil {
		return nil, fmt.Errorf("%w: nil chain map", ErrPrecondition)
	}
	if m.Cols() != n.Rows() {
		return nil, fmt.Errorf("%w: M is %dx%d but N is %dx%d",
			ErrPrecondition, m.Rows(), m.Cols(), n.Rows(), n.Cols())
	}
	if p.Sign() < 0 {
		return nil, fmt.Errorf("%w: negative modulus %v", ErrPrecondition, p)
	}
	if prod, err := m.Mul(n); err != nil {
		return nil, err
	} else if !prod.IsZero() {
		return nil, fmt.Errorf("%w: M·N is not zero", ErrPrecondition)
	}

	g := &MarkedAbelianGroup{om: m.Clone(), on: n.Clone(), coeff: p}

	if p.IsZero() {
		c, err := buildCore(g.om, g.on)
		if err != nil {
			return nil, err
		}
		g.core = c
		return g, nil
	}

	// Z_p coefficients: cycles are {v : M·v ≡ 0 (mod p)}, a full-rank
	// sublattice K of Z^b; the group is K / (im N + p·Z^b). Relations
	// are the columns of N and of p·I written in K-coordinates, which
	// are integral because both lie inside K.
	b := m.Cols()
	orders := make([]integer.Int, m.Rows())
	for i := range orders {
		orders[i] = p
	}
	lat, err := matrix.PreimageOfLattice(g.om, orders)
	if err != nil {
		return nil, err
	}
	solver, err := newLatticeSolver(lat)
	if err != nil {
		return nil, err
	}

	k := lat.Cols()
	rel, _ := matrix.NewDense(k, n.Cols()+b)
	for j := 0; j < n.Cols(); j++ {
		col, _ := n.Col(j)
		x, ok := solver.solve(col)
		if !ok {
			// im N lies inside every mod-p cycle lattice; failure here
			// means the lattice basis is corrupt.
			panic("abelian: boundary outside the mod-p cycle lattice")
		}
		for i := 0; i < k; i++ {
			_ = rel.Set(i, j, x[i])
		}
	}
	for j := 0; j < b; j++ {
		unit := make([]integer.Int, b)
		unit[j] = p
		x, ok := solver.solve(unit)
		if !ok {
			panic("abelian: p·Z^b outside the mod-p cycle lattice")
		}
		for i := 0; i < k; i++ {
			_ = rel.Set(i, j+n.Cols(), x[i])
		}
	}

	zeroM, _ := matrix.NewDense(1, k)
	c, err := buildCore(zeroM, rel)
	if err != nil {
		return nil, err
	}
	g.core = c
	g.lat = lat
	g.latSolve = solver
	return g, nil
}

// latticeSolver solves K·x = v exactly through the Smith Normal Form
// of the lattice basis K.
type latticeSolver struct {
	r, c, d *matrix.Dense // c·K·r = d diagonal; x = r·(d⁻¹·(c·v))
}

func newLatticeSolver(k *matrix.Dense) (*latticeSolver, error) {
	d := k.Clone()
	r, _ := matrix.NewIdentity(k.Cols())
	ri, _ := matrix.NewIdentity(k.Cols())
	c, _ := matrix.NewIdentity(k.Rows())
	ci, _ := matrix.NewIdentity(k.Rows())
	if err := matrix.SmithNormalForm(d, r, ri, c, ci); err != nil {
		return nil, err
	}
	return &latticeSolver{r: r, c: c, d: d}, nil
}

// solve returns the unique x with K·x = v, or ok=false when v is not in
// the lattice.
func (s *latticeSolver) solve(v []integer.Int) ([]integer.Int, bool) {
	y, err := s.c.MulVec(v)
	if err != nil {
		return nil, false
	}
	cols := s.r.Cols()
	scaled := make([]integer.Int, cols)
	for i, yi := range y {
		if i < cols {
			di, _ := s.d.At(i, i)
			if di.IsZero() {
				if !yi.IsZero() {
					return nil, false
				}
				continue
			}
			if !yi.DivisibleBy(di) {
				return nil, false
			}
			scaled[i] = yi.DivExact(di)
			continue
		}
		// Rows beyond the lattice rank must vanish.
		if !yi.IsZero() {
			return nil, false
		}
	}
	x, err := s.r.MulVec(scaled)
	if err != nil {
		return nil, false
	}
	return x, true
}

// M returns a copy of the outgoing chain map.
func (g *MarkedAbelianGroup) M() *matrix.Dense { return g.om.Clone() }

// N returns a copy of the incoming chain map.
func (g *MarkedAbelianGroup) N() *matrix.Dense { return g.on.Clone() }

// Coefficients returns the modulus p (zero for integer coefficients).
func (g *MarkedAbelianGroup) Coefficients() integer.Int { return g.coeff }

// ChainDim returns b, the dimension of the middle chain group.
func (g *MarkedAbelianGroup) ChainDim() int { return g.om.Cols() }

// CycleRank returns the dimension of the cycle coordinates.
func (g *MarkedAbelianGroup) CycleRank() int {
	if g.lat != nil {
		return g.lat.Cols()
	}
	return g.core.cycleDim()
}

// Rank returns the free rank r of the group.
func (g *MarkedAbelianGroup) Rank() int { return g.core.snfRank }

// CountInvariantFactors returns the number of torsion generators.
func (g *MarkedAbelianGroup) CountInvariantFactors() int { return g.core.ifNum }

// InvariantFactor returns dᵢ, the i-th invariant factor in divisor
// order d₁ | d₂ | … | dₖ.
func (g *MarkedAbelianGroup) InvariantFactor(i int) (integer.Int, error) {
	if i < 0 || i >= g.core.ifNum {
		return integer.Int{}, fmt.Errorf("%w: invariant factor %d of %d",
			ErrInvalidArgument, i, g.core.ifNum)
	}
	return g.core.invFac[i], nil
}

// TorsionRank returns the number of invariant factors divisible by the
// given degree: the rank of the degree-torsion subgroup.
func (g *MarkedAbelianGroup) TorsionRank(degree integer.Int) int {
	count := 0
	for _, d := range g.core.invFac {
		if d.DivisibleBy(degree) {
			count++
		}
	}
	return count
}

// IsTrivial reports whether the group is the trivial group.
func (g *MarkedAbelianGroup) IsTrivial() bool {
	return g.core.snfRank == 0 && g.core.ifNum == 0
}

// Equal reports whether the two groups carry identical markings: the
// same chain maps, entry for entry, and the same modulus. Use
// IsIsomorphicTo for abstract isomorphism.
func (g *MarkedAbelianGroup) Equal(other *MarkedAbelianGroup) bool {
	return other != nil &&
		g.om.Equal(other.om) && g.on.Equal(other.on) &&
		g.coeff.Equal(other.coeff)
}

// IsIsomorphicTo reports whether the two groups have the same rank and
// invariant factors.
func (g *MarkedAbelianGroup) IsIsomorphicTo(other *MarkedAbelianGroup) bool {
	if other == nil || g.core.snfRank != other.core.snfRank ||
		g.core.ifNum != other.core.ifNum {
		return false
	}
	for i, d := range g.core.invFac {
		if !d.Equal(other.core.invFac[i]) {
			return false
		}
	}
	return true
}

// FreeRep returns the chain-coordinate representative of the i-th free
// generator. The returned vector is fresh.
func (g *MarkedAbelianGroup) FreeRep(i int) ([]integer.Int, error) {
	if i < 0 || i >= g.core.snfRank {
		return nil, fmt.Errorf("%w: free generator %d of %d",
			ErrInvalidArgument, i, g.core.snfRank)
	}
	rep := g.core.freeRep(i)
	return g.fromCoreChain(rep), nil
}

// TorsionRep returns the chain-coordinate representative of the i-th
// torsion generator (of order InvariantFactor(i)).
func (g *MarkedAbelianGroup) TorsionRep(i int) ([]integer.Int, error) {
	if i < 0 || i >= g.core.ifNum {
		return nil, fmt.Errorf("%w: torsion generator %d of %d",
			ErrInvalidArgument, i, g.core.ifNum)
	}
	rep := g.core.torsionRep(i)
	return g.fromCoreChain(rep), nil
}

// fromCoreChain maps a core chain vector into the caller's chain
// coordinates (through the cycle lattice under Z_p coefficients).
func (g *MarkedAbelianGroup) fromCoreChain(v []integer.Int) []integer.Int {
	if g.lat == nil {
		return v
	}
	out, _ := g.lat.MulVec(v)
	return out
}

// SNFRep converts a chain vector (length ChainDim) into SNF
// coordinates: Rank() free entries followed by CountInvariantFactors()
// torsion entries, each torsion entry reduced mod its invariant factor.
// It fails with ErrNotACycle when v lies outside ker M (outside the
// mod-p cycle lattice under Z_p coefficients).
func (g *MarkedAbelianGroup) SNFRep(v []integer.Int) ([]integer.Int, error) {
	if len(v) != g.ChainDim() {
		return nil, fmt.Errorf("%w: vector length %d, want %d",
			ErrInvalidArgument, len(v), g.ChainDim())
	}
	work := v
	if g.lat != nil {
		x, ok := g.latSolve.solve(v)
		if !ok {
			return nil, ErrNotACycle
		}
		work = x
	}
	out, ok := g.core.snfRep(work)
	if !ok {
		return nil, ErrNotACycle
	}
	return out, nil
}

// IsCycle reports whether v lies in ker M (in the mod-p cycle lattice
// under Z_p coefficients).
func (g *MarkedAbelianGroup) IsCycle(v []integer.Int) bool {
	_, err := g.SNFRep(v)
	return err == nil
}

// IsBoundary reports whether v lies in im N: equivalently, whether its
// SNF representative is the zero class.
func (g *MarkedAbelianGroup) IsBoundary(v []integer.Int) bool {
	return g.CheckBoundary(v) == nil
}

// CheckBoundary returns nil when v lies in im N, ErrNotACycle when it
// is not even a cycle, and ErrNotABoundary for a cycle in a non-zero
// class.
func (g *MarkedAbelianGroup) CheckBoundary(v []integer.Int) error {
	rep, err := g.SNFRep(v)
	if err != nil {
		return err
	}
	for _, x := range rep {
		if !x.IsZero() {
			return ErrNotABoundary
		}
	}
	return nil
}

// String renders the isomorphism type, e.g. "2 Z + Z_2 + Z_4", or "0"
// for the trivial group.
func (g *MarkedAbelianGroup) String() string {
	var sb strings.Builder
	wrote := false

	if r := g.core.snfRank; r > 0 {
		if r > 1 {
			fmt.Fprintf(&sb, "%d ", r)
		}
		sb.WriteByte('Z')
		wrote = true
	}

	// Group equal invariant factors into multiplicities.
	i := 0
	for i < len(g.core.invFac) {
		j := i
		for j < len(g.core.invFac) && g.core.invFac[j].Equal(g.core.invFac[i]) {
			j++
		}
		if wrote {
			sb.WriteString(" + ")
		}
		if j-i > 1 {
			fmt.Fprintf(&sb, "%d ", j-i)
		}
		fmt.Fprintf(&sb, "Z_%s", g.core.invFac[i].String())
		wrote = true
		i = j
	}

	if !wrote {
		return "0"
	}
	return sb.String()
}
