package retriangulate_test

import (
	"bytes"
	"fmt"

	"github.com/katalvlaran/lowtopo/dsu"
	"github.com/katalvlaran/lowtopo/retriangulate"
	"github.com/katalvlaran/lowtopo/retriangulate/sigcode"
)

// fan is a miniature 3-dimensional model used to exercise the engine:
// a stacked triangulation fully determined by its tetrahedron count.
// Every edge move removes a tetrahedron (legal while more than one
// remains) and every triangle move adds one. Its canonical signature
// encodes the gluing chain through sigcode, so signature length grows
// with size exactly as for real isomorphism signatures.
type fan struct {
	n int
}

// chainBytes serialises the gluing chain: tetrahedron i glues to i+1.
// A disjoint-set collapses the chain to confirm the model is connected
// before the signature is emitted.
func (f fan) chainBytes() []byte {
	d := dsu.New(f.n)
	for i := 0; i+1 < f.n; i++ {
		d.Union(i, i+1)
	}
	if f.n > 0 && d.Count() != 1 {
		panic("fan: disconnected gluing chain")
	}
	return bytes.Repeat([]byte{7}, f.n)
}

func (f fan) Size() int     { return f.n }
func (f fan) IsEmpty() bool { return f.n == 0 }
func (f fan) Sig() string   { return sigcode.Encode(f.chainBytes()) }

func fanFromSig(sig string) (fan, error) {
	raw, err := sigcode.Decode(sig)
	if err != nil {
		return fan{}, err
	}
	for _, b := range raw {
		if b != 7 {
			return fan{}, fmt.Errorf("fan: unexpected byte %d", b)
		}
	}
	return fan{n: len(raw)}, nil
}

func (f fan) CountEdges() int { return f.n }

func (f fan) WithPachnerEdge(int) (fan, bool) {
	if f.n > 1 {
		return fan{n: f.n - 1}, true
	}
	return fan{}, false
}

func (f fan) CountTriangles() int { return f.n }

func (f fan) WithPachnerTriangle(int) (fan, bool) {
	return fan{n: f.n + 1}, true
}

// fanSchedule is the 3-dimensional schedule bound to the fan model.
func fanSchedule() retriangulate.PachnerSchedule3[fan] {
	return retriangulate.PachnerSchedule3[fan]{Decode: fanFromSig}
}

// cake is the 4-dimensional counterpart: vertex moves remove a
// pentachoron, tetrahedron moves add two, pentachoron moves add four.
type cake struct {
	n int
}

func (c cake) Size() int     { return c.n }
func (c cake) IsEmpty() bool { return c.n == 0 }
func (c cake) Sig() string   { return sigcode.Encode(bytes.Repeat([]byte{11}, c.n)) }

func cakeFromSig(sig string) (cake, error) {
	raw, err := sigcode.Decode(sig)
	if err != nil {
		return cake{}, err
	}
	return cake{n: len(raw)}, nil
}

func (c cake) CountVertices() int { return c.n }

func (c cake) WithPachnerVertex(int) (cake, bool) {
	if c.n > 1 {
		return cake{n: c.n - 1}, true
	}
	return cake{}, false
}

func (c cake) CountEdges() int                  { return 0 }
func (c cake) WithPachnerEdge(int) (cake, bool) { return cake{}, false }

func (c cake) CountTriangles() int                  { return 0 }
func (c cake) WithPachnerTriangle(int) (cake, bool) { return cake{}, false }

func (c cake) CountTetrahedra() int { return c.n }

func (c cake) WithPachnerTetrahedron(int) (cake, bool) {
	return cake{n: c.n + 2}, true
}

func (c cake) WithPachnerPentachoron(int) (cake, bool) {
	return cake{n: c.n + 4}, true
}

func cakeSchedule() retriangulate.PachnerSchedule4[cake] {
	return retriangulate.PachnerSchedule4[cake]{Decode: cakeFromSig}
}

// curl is a one-component link model: an unknot diagram carrying n
// positive curls. R1 removes a curl; the constructive moves add one
// (R1) or two (R2) crossings. Strands alternate lower/upper along the
// single cycle, which is enough structure for the 2-cell walk.
type curl struct {
	n int
}

func (c curl) Size() int     { return c.n }
func (c curl) IsEmpty() bool { return false }
func (c curl) Sig() string   { return sigcode.Encode(bytes.Repeat([]byte{9}, c.n)) }

func curlFromSig(sig string) (curl, error) {
	raw, err := sigcode.Decode(sig)
	if err != nil {
		return curl{}, err
	}
	return curl{n: len(raw)}, nil
}

func (c curl) HasTrivialComponent() bool { return c.n == 0 }
func (c curl) CrossingSign(int) int      { return 1 }

func (c curl) Next(ref retriangulate.StrandRef) retriangulate.StrandRef {
	if ref.Strand == 0 {
		return retriangulate.StrandRef{Crossing: ref.Crossing, Strand: 1}
	}
	return retriangulate.StrandRef{Crossing: (ref.Crossing + 1) % c.n, Strand: 0}
}

func (c curl) Prev(ref retriangulate.StrandRef) retriangulate.StrandRef {
	if ref.Strand == 1 {
		return retriangulate.StrandRef{Crossing: ref.Crossing, Strand: 0}
	}
	return retriangulate.StrandRef{Crossing: (ref.Crossing - 1 + c.n) % c.n, Strand: 1}
}

func (c curl) WithR1(int) (curl, bool) {
	if c.n > 0 {
		return curl{n: c.n - 1}, true
	}
	return curl{}, false
}

func (c curl) WithR2(int) (curl, bool)      { return curl{}, false }
func (c curl) WithR3(int, int) (curl, bool) { return curl{}, false }

func (c curl) R1(retriangulate.StrandRef, int, int) curl {
	return curl{n: c.n + 1}
}

func (c curl) R2Virtual(retriangulate.StrandRef, int, retriangulate.StrandRef, int) curl {
	return curl{n: c.n + 2}
}

func curlSchedule() retriangulate.RewriteSchedule[curl] {
	return retriangulate.RewriteSchedule[curl]{Decode: curlFromSig}
}
