// Package integer provides the exact, arbitrary-precision signed integer
// used throughout lowtopo. Int is an immutable value type: every public
// operation returns a fresh canonical value and never mutates its operands,
// so Int values may be shared freely across goroutines.
package integer

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrBadLiteral is returned by FromString when the input does not parse
// as a base-10 integer.
var ErrBadLiteral = errors.New("integer: malformed integer literal")

// Int is an exact signed integer of unbounded magnitude.
//
// The zero value of Int is the number zero, ready to use.
// Internally a nil big.Int pointer represents zero; no public operation
// ever exposes or mutates the shared pointer.
type Int struct {
	v *big.Int // nil means zero
}

// Zero returns the integer 0.
func Zero() Int { return Int{} }

// One returns the integer 1.
func One() Int { return FromInt64(1) }

// FromInt64 returns the Int with the given value.
func FromInt64(v int64) Int {
	if v == 0 {
		return Int{}
	}
	return Int{big.NewInt(v)}
}

// FromString parses a base-10 integer literal (with optional leading sign).
func FromString(s string) (Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Int{}, fmt.Errorf("%w: %q", ErrBadLiteral, s)
	}
	return Int{v}, nil
}

// ref returns a read-only *big.Int view of a. Callers must not mutate it.
func (a Int) ref() *big.Int {
	if a.v == nil {
		return bigZero
	}
	return a.v
}

var bigZero = new(big.Int)

// wrap canonicalises a freshly computed big.Int into an Int.
func wrap(v *big.Int) Int {
	if v.Sign() == 0 {
		return Int{}
	}
	return Int{v}
}

// Add returns a + b.
func (a Int) Add(b Int) Int { return wrap(new(big.Int).Add(a.ref(), b.ref())) }

// Sub returns a - b.
func (a Int) Sub(b Int) Int { return wrap(new(big.Int).Sub(a.ref(), b.ref())) }

// Mul returns a * b.
func (a Int) Mul(b Int) Int { return wrap(new(big.Int).Mul(a.ref(), b.ref())) }

// Neg returns -a.
func (a Int) Neg() Int { return wrap(new(big.Int).Neg(a.ref())) }

// Abs returns |a|.
func (a Int) Abs() Int { return wrap(new(big.Int).Abs(a.ref())) }

// Sign returns -1, 0 or +1 according to the sign of a.
func (a Int) Sign() int { return a.ref().Sign() }

// IsZero reports whether a == 0.
func (a Int) IsZero() bool { return a.v == nil || a.v.Sign() == 0 }

// IsOne reports whether a == 1.
func (a Int) IsOne() bool { return a.v != nil && a.v.Cmp(bigOne) == 0 }

var bigOne = big.NewInt(1)

// Cmp compares a and b, returning -1, 0 or +1.
func (a Int) Cmp(b Int) int { return a.ref().Cmp(b.ref()) }

// Equal reports whether a == b.
func (a Int) Equal(b Int) bool { return a.Cmp(b) == 0 }

// Gcd returns the non-negative greatest common divisor of a and b.
// Gcd(a, 0) is |a| and Gcd(0, 0) is 0.
func (a Int) Gcd(b Int) Int {
	// big.Int.GCD requires strictly positive operands.
	if a.IsZero() {
		return b.Abs()
	}
	if b.IsZero() {
		return a.Abs()
	}
	x := new(big.Int).Abs(a.ref())
	y := new(big.Int).Abs(b.ref())
	return wrap(x.GCD(nil, nil, x, y))
}

// GcdWithCoeffs returns d = gcd(a, b) together with coefficients u, v
// satisfying u*a + v*b = d. The divisor d is always non-negative; when
// both a and b are zero, d, u and v are all zero.
func (a Int) GcdWithCoeffs(b Int) (d, u, v Int) {
	// big.Int.GCD requires strictly positive operands, so zeros are
	// resolved by hand first.
	switch {
	case a.IsZero() && b.IsZero():
		return Int{}, Int{}, Int{}
	case a.IsZero():
		return b.Abs(), Int{}, FromInt64(int64(b.Sign()))
	case b.IsZero():
		return a.Abs(), FromInt64(int64(a.Sign())), Int{}
	}
	// Extended Euclid on the absolute values, then fix the signs.
	x := new(big.Int).Abs(a.ref())
	y := new(big.Int).Abs(b.ref())
	uu, vv := new(big.Int), new(big.Int)
	g := new(big.Int).GCD(uu, vv, x, y)
	// g = uu*|a| + vv*|b|; compensate for stripped signs.
	if a.Sign() < 0 {
		uu.Neg(uu)
	}
	if b.Sign() < 0 {
		vv.Neg(vv)
	}
	return wrap(g), wrap(uu), wrap(vv)
}

// DivExact returns a / b under the precondition that b divides a exactly.
// A non-zero remainder (or a zero divisor with non-zero a) is a programmer
// fault and panics. DivExact(0, 0) is 0.
func (a Int) DivExact(b Int) Int {
	if b.IsZero() {
		if a.IsZero() {
			return Int{}
		}
		panic("integer: DivExact by zero")
	}
	q, r := new(big.Int).QuoRem(a.ref(), b.ref(), new(big.Int))
	if r.Sign() != 0 {
		panic(fmt.Sprintf("integer: DivExact(%v, %v) is not exact", a, b))
	}
	return wrap(q)
}

// DivisionAlg returns the quotient q and remainder r of the division
// algorithm a = q*b + r with 0 <= r < |b|. A zero divisor yields
// q = 0, r = a.
func (a Int) DivisionAlg(b Int) (q, r Int) {
	if b.IsZero() {
		return Int{}, a
	}
	// big.Int's Euclidean pair: DivMod gives 0 <= r < |b| already.
	qq, rr := new(big.Int).DivMod(a.ref(), b.ref(), new(big.Int))
	return wrap(qq), wrap(rr)
}

// Mod returns the non-negative remainder of a modulo b (b != 0).
func (a Int) Mod(b Int) Int {
	_, r := a.DivisionAlg(b)
	return r
}

// DivisibleBy reports whether b divides a exactly. Everything divides
// zero; zero divides only zero.
func (a Int) DivisibleBy(b Int) bool {
	if b.IsZero() {
		return a.IsZero()
	}
	return new(big.Int).Rem(a.ref(), b.ref()).Sign() == 0
}

// Int64 returns the value as an int64 together with a flag reporting
// whether the value fits.
func (a Int) Int64() (int64, bool) {
	if a.v == nil {
		return 0, true
	}
	return a.v.Int64(), a.v.IsInt64()
}

// String renders a in base 10.
func (a Int) String() string { return a.ref().String() }
