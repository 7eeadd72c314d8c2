// Package dims provides the dimensional signature of a physical quantity:
// a fixed vector of exponents over the seven SI base dimensions.
//
// The component order is fixed: mass (kg), length (m), time (s), electric
// current (A), luminous intensity (cd), temperature (K), amount of
// substance (mol).
//
// Components are float64 so that roots can produce fractional exponents,
// but all comparisons are exact. Dimensions is a comparable value type and
// may be used as a map key.
package dims

import "strconv"

// N is the number of SI base dimensions.
const N = 7

// Base dimension indices, in canonical order.
const (
	Mass = iota
	Length
	Time
	Current
	Luminosity
	Temperature
	Amount
)

// Dimensions holds one exponent per SI base dimension.
type Dimensions struct {
	exp [N]float64
}

// Zero is the dimensionless vector.
var Zero = Dimensions{}

// New builds a Dimensions from the seven exponents in canonical order.
func New(kg, m, s, a, cd, k, mol float64) Dimensions {
	return Dimensions{exp: [N]float64{kg, m, s, a, cd, k, mol}}
}

// Base returns the unit vector for a single base dimension.
func Base(i int) Dimensions {
	var d Dimensions
	d.exp[i] = 1
	return d
}

// At returns the exponent at index i.
func (d Dimensions) At(i int) float64 {
	return d.exp[i]
}

// Add returns the component-wise sum d + o.
func (d Dimensions) Add(o Dimensions) Dimensions {
	var r Dimensions
	for i := 0; i < N; i++ {
		r.exp[i] = d.exp[i] + o.exp[i]
	}
	return r
}

// Sub returns the component-wise difference d - o.
func (d Dimensions) Sub(o Dimensions) Dimensions {
	var r Dimensions
	for i := 0; i < N; i++ {
		r.exp[i] = d.exp[i] - o.exp[i]
	}
	return r
}

// Scale returns d with every exponent multiplied by n.
func (d Dimensions) Scale(n float64) Dimensions {
	var r Dimensions
	for i := 0; i < N; i++ {
		r.exp[i] = d.exp[i] * n
	}
	return r
}

// Neg returns d with every exponent negated.
func (d Dimensions) Neg() Dimensions {
	return d.Scale(-1)
}

// Equal reports exact component-wise equality.
func (d Dimensions) Equal(o Dimensions) bool {
	return d == o
}

// IsZero reports whether every exponent is zero.
func (d Dimensions) IsZero() bool {
	return d == Zero
}

// NonZero returns the count of nonzero exponents.
func (d Dimensions) NonZero() int {
	n := 0
	for i := 0; i < N; i++ {
		if d.exp[i] != 0 {
			n++
		}
	}
	return n
}

// String returns the exponents in canonical order.
func (d Dimensions) String() string {
	out := "Dimensions("
	for i := 0; i < N; i++ {
		if i > 0 {
			out += ", "
		}
		out += strconv.FormatFloat(d.exp[i], 'g', -1, 64)
	}
	return out + ")"
}

// Magnitude returns the sum of squared exponents. Used to prefer the
// smallest basis during decomposition; not a physical norm.
func (d Dimensions) Magnitude() float64 {
	var m float64
	for i := 0; i < N; i++ {
		m += d.exp[i] * d.exp[i]
	}
	return m
}
