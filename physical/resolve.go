package physical

import (
	"math"

	"github.com/mensura/mensura/dims"
)

// powersOfDerived decomposes a dimension vector into an exponent over a
// simpler basis vector known to the registry: d = power * basis. When no
// registered basis divides d, a single-axis vector decomposes over its
// own base dimension, and anything else is its own basis with power 1.
//
// The result is a pure function of d and the registry contents; the
// candidate scan runs over the registry's stable basis order.
func powersOfDerived(d dims.Dimensions, reg Registry) (float64, dims.Dimensions) {
	if d.IsZero() {
		return 1, d
	}
	if reg != nil {
		if power, basis, ok := derivedDecomposition(d, reg); ok {
			return power, basis
		}
	}
	if power, basis, ok := basisMultiple(d); ok {
		return power, basis
	}
	return 1, d
}

// derivedDecomposition searches the registry for the best basis b with
// d = k*b for a nonzero integer k. Preference order: smallest-magnitude
// basis, then fewest nonzero components, then a basis carrying a named
// derived unit, then registry order.
func derivedDecomposition(d dims.Dimensions, reg Registry) (float64, dims.Dimensions, bool) {
	var (
		found     bool
		bestK     float64
		bestBasis dims.Dimensions
	)
	better := func(b dims.Dimensions) bool {
		switch {
		case !found:
			return true
		case b.Magnitude() != bestBasis.Magnitude():
			return b.Magnitude() < bestBasis.Magnitude()
		case b.NonZero() != bestBasis.NonZero():
			return b.NonZero() < bestBasis.NonZero()
		default:
			return hasDerived(reg, b) && !hasDerived(reg, bestBasis)
		}
	}
	for _, b := range reg.Basis() {
		k, ok := integerMultiple(d, b)
		if !ok {
			continue
		}
		if better(b) {
			found, bestK, bestBasis = true, k, b
		}
	}
	return bestK, bestBasis, found
}

// integerMultiple reports whether d == k*b for a nonzero integer k.
func integerMultiple(d, b dims.Dimensions) (float64, bool) {
	var k float64
	for i := 0; i < dims.N; i++ {
		if b.At(i) != 0 {
			k = d.At(i) / b.At(i)
			break
		}
	}
	if k == 0 {
		return 0, false
	}
	k = math.Round(k)
	if k == 0 || !d.Equal(b.Scale(k)) {
		return 0, false
	}
	return k, true
}

// basisMultiple decomposes a vector with a single nonzero component into
// that component's base dimension. The exponent may be fractional here:
// s^2.5 is still a pure power of the second.
func basisMultiple(d dims.Dimensions) (float64, dims.Dimensions, bool) {
	if d.NonZero() != 1 {
		return 0, dims.Dimensions{}, false
	}
	for i := 0; i < dims.N; i++ {
		if d.At(i) != 0 {
			return d.At(i), dims.Base(i), true
		}
	}
	return 0, dims.Dimensions{}, false
}

func hasDerived(reg Registry, b dims.Dimensions) bool {
	for _, u := range reg.Units(b) {
		if u.Kind == Derived {
			return true
		}
	}
	return false
}

// resolveSymbol picks the display symbol for a resolved basis. A defined
// unit matched through the by-factor index wins and is used verbatim;
// otherwise a derived unit registered under the basis applies when the
// factor is 1. No match means the composite base-unit fallback, which is
// prefix-eligible only for a pure single-axis basis.
func resolveSymbol(basis dims.Dimensions, factor, power float64, reg Registry) (string, bool) {
	if reg != nil {
		if u, ok := reg.ByFactor(factor, basis, power); ok {
			return u.Symbol, u.PrefixEligible
		}
	}
	if math.Abs(factor-1) >= eps {
		return "", false
	}
	if reg != nil {
		for _, u := range reg.Units(basis) {
			if u.Kind == Derived {
				return u.Symbol, u.PrefixEligible
			}
		}
	}
	_, _, single := basisMultiple(basis)
	return "", single
}

// baseSymbols are the SI base unit symbols in canonical dimension order.
var baseSymbols = [dims.N]string{"kg", "m", "s", "A", "cd", "K", "mol"}

// unitComponent is one base-unit term of a composite symbol.
type unitComponent struct {
	symbol   string
	exponent float64
}

// unitComponents expands a dimension vector into its nonzero base-unit
// terms, in canonical order.
func unitComponents(d dims.Dimensions) []unitComponent {
	var out []unitComponent
	for i := 0; i < dims.N; i++ {
		if e := d.At(i); e != 0 {
			out = append(out, unitComponent{symbol: baseSymbols[i], exponent: e})
		}
	}
	return out
}
