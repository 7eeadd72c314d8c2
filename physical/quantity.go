package physical

import (
	"fmt"
	"math"

	"github.com/mensura/mensura/dims"
)

const (
	// DefaultPrecision is the number of decimal places rendered when no
	// explicit precision has been set.
	DefaultPrecision = 3

	// totalPrecision is the number of decimal places at which values are
	// rounded before equality and ordering comparisons, so that float
	// noise from chained arithmetic does not break comparisons.
	totalPrecision = 6

	// epsilon below which a resolved exponent counts as integral.
	eps = 1e-7
)

// Quantity is an immutable physical quantity: a numeric magnitude in
// base-unit terms, a dimension vector, a display conversion factor, a
// display precision and an optional forced metric prefix.
//
// All fields are private and every operation returns a new Quantity, so
// instances may be freely shared, compared and used concurrently. The
// zero Quantity is a dimensionless zero with factor 1.
type Quantity struct {
	value     float64
	dims      dims.Dimensions
	factor    float64
	precision int
	prefix    string
	reg       Registry
}

// New constructs a Quantity from a base-unit magnitude, a dimension
// vector and a conversion factor. The factor must be positive; pass 1
// for a quantity displayed in coherent SI units. The registry may be nil,
// in which case rendering uses composite base-unit symbols only.
func New(value float64, d dims.Dimensions, factor float64, reg Registry) Quantity {
	if factor == 0 {
		factor = 1
	}
	return Quantity{
		value:     value,
		dims:      d,
		factor:    factor,
		precision: DefaultPrecision,
		reg:       reg,
	}
}

// Value returns the magnitude in base-unit terms, prior to the factor.
func (q Quantity) Value() float64 { return q.value }

// Dims returns the dimension vector.
func (q Quantity) Dims() dims.Dimensions { return q.dims }

// Factor returns the display conversion factor.
func (q Quantity) Factor() float64 { return q.factor }

// Precision returns the number of decimal places used when rendering.
func (q Quantity) Precision() int { return q.precision }

// Prefix returns the forced metric prefix, or "" when none is set.
func (q Quantity) Prefix() string { return q.prefix }

// Registry returns the unit catalog the quantity is bound to (may be nil).
func (q Quantity) Registry() Registry { return q.reg }

// Prefixed returns a copy with a forced metric prefix. The prefix symbol
// must be one of the standard metric prefixes and the quantity must not
// carry a factor: a factored quantity already displays in a named non-SI
// unit, which cannot legally take a prefix.
func (q Quantity) Prefixed(prefix string) (Quantity, error) {
	if q.factor != 1 {
		return Quantity{}, fmt.Errorf("prefix %q on %s: %w", prefix, q, ErrPrefixWithFactor)
	}
	if prefix == "u" {
		prefix = "µ"
	}
	if prefix != "" {
		if _, ok := prefixPower(prefix); !ok {
			return Quantity{}, fmt.Errorf("prefix %q: %w", prefix, ErrUnknownPrefix)
		}
	}
	out := q
	out.prefix = prefix
	return out, nil
}

// Round returns a copy displaying n decimal places.
func (q Quantity) Round(n int) Quantity {
	if n < 0 {
		n = 0
	}
	out := q
	out.precision = n
	return out
}

// SI returns a copy with the factor reset to 1, restoring coherent SI
// unit display.
func (q Quantity) SI() Quantity {
	out := q
	out.factor = 1
	return out
}

// Rebind returns a copy bound to another registry. This is the explicit
// environment swap; there is no ambient global environment.
func (q Quantity) Rebind(reg Registry) Quantity {
	out := q
	out.reg = reg
	return out
}

// To returns a copy rescaled to the named alternative unit registered for
// the quantity's dimension. The unit's factor is raised to the resolved
// power of the dimension basis, so m² converts through units of length.
func (q Quantity) To(name string) (Quantity, error) {
	power, basis := powersOfDerived(q.dims, q.reg)
	if q.reg != nil {
		for _, u := range q.reg.Units(basis) {
			if u.Symbol == name {
				out := q
				out.factor = math.Pow(u.Factor, power)
				out.prefix = ""
				return out, nil
			}
		}
	}
	return Quantity{}, fmt.Errorf("unit %q: %w", name, ErrNoSuchUnit)
}

// Alternatives returns the symbols of every unit registered for the
// quantity's dimension basis, derived entries first. It is the query
// mode of To.
func (q Quantity) Alternatives() []string {
	if q.reg == nil {
		return nil
	}
	_, basis := powersOfDerived(q.dims, q.reg)
	units := q.reg.Units(basis)
	names := make([]string, 0, len(units))
	for _, u := range units {
		names = append(names, u.Symbol)
	}
	return names
}

// Split decomposes the quantity into a bare magnitude and a unit-only
// Quantity, so the magnitude can pass through numeric code that rejects
// non-numeric operands. With baseValue true the magnitude is in base-unit
// terms; otherwise it is the displayed value. Multiplying the two parts
// back together recovers the original quantity.
func (q Quantity) Split(baseValue bool) (float64, Quantity) {
	unit := q
	unit.prefix = ""
	if baseValue {
		unit.value = 1 / q.factor
		return q.value * q.factor, unit
	}
	unit.value = 1
	return q.Float64(), unit
}

// Float64 converts the quantity to a bare number. A factored quantity
// yields its displayed value; otherwise the value is scaled by the
// auto-selected (or forced) metric prefix, matching what rendering shows.
func (q Quantity) Float64() float64 {
	if q.factor != 1 {
		return q.value * q.factor
	}
	power, _ := powersOfDerived(q.dims, q.reg)
	v, _ := autoPrefixValue(q.value, power, q.prefix, false)
	return v
}

// Int64 converts the quantity to an integer, truncating toward zero.
func (q Quantity) Int64() int64 {
	return int64(q.Float64())
}

// Repr returns a constructor-style representation exposing the raw
// fields, unlike String which renders the resolved unit.
func (q Quantity) Repr() string {
	return fmt.Sprintf("Quantity(value=%v, dims=%v, factor=%v, precision=%d, prefix=%q)",
		q.value, q.dims, q.factor, q.precision, q.prefix)
}

// roundTotal rounds v at the fixed comparison precision.
func roundTotal(v float64) float64 {
	p := math.Pow(10, totalPrecision)
	return math.Round(v*p) / p
}
