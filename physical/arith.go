package physical

import (
	"fmt"
	"math"

	"github.com/mensura/mensura/dims"
)

// Operand is the closed union of values the operator functions accept:
// a Quantity or a plain Number. Multiplicative operations also return it,
// because a product whose dimensions cancel collapses to a plain number.
type Operand interface {
	isOperand()
}

// Number is a plain dimensionless number operand.
type Number float64

func (Number) isOperand()   {}
func (Quantity) isOperand() {}

// Float64 returns the number as a float64.
func (n Number) Float64() float64 { return float64(n) }

// AsQuantity unwraps an Operand into a Quantity, if it is one.
func AsQuantity(o Operand) (Quantity, bool) {
	q, ok := o.(Quantity)
	return q, ok
}

// AsNumber unwraps an Operand into a plain number, if it is one.
func AsNumber(o Operand) (float64, bool) {
	n, ok := o.(Number)
	return float64(n), ok
}

// FromAny coerces a Go value into an Operand.
func FromAny(v any) (Operand, error) {
	switch t := v.(type) {
	case Quantity:
		return t, nil
	case Number:
		return t, nil
	case float64:
		return Number(t), nil
	case float32:
		return Number(t), nil
	case int:
		return Number(t), nil
	case int64:
		return Number(t), nil
	default:
		return nil, fmt.Errorf("cannot coerce %T: %w", v, ErrIncompatibleOperand)
	}
}

// ============================================================
// Operator functions over the operand union
// ============================================================

// Add adds two operands. Quantity operands must share a dimension vector.
// A bare number is interpreted as already expressed in the quantity's
// displayed terms and is divided by the factor before combining.
func Add(a, b Operand) (Operand, error) {
	switch x := a.(type) {
	case Quantity:
		switch y := b.(type) {
		case Quantity:
			return x.Add(y)
		case Number:
			return x.AddNumber(float64(y)), nil
		}
	case Number:
		switch y := b.(type) {
		case Quantity:
			return y.AddNumber(float64(x)), nil
		case Number:
			return x + y, nil
		}
	}
	return nil, fmt.Errorf("add %T and %T: %w", a, b, ErrIncompatibleOperand)
}

// Sub subtracts b from a, with the same operand rules as Add.
func Sub(a, b Operand) (Operand, error) {
	switch x := a.(type) {
	case Quantity:
		switch y := b.(type) {
		case Quantity:
			return x.Sub(y)
		case Number:
			return x.SubNumber(float64(y)), nil
		}
	case Number:
		switch y := b.(type) {
		case Quantity:
			return y.SubFromNumber(float64(x)), nil
		case Number:
			return x - y, nil
		}
	}
	return nil, fmt.Errorf("subtract %T and %T: %w", a, b, ErrIncompatibleOperand)
}

// Mul multiplies two operands. The product of two quantities whose
// dimensions cancel is returned as a plain Number.
func Mul(a, b Operand) (Operand, error) {
	switch x := a.(type) {
	case Quantity:
		switch y := b.(type) {
		case Quantity:
			return x.Mul(y), nil
		case Number:
			return x.MulNumber(float64(y)), nil
		}
	case Number:
		switch y := b.(type) {
		case Quantity:
			return y.MulNumber(float64(x)), nil
		case Number:
			return x * y, nil
		}
	}
	return nil, fmt.Errorf("multiply %T and %T: %w", a, b, ErrIncompatibleOperand)
}

// Div divides a by b. Dividing a number by a quantity negates the
// dimension vector and inverts the factor.
func Div(a, b Operand) (Operand, error) {
	switch x := a.(type) {
	case Quantity:
		switch y := b.(type) {
		case Quantity:
			return x.Div(y), nil
		case Number:
			return x.DivNumber(float64(y)), nil
		}
	case Number:
		switch y := b.(type) {
		case Quantity:
			return y.divideInto(float64(x)), nil
		case Number:
			return x / y, nil
		}
	}
	return nil, fmt.Errorf("divide %T and %T: %w", a, b, ErrIncompatibleOperand)
}

// Pow raises base to exp. The exponent must be a plain number; exponents
// carrying dimensions are rejected.
func Pow(base, exp Operand) (Operand, error) {
	if _, ok := exp.(Quantity); ok {
		return nil, fmt.Errorf("quantity exponent: %w", ErrDimensionMismatch)
	}
	n, ok := exp.(Number)
	if !ok {
		return nil, fmt.Errorf("exponent %T: %w", exp, ErrIncompatibleOperand)
	}
	switch x := base.(type) {
	case Quantity:
		return x.Pow(float64(n)), nil
	case Number:
		return Number(math.Pow(float64(x), float64(n))), nil
	}
	return nil, fmt.Errorf("base %T: %w", base, ErrIncompatibleOperand)
}

// ============================================================
// Quantity methods
// ============================================================

// Add returns q + o. The operands must have equal dimension vectors; the
// result keeps q's factor, precision and prefix.
func (q Quantity) Add(o Quantity) (Quantity, error) {
	if !q.dims.Equal(o.dims) {
		return Quantity{}, fmt.Errorf("add %s and %s: %w", q, o, ErrDimensionMismatch)
	}
	out := q
	out.value = q.value + o.value
	return out, nil
}

// AddNumber returns q + x, interpreting x as a displayed value: it is
// divided by q's factor before combining with the base-unit value.
func (q Quantity) AddNumber(x float64) Quantity {
	out := q
	out.value = q.value + x/q.factor
	return out
}

// Sub returns q - o under the same rules as Add.
func (q Quantity) Sub(o Quantity) (Quantity, error) {
	if !q.dims.Equal(o.dims) {
		return Quantity{}, fmt.Errorf("subtract %s and %s: %w", q, o, ErrDimensionMismatch)
	}
	out := q
	out.value = q.value - o.value
	return out, nil
}

// SubNumber returns q - x under the same rules as AddNumber.
func (q Quantity) SubNumber(x float64) Quantity {
	out := q
	out.value = q.value - x/q.factor
	return out
}

// SubFromNumber returns x - q, the reflected subtraction.
func (q Quantity) SubFromNumber(x float64) Quantity {
	out := q
	out.value = x/q.factor - q.value
	return out
}

// Neg returns -q.
func (q Quantity) Neg() Quantity {
	return q.MulNumber(-1)
}

// Abs returns the magnitude of q.
func (q Quantity) Abs() Quantity {
	if q.value < 0 {
		return q.Neg()
	}
	return q
}

// MulNumber returns q scaled by x. Dimensions, factor and prefix are
// preserved.
func (q Quantity) MulNumber(x float64) Quantity {
	out := q
	out.value = q.value * x
	return out
}

// DivNumber returns q divided by x. Dimensions, factor and prefix are
// preserved.
func (q Quantity) DivNumber(x float64) Quantity {
	out := q
	out.value = q.value / x
	return out
}

// Mul returns the product of two quantities. The dimension vectors add;
// the speculative factor product is kept only when the registry confirms
// it denotes a named unit for the resulting dimension, and a product with
// zero dimensions collapses to a plain Number.
func (q Quantity) Mul(o Quantity) Operand {
	nd := q.dims.Add(o.dims)
	nv := q.value * o.value
	if nd.IsZero() {
		return Number(nv)
	}
	reg := q.reg
	if reg == nil {
		reg = o.reg
	}
	return Quantity{
		value:     nv,
		dims:      nd,
		factor:    validateFactor(q.factor*o.factor, nd, reg),
		precision: q.precision,
		reg:       reg,
	}
}

// Div returns the quotient of two quantities under the same rules as Mul.
func (q Quantity) Div(o Quantity) Operand {
	nd := q.dims.Sub(o.dims)
	nv := q.value / o.value
	if nd.IsZero() {
		return Number(nv)
	}
	reg := q.reg
	if reg == nil {
		reg = o.reg
	}
	return Quantity{
		value:     nv,
		dims:      nd,
		factor:    validateFactor(q.factor/o.factor, nd, reg),
		precision: q.precision,
		reg:       reg,
	}
}

// divideInto returns x / q: dimensions negate, the factor inverts.
func (q Quantity) divideInto(x float64) Quantity {
	return Quantity{
		value:     x / q.value,
		dims:      q.dims.Neg(),
		factor:    1 / q.factor,
		precision: q.precision,
		reg:       q.reg,
	}
}

// Pow raises q to the power n. A quantity carrying a forced prefix cannot
// be re-expressed through the dimension/factor path, so it collapses to
// its displayed value raised to n.
func (q Quantity) Pow(n float64) Operand {
	if q.prefix != "" {
		return Number(math.Pow(q.Float64(), n))
	}
	out := q
	out.value = math.Pow(q.value, n)
	out.dims = q.dims.Scale(n)
	out.factor = math.Pow(q.factor, n)
	return out
}

// Sqrt returns the square root of q.
func (q Quantity) Sqrt() Operand {
	return q.Pow(0.5)
}

// Root returns the n-th root of q.
func (q Quantity) Root(n float64) Operand {
	return q.Pow(1 / n)
}

// validateFactor discards a speculative factor unless the registry lists
// a defined unit matching it for the resulting dimension. Factors within
// comparison noise of 1 are snapped back to exactly 1.
func validateFactor(f float64, d dims.Dimensions, reg Registry) float64 {
	if math.Abs(f-1) < eps {
		return 1
	}
	if reg == nil {
		return 1
	}
	power, basis := powersOfDerived(d, reg)
	if _, ok := reg.ByFactor(f, basis, power); ok {
		return f
	}
	return 1
}

// ============================================================
// Comparisons
// ============================================================

// Cmp compares two quantities of equal dimension, returning -1, 0 or 1.
// Values are rounded at a fixed precision first so accumulated float
// noise does not flip an ordering.
func (q Quantity) Cmp(o Quantity) (int, error) {
	if !q.dims.Equal(o.dims) {
		return 0, fmt.Errorf("compare %s and %s: %w", q, o, ErrDimensionMismatch)
	}
	return cmpRounded(q.value, o.value), nil
}

// CmpNumber compares q against a bare number expressed in q's base-unit
// value terms. Only the quantity's value is rounded; the number stands
// as written.
func (q Quantity) CmpNumber(x float64) int {
	ra := roundTotal(q.value)
	switch {
	case ra < x:
		return -1
	case ra > x:
		return 1
	default:
		return 0
	}
}

// Equals reports equality against an arbitrary value. Numbers are
// compared in base-unit value terms; quantities must share a dimension
// vector or an error is returned; strings and any other non-numeric
// types are simply not equal, so quantities behave in generic
// membership checks.
func (q Quantity) Equals(v any) (bool, error) {
	switch t := v.(type) {
	case Quantity:
		c, err := q.Cmp(t)
		if err != nil {
			return false, err
		}
		return c == 0, nil
	case Number:
		return q.CmpNumber(float64(t)) == 0, nil
	case float64:
		return q.CmpNumber(t) == 0, nil
	case float32:
		return q.CmpNumber(float64(t)) == 0, nil
	case int:
		return q.CmpNumber(float64(t)) == 0, nil
	case int64:
		return q.CmpNumber(float64(t)) == 0, nil
	default:
		return false, nil
	}
}

func cmpRounded(a, b float64) int {
	ra, rb := roundTotal(a), roundTotal(b)
	switch {
	case ra < rb:
		return -1
	case ra > rb:
		return 1
	default:
		return 0
	}
}
