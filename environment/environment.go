// Package environment implements the unit catalog consumed by package
// physical: named units indexed by dimension vector and by conversion
// factor, a built-in SI table, and loading of user-supplied unit
// definition files.
//
// An Environment is immutable once constructed. Extending one returns a
// new Environment, so a registry already bound to quantities never
// changes underneath them.
package environment

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/mensura/mensura/dims"
	"github.com/mensura/mensura/physical"
)

// Environment errors.
var (
	ErrBadDimension    = errors.New("environment: dimension must have 7 exponents")
	ErrBadFactor       = errors.New("environment: factor must be a positive number or a/b ratio")
	ErrDuplicateSymbol = errors.New("environment: duplicate unit symbol for dimension")
)

// FactorDigits is the number of decimal places at which conversion
// factors are quantized for the by-factor index. Two factors that agree
// to this many places are treated as the same named unit; the by-factor
// probe quantizes the power-unwound factor the same way, so the
// effective tolerance scales with the resolved exponent.
const FactorDigits = 6

// Environment is an immutable unit catalog satisfying physical.Registry.
type Environment struct {
	byDim    map[dims.Dimensions][]physical.Unit
	byFactor map[float64]physical.Unit
	bySymbol map[string]physical.Unit
	basis    []dims.Dimensions
}

// New builds an Environment from a set of units. Derived units must have
// factor 1; defined units any positive factor.
func New(units ...physical.Unit) (*Environment, error) {
	e := &Environment{
		byDim:    make(map[dims.Dimensions][]physical.Unit),
		byFactor: make(map[float64]physical.Unit),
		bySymbol: make(map[string]physical.Unit),
	}
	for _, u := range units {
		if err := e.add(u); err != nil {
			return nil, err
		}
	}
	for d, list := range e.byDim {
		sortUnits(list)
		e.basis = append(e.basis, d)
	}
	sort.Slice(e.basis, func(i, j int) bool {
		return lessDims(e.basis[i], e.basis[j])
	})
	return e, nil
}

func (e *Environment) add(u physical.Unit) error {
	if u.Factor <= 0 {
		return fmt.Errorf("unit %q: %w", u.Symbol, ErrBadFactor)
	}
	for _, have := range e.byDim[u.Dimension] {
		if have.Symbol == u.Symbol {
			return fmt.Errorf("unit %q: %w", u.Symbol, ErrDuplicateSymbol)
		}
	}
	e.byDim[u.Dimension] = append(e.byDim[u.Dimension], u)
	e.bySymbol[u.Symbol] = u
	if u.Kind == physical.Defined {
		key := quantize(u.Factor)
		if _, taken := e.byFactor[key]; !taken {
			e.byFactor[key] = u
		}
	}
	return nil
}

// Extend returns a new Environment containing this one's units plus the
// given ones. The receiver is not modified.
func (e *Environment) Extend(units ...physical.Unit) (*Environment, error) {
	all := make([]physical.Unit, 0, len(e.bySymbol)+len(units))
	for _, d := range e.basis {
		all = append(all, e.byDim[d]...)
	}
	all = append(all, units...)
	return New(all...)
}

// Basis returns every dimension vector with at least one registered
// unit, in a stable order (smallest magnitude first).
func (e *Environment) Basis() []dims.Dimensions {
	return e.basis
}

// Units returns the units registered under exactly d, derived entries
// before defined, each group sorted by symbol.
func (e *Environment) Units(d dims.Dimensions) []physical.Unit {
	return e.byDim[d]
}

// ByFactor reports whether a defined unit under basis matches factor
// raised through power. The factor is unwound by the power before the
// quantized index probe.
func (e *Environment) ByFactor(factor float64, basis dims.Dimensions, power float64) (physical.Unit, bool) {
	if power == 0 {
		return physical.Unit{}, false
	}
	root := factor
	if power != 1 {
		root = math.Pow(factor, 1/power)
	}
	u, ok := e.byFactor[quantize(root)]
	if !ok || !u.Dimension.Equal(basis) {
		return physical.Unit{}, false
	}
	return u, true
}

// Lookup returns the unit registered under the given symbol.
func (e *Environment) Lookup(symbol string) (physical.Unit, bool) {
	u, ok := e.bySymbol[symbol]
	return u, ok
}

// Len returns the number of registered units.
func (e *Environment) Len() int {
	return len(e.bySymbol)
}

// Quantity builds a quantity of the given displayed magnitude in the
// named unit, bound to this environment. Base-unit symbols (kg, m, s, A,
// cd, K, mol) are always available.
func (e *Environment) Quantity(value float64, symbol string) (physical.Quantity, error) {
	for i, sym := range [dims.N]string{"kg", "m", "s", "A", "cd", "K", "mol"} {
		if sym == symbol {
			return physical.New(value, dims.Base(i), 1, e), nil
		}
	}
	u, ok := e.Lookup(symbol)
	if !ok {
		return physical.Quantity{}, fmt.Errorf("unit %q: %w", symbol, physical.ErrNoSuchUnit)
	}
	// The stored value is in base-unit terms; the displayed value is
	// value*factor, so divide on the way in.
	return physical.New(value/u.Factor, u.Dimension, u.Factor, e), nil
}

func quantize(f float64) float64 {
	p := math.Pow(10, FactorDigits)
	return math.Round(f*p) / p
}

func sortUnits(list []physical.Unit) {
	sort.Slice(list, func(i, j int) bool {
		if list[i].Kind != list[j].Kind {
			return list[i].Kind == physical.Derived
		}
		return list[i].Symbol < list[j].Symbol
	})
}

func lessDims(a, b dims.Dimensions) bool {
	if a.Magnitude() != b.Magnitude() {
		return a.Magnitude() < b.Magnitude()
	}
	if a.NonZero() != b.NonZero() {
		return a.NonZero() < b.NonZero()
	}
	for i := 0; i < dims.N; i++ {
		if a.At(i) != b.At(i) {
			return a.At(i) < b.At(i)
		}
	}
	return false
}
