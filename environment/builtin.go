package environment

import (
	"github.com/mensura/mensura/dims"
	"github.com/mensura/mensura/physical"
)

// The default catalog: the named SI derived units plus the US customary
// units engineering work keeps reaching for. Derived units are
// prefix-eligible; defined units are not, since a prefixed non-SI symbol
// (a "kilopound-foot") is not a recognized unit.
var builtinUnits = []physical.Unit{
	// SI derived units (factor 1). Hz stays out: a unit on the pure-time
	// axis would make every time quantity resolve as Hz powers, turning
	// plain seconds into Hz⁻¹.
	derived("N", dims.New(1, 1, -2, 0, 0, 0, 0)),
	derived("Pa", dims.New(1, -1, -2, 0, 0, 0, 0)),
	derived("J", dims.New(1, 2, -2, 0, 0, 0, 0)),
	derived("W", dims.New(1, 2, -3, 0, 0, 0, 0)),
	derived("C", dims.New(0, 0, 1, 1, 0, 0, 0)),
	derived("V", dims.New(1, 2, -3, -1, 0, 0, 0)),
	derived("F", dims.New(-1, -2, 4, 2, 0, 0, 0)),
	derived("Ω", dims.New(1, 2, -3, -2, 0, 0, 0)),
	derived("S", dims.New(-1, -2, 3, 2, 0, 0, 0)),
	derived("Wb", dims.New(1, 2, -2, -1, 0, 0, 0)),
	derived("T", dims.New(1, 0, -2, -1, 0, 0, 0)),
	derived("H", dims.New(1, 2, -2, -2, 0, 0, 0)),
	derived("lx", dims.New(0, -2, 0, 0, 1, 0, 0)),

	// US customary defined units, factors relative to the coherent SI
	// unit of the dimension.
	defined("ft", dims.New(0, 1, 0, 0, 0, 0, 0), 1/0.3048),
	defined("in", dims.New(0, 1, 0, 0, 0, 0, 0), 1/0.0254),
	defined("mi", dims.New(0, 1, 0, 0, 0, 0, 0), 1/1609.344),
	defined("lb", dims.New(1, 1, -2, 0, 0, 0, 0), 1/4.4482216152605),
	defined("kip", dims.New(1, 1, -2, 0, 0, 0, 0), 1/4448.2216152605),
	defined("psi", dims.New(1, -1, -2, 0, 0, 0, 0), 1/6894.757293168361),
	defined("psf", dims.New(1, -1, -2, 0, 0, 0, 0), 1/47.88025898033584),
	defined("lbft", dims.New(1, 2, -2, 0, 0, 0, 0), 1/1.3558179483314004),
	defined("kipft", dims.New(1, 2, -2, 0, 0, 0, 0), 1/1355.8179483314004),
}

var builtin = mustNew(builtinUnits...)

// Builtin returns the default SI environment. It is immutable and shared.
func Builtin() *Environment {
	return builtin
}

func derived(symbol string, d dims.Dimensions) physical.Unit {
	return physical.Unit{
		Symbol:         symbol,
		Dimension:      d,
		Factor:         1,
		PrefixEligible: true,
		Kind:           physical.Derived,
	}
}

func defined(symbol string, d dims.Dimensions, factor float64) physical.Unit {
	return physical.Unit{
		Symbol:    symbol,
		Dimension: d,
		Factor:    factor,
		Kind:      physical.Defined,
	}
}

func mustNew(units ...physical.Unit) *Environment {
	e, err := New(units...)
	if err != nil {
		panic(err)
	}
	return e
}
