package physical

import "github.com/mensura/mensura/dims"

// UnitKind classifies catalog entries.
type UnitKind uint8

const (
	// Derived units are products of SI base units with no scale factor
	// (newton, pascal, joule). Their factor is always 1.
	Derived UnitKind = iota

	// Defined units carry a conversion factor relative to the coherent
	// SI unit of their dimension (pound, foot, psi).
	Defined
)

// String returns the kind name.
func (k UnitKind) String() string {
	switch k {
	case Derived:
		return "derived"
	case Defined:
		return "defined"
	default:
		return "unknown"
	}
}

// Unit is one named entry in a unit catalog.
type Unit struct {
	Symbol         string
	Dimension      dims.Dimensions
	Factor         float64
	PrefixEligible bool
	Kind           UnitKind
}

// Registry is the read-only unit catalog consulted during arithmetic and
// rendering. Implementations must be immutable for the duration of any
// call into this package; all methods must be deterministic.
//
// A nil Registry is legal everywhere: resolution then finds no named
// units and rendering falls back to composite base-unit symbols.
type Registry interface {
	// Basis returns every dimension vector that has at least one
	// registered unit, in a stable order.
	Basis() []dims.Dimensions

	// Units returns the units registered under exactly the given
	// dimension vector, derived entries before defined, each group
	// sorted by symbol.
	Units(d dims.Dimensions) []Unit

	// ByFactor reports whether a defined unit registered under basis
	// matches the given factor once the power-of-derived exponent is
	// unwound (i.e. whether factor is that unit's factor raised to
	// power, within the registry's factor tolerance).
	ByFactor(factor float64, basis dims.Dimensions, power float64) (Unit, bool)
}
