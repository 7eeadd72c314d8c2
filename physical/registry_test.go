package physical

import (
	"math"
	"sort"

	"github.com/mensura/mensura/dims"
)

// testRegistry is a synthetic in-package Registry so resolution can be
// tested against a known unit table without the environment package.
type testRegistry struct {
	units []Unit
}

func newTestRegistry(units ...Unit) *testRegistry {
	return &testRegistry{units: units}
}

func (r *testRegistry) Basis() []dims.Dimensions {
	seen := map[dims.Dimensions]bool{}
	var out []dims.Dimensions
	for _, u := range r.units {
		if !seen[u.Dimension] {
			seen[u.Dimension] = true
			out = append(out, u.Dimension)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Magnitude() != out[j].Magnitude() {
			return out[i].Magnitude() < out[j].Magnitude()
		}
		return out[i].NonZero() < out[j].NonZero()
	})
	return out
}

func (r *testRegistry) Units(d dims.Dimensions) []Unit {
	var out []Unit
	for _, u := range r.units {
		if u.Dimension.Equal(d) {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Kind != out[j].Kind {
			return out[i].Kind == Derived
		}
		return out[i].Symbol < out[j].Symbol
	})
	return out
}

func (r *testRegistry) ByFactor(factor float64, basis dims.Dimensions, power float64) (Unit, bool) {
	if power == 0 {
		return Unit{}, false
	}
	root := factor
	if power != 1 {
		root = math.Pow(factor, 1/power)
	}
	for _, u := range r.units {
		if u.Kind != Defined || !u.Dimension.Equal(basis) {
			continue
		}
		if quantize6(u.Factor) == quantize6(root) {
			return u, true
		}
	}
	return Unit{}, false
}

func quantize6(f float64) float64 {
	return math.Round(f*1e6) / 1e6
}

// Fixture dimensions and units shared across the package tests.
var (
	massDims   = dims.Base(dims.Mass)
	lengthDims = dims.Base(dims.Length)
	timeDims   = dims.Base(dims.Time)
	forceDims  = dims.New(1, 1, -2, 0, 0, 0, 0)
	energyDims = dims.New(1, 2, -2, 0, 0, 0, 0)

	newton = Unit{Symbol: "N", Dimension: forceDims, Factor: 1, PrefixEligible: true, Kind: Derived}
	joule  = Unit{Symbol: "J", Dimension: energyDims, Factor: 1, PrefixEligible: true, Kind: Derived}
	hertz  = Unit{Symbol: "Hz", Dimension: dims.New(0, 0, -1, 0, 0, 0, 0), Factor: 1, PrefixEligible: true, Kind: Derived}
	foot   = Unit{Symbol: "ft", Dimension: lengthDims, Factor: 1 / 0.3048, Kind: Defined}
	pound  = Unit{Symbol: "lb", Dimension: forceDims, Factor: 1 / 4.4482216152605, Kind: Defined}
	lbft   = Unit{Symbol: "lbft", Dimension: energyDims, Factor: 1 / 1.3558179483314004, Kind: Defined}
)

func testEnv() *testRegistry {
	return newTestRegistry(newton, joule, hertz, foot, pound, lbft)
}

// Base-unit fixtures bound to the test registry.
func baseQ(i int, reg Registry) Quantity {
	return New(1, dims.Base(i), 1, reg)
}
