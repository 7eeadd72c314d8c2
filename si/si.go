// Package si wires the default environment to the seven SI base-unit
// quantities. Client code starts from these values and derives
// everything else through arithmetic:
//
//	area := si.M.Mul(si.M)
//	force, _ := physical.AsQuantity(si.KG.Mul(si.M))
package si

import (
	"github.com/mensura/mensura/dims"
	"github.com/mensura/mensura/environment"
	"github.com/mensura/mensura/physical"
)

var env = environment.Builtin()

// The seven SI base units, each a quantity of value 1 and factor 1 bound
// to the default environment. Quantities are immutable, so these are
// safe package-level values.
var (
	KG  = physical.New(1, dims.Base(dims.Mass), 1, env)
	M   = physical.New(1, dims.Base(dims.Length), 1, env)
	S   = physical.New(1, dims.Base(dims.Time), 1, env)
	A   = physical.New(1, dims.Base(dims.Current), 1, env)
	CD  = physical.New(1, dims.Base(dims.Luminosity), 1, env)
	K   = physical.New(1, dims.Base(dims.Temperature), 1, env)
	MOL = physical.New(1, dims.Base(dims.Amount), 1, env)
)

// Environment returns the default environment the base units are bound to.
func Environment() *environment.Environment {
	return env
}
