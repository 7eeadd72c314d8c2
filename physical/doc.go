// Package physical models physical quantities as immutable values
// carrying an SI dimension vector, so arithmetic is checked for
// dimensional consistency and results render in a human-readable unit.
//
// A Quantity pairs a base-unit magnitude with a dimension vector, a
// display conversion factor, a display precision and an optional forced
// metric prefix. Every operation returns a new Quantity; mixing
// incompatible dimensions is an error, and a product or quotient whose
// dimensions cancel collapses to a plain number.
//
// # Operands
//
// Arithmetic is exposed two ways: methods on Quantity for the statically
// typed cases, and the free functions Add, Sub, Mul, Div and Pow over
// the closed Operand union {Quantity, Number}, which cover the reflected
// number-on-the-left forms.
//
//	kg := physical.New(1, dims.Base(dims.Mass), 1, reg)
//	m := physical.New(1, dims.Base(dims.Length), 1, reg)
//	s := physical.New(1, dims.Base(dims.Time), 1, reg)
//
//	f, _ := physical.AsQuantity(kg.Mul(m))
//	f, _ = physical.AsQuantity(f.Div(s))
//	f, _ = physical.AsQuantity(f.Div(s))
//	fmt.Println(f) // 1.000 N
//
// # Resolution
//
// Rendering resolves the dimension vector against a read-only Registry:
// it decomposes the vector into an integer power of a known basis, picks
// the matching named unit (or composes base-unit symbols when there is
// none), auto-selects a metric prefix for prefix-eligible units, and
// formats with fixed-point precision in a plain, HTML or LaTeX template.
// Mass prefixes are anchored to the gram, since the kilogram already
// carries one.
//
// The package performs no I/O and no logging, and holds no mutable
// state: a Quantity and its registry binding may be shared freely across
// goroutines.
package physical
