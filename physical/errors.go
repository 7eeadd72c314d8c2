package physical

import "errors"

// Quantity arithmetic and construction errors.
var (
	// ErrDimensionMismatch is returned when two operands of an additive
	// or comparison operation have unequal dimension vectors, or when an
	// exponent is itself a dimensioned quantity.
	ErrDimensionMismatch = errors.New("physical: dimension mismatch")

	// ErrIncompatibleOperand is returned when an operand cannot be
	// coerced to a Quantity or a plain number.
	ErrIncompatibleOperand = errors.New("physical: incompatible operand")

	// ErrPrefixWithFactor is returned when a forced prefix is requested
	// on a quantity whose factor is not 1.
	ErrPrefixWithFactor = errors.New("physical: cannot prefix a quantity that has a factor")

	// ErrUnknownPrefix is returned when a forced prefix is not one of
	// the standard metric prefix symbols.
	ErrUnknownPrefix = errors.New("physical: unknown metric prefix")

	// ErrNoSuchUnit is returned by To when the named unit is not
	// registered for the quantity's dimension.
	ErrNoSuchUnit = errors.New("physical: no such unit for dimension")
)
