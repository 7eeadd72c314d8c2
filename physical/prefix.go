package physical

import "math"

// The standard metric prefixes, largest first, in steps of 10^3.
var prefixLadder = []struct {
	symbol string
	power  int
}{
	{"Y", 24}, {"Z", 21}, {"E", 18}, {"P", 15}, {"T", 12}, {"G", 9},
	{"M", 6}, {"k", 3},
	{"m", -3}, {"µ", -6}, {"n", -9}, {"p", -12}, {"f", -15}, {"a", -18},
	{"z", -21}, {"y", -24},
}

// prefixPower returns the power of ten for a prefix symbol. The empty
// prefix is power 0; "u" is accepted as an alias for µ.
func prefixPower(symbol string) (int, bool) {
	if symbol == "" {
		return 0, true
	}
	if symbol == "u" {
		symbol = "µ"
	}
	for _, p := range prefixLadder {
		if p.symbol == symbol {
			return p.power, true
		}
	}
	return 0, false
}

// prefixForStep returns the prefix symbol for a power of ten that is a
// multiple of 3 in [-24, 24].
func prefixForStep(step int) string {
	for _, p := range prefixLadder {
		if p.power == step {
			return p.symbol
		}
	}
	return ""
}

// autoPrefix selects the metric prefix that puts the displayed mantissa
// of value into the canonical decimal range, given the exponent the unit
// symbol is raised to. With gram set, the selection is anchored to the
// gram rather than the kilogram: the kilogram already carries a prefix,
// so mass scales as if the base were 1000 times smaller.
func autoPrefix(value, power float64, gram bool) string {
	v := math.Abs(value)
	if gram {
		v *= math.Pow(1000, power)
	}
	if v == 0 || power == 0 {
		return ""
	}
	exp := math.Floor(math.Log10(v) + 1e-9)
	step := 3 * math.Floor(exp/(3*power))
	if step > 24 {
		step = 24
	}
	if step < -24 {
		step = -24
	}
	if step == 0 {
		return ""
	}
	return prefixForStep(int(step))
}

// autoPrefixValue returns the displayed mantissa for value under a
// prefix, and the prefix itself. An empty forced prefix auto-selects.
// Each unit of the exponent multiplies the prefix's effective power of
// ten: 25 000 000 m² is 25 km².
func autoPrefixValue(value, power float64, forced string, gram bool) (float64, string) {
	prefix := forced
	if prefix == "" {
		prefix = autoPrefix(value, power, gram)
	}
	v := value
	if gram {
		v *= math.Pow(1000, power)
	}
	p, ok := prefixPower(prefix)
	if !ok {
		return v, ""
	}
	return v / math.Pow(10, float64(p)*power), prefix
}
