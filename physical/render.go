package physical

import (
	"math"
	"strconv"
	"strings"

	"github.com/mensura/mensura/dims"
)

// Format selects the rendering template.
type Format uint8

const (
	// Plain renders for terminals: a plain space separator and Unicode
	// superscript exponents.
	Plain Format = iota

	// HTML renders with a non-breaking space and <sup> exponents.
	HTML

	// LaTeX renders with a typeset space and ^{...} exponents.
	LaTeX
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case Plain:
		return "plain"
	case HTML:
		return "html"
	case LaTeX:
		return "latex"
	default:
		return "unknown"
	}
}

// String renders the quantity in the plain template.
func (q Quantity) String() string {
	return Render(q, Plain)
}

// HTML renders the quantity in the HTML template.
func (q Quantity) HTML() string {
	return Render(q, HTML)
}

// LaTeX renders the quantity in the LaTeX template.
func (q Quantity) LaTeX() string {
	return Render(q, LaTeX)
}

// Render resolves the quantity's display unit against its registry and
// renders it. It is a pure function of the quantity and the registry
// snapshot, and never fails: a dimension with no registered unit falls
// back to a composite of base-unit symbols.
func Render(q Quantity, f Format) string {
	power, basis := powersOfDerived(q.dims, q.reg)
	symbol, prefixOK := resolveSymbol(basis, q.factor, power, q.reg)
	gram := basis.Equal(dims.Base(dims.Mass))

	prefix := ""
	value := q.value * q.factor
	if prefixOK {
		value, prefix = autoPrefixValue(q.value, power, q.prefix, gram)
	}

	exponent := ""
	var units string
	if symbol == "" {
		// Composite fallback: the symbol string already encodes the
		// exponents per component, so the outer exponent stays empty.
		units = compositeSymbol(q.dims, f, prefix, gram && prefixOK)
	} else {
		units = prefix + symbol
		exponent = formatExponent(power)
	}

	var sb strings.Builder
	sb.WriteString(strconv.FormatFloat(value, 'f', q.precision, 64))
	if units == "" {
		return sb.String()
	}
	switch f {
	case HTML:
		sb.WriteString("&nbsp;")
	case LaTeX:
		sb.WriteString(`\ `)
	default:
		sb.WriteString(" ")
	}
	sb.WriteString(units)
	if exponent != "" {
		writeExponent(&sb, exponent, f)
	}
	return sb.String()
}

// formatExponent renders the resolved power for display, or "" when the
// power is 1 and no exponent should be shown at all.
func formatExponent(power float64) string {
	if math.Abs(power-1) < eps {
		return ""
	}
	if math.Abs(power-math.Round(power)) < eps {
		return strconv.Itoa(int(math.Round(power)))
	}
	return strconv.FormatFloat(power, 'g', -1, 64)
}

// writeExponent emits a nonempty exponent with the template's wrapper.
func writeExponent(sb *strings.Builder, exponent string, f Format) {
	switch f {
	case HTML:
		sb.WriteString("<sup>")
		sb.WriteString(exponent)
		sb.WriteString("</sup>")
	case LaTeX:
		sb.WriteString("^{")
		sb.WriteString(exponent)
		sb.WriteString("}")
	default:
		sb.WriteString(superscript(exponent))
	}
}

// compositeSymbol builds a unit string from the base-unit symbols raised
// to the vector's exponents, e.g. "kg·m·s⁻²". A prefix only ever applies
// on the single-axis path; for mass the component symbol becomes the
// gram, the prefix ladder having been anchored there.
func compositeSymbol(d dims.Dimensions, f Format, prefix string, gram bool) string {
	comps := unitComponents(d)
	var sb strings.Builder
	for i, c := range comps {
		if i > 0 {
			switch f {
			case HTML:
				sb.WriteString("&middot;")
			case LaTeX:
				sb.WriteString(` \cdot `)
			default:
				sb.WriteString("·")
			}
		}
		sym := c.symbol
		if gram && sym == "kg" {
			sym = "g"
		}
		sb.WriteString(sym)
		if exp := formatExponent(c.exponent); exp != "" {
			writeExponent(&sb, exp, f)
		}
	}
	if prefix == "" {
		return sb.String()
	}
	return prefix + sb.String()
}

// superscriptRunes maps exponent characters to Unicode superscripts.
var superscriptRunes = map[rune]rune{
	'0': '⁰', '1': '¹', '2': '²', '3': '³', '4': '⁴',
	'5': '⁵', '6': '⁶', '7': '⁷', '8': '⁸', '9': '⁹',
	'-': '⁻', '.': '\'',
}

// superscript converts an exponent string to Unicode superscript form.
func superscript(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if sup, ok := superscriptRunes[r]; ok {
			sb.WriteRune(sup)
		} else {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
