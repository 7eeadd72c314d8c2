package environment

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/ghodss/yaml"

	"github.com/mensura/mensura/dims"
	"github.com/mensura/mensura/physical"
)

// definition is one entry of a unit definition file. Files may be YAML
// or JSON; both decode through the same schema:
//
//	N:
//	  Dimension: [1, 1, -2, 0, 0, 0, 0]
//	ft:
//	  Dimension: [0, 1, 0, 0, 0, 0, 0]
//	  Factor: "1/0.3048"
//
// Factor may be a number or an "a/b" ratio string, so exact conversion
// ratios survive the trip through text. A unit with factor 1 (or no
// factor) is a derived unit; anything else is defined. Prefixable
// overrides the kind's default eligibility.
type definition struct {
	Dimension  []float64   `json:"Dimension"`
	Factor     interface{} `json:"Factor,omitempty"`
	Symbol     string      `json:"Symbol,omitempty"`
	Prefixable *bool       `json:"Prefixable,omitempty"`
}

// Parse decodes a unit definition document into units, sorted by symbol
// so registration order is independent of map iteration.
func Parse(data []byte) ([]physical.Unit, error) {
	var defs map[string]definition
	if err := yaml.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("parse definitions: %w", err)
	}
	names := make([]string, 0, len(defs))
	for name := range defs {
		names = append(names, name)
	}
	sort.Strings(names)

	units := make([]physical.Unit, 0, len(defs))
	for _, name := range names {
		u, err := defs[name].unit(name)
		if err != nil {
			return nil, err
		}
		units = append(units, u)
	}
	return units, nil
}

// LoadFile reads and parses a unit definition file.
func LoadFile(path string) ([]physical.Unit, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load definitions: %w", err)
	}
	return Parse(data)
}

func (d definition) unit(name string) (physical.Unit, error) {
	if len(d.Dimension) != dims.N {
		return physical.Unit{}, fmt.Errorf("unit %q: %w", name, ErrBadDimension)
	}
	dim := dims.New(
		d.Dimension[0], d.Dimension[1], d.Dimension[2], d.Dimension[3],
		d.Dimension[4], d.Dimension[5], d.Dimension[6],
	)
	factor, err := coerceFactor(d.Factor)
	if err != nil {
		return physical.Unit{}, fmt.Errorf("unit %q: %w", name, err)
	}
	symbol := d.Symbol
	if symbol == "" {
		symbol = name
	}
	u := physical.Unit{Symbol: symbol, Dimension: dim, Factor: factor}
	if factor == 1 {
		u.Kind = physical.Derived
		u.PrefixEligible = true
	} else {
		u.Kind = physical.Defined
	}
	if d.Prefixable != nil {
		u.PrefixEligible = *d.Prefixable
	}
	return u, nil
}

// coerceFactor accepts a missing factor (1), a positive number, or an
// "a/b" ratio string.
func coerceFactor(v interface{}) (float64, error) {
	switch t := v.(type) {
	case nil:
		return 1, nil
	case float64:
		if t <= 0 {
			return 0, ErrBadFactor
		}
		return t, nil
	case string:
		return parseRatio(t)
	default:
		return 0, fmt.Errorf("%w (got %T)", ErrBadFactor, v)
	}
}

func parseRatio(s string) (float64, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) > 2 {
		return 0, fmt.Errorf("%w (got %q)", ErrBadFactor, s)
	}
	nums := make([]float64, len(parts))
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return 0, fmt.Errorf("%w (got %q)", ErrBadFactor, s)
		}
		nums[i] = f
	}
	f := nums[0]
	if len(nums) == 2 {
		if nums[1] == 0 {
			return 0, fmt.Errorf("%w (division by zero in %q)", ErrBadFactor, s)
		}
		f = nums[0] / nums[1]
	}
	if f <= 0 {
		return 0, fmt.Errorf("%w (got %q)", ErrBadFactor, s)
	}
	return f, nil
}
