package environment

import (
	"errors"
	"math"
	"testing"

	"github.com/mensura/mensura/dims"
	"github.com/mensura/mensura/physical"
)

var (
	forceDims  = dims.New(1, 1, -2, 0, 0, 0, 0)
	lengthDims = dims.Base(dims.Length)
)

func TestBuiltinCatalog(t *testing.T) {
	env := Builtin()

	n, ok := env.Lookup("N")
	if !ok {
		t.Fatal("newton missing from builtin catalog")
	}
	if n.Kind != physical.Derived || n.Factor != 1 || !n.PrefixEligible {
		t.Errorf("newton entry malformed: %+v", n)
	}
	if !n.Dimension.Equal(forceDims) {
		t.Errorf("newton dimension = %v", n.Dimension)
	}

	lb, ok := env.Lookup("lb")
	if !ok {
		t.Fatal("pound missing from builtin catalog")
	}
	if lb.Kind != physical.Defined || lb.PrefixEligible {
		t.Errorf("pound entry malformed: %+v", lb)
	}
}

func TestUnitsOrdering(t *testing.T) {
	env := Builtin()
	units := env.Units(forceDims)
	if len(units) != 3 {
		t.Fatalf("force units = %v", units)
	}
	// Derived first, then defined sorted by symbol.
	want := []string{"N", "kip", "lb"}
	for i, u := range units {
		if u.Symbol != want[i] {
			t.Fatalf("force units order = %v, want %v", units, want)
		}
	}
}

func TestBasisIsStable(t *testing.T) {
	env := Builtin()
	first := env.Basis()
	for i := 0; i < 20; i++ {
		again := env.Basis()
		if len(again) != len(first) {
			t.Fatal("basis length changed")
		}
		for j := range first {
			if !again[j].Equal(first[j]) {
				t.Fatalf("basis order changed at %d", j)
			}
		}
	}
}

func TestByFactor(t *testing.T) {
	env := Builtin()

	u, ok := env.ByFactor(1/0.3048, lengthDims, 1)
	if !ok || u.Symbol != "ft" {
		t.Fatalf("ByFactor(ft) = %+v, %v", u, ok)
	}

	// Squared foot factor unwinds through power 2.
	u, ok = env.ByFactor(math.Pow(1/0.3048, 2), lengthDims, 2)
	if !ok || u.Symbol != "ft" {
		t.Fatalf("ByFactor(ft²) = %+v, %v", u, ok)
	}

	// Right factor, wrong basis.
	if _, ok := env.ByFactor(1/0.3048, forceDims, 1); ok {
		t.Error("ByFactor matched across dimensions")
	}

	// Factor 1 never matches a defined unit.
	if _, ok := env.ByFactor(1, lengthDims, 1); ok {
		t.Error("ByFactor matched factor 1")
	}

	if _, ok := env.ByFactor(1/0.3048, lengthDims, 0); ok {
		t.Error("ByFactor accepted power 0")
	}
}

func TestNewRejectsBadUnits(t *testing.T) {
	_, err := New(physical.Unit{Symbol: "bad", Dimension: lengthDims, Factor: -1})
	if !errors.Is(err, ErrBadFactor) {
		t.Errorf("err = %v, want ErrBadFactor", err)
	}

	dup := physical.Unit{Symbol: "x", Dimension: lengthDims, Factor: 2, Kind: physical.Defined}
	if _, err := New(dup, dup); !errors.Is(err, ErrDuplicateSymbol) {
		t.Errorf("err = %v, want ErrDuplicateSymbol", err)
	}
}

func TestExtendDoesNotMutate(t *testing.T) {
	env := Builtin()
	before := env.Len()

	furlong := physical.Unit{
		Symbol:    "fur",
		Dimension: lengthDims,
		Factor:    1 / 201.168,
		Kind:      physical.Defined,
	}
	bigger, err := env.Extend(furlong)
	if err != nil {
		t.Fatalf("Extend failed: %v", err)
	}
	if bigger.Len() != before+1 {
		t.Errorf("extended Len = %d, want %d", bigger.Len(), before+1)
	}
	if env.Len() != before {
		t.Error("Extend mutated the receiver")
	}
	if _, ok := env.Lookup("fur"); ok {
		t.Error("furlong leaked into the original environment")
	}
	if _, ok := bigger.Lookup("fur"); !ok {
		t.Error("furlong missing from the extended environment")
	}
}

func TestQuantity(t *testing.T) {
	env := Builtin()

	q, err := env.Quantity(2500, "lb")
	if err != nil {
		t.Fatalf("Quantity failed: %v", err)
	}
	// 2500 lb displayed; base value is in newtons.
	if got := q.Value() * q.Factor(); math.Abs(got-2500) > 1e-9 {
		t.Errorf("displayed value = %v, want 2500", got)
	}
	if math.Abs(q.Value()-2500*4.4482216152605) > 1e-6 {
		t.Errorf("base value = %v", q.Value())
	}

	m, err := env.Quantity(3, "m")
	if err != nil {
		t.Fatalf("base symbol failed: %v", err)
	}
	if m.Factor() != 1 || !m.Dims().Equal(lengthDims) {
		t.Errorf("base quantity malformed: %s", m.Repr())
	}

	if _, err := env.Quantity(1, "cubit"); !errors.Is(err, physical.ErrNoSuchUnit) {
		t.Errorf("err = %v, want ErrNoSuchUnit", err)
	}
}

func TestQuantityConversionChain(t *testing.T) {
	env := Builtin()

	q, err := env.Quantity(1, "mi")
	if err != nil {
		t.Fatal(err)
	}
	ft, err := q.To("ft")
	if err != nil {
		t.Fatal(err)
	}
	if got := ft.Value() * ft.Factor(); math.Abs(got-5280) > 1e-6 {
		t.Errorf("1 mi = %v ft, want 5280", got)
	}
}
