package si

import (
	"testing"

	"github.com/mensura/mensura/dims"
	"github.com/mensura/mensura/physical"
)

func mustQuantity(t *testing.T, o physical.Operand) physical.Quantity {
	t.Helper()
	q, ok := physical.AsQuantity(o)
	if !ok {
		t.Fatalf("operand %v is not a quantity", o)
	}
	return q
}

func TestForceFromBaseUnits(t *testing.T) {
	accel := mustQuantity(t, M.Div(mustQuantity(t, S.Mul(S))))
	force := mustQuantity(t, KG.Mul(accel))

	if got := force.String(); got != "1.000 N" {
		t.Errorf("String() = %q, want %q", got, "1.000 N")
	}
	if !force.Dims().Equal(dims.New(1, 1, -2, 0, 0, 0, 0)) {
		t.Errorf("dims = %v", force.Dims())
	}
}

func TestPressureScalesToPrefix(t *testing.T) {
	area := mustQuantity(t, M.Mul(M))
	force := mustQuantity(t, KG.Mul(M).(physical.Quantity).Div(mustQuantity(t, S.Mul(S))))
	pressure := mustQuantity(t, force.MulNumber(250e3).Div(area))

	if got := pressure.String(); got != "250.000 kPa" {
		t.Errorf("String() = %q, want %q", got, "250.000 kPa")
	}
}

func TestEnergyRoundTrip(t *testing.T) {
	force := mustQuantity(t, KG.Mul(M).(physical.Quantity).Div(mustQuantity(t, S.Mul(S))))
	energy := mustQuantity(t, force.Mul(M))

	if got := energy.String(); got != "1.000 J" {
		t.Errorf("String() = %q, want %q", got, "1.000 J")
	}

	back := energy.Div(M)
	if got := mustQuantity(t, back).String(); got != "1.000 N" {
		t.Errorf("J/m = %q, want %q", got, "1.000 N")
	}
}

func TestRatioCollapsesToNumber(t *testing.T) {
	ratio, ok := physical.AsNumber(M.MulNumber(3).Div(M))
	if !ok {
		t.Fatal("m/m did not collapse to a number")
	}
	if ratio != 3 {
		t.Errorf("ratio = %v, want 3", ratio)
	}
}

func TestConversionThroughEnvironment(t *testing.T) {
	dist := M.MulNumber(1609.344)
	mi, err := dist.To("mi")
	if err != nil {
		t.Fatalf("To failed: %v", err)
	}
	if got := mi.String(); got != "1.000 mi" {
		t.Errorf("String() = %q, want %q", got, "1.000 mi")
	}
	if v := mi.Value(); v != 1609.344 {
		t.Errorf("base value changed: %v", v)
	}
}

func TestAlternativesForForce(t *testing.T) {
	force := mustQuantity(t, KG.Mul(M).(physical.Quantity).Div(mustQuantity(t, S.Mul(S))))
	names := force.Alternatives()
	want := []string{"N", "kip", "lb"}
	if len(names) != len(want) {
		t.Fatalf("Alternatives() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("Alternatives() = %v, want %v", names, want)
		}
	}
}

func TestBaseUnitsRender(t *testing.T) {
	tests := []struct {
		q    physical.Quantity
		want string
	}{
		{KG, "1.000 kg"},
		{M, "1.000 m"},
		{S, "1.000 s"},
		{A, "1.000 A"},
		{CD, "1.000 cd"},
		{K, "1.000 K"},
		{MOL, "1.000 mol"},
	}
	for _, tt := range tests {
		if got := tt.q.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestTimeStaysOnBaseAxis(t *testing.T) {
	if _, ok := Environment().Lookup("Hz"); ok {
		t.Fatal("default catalog registers a pure-time unit")
	}

	freq := mustQuantity(t, S.Pow(-1))
	if got := freq.String(); got != "1.000 s⁻¹" {
		t.Errorf("1/s = %q, want %q", got, "1.000 s⁻¹")
	}
	if got := S.MulNumber(0.25).String(); got != "250.000 ms" {
		t.Errorf("String() = %q, want %q", got, "250.000 ms")
	}
}

func TestComparisonNoise(t *testing.T) {
	a := M.MulNumber(0.1).AddNumber(0.2)
	b := M.MulNumber(0.3)
	eq, err := a.Equals(b)
	if err != nil {
		t.Fatalf("Equals failed: %v", err)
	}
	if !eq {
		t.Errorf("%v != %v after rounding", a.Value(), b.Value())
	}
}

func TestEnvironmentIsShared(t *testing.T) {
	if Environment() == nil {
		t.Fatal("nil default environment")
	}
	if KG.Registry() != physical.Registry(Environment()) {
		t.Error("base units not bound to the default environment")
	}
}
