package dims

import "testing"

func TestAlgebra(t *testing.T) {
	force := New(1, 1, -2, 0, 0, 0, 0)
	area := New(0, 2, 0, 0, 0, 0, 0)

	tests := []struct {
		name string
		got  Dimensions
		want Dimensions
	}{
		{"add", force.Add(area), New(1, 3, -2, 0, 0, 0, 0)},
		{"sub", force.Sub(area), New(1, -1, -2, 0, 0, 0, 0)},
		{"scale", force.Scale(3), New(3, 3, -6, 0, 0, 0, 0)},
		{"neg", force.Neg(), New(-1, -1, 2, 0, 0, 0, 0)},
		{"sub self", force.Sub(force), Zero},
		{"half", area.Scale(0.5), New(0, 1, 0, 0, 0, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.Equal(tt.want) {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestEqualIsExact(t *testing.T) {
	a := New(0, 1, 0, 0, 0, 0, 0)
	b := New(0, 1+1e-15, 0, 0, 0, 0, 0)
	if a.Equal(b) {
		t.Error("equality must be exact, not tolerant")
	}
}

func TestBase(t *testing.T) {
	if got := Base(Length); !got.Equal(New(0, 1, 0, 0, 0, 0, 0)) {
		t.Errorf("Base(Length) = %v", got)
	}
	if Base(Mass).At(Mass) != 1 || Base(Mass).NonZero() != 1 {
		t.Error("Base(Mass) malformed")
	}
}

func TestZero(t *testing.T) {
	if !Zero.IsZero() {
		t.Error("Zero.IsZero() = false")
	}
	if Base(Time).IsZero() {
		t.Error("Base(Time).IsZero() = true")
	}
}

func TestMapKey(t *testing.T) {
	m := map[Dimensions]string{
		New(1, 1, -2, 0, 0, 0, 0): "force",
	}
	if m[New(1, 1, -2, 0, 0, 0, 0)] != "force" {
		t.Error("Dimensions not usable as a map key")
	}
}

func TestMagnitudeAndNonZero(t *testing.T) {
	d := New(1, 1, -2, 0, 0, 0, 0)
	if d.Magnitude() != 6 {
		t.Errorf("Magnitude = %v, want 6", d.Magnitude())
	}
	if d.NonZero() != 3 {
		t.Errorf("NonZero = %d, want 3", d.NonZero())
	}
}
