package cadwork

import (
	"math"
	"testing"
)

func TestParsePoint(t *testing.T) {
	tests := []struct {
		name    string
		in      any
		want    Point
		wantErr bool
	}{
		{name: "floats", in: []any{1.0, 2.0, 3.0}, want: Point{1, 2, 3}},
		{name: "ints", in: []any{1, 2, 3}, want: Point{1, 2, 3}},
		{name: "too short", in: []any{1.0, 2.0}, wantErr: true},
		{name: "not a list", in: "0,0,0", wantErr: true},
		{name: "non numeric", in: []any{1.0, "x", 3.0}, wantErr: true},
		{name: "nil", in: nil, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePoint(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParsePoint(%v) succeeded, want error", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePoint(%v): %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("ParsePoint(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestVectorMath(t *testing.T) {
	x := Point{X: 1}
	y := Point{Y: 1}

	if got := x.Cross(y); got != (Point{Z: 1}) {
		t.Fatalf("x cross y = %v, want (0,0,1)", got)
	}
	if got := x.Dot(y); got != 0 {
		t.Fatalf("x dot y = %v, want 0", got)
	}
	v := Point{X: 3, Y: 4}
	if got := v.Length(); got != 5 {
		t.Fatalf("length = %v, want 5", got)
	}
	n := v.Normalized()
	if math.Abs(n.Length()-1) > 1e-12 {
		t.Fatalf("normalized length = %v, want 1", n.Length())
	}
	if got := (Point{}).Normalized(); got != (Point{}) {
		t.Fatalf("zero normalized = %v, want zero", got)
	}
	if got := v.Distance(Point{X: 3, Y: 4, Z: 12}); got != 12 {
		t.Fatalf("distance = %v, want 12", got)
	}
}

func TestElementTypeString(t *testing.T) {
	if got := TypeBeam.String(); got != "beam" {
		t.Fatalf("TypeBeam = %q", got)
	}
	if got := ElementType(99).String(); got != "unknown_type_99" {
		t.Fatalf("unknown type = %q", got)
	}
}

func TestColorName(t *testing.T) {
	if got := ColorName(1); got != "Black" {
		t.Fatalf("color 1 = %q", got)
	}
	if got := ColorName(42); got != "Color_42" {
		t.Fatalf("color 42 = %q", got)
	}
}
