package overflow

import (
	"math"
	"testing"
)

func TestAdd(t *testing.T) {
	tests := []struct {
		name   string
		a, b   int64
		want   int64
		wantOK bool
	}{
		{"small", 1, 2, 3, true},
		{"negative", -5, 3, -2, true},
		{"max", math.MaxInt64, 0, math.MaxInt64, true},
		{"overflow", math.MaxInt64, 1, 0, false},
		{"underflow", math.MinInt64, -1, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Add(tt.a, tt.b)
			if ok != tt.wantOK {
				t.Fatalf("Add(%d, %d) ok = %v, want %v", tt.a, tt.b, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("Add(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSubMul(t *testing.T) {
	if _, ok := Sub[int64](math.MinInt64, 1); ok {
		t.Error("Sub(MinInt64, 1) should overflow")
	}
	if got, ok := Sub[int64](3, 5); !ok || got != -2 {
		t.Errorf("Sub(3, 5) = %d, %v", got, ok)
	}
	if _, ok := Mul[int64](math.MaxInt64/2+1, 2); ok {
		t.Error("Mul should overflow")
	}
	if _, ok := Mul[int64](math.MinInt64, -1); ok {
		t.Error("Mul(MinInt64, -1) should overflow")
	}
	if got, ok := Mul[int32](-7, 6); !ok || got != -42 {
		t.Errorf("Mul(-7, 6) = %d, %v", got, ok)
	}
	if _, ok := Mul[int8](64, 2); ok {
		t.Error("Mul[int8](64, 2) should overflow")
	}
}

func TestDivModNeg(t *testing.T) {
	if _, ok := Div[int64](1, 0); ok {
		t.Error("Div by zero should fail")
	}
	if _, ok := Div[int64](math.MinInt64, -1); ok {
		t.Error("Div(MinInt64, -1) should overflow")
	}
	if got, ok := Mod[int64](-7, 3); !ok || got != -1 {
		t.Errorf("Mod(-7, 3) = %d, %v", got, ok)
	}
	if _, ok := Neg[int64](math.MinInt64); ok {
		t.Error("Neg(MinInt64) should overflow")
	}
	if got, ok := Neg[int16](12); !ok || got != -12 {
		t.Errorf("Neg(12) = %d, %v", got, ok)
	}
}

func TestFloorDiv(t *testing.T) {
	tests := []struct {
		a, b, q, r int64
	}{
		{7, 3, 2, 1},
		{-7, 3, -3, 2},
		{-6, 3, -2, 0},
		{-1, 12, -1, 11},
		{0, 12, 0, 0},
	}
	for _, tt := range tests {
		q, r, ok := FloorDiv(tt.a, tt.b)
		if !ok || q != tt.q || r != tt.r {
			t.Errorf("FloorDiv(%d, %d) = %d, %d, %v; want %d, %d", tt.a, tt.b, q, r, ok, tt.q, tt.r)
		}
	}
}
