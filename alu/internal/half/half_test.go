package half

import (
	"math"
	"testing"
)

func TestSpecialValues(t *testing.T) {
	tests := []struct {
		name string
		h    Float16
		want float32
	}{
		{"zero", Zero, 0},
		{"one", One, 1},
		{"neg one", 0xBC00, -1},
		{"max", MaxValue, 65504},
		{"min normal", MinNormal, 6.103515625e-05},
		{"smallest subnormal", 0x0001, 5.960464477539063e-08},
		{"inf", Inf, float32(math.Inf(1))},
		{"neg inf", NegInf, float32(math.Inf(-1))},
	}
	for _, tt := range tests {
		if got := tt.h.Float32(); got != tt.want {
			t.Errorf("%s: Float32() = %g, want %g", tt.name, got, tt.want)
		}
	}
	if !NaN.IsNaN() {
		t.Error("NaN.IsNaN() = false")
	}
	if got := NegZero.Float32(); got != 0 || math.Signbit(float64(got)) != true {
		t.Errorf("NegZero.Float32() = %g, want -0", got)
	}
}

func TestRoundTripExhaustive(t *testing.T) {
	// Every non-NaN binary16 value is exactly representable in binary32 and
	// binary64, so narrowing back must reproduce the bits.
	for i := 0; i <= 0xFFFF; i++ {
		h := Float16(i)
		if h.IsNaN() {
			continue
		}
		if got := FromFloat32(h.Float32()); got != h {
			t.Fatalf("FromFloat32 round trip %#04x -> %#04x", uint16(h), uint16(got))
		}
		if got := FromFloat64(h.Float64()); got != h {
			t.Fatalf("FromFloat64 round trip %#04x -> %#04x", uint16(h), uint16(got))
		}
		if got := FromFloat64Round(h.Float64(), RoundTowardZero); got != h {
			t.Fatalf("RTZ round trip %#04x -> %#04x", uint16(h), uint16(got))
		}
	}
}

func TestRoundingModes(t *testing.T) {
	ulp := 1.0 / 1024 // mantissa step at exponent 0
	tests := []struct {
		name string
		in   float64
		rtne Float16
		rtz  Float16
	}{
		// Tie halfway between 1.0 and 1.0+ulp: nearest-even keeps the even
		// mantissa, truncation always goes down.
		{"tie to even down", 1 + ulp/2, 0x3C00, 0x3C00},
		// Tie halfway between 1+ulp and 1+2ulp: even is the upper one.
		{"tie to even up", 1 + ulp + ulp/2, 0x3C02, 0x3C01},
		// Just above a tie: sticky bit forces the round up in RTNE.
		{"sticky breaks tie", 1 + ulp/2 + 1e-9, 0x3C01, 0x3C00},
		{"just below tie", 1 + ulp/2 - 1e-9, 0x3C00, 0x3C00},
		{"negative tie", -(1 + ulp/2), 0xBC00, 0xBC00},
	}
	for _, tt := range tests {
		if got := FromFloat64Round(tt.in, RoundNearestEven); got != tt.rtne {
			t.Errorf("%s: RTNE(%v) = %#04x, want %#04x", tt.name, tt.in, uint16(got), uint16(tt.rtne))
		}
		if got := FromFloat64Round(tt.in, RoundTowardZero); got != tt.rtz {
			t.Errorf("%s: RTZ(%v) = %#04x, want %#04x", tt.name, tt.in, uint16(got), uint16(tt.rtz))
		}
	}
}

func TestOverflow(t *testing.T) {
	// 65520 is the exact midpoint between 65504 and the next (unrepresentable)
	// step; nearest-even overflows to infinity.
	if got := FromFloat64(65520); got != Inf {
		t.Errorf("RTNE(65520) = %#04x, want Inf", uint16(got))
	}
	if got := FromFloat64(65519.999); got != MaxValue {
		t.Errorf("RTNE(65519.999) = %#04x, want MaxValue", uint16(got))
	}
	if got := FromFloat64(1e300); got != Inf {
		t.Errorf("RTNE(1e300) = %#04x, want Inf", uint16(got))
	}
	// Toward-zero never leaves the finite range.
	if got := FromFloat64Round(1e300, RoundTowardZero); got != MaxValue {
		t.Errorf("RTZ(1e300) = %#04x, want MaxValue", uint16(got))
	}
	if got := FromFloat64Round(math.Inf(-1), RoundTowardZero); got != NegInf {
		t.Errorf("RTZ(-Inf) = %#04x, want NegInf", uint16(got))
	}
}

func TestSubnormalTargets(t *testing.T) {
	minSub := math.Ldexp(1, -24)
	tests := []struct {
		name string
		in   float64
		mode RoundingMode
		want Float16
	}{
		{"smallest subnormal", minSub, RoundNearestEven, 0x0001},
		{"half of it ties to zero", minSub / 2, RoundNearestEven, Zero},
		{"above the tie rounds up", minSub * 0.75, RoundNearestEven, 0x0001},
		{"rtz truncates inside subnormal", minSub * 1.9, RoundTowardZero, 0x0001},
		{"float64 subnormal flushes", 5e-324, RoundNearestEven, Zero},
		{"negative underflow keeps sign", -minSub / 4, RoundNearestEven, NegZero},
	}
	for _, tt := range tests {
		if got := FromFloat64Round(tt.in, tt.mode); got != tt.want {
			t.Errorf("%s: (%g) = %#04x, want %#04x", tt.name, tt.in, uint16(got), uint16(tt.want))
		}
	}
}

func TestNaNPropagation(t *testing.T) {
	if got := FromFloat32(float32(math.NaN())); !got.IsNaN() {
		t.Errorf("FromFloat32(NaN) = %#04x, not NaN", uint16(got))
	}
	if got := FromFloat64Round(math.NaN(), RoundTowardZero); !got.IsNaN() {
		t.Errorf("RTZ(NaN) = %#04x, not NaN", uint16(got))
	}
	if !math.IsNaN(NaN.Float64()) {
		t.Error("NaN.Float64() is not NaN")
	}
}
