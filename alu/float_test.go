package alu_test

import (
	"math"
	"testing"

	nir "github.com/xandfury/external-mesa3d"
	"github.com/xandfury/external-mesa3d/alu"
)

func TestFloatBinary32(t *testing.T) {
	nan := float32(math.NaN())
	tests := []struct {
		name    string
		op      alu.Op
		a, b    float32
		want    float32
		wantNaN bool
	}{
		{"fadd", alu.OpFAdd, 2.5, 0.5, 3.0, false},
		{"fsub", alu.OpFSub, 1.0, 2.5, -1.5, false},
		{"fmul", alu.OpFMul, -3.0, 2.0, -6.0, false},
		{"fdiv", alu.OpFDiv, 1.0, 4.0, 0.25, false},
		{"fdiv inf", alu.OpFDiv, 1.0, 0.0, float32(math.Inf(1)), false},
		{"fdiv nan", alu.OpFDiv, 0.0, 0.0, 0, true},
		{"fmin", alu.OpFMin, 1.0, -2.0, -2.0, false},
		{"fmin nan left", alu.OpFMin, nan, 5.0, 5.0, false},
		{"fmin nan right", alu.OpFMin, 5.0, nan, 5.0, false},
		{"fmax nan left", alu.OpFMax, nan, -5.0, -5.0, false},
		{"fpow", alu.OpFPow, 2.0, 10.0, 1024.0, false},
		{"frem sign", alu.OpFRem, -7.0, 2.0, -1.0, false},
		{"fmod sign", alu.OpFMod, -7.0, 2.0, 1.0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := evalScalar(t, tt.op, 32, nir.Float32(tt.a), nir.Float32(tt.b)).Float32()
			if tt.wantNaN {
				if got == got {
					t.Fatalf("got %v, want NaN", got)
				}
				return
			}
			if got != tt.want {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFloatUnary32(t *testing.T) {
	tests := []struct {
		name string
		op   alu.Op
		x    float32
		want float32
	}{
		{"fabs", alu.OpFAbs, -1.5, 1.5},
		{"fneg", alu.OpFNeg, 1.5, -1.5},
		{"fsign pos", alu.OpFSign, 42.0, 1},
		{"fsign neg", alu.OpFSign, -0.25, -1},
		{"fsign zero", alu.OpFSign, 0, 0},
		{"fsign nan", alu.OpFSign, float32(math.NaN()), 0},
		{"fsat", alu.OpFSat, 1.5, 1},
		{"fsat neg", alu.OpFSat, -0.5, 0},
		{"fsat nan", alu.OpFSat, float32(math.NaN()), 0},
		{"ffloor", alu.OpFFloor, -1.5, -2},
		{"fceil", alu.OpFCeil, -1.5, -1},
		{"ftrunc", alu.OpFTrunc, -1.5, -1},
		{"fround_even down", alu.OpFRoundEven, 2.5, 2},
		{"fround_even up", alu.OpFRoundEven, 3.5, 4},
		{"ffract", alu.OpFFract, -0.25, 0.75},
		{"fsqrt", alu.OpFSqrt, 9, 3},
		{"frcp", alu.OpFRcp, 4, 0.25},
		{"frsq", alu.OpFRsq, 4, 0.5},
		{"fexp2", alu.OpFExp2, 3, 8},
		{"flog2", alu.OpFLog2, 8, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := evalScalar(t, tt.op, 32, nir.Float32(tt.x)).Float32()
			if got != tt.want {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFFma(t *testing.T) {
	got := evalScalar(t, alu.OpFFma, 64,
		nir.Float64(0x1p52+1), nir.Float64(2), nir.Float64(1)).Float64()
	want := math.FMA(0x1p52+1, 2, 1)
	if got != want {
		t.Errorf("ffma = %v, want %v", got, want)
	}
}

func TestFloat16Arithmetic(t *testing.T) {
	one := nir.HalfBits(0x3C00)
	got := evalScalar(t, alu.OpFAdd, 16, one, one)
	if got.HalfBits() != 0x4000 {
		t.Errorf("1+1 at 16-bit = %#04x, want 0x4000 (2.0)", got.HalfBits())
	}

	// 2048 + 1 rounds back to 2048: the increment is below half precision.
	big := nir.HalfBits(0x6800)
	got = evalScalar(t, alu.OpFAdd, 16, big, one)
	if got.HalfBits() != 0x6800 {
		t.Errorf("2048+1 at 16-bit = %#04x, want 0x6800", got.HalfBits())
	}
}

func TestFMed3(t *testing.T) {
	tests := []struct {
		a, b, c, want float32
	}{
		{1, 2, 3, 2},
		{3, 1, 2, 2},
		{-1, -1, 5, -1},
	}
	for _, tt := range tests {
		got := evalScalar(t, alu.OpFMed3, 32,
			nir.Float32(tt.a), nir.Float32(tt.b), nir.Float32(tt.c)).Float32()
		if got != tt.want {
			t.Errorf("fmed3(%v,%v,%v) = %v, want %v", tt.a, tt.b, tt.c, got, tt.want)
		}
	}
}

func TestFLrp(t *testing.T) {
	got := evalScalar(t, alu.OpFLrp, 32,
		nir.Float32(2), nir.Float32(10), nir.Float32(0.5)).Float32()
	if got != 6 {
		t.Errorf("flrp(2,10,0.5) = %v, want 6", got)
	}
}

func TestLdexp(t *testing.T) {
	got := evalScalar(t, alu.OpLdexp, 32, nir.Float32(1.5), nir.Int(32, 4)).Float32()
	if got != 24 {
		t.Errorf("ldexp(1.5, 4) = %v, want 24", got)
	}

	// A subnormal result flushes to a zero of the same sign.
	got = evalScalar(t, alu.OpLdexp, 32, nir.Float32(-1), nir.Int(32, -140)).Float32()
	if got != 0 || !math.Signbit(float64(got)) {
		t.Errorf("ldexp(-1, -140) = %v, want -0", got)
	}
}

func TestFrexp(t *testing.T) {
	sig := evalScalar(t, alu.OpFrexpSig, 32, nir.Float32(24)).Float32()
	exp := evalScalar(t, alu.OpFrexpExp, 32, nir.Float32(24)).Int(32)
	if sig != 0.75 || exp != 5 {
		t.Errorf("frexp(24) = %v * 2^%d, want 0.75 * 2^5", sig, exp)
	}
}

func TestFloatCompare(t *testing.T) {
	nan := nir.Float32(float32(math.NaN()))
	one := nir.Float32(1)
	two := nir.Float32(2)

	tests := []struct {
		name string
		op   alu.Op
		a, b nir.Value
		want bool
	}{
		{"flt", alu.OpFLt, one, two, true},
		{"flt nan", alu.OpFLt, nan, two, false},
		{"fge", alu.OpFGe, two, two, true},
		{"feq nan", alu.OpFEq, nan, nan, false},
		{"fneu nan", alu.OpFNeu, nan, nan, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := evalScalar(t, tt.op, 32, tt.a, tt.b)
			if got.IsTrue() != tt.want {
				t.Fatalf("got %v, want %v", got.IsTrue(), tt.want)
			}
			if got.Bits() != 0 && got.Bits() != 1 {
				t.Fatalf("1-bit sentinel = %#x", got.Bits())
			}
		})
	}

	// The 32-bit variants produce a full-width mask.
	got := evalScalar(t, alu.OpFLt32, 32, one, two)
	if got.Bits() != 0xFFFFFFFF {
		t.Errorf("flt32 true = %#x, want 0xffffffff", got.Bits())
	}
}

func TestLegacyCompare(t *testing.T) {
	got := evalScalar(t, alu.OpSLt, 32, nir.Float32(1), nir.Float32(2)).Float32()
	if got != 1.0 {
		t.Errorf("slt(1,2) = %v, want 1.0", got)
	}
	got = evalScalar(t, alu.OpSGe, 32, nir.Float32(1), nir.Float32(2)).Float32()
	if got != 0.0 {
		t.Errorf("sge(1,2) = %v, want 0.0", got)
	}
}
