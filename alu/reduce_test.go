package alu_test

import (
	"math"
	"testing"

	nir "github.com/xandfury/external-mesa3d"
	"github.com/xandfury/external-mesa3d/alu"
)

func TestFDot(t *testing.T) {
	a := floats32(1, 2, 3, 4)
	b := floats32(5, 6, 7, 8)

	var dst [4]nir.Value
	alu.Evaluate(alu.OpFDot2, dst[:], 1, 32, a, b)
	if got := dst[0].Float32(); got != 17 {
		t.Errorf("fdot2 = %v, want 17", got)
	}
	alu.Evaluate(alu.OpFDot3, dst[:], 1, 32, a, b)
	if got := dst[0].Float32(); got != 38 {
		t.Errorf("fdot3 = %v, want 38", got)
	}

	// The scalar result is broadcast to every requested lane.
	alu.Evaluate(alu.OpFDot4, dst[:], 4, 32, a, b)
	for i, v := range dst {
		if v.Float32() != 70 {
			t.Errorf("fdot4 lane %d = %v, want 70", i, v.Float32())
		}
	}
}

func TestFDot64(t *testing.T) {
	a := []nir.Value{nir.Float64(0.1), nir.Float64(0.2)}
	b := []nir.Value{nir.Float64(10), nir.Float64(100)}
	var dst [1]nir.Value
	alu.Evaluate(alu.OpFDot2, dst[:], 1, 64, a, b)
	want := 0.1*10 + 0.2*100
	if got := dst[0].Float64(); got != want {
		t.Errorf("fdot2 at 64-bit = %v, want %v", got, want)
	}
}

func TestFDph(t *testing.T) {
	// dot(src0.xyz, src1.xyz) + src1.w, as if src0.w were 1.
	a := floats32(1, 2, 3)
	b := floats32(4, 5, 6, 7)
	var dst [1]nir.Value
	alu.Evaluate(alu.OpFDph, dst[:], 1, 32, a, b)
	if got := dst[0].Float32(); got != 39 {
		t.Errorf("fdph = %v, want 39", got)
	}
}

func TestBallBany(t *testing.T) {
	x := []nir.Value{nir.Uint(32, 1), nir.Uint(32, 2), nir.Uint(32, 3)}
	y := []nir.Value{nir.Uint(32, 1), nir.Uint(32, 2), nir.Uint(32, 3)}
	z := []nir.Value{nir.Uint(32, 1), nir.Uint(32, 9), nir.Uint(32, 3)}

	var dst [4]nir.Value
	alu.Evaluate(alu.OpBAllIEqual3, dst[:], 1, 32, x, y)
	if !dst[0].IsTrue() {
		t.Error("ball_iequal3 of equal vectors should be true")
	}
	alu.Evaluate(alu.OpBAllIEqual3, dst[:], 1, 32, x, z)
	if dst[0].IsTrue() {
		t.Error("ball_iequal3 with a differing lane should be false")
	}
	alu.Evaluate(alu.OpBAnyINequal3, dst[:], 1, 32, x, z)
	if !dst[0].IsTrue() {
		t.Error("bany_inequal3 with a differing lane should be true")
	}

	// 32-bit sentinel variants broadcast the full mask to all lanes.
	alu.Evaluate(alu.OpB32AnyINequal3, dst[:], 4, 32, x, z)
	for i, v := range dst {
		if v.Uint(32) != 0xFFFFFFFF {
			t.Errorf("b32any lane %d = %#x, want full mask", i, v.Uint(32))
		}
	}
}

func TestBallFloatNaN(t *testing.T) {
	nan := nir.Float32(float32(math.NaN()))
	a := []nir.Value{nir.Float32(1), nan}
	var dst [1]nir.Value

	alu.Evaluate(alu.OpBAllFEqual2, dst[:], 1, 32, a, a)
	if dst[0].IsTrue() {
		t.Error("a NaN lane must break all-equal")
	}
	alu.Evaluate(alu.OpBAnyFNequal2, dst[:], 1, 32, a, a)
	if !dst[0].IsTrue() {
		t.Error("a NaN lane must satisfy any-not-equal")
	}
}

func TestMovMasksToWidth(t *testing.T) {
	// Stray upper bits cannot leak through a width-1 move.
	src := []nir.Value{nir.FromBits(0xFF)}
	var dst [1]nir.Value
	alu.Evaluate(alu.OpMov, dst[:], 1, 1, src)
	if dst[0].Bits() != 1 {
		t.Errorf("mov at 1-bit = %#x, want 1", dst[0].Bits())
	}
}
