package alu_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	nir "github.com/xandfury/external-mesa3d"
	"github.com/xandfury/external-mesa3d/alu"
)

func packOne(t *testing.T, op alu.Op, src []nir.Value) nir.Value {
	t.Helper()
	var dst [1]nir.Value
	alu.Evaluate(op, dst[:], 1, 0, src)
	return dst[0]
}

func floats32(vs ...float32) []nir.Value {
	out := make([]nir.Value, len(vs))
	for i, v := range vs {
		out[i] = nir.Float32(v)
	}
	return out
}

func TestPackSnorm(t *testing.T) {
	got := packOne(t, alu.OpPackSnorm4x8, floats32(1.0, -1.0, 0.0, 0.5)).Uint(32)
	// 127, -127 (0x81), 0, round-even(63.5)=64, little-endian limbs.
	if got != 0x4000817F {
		t.Errorf("pack_snorm_4x8 = %#08x, want 0x4000817f", got)
	}

	got = packOne(t, alu.OpPackSnorm2x16, floats32(-2.0, 0.25)).Uint(32)
	// Clamped -1 -> -32767; 0.25*32767 = 8191.75 -> 8192.
	snormNeg := int16(-32767)
	want := uint64(8192)<<16 | uint64(uint16(snormNeg))
	if got != want {
		t.Errorf("pack_snorm_2x16 = %#08x, want %#08x", got, want)
	}
}

func TestPackUnorm(t *testing.T) {
	got := packOne(t, alu.OpPackUnorm4x8, floats32(0, 1, 0.5, -3)).Uint(32)
	// round-even(0.5*255 = 127.5) = 128; negatives clamp to 0.
	if got != 0x0080FF00 {
		t.Errorf("pack_unorm_4x8 = %#08x, want 0x0080ff00", got)
	}

	got = packOne(t, alu.OpPackUnorm2x16, floats32(0.5, 1)).Uint(32)
	// round-even(0.5*65535 = 32767.5) = 32768.
	if got != 0xFFFF8000 {
		t.Errorf("pack_unorm_2x16 = %#08x, want 0xffff8000", got)
	}
}

func TestSnormNearInverse(t *testing.T) {
	// Exact multiples of 1/32767 survive the round trip untouched; anything
	// else lands within 1/32767.
	for _, k := range []int64{-32767, -12345, -1, 0, 1, 7, 32767} {
		x := float32(k) / 32767
		w := packOne(t, alu.OpPackSnorm2x16, floats32(x, 0))
		var dst [2]nir.Value
		alu.Evaluate(alu.OpUnpackSnorm2x16, dst[:], 2, 0, []nir.Value{w})
		if got := dst[0].Float32(); got != x {
			t.Errorf("snorm16 round trip of %d/32767: got %v, want %v", k, got, x)
		}
	}
	for _, x := range []float32{0.1, -0.333, 0.9999, -0.00004} {
		w := packOne(t, alu.OpPackSnorm2x16, floats32(x, 0))
		var dst [2]nir.Value
		alu.Evaluate(alu.OpUnpackSnorm2x16, dst[:], 2, 0, []nir.Value{w})
		if diff := math.Abs(float64(dst[0].Float32() - x)); diff > 1.0/32767 {
			t.Errorf("snorm16 round trip of %v drifted by %v", x, diff)
		}
	}
}

func TestUnpackSnormClamps(t *testing.T) {
	// The most negative limb value decodes below -1 and clamps.
	var dst [4]nir.Value
	alu.Evaluate(alu.OpUnpackSnorm4x8, dst[:], 4, 0, []nir.Value{nir.Uint(32, 0x80)})
	if got := dst[0].Float32(); got != -1 {
		t.Errorf("unpack_snorm_4x8(0x80) lane 0 = %v, want -1", got)
	}
	if got := dst[1].Float32(); got != 0 {
		t.Errorf("lane 1 = %v, want 0", got)
	}
}

func TestPackHalf(t *testing.T) {
	got := packOne(t, alu.OpPackHalf2x16, floats32(1.0, -2.0)).Uint(32)
	if got != 0xC0003C00 {
		t.Errorf("pack_half_2x16(1, -2) = %#08x, want 0xc0003c00", got)
	}

	split := packOneSplit(t, alu.OpPackHalf2x16Split, nir.Float32(1.0), nir.Float32(-2.0)).Uint(32)
	if split != got {
		t.Errorf("pack_half_2x16_split = %#08x, want %#08x", split, got)
	}

	var dst [2]nir.Value
	alu.Evaluate(alu.OpUnpackHalf2x16, dst[:], 2, 0, []nir.Value{nir.Uint(32, got)})
	if dst[0].Float32() != 1.0 || dst[1].Float32() != -2.0 {
		t.Errorf("unpack_half_2x16 = [%v %v], want [1 -2]", dst[0].Float32(), dst[1].Float32())
	}

	x := packOne(t, alu.OpUnpackHalf2x16SplitX, []nir.Value{nir.Uint(32, got)})
	y := packOne(t, alu.OpUnpackHalf2x16SplitY, []nir.Value{nir.Uint(32, got)})
	if x.Float32() != 1.0 || y.Float32() != -2.0 {
		t.Errorf("split unpack = %v, %v", x.Float32(), y.Float32())
	}
}

func packOneSplit(t *testing.T, op alu.Op, a, b nir.Value) nir.Value {
	t.Helper()
	var dst [1]nir.Value
	alu.Evaluate(op, dst[:], 1, 0, []nir.Value{a}, []nir.Value{b})
	return dst[0]
}

func TestPackLimbs(t *testing.T) {
	got := packOne(t, alu.OpPack32_2x16, []nir.Value{nir.Uint(16, 0x1234), nir.Uint(16, 0xABCD)}).Uint(32)
	if got != 0xABCD1234 {
		t.Errorf("pack_32_2x16 = %#08x, want 0xabcd1234", got)
	}
	got = packOneSplit(t, alu.OpPack32_2x16Split, nir.Uint(16, 0x1234), nir.Uint(16, 0xABCD)).Uint(32)
	if got != 0xABCD1234 {
		t.Errorf("pack_32_2x16_split = %#08x, want 0xabcd1234", got)
	}

	w := packOneSplit(t, alu.OpPack64_2x32Split, nir.Uint(32, 0x11223344), nir.Uint(32, 0xAABBCCDD)).Uint(64)
	if w != 0xAABBCCDD11223344 {
		t.Errorf("pack_64_2x32_split = %#016x", w)
	}

	w = packOne(t, alu.OpPack64_4x16, []nir.Value{
		nir.Uint(16, 0x1111), nir.Uint(16, 0x2222), nir.Uint(16, 0x3333), nir.Uint(16, 0x4444),
	}).Uint(64)
	if w != 0x4444333322221111 {
		t.Errorf("pack_64_4x16 = %#016x", w)
	}
}

func TestUnpackLimbs(t *testing.T) {
	var d2 [2]nir.Value
	alu.Evaluate(alu.OpUnpack64_2x32, d2[:], 2, 0, []nir.Value{nir.Uint(64, 0xAABBCCDD11223344)})
	want := []uint64{0x11223344, 0xAABBCCDD}
	got := []uint64{d2[0].Uint(32), d2[1].Uint(32)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unpack_64_2x32 mismatch (-want +got):\n%s", diff)
	}

	var d4 [4]nir.Value
	alu.Evaluate(alu.OpUnpack64_4x16, d4[:], 4, 0, []nir.Value{nir.Uint(64, 0x4444333322221111)})
	want = []uint64{0x1111, 0x2222, 0x3333, 0x4444}
	got = []uint64{d4[0].Uint(16), d4[1].Uint(16), d4[2].Uint(16), d4[3].Uint(16)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unpack_64_4x16 mismatch (-want +got):\n%s", diff)
	}

	x := packOne(t, alu.OpUnpack32_2x16SplitX, []nir.Value{nir.Uint(32, 0xABCD1234)})
	y := packOne(t, alu.OpUnpack32_2x16SplitY, []nir.Value{nir.Uint(32, 0xABCD1234)})
	if x.Uint(16) != 0x1234 || y.Uint(16) != 0xABCD {
		t.Errorf("unpack_32_2x16_split = %#x, %#x", x.Uint(16), y.Uint(16))
	}
}
