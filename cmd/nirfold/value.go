package main

import (
	"fmt"
	"strconv"
	"strings"

	nir "github.com/xandfury/external-mesa3d"
	"github.com/xandfury/external-mesa3d/alu"
	"github.com/xandfury/external-mesa3d/errors"
)

// parseVector turns a comma-separated operand string into lane values of
// the given type. Integer lanes accept 0x/0b prefixes; boolean lanes accept
// true/false/1/0.
func parseVector(text string, srcIdx int, t alu.Type, bits, need int) ([]nir.Value, error) {
	parts := strings.Split(text, ",")
	if len(parts) < need {
		return nil, errors.New(errors.PhaseParse, errors.KindInvalidInput).
			Path(fmt.Sprintf("src%d", srcIdx)).
			Detail("got %d lanes, need %d", len(parts), need).
			Build()
	}

	size := t.Size
	if size == 0 {
		size = bits
	}

	out := make([]nir.Value, need)
	for i := 0; i < need; i++ {
		v, err := parseLane(strings.TrimSpace(parts[i]), t.Class, size)
		if err != nil {
			return nil, errors.InvalidNumber(
				[]string{fmt.Sprintf("src%d", srcIdx), fmt.Sprintf("lane%d", i)},
				parts[i], err)
		}
		out[i] = v
	}
	return out, nil
}

func parseLane(text string, class alu.Class, size int) (nir.Value, error) {
	switch class {
	case alu.ClassFloat:
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nir.Value{}, err
		}
		return storeFloatLane(f, size), nil

	case alu.ClassInt:
		v, err := strconv.ParseInt(text, 0, 64)
		if err != nil {
			// Accept the unsigned spelling of the same bit pattern.
			u, uerr := strconv.ParseUint(text, 0, 64)
			if uerr != nil {
				return nir.Value{}, err
			}
			return nir.Uint(size, u), nil
		}
		return nir.Int(size, v), nil

	case alu.ClassUint:
		u, err := strconv.ParseUint(text, 0, 64)
		if err != nil {
			return nir.Value{}, err
		}
		return nir.Uint(size, u), nil

	default:
		switch text {
		case "true", "1":
			return nir.Bool(size, true), nil
		case "false", "0":
			return nir.Bool(size, false), nil
		}
		return nir.Value{}, fmt.Errorf("boolean lane must be true/false/1/0")
	}
}

// storeFloatLane narrows a float64 to a float lane, going through the
// evaluator's own conversion op for the 16-bit case.
func storeFloatLane(f float64, size int) nir.Value {
	switch size {
	case 16:
		var dst [1]nir.Value
		alu.Evaluate(alu.OpF2F16, dst[:], 1, 64, []nir.Value{nir.Float64(f)})
		return dst[0]
	case 32:
		return nir.Float32(float32(f))
	default:
		return nir.Float64(f)
	}
}

func formatValue(v nir.Value, t alu.Type, bits int) string {
	size := t.Size
	if size == 0 {
		size = bits
	}

	switch t.Class {
	case alu.ClassFloat:
		switch size {
		case 16:
			var dst [1]nir.Value
			alu.Evaluate(alu.OpF2F32, dst[:], 1, 16, []nir.Value{v})
			return strconv.FormatFloat(float64(dst[0].Float32()), 'g', -1, 32)
		case 32:
			return strconv.FormatFloat(float64(v.Float32()), 'g', -1, 32)
		default:
			return strconv.FormatFloat(v.Float64(), 'g', -1, 64)
		}

	case alu.ClassInt:
		return strconv.FormatInt(v.Int(size), 10)

	case alu.ClassUint:
		u := v.Uint(size)
		if size > 8 {
			return fmt.Sprintf("%d (%#x)", u, u)
		}
		return strconv.FormatUint(u, 10)

	default:
		if v.IsTrue() {
			return "true"
		}
		return "false"
	}
}
