// Command nirfold evaluates ALU opcodes over constant operands from the
// command line, for poking at individual operations and for checking what
// a constant-folding pass would produce.
//
//	nirfold -op fadd -bits 32 2.5,-1.0 0.5,1.0
//	nirfold -op pack_snorm_4x8 1.0,-1.0,0.0,0.5
//	nirfold -list
//	nirfold -i   (interactive mode)
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	nir "github.com/xandfury/external-mesa3d"
	"github.com/xandfury/external-mesa3d/alu"
	"github.com/xandfury/external-mesa3d/errors"
)

func main() {
	var (
		opName      = flag.String("op", "", "Opcode to evaluate")
		bits        = flag.Int("bits", 32, "Bit size for the opcode's unsized types (ignored for fully sized ops)")
		lanes       = flag.Int("lanes", 0, "Output lane count (default: inferred from operands)")
		list        = flag.Bool("list", false, "List the opcode catalog and exit")
		lint        = flag.Bool("lint", false, "Run the catalog self-check and exit")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Verbose evaluation logging")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		alu.SetLogger(logger)
		alu.SetDebug(true)
	}

	switch {
	case *lint:
		if err := alu.SelfCheck(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("catalog ok: %d opcodes\n", alu.NumOps)
		return

	case *list:
		listCatalog()
		return

	case *interactive:
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode needs a terminal")
			os.Exit(1)
		}
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *opName == "" {
		fmt.Fprintln(os.Stderr, "Usage: nirfold -op <name> [-bits n] [-lanes n] <operand> [<operand> ...]")
		fmt.Fprintln(os.Stderr, "       nirfold -list")
		fmt.Fprintln(os.Stderr, "       nirfold -lint")
		fmt.Fprintln(os.Stderr, "       nirfold -i  (interactive mode)")
		fmt.Fprintln(os.Stderr, "Operands are comma-separated lane values, one argument per operand.")
		os.Exit(1)
	}

	if err := run(*opName, *bits, *lanes, flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(opName string, bits, lanes int, operands []string) error {
	out, err := evaluate(opName, bits, lanes, operands)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

// evaluate validates a textual request against the catalog, runs it, and
// formats the result. Validation happens up front so bad user input surfaces
// as an error instead of tripping the evaluator's contract.
func evaluate(opName string, bits, lanes int, operands []string) (string, error) {
	op, ok := alu.Lookup(opName)
	if !ok {
		return "", errors.UnknownOp(opName)
	}
	info := op.Info()

	if len(operands) != info.NumSrcs {
		return "", errors.ArityMismatch(info.Name, len(operands), info.NumSrcs)
	}
	if info.Widths == 0 {
		bits = 0
	} else if !info.Widths.Has(bits) {
		return "", errors.UnsupportedWidth(info.Name, bits)
	}

	// The lane count defaults to the opcode's fixed output shape, then to
	// the length of the first per-lane operand.
	if lanes == 0 {
		lanes = info.OutLen
	}
	if lanes == 0 {
		for i := 0; i < info.NumSrcs; i++ {
			if info.SrcLen[i] == 0 {
				lanes = len(strings.Split(operands[i], ","))
				break
			}
		}
	}
	if lanes == 0 {
		lanes = 1
	}
	if lanes < 1 || lanes > 4 {
		return "", errors.LaneCount(info.Name, lanes, "lane count must be in [1,4]")
	}
	if info.OutLen != 0 && lanes != info.OutLen {
		return "", errors.LaneCount(info.Name, lanes,
			fmt.Sprintf("op produces exactly %d lanes", info.OutLen))
	}

	src := make([][]nir.Value, info.NumSrcs)
	for i := 0; i < info.NumSrcs; i++ {
		need := info.SrcLen[i]
		if need == 0 {
			need = lanes
		}
		vals, err := parseVector(operands[i], i, info.Src[i], bits, need)
		if err != nil {
			return "", err
		}
		src[i] = vals
	}

	dst := make([]nir.Value, lanes)
	alu.Evaluate(op, dst, lanes, bits, src...)

	out := make([]string, lanes)
	for i, v := range dst {
		out[i] = formatValue(v, info.Out, bits)
	}
	return fmt.Sprintf("%s = [%s]", info.Name, strings.Join(out, ", ")), nil
}

func listCatalog() {
	fmt.Printf("%-26s %-6s %-8s %s\n", "NAME", "SRCS", "WIDTHS", "SHAPE")
	for _, op := range alu.Ops() {
		info := op.Info()

		widths := "sized"
		if info.Widths != 0 {
			var parts []string
			for _, s := range info.Widths.Sizes() {
				parts = append(parts, fmt.Sprint(s))
			}
			widths = strings.Join(parts, "/")
		}

		shape := "per-lane"
		if info.OutLen != 0 {
			var in []string
			for i := 0; i < info.NumSrcs; i++ {
				in = append(in, fmt.Sprint(max(info.SrcLen[i], 1)))
			}
			shape = fmt.Sprintf("%s -> %d", strings.Join(in, "+"), info.OutLen)
		} else if info.SrcLen[0] != 0 {
			shape = fmt.Sprintf("%d-lane reduce", info.SrcLen[0])
		}

		fmt.Printf("%-26s %-6d %-8s %s\n", info.Name, info.NumSrcs, widths, shape)
	}
}
