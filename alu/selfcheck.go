package alu

import (
	"fmt"

	"go.uber.org/multierr"
)

// SelfCheck validates the catalog against the handler table and reports
// every inconsistency it finds, not just the first. A non-nil result means
// the build is broken: an opcode exists without metadata, metadata exists
// without a semantics routine, or an entry's shape is nonsense.
func SelfCheck() error {
	var err error
	seen := make(map[string]Op, numOps)

	for op := Op(0); op < numOps; op++ {
		info := &catalog[op]

		if info.Name == "" {
			err = multierr.Append(err, fmt.Errorf("op %d: no catalog entry", int(op)))
			continue
		}
		if prev, dup := seen[info.Name]; dup {
			err = multierr.Append(err, fmt.Errorf("%s: name shared by ops %d and %d", info.Name, int(prev), int(op)))
		}
		seen[info.Name] = op

		if handlers[op] == nil {
			err = multierr.Append(err, fmt.Errorf("%s: no handler registered", info.Name))
		}
		if info.NumSrcs < 1 || info.NumSrcs > 4 {
			err = multierr.Append(err, fmt.Errorf("%s: arity %d outside [1,4]", info.Name, info.NumSrcs))
		}
		if info.OutLen < 0 || info.OutLen > 4 {
			err = multierr.Append(err, fmt.Errorf("%s: output length %d outside [0,4]", info.Name, info.OutLen))
		}
		for i := 0; i < info.NumSrcs; i++ {
			if l := info.SrcLen[i]; l < 0 || l > 4 {
				err = multierr.Append(err, fmt.Errorf("%s: operand %d length %d outside [0,4]", info.Name, i, l))
			}
		}

		// A width mask only makes sense when some type needs resolving, and
		// a fully sized op must not leave any type unresolved.
		unsized := !info.Out.Sized()
		for i := 0; i < info.NumSrcs; i++ {
			unsized = unsized || !info.Src[i].Sized()
		}
		if info.Widths == 0 && unsized {
			err = multierr.Append(err, fmt.Errorf("%s: unsized type but no width mask", info.Name))
		}
		if info.Widths != 0 && !unsized {
			err = multierr.Append(err, fmt.Errorf("%s: width mask on a fully sized op", info.Name))
		}
	}
	return err
}
