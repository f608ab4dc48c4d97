package bfvm

import "context"

// Backend consumes the instruction stream of a program. Exec handles one instruction and
// returns the offset the scan continues from.
type Backend interface {
	Exec(prog *Program, ins Instruction) (next int, err error)
}

// context cancellation is polled once per this many instructions
const cancelCheckInterval = 1 << 12

// Drive feeds prog to backend from *pc until the instruction stream is exhausted or an
// instruction fails. *pc is left at the failing instruction or at the end of the program.
func Drive(ctx context.Context, prog *Program, pc *int, backend Backend) error {
	n := 0
	for ins := range prog.Scan(pc) {
		n++
		if n%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		next, err := backend.Exec(prog, ins)
		if err != nil {
			return prog.errorAt(err, ins.Offset)
		}
		*pc = next
	}
	return nil
}
