package bfvm

import "iter"

// Next returns the first recognized instruction at or after pc.
func (p *Program) Next(pc int) (Instruction, bool) {
	for ; pc >= 0 && pc < len(p.code); pc++ {
		if op := OpOf(p.code[pc]); op != OpInvalid {
			return Instruction{
				Op:     op,
				Offset: pc,
			}, true
		}
	}
	return Instruction{}, false
}

// Scan yields recognized instructions starting from *pc. Before each yield *pc is set to
// the instruction's offset; the consumer moves *pc to wherever execution continues and the
// scan resumes from there. The sequence ends when *pc reaches the end of the source. It shares its
// position with the caller, so ranging over it again continues instead of restarting.
func (p *Program) Scan(pc *int) iter.Seq[Instruction] {
	return func(yield func(Instruction) bool) {
		for {
			ins, ok := p.Next(*pc)
			if !ok {
				if *pc < len(p.code) {
					*pc = len(p.code)
				}
				return
			}
			*pc = ins.Offset
			if !yield(ins) {
				return
			}
		}
	}
}

// Ops yields every recognized instruction in source order, without following jumps.
func (p *Program) Ops() iter.Seq[Instruction] {
	return func(yield func(Instruction) bool) {
		for pc := 0; ; pc++ {
			ins, ok := p.Next(pc)
			if !ok {
				return
			}
			if !yield(ins) {
				return
			}
			pc = ins.Offset
		}
	}
}
