package bfvm

import (
	"crypto/sha256"
	"maps"
	"slices"
)

// Program is an immutable instruction stream with its bracket pairs resolved.
type Program struct {
	Name string

	code []byte
	sum  [sha256.Size]byte
	// both directions of every matched pair; bracket offsets only
	jumps map[int]int
}

// NewProgram resolves bracket pairs. A program with an unmatched bracket is rejected
// before anything can run it.
func NewProgram(name string, code []byte) (*Program, error) {
	code = slices.Clone(code)
	jumps := make(map[int]int)
	var pending []int
	for i, b := range code {
		switch OpOf(b) {
		case OpLoopOpen:
			pending = append(pending, i)
		case OpLoopClose:
			if len(pending) == 0 {
				return nil, withPos(ErrUnmatchedClose, name, code, i)
			}
			open := pending[len(pending)-1]
			pending = pending[:len(pending)-1]
			jumps[open] = i
			jumps[i] = open
		}
	}
	if len(pending) > 0 {
		return nil, withPos(ErrUnmatchedOpen, name, code, pending[len(pending)-1])
	}
	return &Program{
		Name:  name,
		code:  code,
		sum:   sha256.Sum256(code),
		jumps: jumps,
	}, nil
}

// Jump returns the offset of the bracket matching the one at offset.
func (p *Program) Jump(offset int) (int, bool) {
	target, ok := p.jumps[offset]
	return target, ok
}

// JumpTable returns a copy of the resolved bracket pairs.
func (p *Program) JumpTable() map[int]int {
	return maps.Clone(p.jumps)
}

// Code returns a copy of the source.
func (p *Program) Code() []byte {
	return slices.Clone(p.code)
}

// Len is the length of the source in bytes.
func (p *Program) Len() int {
	return len(p.code)
}

func (p *Program) Pos(offset int) Pos {
	return posOf(p.code, offset)
}

// PosFrom returns the position of offset, counting forward from an earlier position of the
// same program.
func (p *Program) PosFrom(from Pos, offset int) Pos {
	if from.Line == 0 || offset < from.Offset || from.Offset > len(p.code) {
		return p.Pos(offset)
	}
	return from.advance(p.code, offset)
}

func (p *Program) errorAt(err error, offset int) error {
	return withPos(err, p.Name, p.code, offset)
}
