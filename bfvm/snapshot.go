package bfvm

import (
	"crypto/sha256"
	"encoding/gob"
	"fmt"
	"io"
)

type snapshot struct {
	Program string
	Sum     [sha256.Size]byte
	Cells   []byte
	Cursor  int
	Bounds  BoundsPolicy
	PC      int
	Steps   int
}

// Snapshot writes the tape and counters. The program itself is not included.
func (m *Machine) Snapshot(w io.Writer) error {
	return gob.NewEncoder(w).Encode(snapshot{
		Program: m.Program.Name,
		Sum:     m.Program.sum,
		Cells:   m.Tape.Cells,
		Cursor:  m.Tape.Cursor,
		Bounds:  m.Tape.Bounds,
		PC:      m.PC,
		Steps:   m.Steps,
	})
}

// Restore loads state written by Snapshot of a machine running the same program, with the
// same name and source.
func (m *Machine) Restore(r io.Reader) error {
	var s snapshot
	if err := gob.NewDecoder(r).Decode(&s); err != nil {
		return fmt.Errorf("%w: %w", ErrBadSnapshot, err)
	}
	if s.Program != m.Program.Name {
		return fmt.Errorf("%w: taken from program %q, not %q", ErrBadSnapshot, s.Program, m.Program.Name)
	}
	if s.Sum != m.Program.sum {
		return fmt.Errorf("%w: program %q has changed since the snapshot", ErrBadSnapshot, s.Program)
	}
	if len(s.Cells) == 0 || s.Cursor < 0 || s.Cursor >= len(s.Cells) {
		return fmt.Errorf("%w: cursor %d outside tape of %d cells", ErrBadSnapshot, s.Cursor, len(s.Cells))
	}
	if s.PC < 0 || s.PC > m.Program.Len() {
		return fmt.Errorf("%w: program counter %d outside program", ErrBadSnapshot, s.PC)
	}
	m.Tape = &Tape{
		Cells:  s.Cells,
		Cursor: s.Cursor,
		Bounds: s.Bounds,
	}
	m.PC = s.PC
	m.Steps = s.Steps
	return nil
}
