package bfvm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/reusee/bf/logs"
)

// Machine is the interpreting back end. It owns all state of one run.
type Machine struct {
	Program *Program
	Tape    *Tape
	PC      int
	Steps   int
	Output  OutputMode
	In      io.Reader
	Out     io.Writer
	Logger  logs.Logger

	outBuf []byte
}

var _ Backend = new(Machine)

// NewMachine returns a machine at the start of prog. A nil in behaves as empty input and
// a nil out discards output.
func NewMachine(prog *Program, options Options, in io.Reader, out io.Writer) *Machine {
	if in == nil {
		in = strings.NewReader("")
	}
	if out == nil {
		out = io.Discard
	}
	return &Machine{
		Program: prog,
		Tape:    NewTape(options.TapeSize, options.Bounds),
		Output:  options.Output,
		In:      in,
		Out:     out,
		Logger:  slog.New(slog.DiscardHandler),
	}
}

func (m *Machine) Exec(prog *Program, ins Instruction) (int, error) {
	pc := ins.Offset
	switch ins.Op {

	case OpIncrement:
		m.Tape.Increment()

	case OpDecrement:
		m.Tape.Decrement()

	case OpRight:
		if err := m.Tape.Right(); err != nil {
			return pc, err
		}

	case OpLeft:
		if err := m.Tape.Left(); err != nil {
			return pc, err
		}

	case OpOutput:
		if err := m.output(); err != nil {
			return pc, err
		}

	case OpInput:
		if err := m.input(); err != nil {
			return pc, err
		}

	case OpLoopOpen:
		target, ok := prog.Jump(pc)
		if !ok {
			return pc, ErrNoJumpTarget
		}
		m.Steps++
		if m.Tape.Get() == 0 {
			return target + 1, nil
		}
		return pc + 1, nil

	case OpLoopClose:
		// back to the opener, which tests the cell again
		target, ok := prog.Jump(pc)
		if !ok {
			return pc, ErrNoJumpTarget
		}
		m.Steps++
		return target, nil

	default:
		return pc, fmt.Errorf("invalid op %d", ins.Op)
	}

	m.Steps++
	return pc + 1, nil
}

func (m *Machine) output() error {
	m.outBuf = m.Output.Append(m.outBuf[:0], m.Tape.Get())
	if _, err := m.Out.Write(m.outBuf); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	if flusher, ok := m.Out.(interface{ Flush() error }); ok {
		if err := flusher.Flush(); err != nil {
			return fmt.Errorf("flush output: %w", err)
		}
	}
	return nil
}

func (m *Machine) input() error {
	var buf [1]byte
	if _, err := io.ReadFull(m.In, buf[:]); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEndOfInput
		}
		return fmt.Errorf("read input: %w", err)
	}
	m.Tape.Set(buf[0])
	return nil
}

// Run executes until the end of the program, a failing instruction, or cancellation of ctx.
func (m *Machine) Run(ctx context.Context) error {
	m.Logger.DebugContext(ctx, "run",
		"program", m.Program.Name,
		"pc", m.PC,
	)
	err := Drive(ctx, m.Program, &m.PC, m)
	if err != nil {
		m.Logger.DebugContext(ctx, "run failed",
			"program", m.Program.Name,
			"pc", m.PC,
			"cursor", m.Tape.Cursor,
			"steps", m.Steps,
			"error", err,
		)
		return err
	}
	m.Logger.DebugContext(ctx, "run finished",
		"program", m.Program.Name,
		"cursor", m.Tape.Cursor,
		"steps", m.Steps,
	)
	return nil
}

// Step executes exactly one instruction. done reports whether the program has no
// instructions left.
func (m *Machine) Step() (done bool, err error) {
	ins, ok := m.Program.Next(m.PC)
	if !ok {
		m.PC = max(m.PC, m.Program.Len())
		return true, nil
	}
	m.PC = ins.Offset
	next, err := m.Exec(m.Program, ins)
	if err != nil {
		return false, m.Program.errorAt(err, ins.Offset)
	}
	m.PC = next
	return m.Done(), nil
}

// Done reports whether the program counter is past the last instruction.
func (m *Machine) Done() bool {
	_, more := m.Program.Next(m.PC)
	return !more
}

// Load replaces the program and rewinds the program counter, keeping the tape.
func (m *Machine) Load(prog *Program) {
	m.Program = prog
	m.PC = 0
}
