package bfgo

import (
	"bytes"
	"context"
	"fmt"
	"go/format"
	"io"

	"github.com/reusee/bf/bfvm"
)

// Emitter is the code-emitting back end. It writes one Go fragment per instruction, in
// scanner order, and never follows jumps.
type Emitter struct {
	Options bfvm.Options
	Out     io.Writer

	// position of the last emitted instruction, advanced incrementally
	pos bfvm.Pos
}

var _ bfvm.Backend = new(Emitter)

func (e *Emitter) Exec(prog *bfvm.Program, ins bfvm.Instruction) (int, error) {
	var err error
	switch ins.Op {

	case bfvm.OpIncrement:
		_, err = io.WriteString(e.Out, "tape[ptr]++\n")

	case bfvm.OpDecrement:
		_, err = io.WriteString(e.Out, "tape[ptr]--\n")

	case bfvm.OpRight:
		pos := e.posAt(prog, ins.Offset)
		_, err = fmt.Fprintf(e.Out, "right(%d, %d)\n", pos.Line, pos.Column)

	case bfvm.OpLeft:
		pos := e.posAt(prog, ins.Offset)
		_, err = fmt.Fprintf(e.Out, "left(%d, %d)\n", pos.Line, pos.Column)

	case bfvm.OpOutput:
		_, err = io.WriteString(e.Out, "output(tape[ptr])\n")

	case bfvm.OpInput:
		pos := e.posAt(prog, ins.Offset)
		_, err = fmt.Fprintf(e.Out, "tape[ptr] = input(%d, %d)\n", pos.Line, pos.Column)

	case bfvm.OpLoopOpen:
		target, ok := prog.Jump(ins.Offset)
		if !ok {
			return ins.Offset, bfvm.ErrNoJumpTarget
		}
		label := LoopLabel(target)
		_, err = fmt.Fprintf(e.Out, "%s:\nfor {\nif tape[ptr] == 0 {\nbreak %s\n}\n", label, label)

	case bfvm.OpLoopClose:
		_, err = io.WriteString(e.Out, "}\n")

	default:
		return ins.Offset, fmt.Errorf("invalid op %d", ins.Op)
	}
	if err != nil {
		return ins.Offset, fmt.Errorf("emit: %w", err)
	}
	return ins.Offset + 1, nil
}

func (e *Emitter) posAt(prog *bfvm.Program, offset int) bfvm.Pos {
	e.pos = prog.PosFrom(e.pos, offset)
	return e.pos
}

// LoopLabel names the loop whose closing bracket is at offset closeOffset.
func LoopLabel(closeOffset int) string {
	return fmt.Sprintf("L%d", closeOffset)
}

// Emit translates prog into a gofmt-formatted Go main package.
func Emit(ctx context.Context, prog *bfvm.Program, options bfvm.Options) ([]byte, error) {
	if options.TapeSize <= 0 {
		options.TapeSize = bfvm.DefaultTapeSize
	}
	buf := new(bytes.Buffer)
	if err := writePrologue(buf, prog, options); err != nil {
		return nil, err
	}
	emitter := &Emitter{
		Options: options,
		Out:     buf,
	}
	pc := 0
	if err := bfvm.Drive(ctx, prog, &pc, emitter); err != nil {
		return nil, err
	}
	buf.WriteString("}\n")
	if err := writeHelpers(buf, options); err != nil {
		return nil, err
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}
	return src, nil
}
