package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/chzyer/readline"
	"github.com/reusee/bf/bfvm"
)

const replName = "<repl>"

func runREPL(ctx context.Context, createMachine bfvm.CreateMachine) error {
	var historyFile string
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = filepath.Join(home, ".bfi_history")
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      "> ",
		HistoryFile: historyFile,
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	s, err := newSession(createMachine, rl.Stdout())
	if err != nil {
		return err
	}
	for {
		line, err := rl.Readline()
		if err != nil { // Ctrl-C or Ctrl-D
			break
		}
		more, err := s.handle(ctx, line)
		if err != nil {
			fmt.Fprintf(rl.Stderr(), "error: %v\n", err)
		}
		if more {
			rl.SetPrompt("... ")
		} else {
			rl.SetPrompt("> ")
		}
	}
	return nil
}

// session accumulates every accepted line into one program, so loops may span lines and
// error positions count lines from the start of the session.
type session struct {
	machine *bfvm.Machine
	input   *bytes.Buffer
	out     *trailingWriter
	code    []byte
	pending []byte
}

func newSession(createMachine bfvm.CreateMachine, out io.Writer) (*session, error) {
	prog, err := bfvm.NewProgram(replName, nil)
	if err != nil {
		return nil, err
	}
	s := &session{
		input: new(bytes.Buffer),
		out: &trailingWriter{
			w: out,
		},
	}
	s.machine = createMachine(prog, s.input, s.out)
	return s, nil
}

// handle reports more when line leaves a loop open.
func (s *session) handle(ctx context.Context, line string) (more bool, err error) {
	if cmd, ok := strings.CutPrefix(strings.TrimSpace(line), ":"); ok && len(s.pending) == 0 {
		return false, s.command(cmd)
	}

	code := slices.Concat(s.code, s.pending, []byte(line), []byte("\n"))
	prog, err := bfvm.NewProgram(replName, code)
	if errors.Is(err, bfvm.ErrUnmatchedOpen) {
		s.pending = code[len(s.code):]
		return true, nil
	}
	s.pending = nil
	if err != nil {
		return false, err
	}

	s.code = code
	s.machine.Program = prog
	s.out.last = '\n'
	defer s.out.endLine()
	if err := s.machine.Run(ctx); err != nil {
		// the rest of a failed line is dropped
		s.machine.PC = len(code)
		return false, err
	}
	return false, nil
}

func (s *session) command(cmd string) error {
	name, arg, _ := strings.Cut(cmd, " ")
	switch name {

	case "tape":
		fmt.Fprintln(s.out.w, formatTape(s.machine.Tape))

	case "input":
		s.input.WriteString(arg)

	case "steps":
		fmt.Fprintln(s.out.w, s.machine.Steps)

	case "reset":
		tape := s.machine.Tape
		s.machine.Tape = bfvm.NewTape(len(tape.Cells), tape.Bounds)
		prog, err := bfvm.NewProgram(replName, nil)
		if err != nil {
			return err
		}
		s.machine.Load(prog)
		s.machine.Steps = 0
		s.input.Reset()
		s.code = nil

	case "help":
		fmt.Fprint(s.out.w, `:tape          show the tape up to the last used cell, cursor in brackets
:input TEXT    queue TEXT for ,
:steps         show the number of executed instructions
:reset         clear the tape, the queued input and the session
`)

	default:
		return fmt.Errorf("unknown command: %s", name)
	}
	return nil
}

func formatTape(tape *bfvm.Tape) string {
	end := tape.Cursor + 1
	for i := len(tape.Cells) - 1; i >= end; i-- {
		if tape.Cells[i] != 0 {
			end = i + 1
			break
		}
	}
	var sb strings.Builder
	for i, cell := range tape.Cells[:end] {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if i == tape.Cursor {
			fmt.Fprintf(&sb, "[%d]", cell)
		} else {
			fmt.Fprintf(&sb, "%d", cell)
		}
	}
	return sb.String()
}

// trailingWriter remembers the last byte written so prompts start on a fresh line.
type trailingWriter struct {
	w    io.Writer
	last byte
}

func (t *trailingWriter) Write(p []byte) (int, error) {
	if len(p) > 0 {
		t.last = p[len(p)-1]
	}
	return t.w.Write(p)
}

func (t *trailingWriter) endLine() {
	if t.last != '\n' {
		t.w.Write([]byte("\n"))
		t.last = '\n'
	}
}
