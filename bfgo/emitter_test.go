package bfgo

import (
	"context"
	"errors"
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/reusee/bf/bfvm"
)

func emit(t *testing.T, src string, options bfvm.Options) string {
	t.Helper()
	prog, err := bfvm.NewProgram(t.Name(), []byte(src))
	if err != nil {
		t.Fatal(err)
	}
	out, err := Emit(context.Background(), prog, options)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := parser.ParseFile(token.NewFileSet(), "main.go", out, 0); err != nil {
		t.Fatalf("emitted source does not parse: %v\n%s", err, out)
	}
	return string(out)
}

func TestEmitInstructions(t *testing.T) {
	src := emit(t, "+-\n><.,", bfvm.DefaultOptions())
	for _, expected := range []string{
		"// Code generated by bfc from TestEmitInstructions. DO NOT EDIT.",
		"package main",
		"tapeSize = 30000",
		"tape[ptr]++",
		"tape[ptr]--",
		"right(2, 1)",
		"left(2, 2)",
		"output(tape[ptr])",
		"tape[ptr] = input(2, 4)",
	} {
		if !strings.Contains(src, expected) {
			t.Fatalf("missing %q in\n%s", expected, src)
		}
	}
}

func TestEmitControlCharactersInName(t *testing.T) {
	prog, err := bfvm.NewProgram("a\nb.bf", []byte("+."))
	if err != nil {
		t.Fatal(err)
	}
	out, err := Emit(context.Background(), prog, bfvm.DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	src := string(out)
	if !strings.HasPrefix(src, "// Code generated by bfc from a?b.bf. DO NOT EDIT.\n") {
		t.Fatalf("got\n%s", src)
	}
	// the real name survives in the diagnostics
	if !strings.Contains(src, `"a\nb.bf"`) {
		t.Fatalf("got\n%s", src)
	}
}

func TestEmitOrder(t *testing.T) {
	src := emit(t, "+>-", bfvm.DefaultOptions())
	inc := strings.Index(src, "tape[ptr]++")
	right := strings.Index(src, "right(1, 2)")
	dec := strings.Index(src, "tape[ptr]--")
	if !(inc < right && right < dec) {
		t.Fatalf("out of order:\n%s", src)
	}
}

func TestLoopLabels(t *testing.T) {
	src := emit(t, "+[>+[-]<-]", bfvm.DefaultOptions())
	// outer loop closes at 9, inner at 6
	for _, label := range []string{"L9", "L6"} {
		if strings.Count(src, label+":") != 1 {
			t.Fatalf("label %s:\n%s", label, src)
		}
		if !strings.Contains(src, "break "+label) {
			t.Fatalf("break %s:\n%s", label, src)
		}
	}
	if strings.Index(src, "L9:") > strings.Index(src, "L6:") {
		t.Fatalf("inner loop before outer:\n%s", src)
	}
	if LoopLabel(42) != "L42" {
		t.Fatal()
	}
}

func TestEmitOptions(t *testing.T) {
	src := emit(t, ">", bfvm.DefaultOptions())
	if !strings.Contains(src, bfvm.ErrCursorOverflow.Error()) {
		t.Fatalf("no bounds check:\n%s", src)
	}
	if !strings.Contains(src, `"strconv"`) {
		t.Fatalf("no ascii rendering:\n%s", src)
	}

	src = emit(t, ">", bfvm.Options{
		TapeSize: 16,
		Bounds:   bfvm.BoundsWrap,
		Output:   bfvm.OutputRaw,
	})
	if !strings.Contains(src, "tapeSize = 16") {
		t.Fatalf("tape size:\n%s", src)
	}
	if !strings.Contains(src, "% tapeSize") {
		t.Fatalf("no wrapping:\n%s", src)
	}
	if strings.Contains(src, bfvm.ErrCursorOverflow.Error()) {
		t.Fatalf("unexpected bounds check:\n%s", src)
	}
	if strings.Contains(src, `"strconv"`) {
		t.Fatalf("unexpected strconv import:\n%s", src)
	}

	// zero tape size falls back to the default
	src = emit(t, "", bfvm.Options{})
	if !strings.Contains(src, "tapeSize = 30000") {
		t.Fatalf("tape size:\n%s", src)
	}
}

func TestEmitCancel(t *testing.T) {
	prog, err := bfvm.NewProgram("long.bf", []byte(strings.Repeat("+", 1<<13)))
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Emit(ctx, prog, bfvm.DefaultOptions())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v", err)
	}
}

func TestEmitterInvalidOp(t *testing.T) {
	e := &Emitter{
		Out: new(strings.Builder),
	}
	prog, err := bfvm.NewProgram("", nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := e.Exec(prog, bfvm.Instruction{Op: bfvm.OpInvalid}); err == nil {
		t.Fatal("expected error")
	}
}

func TestBinaryPath(t *testing.T) {
	for path, expected := range map[string]string{
		"hello.go":     "hello",
		"dir/hello.go": "dir/hello",
		"hello":        "hello.bin",
	} {
		if got := BinaryPath(path); got != expected {
			t.Fatalf("%s: got %s", path, got)
		}
	}
}
