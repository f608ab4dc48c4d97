package bfvm

import (
	"strings"
	"testing"
)

func TestOpOf(t *testing.T) {
	var symbols []string
	for b := range 256 {
		op := OpOf(byte(b))
		if op == OpInvalid {
			continue
		}
		if op.Symbol() != byte(b) {
			t.Fatalf("%q: got %q", b, op.Symbol())
		}
		symbols = append(symbols, op.String())
	}
	if got := strings.Join(symbols, ""); got != "+,-.<>[]" {
		t.Fatalf("got %q", got)
	}
	if OpInvalid.String() != "invalid" {
		t.Fatal()
	}
}

func TestNext(t *testing.T) {
	prog, err := NewProgram("", []byte("ab+ c\n[x]"))
	if err != nil {
		t.Fatal(err)
	}
	ins, ok := prog.Next(0)
	if !ok || ins.Op != OpIncrement || ins.Offset != 2 {
		t.Fatalf("got %v %v", ins, ok)
	}
	ins, ok = prog.Next(3)
	if !ok || ins.Op != OpLoopOpen || ins.Offset != 6 {
		t.Fatalf("got %v %v", ins, ok)
	}
	if _, ok := prog.Next(9); ok {
		t.Fatal("should be exhausted")
	}
	if _, ok := prog.Next(-1); ok {
		t.Fatal("negative offset should yield nothing")
	}
}

func TestScan(t *testing.T) {
	prog, err := NewProgram("", []byte("comment + > . trailing"))
	if err != nil {
		t.Fatal(err)
	}
	pc := 0
	var offsets []int
	var ops []string
	for ins := range prog.Scan(&pc) {
		if pc != ins.Offset {
			t.Fatalf("pc %d not at instruction %d", pc, ins.Offset)
		}
		offsets = append(offsets, ins.Offset)
		ops = append(ops, ins.Op.String())
		pc++
	}
	if strings.Join(ops, "") != "+>." {
		t.Fatalf("got %v", ops)
	}
	if offsets[0] != 8 || offsets[1] != 10 || offsets[2] != 12 {
		t.Fatalf("got %v", offsets)
	}
	if pc != prog.Len() {
		t.Fatalf("got pc %d", pc)
	}

	// not restartable: the position is shared
	for range prog.Scan(&pc) {
		t.Fatal("should not yield after exhaustion")
	}
}

func TestScanRedirect(t *testing.T) {
	prog, err := NewProgram("", []byte("+-+-"))
	if err != nil {
		t.Fatal(err)
	}
	pc := 0
	n := 0
	for ins := range prog.Scan(&pc) {
		n++
		// skip every other instruction
		pc = ins.Offset + 2
	}
	if n != 2 {
		t.Fatalf("got %d", n)
	}
}

func TestOps(t *testing.T) {
	prog, err := NewProgram("", []byte("x[y>z]w"))
	if err != nil {
		t.Fatal(err)
	}
	var sb strings.Builder
	for ins := range prog.Ops() {
		sb.WriteString(ins.Op.String())
	}
	if sb.String() != "[>]" {
		t.Fatalf("got %q", sb.String())
	}
}
