package cmds

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestExecutor(t *testing.T) {
	executor := NewExecutor()

	var a int
	executor.Define("+a", Func(func() {
		a = 42
	}))
	executor.Define("a", Func(func(i int) {
		a = i
	}))

	if err := executor.Execute([]string{"+a"}); err != nil {
		t.Fatal(err)
	}
	if a != 42 {
		t.Fatal()
	}

	if err := executor.Execute([]string{"a", "1"}); err != nil {
		t.Fatal(err)
	}
	if a != 1 {
		t.Fatal()
	}

	err := executor.Execute([]string{"foo"})
	if err == nil || !strings.Contains(err.Error(), "unknown command: foo") {
		t.Fatalf("got %v", err)
	}

	err = executor.Execute([]string{"a", "x"})
	if err == nil || !strings.Contains(err.Error(), "convert x to int") {
		t.Fatalf("got %v", err)
	}

	err = executor.Execute([]string{"a"})
	if err == nil || !strings.Contains(err.Error(), "expecting argument") {
		t.Fatalf("got %v", err)
	}
}

func TestCommandError(t *testing.T) {
	executor := NewExecutor()
	errFoo := errors.New("foo")
	executor.Define("fail", Func(func() error {
		return errFoo
	}))
	executor.Define("ok", Func(func() error {
		return nil
	}))
	if err := executor.Execute([]string{"ok"}); err != nil {
		t.Fatal(err)
	}
	if err := executor.Execute([]string{"fail"}); !errors.Is(err, errFoo) {
		t.Fatalf("got %v", err)
	}
}

func TestPositional(t *testing.T) {
	executor := NewExecutor()
	var debug bool
	executor.Define("-debug", Func(func() {
		debug = true
	}))
	args := executor.Positional()

	if err := executor.Execute([]string{
		"in.bf", "-debug", "out.go",
	}); err != nil {
		t.Fatal(err)
	}
	if !debug {
		t.Fatal()
	}
	if strings.Join(*args, ",") != "in.bf,out.go" {
		t.Fatalf("got %v", *args)
	}

	err := executor.Execute([]string{"-nope"})
	if err == nil || !strings.Contains(err.Error(), "unknown command: -nope") {
		t.Fatalf("got %v", err)
	}
}

func TestSubCommands(t *testing.T) {
	executor := NewExecutor()
	var bar, baz int
	executor.Define("foo", Sub(map[string]*Command{
		"bar": Func(func() {
			bar = 1
		}),
		"baz": Func(func(i int) {
			baz = i
		}),
	}))

	if err := executor.Execute([]string{
		"foo",
		"bar",
		"baz", "42",
	}); err != nil {
		t.Fatal(err)
	}
	if bar != 1 {
		t.Fatal()
	}
	if baz != 42 {
		t.Fatal()
	}
}

func TestDuplicatedSubCommand(t *testing.T) {
	executor := NewExecutor()
	executor.Define("foo", Sub(map[string]*Command{
		"a": nil,
	}))
	executor.Define("bar", Sub(map[string]*Command{
		"a": nil,
	}))
	err := executor.Execute([]string{"foo", "bar"})
	if err == nil || !strings.Contains(err.Error(), "duplicated sub command: bar a") {
		t.Fatalf("got %v", err)
	}
}

func TestOptionalArgument(t *testing.T) {
	executor := NewExecutor()
	var n int
	var s string
	executor.Define("foo", Func(func(arg *int, arg2 *string) {
		n = *arg
		s = *arg2
	}))

	if err := executor.Execute([]string{"foo", "42", "foo"}); err != nil {
		t.Fatal(err)
	}
	if n != 42 || s != "foo" {
		t.Fatalf("got %v %q", n, s)
	}

	if err := executor.Execute([]string{"foo", "99"}); err != nil {
		t.Fatal(err)
	}
	if n != 99 || s != "" {
		t.Fatalf("got %v %q", n, s)
	}

	if err := executor.Execute([]string{"foo"}); err != nil {
		t.Fatal(err)
	}
	if n != 0 || s != "" {
		t.Fatalf("got %v %q", n, s)
	}
}

func TestUsage(t *testing.T) {
	executor := NewExecutor()
	buf := new(bytes.Buffer)
	executor.Output = buf
	executor.Define("-tape-size", Func(func(int) {}).Desc("number of cells"))
	executor.Define("repl", Sub(map[string]*Command{
		"-prompt": Func(func(string) {}).Desc("prompt text"),
	}).Desc("interactive shell"))
	executor.PrintUsage()

	out := buf.String()
	for _, expected := range []string{
		"-h (help, -help, --help)\tprint this usage",
		"-tape-size\tnumber of cells",
		"repl\tinteractive shell",
		"  -prompt\tprompt text",
	} {
		if !strings.Contains(out, expected) {
			t.Fatalf("missing %q in:\n%s", expected, out)
		}
	}
	if strings.Count(out, "print this usage") != 1 {
		t.Fatalf("aliases printed more than once:\n%s", out)
	}
}
