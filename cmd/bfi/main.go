package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/reusee/bf/bfconfigs"
	"github.com/reusee/bf/bfvm"
	"github.com/reusee/bf/cmds"
	"github.com/reusee/bf/debugs"
	"github.com/reusee/bf/logs"
	"github.com/reusee/bf/modes"
	"github.com/reusee/dscope"
)

var (
	doREPL       = cmds.Switch("repl", "start an interactive session")
	doDump       = cmds.Switch("-dump", "print the recognized instructions and exit")
	doTap        = cmds.Switch("-tap", "start a starlark session over the final machine state")
	inspectExprs = cmds.Collect[string]("-inspect", "print a starlark expression over the final machine state")
	snapshotFile = cmds.Var[string]("-snapshot", "write the final machine state to this file")
	restoreFile  = cmds.Var[string]("-restore", "resume from a state written by -snapshot")
)

func main() {
	args := cmds.Positional()
	if err := cmds.Execute(os.Args[1:]); err != nil {
		exit(err)
	}

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	// report bad settings before anything depends on them
	scope.Call(func(
		load bfconfigs.LoadOptions,
	) {
		if _, err := load(); err != nil {
			exit(err)
		}
	})

	if *doREPL {
		scope.Call(func(
			createMachine bfvm.CreateMachine,
		) {
			if err := runREPL(context.Background(), createMachine); err != nil {
				exit(err)
			}
		})
		return
	}

	if len(*args) != 1 {
		exit(errors.New("usage: bfi [options] <file> | bfi repl"))
	}
	path := (*args)[0]
	code, err := os.ReadFile(path)
	if err != nil {
		exit(err)
	}
	prog, err := bfvm.NewProgram(path, code)
	if err != nil {
		exit(err)
	}

	if *doDump {
		out := bufio.NewWriter(os.Stdout)
		for ins := range prog.Ops() {
			pos := prog.Pos(ins.Offset)
			fmt.Fprintf(out, "%d\t%s\t%s\n", ins.Offset, pos, ins.Op)
		}
		if err := out.Flush(); err != nil {
			exit(err)
		}
		return
	}

	scope.Call(func(
		createMachine bfvm.CreateMachine,
		interpret bfvm.Interpret,
		tap debugs.Tap,
		inspect debugs.Inspect,
		logger logs.Logger,
	) {
		ctx := context.Background()
		out := bufio.NewWriter(os.Stdout)
		m := createMachine(prog, bufio.NewReader(os.Stdin), out)

		if *restoreFile != "" {
			if err := restore(m, *restoreFile); err != nil {
				exit(err)
			}
			logger.Info("restored",
				"file", *restoreFile,
				"pc", m.PC,
				"steps", m.Steps,
			)
		}

		runErr := interpret(ctx, m)
		if err := out.Flush(); err != nil && runErr == nil {
			runErr = err
		}

		if *snapshotFile != "" {
			if err := snapshot(m, *snapshotFile); err != nil {
				exit(err)
			}
		}

		// inspection also covers failed runs
		if len(*inspectExprs) > 0 || *doTap {
			globals := debugs.MachineGlobals(m)
			for _, expr := range *inspectExprs {
				value, err := inspect(ctx, expr, globals)
				if err != nil {
					exit(err)
				}
				fmt.Printf("%s = %s\n", expr, value)
			}
			if *doTap {
				tap(ctx, prog.Name, globals)
			}
		}

		if runErr != nil {
			exit(runErr)
		}
	})
}

func snapshot(m *bfvm.Machine, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := m.Snapshot(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func restore(m *bfvm.Machine, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := m.Restore(bufio.NewReader(f)); err != nil {
		return fmt.Errorf("restore %s: %w", path, err)
	}
	return nil
}

func exit(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
