package bfvm

import (
	"context"
	"io"

	"github.com/reusee/bf/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}

// CreateMachine creates a machine configured by the provided Options.
type CreateMachine func(prog *Program, in io.Reader, out io.Writer) *Machine

func (Module) CreateMachine(
	logger logs.Logger,
	options Options,
) CreateMachine {
	return func(prog *Program, in io.Reader, out io.Writer) *Machine {
		m := NewMachine(prog, options, in, out)
		m.Logger = logger
		return m
	}
}

// Interpret runs m until it stops, in its own span.
type Interpret func(ctx context.Context, m *Machine) error

func (Module) Interpret(
	newSpan logs.NewSpan,
) Interpret {
	return func(ctx context.Context, m *Machine) error {
		ctx, _ = newSpan(ctx, "")
		if err := m.Run(ctx); err != nil {
			return logs.WrapSpan(ctx, err)
		}
		return nil
	}
}
