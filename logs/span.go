package logs

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
)

// Span identifies one run of a program through a back end.
type Span string

type spanKey struct{}

var SpanKey spanKey

const SpanAttrKey = "logs.span"

func SpanFrom(ctx context.Context) (Span, bool) {
	span, ok := ctx.Value(SpanKey).(Span)
	return span, ok
}

type NewSpan func(ctx context.Context, parent Span) (context.Context, Span)

func (Module) NewSpan(
	logger Logger,
) NewSpan {
	return func(ctx context.Context, parent Span) (context.Context, Span) {
		creator, _ := SpanFrom(ctx)
		if parent == "" {
			parent = creator
		}

		span := Span(rand.Text())
		ctx = context.WithValue(ctx, SpanKey, span)

		var args []any
		if creator != "" && creator != parent {
			args = append(args, "creator", creator)
		}
		if parent != "" {
			args = append(args, "parent", parent)
		}
		logger.DebugContext(ctx, "new span", args...)

		return ctx, span
	}
}

// WrapSpan annotates err with the span of ctx, if any.
func WrapSpan(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	span, ok := SpanFrom(ctx)
	if !ok {
		return err
	}
	return errors.Join(err, fmt.Errorf("span: %s", span))
}
