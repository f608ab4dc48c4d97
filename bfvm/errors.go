package bfvm

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

var (
	ErrUnmatchedOpen   = errors.New("unmatched opening bracket")
	ErrUnmatchedClose  = errors.New("unmatched closing bracket")
	ErrEndOfInput      = errors.New("end of input")
	ErrCursorUnderflow = errors.New("cursor moved before start of tape")
	ErrCursorOverflow  = errors.New("cursor moved past end of tape")
	ErrNoJumpTarget    = errors.New("no jump target")
	ErrBadSnapshot     = errors.New("bad snapshot")
)

// Pos is a location in program source. Line and Column are 1-based; Column counts runes.
type Pos struct {
	Offset int
	Line   int
	Column int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

func posOf(code []byte, offset int) Pos {
	return Pos{
		Line:   1,
		Column: 1,
	}.advance(code, offset)
}

// advance moves p forward to offset, which must not precede p.
func (p Pos) advance(code []byte, offset int) Pos {
	offset = min(max(offset, p.Offset), len(code))
	for _, b := range code[p.Offset:offset] {
		switch {
		case b == '\n':
			p.Line++
			p.Column = 1
		case utf8.RuneStart(b):
			p.Column++
		}
	}
	p.Offset = offset
	return p
}

func lineAt(code []byte, offset int) string {
	offset = min(max(offset, 0), len(code))
	start := offset
	for start > 0 && code[start-1] != '\n' {
		start--
	}
	end := offset
	for end < len(code) && code[end] != '\n' {
		end++
	}
	return strings.TrimRight(string(code[start:end]), "\r")
}

// source lines longer than this are left out of diagnostics
const maxErrorLineLength = 120

// PosError attaches a source position to a failure.
type PosError struct {
	Err  error
	Name string
	Pos  Pos
	Line string
}

func (p *PosError) Error() string {
	var sb strings.Builder
	sb.WriteString(p.Err.Error())
	sb.WriteString(" at ")
	if p.Name != "" {
		sb.WriteString(p.Name)
		sb.WriteString(":")
	}
	sb.WriteString(p.Pos.String())
	if runes := []rune(p.Line); len(runes) > 0 && p.Pos.Column-1 <= len(runes) {
		sb.WriteString("\n")
		sb.WriteString(p.Line)
		sb.WriteString("\n")
		for _, r := range runes[:p.Pos.Column-1] {
			if r == '\t' {
				sb.WriteByte('\t')
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteString("^")
	}
	return sb.String()
}

func (p *PosError) Unwrap() error {
	return p.Err
}

func withPos(err error, name string, code []byte, offset int) error {
	if err == nil {
		return nil
	}
	var posErr *PosError
	if errors.As(err, &posErr) {
		return err
	}
	line := lineAt(code, offset)
	if len(line) > maxErrorLineLength {
		line = ""
	}
	return &PosError{
		Err:  err,
		Name: name,
		Pos:  posOf(code, offset),
		Line: line,
	}
}
