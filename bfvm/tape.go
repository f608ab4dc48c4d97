package bfvm

import "fmt"

const DefaultTapeSize = 30000

// BoundsPolicy decides what moving the cursor off either end of the tape does.
type BoundsPolicy uint8

const (
	// BoundsError stops the run with ErrCursorUnderflow or ErrCursorOverflow.
	BoundsError BoundsPolicy = iota
	// BoundsWrap moves the cursor to the opposite end.
	BoundsWrap
)

func (b BoundsPolicy) String() string {
	switch b {
	case BoundsError:
		return "error"
	case BoundsWrap:
		return "wrap"
	}
	return fmt.Sprintf("BoundsPolicy(%d)", uint8(b))
}

func ParseBoundsPolicy(str string) (BoundsPolicy, error) {
	switch str {
	case "error":
		return BoundsError, nil
	case "wrap":
		return BoundsWrap, nil
	}
	return 0, fmt.Errorf("unknown bounds policy: %q", str)
}

type Tape struct {
	Cells  []byte
	Cursor int
	Bounds BoundsPolicy
}

func NewTape(size int, bounds BoundsPolicy) *Tape {
	if size <= 0 {
		size = DefaultTapeSize
	}
	return &Tape{
		Cells:  make([]byte, size),
		Bounds: bounds,
	}
}

// Right moves the cursor one cell right. On failure the cursor is unchanged.
func (t *Tape) Right() error {
	if t.Cursor+1 < len(t.Cells) {
		t.Cursor++
		return nil
	}
	if t.Bounds == BoundsWrap {
		t.Cursor = 0
		return nil
	}
	return ErrCursorOverflow
}

// Left moves the cursor one cell left. On failure the cursor is unchanged.
func (t *Tape) Left() error {
	if t.Cursor > 0 {
		t.Cursor--
		return nil
	}
	if t.Bounds == BoundsWrap {
		t.Cursor = len(t.Cells) - 1
		return nil
	}
	return ErrCursorUnderflow
}

// Increment adds one to the current cell, wrapping 255 to 0.
func (t *Tape) Increment() {
	t.Cells[t.Cursor]++
}

// Decrement subtracts one from the current cell, wrapping 0 to 255.
func (t *Tape) Decrement() {
	t.Cells[t.Cursor]--
}

func (t *Tape) Get() byte {
	return t.Cells[t.Cursor]
}

func (t *Tape) Set(b byte) {
	t.Cells[t.Cursor] = b
}
