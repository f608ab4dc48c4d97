package bfvm

// Op is one of the eight recognized operations. Every other byte maps to OpInvalid and is
// skipped by the scanner.
type Op uint8

const (
	OpInvalid Op = iota
	OpIncrement
	OpDecrement
	OpRight
	OpLeft
	OpOutput
	OpInput
	OpLoopOpen
	OpLoopClose
)

var opOfByte = [256]Op{
	'+': OpIncrement,
	'-': OpDecrement,
	'>': OpRight,
	'<': OpLeft,
	'.': OpOutput,
	',': OpInput,
	'[': OpLoopOpen,
	']': OpLoopClose,
}

var opSymbols = [...]byte{
	OpIncrement: '+',
	OpDecrement: '-',
	OpRight:     '>',
	OpLeft:      '<',
	OpOutput:    '.',
	OpInput:     ',',
	OpLoopOpen:  '[',
	OpLoopClose: ']',
}

func OpOf(b byte) Op {
	return opOfByte[b]
}

// Symbol returns the source byte of the op, or 0 for OpInvalid.
func (o Op) Symbol() byte {
	if int(o) >= len(opSymbols) {
		return 0
	}
	return opSymbols[o]
}

func (o Op) String() string {
	if s := o.Symbol(); s != 0 {
		return string(s)
	}
	return "invalid"
}

// Instruction is a recognized operation and its byte offset in the program source.
type Instruction struct {
	Op     Op
	Offset int
}
