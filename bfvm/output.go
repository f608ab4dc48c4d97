package bfvm

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

// OutputMode decides how `.` renders a cell. Both back ends implement the same modes.
type OutputMode uint8

const (
	// OutputASCII writes bytes below 0x80 as they are and everything else as decimal digits.
	OutputASCII OutputMode = iota
	// OutputRaw writes every byte as it is.
	OutputRaw
)

func (m OutputMode) String() string {
	switch m {
	case OutputASCII:
		return "ascii"
	case OutputRaw:
		return "raw"
	}
	return fmt.Sprintf("OutputMode(%d)", uint8(m))
}

func ParseOutputMode(str string) (OutputMode, error) {
	switch str {
	case "ascii":
		return OutputASCII, nil
	case "raw":
		return OutputRaw, nil
	}
	return 0, fmt.Errorf("unknown output mode: %q", str)
}

// Append appends the rendering of b to dst.
func (m OutputMode) Append(dst []byte, b byte) []byte {
	if m == OutputASCII && b >= utf8.RuneSelf {
		return strconv.AppendUint(dst, uint64(b), 10)
	}
	return append(dst, b)
}
