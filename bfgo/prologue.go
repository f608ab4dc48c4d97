package bfgo

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/reusee/bf/bfvm"
)

func writePrologue(w io.Writer, prog *bfvm.Program, options bfvm.Options) error {
	name := prog.Name
	if name == "" {
		name = "<stdin>"
	}
	imports := []string{"bufio", "fmt", "io", "os"}
	if options.Output == bfvm.OutputASCII {
		imports = append(imports, "strconv")
	}

	// the header is a line comment, so control characters in the name must not end it
	header := strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return '?'
		}
		return r
	}, name)
	_, err := fmt.Fprintf(w, "// Code generated by bfc from %s. DO NOT EDIT.\n\npackage main\n\nimport (\n", header)
	if err != nil {
		return err
	}
	for _, imp := range imports {
		if _, err := fmt.Fprintf(w, "%q\n", imp); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(w, `)

const (
	source   = %s
	tapeSize = %d
)

var (
	tape  [tapeSize]byte
	ptr   int
	stdin = bufio.NewReader(os.Stdin)
)

func main() {
`, strconv.Quote(name), options.TapeSize)
	return err
}

func writeHelpers(w io.Writer, options bfvm.Options) error {
	var err error
	switch options.Bounds {
	case bfvm.BoundsWrap:
		_, err = io.WriteString(w, `
func right(_, _ int) {
	ptr = (ptr + 1) % tapeSize
}

func left(_, _ int) {
	ptr = (ptr + tapeSize - 1) % tapeSize
}
`)
	default:
		_, err = fmt.Fprintf(w, `
func right(line, column int) {
	if ptr+1 >= tapeSize {
		fail(%q, line, column)
	}
	ptr++
}

func left(line, column int) {
	if ptr == 0 {
		fail(%q, line, column)
	}
	ptr--
}
`, bfvm.ErrCursorOverflow.Error(), bfvm.ErrCursorUnderflow.Error())
	}
	if err != nil {
		return err
	}

	switch options.Output {
	case bfvm.OutputRaw:
		_, err = io.WriteString(w, `
func output(b byte) {
	os.Stdout.Write([]byte{b})
}
`)
	default:
		_, err = io.WriteString(w, `
func output(b byte) {
	if b >= 0x80 {
		os.Stdout.WriteString(strconv.Itoa(int(b)))
		return
	}
	os.Stdout.Write([]byte{b})
}
`)
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, `
func input(line, column int) byte {
	b, err := stdin.ReadByte()
	if err == io.EOF {
		fail(%q, line, column)
	}
	if err != nil {
		fail("read input: "+err.Error(), line, column)
	}
	return b
}

func fail(msg string, line, column int) {
	fmt.Fprintf(os.Stderr, "%%s at %%s:%%d:%%d\n", msg, source, line, column)
	os.Exit(1)
}
`, bfvm.ErrEndOfInput.Error())
	return err
}
