package syntax

import (
	"fmt"
	"io"
	"unicode/utf8"
)

// ReadSource reads an entire source file into memory.
// Source text must be valid UTF-8; the first invalid byte is reported as a
// *LexError carrying its line, column and offset.
func ReadSource(filename string, src io.Reader) (string, error) {
	buf, err := io.ReadAll(src)
	if err != nil {
		return "", fmt.Errorf("error reading source file: %w", err)
	}

	line, col := uint32(1), uint32(1)
	for offs := 0; offs < len(buf); {
		r, width := utf8.DecodeRune(buf[offs:])
		if r == utf8.RuneError && width == 1 {
			return "", &LexError{
				Pos:    NewPosOffset(filename, line, col, offs),
				Offset: offs,
				Char:   rune(buf[offs]),
				Msg:    "invalid UTF-8 encoding",
			}
		}
		if r == '\n' {
			line++
			col = 1
		} else {
			col++
		}
		offs += width
	}
	return string(buf), nil
}
