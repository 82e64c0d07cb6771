package timefmt

import (
	"fmt"
	"io"
	"strconv"
)

// Padding controls how a numeric field is widened to its fixed width.
type Padding int

const (
	PaddingZero  Padding = iota // 07
	PaddingSpace                //  7
	PaddingNone                 // 7
)

var paddingNames = map[Padding]string{
	PaddingZero:  "zero",
	PaddingSpace: "space",
	PaddingNone:  "none",
}

// String returns the padding name.
func (p Padding) String() string {
	if s, ok := paddingNames[p]; ok {
		return s
	}
	return "Padding(" + strconv.Itoa(int(p)) + ")"
}

// ParsePadding parses a padding name as returned by [Padding.String].
func ParsePadding(s string) (Padding, error) {
	for p, name := range paddingNames {
		if name == s {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown padding %q", ErrInvalidItem, s)
}

// writeNumber writes value in decimal, filled on the left up to width
// characters according to pad. Wider values are never truncated.
func writeNumber(w io.Writer, value uint64, pad Padding, width int) (int, error) {
	var buf [24]byte
	digits := strconv.AppendUint(buf[:0], value, 10)
	if pad == PaddingNone || len(digits) >= width {
		return write(w, digits)
	}
	fill := byte('0')
	if pad == PaddingSpace {
		fill = ' '
	}
	out := make([]byte, width)
	n := width - len(digits)
	for i := range n {
		out[i] = fill
	}
	copy(out[n:], digits)
	return write(w, out)
}

// write passes p to the sink, wrapping any failure in ErrIO.
func write(w io.Writer, p []byte) (int, error) {
	n, err := w.Write(p)
	if err != nil {
		return n, fmt.Errorf("%w: %w", ErrIO, err)
	}
	return n, nil
}

func writeByte(w io.Writer, b byte) (int, error) {
	return write(w, []byte{b})
}
