package timefmt

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"slices"
	"time"
	"unicode/utf8"
)

// Sentinel errors for programmatic error handling.
var (
	ErrIO                          = errors.New("write failed")
	ErrInsufficientTypeInformation = errors.New("insufficient type information")
	ErrInvalidComponent            = errors.New("invalid component")
	ErrComponentRange              = errors.New("component out of range")
	ErrUnsupportedFormat           = errors.New("unsupported format")
	ErrInvalidItem                 = errors.New("invalid format item")
)

// InvalidComponentError reports a supplied value that the target format cannot
// represent. It matches [ErrInvalidComponent] under errors.Is.
type InvalidComponentError struct {
	Name string
}

func (e *InvalidComponentError) Error() string {
	return fmt.Sprintf("%s: %s cannot be represented in the requested format", ErrInvalidComponent, e.Name)
}

func (e *InvalidComponentError) Is(target error) bool {
	return target == ErrInvalidComponent
}

// formattable is implemented by everything a Description can wrap.
type formattable interface {
	formatInto(w io.Writer, date *Date, t *Time, off *UtcOffset) (int, error)
}

// Description is an immutable format description: a custom item tree, a flat
// sequence of items, or a well-known layout. The zero Description writes
// nothing. A Description is safe for concurrent use.
type Description struct {
	f    formattable
	name string
}

// RFC3339 formats as 2006-01-02T15:04:05.999999999Z07:00, with trailing
// fractional zeros trimmed.
var RFC3339 = Description{f: rfc3339{}, name: "rfc3339"}

var wellKnown = []Description{RFC3339}

// Single returns a Description that renders one item.
func Single(item Item) Description {
	return Description{f: item, name: "custom"}
}

// Sequence returns a Description that renders items in order.
func Sequence(items ...Item) Description {
	return Description{f: sequence(slices.Clone(items)), name: "custom"}
}

// WellKnown returns the well-known layout with the given name.
func WellKnown(name string) (Description, error) {
	for _, d := range wellKnown {
		if d.name == name {
			return d, nil
		}
	}
	return Description{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
}

// WellKnownNames returns the names accepted by [WellKnown].
func WellKnownNames() []string {
	out := make([]string, len(wellKnown))
	for i, d := range wellKnown {
		out[i] = d.name
	}
	return out
}

// String returns the layout name, or "custom" for item descriptions.
func (d Description) String() string {
	if d.f == nil {
		return "empty"
	}
	return d.name
}

// FormatInto writes the formatted value to w and returns the number of bytes
// written. A nil date, time, or offset is treated as absent. On failure the
// bytes already written stay in w and are included in the count.
func (d Description) FormatInto(w io.Writer, date *Date, t *Time, off *UtcOffset) (int, error) {
	if d.f == nil {
		return 0, nil
	}
	return d.f.formatInto(w, date, t, off)
}

// Append appends the formatted value to dst. On failure dst is returned
// unchanged and its spare capacity is left untouched.
func (d Description) Append(dst []byte, date *Date, t *Time, off *UtcOffset) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := d.FormatInto(&buf, date, t, off); err != nil {
		return dst, err
	}
	return append(dst, buf.Bytes()...), nil
}

// Format returns the formatted value as a string. Invalid UTF-8, which only
// literal items can introduce, is replaced with one U+FFFD per ill-formed
// sequence.
func (d Description) Format(date *Date, t *Time, off *UtcOffset) (string, error) {
	var buf bytes.Buffer
	if _, err := d.FormatInto(&buf, date, t, off); err != nil {
		return "", err
	}
	if utf8.Valid(buf.Bytes()) {
		return buf.String(), nil
	}
	return string(toValidUTF8(buf.Bytes())), nil
}

// toValidUTF8 replaces every maximal ill-formed subsequence of p with U+FFFD.
// A truncated multi-byte sequence is one subsequence; a stray continuation or
// an impossible lead byte is one per byte.
func toValidUTF8(p []byte) []byte {
	out := make([]byte, 0, len(p)+8)
	for i := 0; i < len(p); {
		r, size := utf8.DecodeRune(p[i:])
		if r == utf8.RuneError && size == 1 {
			out = utf8.AppendRune(out, utf8.RuneError)
			i += illFormedLen(p[i:])
			continue
		}
		out = append(out, p[i:i+size]...)
		i += size
	}
	return out
}

// illFormedLen returns the length of the ill-formed subsequence at the start
// of p: the lead byte plus every following byte that still fits a well-formed
// sequence for that lead.
func illFormedLen(p []byte) int {
	var lo, hi byte = 0x80, 0xBF
	var need int
	switch b := p[0]; {
	case b >= 0xC2 && b <= 0xDF:
		need = 1
	case b == 0xE0:
		lo, need = 0xA0, 2
	case b == 0xED:
		hi, need = 0x9F, 2
	case b >= 0xE1 && b <= 0xEF:
		need = 2
	case b == 0xF0:
		lo, need = 0x90, 3
	case b == 0xF4:
		hi, need = 0x8F, 3
	case b >= 0xF1 && b <= 0xF3:
		need = 3
	default:
		return 1
	}
	n := 1
	for n <= need && n < len(p) && p[n] >= lo && p[n] <= hi {
		n++
		lo, hi = 0x80, 0xBF
	}
	return n
}

// FormatTime formats the date, clock time, and zone offset of t.
func (d Description) FormatTime(t time.Time) (string, error) {
	date, clock, off, err := FromTime(t)
	if err != nil {
		return "", err
	}
	return d.Format(&date, &clock, &off)
}
