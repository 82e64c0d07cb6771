package timefmt

import (
	"fmt"
	"io"
)

// rfc3339 renders the RFC 3339 layout, e.g. 1985-04-12T23:20:50.52+01:00.
type rfc3339 struct{}

func (rfc3339) formatInto(w io.Writer, date *Date, t *Time, off *UtcOffset) (int, error) {
	if date == nil || t == nil || off == nil {
		return 0, fmt.Errorf("%w: rfc3339 requires a date, a time, and an offset", ErrInsufficientTypeInformation)
	}

	year := date.Year()
	if year < 0 || year >= 10_000 {
		return 0, &InvalidComponentError{Name: "year"}
	}
	// RFC 3339 offsets have minute resolution.
	if off.SecondsPastMinute() != 0 {
		return 0, &InvalidComponentError{Name: "offset_second"}
	}

	fw := fieldWriter{w: w}
	fw.number(uint64(year), 4)
	fw.char('-')
	fw.number(uint64(date.Month()), 2)
	fw.char('-')
	fw.number(uint64(date.Day()), 2)
	fw.char('T')
	fw.number(uint64(t.Hour()), 2)
	fw.char(':')
	fw.number(uint64(t.Minute()), 2)
	fw.char(':')
	fw.number(uint64(t.Second()), 2)

	if nanos := uint32(t.Nanosecond()); nanos != 0 {
		fw.char('.')
		value, width := trimFraction(nanos)
		fw.number(uint64(value), width)
	}

	if off.IsUTC() {
		fw.char('Z')
		return fw.n, fw.err
	}

	if off.IsNegative() {
		fw.char('-')
	} else {
		fw.char('+')
	}
	fw.number(uint64(abs(off.WholeHours())), 2)
	fw.char(':')
	fw.number(uint64(abs(off.MinutesPastHour())), 2)
	return fw.n, fw.err
}

// fieldWriter accumulates the byte count of successive writes and turns every
// call after the first failure into a no-op.
type fieldWriter struct {
	w   io.Writer
	n   int
	err error
}

func (fw *fieldWriter) number(value uint64, width int) {
	if fw.err != nil {
		return
	}
	var n int
	n, fw.err = writeNumber(fw.w, value, PaddingZero, width)
	fw.n += n
}

func (fw *fieldWriter) char(b byte) {
	if fw.err != nil {
		return
	}
	var n int
	n, fw.err = writeByte(fw.w, b)
	fw.n += n
}
