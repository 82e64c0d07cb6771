package timefmt

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Field names a single temporal value that a [Component] renders.
type Field int

const (
	FieldDay Field = iota + 1
	FieldMonth
	FieldOrdinal
	FieldYear
	FieldHour
	FieldMinute
	FieldPeriod
	FieldSecond
	FieldSubsecond
	FieldOffsetHour
	FieldOffsetMinute
	FieldOffsetSecond
)

var fieldNames = map[Field]string{
	FieldDay:          "day",
	FieldMonth:        "month",
	FieldOrdinal:      "ordinal",
	FieldYear:         "year",
	FieldHour:         "hour",
	FieldMinute:       "minute",
	FieldPeriod:       "period",
	FieldSecond:       "second",
	FieldSubsecond:    "subsecond",
	FieldOffsetHour:   "offset_hour",
	FieldOffsetMinute: "offset_minute",
	FieldOffsetSecond: "offset_second",
}

// String returns the field name.
func (f Field) String() string {
	if s, ok := fieldNames[f]; ok {
		return s
	}
	return "Field(" + strconv.Itoa(int(f)) + ")"
}

// ParseField parses a field name as returned by [Field.String].
func ParseField(s string) (Field, error) {
	for f, name := range fieldNames {
		if name == s {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown component %q", ErrInvalidItem, s)
}

// Component describes how one field is rendered. Modifiers that do not apply
// to the field are ignored.
type Component struct {
	Field   Field
	Padding Padding

	// TwoDigitYear renders only the last two digits of the year.
	TwoDigitYear bool
	// ForceSign emits '+' for non-negative years and offset hours.
	ForceSign bool
	// TwelveHour renders the hour on a 12-hour clock.
	TwelveHour bool
	// Lowercase renders the period as "am"/"pm".
	Lowercase bool
	// Digits is the subsecond precision, 1 through 9. Zero selects the
	// shortest exact representation.
	Digits int
}

func writeComponent(w io.Writer, c Component, date *Date, t *Time, off *UtcOffset) (int, error) {
	switch c.Field {
	case FieldDay, FieldMonth, FieldOrdinal, FieldYear:
		if date == nil {
			return 0, fmt.Errorf("%w: %s requires a date", ErrInsufficientTypeInformation, c.Field)
		}
		return writeDateComponent(w, c, *date)
	case FieldHour, FieldMinute, FieldPeriod, FieldSecond, FieldSubsecond:
		if t == nil {
			return 0, fmt.Errorf("%w: %s requires a time", ErrInsufficientTypeInformation, c.Field)
		}
		return writeTimeComponent(w, c, *t)
	case FieldOffsetHour, FieldOffsetMinute, FieldOffsetSecond:
		if off == nil {
			return 0, fmt.Errorf("%w: %s requires an offset", ErrInsufficientTypeInformation, c.Field)
		}
		return writeOffsetComponent(w, c, *off)
	default:
		return 0, fmt.Errorf("%w: unknown component %s", ErrInvalidItem, c.Field)
	}
}

func writeDateComponent(w io.Writer, c Component, d Date) (int, error) {
	switch c.Field {
	case FieldDay:
		return writeNumber(w, uint64(d.Day()), c.Padding, 2)
	case FieldMonth:
		return writeNumber(w, uint64(d.Month()), c.Padding, 2)
	case FieldOrdinal:
		return writeNumber(w, uint64(d.Ordinal()), c.Padding, 3)
	}

	year := d.Year()
	mag := uint64(abs(year))
	var bytes int
	if year < 0 || c.ForceSign {
		sign := byte('+')
		if year < 0 {
			sign = '-'
		}
		n, err := writeByte(w, sign)
		bytes += n
		if err != nil {
			return bytes, err
		}
	}
	width := 4
	if c.TwoDigitYear {
		mag %= 100
		width = 2
	}
	n, err := writeNumber(w, mag, c.Padding, width)
	return bytes + n, err
}

func writeTimeComponent(w io.Writer, c Component, t Time) (int, error) {
	switch c.Field {
	case FieldHour:
		hour := t.Hour()
		if c.TwelveHour {
			hour %= 12
			if hour == 0 {
				hour = 12
			}
		}
		return writeNumber(w, uint64(hour), c.Padding, 2)
	case FieldMinute:
		return writeNumber(w, uint64(t.Minute()), c.Padding, 2)
	case FieldSecond:
		return writeNumber(w, uint64(t.Second()), c.Padding, 2)
	case FieldPeriod:
		period := "AM"
		if t.Hour() >= 12 {
			period = "PM"
		}
		if c.Lowercase {
			period = strings.ToLower(period)
		}
		return write(w, []byte(period))
	default:
		if c.Digits < 0 || c.Digits > 9 {
			return 0, fmt.Errorf("%w: subsecond digits %d not in [0, 9]", ErrInvalidItem, c.Digits)
		}
		value, width := trimFraction(uint32(t.Nanosecond()))
		if c.Digits > 0 {
			value, width = uint32(t.Nanosecond())/pow10[9-c.Digits], c.Digits
		}
		return writeNumber(w, uint64(value), PaddingZero, width)
	}
}

func writeOffsetComponent(w io.Writer, c Component, o UtcOffset) (int, error) {
	switch c.Field {
	case FieldOffsetMinute:
		return writeNumber(w, uint64(abs(o.MinutesPastHour())), c.Padding, 2)
	case FieldOffsetSecond:
		return writeNumber(w, uint64(abs(o.SecondsPastMinute())), c.Padding, 2)
	}
	var bytes int
	if o.IsNegative() || c.ForceSign {
		sign := byte('+')
		if o.IsNegative() {
			sign = '-'
		}
		n, err := writeByte(w, sign)
		bytes += n
		if err != nil {
			return bytes, err
		}
	}
	n, err := writeNumber(w, uint64(abs(o.WholeHours())), c.Padding, 2)
	return bytes + n, err
}

var pow10 = [10]uint32{1, 10, 100, 1_000, 10_000, 100_000, 1_000_000, 10_000_000, 100_000_000, 1_000_000_000}

// trimFraction returns the nanosecond value scaled down to the fewest digits
// that still represent it exactly, and that digit count (1 through 9).
func trimFraction(nanos uint32) (value uint32, width int) {
	value, width = nanos, 9
	for width > 1 && value%10 == 0 {
		value /= 10
		width--
	}
	return value, width
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
