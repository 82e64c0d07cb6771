package timefmt

import (
	"fmt"
	"time"
)

const (
	minYear = -999_999
	maxYear = 999_999
)

// Date is a calendar date in the proleptic Gregorian calendar.
type Date struct {
	year  int32
	month uint8
	day   uint8
}

// NewDate returns the date for the given year, month, and day.
// It fails with [ErrComponentRange] when any part is out of range.
func NewDate(year int, month time.Month, day int) (Date, error) {
	if err := checkRange("year", year, minYear, maxYear); err != nil {
		return Date{}, err
	}
	if err := checkRange("month", int(month), 1, 12); err != nil {
		return Date{}, err
	}
	if err := checkRange("day", day, 1, daysIn(month, year)); err != nil {
		return Date{}, err
	}
	return Date{year: int32(year), month: uint8(month), day: uint8(day)}, nil
}

// Year returns the year, which may be negative.
func (d Date) Year() int { return int(d.year) }

// Month returns the month of the year.
func (d Date) Month() time.Month { return time.Month(d.month) }

// Day returns the day of the month.
func (d Date) Day() int { return int(d.day) }

// Ordinal returns the day of the year, starting at 1.
func (d Date) Ordinal() int {
	if d.month == 0 {
		return 0
	}
	n := cumulativeDays[d.month-1] + int(d.day)
	if d.month > 2 && isLeap(int(d.year)) {
		n++
	}
	return n
}

// Time is a clock time with nanosecond precision.
type Time struct {
	hour       uint8
	minute     uint8
	second     uint8
	nanosecond uint32
}

// NewTime returns the clock time for the given parts.
// It fails with [ErrComponentRange] when any part is out of range.
func NewTime(hour, minute, second, nanosecond int) (Time, error) {
	if err := checkRange("hour", hour, 0, 23); err != nil {
		return Time{}, err
	}
	if err := checkRange("minute", minute, 0, 59); err != nil {
		return Time{}, err
	}
	if err := checkRange("second", second, 0, 59); err != nil {
		return Time{}, err
	}
	if err := checkRange("nanosecond", nanosecond, 0, 999_999_999); err != nil {
		return Time{}, err
	}
	return Time{
		hour:       uint8(hour),
		minute:     uint8(minute),
		second:     uint8(second),
		nanosecond: uint32(nanosecond),
	}, nil
}

// Hour returns the hour of the day, 0 through 23.
func (t Time) Hour() int { return int(t.hour) }

// Minute returns the minute of the hour.
func (t Time) Minute() int { return int(t.minute) }

// Second returns the second of the minute.
func (t Time) Second() int { return int(t.second) }

// Nanosecond returns the fraction of the second in nanoseconds.
func (t Time) Nanosecond() int { return int(t.nanosecond) }

// UtcOffset is a signed offset from UTC. All non-zero parts share one sign.
type UtcOffset struct {
	hours   int8
	minutes int8
	seconds int8
}

// UTC is the zero offset.
var UTC = UtcOffset{}

// NewOffset returns the offset for the given hours, minutes, and seconds.
// Non-zero parts must agree in sign, so -00:30 is NewOffset(0, -30, 0).
func NewOffset(hours, minutes, seconds int) (UtcOffset, error) {
	if err := checkRange("offset_hour", hours, -23, 23); err != nil {
		return UtcOffset{}, err
	}
	if err := checkRange("offset_minute", minutes, -59, 59); err != nil {
		return UtcOffset{}, err
	}
	if err := checkRange("offset_second", seconds, -59, 59); err != nil {
		return UtcOffset{}, err
	}
	if (hours > 0 || minutes > 0 || seconds > 0) && (hours < 0 || minutes < 0 || seconds < 0) {
		return UtcOffset{}, fmt.Errorf("%w: offset parts %d:%d:%d disagree in sign", ErrComponentRange, hours, minutes, seconds)
	}
	return UtcOffset{hours: int8(hours), minutes: int8(minutes), seconds: int8(seconds)}, nil
}

// OffsetFromSeconds returns the offset spanning the given signed number of
// seconds. The magnitude must be under one day.
func OffsetFromSeconds(total int) (UtcOffset, error) {
	if err := checkRange("offset", total, -86_399, 86_399); err != nil {
		return UtcOffset{}, err
	}
	return UtcOffset{
		hours:   int8(total / 3600),
		minutes: int8(total % 3600 / 60),
		seconds: int8(total % 60),
	}, nil
}

// WholeHours returns the signed hour part of the offset.
func (o UtcOffset) WholeHours() int { return int(o.hours) }

// MinutesPastHour returns the signed minute part of the offset.
func (o UtcOffset) MinutesPastHour() int { return int(o.minutes) }

// SecondsPastMinute returns the signed second part of the offset.
func (o UtcOffset) SecondsPastMinute() int { return int(o.seconds) }

// WholeSeconds returns the total signed offset in seconds.
func (o UtcOffset) WholeSeconds() int {
	return int(o.hours)*3600 + int(o.minutes)*60 + int(o.seconds)
}

// IsNegative reports whether the offset lies west of UTC. The sign belongs to
// the whole offset, so -00:30 is negative even though its hour part is zero.
func (o UtcOffset) IsNegative() bool {
	return o.hours < 0 || o.minutes < 0 || o.seconds < 0
}

// IsUTC reports whether the offset is exactly zero.
func (o UtcOffset) IsUTC() bool { return o == UTC }

// FromTime splits t into its date, clock time, and the offset of its location.
func FromTime(t time.Time) (Date, Time, UtcOffset, error) {
	year, month, day := t.Date()
	date, err := NewDate(year, month, day)
	if err != nil {
		return Date{}, Time{}, UtcOffset{}, err
	}
	hour, minute, second := t.Clock()
	clock, err := NewTime(hour, minute, second, t.Nanosecond())
	if err != nil {
		return Date{}, Time{}, UtcOffset{}, err
	}
	_, secs := t.Zone()
	offset, err := OffsetFromSeconds(secs)
	if err != nil {
		return Date{}, Time{}, UtcOffset{}, err
	}
	return date, clock, offset, nil
}

var cumulativeDays = [12]int{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func daysIn(month time.Month, year int) int {
	switch month {
	case time.February:
		if isLeap(year) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}

func checkRange(name string, v, lo, hi int) error {
	if v < lo || v > hi {
		return fmt.Errorf("%w: %s %d not in [%d, %d]", ErrComponentRange, name, v, lo, hi)
	}
	return nil
}
