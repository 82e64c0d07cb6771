package timefmt

import (
	"io"
	"iter"
	"time"
)

// WriteIter formats each time from seq with d and writes it to w as it
// arrives, one per line. It returns the total number of bytes written and
// stops at the first error.
func WriteIter(w io.Writer, d Description, seq iter.Seq[time.Time]) (int, error) {
	var bytes int
	var streamErr error
	seq(func(t time.Time) bool {
		date, clock, off, err := FromTime(t)
		if err != nil {
			streamErr = err
			return false
		}
		n, err := d.FormatInto(w, &date, &clock, &off)
		bytes += n
		if err != nil {
			streamErr = err
			return false
		}
		n, err = writeByte(w, '\n')
		bytes += n
		if err != nil {
			streamErr = err
			return false
		}
		return true
	})
	return bytes, streamErr
}

// WriteChan formats times received from ch and writes them to w.
// It is a thin wrapper around [WriteIter].
func WriteChan(w io.Writer, d Description, ch <-chan time.Time) (int, error) {
	return WriteIter(w, d, chanToIter(ch))
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}
