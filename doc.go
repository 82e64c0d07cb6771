// Package timefmt renders dates, clock times, and UTC offsets as text.
//
// A [Description] selects the output layout. It is either a tree of [Item]
// values built by the caller, or a well-known layout such as [RFC3339]. The
// central entry points are [Description.FormatInto], which writes to an
// [io.Writer] and returns the byte count, and [Description.Format], which
// returns a string.
//
// # Partial Values
//
// Any of the [Date], [Time], and [UtcOffset] arguments may be nil. An item
// tree only needs the values its components read:
//
//	d := timefmt.Sequence(
//		timefmt.ComponentItem(timefmt.Component{Field: timefmt.FieldHour}),
//		timefmt.Literal(":"),
//		timefmt.ComponentItem(timefmt.Component{Field: timefmt.FieldMinute}),
//	)
//	s, err := d.Format(nil, &clock, nil) // "09:41"
//
// A component whose value is missing fails with
// [ErrInsufficientTypeInformation].
//
// # Item Trees
//
// An [Item] is one of:
//
//   - [Literal] / [LiteralBytes] — text written verbatim
//   - [ComponentItem] — a single [Field] with a [Padding] and modifiers
//   - [Compound] — child items rendered left to right
//
// Rendering stops at the first failing item. Bytes already written are not
// retracted; use [Description.Append] or [Description.Format] when the output
// must be all or nothing.
//
// # RFC 3339
//
// [RFC3339] requires all three values. The year must lie in [0, 9999] and the
// offset must have no seconds part, else the call fails with an
// [*InvalidComponentError] naming "year" or "offset_second". Fractional
// seconds are written with the fewest digits that represent them exactly and
// are omitted when zero:
//
//	1970-01-01T00:00:00Z
//	1970-01-01T00:00:00.12Z
//	1970-01-01T00:00:00-00:30
//
// # YAML
//
// Item trees can be stored as YAML documents and loaded with [DecodeYAML].
// A scalar is a literal, a sequence is a compound, and a mapping names a
// component:
//
//	- component: year
//	- "-"
//	- {component: month, padding: space}
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrIO] — the writer failed; the writer's error is wrapped as well
//   - [ErrInsufficientTypeInformation] — a required value was nil
//   - [ErrInvalidComponent] — a value cannot be represented in the layout
//   - [ErrComponentRange] — a constructor argument is out of range
//   - [ErrUnsupportedFormat] — unknown well-known layout name
//   - [ErrInvalidItem] — malformed item or item document
package timefmt
