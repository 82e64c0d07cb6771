package timefmt

import (
	"io"
	"slices"
)

// Kind identifies the variant of an [Item].
type Kind int

const (
	KindLiteral   Kind = iota // verbatim bytes
	KindComponent             // a single Component
	KindCompound              // ordered child items
)

// Item is one node of a format description tree: a literal, a single
// component, or an ordered compound of items. Items are immutable once built.
// The zero Item is an empty literal.
type Item struct {
	kind      Kind
	literal   []byte
	component Component
	items     []Item
}

// Literal returns an item that writes s verbatim.
func Literal(s string) Item {
	return Item{kind: KindLiteral, literal: []byte(s)}
}

// LiteralBytes returns an item that writes b verbatim. b is copied.
func LiteralBytes(b []byte) Item {
	return Item{kind: KindLiteral, literal: slices.Clone(b)}
}

// ComponentItem returns an item that renders c.
func ComponentItem(c Component) Item {
	return Item{kind: KindComponent, component: c}
}

// Compound returns an item that renders items in order.
func Compound(items ...Item) Item {
	return Item{kind: KindCompound, items: slices.Clone(items)}
}

// Kind reports which variant the item holds.
func (i Item) Kind() Kind { return i.kind }

// Component returns the component of a [KindComponent] item.
func (i Item) Component() (Component, bool) {
	return i.component, i.kind == KindComponent
}

// Bytes returns a copy of the text of a [KindLiteral] item.
func (i Item) Bytes() ([]byte, bool) {
	return slices.Clone(i.literal), i.kind == KindLiteral
}

// Items returns a copy of the children of a [KindCompound] item.
func (i Item) Items() ([]Item, bool) {
	return slices.Clone(i.items), i.kind == KindCompound
}

func (i Item) formatInto(w io.Writer, date *Date, t *Time, off *UtcOffset) (int, error) {
	switch i.kind {
	case KindComponent:
		return writeComponent(w, i.component, date, t, off)
	case KindCompound:
		return sequence(i.items).formatInto(w, date, t, off)
	default:
		if len(i.literal) == 0 {
			return 0, nil
		}
		return write(w, i.literal)
	}
}

// sequence is a flat top-level list of items.
type sequence []Item

func (s sequence) formatInto(w io.Writer, date *Date, t *Time, off *UtcOffset) (int, error) {
	var bytes int
	for _, item := range s {
		n, err := item.formatInto(w, date, t, off)
		bytes += n
		if err != nil {
			return bytes, err
		}
	}
	return bytes, nil
}
