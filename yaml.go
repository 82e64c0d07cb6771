package timefmt

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Items are stored in YAML as follows: a scalar is a literal, a sequence is a
// compound, and a mapping with a "component" key is a component.
//
//	- component: year
//	- "-"
//	- component: month
//	  padding: space
//	- [" ", {component: hour, twelve_hour: true}]

type componentYAML struct {
	Component    Field   `yaml:"component"`
	Padding      Padding `yaml:"padding,omitempty"`
	TwoDigitYear bool    `yaml:"two_digit_year,omitempty"`
	ForceSign    bool    `yaml:"force_sign,omitempty"`
	TwelveHour   bool    `yaml:"twelve_hour,omitempty"`
	Lowercase    bool    `yaml:"lowercase,omitempty"`
	Digits       int     `yaml:"digits,omitempty"`
}

var componentKeys = map[string]bool{
	"component":      true,
	"padding":        true,
	"two_digit_year": true,
	"force_sign":     true,
	"twelve_hour":    true,
	"lowercase":      true,
	"digits":         true,
}

// MarshalYAML implements [yaml.Marshaler].
func (i Item) MarshalYAML() (any, error) {
	switch i.kind {
	case KindComponent:
		c := i.component
		return componentYAML{
			Component:    c.Field,
			Padding:      c.Padding,
			TwoDigitYear: c.TwoDigitYear,
			ForceSign:    c.ForceSign,
			TwelveHour:   c.TwelveHour,
			Lowercase:    c.Lowercase,
			Digits:       c.Digits,
		}, nil
	case KindCompound:
		if i.items == nil {
			return []Item{}, nil
		}
		return i.items, nil
	default:
		return string(i.literal), nil
	}
}

// UnmarshalYAML implements [yaml.Unmarshaler].
func (i *Item) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var s string
		if err := value.Decode(&s); err != nil {
			return err
		}
		*i = Literal(s)
	case yaml.SequenceNode:
		var items []Item
		if err := value.Decode(&items); err != nil {
			return err
		}
		*i = Compound(items...)
	case yaml.MappingNode:
		for k := 0; k < len(value.Content); k += 2 {
			if key := value.Content[k].Value; !componentKeys[key] {
				return fmt.Errorf("%w: line %d: unknown key %q", ErrInvalidItem, value.Content[k].Line, key)
			}
		}
		var c componentYAML
		if err := value.Decode(&c); err != nil {
			return err
		}
		if c.Component == 0 {
			return fmt.Errorf("%w: line %d: mapping item has no component", ErrInvalidItem, value.Line)
		}
		*i = ComponentItem(Component{
			Field:        c.Component,
			Padding:      c.Padding,
			TwoDigitYear: c.TwoDigitYear,
			ForceSign:    c.ForceSign,
			TwelveHour:   c.TwelveHour,
			Lowercase:    c.Lowercase,
			Digits:       c.Digits,
		})
	case yaml.AliasNode:
		return i.UnmarshalYAML(value.Alias)
	default:
		return fmt.Errorf("%w: line %d: unexpected node", ErrInvalidItem, value.Line)
	}
	return nil
}

// MarshalYAML implements [yaml.Marshaler].
func (f Field) MarshalYAML() (any, error) {
	if _, ok := fieldNames[f]; !ok {
		return nil, fmt.Errorf("%w: unknown component %s", ErrInvalidItem, f)
	}
	return f.String(), nil
}

// UnmarshalYAML implements [yaml.Unmarshaler].
func (f *Field) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseField(s)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// MarshalYAML implements [yaml.Marshaler].
func (p Padding) MarshalYAML() (any, error) {
	if _, ok := paddingNames[p]; !ok {
		return nil, fmt.Errorf("%w: unknown padding %s", ErrInvalidItem, p)
	}
	return p.String(), nil
}

// UnmarshalYAML implements [yaml.Unmarshaler].
func (p *Padding) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParsePadding(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// DecodeYAML reads an item document from r. A top-level sequence becomes a
// flat [Sequence]; any other item becomes a [Single] description. An empty
// document yields the empty Description.
func DecodeYAML(r io.Reader) (Description, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return Description{}, nil
		}
		return Description{}, invalidItem(err)
	}
	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind == yaml.SequenceNode {
		var items []Item
		if err := root.Decode(&items); err != nil {
			return Description{}, invalidItem(err)
		}
		return Sequence(items...), nil
	}
	var item Item
	if err := root.Decode(&item); err != nil {
		return Description{}, invalidItem(err)
	}
	return Single(item), nil
}

// EncodeYAML writes items to w as a YAML sequence.
func EncodeYAML(w io.Writer, items ...Item) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if items == nil {
		items = []Item{}
	}
	if err := enc.Encode(items); err != nil {
		return err
	}
	return enc.Close()
}

func invalidItem(err error) error {
	if errors.Is(err, ErrInvalidItem) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrInvalidItem, err)
}
