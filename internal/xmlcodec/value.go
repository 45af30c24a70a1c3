package xmlcodec

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// Kind tags the shape of a decoded XML node.
type Kind uint8

const (
	// Absent is a node that is not in the document.
	Absent Kind = iota
	// Null is an element explicitly marked nil (xsi:nil="true").
	Null
	// Text is a leaf element; an empty or self-closing element is empty text.
	Text
	// Number is a leaf element whose text parsed as a number.
	Number
	// Object is an element with child elements.
	Object
	// List holds the values of sibling elements sharing one name.
	List
)

func (k Kind) String() string {
	switch k {
	case Absent:
		return "absent"
	case Null:
		return "null"
	case Text:
		return "text"
	case Number:
		return "number"
	case Object:
		return "object"
	case List:
		return "list"
	default:
		return "unknown"
	}
}

// Value is a decoded XML node.
//
// A single child element decodes as a scalar or Object while repeated
// children decode as a List, so callers cannot tell one from many without
// schema knowledge. Repeated-element sites must normalize with ToArray.
type Value struct {
	kind   Kind
	text   string
	num    float64
	fields map[string]Value
	items  []Value
}

// TextValue returns a Text value.
func TextValue(s string) Value { return Value{kind: Text, text: s} }

// NumberValue returns a Number value.
func NumberValue(f float64) Value { return Value{kind: Number, num: f} }

// NullValue returns a Null value.
func NullValue() Value { return Value{kind: Null} }

// ObjectValue returns an Object value with the given fields.
func ObjectValue(fields map[string]Value) Value { return Value{kind: Object, fields: fields} }

// ListValue returns a List value.
func ListValue(items ...Value) Value { return Value{kind: List, items: items} }

func (v Value) Kind() Kind { return v.kind }

// IsAbsent reports whether v is missing from the document.
func (v Value) IsAbsent() bool { return v.kind == Absent }

// Get returns the named child of an Object, or an Absent value.
func (v Value) Get(name string) Value {
	if v.kind != Object {
		return Value{}
	}
	return v.fields[name]
}

// Path descends through nested objects, stopping at the first absent step.
func (v Value) Path(names ...string) Value {
	for _, name := range names {
		v = v.Get(name)
		if v.kind == Absent {
			return v
		}
	}
	return v
}

// ParserConfig controls how documents are turned into values. It is built once
// and shared read-only by every decode.
type ParserConfig struct {
	// TrimValues strips surrounding whitespace from leaf text.
	TrimValues bool
	// ParseTagValue turns numeric leaf text into Number values.
	ParseTagValue bool
}

// DefaultParserConfig keeps leaf text as text so identifiers such as "007"
// survive; numeric conversion happens in ToNumber.
var DefaultParserConfig = ParserConfig{
	TrimValues:    true,
	ParseTagValue: false,
}

// Parse reads an XML document and returns an Object keyed by its top level
// element names.
func (c ParserConfig) Parse(data []byte) (Value, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return Value{}, fmt.Errorf("failed to parse xml: %w", err)
	}
	return c.object(doc.ChildElements()), nil
}

func (c ParserConfig) object(children []*etree.Element) Value {
	fields := make(map[string]Value, len(children))
	for _, child := range children {
		v := c.element(child)
		existing, ok := fields[child.Tag]
		switch {
		case !ok:
			fields[child.Tag] = v
		case existing.kind == List:
			existing.items = append(existing.items, v)
			fields[child.Tag] = existing
		default:
			fields[child.Tag] = ListValue(existing, v)
		}
	}
	return ObjectValue(fields)
}

func (c ParserConfig) element(el *etree.Element) Value {
	if isNil(el) {
		return NullValue()
	}

	children := el.ChildElements()
	if len(children) > 0 {
		return c.object(children)
	}

	text := el.Text()
	if c.TrimValues {
		text = strings.TrimSpace(text)
	}
	if c.ParseTagValue && text != "" {
		if f, err := strconv.ParseFloat(strings.TrimSpace(text), 64); err == nil {
			return NumberValue(f)
		}
	}
	return TextValue(text)
}

func isNil(el *etree.Element) bool {
	for _, attr := range el.Attr {
		if attr.Key == "nil" && attr.Value == "true" {
			return true
		}
	}
	return false
}
