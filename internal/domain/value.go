package domain

import "fmt"

// ValueKind tags a property value read from a node
type ValueKind int

const (
	// ValueUnsupported means the node does not expose the property
	ValueUnsupported ValueKind = iota
	// ValueConcrete carries a single assignable value
	ValueConcrete
	// ValueIndeterminate means the value is mixed across a sub-range of the node
	ValueIndeterminate
)

func (k ValueKind) String() string {
	switch k {
	case ValueConcrete:
		return "concrete"
	case ValueIndeterminate:
		return "indeterminate"
	default:
		return "unsupported"
	}
}

// Value is a property value: Concrete(v), Indeterminate or Unsupported
type Value struct {
	kind ValueKind
	raw  any
}

var (
	// Indeterminate is the mixed-value sentinel
	Indeterminate = Value{kind: ValueIndeterminate}
	// Unsupported is returned for properties a node does not have
	Unsupported = Value{kind: ValueUnsupported}
)

// Concrete wraps v as an assignable value
func Concrete(v any) Value {
	return Value{kind: ValueConcrete, raw: v}
}

// Kind returns the tag of the value
func (v Value) Kind() ValueKind { return v.kind }

// Raw returns the wrapped value; nil unless the value is concrete
func (v Value) Raw() any { return v.raw }

func (v Value) IsConcrete() bool      { return v.kind == ValueConcrete }
func (v Value) IsIndeterminate() bool { return v.kind == ValueIndeterminate }
func (v Value) IsUnsupported() bool   { return v.kind == ValueUnsupported }

// Font returns the wrapped FontName, if the value holds one
func (v Value) Font() (FontName, bool) {
	if v.kind != ValueConcrete {
		return FontName{}, false
	}
	switch f := v.raw.(type) {
	case FontName:
		return f, true
	case *FontName:
		if f != nil {
			return *f, true
		}
	}
	return FontName{}, false
}

func (v Value) String() string {
	if v.kind != ValueConcrete {
		return "<" + v.kind.String() + ">"
	}
	return fmt.Sprintf("%v", v.raw)
}
