package schema

import (
	"fmt"

	"github.com/specialistvlad/graphflow/internal/value"
)

// PropertyID names a property within one template.
type PropertyID string

// Kind is the variant tag of a Property.
type Kind int

const (
	KindEvent Kind = iota
	KindCommand
	KindInput
	KindOutput
)

func (k Kind) String() string {
	switch k {
	case KindEvent:
		return "event"
	case KindCommand:
		return "command"
	case KindInput:
		return "input"
	case KindOutput:
		return "output"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Property is a named point of interaction on a template. It is a closed
// variant; construct it with Event, Command, Input or Output.
type Property struct {
	id         PropertyID
	kind       Kind
	dataType   value.DataType
	defaultVal value.Value
	hasDefault bool
}

// Event declares a control property that fires without data.
func Event(id PropertyID) Property {
	return Property{id: id, kind: KindEvent}
}

// Command declares a control property that an Event invokes.
func Command(id PropertyID) Property {
	return Property{id: id, kind: KindCommand}
}

// Input declares a typed data property without a default.
func Input(id PropertyID, dt value.DataType) Property {
	return Property{id: id, kind: KindInput, dataType: dt}
}

// InputWithDefault declares an Input whose type is taken from def.
func InputWithDefault(id PropertyID, def value.Value) Property {
	return Property{id: id, kind: KindInput, dataType: def.DataType(), defaultVal: def, hasDefault: true}
}

// Output declares a typed data property produced by the node.
func Output(id PropertyID, dt value.DataType) Property {
	return Property{id: id, kind: KindOutput, dataType: dt}
}

func (p Property) ID() PropertyID { return p.id }
func (p Property) Kind() Kind     { return p.kind }

func (p Property) IsEvent() bool   { return p.kind == KindEvent }
func (p Property) IsCommand() bool { return p.kind == KindCommand }
func (p Property) IsInput() bool   { return p.kind == KindInput }
func (p Property) IsOutput() bool  { return p.kind == KindOutput }

// IsData reports whether p carries a value (Input or Output).
func (p Property) IsData() bool { return p.kind == KindInput || p.kind == KindOutput }

// IsControl reports whether p is an Event or a Command.
func (p Property) IsControl() bool { return !p.IsData() }

// IsSource reports whether p must be satisfied from outside the node
// (Input or Command). The name is about who drives whom, not edge direction.
func (p Property) IsSource() bool { return p.kind == KindInput || p.kind == KindCommand }

// IsTarget reports whether p produces toward the outside (Event or Output).
func (p Property) IsTarget() bool { return !p.IsSource() }

// DataType returns the type of a data property. ok is false for control
// properties.
func (p Property) DataType() (dt value.DataType, ok bool) {
	return p.dataType, p.IsData()
}

// Default returns the default value of an Input, if it declares one.
func (p Property) Default() (value.Value, bool) {
	return p.defaultVal, p.hasDefault
}

// String renders the property as "kind:id" or "kind:id:type".
func (p Property) String() string {
	if p.IsData() {
		return fmt.Sprintf("%s:%s:%s", p.kind, p.id, p.dataType)
	}
	return fmt.Sprintf("%s:%s", p.kind, p.id)
}
