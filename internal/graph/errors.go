package graph

import (
	"errors"
	"fmt"
	"strings"

	"github.com/specialistvlad/graphflow/internal/schema"
)

var (
	ErrUnknownTemplate       = errors.New("unknown template")
	ErrDuplicateKey          = errors.New("duplicate instance key")
	ErrUnknownInstance       = errors.New("unknown instance")
	ErrUnknownProperty       = errors.New("unknown property")
	ErrNotADataProperty      = errors.New("not a data property")
	ErrTypeMismatch          = errors.New("type mismatch")
	ErrSelfConnection        = errors.New("self connection")
	ErrInvalidSourceRole     = errors.New("invalid source role")
	ErrInvalidTargetRole     = errors.New("invalid target role")
	ErrEventRequiresCommand  = errors.New("event requires command")
	ErrCommandRequiresEvent  = errors.New("command requires event")
	ErrDuplicateEdge         = errors.New("duplicate edge")
	ErrInputAlreadyConnected = errors.New("input already connected")
	ErrMissingValue          = errors.New("missing value")
	ErrBuilderClosed         = errors.New("builder closed")
)

// Error is a validation failure raised by Builder. Kind is one of the Err*
// sentinels above.
type Error struct {
	Kind     error
	Instance string
	Template schema.NodeID
	Property schema.PropertyID
	// Edge is the canonical "src>tgt" key when the failure concerns a wire.
	Edge   string
	Detail string
}

func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString("graph: ")
	sb.WriteString(e.Kind.Error())
	if e.Instance != "" {
		fmt.Fprintf(&sb, ": instance '%s'", e.Instance)
	}
	if e.Template != "" {
		fmt.Fprintf(&sb, " template '%s'", e.Template)
	}
	if e.Property != "" {
		fmt.Fprintf(&sb, " property '%s'", e.Property)
	}
	if e.Edge != "" {
		fmt.Fprintf(&sb, " (edge %s)", e.Edge)
	}
	if e.Detail != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Detail)
	}
	return sb.String()
}

func (e *Error) Unwrap() error { return e.Kind }
