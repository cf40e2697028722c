package library

import (
	"testing"

	"github.com/specialistvlad/graphflow/internal/schema"
	"github.com/specialistvlad/graphflow/internal/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLibrary_Lookups(t *testing.T) {
	lib := New(schema.NewBuilder().
		Node(schema.NewNodeBuilder("repeat").
			Command("start").
			Event("executed").
			Input("times", value.Integer).
			Build()).
		Node(schema.NewNodeBuilder("integer").
			Input("value", value.Integer).
			Output("return-value", value.Integer).
			Build()).
		Build())

	testCases := []struct {
		name      string
		lookup    func(schema.NodeID, schema.PropertyID) (Ref, error)
		template  schema.NodeID
		property  schema.PropertyID
		expectErr error
	}{
		{name: "command", lookup: lib.Command, template: "repeat", property: "start"},
		{name: "event", lookup: lib.Event, template: "repeat", property: "executed"},
		{name: "input", lookup: lib.Input, template: "repeat", property: "times"},
		{name: "output", lookup: lib.Output, template: "integer", property: "return-value"},
		{name: "event is not a command", lookup: lib.Command, template: "repeat", property: "executed", expectErr: ErrWrongKind},
		{name: "input is not an output", lookup: lib.Output, template: "integer", property: "value", expectErr: ErrWrongKind},
		{name: "missing property", lookup: lib.Event, template: "repeat", property: "stop", expectErr: ErrNotFound},
		{name: "missing template", lookup: lib.Command, template: "printer", property: "print", expectErr: ErrNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ref, err := tc.lookup(tc.template, tc.property)
			if tc.expectErr != nil {
				require.ErrorIs(t, err, tc.expectErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.template, ref.Node.ID())
			assert.Equal(t, tc.property, ref.Property.ID())
		})
	}
}
