package hcl

import (
	"testing"

	"github.com/specialistvlad/graphflow/internal/graph"
	"github.com/specialistvlad/graphflow/internal/schema"
	"github.com/specialistvlad/graphflow/internal/testutil"
	"github.com/specialistvlad/graphflow/internal/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSchema() *schema.Schema {
	return schema.NewBuilder().
		Node(schema.NewNodeBuilder("action").Command("trigger").Event("triggered").Build()).
		Node(schema.NewNodeBuilder("printer").Command("print").Input("content", value.Integer).Build()).
		Node(schema.NewNodeBuilder("integer").Input("value", value.Integer).Output("return-value", value.Integer).Build()).
		Build()
}

func TestLoadGraph(t *testing.T) {
	dir := t.TempDir()
	writeHCL(t, dir, "nodes.hcl", `
instance "action" "a1" {}
instance "integer" "six" {
  value = 6
}
instance "printer" "p1" {}
`)
	writeHCL(t, dir, "wires.hcl", `
connect {
  from = "a1#triggered"
  to   = "p1#print"
}
connect {
  edge = "six#return-value>p1#content"
}
`)
	ctx := testutil.NewTestContext(&testutil.SafeBuffer{})

	g, err := LoadGraph(ctx, testSchema(), dir)
	require.NoError(t, err)
	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 2, g.EdgeCount())

	six, ok := g.Node("six")
	require.True(t, ok)
	v, _ := six.Value("value")
	assert.Equal(t, value.NewInteger(6), v)

	p1, _ := g.Node("p1")
	content, _ := p1.Property("content")
	src, fed := g.Edges().Input(graph.NewHook(p1, content))
	require.True(t, fed)
	assert.Equal(t, "six#return-value", src.String())

	var entries []string
	for _, h := range g.EntryCommands() {
		entries = append(entries, h.String())
	}
	assert.Equal(t, []string{"a1#trigger"}, entries)
}

func TestLoadGraph_OutputAttributePinsValue(t *testing.T) {
	dir := t.TempDir()
	writeHCL(t, dir, "graph.hcl", `
instance "integer" "n" {
  value        = 1
  return-value = 9
}
`)
	ctx := testutil.NewTestContext(&testutil.SafeBuffer{})

	g, err := LoadGraph(ctx, testSchema(), dir)
	require.NoError(t, err)
	n, ok := g.Node("n")
	require.True(t, ok)
	v, ok := n.Value("return-value")
	require.True(t, ok)
	assert.Equal(t, value.NewInteger(9), v)
}

func TestLoadGraph_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		kind    error
		wantErr string
	}{
		{
			name:    "unknown template",
			content: `instance "nope" "x" {}`,
			kind:    graph.ErrUnknownTemplate,
		},
		{
			name:    "duplicate key",
			content: "instance \"action\" \"a\" {}\ninstance \"action\" \"a\" {}",
			kind:    graph.ErrDuplicateKey,
		},
		{
			name:    "unknown attribute",
			content: `instance "integer" "n" { colour = 1 }`,
			kind:    graph.ErrUnknownProperty,
		},
		{
			name:    "assigning a command",
			content: `instance "action" "a" { trigger = 1 }`,
			kind:    graph.ErrNotADataProperty,
		},
		{
			name:    "literal of the wrong type",
			content: `instance "integer" "n" { value = "six" }`,
			kind:    graph.ErrTypeMismatch,
		},
		{
			name:    "input left unbound",
			content: `instance "integer" "n" {}`,
			kind:    graph.ErrMissingValue,
		},
		{
			name: "connect to an unknown instance",
			content: `instance "action" "a" {}
connect {
  from = "a#triggered"
  to   = "ghost#print"
}`,
			kind: graph.ErrUnknownInstance,
		},
		{
			name: "connect with the wrong roles",
			content: `instance "action" "a" {}
instance "printer" "p" { content = 1 }
connect {
  from = "p#print"
  to   = "a#trigger"
}`,
			kind: graph.ErrInvalidSourceRole,
		},
		{
			name: "connect with both forms",
			content: `connect {
  edge = "a#x>b#y"
  from = "a#x"
}`,
			wantErr: "either 'edge' or both",
		},
		{
			name:    "malformed hook",
			content: `connect { edge = "a#x" }`,
			wantErr: "missing '>'",
		},
		{
			name:    "unsupported block",
			content: `node "n" {}`,
			wantErr: "Unsupported block type",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeHCL(t, t.TempDir(), "graph.hcl", tc.content)
			ctx := testutil.NewTestContext(&testutil.SafeBuffer{})

			_, err := LoadGraph(ctx, testSchema(), path)
			require.Error(t, err)
			if tc.kind != nil {
				assert.ErrorIs(t, err, tc.kind)
			}
			if tc.wantErr != "" {
				assert.Contains(t, err.Error(), tc.wantErr)
			}
			if tc.kind != graph.ErrMissingValue {
				assert.Contains(t, err.Error(), "graph.hcl:", "errors carry the file position")
			}
		})
	}
}
