package testutil

import (
	"testing"

	"github.com/specialistvlad/graphflow/internal/graph"
	"github.com/specialistvlad/graphflow/internal/schema"
	"github.com/stretchr/testify/require"
)

// Place returns an instance of tmpl keyed key, built against a schema that
// contains only tmpl.
func Place(t *testing.T, tmpl schema.Node, key string) *graph.PlacedNode {
	t.Helper()
	b := graph.NewBuilder(schema.NewBuilder().Node(tmpl).Build())
	n, err := b.Node(tmpl.ID(), key)
	require.NoError(t, err)
	return n
}
