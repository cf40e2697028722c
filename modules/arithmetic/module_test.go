package arithmetic

import (
	"context"
	"testing"

	"github.com/specialistvlad/graphflow/internal/processor"
	"github.com/specialistvlad/graphflow/internal/registry"
	"github.com/specialistvlad/graphflow/internal/schema"
	"github.com/specialistvlad/graphflow/internal/testutil"
	"github.com/specialistvlad/graphflow/internal/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArithmetic(t *testing.T) {
	r := registry.New()
	(&Module{}).Register(r)
	_, router, err := r.Build(testutil.NewTestContext(&testutil.SafeBuffer{}))
	require.NoError(t, err)

	testCases := []struct {
		template schema.NodeID
		a, b     int64
		expected int64
	}{
		{template: Plus, a: 6, b: 4, expected: 10},
		{template: Minus, a: 10, b: 3, expected: 7},
		{template: Minus, a: 3, b: 10, expected: -7},
	}

	for _, tc := range testCases {
		t.Run(string(tc.template), func(t *testing.T) {
			p, ok := router.Route(tc.template)
			require.True(t, ok)
			req := &processor.Request{
				Node:   testutil.Place(t, Node(tc.template), "op"),
				Inputs: processor.Values{A: value.NewInteger(tc.a), B: value.NewInteger(tc.b)},
			}
			v, err := p.(processor.Evaluator).Evaluate(context.Background(), req, C)
			require.NoError(t, err)
			assert.Equal(t, value.NewInteger(tc.expected), v)
		})
	}
}

func TestArithmetic_WrongInputType(t *testing.T) {
	req := &processor.Request{
		Node:   testutil.Place(t, Node(Plus), "op"),
		Inputs: processor.Values{A: value.NewInteger(1), B: value.NewString("2")},
	}
	_, err := Processor{op: func(a, b int64) int64 { return a + b }}.Evaluate(context.Background(), req, C)
	require.ErrorIs(t, err, processor.ErrSkip)
}
