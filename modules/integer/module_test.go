package integer

import (
	"context"
	"testing"

	"github.com/specialistvlad/graphflow/internal/processor"
	"github.com/specialistvlad/graphflow/internal/testutil"
	"github.com/specialistvlad/graphflow/internal/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessor_Evaluate(t *testing.T) {
	req := &processor.Request{
		Node:   testutil.Place(t, Node(), "six"),
		Inputs: processor.Values{Value: value.NewInteger(6)},
	}

	v, err := Processor{}.Evaluate(context.Background(), req, ReturnValue)
	require.NoError(t, err)
	assert.Equal(t, value.NewInteger(6), v)

	_, err = Processor{}.Evaluate(context.Background(), req, "other")
	require.ErrorIs(t, err, processor.ErrSkip)

	_, err = Processor{}.Execute(context.Background(), req, "run")
	require.ErrorIs(t, err, processor.ErrSkip, "integer has no commands")
}

func TestProcessor_Evaluate_MissingInput(t *testing.T) {
	req := &processor.Request{Node: testutil.Place(t, Node(), "n"), Inputs: processor.Values{}}
	_, err := Processor{}.Evaluate(context.Background(), req, ReturnValue)
	require.ErrorIs(t, err, processor.ErrSkip)
}
