package action

import (
	"context"
	"testing"

	"github.com/specialistvlad/graphflow/internal/processor"
	"github.com/specialistvlad/graphflow/internal/schema"
	"github.com/specialistvlad/graphflow/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessor_Execute(t *testing.T) {
	req := &processor.Request{Node: testutil.Place(t, Node(), "a1")}
	ctx := testutil.NewTestContext(&testutil.SafeBuffer{})

	fired, err := Processor{}.Execute(ctx, req, Trigger)
	require.NoError(t, err)
	assert.Equal(t, []schema.PropertyID{Triggered}, fired)

	_, err = Processor{}.Execute(context.Background(), req, "explode")
	require.ErrorIs(t, err, processor.ErrSkip)
	assert.True(t, processor.IsReentrant(Processor{}))
}
