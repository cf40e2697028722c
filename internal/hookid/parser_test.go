package hookid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name         string
		raw          string
		expectErr    bool
		expectedAddr Address
	}{
		{
			name:         "simple hook",
			raw:          "p1#content",
			expectedAddr: Address{Instance: "p1", Property: "content"},
		},
		{
			name:         "hyphenated property",
			raw:          "n1#return-value",
			expectedAddr: Address{Instance: "n1", Property: "return-value"},
		},
		{
			name:      "error - empty string",
			raw:       "",
			expectErr: true,
		},
		{
			name:      "error - missing separator",
			raw:       "p1.content",
			expectErr: true,
		},
		{
			name:      "error - empty instance",
			raw:       "#content",
			expectErr: true,
		},
		{
			name:      "error - empty property",
			raw:       "p1#",
			expectErr: true,
		},
		{
			name:      "error - second separator",
			raw:       "p1#a#b",
			expectErr: true,
		},
		{
			name:      "error - invalid name just hyphen",
			raw:       "-#x",
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			addr, err := Parse(tc.raw)
			if tc.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedAddr, addr)
		})
	}
}

func TestParseEdge(t *testing.T) {
	e, err := ParseEdge("a1#triggered>r1#start")
	require.NoError(t, err)
	assert.Equal(t, Address{Instance: "a1", Property: "triggered"}, e.Source)
	assert.Equal(t, Address{Instance: "r1", Property: "start"}, e.Target)

	_, err = ParseEdge("a1#triggered")
	require.Error(t, err)

	_, err = ParseEdge("a1#triggered>r1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "target")
}

func TestRoundTrip(t *testing.T) {
	for _, raw := range []string{"a#b", "six#return-value>plus#a", "http_1#x.y>z#w"} {
		t.Run(raw, func(t *testing.T) {
			e, err := ParseEdge(raw)
			if err == nil {
				assert.Equal(t, raw, e.String())
				return
			}
			addr, err := Parse(raw)
			require.NoError(t, err)
			assert.Equal(t, raw, addr.String())
		})
	}
}
