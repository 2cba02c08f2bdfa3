package instagram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedOptionsDefaultVariables(t *testing.T) {
	variables, err := FeedOptions{}.variables("")
	require.NoError(t, err)

	assert.Equal(t, `{"id":null,"first":12,"after":null}`, variables)
}

func TestFeedOptionsVariablesWithUser(t *testing.T) {
	variables, err := FeedOptions{}.variables("1234")
	require.NoError(t, err)

	assert.Equal(t, `{"id":"1234","first":12,"after":null}`, variables)
}

func TestFeedOptionsVariablesWithCursor(t *testing.T) {
	opts := FeedOptions{Count: 25, After: "QVFEeGxn=="}

	variables, err := opts.variables("1234")
	require.NoError(t, err)

	assert.Equal(t, `{"id":"1234","first":25,"after":"QVFEeGxn=="}`, variables)
}

func TestFeedOptionsNonPositiveCountFallsBack(t *testing.T) {
	variables, err := FeedOptions{Count: -3}.variables("1234")
	require.NoError(t, err)

	assert.Equal(t, `{"id":"1234","first":12,"after":null}`, variables)
}
