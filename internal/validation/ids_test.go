package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDSet(t *testing.T) {
	s := NewIDSet("b", "a")
	s.Add("c")
	s.Add("a")

	assert.True(t, s.Has("a"))
	assert.False(t, s.Has("z"))
	assert.Equal(t, []string{"a", "b", "c"}, s.Sorted())
}

func TestParseIDScope(t *testing.T) {
	scope, err := ParseIDScope("file")
	require.NoError(t, err)
	assert.Equal(t, ScopeFile, scope)

	scope, err = ParseIDScope("")
	require.NoError(t, err)
	assert.Equal(t, ScopeGlobal, scope)

	_, err = ParseIDScope("shift")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown ticket id scope")
}

func TestDefaultRequiredKeys_ReturnsFreshTables(t *testing.T) {
	keys := DefaultRequiredKeys()
	keys.Ticket[0] = "mutated"

	assert.Equal(t, "id", DefaultRequiredKeys().Ticket[0])
	assert.Len(t, DefaultRequiredKeys().Ticket, 9)
	assert.Equal(t, []string{"toast_id", "mood_delta", "contradiction_delta"}, DefaultRequiredKeys().Outcome)
}
