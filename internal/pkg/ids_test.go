package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateGameID(t *testing.T) {
	// When: a few IDs are generated
	ids := make(map[string]bool)
	for i := 0; i < 20; i++ {
		id, err := GenerateGameID()
		require.NoError(t, err)

		// Then: each one is eight digits
		assert.Len(t, id, 8)
		assert.Regexp(t, `^[0-9]{8}$`, id)
		ids[id] = true
	}

	assert.Greater(t, len(ids), 1)
}
