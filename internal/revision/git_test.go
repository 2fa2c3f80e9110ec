package revision

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	t.Run("plain directory has no revision", func(t *testing.T) {
		rev, ok := Lookup(t.TempDir())
		assert.False(t, ok)
		assert.Empty(t, rev)
	})

	t.Run("missing directory has no revision", func(t *testing.T) {
		_, ok := Lookup("/does/not/exist")
		assert.False(t, ok)
	})
}
