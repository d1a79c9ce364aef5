package implementation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddingsTableDDLUsesConfiguredDimension(t *testing.T) {
	statements := embeddingsTableDDL(512)
	require.NotEmpty(t, statements)

	assert.Contains(t, statements[0], "vector(512)")
	assert.NotContains(t, statements[0], "vector(768)")
}

func TestEmbeddingsTableDDLIsIdempotent(t *testing.T) {
	for _, stmt := range embeddingsTableDDL(768) {
		assert.Contains(t, stmt, "IF NOT EXISTS")
	}
}
