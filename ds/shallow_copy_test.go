package ds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShallowCopy(t *testing.T) {
	original := []byte("GONG")
	copied := ShallowCopy(original)
	assert.Equal(t, original, copied)

	copied[0] = 'X'
	assert.Equal(t, []byte("GONG"), original)
}
