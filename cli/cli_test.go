package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSeparator(t *testing.T) {
	expectedValues := map[string]string{
		`\n---\n`: "\n---\n",
		`\t`:      "\t",
		` / `:     " / ",
		``:        "",
	}
	for in, expected := range expectedValues {
		assert.Equal(t, expected, ParseSeparator(in))
	}
}
