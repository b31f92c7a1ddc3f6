package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecide(t *testing.T) {
	expectedOutcomes := map[[2]string]Outcome{
		{"", ""}:                             OutcomeKeepEmpty,
		{"   ", "\n"}:                        OutcomeKeepEmpty,
		{"Gleicher Text", "Gleicher Text"}:   OutcomeKeepPrimary,
		{"Nur Primär", ""}:                   OutcomeKeepPrimary,
		{"Nur Primär", "  "}:                 OutcomeKeepPrimary,
		{"", "Only Secondary"}:               OutcomeKeepSecondary,
		{"Hallo Welt", "Hello World"}:        OutcomeCombine,
		{" Gleicher Text ", "Gleicher Text"}: OutcomeKeepPrimary,
	}
	for texts, expected := range expectedOutcomes {
		assert.Equal(t, expected, Decide(texts[0], texts[1]), "Decide(%q, %q)", texts[0], texts[1])
	}
}
