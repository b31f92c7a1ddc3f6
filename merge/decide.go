package merge

import (
	"strings"
)

func Decide(primaryText string, secondaryText string) Outcome {
	primaryTrimmed := strings.TrimSpace(primaryText)
	secondaryTrimmed := strings.TrimSpace(secondaryText)
	switch {
	case primaryTrimmed == "" && secondaryTrimmed == "":
		return OutcomeKeepEmpty
	case secondaryTrimmed == "" || primaryTrimmed == secondaryTrimmed:
		return OutcomeKeepPrimary
	case primaryTrimmed == "":
		return OutcomeKeepSecondary
	default:
		return OutcomeCombine
	}
}
