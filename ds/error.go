// Package ds holds small generic helpers shared across the module.
package ds

import (
	"fmt"
)

type (
	// ErrUnreachableCode marks a code path that a correct decision table
	// should never take.
	ErrUnreachableCode struct {
		Caller string
	}
)

func (r ErrUnreachableCode) Error() string {
	return fmt.Sprintf("%s: unreachable code", r.Caller)
}
