// Package tlk stores the code to decode and encode Infinity Engine
// TLK v1 string-table files (dialog.tlk and dialogf.tlk).
package tlk

import (
	"bytes"
	"fmt"

	"bhaalingual/tlk/tentry"
	"bhaalingual/tlk/theader"
)

type (
	// Table is one decoded string-table file. Entries are positional:
	// index i is the string reference i used by the rest of the game,
	// so the slice must never be reordered.
	Table struct {
		LanguageID uint16         `json:"language_id"`
		Entries    []tentry.Entry `json:"entries"`
	}
	// OutOfBoundsError reports a string slice whose computed range falls
	// outside the file buffer, instead of silently returning garbage.
	OutOfBoundsError struct {
		EntryIndex int
		Start      int
		End        int
		BufferSize int
	}
	// EntryCountError reports a header that claims more entries than the
	// buffer can physically hold. The count must be checked before it is
	// used for anything, allocation included.
	EntryCountError struct {
		NumEntries uint32
		MaxEntries int
		BufferSize int
	}
)

func New(languageID uint16) *Table {
	return &Table{
		LanguageID: languageID,
		Entries:    []tentry.Entry{},
	}
}

func (t *Table) Len() int {
	return len(t.Entries)
}

func IsTLKFile(bs []byte) bool {
	return len(bs) >= len(theader.SignatureBytes) &&
		bytes.Equal(bs[:len(theader.SignatureBytes)], theader.SignatureBytes)
}

func (e OutOfBoundsError) Error() string {
	return fmt.Sprintf(
		"entry %d: string range [%d:%d) is outside the %d-byte buffer",
		e.EntryIndex, e.Start, e.End, e.BufferSize,
	)
}

func (e EntryCountError) Error() string {
	return fmt.Sprintf(
		"header claims %d entries, but the %d-byte buffer holds at most %d",
		e.NumEntries, e.BufferSize, e.MaxEntries,
	)
}
