package tlk

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

const dumpTextLimit = 80

// Dump writes a human-readable listing of up to maxEntries entries for
// debugging. Entries whose text is blank are skipped unless showEmpty is set.
func Dump(w io.Writer, table Table, maxEntries int, showEmpty bool) {
	total := table.Len()
	limit := total
	if maxEntries > 0 && maxEntries < total {
		limit = maxEntries
	}
	fmt.Fprintf(w, "TLK: %d entries, language_id=%d\n", total, table.LanguageID)
	for i := 0; i < limit; i++ {
		entry := table.Entries[i]
		if !showEmpty && strings.TrimSpace(entry.Text) == "" {
			continue
		}
		resref := string(bytes.TrimRight(entry.SoundResref, "\x00"))
		text := entry.Text
		if runes := []rune(text); len(runes) > dumpTextLimit {
			text = string(runes[:dumpTextLimit])
		}
		fmt.Fprintf(w, "  [%6d] flags=%02x sound=%-10q text=%q\n", i, entry.Flags, resref, text)
	}
}
