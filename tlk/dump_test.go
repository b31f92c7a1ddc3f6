package tlk

import (
	"bytes"
	"strings"
	"testing"

	"bhaalingual/tlk/tentry"
	"github.com/stretchr/testify/assert"
)

func createDumpTable() Table {
	table := New(0)
	table.Entries = []tentry.Entry{
		{Text: "Hallo", Flags: tentry.FlagText},
		{Text: "   "},
		{Text: "Welt", SoundResref: []byte("GONG\x00\x00\x00\x00"), Flags: tentry.FlagText | tentry.FlagSound},
	}
	return *table
}

func TestDump(t *testing.T) {
	buffer := bytes.Buffer{}
	Dump(&buffer, createDumpTable(), 100, false)

	output := buffer.String()
	assert.Contains(t, output, "TLK: 3 entries, language_id=0")
	assert.Contains(t, output, `text="Hallo"`)
	assert.Contains(t, output, `text="Welt"`)
	assert.Contains(t, output, `sound="GONG"`)
	// blank entry is skipped
	assert.Equal(t, 3, len(strings.Split(strings.TrimRight(output, "\n"), "\n")))
}

func TestDump_ShowEmpty(t *testing.T) {
	buffer := bytes.Buffer{}
	Dump(&buffer, createDumpTable(), 100, true)

	output := buffer.String()
	assert.Equal(t, 4, len(strings.Split(strings.TrimRight(output, "\n"), "\n")))
}

func TestDump_MaxEntries(t *testing.T) {
	buffer := bytes.Buffer{}
	Dump(&buffer, createDumpTable(), 1, false)

	output := buffer.String()
	assert.Contains(t, output, `text="Hallo"`)
	assert.NotContains(t, output, `text="Welt"`)
}

func TestDump_TruncatesLongText(t *testing.T) {
	table := New(0)
	table.Entries = []tentry.Entry{
		{Text: strings.Repeat("ä", 200), Flags: tentry.FlagText},
	}

	buffer := bytes.Buffer{}
	Dump(&buffer, *table, 100, false)

	assert.Contains(t, buffer.String(), strings.Repeat("ä", 80))
	assert.NotContains(t, buffer.String(), strings.Repeat("ä", 81))
}
