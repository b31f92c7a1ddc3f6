package tentry

import (
	"testing"

	"bhaalingual/tlk/lbytes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPadResref(t *testing.T) {
	assert.Equal(
		t,
		[]byte{'G', 'O', 'N', 'G', 0, 0, 0, 0},
		PadResref([]byte("GONG")),
	)
	assert.Equal(
		t,
		[]byte("EXACTLY8"),
		PadResref([]byte("EXACTLY8")),
	)
	assert.Equal(
		t,
		[]byte("TOO_LONG"),
		PadResref([]byte("TOO_LONG_RESREF")),
	)
	assert.Equal(
		t,
		make([]byte, ResrefSize),
		PadResref(nil),
	)
}

func TestEncodeRecord(t *testing.T) {
	record := Record{
		Flags:          FlagText | FlagSound,
		SoundResref:    []byte("GONG"),
		VolumeVariance: 7,
		PitchVariance:  9,
		StringOffset:   256,
		StringLength:   13,
	}

	bs := EncodeRecord(record)
	require.Len(t, bs, DefaultRecordSize)
	assert.Equal(t, []byte{3, 0}, bs[0:2])
	assert.Equal(t, []byte{'G', 'O', 'N', 'G', 0, 0, 0, 0}, bs[2:10])
	assert.Equal(t, []byte{7, 0, 0, 0}, bs[10:14])
	assert.Equal(t, []byte{9, 0, 0, 0}, bs[14:18])
	assert.Equal(t, []byte{0, 1, 0, 0}, bs[18:22])
	assert.Equal(t, []byte{13, 0, 0, 0}, bs[22:26])
}

func TestEncodeDecodeRecord(t *testing.T) {
	record := Record{
		Flags:          FlagText,
		SoundResref:    []byte("CRE12345"),
		VolumeVariance: 1,
		PitchVariance:  2,
		StringOffset:   3,
		StringLength:   4,
	}

	reader := lbytes.NewBytesReader(EncodeRecord(record))
	decoded, err := DecodeRecord(reader)
	require.NoError(t, err)
	assert.Equal(t, record, *decoded)
}

func TestDecodeBlock(t *testing.T) {
	first := Record{Flags: FlagText, StringLength: 5}
	second := Record{Flags: 0, StringOffset: 5, StringLength: 0}
	bs := append(EncodeRecord(first), EncodeRecord(second)...)

	reader := lbytes.NewBytesReader(bs)
	records, err := DecodeBlock(reader, 2)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, PadResref(nil), records[0].SoundResref)
	assert.Equal(t, uint32(5), records[0].StringLength)
	assert.Equal(t, uint32(5), records[1].StringOffset)
}

func TestDecodeBlock_Truncated(t *testing.T) {
	bs := EncodeRecord(Record{Flags: FlagText})

	reader := lbytes.NewBytesReader(bs[:20])
	records, err := DecodeBlock(reader, 1)
	assert.Nil(t, records)
	assert.Error(t, err)
}

func TestEntryFlags(t *testing.T) {
	entry := Entry{Flags: FlagText | FlagToken}
	assert.True(t, entry.HasText())
	assert.False(t, entry.HasSound())
	assert.True(t, entry.HasToken())
}
