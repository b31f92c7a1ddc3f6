package tentry

import (
	"bhaalingual/tlk/lbytes"
)

// PadResref fits a sound resref into its fixed wire width:
// exactly ResrefSize bytes, zero-padded on the right, truncated when longer.
func PadResref(resref []byte) []byte {
	bs := make([]byte, ResrefSize)
	copy(bs, resref)
	return bs
}

func EncodeRecord(record Record) []byte {
	bs := make([]byte, 0, DefaultRecordSize)
	bs = append(bs, lbytes.EncodeValueUint16(record.Flags)...)
	bs = append(bs, PadResref(record.SoundResref)...)
	bs = append(bs, lbytes.EncodeValueUint32(record.VolumeVariance)...)
	bs = append(bs, lbytes.EncodeValueUint32(record.PitchVariance)...)
	bs = append(bs, lbytes.EncodeValueUint32(record.StringOffset)...)
	bs = append(bs, lbytes.EncodeValueUint32(record.StringLength)...)
	return bs
}

func EncodeBlock(records []Record) []byte {
	bs := make([]byte, 0, DefaultRecordSize*len(records))
	for _, record := range records {
		bs = append(bs, EncodeRecord(record)...)
	}
	return bs
}

func CalculateBlockSize(numEntries int) int {
	return numEntries * DefaultRecordSize
}
