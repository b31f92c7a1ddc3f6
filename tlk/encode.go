package tlk

import (
	"bhaalingual/tlk/tcharset"
	"bhaalingual/tlk/tentry"
	"bhaalingual/tlk/theader"
	"github.com/pkg/errors"
)

// Encode lays the file out as header, entry table, then a densely packed
// string blob in entry order. Every offset and length is recomputed from the
// table's current state, and FlagText is rewritten to match actual text
// presence regardless of what each entry's flags say. The table itself is
// never mutated.
func Encode(table Table, codec *tcharset.Codec) ([]byte, error) {
	encodedTexts := make([][]byte, 0, len(table.Entries))
	for i, entry := range table.Entries {
		encodedText, err := codec.Encode(entry.Text)
		if err != nil {
			err := errors.Wrapf(err, "tlk.Encode error at entry %d", i)
			return nil, err
		}
		encodedTexts = append(encodedTexts, encodedText)
	}

	stringBlock := make([]byte, 0)
	records := make([]tentry.Record, 0, len(table.Entries))
	for i, entry := range table.Entries {
		flags := entry.Flags
		if entry.Text != "" {
			flags |= tentry.FlagText
		} else {
			flags &^= tentry.FlagText
		}
		records = append(
			records,
			tentry.Record{
				Flags:          flags,
				SoundResref:    entry.SoundResref,
				VolumeVariance: entry.VolumeVariance,
				PitchVariance:  entry.PitchVariance,
				StringOffset:   uint32(len(stringBlock)),
				StringLength:   uint32(len(encodedTexts[i])),
			},
		)
		stringBlock = append(stringBlock, encodedTexts[i]...)
	}

	header := theader.Header{
		Signature:         theader.SignatureBytes,
		Version:           theader.VersionBytes,
		LanguageID:        table.LanguageID,
		NumEntries:        uint32(len(table.Entries)),
		StringBlockOffset: uint32(theader.DefaultHeaderSize + tentry.CalculateBlockSize(len(table.Entries))),
	}

	bs := make([]byte, 0, theader.DefaultHeaderSize+tentry.CalculateBlockSize(len(records))+len(stringBlock))
	bs = append(bs, theader.Encode(header)...)
	bs = append(bs, tentry.EncodeBlock(records)...)
	bs = append(bs, stringBlock...)
	return bs, nil
}
