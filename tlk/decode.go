package tlk

import (
	"bhaalingual/tlk/lbytes"
	"bhaalingual/tlk/tcharset"
	"bhaalingual/tlk/tentry"
	"bhaalingual/tlk/theader"
	"github.com/pkg/errors"
)

func Decode(bs []byte, codec *tcharset.Codec) (*Table, error) {
	reader := lbytes.NewBytesReader(bs)

	header, err := theader.Decode(reader)
	if err != nil {
		err := errors.Wrap(err, "tlk.Decode error")
		return nil, err
	}
	// check the claimed count against the buffer before it sizes any
	// allocation; an 18-byte file must not dictate a multi-gigabyte one
	maxEntries := (len(bs) - theader.DefaultHeaderSize) / tentry.DefaultRecordSize
	if uint64(header.NumEntries) > uint64(maxEntries) {
		err := EntryCountError{
			NumEntries: header.NumEntries,
			MaxEntries: maxEntries,
			BufferSize: len(bs),
		}
		return nil, errors.Wrap(err, "tlk.Decode error")
	}
	records, err := tentry.DecodeBlock(reader, int(header.NumEntries))
	if err != nil {
		err := errors.Wrap(err, "tlk.Decode error")
		return nil, err
	}

	table := New(header.LanguageID)
	table.Entries = make([]tentry.Entry, 0, len(records))
	blobStart := int(header.StringBlockOffset)
	for i, record := range records {
		start := blobStart + int(record.StringOffset)
		end := start + int(record.StringLength)
		if start < blobStart || end < start || end > len(bs) {
			err := OutOfBoundsError{
				EntryIndex: i,
				Start:      start,
				End:        end,
				BufferSize: len(bs),
			}
			return nil, errors.Wrap(err, "tlk.Decode error")
		}
		text, err := codec.Decode(bs[start:end])
		if err != nil {
			err := errors.Wrapf(err, "tlk.Decode error at entry %d", i)
			return nil, err
		}
		table.Entries = append(
			table.Entries,
			tentry.Entry{
				Text:           text,
				SoundResref:    record.SoundResref,
				Flags:          record.Flags,
				VolumeVariance: record.VolumeVariance,
				PitchVariance:  record.PitchVariance,
			},
		)
	}

	return table, nil
}
