package tentry

import (
	"bhaalingual/tlk/lbytes"
	"github.com/pkg/errors"
)

func DecodeRecord(reader *lbytes.Reader) (*Record, error) {
	readUint16 := lbytes.CreateUint16ReadFunction(reader)
	readUint32 := lbytes.CreateUint32ReadFunction(reader)
	readResref := lbytes.CreateNBytesReadFunction(reader, ResrefSize)

	recordInstructions := []lbytes.Instruction{
		{Key: "flags", ReadFunction: readUint16},
		{Key: "sound_resref", ReadFunction: readResref},
		{Key: "volume_variance", ReadFunction: readUint32},
		{Key: "pitch_variance", ReadFunction: readUint32},
		{Key: "string_offset", ReadFunction: readUint32},
		{Key: "string_length", ReadFunction: readUint32},
	}
	record, err := lbytes.ExecuteInstructions[Record](recordInstructions)
	if err != nil {
		err := errors.Wrap(err, "DecodeRecord error")
		return nil, err
	}

	return record, nil
}

func DecodeBlock(reader *lbytes.Reader, numEntries int) ([]Record, error) {
	records := make([]Record, 0, numEntries)
	for i := 0; i < numEntries; i++ {
		record, err := DecodeRecord(reader)
		if err != nil {
			err := errors.Wrapf(err, "tentry.DecodeBlock error at entry %d", i)
			return nil, err
		}
		if record == nil {
			return nil, errors.New("tentry.DecodeBlock unreachable code")
		}
		records = append(records, *record)
	}

	return records, nil
}
