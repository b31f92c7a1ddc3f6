package theader

import (
	"bytes"

	"bhaalingual/tlk/lbytes"
	"github.com/pkg/errors"
)

func createSignatureReadFunction(reader *lbytes.Reader) lbytes.ReadFunction {
	return func() (any, error) {
		signatureBytes, err := reader.ReadBytes(4)
		if err != nil {
			return nil, err
		}
		if !bytes.Equal(signatureBytes, SignatureBytes) {
			return nil, InvalidSignatureError{Actual: signatureBytes}
		}
		return signatureBytes, nil
	}
}

func createVersionReadFunction(reader *lbytes.Reader) lbytes.ReadFunction {
	return func() (any, error) {
		versionBytes, err := reader.ReadBytes(4)
		if err != nil {
			return nil, err
		}
		if !bytes.Equal(versionBytes, VersionBytes) {
			return nil, UnsupportedVersionError{Actual: versionBytes}
		}
		return versionBytes, nil
	}
}

func Decode(reader *lbytes.Reader) (*Header, error) {
	readSignature := createSignatureReadFunction(reader)
	readVersion := createVersionReadFunction(reader)
	readUint16 := lbytes.CreateUint16ReadFunction(reader)
	readUint32 := lbytes.CreateUint32ReadFunction(reader)

	headerInstructions := []lbytes.Instruction{
		{Key: "signature", ReadFunction: readSignature},
		{Key: "version", ReadFunction: readVersion},
		{Key: "language_id", ReadFunction: readUint16},
		{Key: "num_entries", ReadFunction: readUint32},
		{Key: "string_block_offset", ReadFunction: readUint32},
	}

	header, err := lbytes.ExecuteInstructions[Header](headerInstructions)
	if err != nil {
		err := errors.Wrap(err, "theader.Decode error")
		return nil, err
	}

	return header, nil
}
