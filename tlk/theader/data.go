package theader

import (
	"fmt"
)

type (
	// Header is the fixed 18-byte preamble of a TLK v1 file.
	Header struct {
		Signature         []byte `json:"signature"`
		Version           []byte `json:"version"`
		LanguageID        uint16 `json:"language_id"`
		NumEntries        uint32 `json:"num_entries"`
		StringBlockOffset uint32 `json:"string_block_offset"`
	}
	InvalidSignatureError struct {
		Actual []byte
	}
	UnsupportedVersionError struct {
		Actual []byte
	}
)

const (
	DefaultHeaderSize = 18
)

var (
	SignatureBytes = []byte("TLK ")
	VersionBytes   = []byte("V1  ")
)

func (e InvalidSignatureError) Error() string {
	return fmt.Sprintf(
		`not a TLK file: expected signature "%v", got "%v"`,
		SignatureBytes, e.Actual,
	)
}

func (e UnsupportedVersionError) Error() string {
	return fmt.Sprintf(
		`unsupported TLK version: expected "%v", got "%v"`,
		VersionBytes, e.Actual,
	)
}
