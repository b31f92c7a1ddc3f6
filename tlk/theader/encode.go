package theader

import (
	"bhaalingual/tlk/lbytes"
)

func Encode(header Header) []byte {
	bs := make([]byte, 0, DefaultHeaderSize)
	bs = append(bs, header.Signature...)
	bs = append(bs, header.Version...)
	bs = append(bs, lbytes.EncodeValueUint16(header.LanguageID)...)
	bs = append(bs, lbytes.EncodeValueUint32(header.NumEntries)...)
	bs = append(bs, lbytes.EncodeValueUint32(header.StringBlockOffset)...)
	return bs
}
