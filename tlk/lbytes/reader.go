package lbytes

import (
	"bytes"
	"encoding/binary"
	"io"
)

func NewBytesReader(bs []byte) *Reader {
	return &Reader{
		Reader: *bytes.NewReader(bs),
	}
}

// ReadUint16 and friends use io.ReadFull instead of a plain Read,
// so that a truncated buffer surfaces io.ErrUnexpectedEOF
// instead of silently succeeding on a short read.

func (b *Reader) ReadUint16() (uint16, error) {
	bs := make([]byte, 2)
	_, err := io.ReadFull(b, bs)
	if err != nil {
		return 0, err
	}
	result := binary.LittleEndian.Uint16(bs)
	return result, nil
}

func (b *Reader) ReadUint32() (uint32, error) {
	bs := make([]byte, 4)
	_, err := io.ReadFull(b, bs)
	if err != nil {
		return 0, err
	}
	result := binary.LittleEndian.Uint32(bs)
	return result, nil
}

func (b *Reader) ReadBytes(n int) ([]byte, error) {
	bs := make([]byte, n)
	// add return early to avoid EOF error
	// when reader's pointer reach end of file
	// while the number of next bytes to read is 0
	if n == 0 {
		return bs, nil
	}
	_, err := io.ReadFull(b, bs)
	if err != nil {
		return nil, err
	}
	return bs, nil
}
