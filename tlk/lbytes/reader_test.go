package lbytes

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBytesReader_ReadUint16(t *testing.T) {
	reader := NewBytesReader(
		[]byte{
			3, 1,
			4, 3,
		},
	)

	resultUint1, err := reader.ReadUint16()
	assert.NoError(t, err)
	assert.Equal(t, uint16(259), resultUint1)

	resultUint2, err := reader.ReadUint16()
	assert.NoError(t, err)
	assert.Equal(t, uint16(772), resultUint2)
}

func TestBytesReader_ReadUint32(t *testing.T) {
	reader := NewBytesReader(
		[]byte{
			3, 1, 4, 3,
			12, 34, 56, 78,
		},
	)

	resultUint1, err := reader.ReadUint32()
	assert.NoError(t, err)
	assert.Equal(t, uint32(50594051), resultUint1)

	resultUint2, err := reader.ReadUint32()
	assert.NoError(t, err)
	assert.Equal(t, uint32(1312301580), resultUint2)
}

func TestBytesReader_Truncated(t *testing.T) {
	reader := NewBytesReader([]byte{1, 2, 3})

	_, err := reader.ReadUint32()
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)

	reader = NewBytesReader([]byte{})
	_, err = reader.ReadUint16()
	assert.ErrorIs(t, err, io.EOF)
}

func TestBytesReader_ReadBytesZero(t *testing.T) {
	reader := NewBytesReader([]byte{})

	bs, err := reader.ReadBytes(0)
	assert.NoError(t, err)
	assert.Len(t, bs, 0)
}
