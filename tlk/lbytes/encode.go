package lbytes

import (
	"encoding/binary"
)

func EncodeValueUint16(value any) []byte {
	valueUInt16 := uint16(0)
	switch value.(type) {
	case int:
		valueInt := value.(int)
		valueUInt16 = uint16(valueInt)
	case uint16:
		valueUInt16 = value.(uint16)
	case uint32:
		valueUInt32 := value.(uint32)
		valueUInt16 = uint16(valueUInt32)
	}
	bs := make([]byte, 2)
	binary.LittleEndian.PutUint16(bs, valueUInt16)
	return bs
}

func EncodeValueUint32(value any) []byte {
	valueUInt32 := uint32(0)
	switch value.(type) {
	case int:
		valueInt := value.(int)
		valueUInt32 = uint32(valueInt)
	case uint16:
		valueUInt16 := value.(uint16)
		valueUInt32 = uint32(valueUInt16)
	case uint32:
		valueUInt32 = value.(uint32)
	}
	bs := make([]byte, 4)
	binary.LittleEndian.PutUint32(bs, valueUInt32)
	return bs
}

func CreateZeroBytes(n int) []byte {
	return make([]byte, n)
}
