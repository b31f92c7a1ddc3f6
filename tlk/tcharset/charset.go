package tcharset

import (
	"strings"
)

func ByName(name string) (*Codec, error) {
	enc, ok := encodingsByName[strings.ToLower(name)]
	if !ok {
		return nil, UnknownCharsetError{Name: name}
	}
	return &Codec{
		Name: strings.ToLower(name),
		enc:  enc,
	}, nil
}
