package tcharset

import (
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding/unicode"
)

func (c Codec) Decode(bs []byte) (string, error) {
	if c.Strict && !c.decodable(bs) {
		return "", UndecodableBytesError{Charset: c.Name}
	}
	result, err := c.enc.NewDecoder().Bytes(bs)
	if err != nil {
		err := errors.Wrapf(err, `tcharset.Decode error: charset "%s"`, c.Name)
		return "", err
	}
	return string(result), nil
}

func (c Codec) decodable(bs []byte) bool {
	if c.enc == unicode.UTF8 {
		return utf8.Valid(bs)
	}
	// single-byte charmaps decode unmapped bytes to the replacement rune,
	// and none of them can legitimately produce it
	result, err := c.enc.NewDecoder().Bytes(bs)
	if err != nil {
		return false
	}
	return !strings.ContainsRune(string(result), utf8.RuneError)
}
