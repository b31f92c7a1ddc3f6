// Package tcharset resolves the text encoding of a TLK file by name and
// converts between the on-disk bytes and Go strings. Conversion is lossy by
// default: bytes that cannot be decoded and runes that cannot be encoded are
// substituted with a replacement, never reported as an error. Strict mode is
// an opt-in that turns both substitutions into failures.
package tcharset

import (
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

type (
	Codec struct {
		Name   string
		Strict bool
		enc    encoding.Encoding
	}
	UnknownCharsetError struct {
		Name string
	}
	UndecodableBytesError struct {
		Charset string
	}
	UnencodableRuneError struct {
		Charset string
	}
)

var encodingsByName = map[string]encoding.Encoding{
	"cp1250":       charmap.Windows1250,
	"cp1251":       charmap.Windows1251,
	"cp1252":       charmap.Windows1252,
	"cp1253":       charmap.Windows1253,
	"cp1254":       charmap.Windows1254,
	"cp1255":       charmap.Windows1255,
	"cp1256":       charmap.Windows1256,
	"cp1257":       charmap.Windows1257,
	"cp1258":       charmap.Windows1258,
	"windows-1250": charmap.Windows1250,
	"windows-1251": charmap.Windows1251,
	"windows-1252": charmap.Windows1252,
	"windows-1253": charmap.Windows1253,
	"windows-1254": charmap.Windows1254,
	"windows-1255": charmap.Windows1255,
	"windows-1256": charmap.Windows1256,
	"windows-1257": charmap.Windows1257,
	"windows-1258": charmap.Windows1258,
	"latin1":       charmap.ISO8859_1,
	"utf-8":        unicode.UTF8,
	"utf8":         unicode.UTF8,
}

func (e UnknownCharsetError) Error() string {
	return fmt.Sprintf(`unknown charset "%s"`, e.Name)
}

func (e UndecodableBytesError) Error() string {
	return fmt.Sprintf(`input contains bytes that are not valid %s`, e.Charset)
}

func (e UnencodableRuneError) Error() string {
	return fmt.Sprintf(`text contains characters that %s cannot represent`, e.Charset)
}
