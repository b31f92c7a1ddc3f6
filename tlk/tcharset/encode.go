package tcharset

import (
	"github.com/pkg/errors"
	"golang.org/x/text/encoding"
)

func (c Codec) Encode(s string) ([]byte, error) {
	encoder := c.enc.NewEncoder()
	if c.Strict {
		bs, err := encoder.Bytes([]byte(s))
		if err != nil {
			return nil, UnencodableRuneError{Charset: c.Name}
		}
		return bs, nil
	}

	encoder = encoding.ReplaceUnsupported(encoder)
	bs, err := encoder.Bytes([]byte(s))
	if err != nil {
		err := errors.Wrapf(err, `tcharset.Encode error: charset "%s"`, c.Name)
		return nil, err
	}
	return bs, nil
}
