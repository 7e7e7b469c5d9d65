package numeral

import (
	"encoding/base64"
	"errors"
	"math/big"
)

var errNegative = errors.New("cannot encode a negative number as base64")

// NumberToBase64 encodes n >= 0 as the minimal-length big-endian byte
// sequence under standard base64 with padding. Zero encodes as a single
// zero byte ("AA=="). Byte order is a fixed contract: clients decode the
// payload most-significant byte first.
func NumberToBase64(n *big.Int) (string, error) {
	if n.Sign() < 0 {
		return "", errNegative
	}
	b := n.Bytes()
	if len(b) == 0 {
		b = []byte{0}
	}
	return base64.StdEncoding.EncodeToString(b), nil
}

// Base64ToNumber decodes s with the standard alphabet and reads the bytes
// as a big-endian unsigned integer.
func Base64ToNumber(s string) (*big.Int, error) {
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, &Base64DecodeError{Input: s}
	}
	return new(big.Int).SetBytes(raw), nil
}
