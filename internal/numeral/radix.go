package numeral

import (
	"math/big"
	"strings"
)

// ParseInt parses s as a signed integer literal in the given radix
// (2, 8, 10 or 16). Surrounding whitespace is ignored; an optional leading
// sign is accepted. No radix prefixes ("0x", "0b") or digit separators
// ("1_000") are recognised: the grammar is the bare digit set only, even
// though some platforms' integer parsers accept more.
func ParseInt(s string, radix int) (*big.Int, error) {
	n, ok := new(big.Int).SetString(strings.TrimSpace(s), radix)
	if !ok {
		return nil, &RadixParseError{Literal: s, Radix: radix}
	}
	return n, nil
}

// FormatInt renders n in the given radix with lowercase digits and no
// prefix. Negative values render as '-' followed by the magnitude's digits,
// not as two's-complement; ParseInt shares the same convention, so values
// round-trip.
func FormatInt(n *big.Int, radix int) string {
	return n.Text(radix)
}
