package convert

import (
	"math/big"

	"numconv/internal/domain"
	"numconv/internal/numeral"
)

type decodeFunc func(string) (*big.Int, error)
type encodeFunc func(n *big.Int) (string, error)

// Static dispatch tables from representation label to codec function.
// Both are validated against before lookup; input type first.
var decoders = map[domain.Kind]decodeFunc{
	domain.KindText:        numeral.WordToNumber,
	domain.KindBinary:      func(s string) (*big.Int, error) { return numeral.ParseInt(s, 2) },
	domain.KindOctal:       func(s string) (*big.Int, error) { return numeral.ParseInt(s, 8) },
	domain.KindDecimal:     func(s string) (*big.Int, error) { return numeral.ParseInt(s, 10) },
	domain.KindHexadecimal: func(s string) (*big.Int, error) { return numeral.ParseInt(s, 16) },
	domain.KindBase64:      numeral.Base64ToNumber,
}

var encoders = map[domain.Kind]encodeFunc{
	domain.KindText:        numeral.NumberToWords,
	domain.KindBinary:      func(n *big.Int) (string, error) { return numeral.FormatInt(n, 2), nil },
	domain.KindOctal:       func(n *big.Int) (string, error) { return numeral.FormatInt(n, 8), nil },
	domain.KindDecimal:     func(n *big.Int) (string, error) { return numeral.FormatInt(n, 10), nil },
	domain.KindHexadecimal: func(n *big.Int) (string, error) { return numeral.FormatInt(n, 16), nil },
	domain.KindBase64:      numeral.NumberToBase64,
}

// Service maps a declared type pair to the matching decode and encode
// routines and folds every failure into the response envelope.
type Service struct{}

func New() *Service { return &Service{} }

// Convert decodes input from inputType to an integer and re-encodes it as
// outputType. Same-type pairs are not special-cased; they decode and
// re-encode like any other pair.
func (s *Service) Convert(input string, inputType, outputType domain.Kind) domain.ConversionResult {
	decode, ok := decoders[inputType]
	if !ok {
		return domain.Fail("Invalid input type")
	}
	encode, ok := encoders[outputType]
	if !ok {
		return domain.Fail("Invalid output type")
	}

	n, err := decode(input)
	if err != nil {
		return domain.Fail(err.Error())
	}
	out, err := encode(n)
	if err != nil {
		return domain.Fail(err.Error())
	}
	return domain.OK(out)
}

var _ domain.Converter = (*Service)(nil)
