package numeral

import (
	"errors"
	"math/big"
	"strings"
	"unicode"
)

// vocabulary accepted by WordToNumber. Decoding is intentionally limited to
// single words for zero through ten; the encoding direction has no such cap.
var wordValues = map[string]int64{
	"zero":  0,
	"nil":   0,
	"one":   1,
	"two":   2,
	"three": 3,
	"four":  4,
	"five":  5,
	"six":   6,
	"seven": 7,
	"eight": 8,
	"nine":  9,
	"ten":   10,
}

var ones = [20]string{
	"zero", "one", "two", "three", "four", "five", "six", "seven", "eight",
	"nine", "ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen",
	"sixteen", "seventeen", "eighteen", "nineteen",
}

var tens = [10]string{
	"", "ten", "twenty", "thirty", "forty", "fifty", "sixty", "seventy",
	"eighty", "ninety",
}

// scales by thousands group, least significant first. Twelve groups cover
// magnitudes below 10^36.
var scales = []string{
	"", "thousand", "million", "billion", "trillion", "quadrillion",
	"quintillion", "sextillion", "septillion", "octillion", "nonillion",
	"decillion",
}

var errTooLarge = errors.New("number too large to spell out")

// WordToNumber converts an English number word to its integer value.
// Lookup is case-insensitive and ignores any non-letter characters.
func WordToNumber(text string) (*big.Int, error) {
	token := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) {
			return r
		}
		return -1
	}, strings.ToLower(text))

	v, ok := wordValues[token]
	if !ok {
		return nil, &TextConversionError{Token: token}
	}
	return big.NewInt(v), nil
}

// NumberToWords spells n out in English, e.g. "forty-two",
// "one hundred and twenty-three", "one thousand and one". Negative values
// gain a "minus " prefix.
func NumberToWords(n *big.Int) (string, error) {
	if n.Sign() == 0 {
		return "zero", nil
	}

	// Split |n| into thousands groups, least significant first.
	abs := new(big.Int).Abs(n)
	thousand := big.NewInt(1000)
	rem := new(big.Int)
	var groups []int64
	for abs.Sign() > 0 {
		abs.QuoRem(abs, thousand, rem)
		groups = append(groups, rem.Int64())
	}
	if len(groups) > len(scales) {
		return "", errTooLarge
	}

	var b strings.Builder
	if n.Sign() < 0 {
		b.WriteString("minus ")
	}
	first := true
	for i := len(groups) - 1; i >= 0; i-- {
		g := groups[i]
		if g == 0 {
			continue
		}
		if !first {
			// The final group joins with "and" when it has no hundreds
			// digit, matching conventional British phrasing.
			if i == 0 && g < 100 {
				b.WriteString(" and ")
			} else {
				b.WriteString(", ")
			}
		}
		b.WriteString(groupWords(g))
		if scales[i] != "" {
			b.WriteString(" ")
			b.WriteString(scales[i])
		}
		first = false
	}
	return b.String(), nil
}

// groupWords renders 1..999.
func groupWords(n int64) string {
	switch {
	case n < 20:
		return ones[n]
	case n < 100:
		s := tens[n/10]
		if n%10 != 0 {
			s += "-" + ones[n%10]
		}
		return s
	default:
		s := ones[n/100] + " hundred"
		if n%100 != 0 {
			s += " and " + groupWords(n%100)
		}
		return s
	}
}
