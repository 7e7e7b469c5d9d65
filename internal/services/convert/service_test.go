package convert_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"numconv/internal/domain"
	"numconv/internal/services/convert"
)

func TestConvert_Success(t *testing.T) {
	cases := []struct {
		name string
		in   string
		from domain.Kind
		to   domain.Kind
		want string
	}{
		{"decimal to binary", "42", domain.KindDecimal, domain.KindBinary, "101010"},
		{"binary to decimal", "101010", domain.KindBinary, domain.KindDecimal, "42"},
		{"decimal to hexadecimal", "255", domain.KindDecimal, domain.KindHexadecimal, "ff"},
		{"hexadecimal to decimal", "ff", domain.KindHexadecimal, domain.KindDecimal, "255"},
		{"decimal to octal", "64", domain.KindDecimal, domain.KindOctal, "100"},
		{"octal to decimal", "100", domain.KindOctal, domain.KindDecimal, "64"},
		{"text to decimal", "five", domain.KindText, domain.KindDecimal, "5"},
		{"decimal to text", "42", domain.KindDecimal, domain.KindText, "forty-two"},
		{"decimal to base64", "42", domain.KindDecimal, domain.KindBase64, "Kg=="},
		{"base64 to decimal", "Kg==", domain.KindBase64, domain.KindDecimal, "42"},
		{"same type", "42", domain.KindDecimal, domain.KindDecimal, "42"},
		{"negative decimal to text", "-42", domain.KindDecimal, domain.KindText, "minus forty-two"},
		{"negative decimal to binary", "-1", domain.KindDecimal, domain.KindBinary, "-1"},
	}

	svc := convert.New()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := svc.Convert(tc.in, tc.from, tc.to)
			require.Nil(t, res.Error)
			require.NotNil(t, res.Result)
			assert.Equal(t, tc.want, *res.Result)
		})
	}
}

func TestConvert_Matrix(t *testing.T) {
	// The value 2 in every representation converts to every other
	// representation without error.
	inputs := map[domain.Kind]string{
		domain.KindText:        "two",
		domain.KindBinary:      "10",
		domain.KindOctal:       "2",
		domain.KindDecimal:     "2",
		domain.KindHexadecimal: "2",
		domain.KindBase64:      "Ag==",
	}

	svc := convert.New()
	for _, from := range domain.Kinds {
		for _, to := range domain.Kinds {
			res := svc.Convert(inputs[from], from, to)
			require.Nilf(t, res.Error, "%s -> %s: %v", from, to, res.Error)
			require.NotNilf(t, res.Result, "%s -> %s", from, to)
		}
	}
}

func TestConvert_ZeroAcrossTypes(t *testing.T) {
	svc := convert.New()
	for _, to := range []domain.Kind{domain.KindBinary, domain.KindOctal, domain.KindHexadecimal, domain.KindBase64, domain.KindText} {
		res := svc.Convert("0", domain.KindDecimal, to)
		require.Nilf(t, res.Error, "decimal 0 -> %s", to)

		if to == domain.KindText {
			assert.Equal(t, "zero", *res.Result)
			continue
		}
		back := svc.Convert(*res.Result, to, domain.KindDecimal)
		require.Nilf(t, back.Error, "%s %q -> decimal", to, *res.Result)
		assert.Equal(t, "0", *back.Result)
	}
}

func TestConvert_InvalidTypes(t *testing.T) {
	svc := convert.New()

	res := svc.Convert("42", "invalid", domain.KindDecimal)
	require.Nil(t, res.Result)
	require.NotNil(t, res.Error)
	assert.Equal(t, "Invalid input type", *res.Error)

	res = svc.Convert("42", domain.KindDecimal, "invalid")
	require.Nil(t, res.Result)
	require.NotNil(t, res.Error)
	assert.Equal(t, "Invalid output type", *res.Error)

	// Input type is checked before output type.
	res = svc.Convert("42", "bogus", "bogus")
	require.NotNil(t, res.Error)
	assert.Equal(t, "Invalid input type", *res.Error)

	// Labels are matched exactly, no case folding.
	res = svc.Convert("42", "Decimal", domain.KindBinary)
	require.NotNil(t, res.Error)
	assert.Equal(t, "Invalid input type", *res.Error)
}

func TestConvert_CodecErrorsSurfaceVerbatim(t *testing.T) {
	cases := []struct {
		name string
		in   string
		from domain.Kind
		want string
	}{
		{"bad binary", "123", domain.KindBinary, "invalid literal for int() with base 2: '123'"},
		{"bad octal", "89", domain.KindOctal, "invalid literal for int() with base 8: '89'"},
		{"bad decimal", "abc", domain.KindDecimal, "invalid literal for int() with base 10: 'abc'"},
		{"bad hexadecimal", "xyz", domain.KindHexadecimal, "invalid literal for int() with base 16: 'xyz'"},
		{"bad text", "eleven", domain.KindText, "Unable to convert text to number"},
		{"bad base64", "invalid@base64!", domain.KindBase64, "Invalid base64 input"},
	}

	svc := convert.New()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := svc.Convert(tc.in, tc.from, domain.KindDecimal)
			require.Nil(t, res.Result)
			require.NotNil(t, res.Error)
			assert.Equal(t, tc.want, *res.Error)
		})
	}
}

func TestConvert_EncodeFailureSurfaces(t *testing.T) {
	// A negative value cannot be re-encoded as base64; the failure lands in
	// the envelope rather than escaping.
	svc := convert.New()
	res := svc.Convert("-42", domain.KindDecimal, domain.KindBase64)
	require.Nil(t, res.Result)
	require.NotNil(t, res.Error)
	assert.Contains(t, *res.Error, "negative")
}
