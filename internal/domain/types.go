package domain

// Kind labels one of the six supported number representations.
// Labels are matched exactly; there is no case folding.
type Kind string

const (
	KindText        Kind = "text"
	KindBinary      Kind = "binary"
	KindOctal       Kind = "octal"
	KindDecimal     Kind = "decimal"
	KindHexadecimal Kind = "hexadecimal"
	KindBase64      Kind = "base64"
)

// Kinds lists every valid representation label.
var Kinds = []Kind{KindText, KindBinary, KindOctal, KindDecimal, KindHexadecimal, KindBase64}

// Valid reports whether k is one of the supported labels.
func (k Kind) Valid() bool {
	switch k {
	case KindText, KindBinary, KindOctal, KindDecimal, KindHexadecimal, KindBase64:
		return true
	}
	return false
}

// ConversionRequest is the wire form of a single conversion call.
type ConversionRequest struct {
	Input      string `json:"input"`
	InputType  Kind   `json:"inputType"`
	OutputType Kind   `json:"outputType"`
}

// ConversionResult is the uniform response envelope. Exactly one of
// Result and Error is non-nil, which serialises to the other field
// being JSON null.
type ConversionResult struct {
	Result *string `json:"result"`
	Error  *string `json:"error"`
}

// OK builds a success envelope.
func OK(result string) ConversionResult {
	return ConversionResult{Result: &result}
}

// Fail builds a failure envelope.
func Fail(msg string) ConversionResult {
	return ConversionResult{Error: &msg}
}
