package numeral

import "fmt"

// TextConversionError reports a token outside the recognised word vocabulary.
type TextConversionError struct {
	Token string
}

func (e *TextConversionError) Error() string { return "Unable to convert text to number" }

// RadixParseError reports a literal whose digits do not fit the declared radix.
// The message format is part of the wire contract; existing clients match on it.
type RadixParseError struct {
	Literal string
	Radix   int
}

func (e *RadixParseError) Error() string {
	return fmt.Sprintf("invalid literal for int() with base %d: '%s'", e.Radix, e.Literal)
}

// Base64DecodeError reports input that is not valid standard base64.
type Base64DecodeError struct {
	Input string
}

func (e *Base64DecodeError) Error() string { return "Invalid base64 input" }
