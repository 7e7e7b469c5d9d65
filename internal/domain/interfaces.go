package domain

// Converter turns a raw input string from one representation into another.
// Every failure is reported inside the envelope; Convert never panics.
type Converter interface {
	Convert(input string, inputType, outputType Kind) ConversionResult
}

// Client reaches a remote converter over the wire. The error return covers
// transport failures only; conversion failures arrive inside the envelope.
type Client interface {
	Convert(req ConversionRequest) (ConversionResult, error)
}
