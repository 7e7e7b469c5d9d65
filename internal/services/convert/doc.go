// Package convert dispatches a conversion request to the numeral codecs.
//
// It validates the declared input and output representation labels, runs the
// decode-to-integer then encode-from-integer pipeline, and reports the
// outcome in a uniform result-or-error envelope. Codec failures never escape
// the dispatcher; their message text is surfaced verbatim.
package convert
