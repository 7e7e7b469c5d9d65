// Package numeral exposes the pure conversion primitives used by numconv.
//
// Contents
//
//   - English number words to integers and back (WordToNumber, NumberToWords)
//   - Signed radix-2/8/10/16 literals (ParseInt, FormatInt)
//   - Minimal big-endian byte encoding under standard base64
//     (NumberToBase64, Base64ToNumber)
//
// # Notes
//
// All functions are stateless and operate on math/big integers so that
// values survive round-trips regardless of magnitude. Word decoding
// deliberately recognises only the closed vocabulary zero..ten (plus "nil"),
// while word encoding spells out arbitrary magnitudes; the asymmetry is part
// of the service contract. Failures are reported as typed errors whose
// message text is surfaced verbatim to clients.
package numeral
