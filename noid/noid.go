// Package noid implements the NOID identifier scheme: templated generation
// of opaque names and the NCDA check-digit algorithm used to verify them.
package noid

import "strings"

const (
	// DigitChars is the alphabet for 'd' (digit class) template positions.
	DigitChars = "0123456789"

	// ExtendedChars is the 29-symbol betanumeric alphabet for 'e' positions
	// and for check-digit resolution. Vowels and a few letters are excluded
	// to avoid confusable and objectionable combinations.
	ExtendedChars = "0123456789bcdfghjkmnpqrstvwxz"
)

// CheckDigit computes the NCDA check character for s: the sum of each
// character's ordinal in ExtendedChars weighted by its 1-based position,
// reduced modulo the alphabet size. Characters outside the alphabet (the
// '/' separator in a full ARK, for instance) contribute ordinal zero but
// still occupy a position.
func CheckDigit(s string) string {
	sum := 0
	for i := 0; i < len(s); i++ {
		ord := strings.IndexByte(ExtendedChars, s[i])
		if ord < 0 {
			ord = 0
		}
		sum += (i + 1) * ord
	}
	return string(ExtendedChars[sum%len(ExtendedChars)])
}
