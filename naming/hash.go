package naming

import (
	"strconv"
	"strings"
	"unicode/utf16"
)

const hashLength = 8

// ShortHash returns an 8 character base-36 token derived from s.
//
// It is the rolling h = h*31 + c over UTF-16 code units with the accumulator
// wrapped to a signed 32-bit word after every step, so it matches the value the
// browser side computes for the same string. It disambiguates names; it is not
// collision resistant.
func ShortHash(s string) string {
	var h int32
	for _, c := range utf16.Encode([]rune(s)) {
		h = (h << 5) - h + int32(c)
	}

	// Widen before negating so math.MinInt32 keeps its magnitude.
	abs := int64(h)
	if abs < 0 {
		abs = -abs
	}

	token := strconv.FormatInt(abs, 36)
	if len(token) > hashLength {
		token = token[:hashLength]
	}
	return strings.Repeat("0", hashLength-len(token)) + token
}
