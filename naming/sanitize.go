// Package naming derives stable, filesystem-safe output filenames from page titles and stream URLs.
package naming

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf16"

	"github.com/kaltdl/kaltdl/constant"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	// unsafeChars are deleted outright, not replaced.
	unsafeChars = regexp.MustCompile(`[/\\*?"<>|]`)
	// separators collapses whitespace and hyphen runs, including the Unicode spaces browsers put in titles.
	separators   = regexp.MustCompile(`[\s\x{0B}\p{Zs}\x{2028}\x{2029}\x{FEFF}-]+`)
	edgeUnderbar = regexp.MustCompile(`^_+|_+$`)
)

// Sanitize turns a page title into a lower-case token safe on all common filesystems.
// The result is at most DefaultNameMaxLength UTF-16 code units long, the unit browsers measure
// titles in, and never empty.
func Sanitize(raw string) string {
	return SanitizeN(raw, constant.DefaultNameMaxLength)
}

// SanitizeN is Sanitize with an explicit length limit. A limit below one disables truncation.
// The stages run in a fixed order; each relies on the output of the previous one.
func SanitizeN(raw string, max int) string {
	// Site decoration such as " | Moodle ZHAW" follows the first pipe.
	name, _, _ := strings.Cut(raw, "|")
	name = strings.TrimFunc(name, isSpace)

	name = strings.ReplaceAll(name, ":", "-")
	name = unsafeChars.ReplaceAllString(name, "")
	name = separators.ReplaceAllString(name, "_")
	name = edgeUnderbar.ReplaceAllString(name, "")
	// Full case mapping, so "İ" lowers to "i̇" as it does in the browser.
	name = cases.Lower(language.Und).String(name)
	name = truncateUTF16(name, max)

	if name == "" {
		return constant.DefaultNameFallback
	}
	return name
}

// truncateUTF16 cuts s to at most max UTF-16 code units. A character that would be split in
// half is dropped whole. A max below one returns s unchanged.
func truncateUTF16(s string, max int) string {
	if max < 1 {
		return s
	}

	units := 0
	for i, r := range s {
		n := utf16.RuneLen(r)
		if units+n > max {
			return s[:i]
		}
		units += n
	}
	return s
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}
