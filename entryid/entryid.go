// Package entryid extracts Kaltura entry identifiers from embed sources and manifest URLs.
package entryid

import (
	"regexp"

	"github.com/samber/mo"
)

// Embed sources percent-encode the path (entryid%2F<id>), manifest URLs do not (entryId/<id>).
var (
	encodedPattern = regexp.MustCompile(`(?i)entryid%2F([^/%&]+)`)
	plainPattern   = regexp.MustCompile(`(?i)entryid/([^/%&]+)`)
	queryPattern   = regexp.MustCompile(`(?i)entryid=([^/%&]+)`)
)

// Extract returns the entry ID referenced by an embed source.
// The percent-encoded form is tried before the plain form.
func Extract(reference string) mo.Option[string] {
	return first(reference, encodedPattern, plainPattern)
}

// FromManifest returns the entry ID referenced by a manifest request URL.
// Besides the path forms it accepts entryId=<id> as found in query strings.
func FromManifest(url string) mo.Option[string] {
	return first(url, encodedPattern, plainPattern, queryPattern)
}

// Has reports whether s carries an entry ID marker in any supported form.
func Has(s string) bool {
	return FromManifest(s).IsPresent()
}

func first(s string, patterns ...*regexp.Regexp) mo.Option[string] {
	for _, pattern := range patterns {
		if match := pattern.FindStringSubmatch(s); match != nil {
			return mo.Some(match[1])
		}
	}
	return mo.None[string]()
}
