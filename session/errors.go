package session

import "errors"

var (
	// ErrNotFound means no stream has been captured for the entry yet. The user fixes it by
	// starting playback, so it is reported softly.
	ErrNotFound = errors.New("play video first")

	// ErrMalformedReference means an embed reference carries no entry ID.
	ErrMalformedReference = errors.New("no entry id in embed reference")

	// ErrDuplicateEmbed means the embed reference was already processed.
	ErrDuplicateEmbed = errors.New("embed already processed")
)
