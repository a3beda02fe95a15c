// Package command renders the ffmpeg invocation that saves a captured stream.
package command

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"al.essio.dev/pkg/shellescape"
	"github.com/kaltdl/kaltdl/constant"
)

// ErrUnsafeInput is returned when a URL or filename cannot be embedded in a shell command safely.
var ErrUnsafeInput = errors.New("unsafe input")

// Options controls how Build renders a command.
type Options struct {
	Binary    string
	OutputDir string
	Policy    Policy
}

// DefaultOptions renders "ffmpeg -i '<url>' -c copy ~/Downloads/<filename>".
func DefaultOptions() Options {
	return Options{
		Binary:    constant.DefaultBinary,
		OutputDir: constant.DefaultOutputDir,
		Policy:    Reject,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Binary == "" {
		o.Binary = d.Binary
	}
	if o.OutputDir == "" {
		o.OutputDir = d.OutputDir
	}
	if o.Policy == "" {
		o.Policy = d.Policy
	}
	return o
}

// Build returns the copy-paste ready shell command that remuxes streamURL into filename.
func Build(streamURL, filename string, opts Options) (string, error) {
	opts = opts.withDefaults()

	source, err := quoteURL(streamURL, opts.Policy)
	if err != nil {
		return "", err
	}

	if err := checkFilename(filename); err != nil {
		return "", err
	}

	return fmt.Sprintf("%s -i %s -c copy %s",
		opts.Binary,
		source,
		outputPath(opts.OutputDir, filename),
	), nil
}

// Argv is the same invocation as an argument vector, for callers that start the process themselves.
// No quoting is applied.
func Argv(streamURL, outputPath string) []string {
	return []string{constant.DefaultBinary, "-i", streamURL, "-c", "copy", outputPath}
}

func quoteURL(streamURL string, policy Policy) (string, error) {
	switch {
	case streamURL == "":
		return "", fmt.Errorf("%w: empty stream url", ErrUnsafeInput)
	case strings.HasPrefix(streamURL, "-"):
		return "", fmt.Errorf("%w: stream url starts with a dash", ErrUnsafeInput)
	case strings.IndexFunc(streamURL, unicode.IsControl) >= 0:
		return "", fmt.Errorf("%w: stream url contains control characters", ErrUnsafeInput)
	}

	if policy == Escape {
		return shellescape.Quote(streamURL), nil
	}

	if strings.ContainsRune(streamURL, '\'') {
		return "", fmt.Errorf("%w: stream url contains a single quote", ErrUnsafeInput)
	}

	return "'" + streamURL + "'", nil
}

func checkFilename(filename string) error {
	switch {
	case filename == "":
		return fmt.Errorf("%w: empty filename", ErrUnsafeInput)
	case strings.ContainsAny(filename, `/\`):
		return fmt.Errorf("%w: filename %q contains a path separator", ErrUnsafeInput, filename)
	case strings.HasPrefix(filename, "-"):
		return fmt.Errorf("%w: filename %q starts with a dash", ErrUnsafeInput, filename)
	case strings.IndexFunc(filename, unicode.IsControl) >= 0:
		return fmt.Errorf("%w: filename contains control characters", ErrUnsafeInput)
	}

	return nil
}

// outputPath joins dir and filename for the shell. A leading "~/" stays unquoted so the shell
// still expands it; the rest is quoted only when it holds characters the shell would interpret.
func outputPath(dir, filename string) string {
	var home string
	switch {
	case dir == "~":
		home, dir = "~/", ""
	case strings.HasPrefix(dir, "~/"):
		home, dir = "~/", strings.TrimPrefix(dir, "~/")
	}

	rest := filename
	if dir = strings.TrimSuffix(dir, "/"); dir != "" {
		rest = dir + "/" + filename
	}

	return home + shellescape.Quote(rest)
}
