package naming

import (
	"fmt"
	"strings"
	"time"

	"github.com/kaltdl/kaltdl/constant"
)

// Strategy selects how filenames are composed.
type Strategy string

const (
	// StrategyTitle composes <title>_<date>_<hash>. It is the default.
	StrategyTitle Strategy = "title"
	// StrategyLegacy composes kaltura_<entry id>_<date>, the scheme of earlier releases.
	StrategyLegacy Strategy = "legacy"
)

// ParseStrategy validates a configured strategy name.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(s))) {
	case StrategyTitle, "":
		return StrategyTitle, nil
	case StrategyLegacy:
		return StrategyLegacy, nil
	default:
		return StrategyTitle, fmt.Errorf("unknown naming strategy %q", s)
	}
}

// Generate returns "<sanitized title>_<YYYY-MM-DD>_<hash of stream url>.mp4".
// today is passed in so repeated calls are reproducible.
func Generate(pageTitle, streamURL string, today time.Time) string {
	return NewGenerator(DefaultOptions()).Name("", pageTitle, streamURL, today)
}

// Legacy returns "kaltura_<entry id>_<YYYY-MM-DD>.mp4".
func Legacy(entryID string, today time.Time) string {
	return NewGenerator(Options{Strategy: StrategyLegacy}).Name(entryID, "", "", today)
}

// Options tunes a Generator.
type Options struct {
	Strategy  Strategy
	MaxLength int
	Extension string
}

// DefaultOptions mirror Generate.
func DefaultOptions() Options {
	return Options{
		Strategy:  StrategyTitle,
		MaxLength: constant.DefaultNameMaxLength,
		Extension: constant.DefaultExtension,
	}
}

// Generator composes filenames according to configured Options.
type Generator struct {
	opts Options
}

// NewGenerator returns a Generator; zero fields of opts take their defaults.
func NewGenerator(opts Options) *Generator {
	defaults := DefaultOptions()
	if opts.Strategy == "" {
		opts.Strategy = defaults.Strategy
	}
	if opts.MaxLength == 0 {
		opts.MaxLength = defaults.MaxLength
	}
	opts.Extension = strings.TrimPrefix(strings.TrimSpace(opts.Extension), ".")
	if opts.Extension == "" {
		opts.Extension = defaults.Extension
	}
	return &Generator{opts: opts}
}

// Name composes the filename for a resolved entry.
func (g *Generator) Name(entryID, pageTitle, streamURL string, today time.Time) string {
	date := today.Format(constant.DateLayout)

	if g.opts.Strategy == StrategyLegacy {
		return fmt.Sprintf("kaltura_%s_%s.%s", entryID, date, g.opts.Extension)
	}

	return fmt.Sprintf("%s_%s_%s.%s",
		SanitizeN(pageTitle, g.opts.MaxLength),
		date,
		ShortHash(streamURL),
		g.opts.Extension,
	)
}
