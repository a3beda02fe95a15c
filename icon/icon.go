// Package icon renders the status symbols printed in front of CLI messages.
//
// The same symbol comes in several variants so it can match the user's terminal font.
package icon

import (
	"github.com/kaltdl/kaltdl/key"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	kaomoji = "kaomoji"
	squares = "squares"
)

// glyphs maps a variant name to the symbol drawn for it.
type glyphs map[string]string

// AvailableVariants lists the accepted values of icons.variant.
func AvailableVariants() []string {
	variants := lo.Keys(icons[Success])
	slices.Sort(variants)
	return variants
}

// Get returns i in the configured variant, or "" when the variant is unknown.
func Get(i Icon) string {
	return icons[i][viper.GetString(key.IconsVariant)]
}

// Line prefixes msg with the icon, separated by a single space.
func Line(i Icon, msg string) string {
	if symbol := Get(i); symbol != "" {
		return symbol + " " + msg
	}
	return msg
}
