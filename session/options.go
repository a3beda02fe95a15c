package session

import (
	"github.com/kaltdl/kaltdl/command"
	"github.com/kaltdl/kaltdl/key"
	"github.com/kaltdl/kaltdl/naming"
	"github.com/spf13/viper"
)

// Options bundles the settings a Session renders results with.
type Options struct {
	Hosts   []string
	Naming  naming.Options
	Command command.Options
}

// DefaultOptions accepts every host and uses the naming and command defaults.
func DefaultOptions() Options {
	return Options{
		Naming:  naming.DefaultOptions(),
		Command: command.DefaultOptions(),
	}
}

// OptionsFromConfig reads Options from the loaded configuration.
func OptionsFromConfig() (Options, error) {
	strategy, err := naming.ParseStrategy(viper.GetString(key.NamingStrategy))
	if err != nil {
		return Options{}, err
	}

	policy, err := command.ParsePolicy(viper.GetString(key.CommandQuotePolicy))
	if err != nil {
		return Options{}, err
	}

	return Options{
		Hosts: viper.GetStringSlice(key.CaptureHosts),
		Naming: naming.Options{
			Strategy:  strategy,
			MaxLength: viper.GetInt(key.NamingMaxLength),
			Extension: viper.GetString(key.NamingExtension),
		},
		Command: command.Options{
			Binary:    viper.GetString(key.CommandBinary),
			OutputDir: viper.GetString(key.CommandOutputDir),
			Policy:    policy,
		},
	}, nil
}
