// Package config loads settings from kaltdl.toml, KALTDL_* variables and built-in defaults.
package config

import (
	"path/filepath"
	"strings"

	"github.com/kaltdl/kaltdl/constant"
	"github.com/kaltdl/kaltdl/filesystem"
	"github.com/kaltdl/kaltdl/where"
	"github.com/spf13/viper"
)

// EnvKeyReplacer turns "a.b" keys into "a_b" environment suffixes.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup registers defaults and environment bindings, then reads the config file if there is one.
func Setup() error {
	viper.SetConfigName(constant.Kaltdl)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.Kaltdl)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return err
	}

	return nil
}

// FilePath returns the location the configuration file is read from and written to.
func FilePath() string {
	return filepath.Join(where.Config(), constant.Kaltdl+".toml")
}
