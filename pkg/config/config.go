// Package config loads cfglink's runtime configuration.
//
// Configuration is read exactly once at startup and handed to the run
// orchestration as an explicit struct. Defaults are overridden by
// CFGLINK_* environment variables, which are in turn overridden by
// command-line flags (applied by the CLI layer, not here).
package config

import (
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/cfglink/pkg/errors"
)

// EnvPrefix is the prefix for all cfglink environment variables.
const EnvPrefix = "CFGLINK_"

// Config holds all runtime settings for a single run.
type Config struct {
	// DryRun reports intended actions without touching the filesystem.
	// Default false, env CFGLINK_DRY_RUN.
	DryRun bool `koanf:"dry_run"`

	// Verbose enables informational output for each directory created
	// and each link made. Default true, env CFGLINK_VERBOSE.
	Verbose bool `koanf:"verbose"`

	// Exclude lists entry names (not paths) to skip during traversal.
	// A matching directory is pruned with its whole subtree.
	// Default [".git"], env CFGLINK_EXCLUDE (comma-separated).
	Exclude []string `koanf:"exclude"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"dry_run": false,
		"verbose": true,
		"exclude": []string{".git"},
	}
}

// Load builds the Config from defaults and CFGLINK_* environment variables.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load default configuration")
	}

	// Keys stay flat: CFGLINK_DRY_RUN maps to "dry_run".
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment variables")
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.StringToSliceHookFunc(","),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to unmarshal configuration")
	}

	return &cfg, nil
}
