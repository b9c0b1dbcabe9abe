// SPDX-License-Identifier: EPL-2.0

// Package config resolves run settings from flags, environment variables
// prefixed PCMTAB_, an optional YAML file and built-in defaults, in that
// order of precedence.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ik5/pcmtab"
	"github.com/ik5/pcmtab/emit"
)

const EnvPrefix = "PCMTAB"

// Keys as used in the config file and, upper-cased, in the environment.
const (
	KeyPattern    = "pattern"
	KeySampleRate = "sample_rate"
	KeyChannels   = "channels"
	KeyBitDepth   = "bit_depth"
	KeyNamespace  = "namespace"
	KeyIndexName  = "index_name"
	KeyPerLine    = "per_line"
	KeyPreviewWAV = "preview_wav"
	KeyVerbose    = "verbose"
	KeyQuiet      = "quiet"
)

// Config is the validated result of Load.
type Config struct {
	Pattern    string
	Format     pcmtab.Format
	Emit       emit.Options
	PreviewWAV bool
	Verbose    bool
	Quiet      bool
}

// New returns a viper instance with defaults and environment lookup set.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault(KeyPattern, "")
	v.SetDefault(KeySampleRate, pcmtab.DefaultFormat.SampleRate)
	v.SetDefault(KeyChannels, pcmtab.DefaultFormat.Channels)
	v.SetDefault(KeyBitDepth, pcmtab.DefaultFormat.BitDepth)
	v.SetDefault(KeyNamespace, emit.DefaultNamespace)
	v.SetDefault(KeyIndexName, emit.DefaultIndexName)
	v.SetDefault(KeyPerLine, emit.DefaultPerLine)
	v.SetDefault(KeyPreviewWAV, false)
	v.SetDefault(KeyVerbose, false)
	v.SetDefault(KeyQuiet, false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v
}

// BindFlags binds each key to the flag of the same name with dashes, so
// that --sample-rate feeds sample_rate. Flags missing from fs are skipped.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for _, key := range []string{
		KeyPattern, KeySampleRate, KeyChannels, KeyBitDepth, KeyNamespace,
		KeyIndexName, KeyPerLine, KeyPreviewWAV, KeyVerbose, KeyQuiet,
	} {
		f := fs.Lookup(strings.ReplaceAll(key, "_", "-"))
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("binding flag --%s: %w", f.Name, err)
		}
	}
	return nil
}

// ReadFile merges the YAML file at path into v.
func ReadFile(v *viper.Viper, path string) error {
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	return nil
}

// Load resolves and validates the settings held by v.
func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		Pattern: v.GetString(KeyPattern),
		Format: pcmtab.Format{
			SampleRate: v.GetInt(KeySampleRate),
			Channels:   v.GetInt(KeyChannels),
			BitDepth:   v.GetInt(KeyBitDepth),
		},
		Emit: emit.Options{
			Namespace: v.GetString(KeyNamespace),
			PerLine:   v.GetInt(KeyPerLine),
			IndexName: v.GetString(KeyIndexName),
		},
		PreviewWAV: v.GetBool(KeyPreviewWAV),
		Verbose:    v.GetBool(KeyVerbose),
		Quiet:      v.GetBool(KeyQuiet),
	}

	if err := cfg.Format.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid target format: %w", err)
	}
	if err := cfg.Emit.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid output options: %w", err)
	}

	return cfg, nil
}
