// Package config holds the analysis parameters unmarshalled from a
// parameter sheet via Viper (see /internal/cli).
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Params are the batch-analysis settings. Cutoffs are fractions; the
// defaults are the upstream preliminary-data values.
type Params struct {
	// overrides the sample sheet's project name when set
	ProjectName string `mapstructure:"projectname"`

	// space-separated methylase names to test, e.g. "EcoKDam EcoKDcm"
	Methylases string `mapstructure:"methylases"`

	// fraction of modified calls at/above which a base counts methylated
	MethylatedCutoff float64 `mapstructure:"methylated-cutoff"`

	// fraction at/below which a base counts unmethylated
	UnmethylatedCutoff float64 `mapstructure:"unmethylated-cutoff"`

	// directory of reference FASTA files
	SequenceDir string `mapstructure:"sequence-dir"`

	// directory of bedMethyl files
	BedmethylDir string `mapstructure:"bedmethyl-dir"`
}

const (
	defaultMethylatedCutoff   = 0.7
	defaultUnmethylatedCutoff = 0.3
)

// Load reads a parameter sheet (any format Viper understands; YAML in
// practice) into Params, with EPIJINN_* environment overrides.
func Load(path string) (Params, error) {
	v := viper.New()
	v.SetDefault("methylated-cutoff", defaultMethylatedCutoff)
	v.SetDefault("unmethylated-cutoff", defaultUnmethylatedCutoff)
	v.SetDefault("sequence-dir", ".")
	v.SetDefault("bedmethyl-dir", ".")
	v.SetEnvPrefix("EPIJINN")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Params{}, fmt.Errorf("parameter sheet: %w", err)
		}
	}

	var p Params
	if err := v.Unmarshal(&p); err != nil {
		return Params{}, fmt.Errorf("parameter sheet: %w", err)
	}
	return p, nil
}
