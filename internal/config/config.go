// Package config is for app wide settings that are unmarshalled from Viper
// (see: /cmd/seqan). Settings come from an optional config.json, SEQAN_
// environment variables and command line flags, in increasing priority.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. SEQAN_LOG_LEVEL.
const EnvPrefix = "SEQAN"

// Config is the root level settings struct.
type Config struct {
	InputFasta string `mapstructure:"input_fasta"`
	OutputJSON string `mapstructure:"output_json"`
	LogFile    string `mapstructure:"log_file"`
	LogLevel   string `mapstructure:"log_level"`

	// sequence kind for every record, DNA or RNA
	Kind string `mapstructure:"kind"`

	// window length for the windowed gc content
	WindowSize int `mapstructure:"window_size"`

	// amino acid whose codon usage is reported
	CodonUsageAA string `mapstructure:"codon_usage_aa"`

	// half open range restricting protein search; disabled unless end > start
	ORFStart int `mapstructure:"orf_start"`
	ORFEnd   int `mapstructure:"orf_end"`

	OrderedProteins bool `mapstructure:"ordered_proteins"`
	Color           bool `mapstructure:"color"`

	// artificial per record delay in milliseconds
	DelayMS int `mapstructure:"delay_ms"`
}

// SetDefaults registers the default of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("input_fasta", "")
	v.SetDefault("output_json", "")
	v.SetDefault("log_file", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("kind", "DNA")
	v.SetDefault("window_size", 20)
	v.SetDefault("codon_usage_aa", "L")
	v.SetDefault("orf_start", 0)
	v.SetDefault("orf_end", 0)
	v.SetDefault("ordered_proteins", false)
	v.SetDefault("color", true)
	v.SetDefault("delay_ms", 0)
}

// LoadConfig reads path (or ./config.json when path is empty) into v and
// decodes the merged settings. A missing default file is not an error; a
// missing file that was asked for explicitly is.
func LoadConfig(v *viper.Viper, path string) (*Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	explicit := path != ""
	if !explicit {
		path = "config.json"
	}
	v.SetConfigFile(path)
	v.SetConfigType("json")
	if err := v.ReadInConfig(); err != nil {
		var pe *os.PathError
		if explicit || !errors.As(err, &pe) {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate rejects settings the analysis cannot run with.
func (c *Config) Validate() error {
	if c.WindowSize <= 0 {
		return fmt.Errorf("window_size must be positive, got %d", c.WindowSize)
	}
	if c.ORFStart < 0 || c.ORFEnd < 0 {
		return fmt.Errorf("orf range must not be negative, got [%d, %d)", c.ORFStart, c.ORFEnd)
	}
	if len(c.CodonUsageAA) != 1 {
		return fmt.Errorf("codon_usage_aa must be a single letter, got %q", c.CodonUsageAA)
	}
	c.CodonUsageAA = strings.ToUpper(c.CodonUsageAA)
	return nil
}
