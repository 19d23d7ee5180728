package project

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"github.com/dhamidi/externgen/format"
)

// ConfigFile is the name looked up in the project root.
const ConfigFile = "externgen.toml"

// Config mirrors externgen.toml.
type Config struct {
	Models  []string        `mapstructure:"models"`
	Rules   string          `mapstructure:"rules"`
	Output  OutputConfig    `mapstructure:"output"`
	Imports []format.Import `mapstructure:"imports"`
}

type OutputConfig struct {
	Dir       string `mapstructure:"dir"`
	Extension string `mapstructure:"extension"`
	Parallel  int    `mapstructure:"parallel"`
}

// SetDefaults configures default values for all configuration options.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("models", []string{})
	v.SetDefault("rules", "")
	v.SetDefault("output.dir", "externs")
	v.SetDefault("output.extension", format.DefaultExtension)
	v.SetDefault("output.parallel", 4)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("EXTERNGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)
	return v
}

// LoadConfig reads the TOML file at path. An empty path yields the defaults
// plus any EXTERNGEN_* environment overrides.
func LoadConfig(path string) (*Config, error) {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.WithHint(errors.Wrapf(err, "read config %s", path),
				"externgen.toml must be valid TOML")
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}
	if config.Output.Extension != "" && !strings.HasPrefix(config.Output.Extension, ".") {
		config.Output.Extension = "." + config.Output.Extension
	}
	return &config, nil
}

// findConfig returns rootDir/externgen.toml if it exists.
func findConfig(rootDir string) string {
	path := filepath.Join(rootDir, ConfigFile)
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}
