// Package config holds the settings of the edaplot command.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gonum.org/v1/plot/vg"
	"gopkg.in/yaml.v3"

	"github.com/vdobler/eda"
)

// EnvPrefix prefixes the environment variables overriding settings,
// e.g. EDAPLOT_TOP_N.
const EnvPrefix = "EDAPLOT"

// Config are the settings of edaplot.
type Config struct {
	Columns      int      `mapstructure:"columns" yaml:"columns"`
	RankColumns  int      `mapstructure:"rank_columns" yaml:"rank_columns"`
	TopN         int      `mapstructure:"top_n" yaml:"top_n"`
	DescribeTopN int      `mapstructure:"describe_top_n" yaml:"describe_top_n"`
	PolyOrder    int      `mapstructure:"polyorder" yaml:"polyorder"`
	Palette      []string `mapstructure:"palette" yaml:"palette"`
	Colormap     string   `mapstructure:"cmap" yaml:"cmap"`

	// Figure appearance, lengths in points.
	Pad       float64 `mapstructure:"pad" yaml:"pad"`
	TitleSize float64 `mapstructure:"title_size" yaml:"title_size"`

	Format    string `mapstructure:"format" yaml:"format"`
	Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
}

// Dir is the directory of the default configuration file.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".edaplot"), nil
}

// Save writes c to cfgFile, or to config.yaml in Dir if cfgFile is empty.
func Save(c *Config, cfgFile string) error {
	path := cfgFile
	if path == "" {
		dir, err := Dir()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load reads the configuration from defaults, the configuration file and
// the environment, later ones taking precedence. A missing configuration
// file is not an error.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	v.SetDefault("columns", 2)
	v.SetDefault("rank_columns", 3)
	v.SetDefault("top_n", eda.DefaultTopN)
	v.SetDefault("describe_top_n", eda.DefaultDescribeTopN)
	v.SetDefault("polyorder", eda.DefaultPolyOrder)
	v.SetDefault("palette", []string{})
	v.SetDefault("cmap", eda.DefaultTheme.CloudColormap)
	v.SetDefault("pad", float64(eda.DefaultTheme.Pad))
	v.SetDefault("title_size", float64(eda.DefaultTheme.TitleSize))
	v.SetDefault("format", "png")
	v.SetDefault("delimiter", ",")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		dir, err := Dir()
		if err != nil {
			return nil, err
		}
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}

// Theme returns the default theme adjusted to c.
func (c *Config) Theme() eda.Theme {
	t := eda.DefaultTheme
	if c.Pad > 0 {
		t.Pad = vg.Points(c.Pad)
	}
	if c.TitleSize > 0 {
		t.TitleSize = vg.Points(c.TitleSize)
	}
	if c.Colormap != "" {
		t.CloudColormap = c.Colormap
	}
	return t
}

// ParsedPalette converts the configured palette; an empty one yields nil.
func (c *Config) ParsedPalette() (eda.Palette, error) {
	if len(c.Palette) == 0 {
		return nil, nil
	}
	return eda.ParsePalette(c.Palette)
}
