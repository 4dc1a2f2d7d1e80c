package config

import (
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Volcanoes  VolcanoConfig  `yaml:"volcanoes" mapstructure:"volcanoes"`
	Boundaries BoundaryConfig `yaml:"boundaries" mapstructure:"boundaries"`
	Map        MapConfig      `yaml:"map" mapstructure:"map"`
	Output     OutputConfig   `yaml:"output" mapstructure:"output"`
	Log        LogConfig      `yaml:"log" mapstructure:"log"`
}

// VolcanoConfig describes the volcano point table and how its markers look.
type VolcanoConfig struct {
	Path            string `yaml:"path" mapstructure:"path"`
	LatColumn       string `yaml:"lat_column" mapstructure:"lat_column"`
	LonColumn       string `yaml:"lon_column" mapstructure:"lon_column"`
	LabelColumn     string `yaml:"label_column" mapstructure:"label_column"`
	ElevationColumn string `yaml:"elevation_column" mapstructure:"elevation_column"`
	Delimiter       string `yaml:"delimiter" mapstructure:"delimiter"`
	Sheet           string `yaml:"sheet" mapstructure:"sheet"`
	MarkerStyle     string `yaml:"marker_style" mapstructure:"marker_style"`
	LayerName       string `yaml:"layer_name" mapstructure:"layer_name"`
}

// BoundaryConfig describes the country boundary file.
type BoundaryConfig struct {
	Path               string `yaml:"path" mapstructure:"path"`
	PopulationProperty string `yaml:"population_property" mapstructure:"population_property"`
	LayerName          string `yaml:"layer_name" mapstructure:"layer_name"`
}

// MapConfig sets the initial viewport and background tiles.
type MapConfig struct {
	CenterLat float64 `yaml:"center_lat" mapstructure:"center_lat"`
	CenterLon float64 `yaml:"center_lon" mapstructure:"center_lon"`
	Zoom      int     `yaml:"zoom" mapstructure:"zoom"`
	Tiles     string  `yaml:"tiles" mapstructure:"tiles"`
	Title     string  `yaml:"title" mapstructure:"title"`
}

// OutputConfig names the generated HTML file.
type OutputConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment. An empty path searches
// the working directory for config.yaml; a missing file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, eris.Wrapf(err, "config: stat %s", path)
		}
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("VOLCANOMAP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns the built-in configuration without consulting files or the
// environment.
func Default() *Config {
	v := viper.New()
	setDefaults(v)

	var cfg Config
	// Defaults are plain scalars; unmarshal cannot fail.
	_ = v.Unmarshal(&cfg)
	return &cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("volcanoes.path", "Volcanoes.txt")
	v.SetDefault("volcanoes.lat_column", "LAT")
	v.SetDefault("volcanoes.lon_column", "LON")
	v.SetDefault("volcanoes.label_column", "NAME")
	v.SetDefault("volcanoes.elevation_column", "ELEV")
	v.SetDefault("volcanoes.delimiter", ",")
	v.SetDefault("volcanoes.sheet", "")
	v.SetDefault("volcanoes.marker_style", "pin")
	v.SetDefault("volcanoes.layer_name", "Volcanoes")
	v.SetDefault("boundaries.path", "world.json")
	v.SetDefault("boundaries.population_property", "POP2005")
	v.SetDefault("boundaries.layer_name", "Polygons")
	v.SetDefault("map.center_lat", 32.772)
	v.SetDefault("map.center_lon", -117.197)
	v.SetDefault("map.zoom", 5)
	v.SetDefault("map.tiles", "Mapbox Bright")
	v.SetDefault("map.title", "Volcanoes and Population")
	v.SetDefault("output.path", "Map1.html")
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "console")
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
