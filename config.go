package fennecs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Config holds the tunables of a World.
type Config struct {
	// IndexArrays puts a mask-keyed map in front of the linear array scan. Worth it
	// once a world holds many distinct archetypes.
	IndexArrays bool `toml:"index_arrays" yaml:"index_arrays"`
	// EntityCapacity pre-sizes the entity id table.
	EntityCapacity int           `toml:"entity_capacity" yaml:"entity_capacity"`
	Logging        LoggingConfig `toml:"logging" yaml:"logging"`
}

type LoggingConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"` // "json" or "console"
}

func DefaultConfig() Config {
	return Config{
		IndexArrays:    false,
		EntityCapacity: 1024,
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// LoadConfig reads a TOML file, or YAML when the extension is .yaml/.yml, over the defaults.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := DefaultConfig()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		err = toml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.EntityCapacity < 0 {
		return Config{}, fmt.Errorf("parse config %s: entity_capacity must not be negative", path)
	}
	return cfg, nil
}

// NewLogger builds a zap logger: production encoding for "json", a compact
// console encoder otherwise. Unknown levels fall back to info.
func (c LoggingConfig) NewLogger() (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if c.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
