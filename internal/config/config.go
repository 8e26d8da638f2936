package config

import (
	"encoding/hex"
	"fmt"

	"github.com/go-playground/validator/v10"

	pkgconfig "github.com/weiawesome/meson/pkg/config"
	"github.com/weiawesome/meson/pkg/meson"
)

// Meson output formats.
const (
	FormatCompact   = "compact"
	FormatFormatted = "formatted"
)

type Config struct {
	Server  ServerConfig
	GRPC    GRPCConfig
	Meson   MesonConfig
	Metrics MetricsConfig
	Log     LogConfig
}

type ServerConfig struct {
	Host string
	Port int `validate:"min=1,max=65535"`
}

type GRPCConfig struct {
	Host string
	Port int `validate:"min=1,max=65535"`
}

type MesonConfig struct {
	Format     string `mapstructure:"format" validate:"oneof=compact formatted"`
	CGroupPath string `mapstructure:"cgroup_path"`
	// Fingerprint pins the generator id instead of deriving it from the host.
	Fingerprint string `mapstructure:"fingerprint" validate:"omitempty,len=8,hexadecimal"`
	MaxBatch    int    `mapstructure:"max_batch" validate:"min=1,max=10000"`
}

type MetricsConfig struct {
	Enabled bool
	Path    string `validate:"required_if=Enabled true,omitempty,startswith=/"`
}

type LogConfig struct {
	Level  string `validate:"omitempty,oneof=trace debug info warn warning error fatal disabled off"`
	Pretty bool
}

// PinnedFingerprint decodes Meson.Fingerprint. ok is false when no override
// is configured.
func (c MesonConfig) PinnedFingerprint() (fp [meson.GeneratorIDSize]byte, ok bool, err error) {
	if c.Fingerprint == "" {
		return fp, false, nil
	}
	b, err := hex.DecodeString(c.Fingerprint)
	if err != nil || len(b) != meson.GeneratorIDSize {
		return fp, false, fmt.Errorf("meson.fingerprint must be %d hex characters, got %q", meson.GeneratorIDSize*2, c.Fingerprint)
	}
	copy(fp[:], b)
	return fp, true, nil
}

// Load reads ./config/config.yaml and MESON_* environment variables.
func Load() (*Config, error) {
	return LoadFrom("./config", "config")
}

// LoadFrom reads the named config file under path.
func LoadFrom(path, name string) (*Config, error) {
	v, err := pkgconfig.Load(path, name, "MESON")
	if err != nil {
		return nil, err
	}

	// Set defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8090)
	v.SetDefault("grpc.host", "0.0.0.0")
	v.SetDefault("grpc.port", 50053)
	v.SetDefault("meson.format", FormatCompact)
	v.SetDefault("meson.cgroup_path", meson.DefaultCGroupPath)
	v.SetDefault("meson.fingerprint", "")
	v.SetDefault("meson.max_batch", 1000)
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// Override from environment
	v.BindEnv("server.port", "PORT")
	v.BindEnv("grpc.port", "GRPC_PORT")
	v.BindEnv("meson.fingerprint", "MESON_FINGERPRINT")
	v.BindEnv("log.level", "LOG_LEVEL")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}
