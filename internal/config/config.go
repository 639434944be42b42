package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EnvPrefix namespaces every environment override, e.g. FOLIO_PORT.
const EnvPrefix = "FOLIO"

type Config struct {
	Port         int           `mapstructure:"port"`
	SiteDir      string        `mapstructure:"siteDir"`
	BaseURL      string        `mapstructure:"baseURL"`
	CVPath       string        `mapstructure:"cvPath"`
	ChromePath   string        `mapstructure:"chromePath"`
	NavTimeout   time.Duration `mapstructure:"navTimeout"`
	ReadyTimeout time.Duration `mapstructure:"readyTimeout"`
	ExportsDSN   string        `mapstructure:"exportsDSN"`
	Watch        bool          `mapstructure:"watch"`
	LogLevel     string        `mapstructure:"logLevel"`
}

// SetDefaults registers the default of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("port", 3000)
	v.SetDefault("siteDir", "site")
	v.SetDefault("baseURL", "")
	v.SetDefault("cvPath", "/cv.html")
	v.SetDefault("chromePath", os.Getenv("CHROME_PATH"))
	v.SetDefault("navTimeout", 30*time.Second)
	v.SetDefault("readyTimeout", 15*time.Second)
	v.SetDefault("exportsDSN", "")
	v.SetDefault("watch", false)
	v.SetDefault("logLevel", "info")
}

// Load reads cfgFile, or ./config.yaml when cfgFile is empty, then applies
// FOLIO_* environment overrides. A missing default config file is not an error.
func Load(v *viper.Viper, cfgFile string) (Config, error) {
	SetDefaults(v)
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || cfgFile != "" {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	cfg.normalize()
	return cfg, nil
}

func (c *Config) normalize() {
	if c.BaseURL == "" {
		c.BaseURL = fmt.Sprintf("http://127.0.0.1:%d", c.Port)
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	if !strings.HasPrefix(c.CVPath, "/") {
		c.CVPath = "/" + c.CVPath
	}
}

// Addr is the listen address.
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// NewLogger builds a JSON zap logger at the configured level. Unknown
// levels fall back to info.
func NewLogger(levelName string) (*zap.Logger, error) {
	level := zap.NewAtomicLevel()
	if err := level.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(levelName)))); err != nil {
		_ = level.UnmarshalText([]byte("info"))
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.RFC3339NanoTimeEncoder

	cfg := zap.Config{
		Level:             level,
		Encoding:          "json",
		EncoderConfig:     encoderCfg,
		OutputPaths:       []string{"stdout"},
		ErrorOutputPaths:  []string{"stderr"},
		DisableStacktrace: true,
	}
	return cfg.Build()
}
