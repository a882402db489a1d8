package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"cooking_probe/internal/thermal"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "PROBE"

// Config is the typed view of configs/config.yml plus PROBE_* overrides.
type Config struct {
	Port     string         `mapstructure:"port"`
	Log      LogConfig      `mapstructure:"log"`
	DB       DBConfig       `mapstructure:"db"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Analysis AnalysisConfig `mapstructure:"analysis"`
	Recorder RecorderConfig `mapstructure:"recorder"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type DBConfig struct {
	Path string `mapstructure:"path"`
}

type AuthConfig struct {
	SigningKey string        `mapstructure:"signing_key"`
	TokenTTL   time.Duration `mapstructure:"token_ttl"`
}

// AnalysisConfig holds parser and solver tuning.
type AnalysisConfig struct {
	HeaderLines   int     `mapstructure:"header_lines"`
	FitPoints     int     `mapstructure:"fit_points"`
	InitialGuess  float64 `mapstructure:"initial_guess"`
	MaxIterations int     `mapstructure:"max_iterations"`
	CurveEnd      float64 `mapstructure:"curve_end"`
	CurveSamples  int     `mapstructure:"curve_samples"`
}

// RecorderConfig points the recorder at the vendor cloud.
type RecorderConfig struct {
	BaseURL   string        `mapstructure:"base_url"`
	Email     string        `mapstructure:"email"`
	Password  string        `mapstructure:"password"`
	Interval  time.Duration `mapstructure:"interval"`
	Dir       string        `mapstructure:"dir"`
	Autostart bool          `mapstructure:"autostart"`
}

var (
	ErrNoPort          = errors.New("port must not be empty")
	ErrInvalidInterval = errors.New("recorder.interval must be positive")
	ErrNoSigningKey    = errors.New("auth.signing_key must be set (PROBE_AUTH_SIGNING_KEY)")
	ErrPlaceholderKey  = errors.New("auth.signing_key is a placeholder value; generate a random key")
)

// placeholderKeys are sample values shipped in docs and .env.example.
var placeholderKeys = map[string]bool{
	"change-me":                         true,
	"changeme":                          true,
	"secret":                            true,
	"replace-with-a-long-random-string": true,
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("db.path", "app.db")
	v.SetDefault("auth.signing_key", "")
	v.SetDefault("auth.token_ttl", 12*time.Hour)
	v.SetDefault("analysis.header_lines", thermal.DefaultHeaderLines)
	v.SetDefault("analysis.fit_points", thermal.DefaultFitPoints)
	v.SetDefault("analysis.initial_guess", thermal.DefaultInitialGuess)
	v.SetDefault("analysis.max_iterations", thermal.DefaultMaxIterations)
	v.SetDefault("analysis.curve_end", thermal.DefaultCurveEnd)
	v.SetDefault("analysis.curve_samples", thermal.DefaultCurveSamples)
	v.SetDefault("recorder.base_url", "https://public-api.cloud.meater.com/v1")
	v.SetDefault("recorder.email", "")
	v.SetDefault("recorder.password", "")
	v.SetDefault("recorder.interval", 10*time.Second)
	v.SetDefault("recorder.dir", "data")
	v.SetDefault("recorder.autostart", false)
}

// Load reads an optional .env, then config.yml from the given directories
// (configs/ when none are given). A missing config file is not an error.
func Load(dirs ...string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yml")
	if len(dirs) == 0 {
		dirs = []string{"configs"}
	}
	for _, d := range dirs {
		v.AddConfigPath(d)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch {
	case strings.TrimSpace(c.Port) == "":
		return ErrNoPort
	case c.Recorder.Interval <= 0:
		return ErrInvalidInterval
	case strings.TrimSpace(c.Auth.SigningKey) == "":
		return ErrNoSigningKey
	case placeholderKeys[strings.ToLower(c.Auth.SigningKey)]:
		return ErrPlaceholderKey
	}
	return nil
}

// ParseOptions maps the analysis section onto parser options.
func (a AnalysisConfig) ParseOptions() thermal.ParseOptions {
	return thermal.ParseOptions{HeaderLines: a.HeaderLines}
}

// FitOptions maps the analysis section onto solver options.
func (a AnalysisConfig) FitOptions() thermal.FitOptions {
	o := thermal.DefaultFitOptions()
	o.Points = a.FitPoints
	o.InitialGuess = a.InitialGuess
	o.MaxIterations = a.MaxIterations
	return o
}
