package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// APIServerConfig represents the mint action server configuration
type APIServerConfig struct {
	Server      ServerConfig      `mapstructure:"server"`
	Pinning     PinningConfig     `mapstructure:"pinning"`
	Chain       ChainConfig       `mapstructure:"chain"`
	Action      ActionConfig      `mapstructure:"action"`
	Certificate CertificateConfig `mapstructure:"certificate"`
	Metrics     MetricsConfig     `mapstructure:"metrics"`
	Logging     LoggingConfig     `mapstructure:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string          `mapstructure:"host" default:"0.0.0.0"`
	Port            int             `mapstructure:"port" default:"3000" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration   `mapstructure:"read_timeout" default:"30s"`
	WriteTimeout    time.Duration   `mapstructure:"write_timeout" default:"90s"`
	IdleTimeout     time.Duration   `mapstructure:"idle_timeout" default:"60s"`
	ShutdownTimeout time.Duration   `mapstructure:"shutdown_timeout" default:"30s"`
	RequestTimeout  time.Duration   `mapstructure:"request_timeout" default:"60s"`
	MaxUploadBytes  int64           `mapstructure:"max_upload_bytes" default:"10485760" validate:"min=1"`
	RateLimit       RateLimitConfig `mapstructure:"rate_limit"`
}

// RateLimitConfig limits submissions across all clients. RequestsPerSecond <= 0 disables it.
type RateLimitConfig struct {
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	Burst             int     `mapstructure:"burst" default:"5"`
}

// PinningConfig contains pinning service (Pinata) settings.
// Either APIKey+APISecret or JWT authenticates requests.
type PinningConfig struct {
	BaseURL   string        `mapstructure:"base_url" default:"https://api.pinata.cloud" validate:"required,url"`
	APIKey    string        `mapstructure:"api_key"`
	APISecret string        `mapstructure:"api_secret"`
	JWT       string        `mapstructure:"jwt"`
	Timeout   time.Duration `mapstructure:"timeout" default:"60s"`
}

// ChainConfig selects the network and the NFT contract minted against.
type ChainConfig struct {
	Name            string `mapstructure:"name" default:"fuji" validate:"required"`
	ContractAddress string `mapstructure:"contract_address" default:"0x45804FA4dDfBC8D6BB5aeABB3EE5765740661e8a" validate:"required,eth_addr"`
}

// ActionConfig contains the descriptor fields advertised to action clients
type ActionConfig struct {
	URL      string `mapstructure:"url" default:"https://sherry.social" validate:"required,url"`
	Icon     string `mapstructure:"icon" default:"https://avatars.githubusercontent.com/u/117962315" validate:"required,url"`
	BaseURL  string `mapstructure:"base_url" validate:"omitempty,url"`
	MintedBy string `mapstructure:"minted_by" default:"SherryLinks API"`
}

// CertificateConfig controls generated certificate images
type CertificateConfig struct {
	Issuer   string `mapstructure:"issuer" default:"SherryLinks"`
	Format   string `mapstructure:"format" default:"svg" validate:"oneof=svg png"`
	// FontPath is a TrueType font used for PNG rendering. Empty falls back to
	// well-known system locations, then to the built-in bitmap face.
	FontPath string `mapstructure:"font_path"`
}

// MetricsConfig contains prometheus exposition settings
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled" default:"true"`
	Path    string `mapstructure:"path" default:"/metrics"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level      string `mapstructure:"level" default:"info"`
	Format     string `mapstructure:"format" default:"json" validate:"oneof=json console"`
	OutputPath string `mapstructure:"output_path" default:"stdout"`
}

// envBindings maps config keys to the environment variable names used by deployments.
var envBindings = map[string]string{
	"pinning.api_key":    "PINATA_API_KEY",
	"pinning.api_secret": "PINATA_API_SECRET",
	"pinning.jwt":        "PINATA_JWT",
}

// LoadAPIServer loads API server configuration from an optional YAML file and
// the environment. Every key can be overridden with its upper-cased,
// underscore-separated name (server.port -> SERVER_PORT).
func LoadAPIServer(configPath string) (*APIServerConfig, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := bindEnv(v); err != nil {
		return nil, err
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config APIServerConfig
	if err := defaults.Set(&config); err != nil {
		return nil, fmt.Errorf("failed to apply config defaults: %w", err)
	}

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateAPIServer(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

// bindEnv registers every known key with viper so AutomaticEnv can see it even
// when the key is missing from the config file.
func bindEnv(v *viper.Viper) error {
	for _, key := range configKeys() {
		if err := v.BindEnv(key); err != nil {
			return fmt.Errorf("bind env %s: %w", key, err)
		}
	}
	for key, env := range envBindings {
		if err := v.BindEnv(key, strings.ToUpper(strings.ReplaceAll(key, ".", "_")), env); err != nil {
			return fmt.Errorf("bind env %s: %w", key, err)
		}
	}
	return nil
}

func configKeys() []string {
	return []string{
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		"server.shutdown_timeout",
		"server.request_timeout",
		"server.max_upload_bytes",
		"server.rate_limit.requests_per_second",
		"server.rate_limit.burst",
		"pinning.base_url",
		"pinning.timeout",
		"chain.name",
		"chain.contract_address",
		"action.url",
		"action.icon",
		"action.base_url",
		"action.minted_by",
		"certificate.issuer",
		"certificate.format",
		"certificate.font_path",
		"metrics.enabled",
		"metrics.path",
		"logging.level",
		"logging.format",
		"logging.output_path",
	}
}

func validateAPIServer(config *APIServerConfig) error {
	if err := validator.New().Struct(config); err != nil {
		return err
	}
	if config.Pinning.APIKey != "" && config.Pinning.APISecret == "" {
		return fmt.Errorf("pinning.api_secret is required when pinning.api_key is set")
	}
	return nil
}

// HasPinningCredentials reports whether any pinning credentials are configured.
func (c *PinningConfig) HasPinningCredentials() bool {
	return c.JWT != "" || (c.APIKey != "" && c.APISecret != "")
}
