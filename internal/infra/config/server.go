package config

// ServerConfig represents the server configuration.
type ServerConfig struct {
	Port        int                `mapstructure:"port"      validate:"required,gte=1024,lte=65535"`
	TLS         TLS                `mapstructure:"tls"`
	Mode        string             `mapstructure:"mode"      validate:"required,oneof=development production"`
	LogLevel    string             `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	RateLimiter InboundLimitConfig `mapstructure:"rate_limiter"`
}

// InboundLimitConfig limits calls per client host. Methods overrides the
// default bucket for individual RPCs, keyed by method name (e.g. SearchPlayer).
type InboundLimitConfig struct {
	Enabled bool                  `mapstructure:"enabled"`
	Rate    float64               `mapstructure:"rate"    validate:"required_if=Enabled true,omitempty,gt=0"`
	Burst   int                   `mapstructure:"burst"   validate:"required_if=Enabled true,omitempty,gt=0"`
	Methods map[string]MethodRate `mapstructure:"methods" validate:"omitempty,dive"`
}

type MethodRate struct {
	Rate  float64 `mapstructure:"rate"  validate:"gt=0"`
	Burst int     `mapstructure:"burst" validate:"gt=0"`
}

// RateLimiterConfig is a token bucket for outbound upstream calls.
type RateLimiterConfig struct {
	Enabled bool    `mapstructure:"enabled"`
	Rate    float64 `mapstructure:"rate"  validate:"required_if=Enabled true,omitempty,gt=0"`
	Burst   int     `mapstructure:"burst" validate:"required_if=Enabled true,omitempty,gt=0"`
}

// TLS represents the TLS configuration.
type TLS struct {
	Enabled      bool   `mapstructure:"enabled"`
	CertFile     string `mapstructure:"cert_file" validate:"required_if=Enabled true"`
	KeyFile      string `mapstructure:"key_file"  validate:"required_if=Enabled true"`
	ClientCAFile string `mapstructure:"client_ca_file"`
	ClientAuth   string `mapstructure:"client_auth"`
}
