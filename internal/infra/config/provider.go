package config

import (
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	LoginPassword = "password"
	LoginAttested = "attested"
)

// ProviderConfig configures one upstream handicap source. The map key in
// Config.Providers is the source name callers use.
type ProviderConfig struct {
	BaseURL        string            `mapstructure:"base_url"   validate:"required,url"`
	Username       string            `mapstructure:"username"   validate:"required"`
	Password       string            `mapstructure:"password"   validate:"required"`
	Login          string            `mapstructure:"login"      validate:"required,login_mode"`
	LoginPath      string            `mapstructure:"login_path" validate:"omitempty,startswith=/"`
	Timeout        time.Duration     `mapstructure:"timeout"`
	Cache          bool              `mapstructure:"cache"`
	RateLimit      RateLimiterConfig `mapstructure:"rate_limit"`
	Breaker        BreakerConfig     `mapstructure:"circuit_breaker"`
	Attestation    AttestationConfig `mapstructure:"attestation"`
	CourseCacheTTL time.Duration     `mapstructure:"course_cache_ttl" validate:"gte=0"`
}

// BreakerConfig guards a provider against a failing upstream.
type BreakerConfig struct {
	Enabled      bool          `mapstructure:"enabled"`
	MaxFailures  int           `mapstructure:"max_failures" validate:"required_if=Enabled true,omitempty,gt=0"`
	ResetTimeout time.Duration `mapstructure:"reset_timeout"`
}

// AttestationConfig describes the installation attestation endpoint used by
// the attested login mode.
type AttestationConfig struct {
	URL              string `mapstructure:"url"               validate:"omitempty,url"`
	APIKey           string `mapstructure:"api_key"`
	InstallationAuth string `mapstructure:"installation_auth"`
	SDKVersion       string `mapstructure:"sdk_version"`
}

// ResolvedLoginPath returns the configured login path or the default for the mode.
func (p ProviderConfig) ResolvedLoginPath() string {
	if p.LoginPath != "" {
		return p.LoginPath
	}
	if p.Login == LoginAttested {
		return "/golfer_login.json"
	}
	return "/users/login.json"
}

func providerStructLevel(sl validator.StructLevel) {
	p := sl.Current().Interface().(ProviderConfig)
	if p.Login != LoginAttested {
		return
	}
	if p.Attestation.URL == "" {
		sl.ReportError(p.Attestation.URL, "Attestation.URL", "url", "required_for_attested", "")
	}
	if p.Attestation.APIKey == "" {
		sl.ReportError(p.Attestation.APIKey, "Attestation.APIKey", "api_key", "required_for_attested", "")
	}
	if p.Attestation.InstallationAuth == "" {
		sl.ReportError(p.Attestation.InstallationAuth, "Attestation.InstallationAuth", "installation_auth", "required_for_attested", "")
	}
}
