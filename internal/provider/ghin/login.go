package ghin

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	app_errors "github.com/spounge-ai/handicap/internal/errors"
	"github.com/spounge-ai/handicap/internal/infra/auth"
	"github.com/spounge-ai/handicap/internal/infra/upstream"
)

// PasswordLogin exchanges the account email and password for a session token.
type PasswordLogin struct {
	client   upstream.Doer
	tokens   auth.TokenStore
	path     string
	username string
	password string
	logger   *slog.Logger
}

func NewPasswordLogin(client upstream.Doer, tokens auth.TokenStore, path, username, password string, logger *slog.Logger) *PasswordLogin {
	return &PasswordLogin{
		client:   client,
		tokens:   tokens,
		path:     path,
		username: username,
		password: password,
		logger:   logger,
	}
}

type passwordUser struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RememberMe bool   `json:"remember_me"`
}

type passwordPayload struct {
	User passwordUser `json:"user"`
}

type passwordResponse struct {
	Token string `json:"token"`
}

func (l *PasswordLogin) Login(ctx context.Context) error {
	resp, err := l.client.Do(ctx, &upstream.Request{
		Method: http.MethodPost,
		Path:   l.path,
		Body: passwordPayload{User: passwordUser{
			Email:      l.username,
			Password:   l.password,
			RememberMe: true,
		}},
	})
	if err != nil {
		return fmt.Errorf("%w: %w", app_errors.ErrLogin, err)
	}
	if resp.Status != http.StatusOK {
		return fmt.Errorf("%w: status %d", app_errors.ErrLogin, resp.Status)
	}

	var body passwordResponse
	if err := resp.Decode(&body); err != nil {
		return fmt.Errorf("%w: decoding response: %w", app_errors.ErrLogin, err)
	}
	if body.Token == "" {
		return fmt.Errorf("%w: response carried no token", app_errors.ErrLogin)
	}

	l.logger.InfoContext(ctx, "refreshing upstream token", "mode", "password")
	l.tokens.SetToken(body.Token)
	return nil
}

// AttestedLogin logs in as a golfer. It first fetches a short-lived
// installation attestation token and presents it alongside the credentials.
type AttestedLogin struct {
	client           upstream.Doer
	attest           upstream.Doer
	tokens           auth.TokenStore
	path             string
	username         string
	password         string
	apiKey           string
	installationAuth string
	sdkVersion       string
	logger           *slog.Logger
}

// AttestedLoginConfig groups the attestation endpoint settings.
type AttestedLoginConfig struct {
	Path             string
	Username         string
	Password         string
	APIKey           string
	InstallationAuth string
	SDKVersion       string
}

func NewAttestedLogin(client, attest upstream.Doer, tokens auth.TokenStore, cfg AttestedLoginConfig, logger *slog.Logger) *AttestedLogin {
	return &AttestedLogin{
		client:           client,
		attest:           attest,
		tokens:           tokens,
		path:             cfg.Path,
		username:         cfg.Username,
		password:         cfg.Password,
		apiKey:           cfg.APIKey,
		installationAuth: cfg.InstallationAuth,
		sdkVersion:       cfg.SDKVersion,
		logger:           logger,
	}
}

type attestationPayload struct {
	Installation struct {
		SDKVersion string `json:"sdkVersion"`
	} `json:"installation"`
}

type attestationResponse struct {
	Token     string `json:"token"`
	ExpiresIn string `json:"expiresIn"`
}

type golferUser struct {
	EmailOrGHIN string `json:"email_or_ghin"`
	Password    string `json:"password"`
	RememberMe  bool   `json:"remember_me"`
}

type golferLoginPayload struct {
	Source string     `json:"source"`
	Token  string     `json:"token"`
	User   golferUser `json:"user"`
}

type golferLoginResponse struct {
	GolferUser struct {
		GolferUserToken string `json:"golfer_user_token"`
	} `json:"golfer_user"`
}

func (l *AttestedLogin) Login(ctx context.Context) error {
	attestation, err := l.attestation(ctx)
	if err != nil {
		return err
	}

	resp, err := l.client.Do(ctx, &upstream.Request{
		Method: http.MethodPost,
		Path:   l.path,
		Body: golferLoginPayload{
			Source: "GHINcom",
			Token:  attestation,
			User: golferUser{
				EmailOrGHIN: l.username,
				Password:    l.password,
				RememberMe:  false,
			},
		},
	})
	if err != nil {
		return fmt.Errorf("%w: %w", app_errors.ErrLogin, err)
	}
	if resp.Status != http.StatusOK {
		return fmt.Errorf("%w: status %d", app_errors.ErrLogin, resp.Status)
	}

	var body golferLoginResponse
	if err := resp.Decode(&body); err != nil {
		return fmt.Errorf("%w: decoding response: %w", app_errors.ErrLogin, err)
	}
	if body.GolferUser.GolferUserToken == "" {
		return fmt.Errorf("%w: response carried no token", app_errors.ErrLogin)
	}

	l.logger.InfoContext(ctx, "refreshing upstream token", "mode", "attested")
	l.tokens.SetToken(body.GolferUser.GolferUserToken)
	return nil
}

func (l *AttestedLogin) attestation(ctx context.Context) (string, error) {
	var payload attestationPayload
	payload.Installation.SDKVersion = l.sdkVersion

	header := http.Header{}
	header.Set("Authorization", "FIS_v2 "+l.installationAuth)
	header.Set("x-goog-api-key", l.apiKey)

	resp, err := l.attest.Do(ctx, &upstream.Request{
		Method: http.MethodPost,
		Body:   payload,
		Header: header,
	})
	if err != nil {
		return "", fmt.Errorf("%w: attestation: %w", app_errors.ErrLogin, err)
	}
	if resp.Status != http.StatusOK {
		return "", fmt.Errorf("%w: attestation status %d", app_errors.ErrLogin, resp.Status)
	}

	var body attestationResponse
	if err := resp.Decode(&body); err != nil {
		return "", fmt.Errorf("%w: decoding attestation: %w", app_errors.ErrLogin, err)
	}
	if body.Token == "" {
		return "", fmt.Errorf("%w: attestation carried no token", app_errors.ErrLogin)
	}

	l.logger.DebugContext(ctx, "fetched installation attestation", "expires_in", body.ExpiresIn)
	return body.Token, nil
}
