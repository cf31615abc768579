package upstream

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	app_errors "github.com/spounge-ai/handicap/internal/errors"
	"github.com/spounge-ai/handicap/internal/infra/auth"
	"github.com/spounge-ai/handicap/pkg/execution"
)

// MaxAttempts is the attempt ceiling of one logical call: the initial attempt
// plus one retry after a credential refresh.
const MaxAttempts = 2

// Authenticator obtains a fresh credential and writes it to the token store.
type Authenticator interface {
	Login(ctx context.Context) error
}

// Operation is one named upstream call. Request builds the call without a
// token; Decode turns a 200 body into the result.
type Operation[T any] struct {
	Name    string
	Request func() *Request
	Decode  func(body []byte) (T, error)
}

// Controller drives operations through the re-authenticate-and-retry loop.
type Controller struct {
	doer   Doer
	tokens auth.TokenStore
	login  Authenticator
	logger *slog.Logger
}

func NewController(doer Doer, tokens auth.TokenStore, login Authenticator, logger *slog.Logger) *Controller {
	return &Controller{
		doer:   doer,
		tokens: tokens,
		login:  login,
		logger: logger,
	}
}

// Execute runs op. A 401 triggers a login and a re-issue of the same request
// until MaxAttempts is reached; 400 and any other non-200 status end the call.
// The caller's cancellation is detached: a started call runs to completion or
// exhaustion, bounded by the transport timeout.
func Execute[T any](ctx context.Context, c *Controller, op Operation[T]) (T, error) {
	ctx = context.WithoutCancel(ctx)
	var zero T

	result, err := execution.Bounded(ctx, MaxAttempts, func(ctx context.Context, attempt int) (T, execution.Outcome, error) {
		req := op.Request()
		req.Token = c.tokens.Token()

		resp, err := c.doer.Do(ctx, req)
		if err != nil {
			return zero, execution.Done, err
		}

		switch resp.Status {
		case http.StatusOK:
			v, err := op.Decode(resp.Body)
			if err != nil {
				return zero, execution.Done, fmt.Errorf("%s: %w", op.Name, err)
			}
			return v, execution.Done, nil

		case http.StatusUnauthorized:
			c.logger.DebugContext(ctx, "upstream rejected credential", "operation", op.Name, "attempt", attempt)
			if err := c.login.Login(ctx); err != nil {
				return zero, execution.Done, err
			}
			return zero, execution.Retry, nil

		case http.StatusBadRequest:
			c.logger.ErrorContext(ctx, "BAD_REQUEST", "operation", op.Name, "body", string(resp.Body))
			return zero, execution.Done, fmt.Errorf("%w for %s: %s", app_errors.ErrBadRequest, op.Name, resp.Body)

		default:
			return zero, execution.Done, fmt.Errorf("%w for %s: status %d", app_errors.ErrUnknownUpstreamStatus, op.Name, resp.Status)
		}
	})

	if errors.Is(err, execution.ErrAttemptsExhausted) {
		return zero, fmt.Errorf("%w to %s", app_errors.ErrRetryExhausted, op.Name)
	}
	return result, err
}
