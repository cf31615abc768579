// Package ghin adapts the GHIN REST API to domain.HandicapProvider.
package ghin

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/spounge-ai/handicap/internal/domain"
	app_errors "github.com/spounge-ai/handicap/internal/errors"
	"github.com/spounge-ai/handicap/internal/infra/auth"
	"github.com/spounge-ai/handicap/internal/infra/config"
	"github.com/spounge-ai/handicap/internal/infra/upstream"
	"github.com/spounge-ai/handicap/internal/normalize"
	"github.com/spounge-ai/handicap/pkg/patterns/circuitbreaker"
)

const (
	defaultTimeout      = 10 * time.Second
	defaultBreakerReset = 30 * time.Second
)

var _ domain.HandicapProvider = (*Provider)(nil)

// Provider is one configured GHIN source. All calls share one credential.
type Provider struct {
	name       string
	tokens     *auth.TokenCell
	controller *upstream.Controller
	logger     *slog.Logger
}

// New builds a provider from its configuration. The login variant is picked
// from cfg.Login; every variant shares the same retry controller.
func New(name string, cfg config.ProviderConfig, logger *slog.Logger, opts ...upstream.Option) (*Provider, error) {
	logger = logger.With("source", name)

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	clientOpts := []upstream.Option{upstream.WithTimeout(timeout)}
	if cfg.Cache {
		clientOpts = append(clientOpts, upstream.WithCache())
	}
	if cfg.RateLimit.Enabled {
		clientOpts = append(clientOpts, upstream.WithRateLimit(cfg.RateLimit.Rate, cfg.RateLimit.Burst))
	}
	if cb := cfg.Breaker; cb.Enabled {
		reset := cb.ResetTimeout
		if reset <= 0 {
			reset = defaultBreakerReset
		}
		clientOpts = append(clientOpts, upstream.WithCircuitBreaker(cb.MaxFailures, reset, func(from, to circuitbreaker.State) {
			logger.Warn("upstream circuit breaker state changed", "from", from.String(), "to", to.String())
		}))
	}
	clientOpts = append(clientOpts, opts...)

	client := upstream.NewClient(cfg.BaseURL, clientOpts...)
	tokens := auth.NewTokenCell()

	var login upstream.Authenticator
	switch cfg.Login {
	case config.LoginPassword, "":
		login = NewPasswordLogin(client, tokens, cfg.ResolvedLoginPath(), cfg.Username, cfg.Password, logger)
	case config.LoginAttested:
		attestOpts := append([]upstream.Option{upstream.WithTimeout(timeout)}, opts...)
		attest := upstream.NewClient(cfg.Attestation.URL, attestOpts...)
		login = NewAttestedLogin(client, attest, tokens, AttestedLoginConfig{
			Path:             cfg.ResolvedLoginPath(),
			Username:         cfg.Username,
			Password:         cfg.Password,
			APIKey:           cfg.Attestation.APIKey,
			InstallationAuth: cfg.Attestation.InstallationAuth,
			SDKVersion:       cfg.Attestation.SDKVersion,
		}, logger)
	default:
		return nil, fmt.Errorf("unsupported login mode %q for source %s", cfg.Login, name)
	}

	return &Provider{
		name:       name,
		tokens:     tokens,
		controller: upstream.NewController(client, tokens, login, logger),
		logger:     logger,
	}, nil
}

func (p *Provider) Name() string {
	return p.name
}

// TokenGeneration reports how many logins have succeeded.
func (p *Provider) TokenGeneration() uint64 {
	return p.tokens.Generation()
}

func (p *Provider) SearchPlayers(ctx context.Context, q domain.PlayerQuery, pg domain.Pagination) ([]domain.Player, error) {
	rollup := q.Rollup()

	return upstream.Execute(ctx, p.controller, upstream.Operation[[]domain.Player]{
		Name: "search_player",
		Request: func() *upstream.Request {
			query := url.Values{}
			query.Set("page", strconv.Itoa(int(pg.Page)))
			query.Set("per_page", strconv.Itoa(int(pg.PerPage)))
			query.Set("golfer_id", q.GolferID)
			query.Set("state", q.State)
			query.Set("country", q.Country)
			query.Set("last_name", q.LastName)
			query.Set("first_name", q.FirstName)
			query.Set("email", q.Email)
			query.Set("status", "Active")
			query.Set("sorting_criteria", "full_name")
			query.Set("order", "asc")
			return &upstream.Request{Method: http.MethodGet, Path: "/golfers/search.json", Query: query}
		},
		Decode: func(body []byte) ([]domain.Player, error) {
			players, err := normalize.DecodePlayers(p.name, body, rollup)
			if err != nil {
				return nil, err
			}
			p.logger.DebugContext(ctx, "search_player",
				"golfer_id", q.GolferID, "country", q.Country, "state", q.State,
				"last_name", q.LastName, "first_name", q.FirstName, "players", len(players))
			return players, nil
		},
	})
}

func (p *Provider) GetCourse(ctx context.Context, q domain.CourseQuery) (*domain.Course, error) {
	return upstream.Execute(ctx, p.controller, upstream.Operation[*domain.Course]{
		Name: "get_course",
		Request: func() *upstream.Request {
			query := url.Values{}
			query.Set("include_altered_tees", strconv.FormatBool(q.IncludeAlteredTees))
			return &upstream.Request{
				Method: http.MethodGet,
				Path:   "/courses/" + url.PathEscape(q.CourseID) + ".json",
				Query:  query,
			}
		},
		Decode: normalize.DecodeCourse,
	})
}

func (p *Provider) SearchCourses(ctx context.Context, q domain.CourseSearchQuery) ([]domain.Course, error) {
	return upstream.Execute(ctx, p.controller, upstream.Operation[[]domain.Course]{
		Name: "search_course",
		Request: func() *upstream.Request {
			query := url.Values{}
			setIf(query, "name", q.Name)
			setIf(query, "facility_id", q.FacilityID)
			setIf(query, "country", q.Country)
			setIf(query, "state", q.State)
			setIf(query, "course_status", q.CourseStatus)
			setIf(query, "facility_status", q.FacilityStatus)
			if q.Offset > 0 {
				query.Set("offset", strconv.Itoa(int(q.Offset)))
			}
			if q.Limit > 0 {
				query.Set("limit", strconv.Itoa(int(q.Limit)))
			}
			if q.IncludeTeeSets {
				query.Set("include_tee_sets", "true")
			}
			return &upstream.Request{Method: http.MethodGet, Path: "/courses/search.json", Query: query}
		},
		Decode: normalize.DecodeCourseSearch,
	})
}

func (p *Provider) GetTees(ctx context.Context, q domain.TeeQuery) ([]domain.Tee, error) {
	var teeID int64
	if q.TeeID != "" {
		id, err := strconv.ParseInt(q.TeeID, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: tee id %q is not an integer", app_errors.ErrInvalidInput, q.TeeID)
		}
		teeID = id
	}

	tees, err := upstream.Execute(ctx, p.controller, upstream.Operation[[]domain.Tee]{
		Name: "get_tees",
		Request: func() *upstream.Request {
			return &upstream.Request{
				Method: http.MethodGet,
				Path:   "/courses/" + url.PathEscape(q.CourseID) + "/tee_set_ratings.json",
			}
		},
		Decode: normalize.DecodeTees,
	})
	if err != nil || q.TeeID == "" {
		return tees, err
	}

	filtered := make([]domain.Tee, 0, 1)
	for _, t := range tees {
		if int64(t.TeeID) == teeID {
			filtered = append(filtered, t)
		}
	}
	return filtered, nil
}

func (p *Provider) RequestProductAccess(ctx context.Context, golferID, email string) (*domain.ProductAccess, error) {
	return upstream.Execute(ctx, p.controller, upstream.Operation[*domain.ProductAccess]{
		Name: "request_gpa",
		Request: func() *upstream.Request {
			return &upstream.Request{
				Method: http.MethodPost,
				Path:   "/users/golfers/" + url.PathEscape(golferID) + "/request_golfer_product_access.json",
				Body:   map[string]string{"email": email},
			}
		},
		Decode: normalize.DecodeProductAccess,
	})
}

type playingHandicapsBody struct {
	Golfers  []domain.PlayingHandicapGolfer `json:"golfers"`
	Percents []int32                        `json:"percents"`
}

func (p *Provider) GetPlayingHandicaps(ctx context.Context, q domain.PlayingHandicapQuery) ([]domain.PlayingHandicapGroup, error) {
	return upstream.Execute(ctx, p.controller, upstream.Operation[[]domain.PlayingHandicapGroup]{
		Name: "get_playing_handicaps",
		Request: func() *upstream.Request {
			return &upstream.Request{
				Method: http.MethodPost,
				Path:   "/playing_handicaps.json",
				Body:   playingHandicapsBody{Golfers: q.Golfers, Percents: q.Percents},
			}
		},
		Decode: normalize.DecodePlayingHandicaps,
	})
}

func setIf(v url.Values, key, value string) {
	if value != "" {
		v.Set(key, value)
	}
}
