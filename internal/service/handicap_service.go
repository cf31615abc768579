package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spounge-ai/handicap/internal/domain"
	app_errors "github.com/spounge-ai/handicap/internal/errors"
)

// handicapLookupPage is the page used when resolving a single golfer id.
var handicapLookupPage = domain.Pagination{Page: 1, PerPage: 25}

// HandicapService is the facade behind the RPC layer. Every call is routed to
// the provider named by its source.
type HandicapService interface {
	GetHandicap(ctx context.Context, source, id string) (*domain.Player, error)
	SearchPlayer(ctx context.Context, q domain.PlayerQuery, p domain.Pagination) ([]domain.Player, error)
	GetCourse(ctx context.Context, q domain.CourseQuery) (*domain.Course, error)
	SearchCourse(ctx context.Context, q domain.CourseSearchQuery) ([]domain.Course, error)
	GetTees(ctx context.Context, q domain.TeeQuery) ([]domain.Tee, error)
	RequestProductAccess(ctx context.Context, source, golferID, email string) (*domain.ProductAccess, error)
	GetPlayingHandicaps(ctx context.Context, q domain.PlayingHandicapQuery) ([]domain.PlayingHandicapGroup, error)
}

type handicapService struct {
	providers domain.ProviderRegistry
	logger    *slog.Logger
}

func NewHandicapService(providers domain.ProviderRegistry, logger *slog.Logger) HandicapService {
	return &handicapService{providers: providers, logger: logger}
}

func (s *handicapService) provider(source string) (domain.HandicapProvider, error) {
	p, ok := s.providers.Provider(source)
	if !ok {
		return nil, fmt.Errorf("%w: '%s'", app_errors.ErrUnknownSource, source)
	}
	return p, nil
}

// GetHandicap resolves one golfer id to a single player with all their clubs.
func (s *handicapService) GetHandicap(ctx context.Context, source, id string) (*domain.Player, error) {
	p, err := s.provider(source)
	if err != nil {
		return nil, err
	}
	if id == "" {
		return nil, fmt.Errorf("%w: golfer id is required", app_errors.ErrInvalidInput)
	}

	players, err := p.SearchPlayers(ctx, domain.PlayerQuery{Source: source, GolferID: id}, handicapLookupPage)
	if err != nil {
		return nil, err
	}
	if len(players) == 0 {
		return nil, app_errors.ErrEmptyResult
	}
	return &players[0], nil
}

func (s *handicapService) SearchPlayer(ctx context.Context, q domain.PlayerQuery, pg domain.Pagination) ([]domain.Player, error) {
	p, err := s.provider(q.Source)
	if err != nil {
		return nil, err
	}
	return p.SearchPlayers(ctx, q, pg)
}

func (s *handicapService) GetCourse(ctx context.Context, q domain.CourseQuery) (*domain.Course, error) {
	p, err := s.provider(q.Source)
	if err != nil {
		return nil, err
	}
	return p.GetCourse(ctx, q)
}

func (s *handicapService) SearchCourse(ctx context.Context, q domain.CourseSearchQuery) ([]domain.Course, error) {
	p, err := s.provider(q.Source)
	if err != nil {
		return nil, err
	}
	return p.SearchCourses(ctx, q)
}

func (s *handicapService) GetTees(ctx context.Context, q domain.TeeQuery) ([]domain.Tee, error) {
	p, err := s.provider(q.Source)
	if err != nil {
		return nil, err
	}
	return p.GetTees(ctx, q)
}

func (s *handicapService) RequestProductAccess(ctx context.Context, source, golferID, email string) (*domain.ProductAccess, error) {
	p, err := s.provider(source)
	if err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "requesting product access", "source", source, "golfer_id", golferID)
	return p.RequestProductAccess(ctx, golferID, email)
}

func (s *handicapService) GetPlayingHandicaps(ctx context.Context, q domain.PlayingHandicapQuery) ([]domain.PlayingHandicapGroup, error) {
	p, err := s.provider(q.Source)
	if err != nil {
		return nil, err
	}
	if len(q.Golfers) == 0 || len(q.Percents) == 0 {
		return nil, fmt.Errorf("%w: at least one golfer and one percent are required", app_errors.ErrInvalidInput)
	}
	return p.GetPlayingHandicaps(ctx, q)
}
