package domain

import "context"

// HandicapProvider is an upstream handicap service. Implementations own their
// credential and re-authenticate on authorization failures.
type HandicapProvider interface {
	Name() string
	SearchPlayers(ctx context.Context, q PlayerQuery, p Pagination) ([]Player, error)
	GetCourse(ctx context.Context, q CourseQuery) (*Course, error)
	SearchCourses(ctx context.Context, q CourseSearchQuery) ([]Course, error)
	GetTees(ctx context.Context, q TeeQuery) ([]Tee, error)
	RequestProductAccess(ctx context.Context, golferID, email string) (*ProductAccess, error)
	GetPlayingHandicaps(ctx context.Context, q PlayingHandicapQuery) ([]PlayingHandicapGroup, error)
}

// ProviderRegistry resolves a provider by its source name.
type ProviderRegistry interface {
	Provider(source string) (HandicapProvider, bool)
}
