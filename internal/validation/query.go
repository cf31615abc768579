package validation

import (
	handicapv1 "github.com/spounge-ai/handicap/pkg/handicap/v1"
)

const (
	DefaultPerPage     = 25
	DefaultCourseLimit = 25
)

type QueryValidator struct{}

func NewQueryValidator() *QueryValidator {
	return &QueryValidator{}
}

// ApplySearchPlayerDefaults fills in pagination the caller left out.
func (qv *QueryValidator) ApplySearchPlayerDefaults(req *handicapv1.SearchPlayerRequest) {
	if req.Q == nil {
		req.Q = &handicapv1.PlayerQuery{}
	}
	if req.P == nil {
		req.P = &handicapv1.Pagination{}
	}
	if req.P.Page == 0 {
		req.P.Page = 1
	}
	if req.P.PerPage == 0 {
		req.P.PerPage = DefaultPerPage
	}
}

func (qv *QueryValidator) ApplySearchCourseDefaults(req *handicapv1.SearchCourseRequest) {
	if req.Limit == 0 {
		req.Limit = DefaultCourseLimit
	}
}
