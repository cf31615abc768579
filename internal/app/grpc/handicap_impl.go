package grpc

import (
	"context"
	"log/slog"

	"github.com/spounge-ai/handicap/internal/app/grpc/interceptors"
	"github.com/spounge-ai/handicap/internal/domain"
	app_errors "github.com/spounge-ai/handicap/internal/errors"
	"github.com/spounge-ai/handicap/internal/service"
	handicapv1 "github.com/spounge-ai/handicap/pkg/handicap/v1"
)

type HandicapDeps struct {
	Service         service.HandicapService
	Logger          *slog.Logger
	ErrorClassifier *app_errors.ErrorClassifier
}

type handicapServer struct {
	handicapv1.UnimplementedHandicapServer
	service         service.HandicapService
	logger          *slog.Logger
	errorClassifier *app_errors.ErrorClassifier
}

func NewHandicapServer(deps HandicapDeps) handicapv1.HandicapServer {
	return &handicapServer{
		service:         deps.Service,
		logger:          deps.Logger,
		errorClassifier: deps.ErrorClassifier,
	}
}

func (s *handicapServer) fail(ctx context.Context, err error, operation, source string) error {
	classified := s.errorClassifier.Classify(err, operation)
	classified.Source = source
	if id := interceptors.RequestID(ctx); id != "" {
		classified.Metadata["request_id"] = id
	}
	return s.errorClassifier.LogAndSanitize(ctx, classified)
}

func (s *handicapServer) GetHandicap(ctx context.Context, req *handicapv1.GetHandicapRequest) (*handicapv1.PlayerResult, error) {
	player, err := s.service.GetHandicap(ctx, req.Source, req.ID)
	if err != nil {
		return nil, s.fail(ctx, err, "GetHandicap", req.Source)
	}
	return toPlayerResult(*player), nil
}

func (s *handicapServer) SearchPlayer(ctx context.Context, req *handicapv1.SearchPlayerRequest) (*handicapv1.SearchPlayerResponse, error) {
	q, p := fromSearchPlayerRequest(req)
	players, err := s.service.SearchPlayer(ctx, q, p)
	if err != nil {
		return nil, s.fail(ctx, err, "SearchPlayer", q.Source)
	}

	resp := &handicapv1.SearchPlayerResponse{Players: make([]*handicapv1.PlayerResult, 0, len(players))}
	for _, player := range players {
		resp.Players = append(resp.Players, toPlayerResult(player))
	}
	return resp, nil
}

func (s *handicapServer) GetCourse(ctx context.Context, req *handicapv1.GetCourseRequest) (*handicapv1.Course, error) {
	course, err := s.service.GetCourse(ctx, domain.CourseQuery{
		Source:             req.Source,
		CourseID:           req.CourseID,
		IncludeAlteredTees: req.IncludeAlteredTees,
	})
	if err != nil {
		return nil, s.fail(ctx, err, "GetCourse", req.Source)
	}
	return toCourse(*course), nil
}

func (s *handicapServer) SearchCourse(ctx context.Context, req *handicapv1.SearchCourseRequest) (*handicapv1.SearchCourseResponse, error) {
	courses, err := s.service.SearchCourse(ctx, domain.CourseSearchQuery{
		Source:         req.Source,
		Name:           req.Name,
		FacilityID:     req.FacilityID,
		Country:        req.Country,
		State:          req.State,
		CourseStatus:   req.CourseStatus,
		FacilityStatus: req.FacilityStatus,
		Offset:         req.Offset,
		Limit:          req.Limit,
		IncludeTeeSets: req.IncludeTeeSets,
	})
	if err != nil {
		return nil, s.fail(ctx, err, "SearchCourse", req.Source)
	}

	resp := &handicapv1.SearchCourseResponse{Courses: make([]*handicapv1.Course, 0, len(courses))}
	for _, c := range courses {
		resp.Courses = append(resp.Courses, toCourse(c))
	}
	return resp, nil
}

func (s *handicapServer) GetTees(ctx context.Context, req *handicapv1.GetTeesRequest) (*handicapv1.GetTeesResponse, error) {
	tees, err := s.service.GetTees(ctx, domain.TeeQuery{
		Source:   req.Source,
		CourseID: req.CourseID,
		TeeID:    req.TeeID,
	})
	if err != nil {
		return nil, s.fail(ctx, err, "GetTees", req.Source)
	}
	return &handicapv1.GetTeesResponse{Tees: toTees(tees)}, nil
}

func (s *handicapServer) RequestProductAccess(ctx context.Context, req *handicapv1.GpaRequest) (*handicapv1.GpaResponse, error) {
	access, err := s.service.RequestProductAccess(ctx, req.Source, req.GolferID, req.Email)
	if err != nil {
		return nil, s.fail(ctx, err, "RequestProductAccess", req.Source)
	}
	return &handicapv1.GpaResponse{Success: access.Success}, nil
}

func (s *handicapServer) GetPlayingHandicaps(ctx context.Context, req *handicapv1.GetPlayingHandicapsRequest) (*handicapv1.GetPlayingHandicapsResponse, error) {
	groups, err := s.service.GetPlayingHandicaps(ctx, fromPlayingHandicapsRequest(req))
	if err != nil {
		return nil, s.fail(ctx, err, "GetPlayingHandicaps", req.Source)
	}
	return toPlayingHandicapsResponse(groups), nil
}
