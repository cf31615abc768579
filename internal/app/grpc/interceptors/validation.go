package interceptors

import (
	"context"

	app_errors "github.com/spounge-ai/handicap/internal/errors"
	"github.com/spounge-ai/handicap/internal/validation"
	handicapv1 "github.com/spounge-ai/handicap/pkg/handicap/v1"
	"google.golang.org/grpc"
)

func UnaryValidationInterceptor(requestValidator *validation.RequestValidator, errorClassifier *app_errors.ErrorClassifier) grpc.UnaryServerInterceptor {
	queryValidator := validation.NewQueryValidator()

	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		switch r := req.(type) {
		case *handicapv1.SearchPlayerRequest:
			queryValidator.ApplySearchPlayerDefaults(r)
		case *handicapv1.SearchCourseRequest:
			queryValidator.ApplySearchCourseDefaults(r)
		}

		if err := requestValidator.Validate(ctx, req); err != nil {
			classifiedErr := errorClassifier.Classify(err, info.FullMethod)
			return nil, errorClassifier.LogAndSanitize(ctx, classifiedErr)
		}

		return handler(ctx, req)
	}
}
