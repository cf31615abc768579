package validation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	app_errors "github.com/spounge-ai/handicap/internal/errors"
	pkgvalidator "github.com/spounge-ai/handicap/pkg/validator"
)

const MaxRequestSize = 16 * 1024 // 16KB

type RequestValidator struct {
	validator *validator.Validate
}

func NewRequestValidator() (*RequestValidator, error) {
	v := validator.New()

	if err := pkgvalidator.RegisterCustomValidators(v); err != nil {
		return nil, fmt.Errorf("failed to register custom validators: %w", err)
	}

	return &RequestValidator{validator: v}, nil
}

// Validate checks a wire request against its struct tags. Every failure is
// reported as ErrInvalidInput.
func (rv *RequestValidator) Validate(ctx context.Context, req any) error {
	if err := rv.validateRequestSize(req); err != nil {
		return fmt.Errorf("%w: %v", app_errors.ErrInvalidInput, err)
	}

	if err := rv.validator.StructCtx(ctx, req); err != nil {
		return fmt.Errorf("%w: %s", app_errors.ErrInvalidInput, describe(err))
	}

	return nil
}

func (rv *RequestValidator) validateRequestSize(req any) error {
	data, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to estimate request size: %w", err)
	}

	if len(data) > MaxRequestSize {
		return fmt.Errorf("request size %d exceeds maximum of %d bytes", len(data), MaxRequestSize)
	}

	return nil
}

// describe flattens validator field errors into "field failed tag" pairs.
func describe(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err.Error()
	}

	parts := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		parts = append(parts, fmt.Sprintf("%s failed %s", fe.Namespace(), fe.Tag()))
	}
	return strings.Join(parts, ", ")
}
