package service

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"

	apperrors "team-management-backend/internal/errors"

	"github.com/go-playground/validator/v10"
)

var teamColorPattern = regexp.MustCompile(`^#([0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)

// NewValidator creates the request validator with the domain specific tags:
// teamcolor accepts #RGB and #RRGGBB, onedecimal accepts at most one fractional digit.
func NewValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("teamcolor", func(fl validator.FieldLevel) bool {
		return teamColorPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("onedecimal", func(fl validator.FieldLevel) bool {
		scaled := fl.Field().Float() * 10
		return math.Abs(scaled-math.Round(scaled)) < 1e-9
	})
	return v
}

// validateRequest runs struct validation and converts failures into a ValidationError
func validateRequest(v *validator.Validate, req interface{}) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return fmt.Errorf("validation failed: %w", err)
	}

	fields := make([]string, 0, len(validationErrs))
	messages := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		fields = append(fields, fe.Field())
		messages = append(messages, describeFieldError(fe))
	}
	return apperrors.NewValidationError(strings.Join(fields, ","), strings.Join(messages, "; "))
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max", "lte":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", fe.Field(), fe.Param())
	case "teamcolor":
		return fmt.Sprintf("%s must be a hex color like #RGB or #RRGGBB", fe.Field())
	case "onedecimal":
		return fmt.Sprintf("%s must have at most one decimal digit", fe.Field())
	default:
		return fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag())
	}
}
