package serverutils

import (
	"errors"
	"fmt"
	"strings"

	"onboarding-survey-be/pkg/fault"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest checks a DTO against its validate tags and condenses
// failures into one client error.
func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		var errs validator.ValidationErrors
		if errors.As(err, &errs) {
			fields := make([]string, 0, len(errs))
			for _, fe := range errs {
				fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
			}
			return fault.NewClientError("validation failed: "+strings.Join(fields, ", "), nil)
		}
		return fault.NewClientError("validation failed", err)
	}
	return nil
}
