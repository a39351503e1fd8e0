package validation

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/zttzhu/dataset-insights/internal/errors"
)

var validate = validator.New()

// Struct validates v against its validate tags and returns a VALIDATION
// AppError naming each failing field.
func Struct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) {
		return apperrors.NewAppError(apperrors.ErrTypeValidation, "invalid request", err)
	}

	msgs := make([]string, 0, len(verrs))
	appErr := apperrors.NewAppValidationError("")
	for _, fe := range verrs {
		msg := fieldMessage(fe)
		msgs = append(msgs, msg)
		appErr = appErr.WithContext(fe.Field(), msg)
	}
	appErr.Message = strings.Join(msgs, "; ")
	return appErr
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	default:
		return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
	}
}
