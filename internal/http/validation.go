package http

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sun1tar/task-service/internal/dto"
	"github.com/sun1tar/task-service/internal/service"
)

// mandatoryMessages holds the message for a missing or blank field, keyed by JSON name.
var mandatoryMessages = map[string]string{
	"title":       "title is mandatory",
	"description": "description is mandatory",
	"dueDate":     "due date is mandatory",
}

type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// registering a built-in style tag cannot fail
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	return &RequestValidator{validate: v}
}

// ValidateTaskRequest returns the first violated constraint, or nil.
func (rv *RequestValidator) ValidateTaskRequest(req dto.TaskRequest) error {
	if err := rv.validate.Struct(req); err != nil {
		return firstViolation(err)
	}
	return nil
}

// firstViolation reports the first field error in err, or a generic
// "Validation failed" when err carries no field errors.
func firstViolation(err error) *service.ValidationError {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &service.ValidationError{Message: "Validation failed"}
	}

	fe := fieldErrs[0]
	return &service.ValidationError{Field: fe.Field(), Message: fieldMessage(fe)}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "notblank", "required":
		if msg, ok := mandatoryMessages[fe.Field()]; ok {
			return msg
		}
		return "must not be blank"
	case "max":
		return "size must be between 0 and " + fe.Param()
	default:
		return "is invalid"
	}
}
