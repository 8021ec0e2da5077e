package validator

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	mobilePattern   = regexp.MustCompile(`^1[3-9]\d{9}$`)
	timeSlotPattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()

	// Report json names so messages match request bodies
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})

	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = v.RegisterValidation("mobile", func(fl validator.FieldLevel) bool {
		return IsMobile(fl.Field().String())
	})
	_ = v.RegisterValidation("timeslot", func(fl validator.FieldLevel) bool {
		return IsTimeSlot(fl.Field().String())
	})

	return &CustomValidator{
		validator: v,
	}
}

// IsMobile reports whether s is an 11-digit mobile number starting with 1[3-9].
func IsMobile(s string) bool {
	return mobilePattern.MatchString(s)
}

// IsTimeSlot reports whether s is a 24-hour HH:mm wall-clock time.
func IsTimeSlot(s string) bool {
	return timeSlotPattern.MatchString(s)
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// ValidateVar checks a single value against a tag list such as "notblank,timeslot".
func (cv *CustomValidator) ValidateVar(field interface{}, tag string) error {
	return cv.validator.Var(field, tag)
}

// FirstFieldError returns the first failed constraint carried by err.
func FirstFieldError(err error) (validator.FieldError, bool) {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return nil, false
	}
	return validationErrors[0], true
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required":
				errors[field] = field + " is required"
			case "notblank":
				errors[field] = field + " cannot be blank"
			case "mobile":
				errors[field] = field + " must be an 11-digit mobile number starting with 13-19"
			case "timeslot":
				errors[field] = field + " must be a time in HH:mm format"
			case "oneof":
				errors[field] = field + " must be one of: " + e.Param()
			case "min":
				errors[field] = field + " must be at least " + e.Param()
			case "max":
				errors[field] = field + " must be at most " + e.Param()
			case "gt":
				errors[field] = field + " must be greater than " + e.Param()
			case "gte":
				errors[field] = field + " must be greater than or equal to " + e.Param()
			case "lte":
				errors[field] = field + " must be less than or equal to " + e.Param()
			default:
				errors[field] = field + " is invalid"
			}
		}
	}

	return errors
}
