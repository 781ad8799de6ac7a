package api

import (
	"errors"
	"fmt"
	"strings"

	"github.com/asaskevich/govalidator"
	"github.com/go-playground/validator/v10"

	"toolshub/internal/domain"
)

// Validator adapts go-playground/validator to echo's Validator interface. A
// failed validation reports every bad field in one pass rather than stopping
// at the first.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// required alone accepts whitespace-only strings; notblank closes that
	// gap for fields that must carry visible content.
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	// websiteLink must be a well-formed absolute URL and use https.
	_ = v.RegisterValidation("httpsurl", func(fl validator.FieldLevel) bool {
		link := fl.Field().String()
		return strings.HasPrefix(link, "https://") && govalidator.IsRequestURL(link)
	})

	_ = v.RegisterValidation("iconname", func(fl validator.FieldLevel) bool {
		return domain.ValidIconName(fl.Field().String())
	})

	return &Validator{validate: v}
}

func (v *Validator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	reasons := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		reasons = append(reasons, describeFieldError(fe))
	}
	return fmt.Errorf("%s", strings.Join(reasons, "; "))
}

func describeFieldError(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "notblank":
		return fmt.Sprintf("%s cannot be blank", field)
	case "max":
		return fmt.Sprintf("%s cannot exceed %s characters", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "httpsurl":
		return fmt.Sprintf("%s must be a valid URL starting with https://", field)
	case "iconname":
		return fmt.Sprintf("%s must be one of: %s", field, strings.Join(domain.IconNames, ", "))
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	case "lowercase":
		return fmt.Sprintf("%s must be lowercase", field)
	default:
		return fmt.Sprintf("%s is invalid (%s)", field, fe.Tag())
	}
}
