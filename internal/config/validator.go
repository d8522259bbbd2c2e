package config

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	stepkiterrors "github.com/alexisbeaulieu97/stepkit/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern    = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	cssClassPattern  = regexp.MustCompile(`^-?[_a-zA-Z][_a-zA-Z0-9-]*$`)
	dimensionPattern = regexp.MustCompile(`^\d+(?:px|%)?$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("css_class", func(fl validator.FieldLevel) bool {
			return cssClassPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("dimension", func(fl validator.FieldLevel) bool {
			return dimensionPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns the shared validator instance.
func GetValidator() *validator.Validate {
	return validatorInstance()
}

// ValidateConfig performs schema validation on the configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return stepkiterrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	if strings.TrimSpace(cfg.WebView.Signature.Selector) == "" {
		return stepkiterrors.NewValidationError("config.webview.signature.selector", "selector cannot be blank", nil)
	}

	return nil
}

// convertValidationError normalizes validator errors into stepkit validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return stepkiterrors.NewValidationError(field, msg, err)
	}

	return stepkiterrors.NewValidationError("config", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	parts := strings.Split(ns, ".")
	var lowered []string
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}
