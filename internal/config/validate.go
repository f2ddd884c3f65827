package config

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	switchctlerrors "github.com/alexisbeaulieu97/switchctl/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	deviceIDPattern = regexp.MustCompile(`^[a-z0-9_-]+$`)
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("device_id", func(fl validator.FieldLevel) bool {
			return deviceIDPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// ValidateConfig performs structural and cross-field validation on an entire configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return switchctlerrors.NewValidationError("config", "configuration is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]struct{}, len(cfg.Devices))
	for i, dev := range cfg.Devices {
		if _, exists := seen[dev.ID]; exists {
			return switchctlerrors.NewValidationError(fieldForDevice(i, "id"), fmt.Sprintf("duplicate device id %q", dev.ID), nil)
		}
		seen[dev.ID] = struct{}{}
	}

	return nil
}

// convertValidationError normalizes validator errors into switchctl validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return switchctlerrors.NewValidationError(field, msg, err)
	}

	return switchctlerrors.NewValidationError("config", err.Error(), err)
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

func fieldForDevice(index int, field string) string {
	return fmt.Sprintf("devices[%d].%s", index, field)
}
