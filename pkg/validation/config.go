package validation

import (
	"errors"
	"fmt"
	"strings"
)

// ConfigValidator collects cross-field configuration errors rather than
// failing on the first one. Errors are reported as "<section>.<field>: ...".
type ConfigValidator struct {
	section string
	errs    []error
}

// NewConfigValidator starts collecting errors for one config section.
func NewConfigValidator(section string) *ConfigValidator {
	return &ConfigValidator{section: section}
}

func (cv *ConfigValidator) fail(field, format string, args ...any) {
	cv.errs = append(cv.errs, fmt.Errorf("%s.%s: "+format, append([]any{cv.section, field}, args...)...))
}

// Required rejects an empty value.
func (cv *ConfigValidator) Required(field, value string) *ConfigValidator {
	if strings.TrimSpace(value) == "" {
		cv.fail(field, "required field is empty")
	}
	return cv
}

// Together requires that two fields are either both set or both empty, as
// with an access key and its secret.
func (cv *ConfigValidator) Together(field, value, otherField, otherValue string) *ConfigValidator {
	switch {
	case value == "" && otherValue != "":
		cv.fail(field, "must be set together with %s", otherField)
	case value != "" && otherValue == "":
		cv.fail(otherField, "must be set together with %s", field)
	}
	return cv
}

// SocketAddress checks a nanomsg-style "scheme://address" string. Empty is
// accepted and means the feature is off.
func (cv *ConfigValidator) SocketAddress(field, value string, schemes ...string) *ConfigValidator {
	if value == "" {
		return cv
	}
	scheme, rest, ok := strings.Cut(value, "://")
	if !ok || rest == "" {
		cv.fail(field, "%q is not a scheme://address", value)
		return cv
	}
	for _, s := range schemes {
		if scheme == s {
			return cv
		}
	}
	cv.fail(field, "scheme %q must be one of %v", scheme, schemes)
	return cv
}

// When runs validations only if condition holds.
func (cv *ConfigValidator) When(condition bool, validations func(*ConfigValidator)) *ConfigValidator {
	if condition {
		validations(cv)
	}
	return cv
}

// Validate returns every collected error joined, or nil.
func (cv *ConfigValidator) Validate() error {
	return errors.Join(cv.errs...)
}
