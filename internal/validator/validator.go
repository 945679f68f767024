package validator

import (
	"regexp"
	"slices"
)

// Validator contains a map of form field validation errors.
// Embed it in a form struct and render FieldErrors next to the matching inputs.
type Validator struct {
	NonFieldErrors []string
	FieldErrors    map[string]string
}

// Valid reports whether every field passed, i.e. the logical AND of all checks.
func (v *Validator) Valid() bool {
	return len(v.FieldErrors) == 0 && len(v.NonFieldErrors) == 0
}

func (v *Validator) AddNonFieldError(message string) {
	v.NonFieldErrors = append(v.NonFieldErrors, message)
}

// AddFieldError marks a field invalid. Only the first message per field is kept.
func (v *Validator) AddFieldError(key, message string) {
	if v.FieldErrors == nil {
		v.FieldErrors = make(map[string]string)
	}

	if _, exists := v.FieldErrors[key]; !exists {
		v.FieldErrors[key] = message
	}
}

// ClearFieldError removes any message recorded for key.
func (v *Validator) ClearFieldError(key string) {
	delete(v.FieldErrors, key)
}

func (v *Validator) CheckField(ok bool, key, message string) {
	if !ok {
		v.AddFieldError(key, message)
	}
}

// PermittedValue is a generic function that returns true if a specific value is in a list of permitted values.
func PermittedValue[T comparable](value T, permittedValues ...T) bool {
	return slices.Contains(permittedValues, value)
}

func Matches(value string, rx *regexp.Regexp) bool {
	return rx.MatchString(value)
}
