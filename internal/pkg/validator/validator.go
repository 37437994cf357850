package validator

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks struct tags and returns a field-to-rule map of failures,
// nil when the value is valid.
func Validate(v interface{}) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	fields := make(map[string]string)
	for _, ferr := range err.(validator.ValidationErrors) {
		fields[ferr.Field()] = ferr.Tag()
	}
	return fields
}
