package serverutils

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their json name so messages match the wire format.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateRequest checks struct validate tags and returns a 400 ApiError
// with a field-specific message for the first failing field.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return BadRequest("Invalid request body")
	}

	fe := validationErrors[0]
	label := fieldLabel(fe.Field())
	switch fe.Tag() {
	case "required":
		return BadRequest(fmt.Sprintf("%s is required", label))
	case "email":
		return BadRequest(fmt.Sprintf("%s must be a valid email address", label))
	default:
		return BadRequest(fmt.Sprintf("%s is invalid", label))
	}
}

// fieldLabel turns a camelCase json name into a display label,
// e.g. "fullName" -> "Full Name".
func fieldLabel(name string) string {
	var b strings.Builder
	for i, r := range name {
		if i == 0 {
			b.WriteRune(unicode.ToUpper(r))
			continue
		}
		if unicode.IsUpper(r) {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}
