package validation

import (
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// MaxFilterValueLen bounds a single filter selection value in bytes.
const MaxFilterValueLen = 128

// New returns a validator with the custom rules and JSON field naming applied.
func New() *validator.Validate {
	v := validator.New()
	RegisterValidators(v)
	return v
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	v.RegisterTagNameFunc(fieldName)
	_ = v.RegisterValidation("filter_value", FilterValue)
}

// FilterValue accepts printable text up to MaxFilterValueLen bytes.
// The empty string is a legitimate value.
func FilterValue(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if len(val) > MaxFilterValueLen {
		return false
	}
	for _, r := range val {
		if unicode.IsControl(r) || r == unicode.ReplacementChar {
			return false
		}
	}
	return true
}

// fieldName reports fields by their wire name (json, then form) so messages
// match what clients send.
func fieldName(f reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}
