package shared

import (
	"encoding/json"
	"io"

	"github.com/go-playground/validator/v10"
)

// Global validator instance for reuse; validator.Validate is safe for
// concurrent use.
var validate = validator.New()

// DecodeJSON decodes a JSON body into the given struct.
func DecodeJSON(r io.Reader, v interface{}) error {
	return json.NewDecoder(r).Decode(v)
}

// ValidateRequest validates the given struct using the validator package.
func ValidateRequest(v interface{}) error {
	return validate.Struct(v)
}
