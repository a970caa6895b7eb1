/**
 * @description
 * This package is the single validation layer shared by every request path.
 * It decodes a JSON body strictly (unknown fields are rejected) and then
 * runs struct validation, returning a flat list of field errors the API
 * serializes directly. Validation is pure: no storage call ever happens
 * before a payload passes here.
 *
 * @dependencies
 * - github.com/go-playground/validator/v10: tag-driven struct validation.
 */

package validate

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/phictor/leadcitymfb-sub000/internal/domain"
)

// maxBodyBytes bounds form payloads; the largest legitimate body is a CMS
// section with embedded content.
const maxBodyBytes = 1 << 20

// FieldError pairs a JSON field path with a human-readable message.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + " " + e.Message
}

var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New(validator.WithRequiredStructEnabled())

	// Report errors under json field names, not Go struct names.
	val.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// "money" accepts an amount that parsed as a non-negative whole number.
	// Absence is left to required/omitempty.
	must(val.RegisterValidation("money", func(fl validator.FieldLevel) bool {
		m, ok := fl.Field().Interface().(domain.Money)
		if !ok {
			return false
		}
		if !m.Supplied() {
			return true
		}
		return m.Valid() && m.Int64() >= 0
	}))

	return val
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// Struct validates a decoded payload and returns field errors, or nil.
func Struct(s any) []FieldError {
	err := v.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Message: "invalid payload"}}
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Message: messageFor(fe)})
	}
	return out
}

// DecodeValid strictly decodes the request body into dst and validates it.
// A non-nil return means the request must be rejected with 400.
func DecodeValid(r *http.Request, dst any) []FieldError {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return decodeErrors(err)
	}
	return Struct(dst)
}

func decodeErrors(err error) []FieldError {
	var ute *json.UnmarshalTypeError
	if errors.As(err, &ute) {
		return []FieldError{{
			Field:   ute.Field,
			Message: fmt.Sprintf("must be of type %s", ute.Type.Kind()),
		}}
	}
	// encoding/json reports unknown fields as a plain error string:
	//   json: unknown field "xyz"
	msg := err.Error()
	if strings.HasPrefix(msg, "json: unknown field ") {
		field := strings.Trim(strings.TrimPrefix(msg, "json: unknown field "), `"`)
		return []FieldError{{Field: field, Message: "is not an accepted field"}}
	}
	return []FieldError{{Message: "body must be valid JSON"}}
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "oneof":
		return "must be one of: " + strings.Join(strings.Fields(fe.Param()), ", ")
	case "money":
		return "must be a non-negative whole number"
	case "datetime":
		return "must be a date in YYYY-MM-DD format"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be %s or greater", fe.Param())
	case "lte":
		return fmt.Sprintf("must be %s or less", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
