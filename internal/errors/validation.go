package errors

import (
	"encoding/json"
	stderrors "errors"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// FieldError describes one rejected request field
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
	Param  string `json:"param,omitempty"`
}

// ParseValidationError converts validator failures into field details.
// It returns nil for errors that did not come from the validator.
func ParseValidationError(err error) []FieldError {
	var ve validator.ValidationErrors
	if !stderrors.As(err, &ve) {
		return nil
	}

	out := make([]FieldError, 0, len(ve))
	for _, fe := range ve {
		out = append(out, FieldError{
			Field:  toSnakeCase(fe.Field()),
			Reason: fe.Tag(),
			Param:  fe.Param(),
		})
	}
	return out
}

// BindingError answers a failed ShouldBindJSON with a 400 and, where possible, field details
func BindingError(c *gin.Context, err error) {
	if details := ParseValidationError(err); details != nil {
		BadRequestWithDetails(c, "Validation failed", details)
		return
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case stderrors.As(err, &typeErr):
		BadRequestWithDetails(c, "Invalid request body", []FieldError{{Field: toSnakeCase(typeErr.Field), Reason: "type"}})
	case stderrors.As(err, &syntaxErr):
		BadRequest(c, "Malformed JSON")
	default:
		BadRequest(c, "Invalid request body")
	}
}

// toSnakeCase turns a Go field name into its JSON spelling, keeping acronyms together
func toSnakeCase(s string) string {
	runes := []rune(s)
	var b strings.Builder
	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 && runes[i-1] != '_' &&
				(unicode.IsLower(runes[i-1]) || (i+1 < len(runes) && unicode.IsLower(runes[i+1]))) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return strings.ReplaceAll(b.String(), " ", "_")
}
