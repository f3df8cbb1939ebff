package validation

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Code    string       `json:"code,omitempty"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors"`
}

func BindAndValidateJSON(c *gin.Context, dst any) bool {
	return handleBindError(c, c.ShouldBindJSON(dst), "invalid request body")
}

func BindAndValidateQuery(c *gin.Context, dst any) bool {
	return handleBindError(c, c.ShouldBindQuery(dst), "invalid query parameters")
}

// WriteError aborts the request with a single-message ErrorResponse.
func WriteError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{
		Code:    code,
		Message: message,
		Errors:  nil,
	})
}

func handleBindError(c *gin.Context, err error, syntaxMessage string) bool {
	if err == nil {
		return true
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		c.AbortWithStatusJSON(http.StatusBadRequest, formatValidationErrors(verrs))
		return false
	}

	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{
		Code:    "INVALID_REQUEST",
		Message: syntaxMessage,
		Errors: []FieldError{
			{
				Field:   "",
				Rule:    "syntax",
				Message: err.Error(),
			},
		},
	})
	return false
}

func formatValidationErrors(verrs validator.ValidationErrors) ErrorResponse {
	fields := make([]FieldError, 0, len(verrs))

	for _, fe := range verrs {
		jsonField := toJSONFieldName(fe.Field())
		fields = append(fields, FieldError{
			Field:   jsonField,
			Rule:    fe.Tag(),
			Message: buildMessage(jsonField, fe),
		})
	}

	return ErrorResponse{
		Code:    "VALIDATION_FAILED",
		Message: "validation failed",
		Errors:  fields,
	}
}

func toJSONFieldName(field string) string {
	if field == "" {
		return field
	}
	return strings.ToLower(field[:1]) + field[1:]
}

func buildMessage(field string, fe validator.FieldError) string {
	if fe.Tag() == "required" {
		return field + " is required"
	}

	return field + " is invalid (" + fe.Tag() + ")"
}
