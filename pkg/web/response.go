// Package web defines common components for a web application.
package web

import "github.com/go-playground/validator/v10"

// Response holds the common response type for all APIs.
type Response struct {
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

// Error wraps the given err into the common response type.
func Error(err error) Response {
	return Response{Error: err.Error()}
}

// GetErrorMsg returns a user friendly message for the failed binding rule.
func GetErrorMsg(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return " field is required"
	case "min":
		return " must be at least " + fe.Param()
	case "max":
		return " must be at most " + fe.Param()
	case "oneof":
		return " must be one of: " + fe.Param()
	case "transitionaction":
		return " is not a known transition action"
	}

	return " is invalid"
}
