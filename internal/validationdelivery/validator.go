package validationdelivery

import (
	"github.com/go-playground/validator/v10"

	"github.com/evermed/finvalid/internal/domain"
)

// ValidAction checks that the bound value is a known transition action.
var ValidAction validator.Func = func(fl validator.FieldLevel) bool {
	if action, ok := fl.Field().Interface().(string); ok {
		switch domain.Action(action) {
		case domain.ActionApprove, domain.ActionReject, domain.ActionRequestRevision, domain.ActionRevert:
			return true
		}
	}

	return false
}
