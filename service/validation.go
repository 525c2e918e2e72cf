package service

import (
	"errors"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"

	"wagerbot/models"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateRequest checks a normalized request before any state is read
func ValidateRequest(req models.WagerRequest) error {
	if err := validate.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return newInvalidInput("invalid %s (%s)", strings.ToLower(fe.Field()), fe.Tag())
		}
		return newInvalidInput("invalid request: %v", err)
	}

	if req.Game.RequiresBet() {
		if req.Amount <= 0 {
			return newInvalidInput("bet must be greater than 0")
		}
	} else if req.Amount != 0 {
		return newInvalidInput("%s does not take a bet", req.Game)
	}

	choices := req.Game.Choices()
	if len(choices) == 0 {
		if req.Choice != "" {
			return newInvalidInput("%s does not take a choice", req.Game)
		}
		return nil
	}
	if !slices.Contains(choices, req.Choice) {
		return newInvalidInput("please choose one of: %s", strings.Join(choices, ", "))
	}
	return nil
}
