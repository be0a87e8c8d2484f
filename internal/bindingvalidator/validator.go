// Package bindingvalidator provides request binding rules shared by the delivery layers.
package bindingvalidator

import (
	"github.com/go-playground/validator/v10"

	"github.com/go-petr/pet-account/internal/domain"
	"github.com/go-petr/pet-account/pkg/moneypkg"
)

// ValidEmail validates whether the field holds a well formed account email.
var ValidEmail validator.Func = func(fl validator.FieldLevel) bool {
	if e, ok := fl.Field().Interface().(string); ok {
		return domain.IsEmailValid(e)
	}
	return false
}

// ValidAmount validates whether the field holds a valid monetary amount.
var ValidAmount validator.Func = func(fl validator.FieldLevel) bool {
	s, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	amount, err := moneypkg.Parse(s)
	if err != nil {
		return false
	}

	return domain.IsAmountValid(amount)
}

// Register installs the account_email and amount tags on v.
func Register(v *validator.Validate) error {
	if err := v.RegisterValidation("account_email", ValidEmail); err != nil {
		return err
	}

	return v.RegisterValidation("amount", ValidAmount)
}
