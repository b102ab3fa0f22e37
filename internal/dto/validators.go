package dto

import (
	"github.com/go-playground/validator/v10"
)

// validSubscriptionPlans mirrors domain.SubscriptionPlan values. Kept as a
// plain set here so the validator does not depend on the domain package.
var validSubscriptionPlans = map[string]struct{}{
	"FREE":     {},
	"STANDARD": {},
	"PREMIUM":  {},
}

// RegisterCustomValidations installs the dto-level custom binding validators
// on the given validator engine. Called once at router setup.
func RegisterCustomValidations(v *validator.Validate) error {
	return v.RegisterValidation("subscriptionplan", func(fl validator.FieldLevel) bool {
		_, ok := validSubscriptionPlans[fl.Field().String()]
		return ok
	})
}
