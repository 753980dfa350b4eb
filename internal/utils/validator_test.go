// internal/utils/validator_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type signupFixture struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
	Kind     string `validate:"required,account_kind"`
	ShopName string `validate:"required_if=Kind seller"`
}

func TestValidateStructAcceptsValidInput(t *testing.T) {
	err := ValidateStruct(&signupFixture{
		Email:    "maker@example.com",
		Password: "hunter22",
		Kind:     "personal",
	})
	assert.NoError(t, err)
}

func TestValidateStructRejectsUnknownAccountKind(t *testing.T) {
	err := ValidateStruct(&signupFixture{
		Email:    "maker@example.com",
		Password: "hunter22",
		Kind:     "admin",
	})
	assert.Error(t, err)

	errs := GetValidationErrors(err)
	assert.Len(t, errs, 1)
	assert.Equal(t, "kind", errs[0].Field)
	assert.Equal(t, "Account kind must be personal or seller", errs[0].Message)
}

func TestValidateStructRequiresShopNameForSellers(t *testing.T) {
	err := ValidateStruct(&signupFixture{
		Email:    "maker@example.com",
		Password: "hunter22",
		Kind:     "seller",
	})
	assert.Error(t, err)

	errs := GetValidationErrors(err)
	assert.Len(t, errs, 1)
	assert.Equal(t, "shopname", errs[0].Field)
	assert.Equal(t, "required_if", errs[0].Tag)
}

func TestGetValidationErrorsCollectsEveryFailure(t *testing.T) {
	err := ValidateStruct(&signupFixture{
		Email:    "not-an-email",
		Password: "xx",
		Kind:     "personal",
	})
	assert.Error(t, err)

	errs := GetValidationErrors(err)
	assert.Len(t, errs, 2)

	byField := map[string]ValidationError{}
	for _, e := range errs {
		byField[e.Field] = e
	}
	assert.Equal(t, "Invalid email format", byField["email"].Message)
	assert.Equal(t, "Password must be at least 6", byField["password"].Message)
}
