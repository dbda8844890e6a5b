package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itm/internal/shared/errors"
)

func TestIsStrongPassword(t *testing.T) {
	tests := []struct {
		password string
		want     bool
	}{
		{"Passw0rd", true},
		{"LongerPassw0rdValue", true},
		{"Pw0rd", false},
		{"password1", false},
		{"PASSWORD1", false},
		{"Password", false},
		{"Pass w0rd", false},
	}
	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			assert.Equal(t, tt.want, IsStrongPassword(tt.password))
		})
	}
}

func TestIsPhone(t *testing.T) {
	assert.True(t, IsPhone("+14155550101"))
	assert.True(t, IsPhone("020 7946 0018"))
	assert.True(t, IsPhone("555-0134-22"))
	assert.False(t, IsPhone("12345"))
	assert.False(t, IsPhone("call me"))
	assert.False(t, IsPhone(""))
}

type registerForm struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,password"`
	Phone    string `json:"phone" validate:"omitempty,phone"`
}

func TestValidateStruct(t *testing.T) {
	err := ValidateStruct(registerForm{Username: "alice", Email: "alice@example.com", Password: "Secret123"})
	assert.NoError(t, err)

	err = ValidateStruct(registerForm{Email: "nope", Password: "weak", Phone: "x"})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 422, appErr.Code)
	assert.Contains(t, appErr.Details, "username is required")
	assert.Contains(t, appErr.Details, "email must be a valid email address")
	assert.Contains(t, appErr.Details, "password must be at least 8 characters")
	assert.Contains(t, appErr.Details, "phone must be a valid phone number")
}
