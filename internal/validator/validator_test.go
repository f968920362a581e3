package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registerPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,strong_password"`
	Mobile   string `json:"mobile" validate:"omitempty,mobile"`
	Role     string `json:"role" validate:"required,is-user-role"`
}

func TestValidatePassesOnGoodPayload(t *testing.T) {
	v := New()

	err := v.Validate(&registerPayload{
		Email:    "seeker@example.com",
		Password: "Sup3rSecret!",
		Mobile:   "9876543210",
		Role:     "job_seeker",
	})
	assert.NoError(t, err)
}

func TestValidateReportsJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(&registerPayload{
		Email:    "not-an-email",
		Password: "Sup3rSecret!",
		Role:     "job_seeker",
	})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "email")
	assert.NotContains(t, vErr.Errors, "Email")
}

func TestStrongPasswordRule(t *testing.T) {
	v := New()

	cases := map[string]bool{
		"Sup3rSecret!": true,
		"short1!A":     true,  // exactly 8
		"alllower1!":   false, // no uppercase
		"NoDigits!!":   false,
		"NoSpecial99":  false,
		"Ab1!":         false, // too short
	}

	for password, want := range cases {
		err := v.Validate(&registerPayload{
			Email:    "a@b.com",
			Password: password,
			Role:     "employer",
		})
		if want {
			assert.NoError(t, err, "password %q should pass", password)
		} else {
			assert.Error(t, err, "password %q should fail", password)
		}
	}
}

func TestMobileRule(t *testing.T) {
	v := New()

	base := registerPayload{
		Email:    "a@b.com",
		Password: "Sup3rSecret!",
		Role:     "job_seeker",
	}

	good := base
	good.Mobile = "1234567890"
	assert.NoError(t, v.Validate(&good))

	tooShort := base
	tooShort.Mobile = "12345"
	assert.Error(t, v.Validate(&tooShort))

	letters := base
	letters.Mobile = "12345abcde"
	assert.Error(t, v.Validate(&letters))
}

func TestUserRoleRule(t *testing.T) {
	v := New()

	bad := registerPayload{
		Email:    "a@b.com",
		Password: "Sup3rSecret!",
		Role:     "superuser",
	}
	err := v.Validate(&bad)
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "role")
}
