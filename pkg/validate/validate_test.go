package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"jane@example.com",
		"jane.doe@example.com",
		"jane_doe-1@sub.example.co.uk",
		"  jane@example.com  ", // trimmed before checking
	}
	for _, email := range valid {
		assert.True(t, IsValidEmail(email), "expected valid: %q", email)
	}

	invalid := []string{
		"",
		"   ",
		"janeexample.com",
		"jane@",
		"@example.com",
		".jane@example.com",
		"jane..doe@example.com",
		"jane@example",
		"jane doe@example.com",
	}
	for _, email := range invalid {
		assert.False(t, IsValidEmail(email), "expected invalid: %q", email)
	}
}

func TestSanitizePhone(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"+31 (6) 123-45678", "31612345678"},
		{"06 12 34 56 78", "0612345678"},
		{"phone: 555.123.4567 ext", "5551234567"},
		{"no digits", ""},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SanitizePhone(tt.raw), "raw=%q", tt.raw)
	}
}

func TestValidator_CustomRules(t *testing.T) {
	v := New()

	type form struct {
		Email string `validate:"required,booking_email"`
		Phone string `validate:"digits_only"`
	}

	require.NoError(t, v.Struct(form{Email: "jane@example.com", Phone: "31612345678"}))
	require.NoError(t, v.Struct(form{Email: "jane@example.com", Phone: ""}))

	err := v.Struct(form{Email: "jane..doe@example.com"})
	require.Error(t, err)
	assert.Equal(t, "Please enter a valid email address", v.FirstError(err))

	err = v.Struct(form{Email: "jane@example.com", Phone: "+316"})
	require.Error(t, err)
	assert.Equal(t, "Phone must contain digits only", v.FirstError(err))
}

func TestValidator_FirstError_NonValidationError(t *testing.T) {
	v := New()

	assert.Equal(t, "", v.FirstError(assert.AnError))
}
